package get_day_schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
)

type fakeSlotRepo struct {
	templates []*domain.SlotTemplate
	calls     int
}

func (f *fakeSlotRepo) ListByFacilityAndDay(ctx context.Context, facilityID string, dayOfWeek int) ([]*domain.SlotTemplate, error) {
	f.calls++
	out := make([]*domain.SlotTemplate, 0)
	for _, tpl := range f.templates {
		if tpl.FacilityID == facilityID && tpl.DayOfWeek == dayOfWeek {
			out = append(out, tpl)
		}
	}
	return out, nil
}

type fakeReservationRepo struct {
	existing map[string]*domain.Reservation
}

func (f *fakeReservationRepo) GetByIDs(ctx context.Context, ids []string) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, id := range ids {
		if res, ok := f.existing[id]; ok {
			out = append(out, res)
		}
	}
	return out, nil
}

type fakeCache struct {
	data map[string][]*domain.SlotTemplate
	err  error
}

func cacheKey(facilityID string, day int) string {
	return facilityID + "#" + string(rune('0'+day))
}

func (f *fakeCache) GetDayTemplates(ctx context.Context, facilityID string, dayOfWeek int) ([]*domain.SlotTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data[cacheKey(facilityID, dayOfWeek)], nil
}

func (f *fakeCache) SetDayTemplates(ctx context.Context, facilityID string, dayOfWeek int, templates []*domain.SlotTemplate) error {
	if f.err != nil {
		return f.err
	}
	f.data[cacheKey(facilityID, dayOfWeek)] = templates
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// 2024-06-03 - понедельник (day_of_week = 1)
func mondayTemplates() []*domain.SlotTemplate {
	return []*domain.SlotTemplate{
		{ID: "S1", FacilityID: "Pool", DayOfWeek: 1, StartHour: "09:00", EndHour: "10:00", IsAvailable: true, IsVisible: true},
		{ID: "S2", FacilityID: "Pool", DayOfWeek: 1, StartHour: "10:00", EndHour: "11:00", IsAvailable: false, IsVisible: true},
		{ID: "S3", FacilityID: "Pool", DayOfWeek: 1, StartHour: "11:00", EndHour: "12:00", IsAvailable: true, IsVisible: false},
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("projects templates onto the date and marks occupancy", func(t *testing.T) {
		slots := &fakeSlotRepo{templates: mondayTemplates()}
		reservations := &fakeReservationRepo{existing: map[string]*domain.Reservation{
			"S1_2024-06-03": {ID: "S1_2024-06-03", Status: domain.StatusCancelled},
		}}
		uc := NewUseCase(slots, reservations, nil, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{FacilityID: "Pool", Date: "2024-06-03"})
		require.NoError(t, err)

		// Невидимый S3 отфильтрован; отменённое бронирование занимает S1
		require.Len(t, resp.Slots, 2)
		assert.Equal(t, "S1", resp.Slots[0].SlotID)
		assert.True(t, resp.Slots[0].IsBooked)
		assert.Equal(t, "S2", resp.Slots[1].SlotID)
		assert.False(t, resp.Slots[1].IsBooked)
		assert.False(t, resp.Slots[1].IsAvailable)
	})

	t.Run("second call is served from cache", func(t *testing.T) {
		slots := &fakeSlotRepo{templates: mondayTemplates()}
		reservations := &fakeReservationRepo{existing: map[string]*domain.Reservation{}}
		cache := &fakeCache{data: make(map[string][]*domain.SlotTemplate)}
		uc := NewUseCase(slots, reservations, cache, nopLogger{})

		_, err := uc.Execute(ctx, &Request{FacilityID: "Pool", Date: "2024-06-03"})
		require.NoError(t, err)
		_, err = uc.Execute(ctx, &Request{FacilityID: "Pool", Date: "2024-06-03"})
		require.NoError(t, err)

		assert.Equal(t, 1, slots.calls)
	})

	t.Run("cache failure degrades to the store", func(t *testing.T) {
		slots := &fakeSlotRepo{templates: mondayTemplates()}
		reservations := &fakeReservationRepo{existing: map[string]*domain.Reservation{}}
		cache := &fakeCache{err: errors.New("redis down")}
		uc := NewUseCase(slots, reservations, cache, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{FacilityID: "Pool", Date: "2024-06-03"})
		require.NoError(t, err)
		assert.Len(t, resp.Slots, 2)
	})

	t.Run("malformed date", func(t *testing.T) {
		uc := NewUseCase(&fakeSlotRepo{}, &fakeReservationRepo{}, nil, nopLogger{})

		_, err := uc.Execute(ctx, &Request{FacilityID: "Pool", Date: "2024-13-40"})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("empty facility id", func(t *testing.T) {
		uc := NewUseCase(&fakeSlotRepo{}, &fakeReservationRepo{}, nil, nopLogger{})

		_, err := uc.Execute(ctx, &Request{Date: "2024-06-03"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
