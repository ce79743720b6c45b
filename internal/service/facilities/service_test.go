package facilities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	facilityRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/facility"
	slotRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/slottemplate"
	"github.com/m04kA/UniSport-ReservationService/internal/service/facilities/models"
	"github.com/m04kA/UniSport-ReservationService/pkg/ptr"
)

type fakeFacilityRepo struct {
	facilities map[string]*domain.Facility
}

func (f *fakeFacilityRepo) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	facility, ok := f.facilities[id]
	if !ok {
		return nil, facilityRepo.ErrFacilityNotFound
	}
	return facility, nil
}

func (f *fakeFacilityRepo) List(ctx context.Context) ([]*domain.Facility, error) {
	out := make([]*domain.Facility, 0, len(f.facilities))
	for _, facility := range f.facilities {
		out = append(out, facility)
	}
	return out, nil
}

func (f *fakeFacilityRepo) Upsert(ctx context.Context, facility *domain.Facility) (*domain.Facility, error) {
	f.facilities[facility.ID] = facility
	return facility, nil
}

func (f *fakeFacilityRepo) Delete(ctx context.Context, id string) error {
	delete(f.facilities, id)
	return nil
}

type fakeSlotRepo struct {
	templates map[string]*domain.SlotTemplate
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id string) (*domain.SlotTemplate, error) {
	tpl, ok := f.templates[id]
	if !ok {
		return nil, slotRepo.ErrSlotTemplateNotFound
	}
	return tpl, nil
}

func (f *fakeSlotRepo) ListByFacility(ctx context.Context, facilityID string) ([]*domain.SlotTemplate, error) {
	out := make([]*domain.SlotTemplate, 0)
	for _, tpl := range f.templates {
		if tpl.FacilityID == facilityID {
			out = append(out, tpl)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) Upsert(ctx context.Context, tpl *domain.SlotTemplate) (*domain.SlotTemplate, error) {
	f.templates[tpl.ID] = tpl
	return tpl, nil
}

func (f *fakeSlotRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.templates[id]; !ok {
		return slotRepo.ErrSlotTemplateNotFound
	}
	delete(f.templates, id)
	return nil
}

func (f *fakeSlotRepo) DeleteByFacility(ctx context.Context, facilityID string) error {
	for id, tpl := range f.templates {
		if tpl.FacilityID == facilityID {
			delete(f.templates, id)
		}
	}
	return nil
}

type fakeCache struct {
	invalidated []string
}

func (f *fakeCache) InvalidateFacility(ctx context.Context, facilityID string) error {
	f.invalidated = append(f.invalidated, facilityID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *fakeSlotRepo, *fakeCache) {
	slots := &fakeSlotRepo{templates: make(map[string]*domain.SlotTemplate)}
	cache := &fakeCache{}
	svc := NewService(
		&fakeFacilityRepo{facilities: make(map[string]*domain.Facility)},
		slots,
		cache,
		nopLogger{},
	)
	return svc, slots, cache
}

func TestService_UpsertSlotTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("generates id and applies flag defaults", func(t *testing.T) {
		svc, slots, cache := newTestService()

		resp, err := svc.UpsertSlotTemplate(ctx, &models.UpsertSlotTemplateRequest{
			FacilityID: "Pool",
			DayOfWeek:  1,
			StartHour:  "09:00",
			EndHour:    "10:00",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ID)
		assert.True(t, resp.IsAvailable)
		assert.True(t, resp.IsVisible)
		assert.Contains(t, slots.templates, resp.ID)
		assert.Equal(t, []string{"Pool"}, cache.invalidated)
	})

	t.Run("keeps explicit flags", func(t *testing.T) {
		svc, _, _ := newTestService()

		resp, err := svc.UpsertSlotTemplate(ctx, &models.UpsertSlotTemplateRequest{
			ID:          "S1",
			FacilityID:  "Pool",
			DayOfWeek:   1,
			StartHour:   "09:00",
			EndHour:     "10:00",
			IsAvailable: ptr.Ptr(false),
			IsVisible:   ptr.Ptr(false),
		})
		require.NoError(t, err)

		assert.Equal(t, "S1", resp.ID)
		assert.False(t, resp.IsAvailable)
		assert.False(t, resp.IsVisible)
	})

	t.Run("rejects inverted hours", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.UpsertSlotTemplate(ctx, &models.UpsertSlotTemplateRequest{
			FacilityID: "Pool",
			DayOfWeek:  1,
			StartHour:  "10:00",
			EndHour:    "09:00",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects out-of-range day of week", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.UpsertSlotTemplate(ctx, &models.UpsertSlotTemplateRequest{
			FacilityID: "Pool",
			DayOfWeek:  7,
			StartHour:  "09:00",
			EndHour:    "10:00",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_DeleteSlotTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and invalidates the facility schedule", func(t *testing.T) {
		svc, slots, cache := newTestService()
		slots.templates["S1"] = &domain.SlotTemplate{ID: "S1", FacilityID: "Pool", DayOfWeek: 1, StartHour: "09:00", EndHour: "10:00"}

		require.NoError(t, svc.DeleteSlotTemplate(ctx, "S1"))

		assert.NotContains(t, slots.templates, "S1")
		assert.Equal(t, []string{"Pool"}, cache.invalidated)
	})

	t.Run("missing template", func(t *testing.T) {
		svc, _, _ := newTestService()

		err := svc.DeleteSlotTemplate(ctx, "ghost")
		assert.ErrorIs(t, err, ErrSlotTemplateNotFound)
	})
}

func TestService_DeleteFacility(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes facility with its templates and invalidates cache", func(t *testing.T) {
		facilities := &fakeFacilityRepo{facilities: map[string]*domain.Facility{
			"Pool": {ID: "Pool", Name: "Pool"},
			"Gym":  {ID: "Gym", Name: "Gym"},
		}}
		slots := &fakeSlotRepo{templates: map[string]*domain.SlotTemplate{
			"S1": {ID: "S1", FacilityID: "Pool", DayOfWeek: 1, StartHour: "09:00", EndHour: "10:00"},
			"S2": {ID: "S2", FacilityID: "Pool", DayOfWeek: 2, StartHour: "09:00", EndHour: "10:00"},
			"S3": {ID: "S3", FacilityID: "Gym", DayOfWeek: 1, StartHour: "09:00", EndHour: "10:00"},
		}}
		cache := &fakeCache{}
		svc := NewService(facilities, slots, cache, nopLogger{})

		require.NoError(t, svc.DeleteFacility(ctx, "Pool"))

		assert.NotContains(t, facilities.facilities, "Pool")
		assert.NotContains(t, slots.templates, "S1")
		assert.NotContains(t, slots.templates, "S2")
		assert.Contains(t, slots.templates, "S3")
		assert.Equal(t, []string{"Pool"}, cache.invalidated)
	})

	t.Run("missing facility", func(t *testing.T) {
		svc, _, cache := newTestService()

		err := svc.DeleteFacility(ctx, "ghost")
		assert.ErrorIs(t, err, ErrFacilityNotFound)
		assert.Empty(t, cache.invalidated)
	})
}
