package reservations

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	banRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/ban"
	reservationRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/UniSport-ReservationService/internal/service/reservations/models"
)

// fakeReservationRepo повторяет контракт хранилища: List отдает строки
// в порядке (start_time, id), как сортирует SQL-запрос репозитория
type fakeReservationRepo struct {
	data map[string]*domain.Reservation
}

func newFakeReservationRepo(reservations ...*domain.Reservation) *fakeReservationRepo {
	repo := &fakeReservationRepo{data: make(map[string]*domain.Reservation)}
	for _, res := range reservations {
		repo.data[res.ID] = res
	}
	return repo
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	res, ok := f.data[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeReservationRepo) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0, len(f.data))
	for _, res := range f.data {
		if filter.UserID != nil && res.UserID != *filter.UserID {
			continue
		}
		if filter.FacilityID != nil && res.FacilityID != *filter.FacilityID {
			continue
		}
		if filter.Status != nil && res.Status != *filter.Status {
			continue
		}
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type fakeBanRepo struct {
	bans map[string]*domain.ReservationBan
}

func (f *fakeBanRepo) GetByUserID(ctx context.Context, userID string) (*domain.ReservationBan, error) {
	ban, ok := f.bans[userID]
	if !ok {
		return nil, banRepo.ErrBanNotFound
	}
	return ban, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func reservation(id, userID string, start time.Time, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:         id,
		UserID:     userID,
		FacilityID: "Pool",
		SlotID:     id[:2],
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     status,
	}
}

func TestService_GetUserReservations(t *testing.T) {
	ctx := context.Background()
	nine := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	t.Run("repeated reads return identical ordered sequences", func(t *testing.T) {
		// Два слота с одинаковым start_time: порядок фиксируется вторичным ключом id
		repo := newFakeReservationRepo(
			reservation("S2_2024-06-03", "U1", nine, domain.StatusActive),
			reservation("S1_2024-06-03", "U1", nine, domain.StatusActive),
			reservation("S1_2024-06-01", "U1", nine.Add(-48*time.Hour), domain.StatusCompleted),
		)
		svc := NewService(repo, &fakeBanRepo{}, nopLogger{})

		first, err := svc.GetUserReservations(ctx, &models.GetUserReservationsRequest{UserID: "U1"})
		require.NoError(t, err)
		second, err := svc.GetUserReservations(ctx, &models.GetUserReservationsRequest{UserID: "U1"})
		require.NoError(t, err)

		wantOrder := []string{"S1_2024-06-01", "S1_2024-06-03", "S2_2024-06-03"}
		gotOrder := make([]string, 0, len(first.Reservations))
		for _, r := range first.Reservations {
			gotOrder = append(gotOrder, r.ID)
		}
		assert.Equal(t, wantOrder, gotOrder)
		assert.Equal(t, first, second)
	})

	t.Run("filters by status", func(t *testing.T) {
		repo := newFakeReservationRepo(
			reservation("S1_2024-06-03", "U1", nine, domain.StatusActive),
			reservation("S1_2024-06-01", "U1", nine.Add(-48*time.Hour), domain.StatusCompleted),
		)
		svc := NewService(repo, &fakeBanRepo{}, nopLogger{})

		resp, err := svc.GetUserReservations(ctx, &models.GetUserReservationsRequest{
			UserID: "U1",
			Status: strPtr("active"),
		})
		require.NoError(t, err)

		require.Len(t, resp.Reservations, 1)
		assert.Equal(t, "S1_2024-06-03", resp.Reservations[0].ID)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		svc := NewService(newFakeReservationRepo(), &fakeBanRepo{}, nopLogger{})

		_, err := svc.GetUserReservations(ctx, &models.GetUserReservationsRequest{
			UserID: "U1",
			Status: strPtr("pending"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	nine := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	repo := newFakeReservationRepo(reservation("S1_2024-06-03", "U1", nine, domain.StatusActive))
	svc := NewService(repo, &fakeBanRepo{}, nopLogger{})

	t.Run("owner reads own reservation", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, "S1_2024-06-03", "U1", false)
		require.NoError(t, err)
		assert.Equal(t, "S1_2024-06-03", resp.ID)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "S1_2024-06-03", "U2", false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin reads any reservation", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, "S1_2024-06-03", "admin", true)
		require.NoError(t, err)
		assert.Equal(t, "U1", resp.UserID)
	})
}

func TestService_GetUserBan(t *testing.T) {
	ctx := context.Background()
	blockedUntil := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	bans := &fakeBanRepo{bans: map[string]*domain.ReservationBan{
		"U1": {UserID: "U1", BlockedUntil: blockedUntil, Reason: domain.BanReasonNotAttended},
	}}
	svc := NewService(newFakeReservationRepo(), bans, nopLogger{})

	t.Run("owner reads own ban", func(t *testing.T) {
		resp, err := svc.GetUserBan(ctx, "U1", "U1", false)
		require.NoError(t, err)
		assert.Equal(t, blockedUntil, resp.BlockedUntil)
		assert.Equal(t, domain.BanReasonNotAttended, resp.Reason)
	})

	t.Run("admin reads any ban", func(t *testing.T) {
		resp, err := svc.GetUserBan(ctx, "U1", "admin", true)
		require.NoError(t, err)
		assert.Equal(t, "U1", resp.UserID)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		_, err := svc.GetUserBan(ctx, "U1", "U2", false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("no ban on record", func(t *testing.T) {
		_, err := svc.GetUserBan(ctx, "U2", "U2", false)
		assert.ErrorIs(t, err, ErrBanNotFound)
	})
}

func strPtr(s string) *string {
	return &s
}
