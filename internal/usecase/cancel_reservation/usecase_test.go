package cancel_reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/reservation"
)

type fakeReservationRepo struct {
	mu   sync.Mutex
	data map[string]*domain.Reservation
}

func newFakeReservationRepo(seed ...*domain.Reservation) *fakeReservationRepo {
	repo := &fakeReservationRepo{data: make(map[string]*domain.Reservation)}
	for _, res := range seed {
		copied := *res
		repo.data[res.ID] = &copied
	}
	return repo
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res, ok := f.data[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	res, ok := f.data[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = status
	return nil
}

// fakeTxManager сериализует переходы глобальным мьютексом,
// имитируя блокировку строки FOR UPDATE
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type fakeNotifier struct {
	mu        sync.Mutex
	cancelled []*domain.Reservation
}

func (f *fakeNotifier) NotifyReservationCancelled(ctx context.Context, res *domain.Reservation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, res)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func activeReservation() *domain.Reservation {
	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID:         "S1_2024-06-03",
		UserID:     "U1",
		FacilityID: "Pool",
		SlotID:     "S1",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     domain.StatusActive,
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels own active reservation", func(t *testing.T) {
		repo := newFakeReservationRepo(activeReservation())
		notifier := &fakeNotifier{}
		uc := NewUseCase(repo, &fakeTxManager{}, notifier, nopLogger{})

		err := uc.Execute(ctx, &Request{ReservationID: "S1_2024-06-03", UserID: "U1"})
		require.NoError(t, err)

		assert.Equal(t, domain.StatusCancelled, repo.data["S1_2024-06-03"].Status)
		require.Len(t, notifier.cancelled, 1)
		assert.Equal(t, domain.StatusCancelled, notifier.cancelled[0].Status)
	})

	t.Run("missing reservation", func(t *testing.T) {
		uc := NewUseCase(newFakeReservationRepo(), &fakeTxManager{}, &fakeNotifier{}, nopLogger{})

		err := uc.Execute(ctx, &Request{ReservationID: "ghost", UserID: "U1"})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("only active reservations can be cancelled", func(t *testing.T) {
		for _, status := range domain.TerminalStatuses {
			res := activeReservation()
			res.Status = status
			repo := newFakeReservationRepo(res)
			notifier := &fakeNotifier{}
			uc := NewUseCase(repo, &fakeTxManager{}, notifier, nopLogger{})

			err := uc.Execute(ctx, &Request{ReservationID: res.ID, UserID: "U1"})
			assert.ErrorIs(t, err, ErrNotActive, "status %s", status)
			assert.Empty(t, notifier.cancelled)
		}
	})

	t.Run("stranger cannot cancel someone else's reservation", func(t *testing.T) {
		repo := newFakeReservationRepo(activeReservation())
		uc := NewUseCase(repo, &fakeTxManager{}, &fakeNotifier{}, nopLogger{})

		err := uc.Execute(ctx, &Request{ReservationID: "S1_2024-06-03", UserID: "U2"})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Equal(t, domain.StatusActive, repo.data["S1_2024-06-03"].Status)
	})

	t.Run("admin cancels someone else's reservation", func(t *testing.T) {
		repo := newFakeReservationRepo(activeReservation())
		uc := NewUseCase(repo, &fakeTxManager{}, &fakeNotifier{}, nopLogger{})

		err := uc.Execute(ctx, &Request{ReservationID: "S1_2024-06-03", UserID: "admin", IsAdmin: true})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, repo.data["S1_2024-06-03"].Status)
	})

	t.Run("empty reservation id is rejected", func(t *testing.T) {
		uc := NewUseCase(newFakeReservationRepo(), &fakeTxManager{}, &fakeNotifier{}, nopLogger{})

		err := uc.Execute(ctx, &Request{UserID: "U1"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("anonymous non-admin caller is rejected", func(t *testing.T) {
		repo := newFakeReservationRepo(activeReservation())
		uc := NewUseCase(repo, &fakeTxManager{}, &fakeNotifier{}, nopLogger{})

		err := uc.Execute(ctx, &Request{ReservationID: "S1_2024-06-03"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, domain.StatusActive, repo.data["S1_2024-06-03"].Status)
	})
}

func TestUseCase_Execute_ConcurrentCancels(t *testing.T) {
	const workers = 16

	repo := newFakeReservationRepo(activeReservation())
	notifier := &fakeNotifier{}
	uc := NewUseCase(repo, &fakeTxManager{}, notifier, nopLogger{})

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- uc.Execute(context.Background(), &Request{ReservationID: "S1_2024-06-03", UserID: "U1"})
		}()
	}

	wg.Wait()
	close(errs)

	var successes, stale int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrNotActive):
			stale++
		}
	}

	assert.Equal(t, 1, successes, "exactly one cancel must win")
	assert.Equal(t, workers-1, stale)
	assert.Len(t, notifier.cancelled, 1)
}
