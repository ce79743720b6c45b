package notifications

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	"github.com/m04kA/UniSport-ReservationService/internal/integrations/userdirectory"
)

type fakeUserResolver struct {
	user *userdirectory.User
	err  error
}

func (f *fakeUserResolver) GetUserWithGracefulDegradation(ctx context.Context, userID string) (*userdirectory.User, error) {
	return f.user, f.err
}

type fakeFacilityGetter struct {
	facility *domain.Facility
	err      error
}

func (f *fakeFacilityGetter) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	return f.facility, f.err
}

type sentMail struct {
	to      string
	subject string
	text    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, text: text})
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testReservation() *domain.Reservation {
	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID:         "S1_2024-06-03",
		UserID:     "U1",
		FacilityID: "F1",
		SlotID:     "S1",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     domain.StatusActive,
	}
}

func TestNotifier_NotifyReservationCreated(t *testing.T) {
	ctx := context.Background()

	t.Run("sends confirmation with facility name", func(t *testing.T) {
		mailer := &fakeMailer{}
		n := NewNotifier(
			&fakeUserResolver{user: &userdirectory.User{ID: "U1", Email: "student@uni.edu"}},
			&fakeFacilityGetter{facility: &domain.Facility{ID: "F1", Name: "Main Pool"}},
			mailer,
			nopLogger{},
			true, true, true,
		)

		n.NotifyReservationCreated(ctx, testReservation())

		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "student@uni.edu", mailer.sent[0].to)
		assert.Contains(t, mailer.sent[0].subject, `You created "Main Pool on `)
		assert.Contains(t, mailer.sent[0].text, "  - Facility: Main Pool")
		assert.Contains(t, mailer.sent[0].text, "University Sports Center Reservation System")
	})

	t.Run("falls back to raw facility id when lookup fails", func(t *testing.T) {
		mailer := &fakeMailer{}
		n := NewNotifier(
			&fakeUserResolver{user: &userdirectory.User{ID: "U1", Email: "student@uni.edu"}},
			&fakeFacilityGetter{err: errors.New("db down")},
			mailer,
			nopLogger{},
			true, true, true,
		)

		n.NotifyReservationCreated(ctx, testReservation())

		require.Len(t, mailer.sent, 1)
		assert.Contains(t, mailer.sent[0].text, "  - Facility: F1")
	})

	t.Run("skips silently when user has no email", func(t *testing.T) {
		mailer := &fakeMailer{}
		n := NewNotifier(
			&fakeUserResolver{user: &userdirectory.User{ID: "U1"}},
			&fakeFacilityGetter{facility: &domain.Facility{ID: "F1", Name: "Main Pool"}},
			mailer,
			nopLogger{},
			true, true, true,
		)

		n.NotifyReservationCreated(ctx, testReservation())

		assert.Empty(t, mailer.sent)
	})

	t.Run("skips silently when the directory is unavailable", func(t *testing.T) {
		mailer := &fakeMailer{}
		n := NewNotifier(
			&fakeUserResolver{err: fmt.Errorf("%w: user_id=U1", userdirectory.ErrServiceDegraded)},
			&fakeFacilityGetter{facility: &domain.Facility{ID: "F1", Name: "Main Pool"}},
			mailer,
			nopLogger{},
			true, true, true,
		)

		n.NotifyReservationCreated(ctx, testReservation())

		assert.Empty(t, mailer.sent)
	})

	t.Run("disabled toggle suppresses the email", func(t *testing.T) {
		mailer := &fakeMailer{}
		n := NewNotifier(
			&fakeUserResolver{user: &userdirectory.User{ID: "U1", Email: "student@uni.edu"}},
			&fakeFacilityGetter{facility: &domain.Facility{ID: "F1", Name: "Main Pool"}},
			mailer,
			nopLogger{},
			false, true, true,
		)

		n.NotifyReservationCreated(ctx, testReservation())

		assert.Empty(t, mailer.sent)
	})
}

func TestNotifier_NotifyNoShow(t *testing.T) {
	ctx := context.Background()
	mailer := &fakeMailer{}
	n := NewNotifier(
		&fakeUserResolver{user: &userdirectory.User{ID: "U1", Email: "student@uni.edu"}},
		&fakeFacilityGetter{facility: &domain.Facility{ID: "F1", Name: "Tennis Court"}},
		mailer,
		nopLogger{},
		true, true, true,
	)

	n.NotifyNoShow(ctx, testReservation())

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].subject, `You did not attend "Tennis Court on `)
	assert.Contains(t, mailer.sent[0].text, "you do not have right to make reservations for the next week")
}

func TestNotifier_MailerFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	n := NewNotifier(
		&fakeUserResolver{user: &userdirectory.User{ID: "U1", Email: "student@uni.edu"}},
		&fakeFacilityGetter{facility: &domain.Facility{ID: "F1", Name: "Main Pool"}},
		&fakeMailer{err: errors.New("smtp down")},
		nopLogger{},
		true, true, true,
	)

	// Ни один сбой почты не должен дойти до вызывающей стороны
	assert.NotPanics(t, func() {
		n.NotifyReservationCreated(ctx, testReservation())
		n.NotifyReservationCancelled(ctx, testReservation())
		n.NotifyNoShow(ctx, testReservation())
	})
}

func TestComposeConfirmation_NoTimes(t *testing.T) {
	res := &domain.Reservation{ID: "S1_2024-06-03", FacilityID: "F1"}

	msg := ComposeConfirmation(res, "Main Pool")

	assert.Equal(t, `You created "Main Pool" reservation`, msg.Subject)
	assert.NotContains(t, msg.Text, "  - Time:")
}
