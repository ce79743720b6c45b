package notifications

import (
	"context"
	"errors"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
	"github.com/m04kA/UniSport-ReservationService/internal/integrations/userdirectory"
)

// Notifier отправляет e-mail уведомления о событиях бронирования
// Все отправки строго best-effort: любой сбой (справочник, почта, отсутствие
// адреса) логируется и проглатывается, совершённая операция не откатывается
type Notifier struct {
	users      UserResolver
	facilities FacilityGetter
	mailer     Mailer
	log        Logger

	sendConfirmation bool
	sendCancellation bool
	sendNoShow       bool
}

// NewNotifier создает нотификатор с флагами включения по типу письма
func NewNotifier(
	users UserResolver,
	facilities FacilityGetter,
	mailer Mailer,
	log Logger,
	sendConfirmation, sendCancellation, sendNoShow bool,
) *Notifier {
	return &Notifier{
		users:            users,
		facilities:       facilities,
		mailer:           mailer,
		log:              log,
		sendConfirmation: sendConfirmation,
		sendCancellation: sendCancellation,
		sendNoShow:       sendNoShow,
	}
}

// NotifyReservationCreated отправляет подтверждение созданного бронирования
func (n *Notifier) NotifyReservationCreated(ctx context.Context, res *domain.Reservation) {
	if !n.sendConfirmation {
		return
	}
	n.send(ctx, res, "confirmation", ComposeConfirmation)
}

// NotifyReservationCancelled отправляет уведомление об отмене
func (n *Notifier) NotifyReservationCancelled(ctx context.Context, res *domain.Reservation) {
	if !n.sendCancellation {
		return
	}
	n.send(ctx, res, "cancellation", ComposeCancellation)
}

// NotifyNoShow отправляет уведомление о неявке и блокировке
func (n *Notifier) NotifyNoShow(ctx context.Context, res *domain.Reservation) {
	if !n.sendNoShow {
		return
	}
	n.send(ctx, res, "no-show", ComposeNoShow)
}

// send резолвит адресата и название объекта, собирает и отправляет письмо
func (n *Notifier) send(
	ctx context.Context,
	res *domain.Reservation,
	kind string,
	compose func(*domain.Reservation, string) Message,
) {
	email, ok := n.resolveEmail(ctx, res.UserID, kind)
	if !ok {
		return
	}

	msg := compose(res, n.facilityName(ctx, res.FacilityID))

	if err := n.mailer.Send(ctx, email, msg.Subject, msg.Text); err != nil {
		n.log.Error("Failed to send %s email for reservation %s: %v", kind, res.ID, err)
		return
	}

	n.log.Info("Sent %s email for reservation %s to user %s", kind, res.ID, res.UserID)
}

// resolveEmail получает e-mail пользователя; false - письмо пропускается
func (n *Notifier) resolveEmail(ctx context.Context, userID, kind string) (string, bool) {
	user, err := n.users.GetUserWithGracefulDegradation(ctx, userID)
	if err != nil {
		if errors.Is(err, userdirectory.ErrUserNotFound) {
			n.log.Info("No email for user %s, skipping %s email", userID, kind)
			return "", false
		}
		n.log.Warn("User directory lookup failed for user %s, skipping %s email: %v", userID, kind, err)
		return "", false
	}

	if user.Email == "" {
		n.log.Info("No email for user %s, skipping %s email", userID, kind)
		return "", false
	}

	return user.Email, true
}

// facilityName резолвит название объекта с откатом на сырой id
func (n *Notifier) facilityName(ctx context.Context, facilityID string) string {
	facility, err := n.facilities.GetByID(ctx, facilityID)
	if err != nil {
		n.log.Warn("Failed to fetch facility name for %s, using raw id: %v", facilityID, err)
		return facilityID
	}
	return facility.DisplayName()
}
