package appointment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cannaconscious/booking-api/internal/audit"
	domain "github.com/cannaconscious/booking-api/internal/domain/appointment"
	"github.com/cannaconscious/booking-api/internal/mail"
	"github.com/cannaconscious/booking-api/internal/models"
	"github.com/cannaconscious/booking-api/internal/timezone"
)

type CancelResult struct {
	Appointment   *models.Appointment
	Notifications []mail.Outcome
}

type CancelAppointment struct {
	repo      domain.Repository
	notifier  mail.Notifier
	audit     *audit.Dispatcher
	recipient string
	tz        string
	log       *logrus.Logger
}

func NewCancelAppointment(
	repo domain.Repository,
	notifier mail.Notifier,
	auditDispatcher *audit.Dispatcher,
	recipient string,
	tz string,
	log *logrus.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo:      repo,
		notifier:  notifier,
		audit:     auditDispatcher,
		recipient: recipient,
		tz:        tz,
		log:       log,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id string,
) (*CancelResult, error) {

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateStatus(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_canceled",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	result := &CancelResult{Appointment: ap}

	// Only the business is told about cancellations.
	if uc.recipient != "" {
		out := mail.Outcome{
			Kind:      mail.KindBookingCanceledBusiness,
			Recipient: uc.recipient,
		}
		data := mail.TemplateData{
			Name:     ap.ClientName,
			Email:    ap.Email,
			Date:     timezone.FormatLong(ap.AppointmentDate),
			TimeSlot: ap.TimeSlot,
		}
		if err := uc.notifier.Send(ctx, out.Kind, out.Recipient, data); err != nil {
			out.Err = err
			uc.log.WithError(err).Warn("cancellation notice failed")
		}
		result.Notifications = append(result.Notifications, out)
	}

	return result, nil
}
