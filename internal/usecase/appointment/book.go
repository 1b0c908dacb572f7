package appointment

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cannaconscious/booking-api/internal/audit"
	domain "github.com/cannaconscious/booking-api/internal/domain/appointment"
	"github.com/cannaconscious/booking-api/internal/mail"
	"github.com/cannaconscious/booking-api/internal/models"
	"github.com/cannaconscious/booking-api/internal/timezone"
	"github.com/cannaconscious/booking-api/internal/validation"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientName   string `json:"clientName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	BusinessName string `json:"businessName"`

	ServiceType string `json:"serviceType" validate:"required,servicetype"`

	AppointmentDate string `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	TimeSlot        string `json:"timeSlot" validate:"required,timeslot"`

	Message string `json:"message"`
}

// ======================================================
// RESULT
// ======================================================

type BookingResult struct {
	Appointment   *models.Appointment
	Notifications []mail.Outcome
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo      domain.Repository
	notifier  mail.Notifier
	audit     *audit.Dispatcher
	recipient string
	log       *logrus.Logger
}

func NewBookAppointment(
	repo domain.Repository,
	notifier mail.Notifier,
	auditDispatcher *audit.Dispatcher,
	recipient string,
	log *logrus.Logger,
) *BookAppointment {
	return &BookAppointment{
		repo:      repo,
		notifier:  notifier,
		audit:     auditDispatcher,
		recipient: recipient,
		log:       log,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*BookingResult, error) {

	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", in.AppointmentDate)
	if err != nil {
		// datetime tag already checked the shape; this catches
		// impossible dates like 2025-02-30
		return nil, &validation.Error{Fields: map[string]string{
			"appointmentDate": "must be a valid calendar date",
		}}
	}

	ap := &models.Appointment{
		ClientName:      in.ClientName,
		Email:           in.Email,
		Phone:           in.Phone,
		BusinessName:    in.BusinessName,
		ServiceType:     in.ServiceType,
		AppointmentDate: date,
		TimeSlot:        in.TimeSlot,
		Message:         in.Message,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateIfSlotFree(ctx, ap); err != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_conflict",
			Entity:   "appointment",
			Metadata: map[string]any{"date": in.AppointmentDate, "slot": in.TimeSlot},
		})
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	data := mail.TemplateData{
		Name:         ap.ClientName,
		Email:        ap.Email,
		Phone:        ap.Phone,
		BusinessName: ap.BusinessName,
		ServiceType:  ap.ServiceType,
		Date:         timezone.FormatLong(ap.AppointmentDate),
		TimeSlot:     ap.TimeSlot,
		Message:      ap.Message,
	}

	result := &BookingResult{Appointment: ap}

	// Best effort: the booking stands even when a notice fails.
	result.Notifications = append(result.Notifications,
		uc.send(ctx, mail.KindBookingConfirmedBusiness, uc.recipient, data),
		uc.send(ctx, mail.KindBookingConfirmedClient, ap.Email, data),
	)

	return result, nil
}

func (uc *BookAppointment) send(
	ctx context.Context,
	kind mail.Kind,
	to string,
	data mail.TemplateData,
) mail.Outcome {

	out := mail.Outcome{Kind: kind, Recipient: to}
	if to == "" {
		return out
	}

	if err := uc.notifier.Send(ctx, kind, to, data); err != nil {
		out.Err = err
		uc.log.WithError(err).WithFields(logrus.Fields{
			"kind":      string(kind),
			"recipient": to,
		}).Warn("notification send failed")
	}

	return out
}
