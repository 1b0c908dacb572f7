package appointment

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domain "github.com/cannaconscious/booking-api/internal/domain/appointment"
	"github.com/cannaconscious/booking-api/internal/httperr"
	"github.com/cannaconscious/booking-api/internal/mail"
	"github.com/cannaconscious/booking-api/internal/models"
)

// in-memory repository mirroring the GORM implementation's behavior
type fakeRepo struct {
	appointments []*models.Appointment
}

func (r *fakeRepo) CreateIfSlotFree(ctx context.Context, ap *models.Appointment) error {
	for _, existing := range r.appointments {
		if existing.Status != string(domain.StatusCanceled) &&
			existing.AppointmentDate.Equal(ap.AppointmentDate) &&
			existing.TimeSlot == ap.TimeSlot {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	ap.CreatedAt = time.Now()
	r.appointments = append(r.appointments, ap)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for _, ap := range r.appointments {
		if ap.ID == id {
			copied := *ap
			return &copied, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Status == string(domain.StatusCanceled) {
			continue
		}
		if !ap.AppointmentDate.Before(dayStart) && ap.AppointmentDate.Before(dayEnd) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, ap *models.Appointment) error {
	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			copied := *ap
			r.appointments[i] = &copied
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, ap *models.Appointment) error {
	for _, existing := range r.appointments {
		if existing.ID == ap.ID {
			existing.Status = ap.Status
			existing.CanceledAt = ap.CanceledAt
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

var _ domain.Repository = (*fakeRepo)(nil)

type sentMail struct {
	Kind mail.Kind
	To   string
}

type fakeNotifier struct {
	sent []sentMail
	err  error
}

func (n *fakeNotifier) Send(ctx context.Context, kind mail.Kind, to string, data mail.TemplateData) error {
	n.sent = append(n.sent, sentMail{Kind: kind, To: to})
	return n.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
