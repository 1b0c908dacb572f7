package contact

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cannaconscious/booking-api/internal/audit"
	domain "github.com/cannaconscious/booking-api/internal/domain/contact"
	"github.com/cannaconscious/booking-api/internal/mail"
	"github.com/cannaconscious/booking-api/internal/models"
	"github.com/cannaconscious/booking-api/internal/validation"
)

type SubmitContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

type SubmitResult struct {
	Contact       *models.ContactMessage
	Notifications []mail.Outcome
}

type SubmitContact struct {
	repo      domain.Repository
	notifier  mail.Notifier
	audit     *audit.Dispatcher
	recipient string
	log       *logrus.Logger
}

func NewSubmitContact(
	repo domain.Repository,
	notifier mail.Notifier,
	auditDispatcher *audit.Dispatcher,
	recipient string,
	log *logrus.Logger,
) *SubmitContact {
	return &SubmitContact{
		repo:      repo,
		notifier:  notifier,
		audit:     auditDispatcher,
		recipient: recipient,
		log:       log,
	}
}

func (uc *SubmitContact) Execute(
	ctx context.Context,
	in SubmitContactInput,
) (*SubmitResult, error) {

	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	msg := &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
		Status:  string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "contact_created",
		Entity:   "contact",
		EntityID: msg.ID,
	})

	data := mail.TemplateData{
		Name:    msg.Name,
		Email:   msg.Email,
		Phone:   msg.Phone,
		Message: msg.Message,
	}

	result := &SubmitResult{Contact: msg}
	result.Notifications = append(result.Notifications,
		uc.send(ctx, mail.KindContactReceivedBusiness, uc.recipient, data),
		uc.send(ctx, mail.KindContactReceivedClient, msg.Email, data),
	)

	return result, nil
}

func (uc *SubmitContact) send(
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
