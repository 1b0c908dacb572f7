package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/cannaconscious/booking-api/internal/mail"
	"github.com/cannaconscious/booking-api/internal/validation"
)

const officeAddr = "office@cannaconscious.example"

func validInput() BookAppointmentInput {
	return BookAppointmentInput{
		ClientName:      "Jamie Doe",
		Email:           "jamie@example.com",
		Phone:           "555-0100",
		BusinessName:    "Green Leaf LLC",
		ServiceType:     "consultation",
		AppointmentDate: "2025-06-10",
		TimeSlot:        "9:00 AM",
		Message:         "First visit.",
	}
}

func newBookUC(repo *fakeRepo, notifier *fakeNotifier) *BookAppointment {
	return NewBookAppointment(repo, notifier, nil, officeAddr, quietLogger())
}

func TestBookAppointment_CreatesAndNotifies(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	uc := newBookUC(repo, notifier)

	result, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ap := result.Appointment
	if ap.ID == "" {
		t.Fatal("expected a server-assigned identifier")
	}
	if ap.CreatedAt.IsZero() {
		t.Fatal("expected a creation timestamp")
	}
	if ap.Status != "scheduled" {
		t.Fatalf("expected initial status scheduled, got %q", ap.Status)
	}

	// inserted record round-trips with the user-supplied fields intact
	stored, err := repo.GetByID(context.Background(), ap.ID)
	if err != nil {
		t.Fatalf("lookup after insert failed: %v", err)
	}
	if stored.ClientName != "Jamie Doe" || stored.TimeSlot != "9:00 AM" ||
		stored.ServiceType != "consultation" || stored.Email != "jamie@example.com" {
		t.Fatalf("stored record differs from input: %+v", stored)
	}

	if len(notifier.sent) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifier.sent))
	}
	if notifier.sent[0].Kind != mail.KindBookingConfirmedBusiness || notifier.sent[0].To != officeAddr {
		t.Fatalf("unexpected first notice: %+v", notifier.sent[0])
	}
	if notifier.sent[1].Kind != mail.KindBookingConfirmedClient || notifier.sent[1].To != "jamie@example.com" {
		t.Fatalf("unexpected second notice: %+v", notifier.sent[1])
	}
}

func TestBookAppointment_ServiceTypeOutsideEnum(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	uc := newBookUC(repo, notifier)

	in := validInput()
	in.ServiceType = "haircut"

	_, err := uc.Execute(context.Background(), in)

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields["serviceType"] == "" {
		t.Fatalf("expected serviceType message, got %v", verr.Fields)
	}

	if len(repo.appointments) != 0 {
		t.Fatal("no record may be persisted on validation failure")
	}
	if len(notifier.sent) != 0 {
		t.Fatal("no notification may be sent on validation failure")
	}
}

func TestBookAppointment_MalformedEmail(t *testing.T) {
	repo := &fakeRepo{}
	uc := newBookUC(repo, &fakeNotifier{})

	in := validInput()
	in.Email = "not-an-email"

	_, err := uc.Execute(context.Background(), in)

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.appointments) != 0 {
		t.Fatal("no record may be persisted on validation failure")
	}
}

func TestBookAppointment_ImpossibleDate(t *testing.T) {
	uc := newBookUC(&fakeRepo{}, &fakeNotifier{})

	in := validInput()
	in.AppointmentDate = "2025-02-30"

	_, err := uc.Execute(context.Background(), in)

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBookAppointment_SlotTaken(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	uc := newBookUC(repo, notifier)

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	notifier.sent = nil

	in := validInput()
	in.ClientName = "Someone Else"
	in.Email = "else@example.com"

	_, err := uc.Execute(context.Background(), in)
	if err == nil || err.Error() != "slot_taken" {
		t.Fatalf("expected slot_taken, got %v", err)
	}

	if len(notifier.sent) != 0 {
		t.Fatal("no notification may go out for a rejected booking")
	}
}

func TestBookAppointment_CanceledSlotIsFreeAgain(t *testing.T) {
	repo := &fakeRepo{}
	uc := newBookUC(repo, &fakeNotifier{})

	first, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	cancelUC := NewCancelAppointment(repo, &fakeNotifier{}, nil, officeAddr, "UTC", quietLogger())
	if _, err := cancelUC.Execute(context.Background(), first.Appointment.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	in := validInput()
	in.Email = "second@example.com"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("rebooking a canceled slot failed: %v", err)
	}
}

func TestBookAppointment_NotificationFailureIsNonFatal(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{err: errors.New("smtp timeout")}
	uc := newBookUC(repo, notifier)

	result, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("booking must not fail on a notification error, got %v", err)
	}

	if len(repo.appointments) != 1 {
		t.Fatal("record must stay persisted when notices fail")
	}

	if len(result.Notifications) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(result.Notifications))
	}
	for _, out := range result.Notifications {
		if out.Err == nil {
			t.Fatalf("expected failed outcome for %s", out.Kind)
		}
	}
}

func TestBookAppointment_NoBusinessRecipientConfigured(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	uc := NewBookAppointment(repo, notifier, nil, "", quietLogger())

	result, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// only the client copy goes out
	if len(notifier.sent) != 1 || notifier.sent[0].Kind != mail.KindBookingConfirmedClient {
		t.Fatalf("unexpected sends: %+v", notifier.sent)
	}
	if len(result.Notifications) != 2 {
		t.Fatalf("expected 2 outcomes either way, got %d", len(result.Notifications))
	}
}
