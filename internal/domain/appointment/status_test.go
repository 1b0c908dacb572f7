package appointment

import (
	"testing"
	"time"

	"github.com/cannaconscious/booking-api/internal/httperr"
	"github.com/cannaconscious/booking-api/internal/models"
)

func TestCancel_Scheduled(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	if err := Cancel(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(StatusCanceled) {
		t.Fatalf("expected canceled, got %q", ap.Status)
	}
	if ap.CanceledAt == nil || !ap.CanceledAt.Equal(now) {
		t.Fatalf("expected canceled_at %v, got %v", now, ap.CanceledAt)
	}
}

func TestCancel_AlreadyCanceled(t *testing.T) {
	earlier := time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)
	ap := &models.Appointment{
		Status:     string(StatusCanceled),
		CanceledAt: &earlier,
	}

	err := Cancel(ap, time.Now())
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}

	// original cancellation timestamp is untouched
	if !ap.CanceledAt.Equal(earlier) {
		t.Fatalf("canceled_at changed: %v", ap.CanceledAt)
	}
}

func TestCancel_ConfirmedAndCompleted(t *testing.T) {
	for _, status := range []Status{StatusConfirmed, StatusCompleted} {
		ap := &models.Appointment{Status: string(status)}
		if err := Cancel(ap, time.Now()); err != nil {
			t.Fatalf("cancel from %q: unexpected error %v", status, err)
		}
		if ap.Status != string(StatusCanceled) {
			t.Fatalf("cancel from %q: got %q", status, ap.Status)
		}
	}
}

func TestIsValidServiceType(t *testing.T) {
	for _, s := range ServiceTypes {
		if !IsValidServiceType(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}

	for _, s := range []string{"", "massage", "Consultation", "compliance audit"} {
		if IsValidServiceType(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "confirmed", "completed", "canceled"} {
		if !IsValidStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if IsValidStatus("cancelled") {
		t.Fatal("expected the double-l spelling to be invalid")
	}
}
