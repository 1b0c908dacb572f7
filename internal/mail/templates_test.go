package mail

import (
	"strings"
	"testing"
)

func sampleData() TemplateData {
	return TemplateData{
		Name:         "Jamie Doe",
		Email:        "jamie@example.com",
		Phone:        "555-0100",
		BusinessName: "Green Leaf LLC",
		ServiceType:  "compliance-audit",
		Date:         "Tuesday, June 10, 2025",
		TimeSlot:     "9:00 AM",
		Message:      "Looking forward to it.",
	}
}

func TestRender_BookingBusiness(t *testing.T) {
	body, err := Render(KindBookingConfirmedBusiness, sampleData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Jamie Doe", "jamie@example.com", "555-0100",
		"Green Leaf LLC", "compliance-audit",
		"Tuesday, June 10, 2025", "9:00 AM",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRender_OptionalFieldFallbacks(t *testing.T) {
	data := sampleData()
	data.BusinessName = ""
	data.Message = ""

	body, err := Render(KindBookingConfirmedBusiness, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(body, "Not provided") {
		t.Fatalf("expected business-name fallback:\n%s", body)
	}
	if !strings.Contains(body, "No additional message provided") {
		t.Fatalf("expected message fallback:\n%s", body)
	}
}

func TestRender_CancellationOmitsServiceType(t *testing.T) {
	body, err := Render(KindBookingCanceledBusiness, sampleData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(body, "Appointment Cancellation") {
		t.Fatalf("expected cancellation heading:\n%s", body)
	}
	if !strings.Contains(body, "Jamie Doe") || !strings.Contains(body, "9:00 AM") {
		t.Fatalf("expected client and slot in body:\n%s", body)
	}
}

func TestRender_EscapesHTML(t *testing.T) {
	data := sampleData()
	data.Message = "<script>alert(1)</script>"

	body, err := Render(KindContactReceivedBusiness, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(body, "<script>") {
		t.Fatalf("message was not escaped:\n%s", body)
	}
}

func TestRender_UnknownKind(t *testing.T) {
	if _, err := Render(Kind("no-such-template"), sampleData()); err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
}

func TestSubject(t *testing.T) {
	data := sampleData()

	cases := map[Kind]string{
		KindBookingConfirmedBusiness: "New Appointment Booking - Jamie Doe",
		KindBookingConfirmedClient:   "Your CannaConscious Appointment Confirmation",
		KindBookingCanceledBusiness:  "Appointment Cancelled - Jamie Doe",
		KindContactReceivedBusiness:  "New Contact Form Submission - Jamie Doe",
		KindContactReceivedClient:    "Thank you for contacting CannaConscious",
	}

	for kind, want := range cases {
		if got := Subject(kind, data); got != want {
			t.Fatalf("subject for %s: want %q, got %q", kind, want, got)
		}
	}
}
