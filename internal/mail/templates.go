package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

type Kind string

const (
	KindBookingConfirmedBusiness Kind = "booking-confirmed-business"
	KindBookingConfirmedClient   Kind = "booking-confirmed-client"
	KindBookingCanceledBusiness  Kind = "booking-canceled-business"
	KindContactReceivedBusiness  Kind = "contact-received-business"
	KindContactReceivedClient    Kind = "contact-received-client"
)

// TemplateData holds everything any notice interpolates. Date is already
// formatted for display ("Tuesday, June 10, 2025").
type TemplateData struct {
	Name         string
	Email        string
	Phone        string
	BusinessName string
	ServiceType  string
	Date         string
	TimeSlot     string
	Message      string
}

var templates = map[Kind]*template.Template{
	KindBookingConfirmedBusiness: template.Must(template.New("booking-business").Parse(`
<h1>New Appointment Booking</h1>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Business Name:</strong> {{if .BusinessName}}{{.BusinessName}}{{else}}Not provided{{end}}</p>
<p><strong>Service Type:</strong> {{.ServiceType}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.TimeSlot}}</p>
<p><strong>Message:</strong></p>
<p>{{if .Message}}{{.Message}}{{else}}No additional message provided{{end}}</p>
`)),

	KindBookingConfirmedClient: template.Must(template.New("booking-client").Parse(`
<h1>Appointment Confirmation</h1>
<p>Dear {{.Name}},</p>
<p>Thank you for booking an appointment with CannaConscious. We have scheduled your {{.ServiceType}} appointment for:</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.TimeSlot}}</p>
<p>If you need to reschedule or cancel your appointment, please contact us as soon as possible.</p>
<p>Best regards,</p>
<p>The CannaConscious Team</p>
`)),

	KindBookingCanceledBusiness: template.Must(template.New("booking-canceled").Parse(`
<h1>Appointment Cancellation</h1>
<p>The following appointment has been cancelled:</p>
<p><strong>Client:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.TimeSlot}}</p>
`)),

	KindContactReceivedBusiness: template.Must(template.New("contact-business").Parse(`
<h1>New Contact Form Submission</h1>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`)),

	KindContactReceivedClient: template.Must(template.New("contact-client").Parse(`
<h1>Thank You for Contacting Us</h1>
<p>Dear {{.Name}},</p>
<p>We have received your message and will get back to you as soon as possible.</p>
<p>Best regards,</p>
<p>The CannaConscious Team</p>
`)),
}

func Subject(kind Kind, data TemplateData) string {
	switch kind {
	case KindBookingConfirmedBusiness:
		return fmt.Sprintf("New Appointment Booking - %s", data.Name)
	case KindBookingConfirmedClient:
		return "Your CannaConscious Appointment Confirmation"
	case KindBookingCanceledBusiness:
		return fmt.Sprintf("Appointment Cancelled - %s", data.Name)
	case KindContactReceivedBusiness:
		return fmt.Sprintf("New Contact Form Submission - %s", data.Name)
	case KindContactReceivedClient:
		return "Thank you for contacting CannaConscious"
	}
	return "CannaConscious Notification"
}

func Render(kind Kind, data TemplateData) (string, error) {
	tpl, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("unknown mail template %q", kind)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
