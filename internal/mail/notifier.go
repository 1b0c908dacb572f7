package mail

import "context"

// Notifier is what the workflows depend on; the SMTP implementation lives
// behind it so tests can swap in a recorder.
type Notifier interface {
	Send(ctx context.Context, kind Kind, to string, data TemplateData) error
}

// Outcome records one attempted send. Workflows keep outcomes on their
// results so a failed notice is visible without failing the operation.
type Outcome struct {
	Kind      Kind
	Recipient string
	Err       error
}

type SMTPNotifier struct {
	client *Client
}

func NewSMTPNotifier(client *Client) *SMTPNotifier {
	return &SMTPNotifier{client: client}
}

func (n *SMTPNotifier) Send(ctx context.Context, kind Kind, to string, data TemplateData) error {
	body, err := Render(kind, data)
	if err != nil {
		return err
	}

	return n.client.Send(ctx, to, Subject(kind, data), body)
}

var _ Notifier = (*SMTPNotifier)(nil)
