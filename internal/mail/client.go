package mail

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/cannaconscious/booking-api/internal/config"
)

// Client wraps the SMTP transport. It is constructed once at startup and
// injected wherever notices are sent; there is no package-level transport.
type Client struct {
	host     string
	port     int
	username string
	password string
	from     string
	timeout  time.Duration
}

func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.MailTimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
		timeout:  timeout,
	}
}

type SendError struct {
	Recipient string
	Err       error
}

func (e SendError) Error() string {
	return fmt.Sprintf("mail send to %s failed: %v", e.Recipient, e.Err)
}

func (e SendError) Unwrap() error {
	return e.Err
}

// Send dispatches one HTML message. A single attempt, bounded by the
// configured timeout or the context deadline, whichever comes first.
func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(c.host, c.port, c.username, c.password)

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(msg)
	}()

	wait := c.timeout
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 && d < wait {
			wait = d
		}
	}

	select {
	case err := <-done:
		if err != nil {
			return SendError{Recipient: to, Err: err}
		}
		return nil
	case <-ctx.Done():
		return SendError{Recipient: to, Err: ctx.Err()}
	case <-time.After(wait):
		return SendError{Recipient: to, Err: context.DeadlineExceeded}
	}
}
