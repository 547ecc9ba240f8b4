// Package smtp delivers notifications through an SMTP relay.
package smtp

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/ports"

	"github.com/wneessen/go-mail"
)

// DefaultTimeout bounds dialing and each relay round trip.
const DefaultTimeout = 30 * time.Second

// Config describes the relay.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// Sender sends HTML email with go-mail. Authentication is PLAIN and only
// enabled when a username is configured; STARTTLS is used when the relay
// offers it.
type Sender struct {
	client *mail.Client
}

var _ ports.MailSender = (*Sender)(nil)

// NewSender creates a sender. It does not connect; use Ping to check the relay.
func NewSender(cfg Config) (*Sender, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(cfg.Timeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &Sender{client: client}, nil
}

// Ping connects to the relay once and disconnects.
func (s *Sender) Ping(ctx context.Context) error {
	if err := s.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("dial smtp relay: %w", err)
	}
	return s.client.Close()
}

// Send delivers n. The notification id becomes the Message-ID.
func (s *Sender) Send(ctx context.Context, n notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	msg, err := buildMessage(n)
	if err != nil {
		return err
	}

	if err = s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send %s: %w", n.ID(), err)
	}

	return nil
}

func buildMessage(n notification.Notification) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.FromFormat(n.From().Name, n.From().Email); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := msg.AddToFormat(n.To().Name, n.To().Email); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}

	msg.Subject(n.Subject())
	msg.SetMessageIDWithValue(n.ID().String())
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextHTML, n.HTMLBody())

	return msg, nil
}
