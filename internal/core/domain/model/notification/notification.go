// Package notification models outbound emails handed from checkout to the
// notification dispatcher. Notifications are transient: they are never
// persisted and are owned by the dispatcher once enqueued.
package notification

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrNotificationIsNotConstructed is returned when a zero-value Notification is validated.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Address is a display name plus an email address.
type Address struct {
	Name  string
	Email string
}

// String formats the address as `Name <email>`, or just the email when there is no name.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return a.Name + " <" + a.Email + ">"
}

// Notification is one HTML email to send.
type Notification struct {
	id       uuid.UUID
	from     Address
	to       Address
	subject  string
	htmlBody string

	guard guard.ConstructorGuard
}

// NewNotification builds a notification with a fresh id.
// Sender and recipient emails, the subject and the body are required.
func NewNotification(from, to Address, subject, htmlBody string) (Notification, error) {
	n := Notification{
		id:       uuid.New(),
		from:     from,
		to:       to,
		subject:  subject,
		htmlBody: htmlBody,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required("sender email", from.Email),
		required("recipient email", to.Email),
		required("subject", subject),
		required("body", htmlBody),
	); err != nil {
		return Notification{}, err
	}

	return n, nil
}

// Validate ensures the notification was created through NewNotification.
func (n Notification) Validate() error {
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID identifies the notification in logs and in the Message-ID header.
func (n Notification) ID() uuid.UUID { return n.id }

// From returns the sender.
func (n Notification) From() Address { return n.from }

// To returns the recipient.
func (n Notification) To() Address { return n.to }

// Subject returns the subject line.
func (n Notification) Subject() string { return n.subject }

// HTMLBody returns the rendered HTML body.
func (n Notification) HTMLBody() string { return n.htmlBody }

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
