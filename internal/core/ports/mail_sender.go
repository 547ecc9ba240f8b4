package ports

import (
	"context"

	"storefront/internal/core/domain/model/notification"
)

// MailSender delivers one notification through the mail transport.
// A nil error means the relay accepted the message; there are no delivery
// receipts or bounce handling.
type MailSender interface {
	Send(ctx context.Context, n notification.Notification) error
}

// Notifier accepts notifications for asynchronous delivery.
// Enqueue blocks while the queue is full instead of dropping.
type Notifier interface {
	Enqueue(ctx context.Context, n notification.Notification) error
}
