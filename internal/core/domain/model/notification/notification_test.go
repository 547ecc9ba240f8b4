package notification_test

import (
	"testing"

	"storefront/internal/core/domain/model/notification"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	from := notification.Address{Name: "coolbeans.biz", Email: "shop@coolbeans.biz"}
	to := notification.Address{Name: "Ada", Email: "ada@example.com"}

	t.Run("valid", func(t *testing.T) {
		n, err := notification.NewNotification(from, to, "Cool bean shipment", "<p>hi</p>")

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.NotEqual(t, uuid.Nil, n.ID())
		assert.Equal(t, from, n.From())
		assert.Equal(t, to, n.To())
		assert.Equal(t, "Cool bean shipment", n.Subject())
		assert.Equal(t, "<p>hi</p>", n.HTMLBody())
	})

	t.Run("ids are unique", func(t *testing.T) {
		a, err := notification.NewNotification(from, to, "s", "b")
		require.NoError(t, err)
		b, err := notification.NewNotification(from, to, "s", "b")
		require.NoError(t, err)

		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := notification.NewNotification(notification.Address{}, notification.Address{Name: "Ada"}, "", " ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "sender email")
		assert.Contains(t, err.Error(), "recipient email")
		assert.Contains(t, err.Error(), "subject")
		assert.Contains(t, err.Error(), "body")
	})

	t.Run("zero value", func(t *testing.T) {
		var n notification.Notification
		require.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
	})
}

func TestAddress_String(t *testing.T) {
	assert.Equal(t, "Ada <ada@example.com>", notification.Address{Name: "Ada", Email: "ada@example.com"}.String())
	assert.Equal(t, "ada@example.com", notification.Address{Email: "ada@example.com"}.String())
}
