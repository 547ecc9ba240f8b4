package auth_test

import (
	"encoding/base64"
	"testing"

	"storefront/internal/core/application/auth"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basic(user, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password))
}

func TestDigest(t *testing.T) {
	assert.Equal(t,
		"2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b",
		auth.Digest("secret"),
	)
}

func TestNewAdminGate(t *testing.T) {
	t.Run("accepts upper case hex", func(t *testing.T) {
		_, err := auth.NewAdminGate("2BB80D537B1DA3E38BD30361AA855686BDE0EACD7162FEF6A25FE97BF527A25B")
		require.NoError(t, err)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := auth.NewAdminGate(" ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non hex", func(t *testing.T) {
		_, err := auth.NewAdminGate("not-hex")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := auth.NewAdminGate("abcd")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAdminGate_Authorize(t *testing.T) {
	gate, err := auth.NewAdminGate(auth.Digest("secret"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		expected error
	}{
		{"no credential", "", auth.ErrUnauthenticated},
		{"right password", basic("admin", "secret"), nil},
		{"any username", basic("someone-else", "secret"), nil},
		{"empty username", basic("", "secret"), nil},
		{"lower case scheme", "basic " + base64.StdEncoding.EncodeToString([]byte("a:secret")), nil},
		{"password containing colon", basic("a", "sec:ret"), auth.ErrForbidden},
		{"wrong password", basic("admin", "Secret"), auth.ErrForbidden},
		{"empty password", basic("admin", ""), auth.ErrForbidden},
		{"bearer scheme", "Bearer abc", auth.ErrForbidden},
		{"bad base64", "Basic !!!", auth.ErrForbidden},
		{"missing colon", "Basic " + base64.StdEncoding.EncodeToString([]byte("secret")), auth.ErrForbidden},
		{"scheme only", "Basic", auth.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.Authorize(tt.header)
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestAdminGate_PasswordWithColonWhenConfigured(t *testing.T) {
	gate, err := auth.NewAdminGate(auth.Digest("sec:ret"))
	require.NoError(t, err)

	require.NoError(t, gate.Authorize(basic("admin", "sec:ret")))
}
