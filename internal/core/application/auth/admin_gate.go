// Package auth guards the admin console with a single shared password.
//
// The configured secret is the lowercase hex SHA-256 digest of the password,
// so the plaintext never has to be stored. Credentials arrive as an HTTP
// Basic Authorization header; the username is ignored.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

const basicPrefix = "Basic "

var (
	// ErrUnauthenticated means no credential was presented.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means a credential was presented but is malformed or wrong.
	ErrForbidden = errors.New("forbidden")
)

// AdminGate checks presented credentials against the configured digest.
// It keeps no state between calls.
type AdminGate struct {
	digest []byte
}

// NewAdminGate creates a gate for the given hex encoded SHA-256 digest.
// Upper case hex is accepted and normalized.
func NewAdminGate(digestHex string) (*AdminGate, error) {
	digestHex = strings.ToLower(strings.TrimSpace(digestHex))
	if digestHex == "" {
		return nil, errs.NewValueIsRequiredError("admin password digest")
	}

	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("admin password digest", err)
	}
	if len(digest) != sha256.Size {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"admin password digest",
			fmt.Errorf("%d bytes is not %d", len(digest), sha256.Size),
		)
	}

	return &AdminGate{digest: digest}, nil
}

// Authorize inspects the raw Authorization header value.
//
// Returns:
//   - nil if the password hashes to the configured digest
//   - ErrUnauthenticated if the header is empty
//   - ErrForbidden for anything else
func (g *AdminGate) Authorize(header string) error {
	if header == "" {
		return ErrUnauthenticated
	}

	password, ok := basicPassword(header)
	if !ok {
		return ErrForbidden
	}

	sum := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare(sum[:], g.digest) != 1 {
		return ErrForbidden
	}

	return nil
}

// Digest returns the lowercase hex SHA-256 of password in the form the gate expects.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func basicPassword(header string) (string, bool) {
	if len(header) < len(basicPrefix) || !strings.EqualFold(header[:len(basicPrefix)], basicPrefix) {
		return "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(header[len(basicPrefix):])
	if err != nil {
		return "", false
	}

	_, password, ok := strings.Cut(string(decoded), ":")
	return password, ok
}
