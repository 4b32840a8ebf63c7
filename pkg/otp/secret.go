package otp

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// decodeSecret converts a user-facing base32 secret into raw key bytes.
// Lowercase input, interior whitespace and missing padding are all accepted,
// since setup tools present secrets in every one of those shapes.
func decodeSecret(secret string) ([]byte, error) {
	clean := strings.ToUpper(strings.Join(strings.Fields(secret), ""))
	clean = strings.TrimRight(clean, "=")
	if clean == "" {
		return nil, ErrInvalidSecret
	}
	if n := len(clean) % 8; n != 0 {
		clean += strings.Repeat("=", 8-n)
	}
	key, err := base32.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}
	if len(key) == 0 {
		return nil, ErrInvalidSecret
	}
	return key, nil
}

// GenerateSecret generates a cryptographically random shared secret. The
// secret is returned base32-encoded without padding, ready to share with an
// authenticator app.
func GenerateSecret() (string, error) {
	// 20 bytes (160 bits), the RFC 4226 recommended minimum.
	secret := make([]byte, 20)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("otp: failed to generate random secret: %w", err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret), nil
}
