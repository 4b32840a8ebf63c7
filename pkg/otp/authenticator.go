package otp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jeremyhahn/go-totp/pkg/otpauth"
)

// Errors returned by the Authenticator.
var (
	// ErrInvalidCode indicates the provided code did not verify.
	ErrInvalidCode = errors.New("otp: invalid code")
	// ErrNilAuthenticator indicates a nil authenticator was used.
	ErrNilAuthenticator = errors.New("otp: authenticator is nil")
)

// Authenticator binds a shared secret to a Config and validates codes
// presented for it. It is immutable after construction and safe for
// concurrent use.
type Authenticator struct {
	secret string
	cfg    Config
}

// NewAuthenticator validates the secret and configuration eagerly and
// returns an Authenticator for them.
func NewAuthenticator(secret string, cfg Config) (*Authenticator, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	if _, err := decodeSecret(secret); err != nil {
		return nil, err
	}
	return &Authenticator{secret: secret, cfg: cfg}, nil
}

// Authenticate validates a code from the user's authenticator app against
// the current time, accepting codes within the configured window. It returns
// ErrInvalidCode when the code does not verify.
func (a *Authenticator) Authenticate(ctx context.Context, code string) error {
	if a == nil {
		return ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	if !VerifyCodeAt(a.secret, code, time.Now(), a.cfg) {
		return ErrInvalidCode
	}
	return nil
}

// Verify reports whether code is valid at the current time. Unlike
// Authenticate it is a pure predicate: it never returns an error, and any
// internal failure reports false.
func (a *Authenticator) Verify(code string) bool {
	if a == nil {
		return false
	}
	return VerifyCode(a.secret, code, a.cfg)
}

// Generate returns the code for the current time step.
func (a *Authenticator) Generate() (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}
	return GenerateCode(a.secret, a.cfg)
}

// GenerateAtStep returns the code for an explicit time-step counter. It is
// deterministic, which makes it suitable for tests and for counter-based
// (HOTP) hardware tokens where the caller tracks the counter.
func (a *Authenticator) GenerateAtStep(step uint64) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}
	return GenerateCodeAtStep(a.secret, step, a.cfg)
}

// ProvisioningURI returns the otpauth:// URI describing this authenticator.
// The caller can render it as a QR code for the user to scan.
func (a *Authenticator) ProvisioningURI(issuer, account string) string {
	if a == nil {
		return ""
	}
	u := &otpauth.URL{
		Type:      "totp",
		Issuer:    issuer,
		Account:   account,
		RawSecret: a.secret,
		Algorithm: string(a.cfg.Algorithm),
		Digits:    a.cfg.Digits,
		Period:    a.cfg.Period,
	}
	return u.String()
}
