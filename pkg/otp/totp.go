package otp

import (
	"crypto/subtle"
	"fmt"
	"math"
	"time"
)

// GenerateCode derives the code for secret at the current wall-clock time.
// The clock is read exactly once at entry so a step boundary cannot be
// crossed mid-call.
func GenerateCode(secret string, cfg Config) (string, error) {
	return GenerateCodeAt(secret, time.Now(), cfg)
}

// GenerateCodeAt derives the code for secret at the given time.
func GenerateCodeAt(secret string, at time.Time, cfg Config) (string, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	step, err := timeStep(at, cfg.Period)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	return generateAtStep(secret, step, cfg)
}

// GenerateCodeAtStep derives the code for an explicit time-step counter
// instead of the wall clock. It is deterministic: repeated calls with
// identical inputs yield identical codes.
func GenerateCodeAtStep(secret string, step uint64, cfg Config) (string, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	return generateAtStep(secret, step, cfg)
}

// generateAtStep requires a validated cfg.
func generateAtStep(secret string, step uint64, cfg Config) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	code, err := hotpCode(key, step, cfg.Digits, cfg.Algorithm.hash())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	return code, nil
}

// timeStep converts a wall-clock instant into the number of whole periods
// elapsed since the Unix epoch. The counter spans the full unsigned 64-bit
// range; instants before the epoch have no representable step.
func timeStep(at time.Time, period int) (uint64, error) {
	ms := at.UnixMilli()
	if ms < 0 {
		return 0, fmt.Errorf("%w: %v precedes the Unix epoch", ErrInvalidTimeStep, at.UTC())
	}
	return uint64(ms) / (uint64(period) * 1000), nil
}

// VerifyCode reports whether candidate matches the code for any time step
// within cfg.Window steps of the current one. It never returns an error:
// malformed input and internal failure both degrade to false, so a request
// pipeline calling it cannot be crashed by untrusted input.
func VerifyCode(secret, candidate string, cfg Config) bool {
	return VerifyCodeAt(secret, candidate, time.Now(), cfg)
}

// VerifyCodeAt is VerifyCode evaluated against an explicit wall-clock
// instant, read once.
func VerifyCodeAt(secret, candidate string, at time.Time, cfg Config) bool {
	if secret == "" || candidate == "" {
		return false
	}
	cfg, err := cfg.withDefaults()
	if err != nil {
		return false
	}
	key, err := decodeSecret(secret)
	if err != nil {
		return false
	}
	current, err := timeStep(at, cfg.Period)
	if err != nil {
		return false
	}
	newHash := cfg.Algorithm.hash()
	for delta := -cfg.Window; delta <= cfg.Window; delta++ {
		step, ok := offsetStep(current, delta)
		if !ok {
			continue
		}
		code, err := hotpCode(key, step, cfg.Digits, newHash)
		if err != nil {
			return false
		}
		// Constant-time exact string comparison; leading zeros are
		// significant.
		if subtle.ConstantTimeCompare([]byte(code), []byte(candidate)) == 1 {
			return true
		}
	}
	return false
}

// offsetStep adds a signed offset to a step counter, reporting false when
// the result would wrap around the uint64 range.
func offsetStep(step uint64, delta int) (uint64, bool) {
	if delta < 0 {
		d := uint64(-delta)
		if step < d {
			return 0, false
		}
		return step - d, true
	}
	d := uint64(delta)
	if step > math.MaxUint64-d {
		return 0, false
	}
	return step + d, true
}
