package otp

import "errors"

// Errors returned by configuration validation and code generation.
var (
	// ErrInvalidSecret indicates the secret is empty or not decodable base32.
	ErrInvalidSecret = errors.New("otp: secret must be non-empty base32")
	// ErrInvalidPeriod indicates the configured period is not a positive
	// number of seconds.
	ErrInvalidPeriod = errors.New("otp: period must be positive")
	// ErrInvalidDigits indicates the configured digit count is out of range.
	ErrInvalidDigits = errors.New("otp: digits must be between 1 and 10")
	// ErrInvalidAlgorithm indicates an unsupported hash algorithm name.
	ErrInvalidAlgorithm = errors.New("otp: algorithm must be SHA1, SHA256, or SHA512")
	// ErrInvalidWindow indicates a negative verification window.
	ErrInvalidWindow = errors.New("otp: window must not be negative")
	// ErrInvalidTimeStep indicates a time that has no representable step
	// counter (before the Unix epoch).
	ErrInvalidTimeStep = errors.New("otp: time step not representable")
	// ErrKeyImport indicates the key was rejected by the MAC engine.
	ErrKeyImport = errors.New("otp: key rejected by MAC engine")
	// ErrHashComputation indicates the underlying hash operation failed.
	ErrHashComputation = errors.New("otp: hash computation failed")
	// ErrTruncationRange indicates the dynamic truncation offset would read
	// past the end of the MAC.
	ErrTruncationRange = errors.New("otp: truncation offset out of range")
	// ErrGenerate wraps any failure surfaced from GenerateCode,
	// GenerateCodeAt or GenerateCodeAtStep. The original cause remains
	// reachable through errors.Is and errors.As.
	ErrGenerate = errors.New("otp: code generation failed")
)
