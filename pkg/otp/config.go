package otp

// Defaults applied when the corresponding Config field is zero.
const (
	// DefaultDigits is the standard authenticator app code length.
	DefaultDigits = 6
	// DefaultPeriod is the RFC 6238 recommended time step in seconds.
	DefaultPeriod = 30
	// DefaultWindow accepts one adjacent step on either side of the current
	// one during verification.
	DefaultWindow = 1
)

// Config controls code generation and verification. The zero value selects
// the RFC 6238 defaults: SHA-1, 6 digits, a 30 second period and a window of
// one step. The shared secret is not part of the configuration; it is passed
// to each call and never retained.
type Config struct {
	// Algorithm selects the MAC hash function.
	// Default: AlgorithmSHA1
	Algorithm Algorithm
	// Digits is the length of generated codes (1 to 10).
	// Default: 6
	Digits int
	// Period is the time step size in seconds.
	// Default: 30
	Period int
	// Window is the number of adjacent time steps accepted before and after
	// the current one during verification, to tolerate clock drift.
	// Default: 1
	Window int
}

// withDefaults validates c and fills in defaults for zero-valued fields.
func (c Config) withDefaults() (Config, error) {
	if c.Algorithm == "" {
		c.Algorithm = AlgorithmSHA1
	}
	if c.Algorithm.hash() == nil {
		return c, ErrInvalidAlgorithm
	}
	if c.Digits == 0 {
		c.Digits = DefaultDigits
	}
	if c.Digits < 1 || c.Digits > maxDigits {
		return c, ErrInvalidDigits
	}
	if c.Period == 0 {
		c.Period = DefaultPeriod
	}
	if c.Period < 0 {
		return c, ErrInvalidPeriod
	}
	if c.Window == 0 {
		c.Window = DefaultWindow
	}
	if c.Window < 0 {
		return c, ErrInvalidWindow
	}
	return c, nil
}
