// Package otp implements TOTP (RFC 6238) and HOTP (RFC 4226) code
// generation and verification.
//
// The package is a self-contained engine: it derives a short numeric code
// from a shared secret and a time-step counter using HMAC with dynamic
// truncation, and verifies user-supplied codes against a tolerance window of
// adjacent time steps.
//
// # Generating and verifying codes
//
// The package-level functions are stateless; the secret is passed to each
// call and never retained or logged:
//
//	code, err := otp.GenerateCode("JBSWY3DPEHPK3PXP", otp.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok := otp.VerifyCode("JBSWY3DPEHPK3PXP", userCode, otp.Config{})
//
// Generation fails loudly with a typed error chain; verification is a
// boundary-facing predicate that never returns an error. A malformed secret,
// a malformed candidate or an internal failure all verify as false, so a
// request pipeline cannot be crashed by untrusted input.
//
// # Authenticator
//
// Authenticator binds a secret to a configuration once, validating both
// eagerly:
//
//	auth, err := otp.NewAuthenticator("JBSWY3DPEHPK3PXP", otp.Config{
//	    Algorithm: otp.AlgorithmSHA1,
//	    Digits:    6,
//	    Period:    30,
//	    Window:    1, // accept one period of clock skew
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Validate a code from the user's authenticator app.
//	if err := auth.Authenticate(ctx, "123456"); err != nil {
//	    log.Printf("authentication failed: %v", err)
//	}
//
//	// Provisioning URI for enrollment; render as a QR code.
//	uri := auth.ProvisioningURI("MyApp", "user@example.com")
//
// # Hash algorithms
//
// SHA-1 is the RFC 6238 default and the interoperable choice; SHA-256 and
// SHA-512 are supported for deployments that configure them end to end. Note
// that not all authenticator apps support SHA256 and SHA512.
//
// # Secret generation
//
//	secret, err := otp.GenerateSecret()
//
// There is no built-in fallback secret: callers that want a fixed secret for
// development must inject one explicitly.
//
// # Thread safety
//
// All operations are pure and safe for concurrent use. Each top-level call
// reads the clock at most once, performs a bounded number of HMAC
// computations (2*Window+1 at most during verification) and holds no locks.
package otp
