package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Algorithm selects the hash function used by the keyed MAC engine.
type Algorithm string

const (
	// AlgorithmSHA1 is the RFC 6238 default, supported by all authenticator apps.
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 uses SHA-256.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 uses SHA-512.
	AlgorithmSHA512 Algorithm = "SHA512"
)

// hash returns the constructor for the underlying hash function, or nil when
// the algorithm is not one of the supported values.
func (a Algorithm) hash() func() hash.Hash {
	switch a {
	case AlgorithmSHA1:
		return sha1.New
	case AlgorithmSHA256:
		return sha256.New
	case AlgorithmSHA512:
		return sha512.New
	}
	return nil
}
