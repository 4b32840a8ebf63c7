package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
	"hash"
)

// pow10 covers every digit count the truncator accepts.
var pow10 = [...]uint64{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10}

const maxDigits = len(pow10) - 1

// computeMAC runs the keyed-hash engine: an HMAC over the 8-byte big-endian
// counter using the supplied hash constructor. Repeated calls with identical
// inputs are byte-identical.
func computeMAC(key []byte, counter uint64, newHash func() hash.Hash) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrKeyImport
	}
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)
	mac := hmac.New(newHash, key)
	if _, err := mac.Write(msg[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHashComputation, err)
	}
	return mac.Sum(nil), nil
}

// truncate applies RFC 4226 dynamic truncation to mac and formats the result
// as a decimal string of exactly digits characters, left-padded with zeros.
// The offset bound is checked explicitly rather than trusting the MAC length.
func truncate(mac []byte, digits int) (string, error) {
	if len(mac) == 0 {
		return "", fmt.Errorf("%w: empty mac", ErrTruncationRange)
	}
	offset := int(mac[len(mac)-1] & 0x0f)
	if offset+4 > len(mac) {
		return "", fmt.Errorf("%w: offset %d in %d-byte mac", ErrTruncationRange, offset, len(mac))
	}
	// Clear the top bit so the value is independent of signed integer
	// representation, per RFC 4226 section 5.3.
	v := binary.BigEndian.Uint32(mac[offset:offset+4]) & 0x7fffffff
	return fmt.Sprintf("%0*d", digits, uint64(v)%pow10[digits]), nil
}

// hotpCode produces the HOTP code for one counter value. digits must already
// have been validated against the pow10 table.
func hotpCode(key []byte, counter uint64, digits int, newHash func() hash.Hash) (string, error) {
	mac, err := computeMAC(key, counter, newHash)
	if err != nil {
		return "", err
	}
	return truncate(mac, digits)
}
