// Package otpauth parses and constructs otpauth:// provisioning URLs in the
// format used by Google Authenticator and compatible apps.
//
// See https://github.com/google/google-authenticator/wiki/Key-Uri-Format for
// a description of the format. Rendering a URL as a QR code is the caller's
// concern; this package only handles the URL itself.
package otpauth

import (
	"encoding/base32"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Defaults filled in when a parsed URL omits the corresponding parameter.
const (
	defaultAlgorithm = "SHA1"
	defaultDigits    = 6
	defaultPeriod    = 30
)

// URL contains the fields of an otpauth:// provisioning URL.
type URL struct {
	Type      string // "totp" or "hotp" (required)
	Issuer    string // issuing organization
	Account   string // account name (required)
	RawSecret string // base32-encoded shared secret
	Algorithm string // hash algorithm name, canonically upper-case
	Digits    int    // code length
	Period    int    // TOTP time step in seconds
	Counter   uint64 // HOTP counter value
}

// ParseURL parses s as an otpauth URL. The leading "otpauth://" scheme and
// "//" prefix are optional; any other scheme is an error. Absent algorithm,
// digits and period parameters are populated with their defaults.
func ParseURL(s string) (*URL, error) {
	if i := strings.Index(s, "://"); i >= 0 {
		if s[:i] != "otpauth" {
			return nil, fmt.Errorf("invalid scheme %q", s[:i])
		}
		s = s[i+3:]
	} else {
		s = strings.TrimPrefix(s, "//")
	}

	var query string
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s, query = s[:i], s[i+1:]
	}

	typ, label, ok := strings.Cut(s, "/")
	if !ok || typ == "" || label == "" {
		return nil, errors.New("invalid type/label")
	}

	u := &URL{
		Type:      typ,
		Algorithm: defaultAlgorithm,
		Digits:    defaultDigits,
		Period:    defaultPeriod,
	}
	if err := u.setLabel(label); err != nil {
		return nil, err
	}
	if query != "" {
		for _, param := range strings.Split(query, "&") {
			if err := u.setQuery(param); err != nil {
				return nil, err
			}
		}
	}
	return u, nil
}

func (u *URL) setLabel(label string) error {
	dec, err := url.PathUnescape(label)
	if err != nil {
		return err
	}
	issuer, account, ok := strings.Cut(dec, ":")
	if !ok {
		u.Account = dec
		return nil
	}
	if issuer == "" {
		return errors.New("empty issuer")
	}
	if account == "" {
		return errors.New("empty account name")
	}
	u.Issuer, u.Account = issuer, account
	return nil
}

func (u *URL) setQuery(param string) error {
	key, raw, _ := strings.Cut(param, "=")
	value, err := url.QueryUnescape(raw)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %v", key, err)
	}
	switch key {
	case "secret":
		u.RawSecret = value
	case "issuer":
		u.Issuer = value
	case "algorithm":
		u.Algorithm = strings.ToUpper(value)
	case "digits":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %q", key, value)
		}
		u.Digits = n
	case "period":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %q", key, value)
		}
		u.Period = n
	case "counter":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %q", key, value)
		}
		u.Counter = n
	default:
		return fmt.Errorf("invalid parameter %q", key)
	}
	return nil
}

// Secret decodes the RawSecret field to raw key bytes. Missing base32
// padding is restored before decoding.
func (u *URL) Secret() ([]byte, error) {
	clean := strings.ToUpper(strings.Join(strings.Fields(u.RawSecret), ""))
	clean = strings.TrimRight(clean, "=")
	if n := len(clean) % 8; n != 0 {
		clean += strings.Repeat("=", 8-n)
	}
	return base32.StdEncoding.DecodeString(clean)
}

// String encodes u in otpauth URL format. Parameters whose values equal the
// documented defaults are omitted, except that an HOTP URL always carries its
// counter. Parameters are emitted in lexicographic order.
func (u *URL) String() string {
	var sb strings.Builder
	sb.WriteString("otpauth://")
	sb.WriteString(u.Type)
	sb.WriteByte('/')
	if u.Issuer != "" {
		sb.WriteString(url.PathEscape(u.Issuer))
		sb.WriteByte(':')
	}
	sb.WriteString(url.PathEscape(u.Account))

	var params []string
	if a := strings.ToUpper(u.Algorithm); a != "" && a != defaultAlgorithm {
		params = append(params, "algorithm="+a)
	}
	if u.Type == "hotp" {
		params = append(params, "counter="+strconv.FormatUint(u.Counter, 10))
	} else if u.Counter != 0 {
		params = append(params, "counter="+strconv.FormatUint(u.Counter, 10))
	}
	if u.Digits != 0 && u.Digits != defaultDigits {
		params = append(params, "digits="+strconv.Itoa(u.Digits))
	}
	if u.Issuer != "" {
		params = append(params, "issuer="+queryEscape(u.Issuer))
	}
	if u.Period != 0 && u.Period != defaultPeriod {
		params = append(params, "period="+strconv.Itoa(u.Period))
	}
	if u.RawSecret != "" {
		params = append(params, "secret="+queryEscape(u.RawSecret))
	}
	if len(params) != 0 {
		sb.WriteByte('?')
		sb.WriteString(strings.Join(params, "&"))
	}
	return sb.String()
}

// MarshalText encodes u in the same format as String.
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText decodes an otpauth URL into *u, replacing its contents.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := ParseURL(string(text))
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// queryEscape escapes a query parameter value, using %20 rather than "+" for
// spaces so the output matches what authenticator apps emit.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
