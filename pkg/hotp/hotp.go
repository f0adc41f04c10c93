package hotp

import (
	"crypto/hmac"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	DefaultDigits  = 6 // standard code length (RFC 4226 recommendation)
	DefaultCounter = 0
	DefaultBreadth = 0

	// MaxDigits bounds the code length so 10^digits still fits the 31-bit
	// value produced by dynamic truncation. Beyond 9 the modulus stops
	// reducing anything and a wider integer would silently be required.
	MaxDigits = 9
)

// HOTP generates and verifies counter-based one-time passwords from a
// shared secret. The secret is never mutated, so a single instance is safe
// for concurrent use.
type HOTP struct {
	secret []byte
}

// New returns an engine bound to the given shared secret. The secret is
// used as-is; supplying cryptographically adequate key material is the
// caller's responsibility.
func New(secret []byte) *HOTP {
	return &HOTP{secret: secret}
}

// MakeOpts tunes code generation. Zero values mean the defaults: counter 0,
// 6 digits, SHA-1.
type MakeOpts struct {
	Counter   uint64
	Digits    int
	Algorithm Algorithm
}

// Make computes the one-time password for the options' counter as a
// left-zero-padded decimal string of exactly Digits characters.
// Implements RFC 4226 §5.3 dynamic truncation.
func (h *HOTP) Make(opts MakeOpts) (string, error) {
	digits := opts.Digits
	if digits == 0 {
		digits = DefaultDigits
	}
	if digits < 1 || digits > MaxDigits {
		return "", ErrDigitsOutOfRange
	}
	newHash, err := opts.Algorithm.hashFunc()
	if err != nil {
		return "", err
	}

	// The moving factor is the counter as 8 big-endian bytes.
	counterBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(counterBytes, opts.Counter)

	mac := hmac.New(newHash, h.secret)
	mac.Write(counterBytes)
	digest := mac.Sum(nil)

	// Dynamic truncation: the low nibble of the last byte picks a 4-byte
	// window; the top bit is cleared to keep the value in 31 bits.
	offset := digest[len(digest)-1] & 0x0f
	value := uint32(digest[offset]&0x7f)<<24 |
		uint32(digest[offset+1])<<16 |
		uint32(digest[offset+2])<<8 |
		uint32(digest[offset+3])

	code := value % uint32(math.Pow10(digits))

	return fmt.Sprintf("%0*d", digits, code), nil
}

// CheckOpts tunes verification. Breadth is the number of counter steps
// accepted on each side of Counter; zero means the exact counter only.
type CheckOpts struct {
	Counter   uint64
	Breadth   uint64
	Algorithm Algorithm
}

// Check reports whether candidate matches any code in the inclusive window
// [Counter-Breadth, Counter+Breadth], scanned in ascending counter order.
// The window is clamped at 0 and at the top of the uint64 range instead of
// wrapping. The expected digit count is taken from len(candidate), so a
// candidate of unrepresentable length can never match and yields
// (false, nil). Errors are reserved for an unusable Algorithm.
func (h *HOTP) Check(candidate string, opts CheckOpts) (bool, error) {
	digits := len(candidate)
	if digits < 1 || digits > MaxDigits {
		return false, nil
	}
	if _, err := opts.Algorithm.hashFunc(); err != nil {
		return false, err
	}

	low := uint64(0)
	if opts.Counter > opts.Breadth {
		low = opts.Counter - opts.Breadth
	}
	high := opts.Counter + opts.Breadth
	if high < opts.Counter {
		high = math.MaxUint64
	}

	for c := low; ; c++ {
		code, err := h.Make(MakeOpts{Counter: c, Digits: digits, Algorithm: opts.Algorithm})
		if err != nil {
			return false, err
		}
		if subtle.ConstantTimeCompare([]byte(code), []byte(candidate)) == 1 {
			return true, nil
		}
		if c == high {
			return false, nil
		}
	}
}
