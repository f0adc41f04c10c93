package hotp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"strings"
)

// Algorithm selects the hash function fed to HMAC. The zero value is SHA-1,
// the RFC 4226/6238 baseline understood by every authenticator app.
type Algorithm int

const (
	AlgorithmSHA1 Algorithm = iota
	AlgorithmSHA256
	AlgorithmSHA512
)

// String returns the canonical upper-case name, or "UNKNOWN" for values
// outside the enum.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmSHA1:
		return "SHA1"
	case AlgorithmSHA256:
		return "SHA256"
	case AlgorithmSHA512:
		return "SHA512"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether a names a supported hash algorithm.
func (a Algorithm) Valid() bool {
	_, err := a.hashFunc()
	return err == nil
}

// hashFunc returns the hash constructor for the algorithm.
func (a Algorithm) hashFunc() (func() hash.Hash, error) {
	switch a {
	case AlgorithmSHA1:
		return sha1.New, nil
	case AlgorithmSHA256:
		return sha256.New, nil
	case AlgorithmSHA512:
		return sha512.New, nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// ParseAlgorithm converts a case-insensitive name ("SHA1", "sha256", ...)
// into an Algorithm. Dashed spellings like "SHA-1" are accepted too.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), "-", "") {
	case "SHA1":
		return AlgorithmSHA1, nil
	case "SHA256":
		return AlgorithmSHA256, nil
	case "SHA512":
		return AlgorithmSHA512, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}
