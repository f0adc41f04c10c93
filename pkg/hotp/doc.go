// Package hotp implements the RFC 4226 HMAC-based One-Time Password
// algorithm: counter-driven generation via dynamic truncation, and window
// verification that tolerates counter drift between client and server.
//
// The engine is deliberately self-contained — it depends only on the
// standard library HMAC/SHA primitives and carries no provisioning,
// encoding, or persistence concerns. Higher layers (see pkg/totp for the
// time-based variant) compose it.
//
// # Usage
//
//	import "github.com/segfo/ootp/pkg/hotp"
//
//	h := hotp.New([]byte("a strong shared secret"))
//
//	code, err := h.Make(hotp.MakeOpts{Counter: 42})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := h.Check(code, hotp.CheckOpts{Counter: 42, Breadth: 2})
//
// Zero-valued options select the RFC defaults: counter 0, 6 digits,
// HMAC-SHA1. A failed verification is (false, nil); errors are reserved for
// precondition violations such as an out-of-range digit count or an unknown
// algorithm selector.
//
// Callers are responsible for replay protection: the engine never stores
// which counters have been consumed.
package hotp
