// Package totp implements RFC 6238 Time-Based One-Time Passwords on top of
// the pkg/hotp engine.
//
// A TOTP instance binds a shared secret to a digit count, a time period,
// and a hash algorithm. Every operation is a pure function of its inputs
// and the immutable configuration — there is no session state, so the same
// instance may be used from many goroutines.
//
// # Usage
//
//	import "github.com/segfo/ootp/pkg/totp"
//
//	gen, err := totp.New([]byte("a strong shared secret"), totp.Opts{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	code, err := gen.Make()          // code for the current 30s step
//	ok, err := gen.Check(code)       // verify with the default tolerance
//
// MakeAt is the deterministic entry point (Make is MakeAt of now) and is
// what the RFC 6238 appendix B vectors exercise. MakeDrift produces the
// code a signed number of steps away from now, which lets callers
// pre-compute neighboring codes without re-deriving counter arithmetic.
//
// # Verification tolerance
//
// Check's default breadth equals the period's numeric value, i.e. a
// 30-second period tolerates 30 steps of drift either side. This conflates
// seconds with steps and is far looser than the usual +/-1 step; it is kept
// for compatibility, and CheckWithBreadth exists to request a sane window
// explicitly.
//
// Configuration may also come from TOTP_* environment variables via
// LoadConfig/NewFromConfig; see config.go for the recognized variables.
//
// Replay protection (rejecting a code that was already consumed) is out of
// scope and must be handled by the caller.
package totp
