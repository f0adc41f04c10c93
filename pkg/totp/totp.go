package totp

import (
	"time"

	"github.com/segfo/ootp/pkg/hotp"
)

const (
	DefaultDigits = 6  // standard 6-digit codes
	DefaultPeriod = 30 // seconds per time step (RFC 6238 recommendation)
)

// TOTP generates and verifies time-based one-time passwords (RFC 6238).
// It derives a counter from wall-clock time and delegates the actual code
// computation to an HOTP engine. Instances are immutable after construction
// and safe for concurrent use.
type TOTP struct {
	engine    *hotp.HOTP
	digits    int
	period    int64
	algorithm hotp.Algorithm
}

// Opts tunes a TOTP instance. Zero values mean the defaults: 6 digits,
// 30-second period, SHA-1.
type Opts struct {
	Digits    int
	Period    int // seconds per time step
	Algorithm hotp.Algorithm
}

// New builds a generator for the given shared secret. Option preconditions
// are checked here so later Make/Check calls cannot hit division by zero or
// digit overflow.
func New(secret []byte, opts Opts) (*TOTP, error) {
	digits := opts.Digits
	if digits == 0 {
		digits = DefaultDigits
	}
	if digits < 1 || digits > hotp.MaxDigits {
		return nil, hotp.ErrDigitsOutOfRange
	}
	period := opts.Period
	if period == 0 {
		period = DefaultPeriod
	}
	if period < 0 {
		return nil, ErrInvalidPeriod
	}
	if !opts.Algorithm.Valid() {
		return nil, hotp.ErrUnknownAlgorithm
	}
	return &TOTP{
		engine:    hotp.New(secret),
		digits:    digits,
		period:    int64(period),
		algorithm: opts.Algorithm,
	}, nil
}

// Make returns the code for the current time step.
func (t *TOTP) Make() (string, error) {
	return t.MakeAt(time.Now().Unix())
}

// MakeAt returns the code for the time step containing the given Unix time.
// This is the deterministic entry point Make delegates to.
func (t *TOTP) MakeAt(unixTime int64) (string, error) {
	if unixTime < 0 {
		return "", ErrTimeBeforeEpoch
	}
	return t.engine.Make(hotp.MakeOpts{
		Counter:   uint64(unixTime) / uint64(t.period),
		Digits:    t.digits,
		Algorithm: t.algorithm,
	})
}

// MakeDrift returns the code for the time step a signed number of steps
// away from now. Negative steps reach into the past; a drift that lands
// before the Unix epoch is ErrTimeBeforeEpoch.
func (t *TOTP) MakeDrift(steps int64) (string, error) {
	return t.MakeAt(time.Now().Unix() + t.period*steps)
}

// Check verifies candidate against the current time step with the default
// breadth, which reuses the period's numeric value as a step count (30
// seconds -> 30 steps either side). The conflation of seconds with steps is
// kept for compatibility with deployments that tuned around it; callers
// wanting a conventional tolerance should use CheckWithBreadth with a small
// value such as 1.
func (t *TOTP) Check(candidate string) (bool, error) {
	return t.CheckWithBreadth(candidate, uint64(t.period))
}

// CheckWithBreadth verifies candidate against the counter window of the
// given breadth centered on the current time step.
func (t *TOTP) CheckWithBreadth(candidate string, breadth uint64) (bool, error) {
	return t.engine.Check(candidate, hotp.CheckOpts{
		Counter:   uint64(time.Now().Unix()) / uint64(t.period),
		Breadth:   breadth,
		Algorithm: t.algorithm,
	})
}
