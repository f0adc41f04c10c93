package totp

import "errors"

var (
	ErrInvalidPeriod   = errors.New("period must be positive")
	ErrTimeBeforeEpoch = errors.New("time precedes the unix epoch")
	ErrSecretNotSet    = errors.New("TOTP secret not set")
)
