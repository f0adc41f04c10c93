package hotp

import "errors"

var (
	ErrDigitsOutOfRange = errors.New("digit count must be between 1 and 9")
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)
