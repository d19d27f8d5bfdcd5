package cipher

import (
	"errors"
	"fmt"
)

// Sentinel errors for package cipher.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Argument errors
	ErrInvalidArgument = errors.New("invalid argument")

	// Key errors
	ErrDuplicateKey = errors.New("key contains repeated characters")
)

var errEmptyKey = fmt.Errorf("%w: key must not be empty", ErrInvalidArgument)
