package puzzle

import "errors"

// ErrEmptySet is returned by FindUnique when it is given no strings.
var ErrEmptySet = errors.New("set of strings is empty")
