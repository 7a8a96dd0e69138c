package host

import (
	"errors"
)

// ErrNotLoaded matches every NotLoadedError.
var ErrNotLoaded = errors.New("function has not been loaded")

// NotLoadedError is returned by a generated method whose symbol the host
// did not export at load time. It usually means the host build is older
// than the header the bindings were generated from.
type NotLoadedError struct {
	Function string
}

func (e *NotLoadedError) Error() string {
	return "attempt to use a function that has not been loaded: " + e.Function
}

func (e *NotLoadedError) Is(target error) bool {
	return target == ErrNotLoaded
}

func NotLoaded(function string) error {
	return &NotLoadedError{Function: function}
}
