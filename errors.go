package machineid

import (
	"errors"
	"fmt"
)

// ErrEmbeddedNull is returned when a caller-supplied string contains an
// embedded null byte. The message format uses null-terminated strings and
// has no escaping mechanism, so such input is rejected outright rather than
// truncated.
var ErrEmbeddedNull = errors.New("string contains an embedded null byte")

// InputError records which caller-supplied input string was rejected during
// machine ID construction. Use [errors.As] to extract the input name from
// wrapped errors.
type InputError struct {
	Input string // input name, e.g. "accountName", "BB3"
	Err   error  // underlying error
}

// Error returns a human-readable description of the rejected input.
func (e *InputError) Error() string {
	return fmt.Sprintf("input %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error {
	return e.Err
}
