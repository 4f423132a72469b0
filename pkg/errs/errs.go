package errs

import "errors"

// Err represents an expected error that is safe to show to API callers.
type Err struct { //nolint:errname
	Message string `json:"message"`
}

var _ error = (*Err)(nil)

// New creates a new custom error with the given message.
func New(message string) *Err {
	return &Err{Message: message}
}

func (e *Err) Error() string {
	return e.Message
}

// As returns the custom error from err chain.
func As(err error) (*Err, bool) {
	var e *Err
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}

// IsExpected checks if the given error or any error it wraps is of custom Err type.
func IsExpected(err error) bool {
	_, ok := As(err)
	return ok
}
