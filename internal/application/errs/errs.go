package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNoChoices = errors.New("completion has no choices")
	ErrNoContent = errors.New("completion choice has no message content")
)

// ProviderError is returned for every failed call to the correction provider.
// StatusCode is zero when no HTTP response was received.
type ProviderError struct {
	StatusCode int
	Err        error
}

func (t ProviderError) Error() string {
	if t.StatusCode != 0 {
		return fmt.Sprintf("correction provider error, status %d: %v", t.StatusCode, t.Err)
	}
	return fmt.Sprintf("correction provider error: %v", t.Err)
}

func (t ProviderError) Unwrap() error {
	return t.Err
}
