package diseaseapi

import (
	"fmt"

	"emperror.dev/errors"
)

const (
	// ErrNetworkFailure covers transport errors and non-2xx answers.
	ErrNetworkFailure = errors.Sentinel("network failure")
	// ErrMalformedResponse covers bodies that don't decode into the expected shape.
	ErrMalformedResponse = errors.Sentinel("malformed response")

	ErrEmptyCountryCode = errors.Sentinel("empty country code")
)

// RequestError describes a failed call to the upstream API. It matches one of
// the sentinels above with errors.Is.
type RequestError struct {
	Kind       error
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Endpoint, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) Is(target error) bool { return target == e.Kind }
