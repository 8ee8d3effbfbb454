package impactapi

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstream covers transport failures and non-2xx responses.
	ErrUpstream = errors.New("impact api request failed")
	// ErrMalformedPayload covers undecodable or invalid response bodies.
	ErrMalformedPayload = errors.New("impact api returned malformed payload")
)

type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("impact api %s returned status %d", e.Path, e.Code)
}

func (e *StatusError) Unwrap() error { return ErrUpstream }

type PayloadError struct {
	Path string
	Err  error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("impact api %s: malformed payload: %v", e.Path, e.Err)
}

func (e *PayloadError) Is(target error) bool { return target == ErrMalformedPayload }

func (e *PayloadError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a 404 from the impact API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == 404
}
