package yaedit

import (
	"errors"

	"yaedit/internal/backoff"
)

// Error classifications for remote calls. Exactly these two are retryable
// with backoff; any other failure from a transform propagates on first
// occurrence.
var (
	// ErrAPI means the remote service responded but the payload was missing
	// or malformed: a logic-level failure.
	ErrAPI = errors.New("yandex API returned an unusable payload")

	// ErrRequest means the call failed at the transport or status level.
	ErrRequest = errors.New("yandex API request failed")
)

// Input validation errors.
var (
	ErrEmptyText     = errors.New("input text cannot be empty")
	ErrUnknownAction = errors.New("unknown transform action")
)

// retryable reports whether err carries one of the recognized
// classifications.
func retryable(err error) bool {
	return errors.Is(err, ErrAPI) || errors.Is(err, ErrRequest)
}

// errorKind maps an error to its backoff schedule key.
func errorKind(err error) backoff.Kind {
	switch {
	case errors.Is(err, ErrAPI):
		return backoff.KindAPI
	case errors.Is(err, ErrRequest):
		return backoff.KindRequest
	default:
		return backoff.KindDefault
	}
}
