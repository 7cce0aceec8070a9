package api

import (
	"errors"
	"net/http"
)

// GenericErrorMessage is used whenever the backend response carries no usable
// "detail" field, or the request never reached the backend at all.
const GenericErrorMessage = "an unexpected error occurred"

// Error is a failure reported by (or on the way to) the backend. Detail holds
// the backend's "detail" text verbatim when one was present. Status is zero
// for transport-level failures.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
