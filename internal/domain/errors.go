package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for domain operations
var (
	// ErrServerOffline indicates the catalog API could not be reached
	ErrServerOffline = errors.New("catalog server is unreachable")

	// ErrMalformedResponse indicates the API answered with a body that could not be decoded
	ErrMalformedResponse = errors.New("malformed response from catalog server")

	// ErrAuthFailed indicates the API rejected the session credentials
	ErrAuthFailed = errors.New("authentication failed")
)

// NetworkError is a request that could not complete: the server was
// unreachable, or the response could not be read or decoded.
type NetworkError struct {
	Op  Operation
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is a response the server reported as a failure. Message is the
// server's own text, passed through verbatim and possibly empty.
type APIError struct {
	Op      Operation
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: server returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Is reports 401 responses as ErrAuthFailed
func (e *APIError) Is(target error) bool {
	return target == ErrAuthFailed && e.Status == http.StatusUnauthorized
}

// FailureMessage returns the text shown to the user for a failed operation.
// API failures yield the server message verbatim (possibly empty).
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Err.Error()
	}
	return err.Error()
}

// FailureStatus returns the HTTP status of an API failure, or 0
func FailureStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
