package errors

import "net/http"

// HTTPError is a user-facing error carrying an HTTP status code.
// Delivery layers build these from domain errors; pkg/response knows
// how to render them.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}
