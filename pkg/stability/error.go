package stability

import (
	"errors"
	"fmt"
)

// Error represents a Stability API error.
type Error struct {
	// ID is the provider-assigned error ID for debugging.
	ID string `json:"id"`

	// Name is the machine-readable error name, e.g. "unauthorized".
	Name string `json:"name"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// HTTPStatus is the HTTP status code.
	HTTPStatus int `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("stability: %s (name=%s, status=%d)", e.Message, e.Name, e.HTTPStatus)
	}
	return fmt.Sprintf("stability: %s (status=%d)", e.Message, e.HTTPStatus)
}

// IsInvalidAPIKey returns true if the credential was rejected.
func (e *Error) IsInvalidAPIKey() bool {
	return e.HTTPStatus == 401 || e.HTTPStatus == 403 || e.Name == "unauthorized"
}

// IsInvalidRequest returns true if the request itself was malformed.
func (e *Error) IsInvalidRequest() bool {
	return e.HTTPStatus == 400 || e.Name == "bad_request"
}

// IsServerError returns true if this is a provider-side error.
func (e *Error) IsServerError() bool {
	return e.HTTPStatus >= 500
}

// AsError extracts *Error from an error.
//
// Example:
//
//	if e, ok := stability.AsError(err); ok {
//	    if e.IsInvalidAPIKey() {
//	        // Ask the user to fix their credential
//	    }
//	}
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
