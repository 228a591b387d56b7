package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Error is the single error type the client returns: a transport or
// HTTP failure carrying the fixed user-facing message for its class.
// Detail keeps whatever the backend said, for logs only.
type Error struct {
	Status  int    `json:"status,omitempty"`
	Message string `json:"message"`
	Detail  string `json:"-"`
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return "api: " + e.Message
}

// AsError unwraps err into *Error if it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func transportError(err error) *Error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{
			Message: "Request timed out. The server took too long to respond. Please try again.",
			Detail:  err.Error(),
		}
	}
	return &Error{
		Message: "Unable to connect to the server. Please check your internet connection and ensure the backend server is running.",
		Detail:  err.Error(),
	}
}

func statusError(status int, body []byte) *Error {
	e := &Error{Status: status, Message: reasonForStatus(status), Detail: string(body)}

	// A backend-supplied message wins over the generic one.
	var envelope struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &envelope) == nil && strings.TrimSpace(envelope.Message) != "" {
		e.Message = envelope.Message
	}
	return e
}

func reasonForStatus(status int) string {
	switch status {
	case 400:
		return "Invalid request. Please check your input and try again."
	case 401:
		return "You are not authenticated. Please log in and try again."
	case 403:
		return "You don't have permission to perform this action. Contact an administrator if you believe this is an error."
	case 404:
		return "The requested resource was not found. The endpoint or resource may have been moved or removed."
	case 409:
		return "A conflict occurred. This usually means a duplicate entry already exists."
	case 500:
		return "Internal server error. The server encountered an unexpected error. Please try again later."
	case 502:
		return "Bad gateway. The server is temporarily unavailable. Please try again later."
	case 503:
		return "Service unavailable. The server is temporarily down for maintenance. Please try again later."
	default:
		return fmt.Sprintf("Request failed with status code %d. Please try again.", status)
	}
}
