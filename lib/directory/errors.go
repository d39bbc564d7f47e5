package directory

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse indicates a member listing that could not be
	// decoded, or that decoded with required member fields missing.
	ErrMalformedResponse = errors.New("malformed users.list response")

	// ErrDeliveryFailed indicates the send endpoint rejected the message.
	ErrDeliveryFailed = errors.New("message delivery failed")

	// ErrUserNotFound indicates a display name that matches no workspace
	// member, even after refreshing the directory.
	ErrUserNotFound = errors.New("user not found")
)

// APIError is a logical failure reported by the Slack Web API, a response
// that decoded fine but carries ok: false.
type APIError struct {
	Method string
	Code   string
}

func (e *APIError) Error() string {
	code := e.Code
	if code == "" {
		code = "unknown error"
	}
	return fmt.Sprintf("slack api error calling %s: %s", e.Method, code)
}
