package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserExists is returned when registering an email that is already taken.
	ErrUserExists = errors.New("User is Already Exists")
	// ErrInvalidEmail is returned when login finds no user for the email.
	ErrInvalidEmail = errors.New("Invalid Email")
	// ErrInvalidPassword is returned when the password does not match the stored digest.
	ErrInvalidPassword = errors.New("Invalid Password")
	// ErrUserNotFound is returned when a verified identity has no backing record.
	ErrUserNotFound = errors.New("User Not Found")
	// ErrEventExists is returned when uploading an event whose name is already taken.
	ErrEventExists = errors.New("Event is Already Exists")
	// ErrEventNotFound is returned when no event matches a lookup.
	ErrEventNotFound = errors.New("No Events Found")
	// ErrNoToken is returned when a protected route is hit without a token header.
	ErrNoToken = errors.New("No Token Provided. Access Denied")
	// ErrInvalidToken is returned when token verification fails.
	ErrInvalidToken = errors.New("Invalid Token. Access Denied")
	// ErrServerMisconfigured is returned when the signing secret is absent.
	ErrServerMisconfigured = errors.New("Server Misconfigured. Access Denied")
)

// ErrorMessage is a single client-facing failure message.
type ErrorMessage struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the envelope every failure path responds with.
type ErrorResponse struct {
	Errors []ErrorMessage `json:"errors"`
}

// NewErrorResponse builds an ErrorResponse from one or more messages.
func NewErrorResponse(msgs ...string) ErrorResponse {
	out := ErrorResponse{Errors: make([]ErrorMessage, 0, len(msgs))}
	for _, m := range msgs {
		out.Errors = append(out.Errors, ErrorMessage{Msg: m})
	}
	return out
}

// StatusFor maps a domain error to its HTTP status code. Unknown errors are
// treated as store failures and answered with an opaque 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrUserExists),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidPassword),
		errors.Is(err, ErrEventExists):
		return http.StatusBadRequest
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoToken), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ResponseFor converts a domain error into the client envelope. Anything that
// is not part of the taxonomy is redacted to a generic message; the cause is
// for the server log, not the client.
func ResponseFor(err error) ErrorResponse {
	if StatusFor(err) == http.StatusInternalServerError {
		return NewErrorResponse("Internal Server Error")
	}
	return NewErrorResponse(err.Error())
}
