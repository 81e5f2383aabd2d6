package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Error is an application error that maps directly onto an HTTP response.
// Detail is safe to return to the caller.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// Invalid reports malformed, oversized or undersized request data.
func Invalid(detail string) *Error {
	return &Error{Status: http.StatusBadRequest, Detail: detail}
}

// Conflict reports a uniqueness violation.
func Conflict(detail string) *Error {
	return &Error{Status: http.StatusConflict, Detail: detail}
}

// Unauthenticated reports a missing, bad or expired credential.
func Unauthenticated(detail string) *Error {
	return &Error{Status: http.StatusUnauthorized, Detail: detail}
}

// NotFound reports a missing or not-owned resource. Both causes produce
// the identical response so non-owners learn nothing about existence.
func NotFound(detail string) *Error {
	return &Error{Status: http.StatusNotFound, Detail: detail}
}

// Upstream reports a third-party provider failure. Mapped to 400 since the
// caller can correct it by restarting the flow.
func Upstream(detail string) *Error {
	return &Error{Status: http.StatusBadRequest, Detail: detail}
}

// ErrInvalidCredential reports a stored credential that is malformed or
// fails authenticated decryption. Rendered as 401 at the boundary.
var ErrInvalidCredential = errors.New("invalid credential")

// Write renders err as the standard {"detail": ...} error body. Errors that
// carry no Error value are rendered as an opaque 500 so internal state never
// leaks to the caller.
func Write(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := "Internal server error"

	var appErr *Error
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		detail = appErr.Detail
	case errors.Is(err, ErrInvalidCredential):
		status = http.StatusUnauthorized
		detail = "Invalid authentication"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
