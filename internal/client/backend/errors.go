package backend

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Error kinds the backend client surfaces. Callers branch on these with
// errors.Is; the concrete *APIError carries the server's message when one
// was returned.
var (
	ErrTimeout      = errors.New("network timeout")
	ErrUnavailable  = errors.New("network unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid request")
	ErrServer       = errors.New("server error")
)

// APIError describes a failed call against the auth API.
type APIError struct {
	Op      string
	Kind    error
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *APIError) Unwrap() error { return e.Kind }

// classifyTransport maps a transport-level failure to ErrTimeout or
// ErrUnavailable. Timeouts are the only bound on call duration; they are
// surfaced distinctly so the UI can offer a retry.
func classifyTransport(op string, err error) *APIError {
	kind := ErrUnavailable
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = ErrTimeout
	}
	return &APIError{Op: op, Kind: kind, Message: err.Error()}
}

func kindForStatus(status int) error {
	switch status {
	case 400:
		return ErrInvalid
	case 401:
		return ErrUnauthorized
	case 409:
		return ErrConflict
	default:
		return ErrServer
	}
}
