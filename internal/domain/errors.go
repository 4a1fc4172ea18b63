package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTarget        = errors.New("invalid target")
	ErrNoTargetSelected     = errors.New("no peer or channel selected")
	ErrEmptyMessage         = errors.New("message is empty")
	ErrServiceUnavailable   = errors.New("directory service unavailable")
	ErrRequestRejected      = errors.New("request rejected")
	ErrTransportUnreachable = errors.New("transport unreachable")
	ErrNotRegistered        = errors.New("local identity is not registered")
	ErrProfileNotFound      = errors.New("profile not found")
)

// ServiceError is a failed call to the peer web application. It unwraps to
// Kind so callers can classify it with errors.Is.
type ServiceError struct {
	Kind       error
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	switch {
	case e.Message != "" && e.StatusCode != 0:
		return fmt.Sprintf("%s %s: status %d: %s", e.Kind, e.Endpoint, e.StatusCode, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s %s: %s", e.Kind, e.Endpoint, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: status %d", e.Kind, e.Endpoint, e.StatusCode)
	default:
		return fmt.Sprintf("%s %s", e.Kind, e.Endpoint)
	}
}

func (e *ServiceError) Unwrap() error {
	return e.Kind
}
