package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed call. The classification feeds logs and metrics;
// the user always sees one generic message.
type Kind string

const (
	KindNetwork     Kind = "network"
	KindCredentials Kind = "credentials"
	KindConflict    Kind = "conflict"
	KindValidation  Kind = "validation"
	KindServer      Kind = "server"
	KindUnexpected  Kind = "unexpected"
)

// Error is returned by every Client call that does not succeed.
type Error struct {
	Op      string
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("%s: %s (%d): %s", e.Op, e.Kind, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s: %s (%d)", e.Op, e.Kind, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Reason is the metrics label for the failure.
func (e *Error) Reason() string { return string(e.Kind) }

// KindOf extracts the Kind of err, or KindUnexpected.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnexpected
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindCredentials
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindUnexpected
	}
}
