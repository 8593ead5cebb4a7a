// Package apperr classifies failures that cross the generation pipeline boundary.
//
// Every failure reported by the orchestrator carries exactly one Kind so callers
// can tell bad input apart from an unreachable service, a service-side failure
// and a malformed payload.
package apperr

import (
	"errors"
	"fmt"
)

// Kind names a failure class.
type Kind string

const (
	// KindValidation is malformed input rejected before any network call.
	KindValidation Kind = "validation"
	// KindNetwork is a request that never reached the service.
	KindNetwork Kind = "network"
	// KindService is a reachable service answering with a failure.
	KindService Kind = "service"
	// KindFormat is a successful response whose payload breaks the contract.
	KindFormat Kind = "format"
)

// Error is a classified failure.
type Error struct {
	Kind    Kind
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Status != 0 && e.Op != "":
		return fmt.Sprintf("%s: %s error (status %d): %s", e.Op, e.Kind, e.Status, msg)
	case e.Op != "":
		return fmt.Sprintf("%s: %s error: %s", e.Op, e.Kind, msg)
	default:
		return fmt.Sprintf("%s error: %s", e.Kind, msg)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a KindValidation error.
func Validation(op, format string, args ...any) error {
	return &Error{Kind: KindValidation, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Network wraps a transport failure.
func Network(op string, err error) error {
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}

// Service builds a KindService error. status is 0 when the failure came from an
// error payload on an otherwise successful response.
func Service(op string, status int, message string) error {
	return &Error{Kind: KindService, Op: op, Status: status, Message: message}
}

// Format wraps a payload contract violation.
func Format(op string, err error) error {
	return &Error{Kind: KindFormat, Op: op, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
