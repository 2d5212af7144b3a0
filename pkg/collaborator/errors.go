package collaborator

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

type ErrorKind string

const (
	ErrorKindValidation      ErrorKind = "ValidationError"
	ErrorKindUpstreamFailure ErrorKind = "UpstreamFailure"
	ErrorKindDataUnavailable ErrorKind = "DataUnavailable"
	ErrorKindUnexpected      ErrorKind = "UnexpectedError"
)

// Error is the in-band failure value passed between planner components
type Error struct {
	Kind       ErrorKind
	Service    Service
	Detail     string
	StatusCode int

	cause error
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.cause
}

// HTTPStatus is the status code the public API answers with for this error
func (e *Error) HTTPStatus() int {
	if e.Kind == ErrorKindValidation {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func NewValidationError(format string, args ...any) *Error {
	return &Error{
		Kind:   ErrorKindValidation,
		Detail: fmt.Sprintf(format, args...),
	}
}

func NewUpstreamFailure(service Service, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    ErrorKindUpstreamFailure,
		Service: service,
		Detail:  fmt.Sprintf(format, args...),
		cause:   cause,
	}
}

func NewDataUnavailable(service Service, format string, args ...any) *Error {
	return &Error{
		Kind:    ErrorKindDataUnavailable,
		Service: service,
		Detail:  fmt.Sprintf(format, args...),
	}
}

func NewUnexpectedError(cause error) *Error {
	detail := "Unexpected error"
	if cause != nil {
		detail = fmt.Sprintf("Error in journey planning: %s", cause.Error())
	}

	return &Error{
		Kind:   ErrorKindUnexpected,
		Detail: detail,
		cause:  cause,
	}
}

// AsError returns err as an *Error, anything that is not already one is treated as
// an unexpected fault
func AsError(err error) *Error {
	if err == nil {
		return nil
	}

	var collaboratorError *Error
	if errors.As(err, &collaboratorError) {
		return collaboratorError
	}

	return NewUnexpectedError(err)
}

func IsKind(err error, kind ErrorKind) bool {
	var collaboratorError *Error
	if errors.As(err, &collaboratorError) {
		return collaboratorError.Kind == kind
	}

	return false
}
