package domain

import (
	"errors"
	"net/http"
)

type ErrorKind string

const (
	ErrorKindClinicNotFound  ErrorKind = "clinic_not_found"
	ErrorKindInvalidRange    ErrorKind = "invalid_range"
	ErrorKindInternalFailure ErrorKind = "internal_failure"
)

// Error is the typed failure of a timeslots request. Code is the HTTP-like status
// reported to callers in the error envelope.
type Error struct {
	Kind    ErrorKind
	Code    int
	Message string
	Err     error
}

var (
	ErrClinicNotFound = &Error{
		Kind:    ErrorKindClinicNotFound,
		Code:    http.StatusBadRequest,
		Message: "Clinic does not exist",
	}
	ErrInvalidRange = &Error{
		Kind:    ErrorKindInvalidRange,
		Code:    http.StatusBadRequest,
		Message: "Invalid date range",
	}
	ErrInternalFailure = &Error{
		Kind:    ErrorKindInternalFailure,
		Code:    http.StatusInternalServerError,
		Message: "Internal failure",
	}
)

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind so that errors.Is(err, ErrInternalFailure)
// holds for every wrapped internal failure.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

// NewInternalFailure wraps an unexpected fault. The message of the underlying error
// is reported to the caller as is.
func NewInternalFailure(err error) *Error {
	if err == nil {
		err = errors.New(ErrInternalFailure.Message)
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return &Error{
		Kind:    ErrorKindInternalFailure,
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
		Err:     err,
	}
}

type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

func ToErrorEnvelope(err error) ErrorEnvelope {
	typed := NewInternalFailure(err)
	return ErrorEnvelope{
		Error: ErrorBody{
			Code:    typed.Code,
			Message: typed.Message,
		},
	}
}

func NewBadRequestEnvelope(message string) ErrorEnvelope {
	return ErrorEnvelope{
		Error: ErrorBody{
			Code:    http.StatusBadRequest,
			Message: message,
		},
	}
}
