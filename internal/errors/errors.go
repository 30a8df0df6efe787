package errors

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorType string

const (
	ErrFailedPrecond    ErrorType = "Failed Precondition"
	ErrInternalError    ErrorType = "Internal Error"
	ErrInvalidArgument  ErrorType = "Invalid Argument"
	ErrNotFound         ErrorType = "Not Found"
	ErrUnauthenticated  ErrorType = "Unauthenticated"
	ErrPermissionDenied ErrorType = "Permission Denied"
)

func (e ErrorType) String() string {
	return string(e)
}

// DomainError is the error returned by core packages. Status holds the remote HTTP
// status when the error originates from an API response, zero otherwise.
type DomainError struct {
	ErrorType  ErrorType
	Entity     string
	Message    string
	Status     int
	WrappedErr error
}

func NewError(errType ErrorType, entity, msg string) *DomainError {
	return &DomainError{
		ErrorType: errType,
		Entity:    entity,
		Message:   msg,
	}
}

// NewRemoteError builds a domain error from a remote response status and message.
func NewRemoteError(errType ErrorType, entity string, status int, msg string) *DomainError {
	return &DomainError{
		ErrorType: errType,
		Entity:    entity,
		Message:   msg,
		Status:    status,
	}
}

func InvalidArgument(entity, msg string) *DomainError {
	return NewError(ErrInvalidArgument, entity, msg)
}

func NotFound(entity, msg string) *DomainError {
	return NewError(ErrNotFound, entity, msg)
}

func Unauthenticated(entity, msg string) *DomainError {
	return NewError(ErrUnauthenticated, entity, msg)
}

func InternalError(entity, msg string, err error) *DomainError {
	return &DomainError{
		ErrorType:  ErrInternalError,
		Entity:     entity,
		Message:    msg,
		WrappedErr: err,
	}
}

// Wrap re-labels an error under a different entity, keeping the type when it is a DomainError.
func Wrap(entity, msg string, err error) error {
	if err == nil {
		return nil
	}

	var de *DomainError
	if errors.As(err, &de) {
		return &DomainError{
			ErrorType:  de.ErrorType,
			Entity:     entity,
			Message:    msg,
			Status:     de.Status,
			WrappedErr: err,
		}
	}

	return InternalError(entity, msg, err)
}

func (e *DomainError) Error() string {
	if e.WrappedErr != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.WrappedErr.Error())
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.WrappedErr
}

func (e *DomainError) DebugString() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s", e.ErrorType, e.Entity))
	if e.Status != 0 {
		sb.WriteString(fmt.Sprintf(" (HTTP %d)", e.Status))
	}
	sb.WriteString(": ")
	sb.WriteString(e.Error())
	return sb.String()
}

func New(msg string) error {
	return errors.New(msg)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func IsErrorType(err error, errType ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.ErrorType == errType
	}
	return false
}

// MultiError collects errors of operations that keep going after a failure.
type MultiError struct {
	msg    string
	Errors []error
}

func NewMultiError(msg string) *MultiError {
	return &MultiError{msg: msg}
}

func (m *MultiError) Append(err error) {
	if err == nil {
		return
	}

	var me *MultiError
	if errors.As(err, &me) {
		m.Errors = append(m.Errors, me.Errors...)
		return
	}

	m.Errors = append(m.Errors, err)
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(m.msg)
	sb.WriteString(":")
	for _, err := range m.Errors {
		sb.WriteString("\n - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (m *MultiError) ToErr() error {
	if len(m.Errors) == 0 {
		return nil
	}
	return m
}
