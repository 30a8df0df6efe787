package errors

import "fmt"

const (
	ExitCodeFailure     = 1
	ExitCodeAuthFailure = 1
	ExitCodeInterrupted = 130
)

// CmdError is a custom error type for command errors, it will contain the error and the exit code
type CmdError struct {
	Cause error
	Code  int
}

func (e *CmdError) Error() string { return e.Cause.Error() }

func (e *CmdError) Unwrap() error { return e.Cause }

func NewCmdError(cause error, code int) *CmdError {
	return &CmdError{
		Cause: cause,
		Code:  code,
	}
}

func NewAuthErrorf(format string, args ...any) *CmdError {
	return NewCmdError(fmt.Errorf(format, args...), ExitCodeAuthFailure)
}

func NewInterruptedError(cause error) *CmdError {
	return NewCmdError(cause, ExitCodeInterrupted)
}
