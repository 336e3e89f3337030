/*
Package core holds definitions shared by all parts of the font generator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package core

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// General error codes
const (
	NOERROR   int = 0
	EMISSING  int = 122 // resource does not exist
	EINVALID  int = 123 // validation failed
	EINTERNAL int = 125 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	if e.msg == "" || e.msg == e.error.Error() {
		return fmt.Sprintf("[%d] %v", e.code, e.error)
	}
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// ErrorWithCode adds an error code to err's error chain.
// Unlike pkg/errors, ErrorWithCode will wrap nil error.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, errorText(code)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting the code's default text is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks Code and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// ExitStatus maps an error to the process exit status of the command line tool.
// Invalid configurations exit with 2, every other failure with 1.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if isConfigError(err) {
		return 2
	}
	return 1
}

// UserError prints an error to stderr, formatted for end users.
func UserError(err error) {
	FprintUserError(os.Stderr, err)
}

// FprintUserError prints an error to w, formatted for end users.
func FprintUserError(w io.Writer, err error) {
	if e := AppError(nil); errors.As(err, &e) {
		fmt.Fprintf(w, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

// --- Configuration errors --------------------------------------------------

// ErrConfig is the root of all configuration validation errors.
var ErrConfig = errors.New("invalid configuration")

// ConfigError creates a validation error for a configuration setting.
func ConfigError(format string, v ...interface{}) error {
	return WrapError(ErrConfig, EINVALID, format, v...)
}

func isConfigError(err error) bool {
	return errors.Is(err, ErrConfig)
}
