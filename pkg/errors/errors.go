package errors

import (
	"errors"
	"fmt"
)

const (
	CodeFetchFailed   = "FETCH_FAILED"
	CodeMalformedPage = "MALFORMED_PAGE"
	CodeInvalidInput  = "INVALID_INPUT"
)

// Common errors
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrFetchFailed   = errors.New("could not fetch")
	ErrMalformedPage = errors.New("malformed page")
)

// Error carries a machine readable code next to the message
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// FetchFailed reports that nothing usable came back from url.
func FetchFailed(url string) error {
	return WrapWithCode(ErrFetchFailed, CodeFetchFailed, fmt.Sprintf("error retrieving content at %s", url))
}

// Malformed reports a page missing a structural element it must have.
func Malformed(url, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if url != "" {
		msg = fmt.Sprintf("%s (%s)", msg, url)
	}
	return WrapWithCode(ErrMalformedPage, CodeMalformedPage, msg)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func Join(errs ...error) error {
	return errors.Join(errs...)
}

// GetCode returns the code of the first coded error in the chain
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsFetchFailed(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}

func IsMalformedPage(err error) bool {
	return errors.Is(err, ErrMalformedPage)
}
