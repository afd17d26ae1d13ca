package usecase

import "fmt"

type ErrorKind int

const (
	KindInvalidInput ErrorKind = iota
	KindNotFound
	KindConflict
	KindInvalidState
	KindUnauthorized
	KindInternal
)

// Error is the error type every service returns. Handlers map Kind to an
// HTTP status and use Message as the response body.
type Error struct {
	Kind    ErrorKind
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

func ErrInvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func ErrNotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func ErrConflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func ErrInvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func ErrUnauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func errInternal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}
