package errcodes

import "fmt"

// Error carries a code and a caller-facing message for failures raised
// outside the domain layer, such as request decoding.
type Error struct {
	code    ErrorCode
	message string
	cause   error
}

func Wrap(err error, code ErrorCode, message string) *Error {
	return &Error{
		code:    code,
		message: message,
		cause:   err,
	}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}

	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) ErrorCode() ErrorCode {
	return e.code
}

func (e *Error) Description() string {
	return e.message
}
