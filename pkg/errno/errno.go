package errno

import (
	"errors"
	"fmt"
)

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// WithMessage returns a copy of e carrying a more specific message.
func (e Errno) WithMessage(msg string) Errno {
	e.Message = msg
	return e
}

// Wrap attaches detail to e while keeping it matchable with errors.Is.
func (e Errno) Wrap(detail string) error {
	return fmt.Errorf("%w: %s", e, detail)
}

// Decode tries to convert an error to Errno. Wrapped errors keep their
// code but report the full message.
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var typed Errno
	if errors.As(err, &typed) {
		return typed.Code, err.Error()
	}
	var ptr *Errno
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Code, err.Error()
	}
	return InternalServerError.Code, err.Error()
}

// Common Errors
var (
	OK                  = Errno{Code: 0, Message: "Success"}
	InternalServerError = Errno{Code: 10001, Message: "Internal server error"}
	ErrBind             = Errno{Code: 10002, Message: "Error occurred while binding the request body to the struct"}
)

// Business Errors (30000+)
var (
	ErrInvalidNetwork  = Errno{Code: 30101, Message: "Invalid network"}
	ErrInvalidMnemonic = Errno{Code: 30102, Message: "Invalid mnemonic"}
	ErrInvalidPolicy   = Errno{Code: 30103, Message: "Invalid wallet policy"}
	ErrInvalidSeed     = Errno{Code: 30104, Message: "Invalid seed"}
)
