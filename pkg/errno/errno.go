package errno

import "errors"

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// WithMessage returns a copy of e carrying msg, keeping the code
func (e Errno) WithMessage(msg string) Errno {
	e.Message = msg
	return e
}

// Is matches on code only, so errors.Is(ErrKeyConstruction.WithMessage(x), ErrKeyConstruction) holds
func (e Errno) Is(target error) bool {
	var t Errno
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Decode tries to convert an error to Errno
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var typed Errno
	if errors.As(err, &typed) {
		return typed.Code, typed.Message
	}
	var ptr *Errno
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Code, ptr.Message
	}
	return InternalServerError.Code, err.Error()
}

// Common Errors
var (
	OK                  = Errno{Code: 0, Message: "Success"}
	InternalServerError = Errno{Code: 10001, Message: "Internal server error"}
	ErrBind             = Errno{Code: 10002, Message: "Error occurred while binding the request body to the struct"}
	ErrDatabase         = Errno{Code: 10004, Message: "Database error"}
	ErrValidation       = Errno{Code: 10005, Message: "Validation error"}
)

// Key Errors (20000+)
var (
	ErrKeyConstruction = Errno{Code: 20101, Message: "Key construction failed"}
	ErrHandleNotFound  = Errno{Code: 20102, Message: "Key handle not found"}
	ErrInvalidMnemonic = Errno{Code: 20103, Message: "Invalid mnemonic"}
	ErrEmptyKey        = Errno{Code: 20104, Message: "Key handle holds no key material"}
	ErrInvalidSeedHex  = Errno{Code: 20105, Message: "Seed is not valid hex"}
)

// Wrap returns e carrying cause's text verbatim. errors.Is/As still reach cause.
func Wrap(e Errno, cause error) error {
	if cause == nil {
		return e
	}
	return &wrapped{Errno: e.WithMessage(cause.Error()), cause: cause}
}

type wrapped struct {
	Errno
	cause error
}

func (w *wrapped) Unwrap() []error {
	return []error{w.Errno, w.cause}
}
