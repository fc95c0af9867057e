package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrAuthorization will throw if the invocation lacks a required signer
	ErrAuthorization = errors.New("missing required authority")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrValidation will throw if the given params are malformed
	ErrValidation = errors.New("Given Param is not valid")
	// ErrPrecondition will throw if the ledger state does not allow the action yet
	ErrPrecondition = errors.New("precondition failed")
	// ErrConflict will throw if the action collides with existing state
	ErrConflict = errors.New("Your Item already exist")

	ErrInvalidName   = errors.New("invalid account name")
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrInvalidAsset  = errors.New("invalid asset")
)

// Error is a business failure of one of the kinds above with a message for the caller
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Errorf builds an *Error of the given kind
func Errorf(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, ErrInternalServerError if err is not a business failure
func KindOf(err error) error {
	for _, kind := range []error{ErrAuthorization, ErrNotFound, ErrValidation, ErrPrecondition, ErrConflict} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ErrInternalServerError
}
