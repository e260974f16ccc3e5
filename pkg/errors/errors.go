package errors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation  Kind = "validation"
	KindConflict    Kind = "conflict"
	KindNotFound    Kind = "not_found"
	KindPersistence Kind = "persistence"
)

// Error is the typed error returned by the ledger. Field is set for validation
// errors that belong to a single input field.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on kind, and on message too when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

var (
	ErrValidation  = &Error{Kind: KindValidation}
	ErrConflict    = &Error{Kind: KindConflict}
	ErrNotFound    = &Error{Kind: KindNotFound}
	ErrPersistence = &Error{Kind: KindPersistence}

	ErrTransactionNotFound         = &Error{Kind: KindNotFound, Message: "transaction not found"}
	ErrCreditNotFound              = &Error{Kind: KindNotFound, Message: "credit not found"}
	ErrCreditAlreadyExists         = &Error{Kind: KindConflict, Message: "credit already exists for transaction"}
	ErrTransactionAlreadyFinalized = &Error{Kind: KindConflict, Message: "transaction is already finalized"}
	ErrTransactionNotFinalized     = &Error{Kind: KindConflict, Message: "transaction is not finalized"}
	ErrStaleCredit                 = &Error{Kind: KindConflict, Message: "credit was modified concurrently"}
	ErrDuplicateRequest            = &Error{Kind: KindConflict, Message: "request already processed"}

	ErrNilTransaction     = errors.New("transaction is nil")
	ErrNilCredit          = errors.New("credit is nil")
	ErrNilPayment         = errors.New("payment is nil")
	ErrInvalidTransaction = errors.New("invalid transaction kind")
	ErrInvalidStatus      = errors.New("invalid payment status")
	ErrInvalidToken       = errors.New("invalid token")
)

func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Persistence wraps a storage failure. Typed errors pass through unchanged.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return err
	}
	return &Error{Kind: KindPersistence, Message: op, Err: err}
}

// KindOf reports the kind of a typed error, or KindPersistence for anything else.
func KindOf(err error) Kind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return KindPersistence
}

// FieldOf returns the offending field of a validation error.
func FieldOf(err error) string {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Field
	}
	return ""
}

// MessageOf returns the user facing message of a typed error.
func MessageOf(err error) string {
	var typed *Error
	if errors.As(err, &typed) && typed.Message != "" {
		return typed.Message
	}
	return ""
}
