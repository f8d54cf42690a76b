// Package errs holds the error kinds shared by the ledger packages.
package errs

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidData
	KindNotFound
	KindDuplicateRecord
	KindRepositoryFailure
	KindAmountTooLarge
)

func (k Kind) String() string {
	switch k {
	case KindInvalidData:
		return "invalid data"
	case KindNotFound:
		return "not found"
	case KindDuplicateRecord:
		return "duplicate record"
	case KindRepositoryFailure:
		return "repository failure"
	case KindAmountTooLarge:
		return "amount too large"
	default:
		return "unknown"
	}
}

// Error is the single structured error value returned by the core.
// Field and Value describe the offending input for KindInvalidData,
// Index the requested position for KindNotFound.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Value   any
	Index   int
	Err     error
}

var (
	ErrInvalidData       = &Error{Kind: KindInvalidData}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrDuplicateRecord   = &Error{Kind: KindDuplicateRecord}
	ErrRepositoryFailure = &Error{Kind: KindRepositoryFailure}
	ErrAmountTooLarge    = &Error{Kind: KindAmountTooLarge}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field: %s, value: %v)", msg, e.Field, e.Value)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match against the kind sentinels, so callers can write
// errors.Is(err, errs.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Field == "" && t.Err == nil && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error found in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func InvalidData(message, field string, value any) *Error {
	return &Error{Kind: KindInvalidData, Message: message, Field: field, Value: value, Index: -1}
}

func NotFound(message string, index int) *Error {
	return &Error{Kind: KindNotFound, Message: message, Index: index}
}

func Duplicate(date, description string) *Error {
	return &Error{
		Kind:    KindDuplicateRecord,
		Message: fmt.Sprintf("expense on %s already recorded: %q", date, description),
		Index:   -1,
	}
}

func Repository(message string, err error) *Error {
	return &Error{Kind: KindRepositoryFailure, Message: message, Err: err, Index: -1}
}

func AmountTooLarge(amount, max decimal.Decimal) *Error {
	return &Error{
		Kind:    KindAmountTooLarge,
		Message: fmt.Sprintf("amount %s exceeds maximum %s", amount.String(), max.String()),
		Field:   "amount",
		Value:   amount.String(),
		Index:   -1,
	}
}
