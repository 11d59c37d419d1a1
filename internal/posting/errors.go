package posting

import (
	"errors"
	"fmt"
)

// Kind classifies a failure of the posting engine.
type Kind string

const (
	KindInvalidHeader           Kind = "InvalidHeader"
	KindInvalidPostingStructure Kind = "InvalidPostingStructure"
	KindCurrencyMismatch        Kind = "CurrencyMismatch"
	KindAccountNotFound         Kind = "AccountNotFound"
	KindUserNotFound            Kind = "UserNotFound"
	KindFxRateNotFound          Kind = "FxRateNotFound"
	KindUnbalancedPosting       Kind = "UnbalancedPosting"
	KindInvalidAccountForTxType Kind = "InvalidAccountForTxType"
	KindConstraintViolation     Kind = "ConstraintViolation"
)

// Sentinels for errors.Is; they match any *Error of the same Kind.
var (
	ErrInvalidHeader           = &Error{Kind: KindInvalidHeader}
	ErrInvalidPostingStructure = &Error{Kind: KindInvalidPostingStructure}
	ErrCurrencyMismatch        = &Error{Kind: KindCurrencyMismatch}
	ErrAccountNotFound         = &Error{Kind: KindAccountNotFound}
	ErrUserNotFound            = &Error{Kind: KindUserNotFound}
	ErrFxRateNotFound          = &Error{Kind: KindFxRateNotFound}
	ErrUnbalancedPosting       = &Error{Kind: KindUnbalancedPosting}
	ErrInvalidAccountForTxType = &Error{Kind: KindInvalidAccountForTxType}
	ErrConstraintViolation     = &Error{Kind: KindConstraintViolation}
)

// Error is a typed, user-presentable failure. Message is the actionable text;
// Err optionally carries the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
