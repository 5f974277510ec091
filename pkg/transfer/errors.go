package transfer

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind tags why a transfer failed. Every component that can fail a
// transfer produces one of these; nothing downstream inspects messages.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidSignature
	KindInvalidAddress
	KindInvalidAmount
	KindInsufficientBalance
	KindInsufficientAllowance
	KindRPCError
	KindReverted
	KindTimeout
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidSignature:
		return "InvalidSignature"
	case KindInvalidAddress:
		return "InvalidAddress"
	case KindInvalidAmount:
		return "InvalidAmount"
	case KindInsufficientBalance:
		return "InsufficientBalance"
	case KindInsufficientAllowance:
		return "InsufficientAllowance"
	case KindRPCError:
		return "RPCError"
	case KindReverted:
		return "Reverted"
	case KindTimeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

// IsValidation reports whether the kind is a precondition failure detected
// before any on-chain write.
func (k ErrorKind) IsValidation() bool {
	switch k {
	case KindInvalidAddress, KindInvalidAmount, KindInsufficientBalance, KindInsufficientAllowance:
		return true
	}
	return false
}

// Error is a tagged transfer failure
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a tagged error with a human-readable message
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError tags err with kind. A context deadline is always reported as
// KindTimeout regardless of the requested kind.
func WrapError(kind ErrorKind, message string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind of err, or KindUnknown when err carries no tag.
func KindOf(err error) ErrorKind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindUnknown
}
