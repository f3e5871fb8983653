package httperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrNotFound(code, format string, args ...any) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: fmt.Sprintf(format, args...)}
}

func ErrConflict(code, format string, args ...any) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: fmt.Sprintf(format, args...)}
}

func ErrUnauthorized(code, format string, args ...any) error {
	return BusinessError{Kind: KindUnauthorized, Code: code, Message: fmt.Sprintf(format, args...)}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf returns the error kind, or KindInternal for anything that is not
// a BusinessError (store failures, context cancellation and the like).
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}
