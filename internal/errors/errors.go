// Package errors is the single import for error handling in this module.
// Sentinel checks go through the standard library; constructors attach
// stack traces via pkg/errors.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Find returns the first error in err's chain assignable to T.
func Find[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with a stack trace and message. Wrap(nil, ...) is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}

// Errorf is fmt.Errorf with a stack trace. It does not support %w.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
