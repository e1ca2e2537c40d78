// Package errors is the one import infrastructure code needs for errors:
// matching comes from the standard library, wrapping records a stack.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	Is     = stderrors.Is
	As     = stderrors.As
	Join   = stderrors.Join
	Unwrap = stderrors.Unwrap

	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
)

// New returns a plain error without a stack; sentinels compare by identity.
func New(text string) error {
	return stderrors.New(text)
}

// Errorf formats a message and records a stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
