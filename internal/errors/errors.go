// Package errors re-exports the standard error helpers next to the stack-recording ones from
// github.com/pkg/errors, so callers need a single import.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Inspection and construction without stack traces.
var (
	New  = stderrors.New
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// Wrapping helpers. Each records the caller's stack; Wrap and Wrapf return nil for a nil err.
var (
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	Errorf    = pkgerrors.Errorf
)
