// SPDX-License-Identifier: MIT
// Package: rangenote/notation
//
// errors.go — violation sentinels and the structured ParseError.
//
// Error policy (explicit and strict):
//   - Every parse failure is a *ParseError carrying (message, input,
//     position, cause) plus a violation-class sentinel.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics and MAY
//     use errors.As to reach the structured fields.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Engines MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package notation

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInputTooLong indicates the raw input exceeds maxInputLength.
// Usage: if errors.Is(err, notation.ErrInputTooLong) { /* reject input */ }.
var ErrInputTooLong = errors.New("notation: input too long")

// ErrEmptyInput indicates the input was empty after trimming whitespace.
var ErrEmptyInput = errors.New("notation: empty input")

// ErrBadFormat indicates a structural violation: bad brackets, missing
// ".." separator, or an empty endpoint.
var ErrBadFormat = errors.New("notation: invalid range format")

// ErrInfinityBound indicates a closed bracket on an infinite endpoint.
// An infinite endpoint cannot be included, so closed-infinite is rejected
// rather than silently coerced to open.
var ErrInfinityBound = errors.New("notation: infinity bound must be open")

// ErrNoAdapter indicates no type adapter is registered for the requested
// element type.
var ErrNoAdapter = errors.New("notation: no type adapter registered")

// ErrValueParse indicates an endpoint failed the adapter's own conversion;
// the adapter's error is preserved as the cause.
var ErrValueParse = errors.New("notation: endpoint conversion failed")

// ErrNilValue indicates a custom adapter produced a typed-nil value instead
// of failing. Built-in adapters never trigger this class.
var ErrNilValue = errors.New("notation: adapter returned nil value")

// ErrBoundsOrder indicates the lower endpoint exceeds the upper endpoint
// under the element type's ordering.
var ErrBoundsOrder = errors.New("notation: lower bound greater than upper bound")

// ParseError is the single structured failure value of the notation engines.
//
// Pos is reserved for a character offset into Input; the engines currently
// report 0 everywhere (offset tracking is not implemented beyond reserving
// the field), and Error() renders a caret line only for a known non-zero
// offset.
type ParseError struct {
	// Msg is the self-describing violation text.
	Msg string
	// Input is the offending input (possibly a truncated preview).
	Input string
	// Pos is the 0-based character offset of the violation; 0 when unknown.
	Pos int
	// Cause is the underlying adapter error, when one exists.
	Cause error

	kind error // violation-class sentinel, reachable via errors.Is
}

// newParseError builds a ParseError for the given violation class.
func newParseError(kind error, msg, input string, pos int) *ParseError {
	return &ParseError{Msg: msg, Input: input, Pos: pos, kind: kind}
}

// newParseErrorCause builds a ParseError that preserves an underlying cause.
func newParseErrorCause(kind error, msg, input string, pos int, cause error) *ParseError {
	return &ParseError{Msg: msg, Input: input, Pos: pos, Cause: cause, kind: kind}
}

// Error renders the message, a quoted copy of the input, and — when a
// non-zero in-bounds offset is known — a caret line pointing at it.
func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Msg)
	sb.WriteString("\n  Input: \"")
	sb.WriteString(e.Input)
	sb.WriteString("\"")
	if e.Pos > 0 && e.Pos < len(e.Input) {
		sb.WriteString("\n         ")
		sb.WriteString(strings.Repeat(" ", e.Pos))
		sb.WriteString("^")
	}

	return sb.String()
}

// Unwrap exposes the violation-class sentinel and the underlying cause so
// errors.Is/errors.As traverse both.
func (e *ParseError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.kind != nil {
		out = append(out, e.kind)
	}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}

	return out
}
