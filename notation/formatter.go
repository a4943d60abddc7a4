// SPDX-License-Identifier: MIT
// Package: rangenote/notation
//
// formatter.go — the notation formatter engine and infinity styles.
//
// Design contract (strict):
//   - Format emits canonical notation: bracket, lower text, "..", upper
//     text, bracket. An absent bound renders as '(' or ')' around the
//     configured infinity text.
//   - Endpoint text is the element type's own canonical form (the form its
//     adapter parses back); the engine only adapts it, it never reimplements
//     type-specific formatting.
//   - Engines are immutable after NewFormatter and safe for concurrent use.
//
// Guarantee: Parse(Format(r)) == r for every range the parser itself can
// construct — all four built-in infinity styles are members of the parser's
// infinity-detection sets, and every built-in adapter parses its own
// canonical text.

package notation

import (
	"reflect"
	"strings"

	"github.com/katalvlaran/rangenote/interval"
)

// InfinityStyle selects the textual rendering pair for unbounded endpoints.
type InfinityStyle uint8

const (
	// StyleSymbol renders +∞ / -∞ (compact, mathematically standard).
	StyleSymbol InfinityStyle = iota
	// StyleWordLower renders +inf / -inf (ASCII-safe).
	StyleWordLower
	// StyleWordUpper renders +INF / -INF (ASCII-safe, uppercase).
	StyleWordUpper
	// StyleWordFull renders +Infinity / -Infinity (most readable).
	StyleWordFull
)

// infinityTexts pairs each style with its (positive, negative) rendering.
var infinityTexts = [...][2]string{
	StyleSymbol:    {"+∞", "-∞"},
	StyleWordLower: {"+inf", "-inf"},
	StyleWordUpper: {"+INF", "-INF"},
	StyleWordFull:  {"+Infinity", "-Infinity"},
}

// Positive returns the style's positive-infinity text.
func (s InfinityStyle) Positive() string { return infinityTexts[s][0] }

// Negative returns the style's negative-infinity text.
func (s InfinityStyle) Negative() string { return infinityTexts[s][1] }

// String names the style for diagnostics.
func (s InfinityStyle) String() string {
	switch s {
	case StyleSymbol:
		return "symbol"
	case StyleWordLower:
		return "word-lower"
	case StyleWordUpper:
		return "word-upper"
	case StyleWordFull:
		return "word-full"
	default:
		return "unknown"
	}
}

// Formatter renders interval.Range values as notation text. Build one with
// NewFormatter; instances are immutable and may be shared across goroutines.
type Formatter struct {
	style   InfinityStyle
	formats map[reflect.Type]func(any) string
}

// NewFormatter resolves options into an independent, immutable engine
// snapshot. Built-in format functions are installed first, then caller
// overrides overlay them. The option slice may be reused between builds.
// Complexity: O(len(opts) + built-in table size).
func NewFormatter(opts ...FormatterOption) *Formatter {
	cfg := newFormatterConfig(opts...)

	table := builtinFormats()
	for key, fn := range cfg.overrides {
		table[key] = fn
	}

	return &Formatter{style: cfg.style, formats: table}
}

// defaultFormatter renders with StyleSymbol, matching the parser's default
// round-trip expectations.
var defaultFormatter = NewFormatter()

// FormatRange renders a range with the default (symbol-style) formatter.
//
// Example:
//
//	notation.FormatRange(interval.ClosedOpen(0, 100)) // "[0..100)"
func FormatRange[T any](r interval.Range[T]) string {
	return Format(defaultFormatter, r)
}

// Format renders a range with a configured formatter.
// Complexity: O(len(output)).
func Format[T any](f *Formatter, r interval.Range[T]) string {
	var sb strings.Builder

	if lower, ok := r.LowerEndpoint(); ok {
		if r.LowerBoundType() == interval.BoundClosed {
			sb.WriteByte(bracketClosedLower)
		} else {
			sb.WriteByte(bracketOpenLower)
		}
		sb.WriteString(endpointText(f.formats, lower))
	} else {
		sb.WriteByte(bracketOpenLower)
		sb.WriteString(f.style.Negative())
	}

	sb.WriteString(separator)

	if upper, ok := r.UpperEndpoint(); ok {
		sb.WriteString(endpointText(f.formats, upper))
		if r.UpperBoundType() == interval.BoundClosed {
			sb.WriteByte(bracketClosedUpper)
		} else {
			sb.WriteByte(bracketOpenUpper)
		}
	} else {
		sb.WriteString(f.style.Positive())
		sb.WriteByte(bracketOpenUpper)
	}

	return sb.String()
}
