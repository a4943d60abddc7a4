// SPDX-License-Identifier: MIT
// Package: rangenote/notation
//
// parser.go — the notation parser engine.
//
// Design contract (strict):
//   - One orchestrator: ParseIn(p, text). Validation order is fixed; the
//     first failing check wins and is reported synchronously.
//   - All scanning is linear-time string work (prefix/suffix checks plus one
//     forward substring search). No regular expressions anywhere, so no
//     backtracking can be driven by adversarial input.
//   - Engines are immutable after NewParser and safe for concurrent use.
//   - Engines never panic; every failure is a *ParseError whose class is
//     reachable via errors.Is.

package notation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/rangenote/interval"
)

// Parser converts notation text into interval.Range values. Build one with
// NewParser; the instance holds an immutable adapter table and may be shared
// freely across goroutines.
type Parser struct {
	adapters map[reflect.Type]adapterEntry
	lenient  bool
}

// NewParser resolves options into an independent, immutable engine snapshot.
// Built-in adapters are installed first, then caller registrations overlay
// them — custom adapters win regardless of registration order.
// The same option slice may be reused for further builds; later mutation of
// it never affects engines already built.
// Complexity: O(len(opts) + built-in table size).
func NewParser(opts ...ParserOption) *Parser {
	cfg := newParserConfig(opts...)

	table := builtinAdapters()
	for key, entry := range cfg.overrides {
		table[key] = entry
	}

	return &Parser{adapters: table, lenient: cfg.lenient}
}

// Package defaults: one strict and one lenient engine, both immutable.
var (
	strictParser  = NewParser()
	lenientParser = NewParser(WithLenient(true))
)

// Parse converts notation text into a range over T using the default strict
// engine.
//
// Example:
//
//	r, err := notation.Parse[int]("[0..100)")
func Parse[T any](text string) (interval.Range[T], error) {
	return ParseIn[T](strictParser, text)
}

// ParseLenient converts notation text using the default lenient engine:
// bracket-less "lower..upper" is accepted as "[lower..upper)".
func ParseLenient[T any](text string) (interval.Range[T], error) {
	return ParseIn[T](lenientParser, text)
}

// ParseIn converts notation text into a range over T using a configured
// engine. The element type selects the adapter; the adapter converts each
// bounded endpoint and its comparator validates lower ≤ upper.
//
// Errors:
//   - *ParseError for every domain failure; branch with errors.Is against
//     ErrInputTooLong, ErrEmptyInput, ErrBadFormat, ErrInfinityBound,
//     ErrNoAdapter, ErrValueParse, ErrNilValue, ErrBoundsOrder.
//
// Complexity: O(len(text)) plus two adapter calls.
func ParseIn[T any](p *Parser, text string) (interval.Range[T], error) {
	var zero interval.Range[T]

	// Stage 1: hard length guard — cap worst-case work before any scanning.
	// The limit counts characters, not bytes; the byte check is only a fast
	// path (rune count never exceeds byte count).
	if len(text) > maxInputLength && utf8.RuneCountInString(text) > maxInputLength {
		return zero, newParseError(ErrInputTooLong,
			fmt.Sprintf("Input exceeds maximum length of %d characters", maxInputLength),
			runePreview(text), 0)
	}

	// Stage 2: trim and reject emptiness (error carries the original text).
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return zero, newParseError(ErrEmptyInput, "Range string cannot be empty", text, 0)
	}

	// Stage 3: lenient bracket injection — only ever ADDS brackets, never
	// strips or alters brackets already present.
	if p.lenient && !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "(") {
		trimmed = "[" + trimmed + ")"
	}

	// Stages 4-8: structural validation, separator scan, endpoint
	// extraction, bound-type derivation, infinity detection.
	parts, err := extractParts(trimmed, text)
	if err != nil {
		return zero, err
	}

	// Stage 9: an infinite endpoint cannot be "included".
	if err = validateInfinityBounds(parts, text); err != nil {
		return zero, err
	}

	// Stage 10: adapter lookup by the element type witness.
	key := typeOf[T]()
	entry, ok := p.adapters[key]
	if !ok {
		return zero, newParseError(ErrNoAdapter, "No type adapter registered for: "+key.String(), text, 0)
	}

	// Stages 11-12: endpoint conversion and range construction; adapter
	// failures that are not already ParseErrors are rewrapped with the
	// original input and the cause preserved.
	r, err := buildRange[T](parts, entry)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return zero, err
		}

		return zero, newParseErrorCause(ErrValueParse,
			"Failed to parse range value: "+err.Error(), text, 0, err)
	}

	return r, nil
}

// rangeParts holds the structural decomposition of one notation string.
type rangeParts struct {
	lowerPart      string
	upperPart      string
	lowerBoundType interval.BoundType
	upperBoundType interval.BoundType
	lowerUnbounded bool
	upperUnbounded bool
}

// extractParts validates brackets, locates the FIRST ".." by plain forward
// search, splits and trims the endpoints, and derives bound types.
// Complexity: O(len(normalized)), single pass.
func extractParts(normalized, original string) (rangeParts, error) {
	if len(normalized) < minNotationLength {
		return rangeParts{}, newParseError(ErrBadFormat, invalidFormatMessage, original, 0)
	}

	opening := normalized[0]
	closing := normalized[len(normalized)-1]
	if (opening != bracketClosedLower && opening != bracketOpenLower) ||
		(closing != bracketClosedUpper && closing != bracketOpenUpper) {
		return rangeParts{}, newParseError(ErrBadFormat, invalidFormatMessage, original, 0)
	}

	content := normalized[1 : len(normalized)-1]
	sep := strings.Index(content, separator)
	if sep < 0 {
		return rangeParts{}, newParseError(ErrBadFormat, invalidFormatMessage, original, 0)
	}

	lowerPart := strings.TrimSpace(content[:sep])
	upperPart := strings.TrimSpace(content[sep+len(separator):])
	if lowerPart == "" || upperPart == "" {
		return rangeParts{}, newParseError(ErrBadFormat, invalidFormatMessage, original, 0)
	}

	parts := rangeParts{
		lowerPart:      lowerPart,
		upperPart:      upperPart,
		lowerBoundType: interval.BoundOpen,
		upperBoundType: interval.BoundOpen,
	}
	if opening == bracketClosedLower {
		parts.lowerBoundType = interval.BoundClosed
	}
	if closing == bracketClosedUpper {
		parts.upperBoundType = interval.BoundClosed
	}

	_, parts.lowerUnbounded = negativeInfinity[lowerPart]
	_, parts.upperUnbounded = positiveInfinity[upperPart]

	return parts, nil
}

// validateInfinityBounds rejects a closed bracket on an infinite endpoint.
func validateInfinityBounds(parts rangeParts, original string) error {
	if parts.lowerUnbounded && parts.lowerBoundType == interval.BoundClosed {
		return newParseError(ErrInfinityBound,
			"Invalid range: negative infinity bound must be open '(' not closed '['", original, 0)
	}
	if parts.upperUnbounded && parts.upperBoundType == interval.BoundClosed {
		return newParseError(ErrInfinityBound,
			"Invalid range: positive infinity bound must be open ')' not closed ']'", original, 0)
	}

	return nil
}

// buildRange converts the bounded endpoints and assembles one of the nine
// range shapes.
func buildRange[T any](parts rangeParts, entry adapterEntry) (interval.Range[T], error) {
	var zero interval.Range[T]

	// (-∞..+∞)
	if parts.lowerUnbounded && parts.upperUnbounded {
		return interval.All[T](), nil
	}

	// (-∞..b] / (-∞..b)
	if parts.lowerUnbounded {
		upper, err := convertEndpoint[T](entry, parts.upperPart, "upper")
		if err != nil {
			return zero, err
		}
		if parts.upperBoundType == interval.BoundClosed {
			return interval.AtMost(upper), nil
		}

		return interval.LessThan(upper), nil
	}

	// [a..+∞) / (a..+∞)
	if parts.upperUnbounded {
		lower, err := convertEndpoint[T](entry, parts.lowerPart, "lower")
		if err != nil {
			return zero, err
		}
		if parts.lowerBoundType == interval.BoundClosed {
			return interval.AtLeast(lower), nil
		}

		return interval.GreaterThan(lower), nil
	}

	// Bounded on both sides.
	lower, err := convertEndpoint[T](entry, parts.lowerPart, "lower")
	if err != nil {
		return zero, err
	}
	upper, err := convertEndpoint[T](entry, parts.upperPart, "upper")
	if err != nil {
		return zero, err
	}

	if entry.compare(lower, upper) > 0 {
		return zero, newParseError(ErrBoundsOrder,
			"Invalid range: lower bound ("+parts.lowerPart+") is greater than upper bound ("+parts.upperPart+")",
			parts.lowerPart+separator+parts.upperPart, 0)
	}

	switch {
	case parts.lowerBoundType == interval.BoundClosed && parts.upperBoundType == interval.BoundClosed:
		return interval.Closed(lower, upper), nil
	case parts.lowerBoundType == interval.BoundClosed:
		return interval.ClosedOpen(lower, upper), nil
	case parts.upperBoundType == interval.BoundClosed:
		return interval.OpenClosed(lower, upper), nil
	default:
		return interval.Open(lower, upper), nil
	}
}

// convertEndpoint runs the adapter on one endpoint and rejects a typed-nil
// result (reachable only through custom pointer-shaped element types).
func convertEndpoint[T any](entry adapterEntry, raw, boundName string) (T, error) {
	var zero T

	v, err := entry.parse(raw)
	if err != nil {
		return zero, err
	}
	if isNilValue(v) {
		return zero, newParseError(ErrNilValue,
			"TypeAdapter returned null for "+boundName+" bound value: "+raw, raw, 0)
	}

	return v.(T), nil
}

// runePreview truncates over-long input to a rune-safe excerpt for the
// too-long error message.
func runePreview(text string) string {
	runes := 0
	for i := range text {
		if runes == previewLength {
			return text[:i] + "..."
		}
		runes++
	}

	return text
}
