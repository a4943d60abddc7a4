// SPDX-License-Identifier: MIT
// Package: rangenote/notation
//
// options.go — functional options for the parser and formatter engines.
//
// Contract (strict):
//   - Options are functional (ParserOption / FormatterOption).
//   - Option constructors VALIDATE and PANIC on meaningless inputs
//     (programmer error); the engines themselves never panic.
//   - No hidden globals; everything flows through the config snapshot
//     resolved inside NewParser / NewFormatter.
//
// AI-Hints:
//   - WithAdapter overrides a built-in adapter for the same element type;
//     the last registration for a type wins.
//   - Option slices may be reused and extended between builds; every build
//     snapshots its own copy.

package notation

import "github.com/katalvlaran/rangenote/interval"

// ParserOption customizes a Parser under construction.
type ParserOption func(*parserConfig)

// FormatterOption customizes a Formatter under construction.
type FormatterOption func(*formatterConfig)

// WithLenient toggles lenient parsing: bracket-less "lower..upper" input is
// accepted as an abbreviation for the closed-open "[lower..upper)". Brackets
// already present are never altered.
func WithLenient(lenient bool) ParserOption {
	return func(c *parserConfig) {
		c.lenient = lenient
	}
}

// WithAdapter registers a custom adapter (and its comparator) for element
// type T. Custom registrations take precedence over built-ins; a later
// registration for the same type wins. Panics on nil functions.
func WithAdapter[T any](parse AdapterFunc[T], compare interval.CompareFunc[T]) ParserOption {
	if parse == nil {
		panic("notation: WithAdapter(nil parse func)")
	}
	if compare == nil {
		panic("notation: WithAdapter(nil compare func)")
	}

	return func(c *parserConfig) {
		c.overrides[typeOf[T]()] = newAdapterEntry(parse, compare)
	}
}

// WithInfinityStyle selects the textual rendering of unbounded endpoints.
// Panics on an unknown style value.
func WithInfinityStyle(style InfinityStyle) FormatterOption {
	if style > StyleWordFull {
		panic("notation: WithInfinityStyle(unknown style)")
	}

	return func(c *formatterConfig) {
		c.style = style
	}
}

// WithFormatFunc overrides the canonical text rendering of endpoint values
// of type T. Panics on nil.
func WithFormatFunc[T any](format FormatFunc[T]) FormatterOption {
	if format == nil {
		panic("notation: WithFormatFunc(nil)")
	}

	return func(c *formatterConfig) {
		c.overrides[typeOf[T]()] = func(v any) string { return format(v.(T)) }
	}
}
