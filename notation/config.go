// SPDX-License-Identifier: MIT
// Package: rangenote/notation
//
// config.go — internal configuration snapshots for engine construction.
//
// Design:
//   - One config struct per engine kind; defaults are deterministic.
//   - newXConfig applies options in-order (later overrides earlier) onto a
//     FRESH snapshot, so a reused option slice never couples two engines.

package notation

import "reflect"

// parserConfig aggregates parser knobs before the engine snapshot is taken.
type parserConfig struct {
	// lenient accepts bracket-less "lower..upper" as "[lower..upper)".
	lenient bool
	// overrides holds caller adapter registrations, overlaid onto built-ins.
	overrides map[reflect.Type]adapterEntry
}

// formatterConfig aggregates formatter knobs.
type formatterConfig struct {
	// style picks the infinity text pair; StyleSymbol by default.
	style InfinityStyle
	// overrides holds caller format functions, overlaid onto built-ins.
	overrides map[reflect.Type]func(any) string
}

// newParserConfig resolves parser options onto fresh state.
// Complexity: O(len(opts)) time.
func newParserConfig(opts ...ParserOption) parserConfig {
	cfg := parserConfig{
		lenient:   false,
		overrides: make(map[reflect.Type]adapterEntry),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// newFormatterConfig resolves formatter options onto fresh state.
// Complexity: O(len(opts)) time.
func newFormatterConfig(opts ...FormatterOption) formatterConfig {
	cfg := formatterConfig{
		style:     StyleSymbol,
		overrides: make(map[reflect.Type]func(any) string),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
