// SPDX-License-Identifier: MIT
// Package: rangenote/notation
//
// Package notation is the bidirectional engine between mathematical interval
// notation and interval.Range values.
//
// Grammar (ASCII brackets, two-character separator, Unicode infinity
// accepted):
//
//	range        := open lower ".." upper close
//	open         := "[" | "("
//	close        := "]" | ")"
//	lower        := neg-infinity | element-text
//	upper        := pos-infinity | element-text
//	neg-infinity := "-∞" | "-inf" | "-INF" | "-Infinity"
//	pos-infinity := "+∞" | "∞" | "+inf" | "inf" | "+INF" | "INF" |
//	                "+Infinity" | "Infinity"
//
// Whitespace is trimmed around the whole string and around each endpoint
// independently. Lenient mode additionally accepts a bracket-less
// "lower..upper" form, interpreted as closed-open. Infinity spellings are
// exact, case-sensitive matches. The first ".." is always the separator, so
// element text must never contain "..".
//
// Parsing rules beyond the grammar:
//
//   - Input longer than 1000 characters is rejected before any scanning.
//   - An infinite endpoint must use an open bracket: "[-∞..0]" is rejected,
//     an infinite endpoint cannot be included.
//   - For bounded ranges, lower ≤ upper under the element type's ordering.
//
// Built-in element types:
//
//	int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
//	float32, float64, *big.Int, decimal.Decimal, time.Time (RFC 3339),
//	time.Duration, civil.Date, civil.Time, civil.DateTime, string,
//	notation.Char (exactly one character)
//
// Custom element types register an adapter and comparator via WithAdapter;
// custom registrations override built-ins.
//
// Configuration Options:
//
//	– WithLenient(lenient bool)          parser: accept bracket-less input
//	– WithAdapter[T](parse, compare)     parser: (over)register element type T
//	– WithInfinityStyle(style)           formatter: +∞ / +inf / +INF / +Infinity
//	– WithFormatFunc[T](format)          formatter: override endpoint text of T
//
// Errors:
//
//	ErrInputTooLong  – input exceeds the 1000-character guard
//	ErrEmptyInput    – blank input
//	ErrBadFormat     – bad brackets, missing "..", empty endpoint
//	ErrInfinityBound – closed bracket on an infinite endpoint
//	ErrNoAdapter     – element type has no registered adapter
//	ErrValueParse    – adapter rejected an endpoint (cause preserved)
//	ErrNilValue      – custom adapter produced a typed-nil value
//	ErrBoundsOrder   – lower bound greater than upper bound
//
// Every failure is a *ParseError carrying (message, input, position, cause);
// branch on class with errors.Is, reach the fields with errors.As.
//
// Concurrency:
//
//	Parser and Formatter instances are immutable after construction and safe
//	for unsynchronized concurrent use. Option slices are plain values; guard
//	them externally if shared across goroutines before a build.
package notation
