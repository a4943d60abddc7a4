// SPDX-License-Identifier: MIT
// Package: rangenote/notation
//
// adapters.go — the TypeAdapter contract and the built-in adapter table.
//
// Design contract (strict):
//   - An adapter is a pure, stateless function from trimmed endpoint text to
//     a value of the element type, failing with a descriptive error.
//   - Every registration pairs the adapter with an explicit comparator; Go
//     has no universal ordering, so the ordering travels with the type.
//   - The registry is keyed by the element type's reflect.Type witness.
//     One table per engine, immutable after construction, shared read-only
//     across concurrent parse calls.
//
// AI-Hints:
//   - Registering a custom adapter for a built-in type overrides it (the
//     caller table is overlaid last at build time).
//   - Element text must never contain the literal ".." — the first ".." in
//     the notation is always the separator.

package notation

import (
	"cmp"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/rangenote/interval"
)

// AdapterFunc converts trimmed endpoint text into a value of T. It must be
// stateless and safe for concurrent use; "no value" is expressed through the
// error return, never through a nil result.
type AdapterFunc[T any] func(value string) (T, error)

// FormatFunc renders an endpoint value in its canonical text form — the form
// the type's own adapter can parse back.
type FormatFunc[T any] func(value T) string

// Char is a single-character element. It is a distinct type because rune is
// an alias of int32, which the registry already maps to the numeric int32
// adapter; parsing requires exactly one character.
type Char rune

// adapterEntry is the type-erased registry slot: parse + compare share the
// dynamic type of the registered element.
type adapterEntry struct {
	parse   func(string) (any, error)
	compare func(a, b any) int
}

// typeOf returns the reflect.Type witness of T without allocating a value.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// newAdapterEntry erases a typed adapter/comparator pair into a registry slot.
func newAdapterEntry[T any](parse AdapterFunc[T], compare interval.CompareFunc[T]) adapterEntry {
	return adapterEntry{
		parse: func(s string) (any, error) {
			v, err := parse(s)
			if err != nil {
				return nil, err
			}

			return v, nil
		},
		compare: func(a, b any) int {
			return compare(a.(T), b.(T))
		},
	}
}

// register installs a typed adapter into a registry table under T's witness.
func register[T any](table map[reflect.Type]adapterEntry, parse AdapterFunc[T], compare interval.CompareFunc[T]) {
	table[typeOf[T]()] = newAdapterEntry(parse, compare)
}

// parseSigned builds a strconv-backed adapter for a signed integer width.
func parseSigned[T int | int8 | int16 | int32 | int64](bits int) AdapterFunc[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			var zero T

			return zero, err
		}

		return T(v), nil
	}
}

// parseUnsigned builds a strconv-backed adapter for an unsigned integer width.
func parseUnsigned[T uint | uint8 | uint16 | uint32 | uint64](bits int) AdapterFunc[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			var zero T

			return zero, err
		}

		return T(v), nil
	}
}

// parseFloat builds a strconv-backed adapter for a float width.
func parseFloat[T float32 | float64](bits int) AdapterFunc[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bits)
		if err != nil {
			var zero T

			return zero, err
		}

		return T(v), nil
	}
}

// parseBigInt converts base-10 text of any length into *big.Int.
func parseBigInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Newf("invalid arbitrary-precision integer: %q", s)
	}

	return v, nil
}

// parseChar accepts exactly one character (one rune, not one byte).
func parseChar(s string) (Char, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Newf("Expected single character but got: '%s'", s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return Char(r), nil
}

// parseInstant reads an RFC 3339 timestamp (the time.Time canonical text).
func parseInstant(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// compareDate orders civil dates chronologically.
func compareDate(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	default:
		return 0
	}
}

// compareTime orders civil times-of-day field by field.
func compareTime(a, b civil.Time) int {
	if c := cmp.Compare(a.Hour, b.Hour); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Minute, b.Minute); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Second, b.Second); c != 0 {
		return c
	}

	return cmp.Compare(a.Nanosecond, b.Nanosecond)
}

// compareDateTime orders civil datetimes by date, then time-of-day.
func compareDateTime(a, b civil.DateTime) int {
	if c := compareDate(a.Date, b.Date); c != 0 {
		return c
	}

	return compareTime(a.Time, b.Time)
}

// builtinAdapters constructs a fresh built-in registry table. A fresh map per
// engine keeps every built engine independent of later builds.
func builtinAdapters() map[reflect.Type]adapterEntry {
	table := make(map[reflect.Type]adapterEntry)

	// Signed integers.
	register(table, parseSigned[int](strconv.IntSize), cmp.Compare[int])
	register(table, parseSigned[int8](8), cmp.Compare[int8])
	register(table, parseSigned[int16](16), cmp.Compare[int16])
	register(table, parseSigned[int32](32), cmp.Compare[int32])
	register(table, parseSigned[int64](64), cmp.Compare[int64])

	// Unsigned integers.
	register(table, parseUnsigned[uint](strconv.IntSize), cmp.Compare[uint])
	register(table, parseUnsigned[uint8](8), cmp.Compare[uint8])
	register(table, parseUnsigned[uint16](16), cmp.Compare[uint16])
	register(table, parseUnsigned[uint32](32), cmp.Compare[uint32])
	register(table, parseUnsigned[uint64](64), cmp.Compare[uint64])

	// Floating point.
	register(table, parseFloat[float32](32), cmp.Compare[float32])
	register(table, parseFloat[float64](64), cmp.Compare[float64])

	// Arbitrary precision.
	register(table, parseBigInt, func(a, b *big.Int) int { return a.Cmp(b) })
	register(table, decimal.NewFromString, func(a, b decimal.Decimal) int { return a.Cmp(b) })

	// Temporal types; each delegates to the type's own canonical text parser.
	register(table, parseInstant, func(a, b time.Time) int { return a.Compare(b) })
	register(table, time.ParseDuration, cmp.Compare[time.Duration])
	register(table, civil.ParseDate, compareDate)
	register(table, civil.ParseTime, compareTime)
	register(table, civil.ParseDateTime, compareDateTime)

	// Text.
	register(table, func(s string) (string, error) { return s, nil }, cmp.Compare[string])
	register(table, parseChar, cmp.Compare[Char])

	return table
}

// builtinFormats constructs the fresh built-in format table. Only types whose
// fmt.Sprint rendering is not re-parseable need an entry; everything else
// falls back to fmt.Sprint (numbers, Stringer types like Decimal and the
// civil family).
func builtinFormats() map[reflect.Type]func(any) string {
	return map[reflect.Type]func(any) string{
		typeOf[time.Time](): func(v any) string { return v.(time.Time).Format(time.RFC3339Nano) },
		typeOf[Char]():      func(v any) string { return string(rune(v.(Char))) },
	}
}

// endpointText renders one endpoint through the table, with fmt.Sprint as
// the universal fallback.
func endpointText(table map[reflect.Type]func(any) string, v any) string {
	if fn, ok := table[reflect.TypeOf(v)]; ok {
		return fn(v)
	}

	return fmt.Sprint(v)
}

// isNilValue detects a typed-nil adapter result hiding behind the erased
// interface (possible only for pointer-shaped custom element types).
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
