// SPDX-License-Identifier: MIT
// Package: rangenote/interval
//
// types.go — value types shared by every interval operation.

package interval

// BoundType marks whether a present endpoint belongs to the interval.
type BoundType uint8

const (
	// BoundClosed includes the endpoint value in the interval.
	BoundClosed BoundType = iota
	// BoundOpen excludes the endpoint value from the interval.
	BoundOpen
)

// String renders the bound type for diagnostics ("closed"/"open").
func (b BoundType) String() string {
	if b == BoundClosed {
		return "closed"
	}

	return "open"
}

// CompareFunc reports the ordering of two elements: negative when a < b,
// zero when a == b, positive when a > b. Pass cmp.Compare for ordered
// built-ins; richer types supply their own (time.Time.Compare, Decimal.Cmp).
type CompareFunc[T any] func(a, b T) int

// Range is an interval over T, optionally bounded on either side.
// The zero value is the fully unbounded range (-∞..+∞).
//
// Invariants (maintained by construction, never re-checked):
//   - an absent bound is logically Open (boundType fields are ignored on
//     unbounded sides and remain at their zero value);
//   - endpoints are never mutated after construction.
type Range[T any] struct {
	lower     T
	upper     T
	lowerType BoundType
	upperType BoundType
	hasLower  bool
	hasUpper  bool
}
