// SPDX-License-Identifier: MIT
// Package: rangenote/interval
//
// api.go — the nine range constructors.
//
// Design contract (strict):
//   - Constructors record endpoints and bound types verbatim: no ordering
//     check, no normalization, no comparator involved.
//   - Shapes map one-to-one onto the notation grammar (see package doc).

package interval

// Closed returns [lower..upper]: both endpoints included.
func Closed[T any](lower, upper T) Range[T] {
	return Range[T]{lower: lower, upper: upper, lowerType: BoundClosed, upperType: BoundClosed, hasLower: true, hasUpper: true}
}

// Open returns (lower..upper): both endpoints excluded.
func Open[T any](lower, upper T) Range[T] {
	return Range[T]{lower: lower, upper: upper, lowerType: BoundOpen, upperType: BoundOpen, hasLower: true, hasUpper: true}
}

// ClosedOpen returns [lower..upper): lower included, upper excluded.
func ClosedOpen[T any](lower, upper T) Range[T] {
	return Range[T]{lower: lower, upper: upper, lowerType: BoundClosed, upperType: BoundOpen, hasLower: true, hasUpper: true}
}

// OpenClosed returns (lower..upper]: lower excluded, upper included.
func OpenClosed[T any](lower, upper T) Range[T] {
	return Range[T]{lower: lower, upper: upper, lowerType: BoundOpen, upperType: BoundClosed, hasLower: true, hasUpper: true}
}

// AtLeast returns [lower..+∞): everything greater than or equal to lower.
func AtLeast[T any](lower T) Range[T] {
	return Range[T]{lower: lower, lowerType: BoundClosed, hasLower: true}
}

// GreaterThan returns (lower..+∞): everything strictly greater than lower.
func GreaterThan[T any](lower T) Range[T] {
	return Range[T]{lower: lower, lowerType: BoundOpen, hasLower: true}
}

// AtMost returns (-∞..upper]: everything less than or equal to upper.
func AtMost[T any](upper T) Range[T] {
	return Range[T]{upper: upper, upperType: BoundClosed, hasUpper: true}
}

// LessThan returns (-∞..upper): everything strictly less than upper.
func LessThan[T any](upper T) Range[T] {
	return Range[T]{upper: upper, upperType: BoundOpen, hasUpper: true}
}

// All returns (-∞..+∞): the fully unbounded range (also the zero value).
func All[T any]() Range[T] {
	return Range[T]{}
}
