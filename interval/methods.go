// SPDX-License-Identifier: MIT
// Package: rangenote/interval
//
// methods.go — accessors and comparator-driven predicates on Range[T].
//
// Design contract (strict):
//   - Accessors are total: unbounded sides answer with comma-ok zero values
//     and an Open bound type; nothing here panics.
//   - Predicates receive the comparator explicitly; a nil comparator is a
//     programmer error and the only place this package panics (fail fast,
//     same policy as option constructors elsewhere in the module).

package interval

// HasLowerBound reports whether the range is bounded from below.
func (r Range[T]) HasLowerBound() bool { return r.hasLower }

// HasUpperBound reports whether the range is bounded from above.
func (r Range[T]) HasUpperBound() bool { return r.hasUpper }

// LowerEndpoint returns the lower endpoint and true when bounded below,
// or the zero value and false on an unbounded side.
func (r Range[T]) LowerEndpoint() (T, bool) { return r.lower, r.hasLower }

// UpperEndpoint returns the upper endpoint and true when bounded above,
// or the zero value and false on an unbounded side.
func (r Range[T]) UpperEndpoint() (T, bool) { return r.upper, r.hasUpper }

// LowerBoundType returns the lower bound type. An unbounded side is
// logically open: there is no endpoint value to include.
func (r Range[T]) LowerBoundType() BoundType {
	if !r.hasLower {
		return BoundOpen
	}

	return r.lowerType
}

// UpperBoundType returns the upper bound type; open when unbounded.
func (r Range[T]) UpperBoundType() BoundType {
	if !r.hasUpper {
		return BoundOpen
	}

	return r.upperType
}

// Contains reports whether v lies within the range under cmp.
// Complexity: at most two comparator calls.
func (r Range[T]) Contains(v T, cmp CompareFunc[T]) bool {
	mustCompare(cmp)

	if r.hasLower {
		c := cmp(v, r.lower)
		if c < 0 || (c == 0 && r.lowerType == BoundOpen) {
			return false
		}
	}
	if r.hasUpper {
		c := cmp(v, r.upper)
		if c > 0 || (c == 0 && r.upperType == BoundOpen) {
			return false
		}
	}

	return true
}

// Encloses reports whether every value contained in other is also contained
// in r. Every range encloses itself; every range encloses an empty range
// positioned inside it.
func (r Range[T]) Encloses(other Range[T], cmp CompareFunc[T]) bool {
	mustCompare(cmp)

	// Lower side: r's lower bound must not cut into other's.
	if r.hasLower {
		if !other.hasLower {
			return false
		}
		c := cmp(r.lower, other.lower)
		if c > 0 || (c == 0 && r.lowerType == BoundOpen && other.lowerType == BoundClosed) {
			return false
		}
	}

	// Upper side, mirrored.
	if r.hasUpper {
		if !other.hasUpper {
			return false
		}
		c := cmp(r.upper, other.upper)
		if c < 0 || (c == 0 && r.upperType == BoundOpen && other.upperType == BoundClosed) {
			return false
		}
	}

	return true
}

// Intersection returns the maximal range enclosed by both r and other.
// Disconnected ranges (no shared point and no touching boundary) yield
// ErrDisconnected; touching ranges like [0..2] and [2..4] yield the
// single-point or empty range at the shared boundary.
func (r Range[T]) Intersection(other Range[T], cmp CompareFunc[T]) (Range[T], error) {
	mustCompare(cmp)

	out := Range[T]{}

	// Tighter lower bound wins; on a tie the open (stricter) bound wins.
	out.hasLower = r.hasLower || other.hasLower
	switch {
	case r.hasLower && other.hasLower:
		c := cmp(r.lower, other.lower)
		switch {
		case c > 0:
			out.lower, out.lowerType = r.lower, r.lowerType
		case c < 0:
			out.lower, out.lowerType = other.lower, other.lowerType
		default:
			out.lower = r.lower
			out.lowerType = tighter(r.lowerType, other.lowerType)
		}
	case r.hasLower:
		out.lower, out.lowerType = r.lower, r.lowerType
	case other.hasLower:
		out.lower, out.lowerType = other.lower, other.lowerType
	}

	// Tighter upper bound wins, mirrored.
	out.hasUpper = r.hasUpper || other.hasUpper
	switch {
	case r.hasUpper && other.hasUpper:
		c := cmp(r.upper, other.upper)
		switch {
		case c < 0:
			out.upper, out.upperType = r.upper, r.upperType
		case c > 0:
			out.upper, out.upperType = other.upper, other.upperType
		default:
			out.upper = r.upper
			out.upperType = tighter(r.upperType, other.upperType)
		}
	case r.hasUpper:
		out.upper, out.upperType = r.upper, r.upperType
	case other.hasUpper:
		out.upper, out.upperType = other.upper, other.upperType
	}

	// A crossed bound pair means the inputs never overlapped.
	if out.hasLower && out.hasUpper && cmp(out.lower, out.upper) > 0 {
		return Range[T]{}, ErrDisconnected
	}

	return out, nil
}

// IsEmpty reports whether the range contains no values: both bounds present,
// equal endpoints, and at least one bound open.
func (r Range[T]) IsEmpty(cmp CompareFunc[T]) bool {
	mustCompare(cmp)

	if !r.hasLower || !r.hasUpper {
		return false
	}

	return cmp(r.lower, r.upper) == 0 && (r.lowerType == BoundOpen || r.upperType == BoundOpen)
}

// Equal reports structural equality under cmp: same boundedness, same bound
// types, and comparator-equal endpoints on each bounded side.
func (r Range[T]) Equal(other Range[T], cmp CompareFunc[T]) bool {
	mustCompare(cmp)

	if r.hasLower != other.hasLower || r.hasUpper != other.hasUpper {
		return false
	}
	if r.hasLower && (r.lowerType != other.lowerType || cmp(r.lower, other.lower) != 0) {
		return false
	}
	if r.hasUpper && (r.upperType != other.upperType || cmp(r.upper, other.upper) != 0) {
		return false
	}

	return true
}

// tighter picks the stricter of two bound types at an equal endpoint.
func tighter(a, b BoundType) BoundType {
	if a == BoundOpen || b == BoundOpen {
		return BoundOpen
	}

	return BoundClosed
}

// mustCompare rejects a nil comparator early (programmer error).
func mustCompare[T any](cmp CompareFunc[T]) {
	if cmp == nil {
		panic("interval: nil CompareFunc")
	}
}
