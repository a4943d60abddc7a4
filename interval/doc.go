// SPDX-License-Identifier: MIT
// Package: rangenote/interval
//
// Package interval provides the generic, immutable Range[T] value used by
// the notation engines: an interval over an ordered element type, optionally
// bounded on either side, each present bound marked inclusive (BoundClosed)
// or exclusive (BoundOpen).
//
// The nine constructible shapes mirror standard mathematical notation:
//
//	Closed(a, b)      ⇔ [a..b]      Open(a, b)        ⇔ (a..b)
//	ClosedOpen(a, b)  ⇔ [a..b)      OpenClosed(a, b)  ⇔ (a..b]
//	AtLeast(a)        ⇔ [a..+∞)     GreaterThan(a)    ⇔ (a..+∞)
//	AtMost(b)         ⇔ (-∞..b]     LessThan(b)       ⇔ (-∞..b)
//	All()             ⇔ (-∞..+∞)
//
// Design contract (strict):
//   - Range[T] is a plain value: construct once, read forever; no mutation.
//   - An unbounded side is logically open — it has no endpoint to include.
//   - Constructors record endpoints verbatim; they do NOT order-check.
//     Ordering belongs to whoever owns the element comparator (the notation
//     parser validates lower ≤ upper before constructing).
//   - Predicates (Contains/Encloses/Intersection/IsEmpty/Equal) take an
//     explicit CompareFunc[T] because Go has no universal ordering; pass
//     cmp.Compare for ordered built-ins.
//   - Endpoint accessors use comma-ok; asking an unbounded side for its
//     endpoint returns (zero, false), never panics.
//
// Concurrency:
//   - Range values are immutable and safe for unsynchronized concurrent use.
//
// Complexity:
//   - Every operation is O(1) plus the cost of at most four comparator calls.
package interval
