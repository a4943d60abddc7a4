// Package rangenote converts between mathematical interval notation and
// typed range values — and back.
//
// 🚀 What is rangenote?
//
//	A small, thread-safe library for the nine classic interval shapes:
//		• [a..b]   closed            • (a..b)   open
//		• [a..b)   closed-open       • (a..b]   open-closed
//		• [a..+∞)  at least          • (a..+∞)  greater than
//		• (-∞..b]  at most           • (-∞..b)  less than
//		• (-∞..+∞) all
//
// ✨ Why choose rangenote?
//
//   - Beginner-friendly – two functions (Parse/Format), clear naming
//   - Rock-solid guarantees – no regexp, linear-time scanning, hard input cap
//   - Pluggable – register a type adapter and parse ranges over your own types
//   - Deterministic – immutable engines, safe for concurrent use
//
// Under the hood, everything is organized under two subpackages:
//
//	interval/ — the generic Range[T] value: bounds, bound types, predicates
//	notation/ — parser & formatter engines, adapter registry, infinity styles
//
// Quick example:
//
//	r, err := notation.Parse[int]("[0..100)")
//	// r contains 0, excludes 100
//	s := notation.FormatRange(r) // "[0..100)"
//
// Dive into the package docs for the full grammar, lenient mode, infinity
// styles and custom adapters.
//
//	go get github.com/katalvlaran/rangenote
package rangenote
