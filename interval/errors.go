// SPDX-License-Identifier: MIT
// Package: rangenote/interval
//
// errors.go — sentinel errors for the interval package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Predicates never panic; the only failing operation is Intersection.

package interval

import "github.com/cockroachdb/errors"

// ErrDisconnected indicates that two ranges share no point and no common
// boundary, so their intersection is not a representable range.
// Usage: if errors.Is(err, interval.ErrDisconnected) { /* treat as empty */ }.
var ErrDisconnected = errors.New("interval: ranges are disconnected")
