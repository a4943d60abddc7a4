// SPDX-License-Identifier: MIT
// Package: rangenote/notation
//
// constants.go — grammar tokens and guard values (named, no magic numbers).

package notation

const (
	// separator divides the lower and upper endpoint texts. Only the FIRST
	// occurrence is structural, so element text must never contain "..".
	separator = ".."

	// maxInputLength caps worst-case work on adversarial input before any
	// structural parsing begins.
	maxInputLength = 1000

	// minNotationLength is the shortest well-formed notation: "[a..b]".
	minNotationLength = 6

	// previewLength bounds the input excerpt embedded in the too-long error.
	previewLength = 50

	// Bracket tokens of the grammar.
	bracketClosedLower = '['
	bracketOpenLower   = '('
	bracketClosedUpper = ']'
	bracketOpenUpper   = ')'

	// invalidFormatMessage is shared by every structural violation.
	invalidFormatMessage = "Invalid range format. Expected notation like '[a..b)', '(a..b]', '(-∞..+∞)', etc."
)

// negativeInfinity holds the exact (case-sensitive) lower-endpoint spellings
// recognized as -∞.
var negativeInfinity = map[string]struct{}{
	"-∞":        {},
	"-inf":      {},
	"-INF":      {},
	"-Infinity": {},
}

// positiveInfinity holds the exact (case-sensitive) upper-endpoint spellings
// recognized as +∞. The sign is optional on the positive side.
var positiveInfinity = map[string]struct{}{
	"+∞":        {},
	"∞":         {},
	"+inf":      {},
	"inf":       {},
	"+INF":      {},
	"INF":       {},
	"+Infinity": {},
	"Infinity":  {},
}
