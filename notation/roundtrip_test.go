// SPDX-License-Identifier: MIT
// Package notation_test verifies the round-trip guarantee:
// Parse(Format(r)) == r for every parser-constructible range, under every
// built-in infinity style and every built-in element type.

package notation_test

import (
	"cmp"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangenote/interval"
	"github.com/katalvlaran/rangenote/notation"
)

func TestRoundTrip_IntShapesAllStyles(t *testing.T) {
	ranges := []interval.Range[int]{
		interval.Closed(0, 100),
		interval.Open(-5, 5),
		interval.ClosedOpen(0, 100),
		interval.OpenClosed(-100, -1),
		interval.AtLeast(7),
		interval.GreaterThan(7),
		interval.AtMost(-7),
		interval.LessThan(0),
		interval.All[int](),
		interval.Closed(3, 3),
	}
	styles := []notation.InfinityStyle{
		notation.StyleSymbol,
		notation.StyleWordLower,
		notation.StyleWordUpper,
		notation.StyleWordFull,
	}

	for _, style := range styles {
		f := notation.NewFormatter(notation.WithInfinityStyle(style))
		for _, r := range ranges {
			text := notation.Format(f, r)
			back, err := notation.Parse[int](text)
			require.NoError(t, err, "reparse %q (style %v)", text, style)
			require.True(t, back.Equal(r, cmp.Compare[int]), "round-trip %q", text)
		}
	}
}

func TestRoundTrip_TextIsCanonical(t *testing.T) {
	// Canonical notation survives parse→format unchanged.
	for _, text := range []string{"[0..100)", "(1..5]", "(-∞..+∞)", "[-10..-1]", "(0.5..1.5]"} {
		if text == "(0.5..1.5]" {
			r, err := notation.Parse[float64](text)
			require.NoError(t, err)
			require.Equal(t, text, notation.FormatRange(r))
			continue
		}
		r, err := notation.Parse[int](text)
		require.NoError(t, err)
		require.Equal(t, text, notation.FormatRange(r))
	}
}

func TestRoundTrip_BuiltinElementTypes(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		r := interval.OpenClosed(0.5, 1.5)
		back, err := notation.Parse[float64](notation.FormatRange(r))
		require.NoError(t, err)
		require.True(t, back.Equal(r, cmp.Compare[float64]))
	})

	t.Run("string", func(t *testing.T) {
		r := interval.Closed("apple", "banana")
		back, err := notation.Parse[string](notation.FormatRange(r))
		require.NoError(t, err)
		require.True(t, back.Equal(r, cmp.Compare[string]))
	})

	t.Run("char", func(t *testing.T) {
		r := interval.Closed(notation.Char('a'), notation.Char('z'))
		back, err := notation.Parse[notation.Char](notation.FormatRange(r))
		require.NoError(t, err)
		require.True(t, back.Equal(r, cmp.Compare[notation.Char]))
	})

	t.Run("duration", func(t *testing.T) {
		r := interval.ClosedOpen(90*time.Minute, 4*time.Hour)
		back, err := notation.Parse[time.Duration](notation.FormatRange(r))
		require.NoError(t, err)
		require.True(t, back.Equal(r, cmp.Compare[time.Duration]))
	})

	t.Run("instant", func(t *testing.T) {
		r := interval.AtLeast(time.Date(2024, time.June, 1, 12, 30, 0, 0, time.UTC))
		back, err := notation.Parse[time.Time](notation.FormatRange(r))
		require.NoError(t, err)
		require.True(t, back.Equal(r, func(a, b time.Time) int { return a.Compare(b) }))
	})

	t.Run("instant with fractional seconds", func(t *testing.T) {
		// RFC 3339 admits fractional seconds, so the formatter must emit them
		// back; otherwise a parseable range would not survive the trip.
		r, err := notation.Parse[time.Time]("[2024-06-01T12:00:00.5Z..2024-06-01T13:00:00Z)")
		require.NoError(t, err)

		text := notation.FormatRange(r)
		require.Equal(t, "[2024-06-01T12:00:00.5Z..2024-06-01T13:00:00Z)", text)

		back, err := notation.Parse[time.Time](text)
		require.NoError(t, err)
		require.True(t, back.Equal(r, func(a, b time.Time) int { return a.Compare(b) }))
	})

	t.Run("decimal", func(t *testing.T) {
		r := interval.Closed(decimal.RequireFromString("0.1"), decimal.RequireFromString("3.14"))
		back, err := notation.Parse[decimal.Decimal](notation.FormatRange(r))
		require.NoError(t, err)
		require.True(t, back.Equal(r, func(a, b decimal.Decimal) int { return a.Cmp(b) }))
	})

	t.Run("civil date", func(t *testing.T) {
		r := interval.ClosedOpen(
			civil.Date{Year: 2024, Month: time.January, Day: 1},
			civil.Date{Year: 2025, Month: time.January, Day: 1},
		)
		back, err := notation.Parse[civil.Date](notation.FormatRange(r))
		require.NoError(t, err)

		lo, _ := back.LowerEndpoint()
		hi, _ := back.UpperEndpoint()
		require.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 1}, lo)
		require.Equal(t, civil.Date{Year: 2025, Month: time.January, Day: 1}, hi)
	})
}
