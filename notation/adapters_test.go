// SPDX-License-Identifier: MIT
// Package notation_test exercises every built-in element type through the
// public parse entry points.

package notation_test

import (
	"cmp"
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangenote/interval"
	"github.com/katalvlaran/rangenote/notation"
)

func TestParse_IntegerWidths(t *testing.T) {
	r8, err := notation.Parse[int8]("[-128..127]")
	require.NoError(t, err)
	lo8, _ := r8.LowerEndpoint()
	require.Equal(t, int8(-128), lo8)

	// Out of the width's domain fails at conversion.
	_, err = notation.Parse[int8]("[0..128]")
	require.ErrorIs(t, err, notation.ErrValueParse)

	r64, err := notation.Parse[int64]("[0..9223372036854775807]")
	require.NoError(t, err)
	hi64, _ := r64.UpperEndpoint()
	require.Equal(t, int64(9223372036854775807), hi64)

	ru, err := notation.Parse[uint16]("[0..65535]")
	require.NoError(t, err)
	hiU, _ := ru.UpperEndpoint()
	require.Equal(t, uint16(65535), hiU)

	// Unsigned widths reject negative text.
	_, err = notation.Parse[uint]("[-1..1]")
	require.ErrorIs(t, err, notation.ErrValueParse)
}

func TestParse_Floats(t *testing.T) {
	// Decimal points are fine: only the FIRST ".." separates endpoints.
	got, err := notation.Parse[float64]("(0.5..1.5]")
	require.NoError(t, err)
	require.True(t, got.Equal(interval.OpenClosed(0.5, 1.5), cmp.Compare[float64]))

	got32, err := notation.Parse[float32]("[0.25..0.75)")
	require.NoError(t, err)
	lo, _ := got32.LowerEndpoint()
	require.Equal(t, float32(0.25), lo)
}

func TestParse_BigInt(t *testing.T) {
	huge := "123456789012345678901234567890"
	got, err := notation.Parse[*big.Int]("[0.." + huge + ")")
	require.NoError(t, err)

	hi, ok := got.UpperEndpoint()
	require.True(t, ok)
	require.Equal(t, huge, hi.String())

	_, err = notation.Parse[*big.Int]("[0..not-a-number]")
	require.ErrorIs(t, err, notation.ErrValueParse)
	require.Contains(t, err.Error(), "invalid arbitrary-precision integer")
}

func TestParse_Decimal(t *testing.T) {
	got, err := notation.Parse[decimal.Decimal]("[0.10..3.14]")
	require.NoError(t, err)

	lo, _ := got.LowerEndpoint()
	require.True(t, lo.Equal(decimal.RequireFromString("0.10")))

	// Ordering uses decimal comparison, not text comparison.
	_, err = notation.Parse[decimal.Decimal]("[2.50..1.5]")
	require.ErrorIs(t, err, notation.ErrBoundsOrder)
}

func TestParse_Instant(t *testing.T) {
	got, err := notation.Parse[time.Time]("[2024-01-01T00:00:00Z..2024-12-31T23:59:59Z]")
	require.NoError(t, err)

	lo, _ := got.LowerEndpoint()
	require.Equal(t, 2024, lo.Year())

	_, err = notation.Parse[time.Time]("[2024-13-01T00:00:00Z..2024-12-31T23:59:59Z]")
	require.ErrorIs(t, err, notation.ErrValueParse)
}

func TestParse_Duration(t *testing.T) {
	got, err := notation.Parse[time.Duration]("[1h..2h30m)")
	require.NoError(t, err)
	require.True(t, got.Equal(
		interval.ClosedOpen(time.Hour, 2*time.Hour+30*time.Minute),
		cmp.Compare[time.Duration],
	))
}

func TestParse_CivilDate(t *testing.T) {
	got, err := notation.Parse[civil.Date]("[2024-01-01..2024-12-31]")
	require.NoError(t, err)

	lo, _ := got.LowerEndpoint()
	require.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 1}, lo)

	// Chronological ordering, exercised through the comparator.
	_, err = notation.Parse[civil.Date]("[2024-02-01..2024-01-01]")
	require.ErrorIs(t, err, notation.ErrBoundsOrder)
}

func TestParse_CivilTime(t *testing.T) {
	got, err := notation.Parse[civil.Time]("[09:00:00..17:00:00)")
	require.NoError(t, err)

	hi, _ := got.UpperEndpoint()
	require.Equal(t, 17, hi.Hour)

	_, err = notation.Parse[civil.Time]("[17:00:00..09:00:00)")
	require.ErrorIs(t, err, notation.ErrBoundsOrder)
}

func TestParse_CivilDateTime(t *testing.T) {
	got, err := notation.Parse[civil.DateTime]("[2024-01-01T09:00:00..2024-01-02T17:00:00)")
	require.NoError(t, err)

	lo, _ := got.LowerEndpoint()
	require.Equal(t, 2024, lo.Date.Year)
	require.Equal(t, 9, lo.Time.Hour)
}

func TestParse_String(t *testing.T) {
	got, err := notation.Parse[string]("[apple..banana]")
	require.NoError(t, err)
	require.True(t, got.Equal(interval.Closed("apple", "banana"), cmp.Compare[string]))

	// Lexicographic ordering applies.
	_, err = notation.Parse[string]("[banana..apple]")
	require.ErrorIs(t, err, notation.ErrBoundsOrder)
}

func TestParse_Char(t *testing.T) {
	got, err := notation.Parse[notation.Char]("[a..z]")
	require.NoError(t, err)
	require.True(t, got.Equal(
		interval.Closed(notation.Char('a'), notation.Char('z')),
		cmp.Compare[notation.Char],
	))

	// Multi-rune endpoint text is rejected by the adapter.
	_, err = notation.Parse[notation.Char]("[ab..z]")
	require.ErrorIs(t, err, notation.ErrValueParse)
	require.Contains(t, err.Error(), "Expected single character but got: 'ab'")

	_, err = notation.Parse[notation.Char]("[a..xyz]")
	require.Contains(t, err.Error(), "Expected single character but got: 'xyz'")

	// One rune means one rune, not one byte.
	got, err = notation.Parse[notation.Char]("[α..ω]")
	require.NoError(t, err)
	lo, _ := got.LowerEndpoint()
	require.Equal(t, notation.Char('α'), lo)
}
