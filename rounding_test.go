package scaledec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundingModeString(t *testing.T) {
	a := assert.New(t)
	names := map[RoundingMode]string{
		Up:        "UP",
		Down:      "DOWN",
		Ceil:      "CEIL",
		Floor:     "FLOOR",
		HalfUp:    "HALF_UP",
		HalfDown:  "HALF_DOWN",
		HalfEven:  "HALF_EVEN",
		HalfCeil:  "HALF_CEIL",
		HalfFloor: "HALF_FLOOR",
	}
	for mode, name := range names {
		a.Equal(name, mode.String())
	}
	a.Equal("RoundingMode(invalid)", RoundingMode(42).String())
}

// TestRoundAllModes drives every mode through Round(0, mode) on a
// 2-place context: ties, non-ties and negatives.
func TestRoundAllModes(t *testing.T) {
	a := assert.New(t)
	ctx := MustContext(2, HalfUp)
	tests := []struct {
		s    string
		mode RoundingMode
		res  string
	}{
		{"2.50", Up, "3.00"},
		{"2.50", Down, "2.00"},
		{"2.50", Ceil, "3.00"},
		{"2.50", Floor, "2.00"},
		{"2.50", HalfUp, "3.00"},
		{"2.50", HalfDown, "2.00"},
		{"2.50", HalfEven, "2.00"},
		{"2.50", HalfCeil, "3.00"},
		{"2.50", HalfFloor, "2.00"},

		{"3.50", Up, "4.00"},
		{"3.50", Down, "3.00"},
		{"3.50", Ceil, "4.00"},
		{"3.50", Floor, "3.00"},
		{"3.50", HalfUp, "4.00"},
		{"3.50", HalfDown, "3.00"},
		{"3.50", HalfEven, "4.00"},
		{"3.50", HalfCeil, "4.00"},
		{"3.50", HalfFloor, "3.00"},

		{"-2.50", Up, "-3.00"},
		{"-2.50", Down, "-2.00"},
		{"-2.50", Ceil, "-2.00"},
		{"-2.50", Floor, "-3.00"},
		{"-2.50", HalfUp, "-3.00"},
		{"-2.50", HalfDown, "-2.00"},
		{"-2.50", HalfEven, "-2.00"},
		{"-2.50", HalfCeil, "-2.00"},
		{"-2.50", HalfFloor, "-3.00"},

		{"-3.50", HalfEven, "-4.00"},
		{"-3.50", HalfCeil, "-3.00"},
		{"-3.50", HalfFloor, "-4.00"},

		{"2.40", Up, "3.00"},
		{"2.40", Down, "2.00"},
		{"2.40", Ceil, "3.00"},
		{"2.40", Floor, "2.00"},
		{"2.40", HalfUp, "2.00"},
		{"2.40", HalfDown, "2.00"},
		{"2.40", HalfEven, "2.00"},
		{"2.40", HalfCeil, "2.00"},
		{"2.40", HalfFloor, "2.00"},

		{"-2.60", Up, "-3.00"},
		{"-2.60", Down, "-2.00"},
		{"-2.60", Ceil, "-2.00"},
		{"-2.60", Floor, "-3.00"},
		{"-2.60", HalfUp, "-3.00"},
		{"-2.60", HalfDown, "-3.00"},
		{"-2.60", HalfEven, "-3.00"},
		{"-2.60", HalfCeil, "-3.00"},
		{"-2.60", HalfFloor, "-3.00"},

		// an exact value never adjusts, in any mode
		{"2.00", Up, "2.00"},
		{"2.00", Ceil, "2.00"},
		{"-2.00", Up, "-2.00"},
		{"-2.00", Floor, "-2.00"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := MustParse(test.s, ctx).Round(0, test.mode)
			if a.NoError(err) {
				a.Equal(test.res, v.String())
			}
		})
	}
}

func TestRound(t *testing.T) {
	a := assert.New(t)
	v := MustParse("123.456789", ctx8)

	r, err := v.Round(4, HalfUp)
	a.NoError(err)
	a.Equal("123.45680000", r.String())

	r, err = v.Round(4, Down)
	a.NoError(err)
	a.Equal("123.45670000", r.String())

	// rounding to the context's own precision is the identity.
	r, err = v.Round(8, Up)
	a.NoError(err)
	a.Equal("123.45678900", r.String())

	// precision truncated away at parse time cannot come back.
	_, err = v.Round(9, HalfUp)
	a.Error(err)
	a.True(ErrInvalidArgument.Has(err))
	_, err = v.Round(-1, HalfUp)
	a.Error(err)
	a.True(ErrInvalidArgument.Has(err))
	_, err = v.Round(2, RoundingMode(42))
	a.Error(err)
	a.True(ErrInvalidArgument.Has(err))
}

func TestRoundIdempotent(t *testing.T) {
	a := assert.New(t)
	for i, s := range []string{"123.456789", "-123.456789", "0.5", "-0.5", "0"} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			for mode := Up; mode < numModes; mode++ {
				once, err := MustParse(s, ctx8).Round(3, mode)
				a.NoError(err)
				twice, err := once.Round(3, mode)
				a.NoError(err)
				a.Equal(once.String(), twice.String())
			}
		})
	}
}

func TestRoundHalfEvenTies(t *testing.T) {
	a := assert.New(t)
	ctx := MustContext(2, HalfEven)
	tests := []struct {
		s, res string
	}{
		{"0.05", "0.00"},
		{"0.15", "0.20"},
		{"0.25", "0.20"},
		{"0.35", "0.40"},
		{"0.45", "0.40"},
		{"-0.15", "-0.20"},
		{"-0.25", "-0.20"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := MustParse(test.s, ctx).Round(1, HalfEven)
			if a.NoError(err) {
				a.Equal(test.res, v.String())
			}
		})
	}
}

func TestRoundDefault(t *testing.T) {
	a := assert.New(t)
	v, err := MustParse("0.5", ctx8).RoundDefault(0)
	a.NoError(err)
	a.Equal("1.00000000", v.String())

	v, err = MustParse("0.5", MustContext(8, Down)).RoundDefault(0)
	a.NoError(err)
	a.Equal("0.00000000", v.String())
}

func TestCeilFloorTrunc(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s                 string
		ceil, floor, trun string
	}{
		{"2.30", "3.00000000", "2.00000000", "2.00000000"},
		{"-2.30", "-2.00000000", "-3.00000000", "-2.00000000"},
		{"2.00", "2.00000000", "2.00000000", "2.00000000"},
		{"0", "0.00000000", "0.00000000", "0.00000000"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := MustParse(test.s, ctx8)
			a.Equal(test.ceil, v.Ceil().String())
			a.Equal(test.floor, v.Floor().String())
			a.Equal(test.trun, v.Trunc().String())
		})
	}
}

func TestRescale(t *testing.T) {
	a := assert.New(t)
	v := MustParse("123.456789", ctx8)

	r, err := v.Rescale(2, HalfUp)
	a.NoError(err)
	a.Equal("123.46", r.String())
	a.Equal(2, r.Context().Places())
	a.Equal(HalfUp, r.Context().Mode())

	r, err = v.Rescale(2, Down)
	a.NoError(err)
	a.Equal("123.45", r.String())

	r, err = v.Rescale(8, HalfUp)
	a.NoError(err)
	a.Equal("123.45678900", r.String())

	_, err = v.Rescale(9, HalfUp)
	a.Error(err)
	a.True(ErrInvalidArgument.Has(err))

	// rescaled values interoperate with same-places contexts.
	two := MustParse("2", MustContext(2, HalfUp))
	r, err = v.Rescale(2, HalfUp)
	a.NoError(err)
	sum, err := r.Add(two)
	a.NoError(err)
	a.Equal("125.46", sum.String())
}

func TestToFixed(t *testing.T) {
	a := assert.New(t)
	v := MustParse("123.456789", ctx8)

	s, err := v.ToFixed(2, Down)
	a.NoError(err)
	a.Equal("123.45", s)

	s, err = v.ToFixed(2, HalfUp)
	a.NoError(err)
	a.Equal("123.46", s)

	s, err = v.ToFixed(0, HalfUp)
	a.NoError(err)
	a.Equal("123", s)

	s, err = MustParse("-0.5", ctx8).ToFixed(0, HalfUp)
	a.NoError(err)
	a.Equal("-1", s)

	_, err = v.ToFixed(9, HalfUp)
	a.Error(err)
	a.True(ErrInvalidArgument.Has(err))
}
