package scaledec

import (
	"math/big"

	"github.com/scaledec/scaledec/internal/mathutil"
)

// RoundingMode selects how a discarded remainder influences the
// retained quotient when precision is reduced.
type RoundingMode uint8

const (
	// Up rounds away from zero whenever any digits are discarded.
	Up RoundingMode = iota
	// Down truncates towards zero.
	Down
	// Ceil rounds towards positive infinity.
	Ceil
	// Floor rounds towards negative infinity.
	Floor
	// HalfUp rounds to nearest; ties go away from zero.
	HalfUp
	// HalfDown rounds to nearest; ties go towards zero.
	HalfDown
	// HalfEven rounds to nearest; ties go to the even neighbour.
	HalfEven
	// HalfCeil rounds to nearest; ties go towards positive infinity.
	HalfCeil
	// HalfFloor rounds to nearest; ties go towards negative infinity.
	HalfFloor

	numModes
)

var modeNames = [...]string{
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

func (m RoundingMode) valid() bool {
	return m < numModes
}

func (m RoundingMode) String() string {
	if !m.valid() {
		return "RoundingMode(invalid)"
	}
	return modeNames[m]
}

// roundQuo divides m by factor (a positive power of ten) and adjusts
// the truncated quotient by ±1 according to mode. It is the single
// rounding routine behind Round, Ceil, Floor, Trunc, Rescale and
// ToFixed.
func roundQuo(m, factor *big.Int, mode RoundingMode) *big.Int {
	quo, rem := new(big.Int).QuoRem(m, factor, new(big.Int))
	if rem.Sign() == 0 {
		return quo
	}
	neg := m.Sign() < 0
	// away is the adjustment that moves quo away from zero.
	away := int64(1)
	if neg {
		away = -1
	}
	switch mode {
	case Up:
		adjust(quo, away)
	case Down:
		// the truncated quotient is the answer.
	case Ceil:
		if !neg {
			adjust(quo, 1)
		}
	case Floor:
		if neg {
			adjust(quo, -1)
		}
	default:
		// half modes: compare twice the discarded remainder with the factor.
		twice := new(big.Int).Abs(rem)
		twice.Lsh(twice, 1)
		switch cmp := twice.Cmp(factor); {
		case cmp > 0:
			adjust(quo, away)
		case cmp == 0:
			switch mode {
			case HalfUp:
				adjust(quo, away)
			case HalfDown:
				// keep the truncated quotient.
			case HalfEven:
				if quo.Bit(0) == 1 {
					adjust(quo, away)
				}
			case HalfCeil:
				if !neg {
					adjust(quo, 1)
				}
			case HalfFloor:
				if neg {
					adjust(quo, -1)
				}
			}
		}
	}
	return quo
}

func adjust(quo *big.Int, delta int64) {
	quo.Add(quo, big.NewInt(delta))
}

// Round reduces the value's precision to dp decimal places using mode,
// keeping the Context unchanged: digits below dp become zero.
// dp must be in [0, Context().Places()]; precision truncated away at
// construction time cannot be manufactured back.
func (v Value) Round(dp int, mode RoundingMode) (Value, error) {
	if err := v.checkPlaces(dp, mode); err != nil {
		return Value{}, err
	}
	c := v.context()
	if dp == c.places {
		return v, nil
	}
	factor := mathutil.Pow10(c.places - dp)
	mant := roundQuo(v.mantissa(), factor, mode)
	mant.Mul(mant, factor)
	return Value{mant: mant, ctx: c}, nil
}

// RoundDefault is Round with the Context's own rounding mode.
func (v Value) RoundDefault(dp int) (Value, error) {
	return v.Round(dp, v.context().mode)
}

// Ceil rounds to an integer towards positive infinity.
func (v Value) Ceil() Value {
	res, _ := v.Round(0, Ceil)
	return res
}

// Floor rounds to an integer towards negative infinity.
func (v Value) Floor() Value {
	res, _ := v.Round(0, Floor)
	return res
}

// Trunc discards the fractional part.
func (v Value) Trunc() Value {
	res, _ := v.Round(0, Down)
	return res
}

// Rescale rounds the value to newPlaces decimal places using mode and
// binds the result to a Context with newPlaces places and the same
// rounding mode. newPlaces must be in [0, Context().Places()].
func (v Value) Rescale(newPlaces int, mode RoundingMode) (Value, error) {
	if err := v.checkPlaces(newPlaces, mode); err != nil {
		return Value{}, err
	}
	c := v.context()
	if newPlaces == c.places {
		return v, nil
	}
	factor := mathutil.Pow10(c.places - newPlaces)
	return Value{mant: roundQuo(v.mantissa(), factor, mode), ctx: newContext(newPlaces, c.mode)}, nil
}

// ToFixed renders the value rounded to dp fractional digits using mode.
// dp must be in [0, Context().Places()].
func (v Value) ToFixed(dp int, mode RoundingMode) (string, error) {
	if err := v.checkPlaces(dp, mode); err != nil {
		return "", err
	}
	factor := mathutil.Pow10(v.context().places - dp)
	return formatMantissa(roundQuo(v.mantissa(), factor, mode), dp), nil
}

func (v Value) checkPlaces(dp int, mode RoundingMode) error {
	if max := v.context().places; dp < 0 || dp > max {
		return ErrInvalidArgument.New("decimal places %d outside [0, %d]", dp, max)
	}
	if !mode.valid() {
		return ErrInvalidArgument.New("unknown rounding mode %d", mode)
	}
	return nil
}
