package scaledec

import (
	"math/big"

	"github.com/scaledec/scaledec/internal/mathutil"
)

// match validates that both operands share an equal Context and
// returns it together with the two mantissas.
func (v Value) match(other Value) (*Context, *big.Int, *big.Int, error) {
	c1, c2 := v.context(), other.context()
	if !c1.Equal(c2) {
		return nil, nil, nil, ErrConfigMismatch.New("operands use places/mode %d/%s and %d/%s",
			c1.places, c1.mode, c2.places, c2.mode)
	}
	return c1, v.mantissa(), other.mantissa(), nil
}

// Add returns v + other. Both values must share an equal Context.
func (v Value) Add(other Value) (Value, error) {
	c, m1, m2, err := v.match(other)
	if err != nil {
		return Value{}, err
	}
	return Value{mant: new(big.Int).Add(m1, m2), ctx: c}, nil
}

// Sub returns v - other. Both values must share an equal Context.
func (v Value) Sub(other Value) (Value, error) {
	c, m1, m2, err := v.match(other)
	if err != nil {
		return Value{}, err
	}
	return Value{mant: new(big.Int).Sub(m1, m2), ctx: c}, nil
}

// Mul returns v × other, truncated towards zero at the Context's
// precision. The full-width mantissa product is divided by the scale
// factor once, so no intermediate precision is lost.
func (v Value) Mul(other Value) (Value, error) {
	c, m1, m2, err := v.match(other)
	if err != nil {
		return Value{}, err
	}
	prod := new(big.Int).Mul(m1, m2)
	prod.Quo(prod, c.scale)
	return Value{mant: prod, ctx: c}, nil
}

// Div returns v ÷ other, truncated towards zero at the Context's
// precision. Fails with ErrDivisionByZero if other is zero.
func (v Value) Div(other Value) (Value, error) {
	c, m1, m2, err := v.match(other)
	if err != nil {
		return Value{}, err
	}
	if m2.Sign() == 0 {
		return Value{}, ErrDivisionByZero.New("div %s by zero", v)
	}
	num := new(big.Int).Mul(m1, c.scale)
	num.Quo(num, m2)
	return Value{mant: num, ctx: c}, nil
}

// Mod returns the remainder of the scaled division (v×scale) mod
// other; the result has the sign of v. Fails with ErrDivisionByZero if
// other is zero.
func (v Value) Mod(other Value) (Value, error) {
	c, m1, m2, err := v.match(other)
	if err != nil {
		return Value{}, err
	}
	if m2.Sign() == 0 {
		return Value{}, ErrDivisionByZero.New("mod %s by zero", v)
	}
	num := new(big.Int).Mul(m1, c.scale)
	num.Rem(num, m2)
	return Value{mant: num, ctx: c}, nil
}

// Neg returns -v.
func (v Value) Neg() Value {
	return Value{mant: new(big.Int).Neg(v.mantissa()), ctx: v.context()}
}

// Abs returns |v|.
func (v Value) Abs() Value {
	return Value{mant: new(big.Int).Abs(v.mantissa()), ctx: v.context()}
}

// Pow returns v raised to an integer exponent, computed by
// square-and-multiply in scaled space with a truncating scale division
// after every product. A negative exponent inverts the result; a zero
// base with a negative exponent fails with ErrDivisionByZero.
func (v Value) Pow(exp int) (Value, error) {
	c, m := v.context(), v.mantissa()
	if exp < 0 && m.Sign() == 0 {
		return Value{}, ErrDivisionByZero.New("zero base with negative exponent %d", exp)
	}
	acc := new(big.Int).Set(c.scale) // 1.0 in scaled space
	base := new(big.Int).Set(m)
	for n := mathutil.AbsInt(exp); n > 0; n >>= 1 {
		if n&1 == 1 {
			acc.Mul(acc, base)
			acc.Quo(acc, c.scale)
		}
		base.Mul(base, base)
		base.Quo(base, c.scale)
	}
	if exp < 0 {
		if acc.Sign() == 0 {
			return Value{}, ErrDivisionByZero.New("%s**%d underflows to zero", v, -exp)
		}
		inv := new(big.Int).Mul(c.scale, c.scale)
		inv.Quo(inv, acc)
		acc = inv
	}
	return Value{mant: acc, ctx: c}, nil
}

// Sqrt returns the square root of v via Newton-Raphson iteration
// seeded with v/2. The iteration cap grows with the Context's
// precision; the loop exits early once successive guesses converge.
// Fails with ErrNegativeSquareRoot for negative values.
func (v Value) Sqrt() (Value, error) {
	c, m := v.context(), v.mantissa()
	switch m.Sign() {
	case -1:
		return Value{}, ErrNegativeSquareRoot.New("sqrt of %s", v)
	case 0:
		return Value{mant: new(big.Int), ctx: c}, nil
	}
	// sqrt(m/scale) = sqrt(m*scale)/scale, so iterate on m*scale.
	target := new(big.Int).Mul(m, c.scale)
	guess := new(big.Int).Rsh(m, 1)
	if guess.Sign() == 0 {
		guess.SetInt64(1)
	}
	prev := new(big.Int)
	for i := maxSqrtRounds(c.places); i > 0; i-- {
		next := new(big.Int).Quo(target, guess)
		next.Add(next, guess)
		next.Rsh(next, 1)
		if next.Cmp(guess) == 0 {
			break
		}
		if next.Cmp(prev) == 0 {
			// oscillating between two neighbours; the lower one is the
			// truncated root.
			if next.Cmp(guess) > 0 {
				next = guess
			}
			guess = next
			break
		}
		prev, guess = guess, next
	}
	return Value{mant: guess, ctx: c}, nil
}

// maxSqrtRounds caps the Newton iteration count; higher precision
// contexts get more rounds.
func maxSqrtRounds(places int) int {
	return 16 + 8*(places+1)
}

// ShiftedBy moves the decimal point n digits to the right (n > 0) or
// to the left (n < 0) by multiplying or dividing the mantissa by
// 10^|n|. The operation never rounds: a left shift that does not
// divide the mantissa evenly fails with ErrInexactShift.
func (v Value) ShiftedBy(n int) (Value, error) {
	c, m := v.context(), v.mantissa()
	if n >= 0 {
		return Value{mant: new(big.Int).Mul(m, mathutil.Pow10(n)), ctx: c}, nil
	}
	quo, rem := new(big.Int).QuoRem(m, mathutil.Pow10(-n), new(big.Int))
	if rem.Sign() != 0 {
		return Value{}, ErrInexactShift.New("shifting %s by %d is not exact", v, n)
	}
	return Value{mant: quo, ctx: c}, nil
}

// Raw operations. These combine mantissas as plain integers: no
// Context validation and no scale correction. Product returns m1×m2
// verbatim, which as a decimal is 10^places times larger than Mul's
// result; Fraction and Leftover likewise skip the scale
// pre-multiplication that Div and Mod perform. They exist for advanced
// composition over already-scaled externals; reach for the regular
// operations unless the mantissa-level semantics is exactly what is
// wanted. Results adopt the receiver's Context.

// Plus returns a value whose mantissa is the plain sum of both
// mantissas, regardless of the operands' Contexts.
func (v Value) Plus(other Value) Value {
	return Value{mant: new(big.Int).Add(v.mantissa(), other.mantissa()), ctx: v.context()}
}

// Minus returns a value whose mantissa is the plain difference of both
// mantissas, regardless of the operands' Contexts.
func (v Value) Minus(other Value) Value {
	return Value{mant: new(big.Int).Sub(v.mantissa(), other.mantissa()), ctx: v.context()}
}

// Product returns a value whose mantissa is the plain product m1×m2
// with no scale correction.
func (v Value) Product(other Value) Value {
	return Value{mant: new(big.Int).Mul(v.mantissa(), other.mantissa()), ctx: v.context()}
}

// Fraction returns a value whose mantissa is the plain truncated
// quotient m1/m2 with no scale pre-multiplication. Fails with
// ErrDivisionByZero if other's mantissa is zero.
func (v Value) Fraction(other Value) (Value, error) {
	m2 := other.mantissa()
	if m2.Sign() == 0 {
		return Value{}, ErrDivisionByZero.New("fraction %s by zero", v)
	}
	return Value{mant: new(big.Int).Quo(v.mantissa(), m2), ctx: v.context()}, nil
}

// Leftover returns a value whose mantissa is the plain remainder
// m1%m2 with no scale pre-multiplication. Fails with
// ErrDivisionByZero if other's mantissa is zero.
func (v Value) Leftover(other Value) (Value, error) {
	m2 := other.mantissa()
	if m2.Sign() == 0 {
		return Value{}, ErrDivisionByZero.New("leftover %s by zero", v)
	}
	return Value{mant: new(big.Int).Rem(v.mantissa(), m2), ctx: v.context()}, nil
}

// Cmp compares two values of an equal Context.
// Returns -1 if v < other, 0 if equal, 1 if v > other.
func (v Value) Cmp(other Value) (int, error) {
	_, m1, m2, err := v.match(other)
	if err != nil {
		return 0, err
	}
	return m1.Cmp(m2), nil
}

// CmpRaw compares the two mantissas as plain integers, skipping the
// Context check. Across different scales the result has no decimal
// meaning; it is a low-level primitive for pre-scaled workflows.
func (v Value) CmpRaw(other Value) int {
	return v.mantissa().Cmp(other.mantissa())
}

// Eq reports v == other.
func (v Value) Eq(other Value) (bool, error) {
	c, err := v.Cmp(other)
	return c == 0, err
}

// Gt reports v > other.
func (v Value) Gt(other Value) (bool, error) {
	c, err := v.Cmp(other)
	return c > 0, err
}

// Gte reports v >= other.
func (v Value) Gte(other Value) (bool, error) {
	c, err := v.Cmp(other)
	return c >= 0, err
}

// Lt reports v < other.
func (v Value) Lt(other Value) (bool, error) {
	c, err := v.Cmp(other)
	return c < 0, err
}

// Lte reports v <= other.
func (v Value) Lte(other Value) (bool, error) {
	c, err := v.Cmp(other)
	return c <= 0, err
}

// IsZero reports whether the value is zero.
func (v Value) IsZero() bool {
	return v.mantissa().Sign() == 0
}

// IsPositive reports whether the value is greater than zero.
func (v Value) IsPositive() bool {
	return v.mantissa().Sign() > 0
}

// IsNegative reports whether the value is less than zero.
func (v Value) IsNegative() bool {
	return v.mantissa().Sign() < 0
}
