// Package mathutil provides arbitrary-precision powers of ten and
// small integer helpers shared by the scaledec package.
package mathutil

import "math/big"

// MaxCachedPow10 is the largest exponent served from the lookup table.
const MaxCachedPow10 = 20

var pow10Table = func() [MaxCachedPow10 + 1]*big.Int {
	var table [MaxCachedPow10 + 1]*big.Int
	ten := big.NewInt(10)
	table[0] = big.NewInt(1)
	for i := 1; i < len(table); i++ {
		table[i] = new(big.Int).Mul(table[i-1], ten)
	}
	return table
}()

// Pow10 returns 10^pow.
// Values for pow in [0, MaxCachedPow10] are served from a precomputed
// table and must be treated as read-only; larger exponents are computed
// on the fly. Pow10 panics if pow is negative.
func Pow10(pow int) *big.Int {
	if pow < 0 {
		panic("mathutil: negative power of ten")
	}
	if pow <= MaxCachedPow10 {
		return pow10Table[pow]
	}
	return new(big.Int).Exp(pow10Table[1], big.NewInt(int64(pow)), nil)
}

// Pow10Copy returns a freshly allocated 10^pow, safe to mutate.
func Pow10Copy(pow int) *big.Int {
	return new(big.Int).Set(Pow10(pow))
}

// AbsInt returns the absolute value of val.
func AbsInt(val int) int {
	if val < 0 {
		return -val
	}
	return val
}
