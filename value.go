// Package scaledec implements exact fixed-point decimal arithmetic on
// arbitrary-precision scaled integers.
//
// A Value stores a decimal number as a mantissa m and a Context with p
// decimal places, such that the represented number is m / 10^p. All
// arithmetic is integer arithmetic on mantissas, so results are exact
// up to the configured precision and fully reproducible.
//
// Values are immutable: every operation returns a new Value. Regular
// operations require both operands to share an equal Context and fail
// with ErrConfigMismatch otherwise. A parallel set of raw operations
// (Plus, Minus, Product, Fraction, Leftover, CmpRaw) skips that check
// and, for Product/Fraction/Leftover, also skips scale correction; see
// their documentation before use.
//
// Integer-typed constructor inputs are adopted as already-scaled
// mantissas, not decimal values: New(int64(100), ctx) under an 8-place
// Context is 0.00000100, while New(100.0, ctx) is 100.00000000. This
// asymmetry is deliberate; it lets mantissas extracted with Mantissa
// flow back into arithmetic without rescaling.
package scaledec

import (
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/scaledec/scaledec/internal/mathutil"
)

// floatPrec is enough for an exact float64 × 10^MaxPlaces product:
// 53 mantissa bits plus under 67 bits of scale.
const floatPrec = 128

var bigZero = new(big.Int)

// Value is a fixed-point decimal number: a scaled integer mantissa
// bound to a Context. The zero Value represents 0 under the ambient
// default Context.
type Value struct {
	mant *big.Int
	ctx  *Context
}

func (v Value) context() *Context {
	if v.ctx == nil {
		return Default()
	}
	return v.ctx
}

func (v Value) mantissa() *big.Int {
	if v.mant == nil {
		return bigZero
	}
	return v.mant
}

// New constructs a Value from v under ctx. If ctx is nil, the ambient
// default Context is used. Accepted input kinds:
//
//	string            decimal literal, excess fractional digits truncated
//	float64, float32  decimal value, scaled and truncated towards zero
//	int, int64,       PRE-SCALED mantissa adopted verbatim,
//	*big.Int          no multiplication by the scale factor
//	Value             copied; its Context must equal ctx
//
// Any other type fails with ErrInvalidArgument.
func New(v interface{}, ctx *Context) (Value, error) {
	if ctx == nil {
		ctx = Default()
	}
	switch t := v.(type) {
	case string:
		return Parse(t, ctx)
	case float64:
		return FromFloat64(t, ctx)
	case float32:
		return FromFloat64(float64(t), ctx)
	case int:
		return Value{mant: big.NewInt(int64(t)), ctx: ctx}, nil
	case int64:
		return Value{mant: big.NewInt(t), ctx: ctx}, nil
	case *big.Int:
		return FromMantissa(t, ctx), nil
	case Value:
		if !t.context().Equal(ctx) {
			return Value{}, ErrConfigMismatch.New("copying a value with places/mode %d/%s into a context with %d/%s",
				t.context().places, t.context().mode, ctx.places, ctx.mode)
		}
		return Value{mant: new(big.Int).Set(t.mantissa()), ctx: ctx}, nil
	default:
		return Value{}, ErrInvalidArgument.New("unsupported input type %T", v)
	}
}

// MustNew is like New but panics on error.
func MustNew(v interface{}, ctx *Context) Value {
	val, err := New(v, ctx)
	if err != nil {
		panic(err)
	}
	return val
}

// Parse interprets s as a decimal literal under ctx: an optional
// leading minus, an integer part, and an optional fractional part.
// Fractional digits beyond ctx's places are truncated, not rounded;
// missing digits are zero-padded. A nil ctx means the default Context.
func Parse(s string, ctx *Context) (Value, error) {
	if ctx == nil {
		ctx = Default()
	}
	mant, err := parseMantissa(s, ctx.places)
	if err != nil {
		return Value{}, err
	}
	return Value{mant: mant, ctx: ctx}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string, ctx *Context) Value {
	v, err := Parse(s, ctx)
	if err != nil {
		panic(err)
	}
	return v
}

func parseMantissa(s string, places int) (*big.Int, error) {
	orig := s
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	intPart, fracPart, hasFrac := s, "", false
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart, hasFrac = s[:i], s[i+1:], true
	}
	if len(intPart) == 0 || hasFrac && len(fracPart) == 0 {
		return nil, ErrParse.New("invalid decimal %q", orig)
	}
	mant, err := parseDigits(intPart, orig)
	if err != nil {
		return nil, err
	}
	mant.Mul(mant, mathutil.Pow10(places))
	if hasFrac {
		if len(fracPart) > places {
			fracPart = fracPart[:places] // truncation, not rounding
		}
		if len(fracPart) > 0 {
			frac, err := parseDigits(fracPart, orig)
			if err != nil {
				return nil, err
			}
			frac.Mul(frac, mathutil.Pow10(places-len(fracPart)))
			mant.Add(mant, frac)
		}
	}
	if neg {
		mant.Neg(mant)
	}
	return mant, nil
}

// parseDigits parses an unsigned run of decimal digits.
// big.Int.SetString does the numeric validation; explicit sign
// characters are rejected first, since SetString would accept them.
func parseDigits(s, orig string) (*big.Int, error) {
	if s[0] == '+' || s[0] == '-' {
		return nil, ErrParse.New("invalid decimal %q", orig)
	}
	m, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrParse.New("invalid decimal %q", orig)
	}
	return m, nil
}

// FromFloat64 constructs a Value from a native float under ctx. The
// float's exact binary value is scaled by 10^places and truncated
// towards zero, via arbitrary-precision arithmetic, so large
// magnitudes do not lose integer digits. NaN and infinities fail with
// ErrParse. A nil ctx means the default Context.
func FromFloat64(f float64, ctx *Context) (Value, error) {
	if ctx == nil {
		ctx = Default()
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, ErrParse.New("not a finite number: %v", f)
	}
	scaled := new(big.Float).SetPrec(floatPrec).SetFloat64(f)
	scaled.Mul(scaled, new(big.Float).SetPrec(floatPrec).SetInt(ctx.scale))
	mant, _ := scaled.Int(nil) // truncates towards zero
	return Value{mant: mant, ctx: ctx}, nil
}

// FromMantissa adopts m as an already-scaled mantissa under ctx,
// without multiplying by the scale factor. A nil ctx means the default
// Context.
func FromMantissa(m *big.Int, ctx *Context) Value {
	if ctx == nil {
		ctx = Default()
	}
	return Value{mant: new(big.Int).Set(m), ctx: ctx}
}

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Random returns a uniformly distributed value in [0, 1) with ctx's
// full precision. A nil ctx means the default Context.
func Random(ctx *Context) Value {
	if ctx == nil {
		ctx = Default()
	}
	rngMu.Lock()
	mant := new(big.Int).Rand(rng, ctx.scale)
	rngMu.Unlock()
	return Value{mant: mant, ctx: ctx}
}

// Context returns the Context the value is bound to.
func (v Value) Context() *Context {
	return v.context()
}

// Mantissa returns a copy of the underlying scaled integer. Feeding it
// back through New or FromMantissa reconstructs the value exactly.
func (v Value) Mantissa() *big.Int {
	return new(big.Int).Set(v.mantissa())
}

// Sign returns -1, 0 or 1 according to the sign of the value.
func (v Value) Sign() int {
	return v.mantissa().Sign()
}

// Float64 returns the value as a native float. The conversion is lossy
// for magnitudes beyond float64 precision.
func (v Value) Float64() float64 {
	f := new(big.Float).SetInt(v.mantissa())
	f.Quo(f, new(big.Float).SetInt(v.context().scale))
	res, _ := f.Float64()
	return res
}

// String renders the value in fixed decimal notation with exactly
// places fractional digits and a single leading '-' for negative
// values. A mantissa of zero has no sign.
func (v Value) String() string {
	return formatMantissa(v.mantissa(), v.context().places)
}

// GoString returns a debug representation with the raw mantissa and
// the Context configuration.
func (v Value) GoString() string {
	c := v.context()
	return v.String() + " {m:" + v.mantissa().String() +
		", places:" + strconv.Itoa(c.places) + ", mode:" + c.mode.String() + "}"
}

func formatMantissa(m *big.Int, places int) string {
	s := m.String()
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if places == 0 {
		b.WriteString(s)
		return b.String()
	}
	if diff := len(s) - places; diff > 0 {
		b.WriteString(s[:diff])
		b.WriteByte('.')
		b.WriteString(s[diff:])
	} else {
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -diff))
		b.WriteString(s)
	}
	return b.String()
}

// MarshalJSON encodes the value as its String form in a JSON string,
// never as a JSON number, so consumers cannot lose digits to float
// round-trips.
func (v Value) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(v.String())
	b.WriteByte('"')
	return []byte(b.String()), nil
}

// UnmarshalJSON decodes a JSON string (or bare number) produced by
// MarshalJSON. The value is bound to the ambient default Context.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return ErrParse.New("empty json")
	}
	parsed, err := Parse(strings.Trim(string(data), `"`), nil)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
