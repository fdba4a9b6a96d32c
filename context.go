package scaledec

import (
	"math/big"

	"github.com/scaledec/scaledec/internal/mathutil"
)

// MaxPlaces is the largest supported number of decimal places.
const MaxPlaces = 20

const (
	defaultPlaces = 8
	defaultMode   = HalfUp
)

// Context bundles the number of decimal places and the rounding mode
// governing a set of values, along with the cached 10^places scale
// factor. A Context is immutable once constructed and may be shared by
// any number of values and goroutines.
type Context struct {
	places int
	mode   RoundingMode
	scale  *big.Int // always 10^places, read-only
}

// defaultContext is the ambient Context used when no explicit one is
// given. It is replaced wholesale by Configure and never mutated.
var defaultContext = newContext(defaultPlaces, defaultMode)

func newContext(places int, mode RoundingMode) *Context {
	return &Context{places: places, mode: mode, scale: mathutil.Pow10(places)}
}

// NewContext returns a Context with the given number of decimal places
// and rounding mode. places must be in [0, MaxPlaces].
func NewContext(places int, mode RoundingMode) (*Context, error) {
	if places < 0 || places > MaxPlaces {
		return nil, ErrConfig.New("decimal places %d outside [0, %d]", places, MaxPlaces)
	}
	if !mode.valid() {
		return nil, ErrConfig.New("unknown rounding mode %d", mode)
	}
	return newContext(places, mode), nil
}

// MustContext is like NewContext but panics on error.
func MustContext(places int, mode RoundingMode) *Context {
	c, err := NewContext(places, mode)
	if err != nil {
		panic(err)
	}
	return c
}

// Places returns the number of decimal places.
func (c *Context) Places() int {
	return c.places
}

// Mode returns the rounding mode.
func (c *Context) Mode() RoundingMode {
	return c.mode
}

// Scale returns a copy of the 10^places scale factor.
func (c *Context) Scale() *big.Int {
	return new(big.Int).Set(c.scale)
}

// Equal reports whether both Contexts carry the same places and
// rounding mode. Two values interoperate whenever their Contexts are
// Equal; pointer identity is irrelevant.
func (c *Context) Equal(other *Context) bool {
	return c.places == other.places && c.mode == other.mode
}

// Default returns the ambient default Context.
// The initial default uses 8 decimal places and HalfUp rounding.
func Default() *Context {
	return defaultContext
}

// Option configures a Context built by Configure.
type Option func(*config)

type config struct {
	places int
	mode   RoundingMode
}

// WithPlaces sets the number of decimal places.
func WithPlaces(places int) Option {
	return func(c *config) { c.places = places }
}

// WithMode sets the rounding mode.
func WithMode(mode RoundingMode) Option {
	return func(c *config) { c.mode = mode }
}

// Configure replaces the ambient default Context with a new one built
// from the current default plus the given options. Values already
// constructed keep the Context they were created with.
//
// Configure is a setup-time escape hatch: it must not be called
// concurrently with Default or with value construction on other
// goroutines. Prefer NewFactory, which needs no shared state at all.
func Configure(opts ...Option) error {
	cfg := config{places: defaultContext.places, mode: defaultContext.mode}
	for _, opt := range opts {
		opt(&cfg)
	}
	ctx, err := NewContext(cfg.places, cfg.mode)
	if err != nil {
		return err
	}
	defaultContext = ctx
	return nil
}

// Factory constructs values bound to one immutable Context captured at
// creation time. It is the recommended way to keep several precision
// configurations in one program without touching the ambient default.
type Factory struct {
	ctx *Context
}

// NewFactory returns a Factory for the given configuration.
func NewFactory(places int, mode RoundingMode) (*Factory, error) {
	ctx, err := NewContext(places, mode)
	if err != nil {
		return nil, err
	}
	return &Factory{ctx: ctx}, nil
}

// Context returns the Context captured by the factory.
func (f *Factory) Context() *Context {
	return f.ctx
}

// New constructs a value from v under the factory's Context.
// See New for the accepted input kinds.
func (f *Factory) New(v interface{}) (Value, error) {
	return New(v, f.ctx)
}

// MustNew is like New but panics on error.
func (f *Factory) MustNew(v interface{}) Value {
	val, err := f.New(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Parse parses a decimal string under the factory's Context.
func (f *Factory) Parse(s string) (Value, error) {
	return Parse(s, f.ctx)
}
