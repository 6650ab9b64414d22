package interpolate

import (
	"errors"
	"fmt"

	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/srep/elliptical"
)

// DefaultMaxLevel bounds the refinement level; level 8 multiplies each
// axis by 256.
const DefaultMaxLevel = 8

// MaxLevelCeiling is the highest value WithMaxLevel accepts. Level 16 already
// multiplies the line count by 65536.
const MaxLevelCeiling = 16

// Sentinel errors for interpolation.
var (
	// ErrNilSource is returned when the source grid is nil.
	ErrNilSource = errors.New("interpolate: source srep is nil")

	// ErrEmptySource is returned when the source grid has no lines or steps.
	ErrEmptySource = errors.New("interpolate: source srep is empty")

	// ErrNegativeLevel is returned for level < 0.
	ErrNegativeLevel = errors.New("interpolate: negative interpolation level")

	// ErrLevelTooHigh is returned for level > MaxLevel.
	ErrLevelTooHigh = errors.New("interpolate: interpolation level too high")

	// ErrRefinementFailed is returned when the Refiner produced no usable grid.
	ErrRefinementFailed = errors.New("interpolate: unable to interpolate srep")

	// ErrMissingSpoke is returned by Bilinear when a blended source point lacks
	// a spoke the target point needs.
	ErrMissingSpoke = errors.New("interpolate: source point is missing a spoke")

	// ErrDegenerate is returned by Bilinear when blended directions cancel out.
	ErrDegenerate = errors.New("interpolate: degenerate spoke directions")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("interpolate: invalid option supplied")
)

// Refiner turns a grid into a denser one. level is ≥ 1.
//
// Implementations must not modify src and must return a new grid that keeps
// the line axis circular, the spine at step 0 and the crest on the last step.
type Refiner interface {
	Refine(level int, src *elliptical.SRep) (*elliptical.SRep, error)
}

// RefinerFunc adapts a function to Refiner.
type RefinerFunc func(level int, src *elliptical.SRep) (*elliptical.SRep, error)

// Refine calls f(level, src).
func (f RefinerFunc) Refine(level int, src *elliptical.SRep) (*elliptical.SRep, error) {
	return f(level, src)
}

// Option configures Interpolate via functional arguments.
// Invalid options are recorded and surface as ErrOptionViolation.
type Option func(*Options)

// Options holds the interpolation settings.
type Options struct {
	// Refiner handles level > 0.
	Refiner Refiner

	// MaxLevel is the highest accepted level.
	MaxLevel int

	// Logger receives debug and error records.
	Logger l.Wrapper

	err error
}

// DefaultOptions returns Options with a Bilinear refiner, DefaultMaxLevel and
// a no-op logger.
func DefaultOptions() Options {
	return Options{
		Refiner:  Bilinear{},
		MaxLevel: DefaultMaxLevel,
		Logger:   l.NewNopLoggerWrapper(),
	}
}

// WithRefiner replaces the refinement strategy. nil is ignored.
func WithRefiner(r Refiner) Option {
	return func(o *Options) {
		if r != nil {
			o.Refiner = r
		}
	}
}

// WithMaxLevel sets the highest accepted level.
//
//	0 ≤ n ≤ MaxLevelCeiling: accept levels 0..n
//	otherwise: invalid option → ErrOptionViolation
func WithMaxLevel(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLevel cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		if n > MaxLevelCeiling {
			o.err = fmt.Errorf("%w: MaxLevel %d exceeds %d", ErrOptionViolation, n, MaxLevelCeiling)
			return
		}
		o.MaxLevel = n
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(logger l.Wrapper) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
