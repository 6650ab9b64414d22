package interpolate

import (
	"fmt"

	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/srep/elliptical"
)

// Interpolate returns a refined copy of src at the given level.
//
// Behavior:
//  1. Validate options, src and level.
//  2. level == 0: return src.Clone().
//  3. level > 0: call the configured Refiner. An error, a nil grid or src
//     itself is reported as ErrRefinementFailed and no grid is returned.
//
// src is never modified.
func Interpolate(src *elliptical.SRep, level int, opts ...Option) (*elliptical.SRep, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// callers such as scene.Logic already set ClsKey
	logger := o.Logger.WithFields(l.StringField("component", "interpolate"), l.IntField("level", level))

	switch {
	case src == nil:
		return nil, ErrNilSource
	case src.IsEmpty():
		return nil, ErrEmptySource
	case level < 0:
		return nil, fmt.Errorf("%w: %d", ErrNegativeLevel, level)
	case level > o.MaxLevel:
		return nil, fmt.Errorf("%w: %d > %d", ErrLevelTooHigh, level, o.MaxLevel)
	}

	if level == 0 {
		return src.Clone(), nil
	}

	out, err := o.Refiner.Refine(level, src)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("refine failed")
		return nil, fmt.Errorf("%w: %w", ErrRefinementFailed, err)
	}
	if out == nil {
		logger.Error("refiner returned no srep")
		return nil, fmt.Errorf("%w: refiner returned no srep", ErrRefinementFailed)
	}
	if out == src {
		logger.Error("refiner returned its input")
		return nil, fmt.Errorf("%w: refiner returned its input", ErrRefinementFailed)
	}
	logger.WithFields(
		l.IntField("lines", out.NumberOfLines()),
		l.IntField("steps", out.NumberOfSteps()),
	).Debug("refined")

	return out, nil
}
