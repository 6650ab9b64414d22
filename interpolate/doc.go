// Package interpolate produces refined copies of an elliptical s-rep.
//
// What:
//
//   - Interpolate(src, level) returns a new, independently owned grid.
//     Level 0 is an exact deep copy. Higher levels are delegated to a Refiner.
//   - Refiner is the seam for the refinement mathematics. Bilinear is the
//     default: it splits every line interval and every step interval into
//     2^level parts and blends the four surrounding source points.
//   - The source grid is never modified, and a failed refinement returns no
//     grid at all.
//
// Options:
//
//   - WithRefiner: swap the refinement strategy.
//   - WithMaxLevel: upper bound for level (default DefaultMaxLevel).
//   - WithLogger:   l.Wrapper receiving debug and error records.
//
// Errors:
//
//   - ErrNilSource, ErrEmptySource: unusable source grid.
//   - ErrNegativeLevel, ErrLevelTooHigh: level outside [0, MaxLevel].
//   - ErrRefinementFailed: the Refiner gave no usable result. The cause
//     (ErrMissingSpoke, ErrDegenerate or a custom error) is wrapped.
//   - ErrOptionViolation: an invalid Option was supplied.
package interpolate
