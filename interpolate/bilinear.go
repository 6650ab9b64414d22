package interpolate

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/srep/elliptical"
	"github.com/katalvlaran/srep/skeletal"
)

// maxBilinearLevel keeps 1<<level and the grid sizes inside int.
const maxBilinearLevel = 30

// degenerateTolerance is the smallest blended direction norm accepted.
const degenerateTolerance = 1e-12

// Bilinear is the default Refiner.
//
// With f = 2^level a source grid of L lines and S steps becomes L·f lines and
// (S−1)·f+1 steps. Every source point reappears at (line·f, step·f); the
// points in between blend the four surrounding source points with bilinear
// weights. Lines wrap around, steps do not. Per spoke, skeletal positions and
// radii are blended linearly and directions by normalized linear blending.
//
// Interior targets need up and down spokes on every source point they blend,
// crest targets need crest spokes (ErrMissingSpoke). A crest point without an
// up or down spoke lends its crest spoke in its place when blended into an
// interior target, so crests carrying a single spoke refine normally. Up and
// down spokes of crest targets are kept when all blended crest points have them.
type Bilinear struct{}

type weightedPoint struct {
	p *skeletal.Point
	w float64
}

type weightedSpoke struct {
	s skeletal.Spoke
	w float64
}

// Refine implements Refiner.
// Complexity: O(L·S·4^level).
func (Bilinear) Refine(level int, src *elliptical.SRep) (*elliptical.SRep, error) {
	switch {
	case src == nil:
		return nil, ErrNilSource
	case src.IsEmpty():
		return nil, ErrEmptySource
	case level < 0:
		return nil, fmt.Errorf("%w: %d", ErrNegativeLevel, level)
	case level > maxBilinearLevel:
		return nil, fmt.Errorf("%w: %d > %d", ErrLevelTooHigh, level, maxBilinearLevel)
	}

	lines, steps := src.NumberOfLines(), src.NumberOfSteps()
	f := 1 << level
	out, err := elliptical.NewWithSize(lines*f, (steps-1)*f+1)
	if err != nil {
		return nil, err
	}

	// One notification for the whole fill
	release := out.ModifiedBlocker()
	defer release()
	for line := 0; line < out.NumberOfLines(); line++ {
		// Source lines around the target; the last one wraps to line 0
		l0, l1 := line/f, (line/f+1)%lines
		t := float64(line%f) / float64(f)
		for step := 0; step < out.NumberOfSteps(); step++ {
			// Steps do not wrap: on a source step s1 == s0 and u == 0
			s0 := step / f
			u := float64(step%f) / float64(f)
			s1 := s0
			if u > 0 {
				s1 = s0 + 1
			}

			// Corner order matches the weights: (l0,s0) (l1,s0) (l0,s1) (l1,s1)
			corners, err := gather(src, [4]int{l0, l1, l0, l1}, [4]int{s0, s0, s1, s1},
				[4]float64{(1 - t) * (1 - u), t * (1 - u), (1 - t) * u, t * u})
			if err != nil {
				return nil, err
			}
			p, err := blendPoint(corners, out.IsCrestStep(step))
			if err != nil {
				return nil, fmt.Errorf("target (line %d, step %d): %w", line, step, err)
			}
			// Blending never changes crest-ness, but guard the take below
			if !out.CanSet(line, step, p) {
				return nil, fmt.Errorf("%w: target (line %d, step %d)", elliptical.ErrInvalidAssignment, line, step)
			}
			if err = out.TakeSkeletalPoint(line, step, p); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// gather collects the source points with positive weight.
func gather(src *elliptical.SRep, lines, steps [4]int, weights [4]float64) ([]weightedPoint, error) {
	out := make([]weightedPoint, 0, 4)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		p, err := src.SkeletalPoint(lines[i], steps[i])
		if err != nil {
			return nil, err
		}
		out = append(out, weightedPoint{p: p, w: w})
	}

	return out, nil
}

func blendPoint(corners []weightedPoint, crest bool) (*skeletal.Point, error) {
	getUp, getDown := (*skeletal.Point).UpSpoke, (*skeletal.Point).DownSpoke
	if !crest {
		// Interior targets next to the crest borrow single-spoke crests
		getUp, getDown = orCrestSpoke(getUp), orCrestSpoke(getDown)
	}
	up, hasUp, err := blendKind(corners, getUp)
	if err != nil {
		return nil, fmt.Errorf("up spoke: %w", err)
	}
	down, hasDown, err := blendKind(corners, getDown)
	if err != nil {
		return nil, fmt.Errorf("down spoke: %w", err)
	}

	if !crest {
		if !hasUp || !hasDown {
			return nil, fmt.Errorf("%w: interior points need up and down spokes", ErrMissingSpoke)
		}
		return skeletal.NewInteriorPoint(up, down), nil
	}

	cs, hasCrest, err := blendKind(corners, (*skeletal.Point).CrestSpoke)
	if err != nil {
		return nil, fmt.Errorf("crest spoke: %w", err)
	}
	if !hasCrest {
		return nil, fmt.Errorf("%w: crest points need a crest spoke", ErrMissingSpoke)
	}
	if hasUp && hasDown {
		return skeletal.NewCrestPoint(up, down, cs), nil
	}
	// Partial crest: keep only the spokes every corner had
	p := skeletal.NewDefaultPoint(true)
	if err = p.SetCrestSpoke(cs); err != nil {
		return nil, err
	}
	if hasUp {
		p.SetUpSpoke(up)
	}
	if hasDown {
		p.SetDownSpoke(down)
	}

	return p, nil
}

// orCrestSpoke falls back to the crest spoke when get finds nothing. Interior
// points have no crest spoke, so only crest points are affected.
func orCrestSpoke(get func(*skeletal.Point) (skeletal.Spoke, bool)) func(*skeletal.Point) (skeletal.Spoke, bool) {
	return func(p *skeletal.Point) (skeletal.Spoke, bool) {
		if s, ok := get(p); ok {
			return s, true
		}
		return p.CrestSpoke()
	}
}

// blendKind blends one kind of spoke. ok is false when any corner lacks it.
func blendKind(corners []weightedPoint, get func(*skeletal.Point) (skeletal.Spoke, bool)) (skeletal.Spoke, bool, error) {
	spokes := make([]weightedSpoke, 0, len(corners))
	for _, c := range corners {
		s, ok := get(c.p)
		if !ok {
			return skeletal.Spoke{}, false, nil
		}
		spokes = append(spokes, weightedSpoke{s: s, w: c.w})
	}
	s, err := blendSpokes(spokes)
	if err != nil {
		return skeletal.Spoke{}, false, err
	}

	return s, true, nil
}

// blendSpokes returns the single spoke unchanged, otherwise the weighted
// blend of positions, radii and unit directions.
func blendSpokes(spokes []weightedSpoke) (skeletal.Spoke, error) {
	// Source cells are copied exactly
	if len(spokes) == 1 {
		return spokes[0].s, nil
	}
	var pos, dir r3.Vec
	radius := 0.0
	// Weights sum to 1: positions and radii lerp, directions nlerp
	for _, ws := range spokes {
		pos = r3.Add(pos, r3.Scale(ws.w, ws.s.Skeletal))
		dir = r3.Add(dir, r3.Scale(ws.w, ws.s.UnitDirection()))
		radius += ws.w * ws.s.Radius()
	}
	// Opposite directions cancel and leave no orientation to normalize
	if r3.Norm(dir) < degenerateTolerance {
		return skeletal.Spoke{}, ErrDegenerate
	}

	return skeletal.Spoke{Skeletal: pos, Direction: r3.Scale(radius, r3.Unit(dir))}, nil
}
