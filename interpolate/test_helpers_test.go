package interpolate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/srep/elliptical"
	"github.com/katalvlaran/srep/skeletal"
)

// ellipseGrid builds a lines×steps s-rep whose spine folds back on itself:
// lines l and lines−l share their spine point.
func ellipseGrid(t *testing.T, lines, steps int) *elliptical.SRep {
	t.Helper()
	s, err := elliptical.NewWithSize(lines, steps)
	require.NoError(t, err)
	release := s.ModifiedBlocker()
	defer release()

	for line := 0; line < lines; line++ {
		theta := 2 * math.Pi * float64(line) / float64(lines)
		radial := r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
		spineX := float64(min(line, lines-line))
		for step := 0; step < steps; step++ {
			at := r3.Add(r3.Vec{X: spineX}, r3.Scale(float64(step), radial))
			up := skeletal.Spoke{Skeletal: at, Direction: r3.Vec{Z: float64(1 + step)}}
			down := skeletal.Spoke{Skeletal: at, Direction: r3.Vec{Z: -float64(1 + step)}}
			var p *skeletal.Point
			if s.IsCrestStep(step) {
				p = skeletal.NewCrestPoint(up, down, skeletal.Spoke{Skeletal: at, Direction: radial})
			} else {
				p = skeletal.NewInteriorPoint(up, down)
			}
			require.NoError(t, s.SetSkeletalPoint(line, step, p))
		}
	}

	return s
}

func point(t *testing.T, s *elliptical.SRep, line, step int) *skeletal.Point {
	t.Helper()
	p, err := s.SkeletalPoint(line, step)
	require.NoError(t, err)

	return p
}
