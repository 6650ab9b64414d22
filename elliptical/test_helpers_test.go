package elliptical_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/srep/elliptical"
	"github.com/katalvlaran/srep/skeletal"
)

// pointAt builds a fully populated point whose spokes encode (line, step).
func pointAt(line, step int, crest bool) *skeletal.Point {
	origin := r3.Vec{X: float64(line), Y: float64(step)}
	up := skeletal.Spoke{Skeletal: origin, Direction: r3.Vec{Z: float64(1 + step)}}
	down := skeletal.Spoke{Skeletal: origin, Direction: r3.Vec{Z: -float64(1 + step)}}
	if !crest {
		return skeletal.NewInteriorPoint(up, down)
	}
	cs := skeletal.Spoke{Skeletal: origin, Direction: r3.Vec{X: 1}}

	return skeletal.NewCrestPoint(up, down, cs)
}

// populated returns a lines×steps grid with every cell filled by pointAt.
func populated(t *testing.T, lines, steps int) *elliptical.SRep {
	t.Helper()
	s, err := elliptical.NewWithSize(lines, steps)
	require.NoError(t, err)
	for line := 0; line < lines; line++ {
		for step := 0; step < steps; step++ {
			require.NoError(t, s.SetSkeletalPoint(line, step, pointAt(line, step, s.IsCrestStep(step))))
		}
	}

	return s
}

// counter subscribes to s and returns a pointer to the notification count.
func counter(s *elliptical.SRep) *int {
	n := 0
	s.Observe(func(*elliptical.SRep) { n++ })

	return &n
}
