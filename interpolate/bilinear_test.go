package interpolate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/srep/elliptical"
	"github.com/katalvlaran/srep/interpolate"
	"github.com/katalvlaran/srep/skeletal"
)

func TestBilinear_Dimensions(t *testing.T) {
	cases := []struct {
		name                 string
		lines, steps, level  int
		wantLines, wantSteps int
	}{
		{"4x2_L1", 4, 2, 1, 8, 3},
		{"4x3_L1", 4, 3, 1, 8, 5},
		{"4x3_L2", 4, 3, 2, 16, 9},
		{"6x4_L3", 6, 4, 3, 48, 25},
		{"CrestOnly", 3, 1, 1, 6, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := ellipseGrid(t, tc.lines, tc.steps)
			out, err := interpolate.Interpolate(src, tc.level)
			require.NoError(t, err)
			require.Equal(t, tc.wantLines, out.NumberOfLines())
			require.Equal(t, tc.wantSteps, out.NumberOfSteps())

			require.NoError(t, out.ForEach(func(line, step int, p *skeletal.Point) error {
				require.Equal(t, out.IsCrestStep(step), p.IsCrest(), "crest rule at (%d,%d)", line, step)
				return nil
			}))
			assert.Equal(t, tc.wantLines, out.CrestSpokes().Len())
			assert.Equal(t, tc.wantLines*(tc.wantSteps-1), out.UpSpokes().Len())
		})
	}
}

func TestBilinear_KeepsSourcePointsAndSource(t *testing.T) {
	src := ellipseGrid(t, 4, 3)
	before := src.Clone()
	notified := 0
	src.Observe(func(*elliptical.SRep) { notified++ })

	out, err := interpolate.Bilinear{}.Refine(1, src)
	require.NoError(t, err)
	for line := 0; line < 4; line++ {
		for step := 0; step < 3; step++ {
			assert.True(t, point(t, src, line, step).Equal(point(t, out, 2*line, 2*step)), "(%d,%d)", line, step)
			assert.NotSame(t, point(t, src, line, step), point(t, out, 2*line, 2*step))
		}
	}
	assert.True(t, before.Equal(src))
	assert.Zero(t, notified)
}

func TestBilinear_Midpoints(t *testing.T) {
	src := ellipseGrid(t, 4, 2)
	out, err := interpolate.Interpolate(src, 1)
	require.NoError(t, err)

	// between lines 0 and 1 on the spine
	up, ok := point(t, out, 1, 0).UpSpoke()
	require.True(t, ok)
	assert.Equal(t, r3.Vec{X: 0.5}, up.Skeletal)
	assert.Equal(t, r3.Vec{Z: 1}, up.Direction)

	// wrap-around: between lines 3 and 0
	up, _ = point(t, out, 7, 0).UpSpoke()
	assert.Equal(t, r3.Vec{X: 0.5}, up.Skeletal)

	// between spine and crest of line 2: radius blends 1 and 2
	down, ok := point(t, out, 4, 1).DownSpoke()
	require.True(t, ok)
	assert.InDelta(t, 1.5, down.Radius(), 1e-12)
	assert.InDelta(t, -1.0, down.UnitDirection().Z, 1e-12)
}

// TestBilinear_SpineStaysFolded checks that refined lines j and L'−j still
// share their spine point.
func TestBilinear_SpineStaysFolded(t *testing.T) {
	src := ellipseGrid(t, 4, 3)
	out, err := interpolate.Interpolate(src, 2)
	require.NoError(t, err)

	lines := out.NumberOfLines()
	for j := 1; j < lines; j++ {
		a, _ := point(t, out, j, 0).UpSpoke()
		b, _ := point(t, out, lines-j, 0).UpSpoke()
		assert.InDelta(t, a.Skeletal.X, b.Skeletal.X, 1e-12, "line %d vs %d", j, lines-j)
	}
	assert.Len(t, out.UpSpine(), out.NumberOfSpinePointsWithoutDuplicates())
}

func TestBilinear_MissingSpokes(t *testing.T) {
	placeholders, err := elliptical.NewWithSize(4, 2)
	require.NoError(t, err)
	out, err := interpolate.Interpolate(placeholders, 1)
	require.ErrorIs(t, err, interpolate.ErrRefinementFailed)
	require.ErrorIs(t, err, interpolate.ErrMissingSpoke)
	assert.Nil(t, out)

	noCrest := ellipseGrid(t, 4, 2)
	require.NoError(t, noCrest.SetSkeletalPoint(2, 1, skeletal.NewDefaultPoint(true)))
	_, err = interpolate.Interpolate(noCrest, 1)
	require.ErrorIs(t, err, interpolate.ErrMissingSpoke)
}

func TestBilinear_Degenerate(t *testing.T) {
	src := ellipseGrid(t, 2, 2)
	p := point(t, src, 1, 0)
	up, _ := p.UpSpoke()
	up.Direction = r3.Scale(-1, up.Direction)
	p.SetUpSpoke(up)

	_, err := interpolate.Interpolate(src, 1)
	require.ErrorIs(t, err, interpolate.ErrRefinementFailed)
	require.ErrorIs(t, err, interpolate.ErrDegenerate)
}

func TestBilinear_DirectErrors(t *testing.T) {
	_, err := interpolate.Bilinear{}.Refine(1, nil)
	require.ErrorIs(t, err, interpolate.ErrNilSource)
	_, err = interpolate.Bilinear{}.Refine(1, elliptical.New())
	require.ErrorIs(t, err, interpolate.ErrEmptySource)
	_, err = interpolate.Bilinear{}.Refine(-1, ellipseGrid(t, 2, 2))
	require.ErrorIs(t, err, interpolate.ErrNegativeLevel)
	_, err = interpolate.Bilinear{}.Refine(31, ellipseGrid(t, 2, 2))
	require.ErrorIs(t, err, interpolate.ErrLevelTooHigh)
}

func TestBilinear_CrestPointWithoutUpDown(t *testing.T) {
	src := ellipseGrid(t, 3, 1)
	for line := 0; line < 3; line++ {
		cs, _ := point(t, src, line, 0).CrestSpoke()
		bare := skeletal.NewDefaultPoint(true)
		require.NoError(t, bare.SetCrestSpoke(cs))
		require.NoError(t, src.SetSkeletalPoint(line, 0, bare))
	}

	out, err := interpolate.Interpolate(src, 1)
	require.NoError(t, err)
	p := point(t, out, 1, 0)
	_, hasUp := p.UpSpoke()
	assert.False(t, hasUp)
	_, hasCrest := p.CrestSpoke()
	assert.True(t, hasCrest)
}

// TestBilinear_SingleSpokeCrest refines a multi-step grid whose crest points
// carry only their crest spoke.
func TestBilinear_SingleSpokeCrest(t *testing.T) {
	src := ellipseGrid(t, 4, 2)
	for line := 0; line < 4; line++ {
		cs, _ := point(t, src, line, 1).CrestSpoke()
		bare := skeletal.NewDefaultPoint(true)
		require.NoError(t, bare.SetCrestSpoke(cs))
		require.NoError(t, src.SetSkeletalPoint(line, 1, bare))
	}

	out, err := interpolate.Interpolate(src, 1)
	require.NoError(t, err)
	require.Equal(t, 8, out.NumberOfLines())
	require.Equal(t, 3, out.NumberOfSteps())
	require.NoError(t, out.ForEach(func(line, step int, p *skeletal.Point) error {
		if out.IsCrestStep(step) {
			_, ok := p.CrestSpoke()
			assert.True(t, ok, "crest spoke at (%d,%d)", line, step)
			return nil
		}
		_, hasUp := p.UpSpoke()
		_, hasDown := p.DownSpoke()
		assert.True(t, hasUp && hasDown, "up and down spokes at (%d,%d)", line, step)
		return nil
	}))

	// halfway between the spine (up +Z, radius 1) and the crest spoke (+X, radius 1)
	up, ok := point(t, out, 0, 1).UpSpoke()
	require.True(t, ok)
	assert.InDelta(t, 0.5, up.Skeletal.X, 1e-12)
	assert.InDelta(t, 1.0, up.Radius(), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, up.UnitDirection().X, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, up.UnitDirection().Z, 1e-12)
	down, _ := point(t, out, 0, 1).DownSpoke()
	assert.InDelta(t, -math.Sqrt2/2, down.UnitDirection().Z, 1e-12)

	// the crest row keeps a single spoke and links to the row next to it
	_, hasUp := point(t, out, 0, 2).UpSpoke()
	assert.False(t, hasUp)
	assert.NotContains(t, out.CrestToUpSpokeConnections(), -1)
	assert.Len(t, out.CrestToDownSpokeConnections(), 8)
}
