package skeletal

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// NewSpoke builds a Spoke from a skeletal position, a direction and a radius.
// The direction is normalized first, so only its orientation matters.
// Returns ErrZeroDirection if dir has zero length.
func NewSpoke(skeletalPos, dir r3.Vec, radius float64) (Spoke, error) {
	if r3.Norm(dir) == 0 {
		return Spoke{}, ErrZeroDirection
	}

	return Spoke{Skeletal: skeletalPos, Direction: r3.Scale(radius, r3.Unit(dir))}, nil
}

// Radius is the length of the spoke.
func (s Spoke) Radius() float64 {
	return r3.Norm(s.Direction)
}

// UnitDirection returns the normalized direction, or the zero vector for a
// zero-length spoke.
func (s Spoke) UnitDirection() r3.Vec {
	if r3.Norm(s.Direction) == 0 {
		return r3.Vec{}
	}

	return r3.Unit(s.Direction)
}

// Boundary is the boundary point the spoke reaches.
func (s Spoke) Boundary() r3.Vec {
	return r3.Add(s.Skeletal, s.Direction)
}

// String renders the spoke as "skeletal -> boundary".
func (s Spoke) String() string {
	b := s.Boundary()
	return fmt.Sprintf("(%g, %g, %g) -> (%g, %g, %g)",
		s.Skeletal.X, s.Skeletal.Y, s.Skeletal.Z, b.X, b.Y, b.Z)
}
