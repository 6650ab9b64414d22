package skeletal

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for skeletal points and spokes.
var (
	// ErrNotCrest indicates a crest spoke was assigned to an interior point.
	ErrNotCrest = errors.New("skeletal: crest spoke on a non-crest point")

	// ErrZeroDirection indicates a spoke direction with zero length.
	ErrZeroDirection = errors.New("skeletal: spoke direction has zero length")
)

// Spoke connects a skeletal position to a boundary point.
//
// Direction is not normalized: its norm is the spoke radius.
type Spoke struct {
	// Skeletal is the medial-axis position the spoke starts from.
	Skeletal r3.Vec

	// Direction points from Skeletal to the boundary.
	Direction r3.Vec
}

// ObserverID identifies one subscription on a Point.
type ObserverID uint64

// observer is one registered callback.
type observer struct {
	id ObserverID
	fn func(*Point)
}

// Point is a single medial-axis sample.
//
// Interior points carry up and down spokes once populated; crest points
// additionally carry a crest spoke. A freshly made default point carries no
// spokes at all and serves as a placeholder in a grid.
type Point struct {
	crest bool

	up, down, crestSpoke *Spoke

	observers []observer
	nextID    ObserverID
}
