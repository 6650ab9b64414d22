// Package spokemesh holds the flattened, read-only form of a group of spokes:
// one entry per spoke plus, for each entry, the indices of its neighbours.
//
// A Mesh is built once with New and never changes afterwards, so it can be
// handed out by a grid's derived mesh cache without exposing grid internals.
package spokemesh

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/srep/skeletal"
)

// NoIndex marks an absent mesh index in connection arrays.
const NoIndex = -1

// Sentinel errors for mesh construction and access.
var (
	// ErrLengthMismatch indicates spokes and neighbour lists differ in length.
	ErrLengthMismatch = errors.New("spokemesh: spokes and neighbours differ in length")

	// ErrNeighborIndex indicates a neighbour index outside the mesh.
	ErrNeighborIndex = errors.New("spokemesh: neighbour index out of range")

	// ErrIndex indicates an entry index outside the mesh.
	ErrIndex = errors.New("spokemesh: index out of range")
)

// Mesh is an immutable list of spokes with adjacency.
type Mesh struct {
	spokes    []skeletal.Spoke
	neighbors [][]int
}

// New copies spokes and neighbors into a Mesh.
// neighbors may be nil for a mesh without adjacency.
// Returns ErrLengthMismatch or ErrNeighborIndex on inconsistent input.
// Complexity: O(N + E).
func New(spokes []skeletal.Spoke, neighbors [][]int) (*Mesh, error) {
	if neighbors == nil {
		neighbors = make([][]int, len(spokes))
	}
	if len(neighbors) != len(spokes) {
		return nil, fmt.Errorf("%w: %d spokes, %d neighbour lists", ErrLengthMismatch, len(spokes), len(neighbors))
	}
	m := &Mesh{
		spokes:    make([]skeletal.Spoke, len(spokes)),
		neighbors: make([][]int, len(neighbors)),
	}
	copy(m.spokes, spokes)
	for i, ns := range neighbors {
		for _, n := range ns {
			if n < 0 || n >= len(spokes) {
				return nil, fmt.Errorf("%w: entry %d lists %d", ErrNeighborIndex, i, n)
			}
		}
		m.neighbors[i] = append([]int(nil), ns...)
	}

	return m, nil
}

// Empty returns a mesh without entries.
func Empty() *Mesh {
	return &Mesh{}
}

// Len returns the number of spokes.
func (m *Mesh) Len() int {
	return len(m.spokes)
}

// Spoke returns entry i.
func (m *Mesh) Spoke(i int) (skeletal.Spoke, error) {
	if i < 0 || i >= len(m.spokes) {
		return skeletal.Spoke{}, fmt.Errorf("%w: %d of %d", ErrIndex, i, len(m.spokes))
	}

	return m.spokes[i], nil
}

// Neighbors returns a copy of the neighbour indices of entry i.
func (m *Mesh) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= len(m.neighbors) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndex, i, len(m.neighbors))
	}

	return append([]int(nil), m.neighbors[i]...), nil
}

// Spokes returns a copy of every spoke in index order.
func (m *Mesh) Spokes() []skeletal.Spoke {
	return append([]skeletal.Spoke(nil), m.spokes...)
}

// SkeletalPoints returns the skeletal positions in index order.
func (m *Mesh) SkeletalPoints() []r3.Vec {
	out := make([]r3.Vec, len(m.spokes))
	for i, s := range m.spokes {
		out[i] = s.Skeletal
	}

	return out
}

// BoundaryPoints returns the boundary positions in index order.
func (m *Mesh) BoundaryPoints() []r3.Vec {
	out := make([]r3.Vec, len(m.spokes))
	for i, s := range m.spokes {
		out[i] = s.Boundary()
	}

	return out
}

// NumEdges counts undirected neighbour pairs, assuming symmetric adjacency.
func (m *Mesh) NumEdges() int {
	n := 0
	for _, ns := range m.neighbors {
		n += len(ns)
	}

	return n / 2
}
