package elliptical

import "github.com/katalvlaran/srep/skeletal"

var _ MeshSRep = (*SRep)(nil)

// Clone returns a deep copy of the grid with a freshly built mesh view.
//
// The copy owns new points and shares nothing mutable with s: observers and
// pending modification blocks are not carried over.
// Complexity: O(L×S).
func (s *SRep) Clone() *SRep {
	c := New()
	c.steps = s.steps
	c.skeleton = make([][]*skeletal.Point, len(s.skeleton))
	c.tags = make([][]skeletal.ObserverID, len(s.skeleton))
	for line, row := range s.skeleton {
		c.skeleton[line] = make([]*skeletal.Point, len(row))
		c.tags[line] = make([]skeletal.ObserverID, len(row))
		for step, p := range row {
			c.install(line, step, p.Copy())
		}
	}
	c.ensureMesh()

	return c
}

// CloneMesh implements MeshSRep; the result is an *SRep from Clone.
func (s *SRep) CloneMesh() MeshSRep {
	return s.Clone()
}

// Equal reports whether o has the same size and equal points in every cell.
// Observers, blocks and the mesh cache are ignored.
func (s *SRep) Equal(o *SRep) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.NumberOfLines() != o.NumberOfLines() || s.NumberOfSteps() != o.NumberOfSteps() {
		return false
	}
	for line, row := range s.skeleton {
		for step, p := range row {
			if !p.Equal(o.skeleton[line][step]) {
				return false
			}
		}
	}

	return true
}
