package elliptical

import (
	"fmt"

	"github.com/katalvlaran/srep/skeletal"
)

// New returns an empty SRep (0 lines, 0 steps).
func New() *SRep {
	return &SRep{meshStale: true}
}

// NewWithSize returns an SRep of the given size filled with default points.
// Returns ErrNegativeSize if either dimension is negative.
func NewWithSize(lines, steps int) (*SRep, error) {
	s := New()
	if err := s.Resize(lines, steps); err != nil {
		return nil, err
	}

	return s, nil
}

// IsEmpty reports whether the grid has no lines or no steps.
func (s *SRep) IsEmpty() bool {
	return s.NumberOfLines() == 0 || s.NumberOfSteps() == 0
}

// NumberOfLines returns the number of lines around the spine.
func (s *SRep) NumberOfLines() int {
	return len(s.skeleton)
}

// NumberOfSteps returns the number of steps per line, spine included.
func (s *SRep) NumberOfSteps() int {
	return s.steps
}

// InBounds reports whether (line, step) addresses a cell.
// Complexity: O(1).
func (s *SRep) InBounds(line, step int) bool {
	return line >= 0 && line < s.NumberOfLines() && step >= 0 && step < s.NumberOfSteps()
}

// IsCrestStep reports whether step is the crest. Only the last step is.
func (s *SRep) IsCrestStep(step int) bool {
	return step == s.NumberOfSteps()-1
}

// CanSet reports whether p may be stored at (line, step): the cell exists,
// p is not nil and p is a crest point iff step is the crest step.
func (s *SRep) CanSet(line, step int, p *skeletal.Point) bool {
	return s.InBounds(line, step) && p != nil && p.IsCrest() == s.IsCrestStep(step)
}

// SkeletalPoint returns the point stored at (line, step).
//
// The pointer is owned by the SRep. Mutating it through its setters is
// allowed and is seen by the mesh view. It stays valid until the cell is
// overwritten or dropped by Resize/Clear.
func (s *SRep) SkeletalPoint(line, step int) (*skeletal.Point, error) {
	if err := s.checkInBounds(line, step); err != nil {
		return nil, err
	}

	return s.skeleton[line][step], nil
}

// SetSkeletalPoint stores a copy of p at (line, step).
// Returns ErrOutOfRange or ErrInvalidAssignment without touching the grid.
func (s *SRep) SetSkeletalPoint(line, step int, p *skeletal.Point) error {
	if err := s.checkInBounds(line, step); err != nil {
		return err
	}
	if !s.CanSet(line, step, p) {
		return fmt.Errorf("%w: crest=%t at step %d of %d", ErrInvalidAssignment, p != nil && p.IsCrest(), step, s.NumberOfSteps())
	}
	s.install(line, step, p.Copy())
	s.meshStale = true
	s.Modified()

	return nil
}

// TakeSkeletalPoint stores p itself at (line, step); the SRep becomes its owner
// and the caller must not keep using p elsewhere.
//
// Only bounds are checked (ErrOutOfRange). The caller must have checked
// CanSet(line, step, p); storing a nil or mismatched point breaks the grid.
func (s *SRep) TakeSkeletalPoint(line, step int, p *skeletal.Point) error {
	if err := s.checkInBounds(line, step); err != nil {
		return err
	}
	s.install(line, step, p)
	s.meshStale = true
	s.Modified()

	return nil
}

// Resize changes the grid to lines×steps. Points whose cell survives are kept,
// new cells receive default points of the right crest-ness, dropped points are
// released. Because the crest step moves with steps, a surviving row that
// changes crest-ness is refilled with defaults.
// Returns ErrNegativeSize without touching the grid.
// Complexity: O(lines×steps).
func (s *SRep) Resize(lines, steps int) error {
	if lines < 0 || steps < 0 {
		return fmt.Errorf("%w: %d lines, %d steps", ErrNegativeSize, lines, steps)
	}

	for line := lines; line < len(s.skeleton); line++ {
		for step := range s.skeleton[line] {
			s.release(line, step)
		}
	}
	if lines < len(s.skeleton) {
		s.skeleton = s.skeleton[:lines:lines]
		s.tags = s.tags[:lines:lines]
	}
	for len(s.skeleton) < lines {
		s.skeleton = append(s.skeleton, nil)
		s.tags = append(s.tags, nil)
	}

	s.steps = steps
	for line := range s.skeleton {
		for step := steps; step < len(s.skeleton[line]); step++ {
			s.release(line, step)
		}
		if steps < len(s.skeleton[line]) {
			s.skeleton[line] = s.skeleton[line][:steps:steps]
			s.tags[line] = s.tags[line][:steps:steps]
		}
		for len(s.skeleton[line]) < steps {
			s.skeleton[line] = append(s.skeleton[line], nil)
			s.tags[line] = append(s.tags[line], 0)
		}
		for step := 0; step < steps; step++ {
			p := s.skeleton[line][step]
			if p == nil || p.IsCrest() != s.IsCrestStep(step) {
				s.install(line, step, skeletal.NewDefaultPoint(s.IsCrestStep(step)))
			}
		}
	}

	s.meshStale = true
	s.Modified()

	return nil
}

// Clear empties the grid to 0 lines and 0 steps.
func (s *SRep) Clear() {
	_ = s.Resize(0, 0)
}

// ForEach walks the grid line by line, step by step, stopping at the first
// error fn returns.
func (s *SRep) ForEach(fn func(line, step int, p *skeletal.Point) error) error {
	for line, row := range s.skeleton {
		for step, p := range row {
			if err := fn(line, step, p); err != nil {
				return err
			}
		}
	}

	return nil
}

// String summarizes the grid size.
func (s *SRep) String() string {
	return fmt.Sprintf("elliptical.SRep{lines: %d, steps: %d, spine points: %d}",
		s.NumberOfLines(), s.NumberOfSteps(), s.NumberOfSpinePointsWithoutDuplicates())
}

func (s *SRep) checkInBounds(line, step int) error {
	if !s.InBounds(line, step) {
		return fmt.Errorf("%w: (line %d, step %d) in %d×%d grid", ErrOutOfRange, line, step, s.NumberOfLines(), s.NumberOfSteps())
	}

	return nil
}

// install releases the current occupant of (line, step) and subscribes to p.
// The caller marks the mesh stale and calls Modified.
func (s *SRep) install(line, step int, p *skeletal.Point) {
	s.release(line, step)
	s.skeleton[line][step] = p
	if p != nil {
		s.tags[line][step] = p.Observe(s.onSkeletalPointModified)
	}
}

func (s *SRep) release(line, step int) {
	if p := s.skeleton[line][step]; p != nil {
		p.Unobserve(s.tags[line][step])
	}
	s.skeleton[line][step] = nil
	s.tags[line][step] = 0
}

func (s *SRep) onSkeletalPointModified(*skeletal.Point) {
	s.meshStale = true
	s.Modified()
}
