package elliptical

import (
	"slices"

	"github.com/katalvlaran/srep/skeletal"
	"github.com/katalvlaran/srep/spokemesh"
)

// UpSpokes returns the mesh of up spokes of all non-crest cells.
func (s *SRep) UpSpokes() *spokemesh.Mesh {
	s.ensureMesh()
	return s.mesh.upSpokes
}

// DownSpokes returns the mesh of down spokes of all non-crest cells.
func (s *SRep) DownSpokes() *spokemesh.Mesh {
	s.ensureMesh()
	return s.mesh.downSpokes
}

// CrestSpokes returns the mesh of crest spokes.
func (s *SRep) CrestSpokes() *spokemesh.Mesh {
	s.ensureMesh()
	return s.mesh.crestSpokes
}

// CrestToUpSpokeConnections maps each crest entry to an UpSpokes index.
func (s *SRep) CrestToUpSpokeConnections() []int {
	s.ensureMesh()
	return append([]int(nil), s.mesh.crestToUp...)
}

// CrestToDownSpokeConnections maps each crest entry to a DownSpokes index.
func (s *SRep) CrestToDownSpokeConnections() []int {
	s.ensureMesh()
	return append([]int(nil), s.mesh.crestToDown...)
}

// UpSpine lists the UpSpokes indices of the distinct spine points.
func (s *SRep) UpSpine() []int {
	s.ensureMesh()
	return append([]int(nil), s.mesh.upSpine...)
}

// DownSpine lists the DownSpokes indices of the distinct spine points.
func (s *SRep) DownSpine() []int {
	s.ensureMesh()
	return append([]int(nil), s.mesh.downSpine...)
}

// NumberOfSpinePointsWithoutDuplicates returns how many distinct points the
// spine has: lines l and L−l share one.
func (s *SRep) NumberOfSpinePointsWithoutDuplicates() int {
	lines := s.NumberOfLines()
	if lines == 0 || s.NumberOfSteps() == 0 {
		return 0
	}

	return min(lines/2+1, lines)
}

func (s *SRep) ensureMesh() {
	if !s.meshStale {
		return
	}
	s.mesh = s.createMeshRepresentation()
	s.meshStale = false
}

// spokeIndex assigns compact indices to the cells of one spoke kind.
type spokeIndex struct {
	index  [][]int // [line][step] → mesh index or NoIndex
	spokes []skeletal.Spoke
}

// indexSpokes numbers the cells with get's spoke, step-major over steps
// [0, steps). Row by row keeps the spine entries first.
func (s *SRep) indexSpokes(steps int, get func(*skeletal.Point) (skeletal.Spoke, bool)) spokeIndex {
	lines := s.NumberOfLines()
	si := spokeIndex{index: make([][]int, lines)}
	// Every cell starts unmapped
	for line := range si.index {
		si.index[line] = make([]int, steps)
		for step := range si.index[line] {
			si.index[line][step] = spokemesh.NoIndex
		}
	}
	// Step-major numbering; cells without the spoke keep NoIndex
	for step := 0; step < steps; step++ {
		for line := 0; line < lines; line++ {
			sp, ok := get(s.skeleton[line][step])
			if !ok {
				continue
			}
			si.index[line][step] = len(si.spokes)
			si.spokes = append(si.spokes, sp)
		}
	}

	return si
}

// neighbors returns the mesh indices adjacent to (line, step): previous and
// next line (circular), then inward and outward step (bounded by steps).
func (si spokeIndex) neighbors(line, step, steps int) []int {
	lines := len(si.index)
	self := si.index[line][step]
	// Lines wrap around, so both line neighbours always exist
	candidates := [][2]int{
		{(line - 1 + lines) % lines, step},
		{(line + 1) % lines, step},
	}
	// Steps are bounded by the spine and by steps
	if step > 0 {
		candidates = append(candidates, [2]int{line, step - 1})
	}
	if step+1 < steps {
		candidates = append(candidates, [2]int{line, step + 1})
	}

	out := make([]int, 0, len(candidates))
	for _, c := range candidates {
		idx := si.index[c[0]][c[1]]
		// Skip missing spokes, self loops on tiny grids and repeats
		if idx == spokemesh.NoIndex || idx == self || slices.Contains(out, idx) {
			continue
		}
		out = append(out, idx)
	}

	return out
}

// toMesh builds the spoke mesh with adjacency restricted to steps [0, steps).
func (si spokeIndex) toMesh(steps int) *spokemesh.Mesh {
	neighbors := make([][]int, len(si.spokes))
	for line := range si.index {
		for step := 0; step < steps; step++ {
			if idx := si.index[line][step]; idx != spokemesh.NoIndex {
				neighbors[idx] = si.neighbors(line, step, steps)
			}
		}
	}
	m, err := spokemesh.New(si.spokes, neighbors)
	if err != nil {
		// neighbours are produced from si.index and are always in range
		panic(err)
	}

	return m
}

func (s *SRep) createMeshRepresentation() meshRepresentation {
	rep := meshRepresentation{}
	if s.IsEmpty() {
		rep.upSpokes, rep.downSpokes, rep.crestSpokes = spokemesh.Empty(), spokemesh.Empty(), spokemesh.Empty()
		return rep
	}

	// Up and down meshes cover every step but the crest
	interiorSteps := s.NumberOfSteps() - 1
	crestStep := interiorSteps

	up := s.indexSpokes(interiorSteps, (*skeletal.Point).UpSpoke)
	down := s.indexSpokes(interiorSteps, (*skeletal.Point).DownSpoke)
	rep.upSpokes = up.toMesh(interiorSteps)
	rep.downSpokes = down.toMesh(interiorSteps)

	crest := s.crestIndex(crestStep)
	rep.crestSpokes = crest.toMesh(1)
	// Crest entries link to the last interior step of their line
	for line := 0; line < s.NumberOfLines(); line++ {
		if crest.index[line][0] == spokemesh.NoIndex {
			continue
		}
		toUp, toDown := spokemesh.NoIndex, spokemesh.NoIndex
		if interiorSteps > 0 {
			toUp = up.index[line][interiorSteps-1]
			toDown = down.index[line][interiorSteps-1]
		}
		rep.crestToUp = append(rep.crestToUp, toUp)
		rep.crestToDown = append(rep.crestToDown, toDown)
	}

	// Lines past the fold repeat earlier spine points
	if interiorSteps > 0 {
		for line := 0; line < s.NumberOfSpinePointsWithoutDuplicates(); line++ {
			if idx := up.index[line][0]; idx != spokemesh.NoIndex {
				rep.upSpine = append(rep.upSpine, idx)
			}
			if idx := down.index[line][0]; idx != spokemesh.NoIndex {
				rep.downSpine = append(rep.downSpine, idx)
			}
		}
	}

	return rep
}

// crestIndex numbers the crest spokes of crestStep as a one-step band.
func (s *SRep) crestIndex(crestStep int) spokeIndex {
	lines := s.NumberOfLines()
	si := spokeIndex{index: make([][]int, lines)}
	for line := 0; line < lines; line++ {
		si.index[line] = []int{spokemesh.NoIndex}
		if sp, ok := s.skeleton[line][crestStep].CrestSpoke(); ok {
			si.index[line][0] = len(si.spokes)
			si.spokes = append(si.spokes, sp)
		}
	}

	return si
}
