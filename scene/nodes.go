package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/srep/elliptical"
	"github.com/katalvlaran/srep/spokemesh"
)

// NewSRepNode returns a detached s-rep node holding an empty grid.
func NewSRepNode(name string) *SRepNode {
	return &SRepNode{baseNode: baseNode{name: name}, grid: elliptical.New()}
}

// Class implements Node.
func (n *SRepNode) Class() string { return ClassEllipticalSRep }

// Grid returns the held grid; it may be nil after SetGrid(nil).
func (n *SRepNode) Grid() *elliptical.SRep {
	return n.grid
}

// SetGrid replaces the held grid; the node takes ownership of g.
func (n *SRepNode) SetGrid(g *elliptical.SRep) {
	n.grid = g
}

// MeshSRep returns the held grid as a mesh view, or nil without a grid.
func (n *SRepNode) MeshSRep() elliptical.MeshSRep {
	if n.grid == nil {
		return nil
	}

	return n.grid
}

// SpokeLayers returns what the linked display node shows of the grid.
// Nodes without a display node show nothing.
func (n *SRepNode) SpokeLayers() []SpokeLayer {
	d := n.DisplayNode()
	if d == nil {
		return nil
	}

	return d.Layers(n.MeshSRep())
}

// DisplayNodeID returns the ID of the linked display node, or "".
func (n *SRepNode) DisplayNodeID() string {
	return n.displayID
}

// DisplayNode returns the linked display node, or nil.
func (n *SRepNode) DisplayNode() *DisplayNode {
	if n.scene == nil || n.displayID == "" {
		return nil
	}
	d, _ := n.scene.nodes[n.displayID].(*DisplayNode)

	return d
}

// CreateDefaultDisplayNodes adds a default display node to the node's scene
// and links it, unless one is already linked.
// Returns ErrNotInScene for detached nodes.
func (n *SRepNode) CreateDefaultDisplayNodes() error {
	if n.scene == nil {
		return ErrNotInScene
	}
	if n.DisplayNode() != nil {
		return nil
	}
	id, err := n.scene.AddNode(NewDisplayNode())
	if err != nil {
		return err
	}
	n.displayID = id

	return nil
}

// NewDisplayNode returns a detached display node with default settings:
// visible, opaque, up spokes cyan, down spokes magenta, crest spokes red.
func NewDisplayNode() *DisplayNode {
	return &DisplayNode{
		Visible:         true,
		Opacity:         1,
		UpColor:         [3]float64{0, 1, 1},
		DownColor:       [3]float64{1, 0, 1},
		CrestColor:      [3]float64{1, 0, 0},
		SkeletonVisible: true,
	}
}

// Class implements Node.
func (d *DisplayNode) Class() string { return ClassSRepDisplay }

// SpokeLayer is one spoke mesh to draw and its color.
type SpokeLayer struct {
	Kind  string
	Mesh  *spokemesh.Mesh
	Color [3]float64
}

// Spoke layer kinds.
const (
	LayerUp    = "up"
	LayerDown  = "down"
	LayerCrest = "crest"
)

// Layers returns the non-empty spoke meshes of m in up, down, crest order,
// colored by d. Hidden display nodes, nil and empty s-reps yield nothing.
func (d *DisplayNode) Layers(m elliptical.MeshSRep) []SpokeLayer {
	if !d.Visible || m == nil || m.IsEmpty() {
		return nil
	}
	candidates := []SpokeLayer{
		{Kind: LayerUp, Mesh: m.UpSpokes(), Color: d.UpColor},
		{Kind: LayerDown, Mesh: m.DownSpokes(), Color: d.DownColor},
		{Kind: LayerCrest, Mesh: m.CrestSpokes(), Color: d.CrestColor},
	}
	var out []SpokeLayer
	for _, layer := range candidates {
		// Placeholder cells leave a mesh empty
		if layer.Mesh.Len() == 0 {
			continue
		}
		out = append(out, layer)
	}

	return out
}

// NewStorageNode returns a detached storage node reading fileName with loader.
func NewStorageNode(fileName string, loader Loader) *StorageNode {
	return &StorageNode{FileName: fileName, loader: loader}
}

// Class implements Node.
func (st *StorageNode) Class() string { return ClassSRepStorage }

// CreateSRepNode loads FileName and adds a new s-rep node holding the result
// to the storage node's scene. An empty nodeName falls back to the file's
// base name without extension. Nothing is added on failure.
func (st *StorageNode) CreateSRepNode(nodeName string) (*SRepNode, error) {
	if st.scene == nil {
		return nil, ErrNotInScene
	}
	if st.loader == nil {
		return nil, ErrNoLoader
	}
	if st.FileName == "" {
		return nil, ErrEmptyFileName
	}
	grid, err := st.loader.Load(st.FileName)
	if err != nil {
		return nil, fmt.Errorf("scene: load %q: %w", st.FileName, err)
	}
	if grid == nil {
		return nil, fmt.Errorf("%w: loader returned nothing for %q", ErrNoGrid, st.FileName)
	}

	if nodeName == "" {
		base := filepath.Base(st.FileName)
		nodeName = strings.TrimSuffix(base, filepath.Ext(base))
	}
	n := NewSRepNode(nodeName)
	n.SetGrid(grid)
	if _, err = st.scene.AddNode(n); err != nil {
		return nil, err
	}
	if err = n.CreateDefaultDisplayNodes(); err != nil {
		_ = st.scene.RemoveNode(n.ID())
		return nil, err
	}

	return n, nil
}
