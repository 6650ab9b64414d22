package elliptical

import (
	"errors"

	"github.com/katalvlaran/srep/skeletal"
	"github.com/katalvlaran/srep/spokemesh"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfRange indicates (line, step) lies outside the grid.
	ErrOutOfRange = errors.New("elliptical: index out of range")

	// ErrInvalidAssignment indicates a nil point or a crest/step mismatch.
	ErrInvalidAssignment = errors.New("elliptical: invalid skeletal point assignment")

	// ErrNegativeSize indicates a negative line or step count.
	ErrNegativeSize = errors.New("elliptical: negative grid size")
)

// MeshSRep is the read side of an s-rep as seen through its flat spoke meshes.
// Renderers and other mesh consumers depend on it rather than on the grid.
type MeshSRep interface {
	IsEmpty() bool

	UpSpokes() *spokemesh.Mesh
	DownSpokes() *spokemesh.Mesh
	CrestSpokes() *spokemesh.Mesh

	// CrestToUpSpokeConnections and CrestToDownSpokeConnections align with
	// CrestSpokes; spokemesh.NoIndex marks a missing partner.
	CrestToUpSpokeConnections() []int
	CrestToDownSpokeConnections() []int

	UpSpine() []int
	DownSpine() []int

	// CloneMesh returns an independent deep copy of the same concrete kind.
	CloneMesh() MeshSRep
}

// ObserverID identifies one subscription on an SRep.
type ObserverID uint64

type observer struct {
	id ObserverID
	fn func(*SRep)
}

// meshRepresentation is the cached flat view of the grid.
type meshRepresentation struct {
	upSpokes    *spokemesh.Mesh
	downSpokes  *spokemesh.Mesh
	crestSpokes *spokemesh.Mesh

	crestToUp   []int
	crestToDown []int
	upSpine     []int
	downSpine   []int
}

// SRep is an elliptical skeletal representation.
//
// skeleton[line][step] owns its point; tags[line][step] is the subscription
// the SRep holds on that point. The mesh view is valid while meshStale is false.
type SRep struct {
	skeleton [][]*skeletal.Point
	tags     [][]skeletal.ObserverID
	steps    int

	modifyBlocks        int
	modifiedDuringBlock bool

	mesh      meshRepresentation
	meshStale bool

	observers      []observer
	nextObserverID ObserverID
}
