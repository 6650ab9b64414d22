package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/srep/elliptical"
)

// Node classes.
const (
	ClassEllipticalSRep = "EllipticalSRepNode"
	ClassSRepDisplay    = "SRepDisplayNode"
	ClassSRepStorage    = "SRepStorageNode"
)

// Sentinel errors for scene operations.
var (
	// ErrNoScene indicates Logic has no scene to work on.
	ErrNoScene = errors.New("scene: no scene")

	// ErrNilNode indicates a nil node argument.
	ErrNilNode = errors.New("scene: node is nil")

	// ErrNodeNotFound indicates an unknown node ID.
	ErrNodeNotFound = errors.New("scene: node not found")

	// ErrAlreadyInScene indicates the node already belongs to a scene.
	ErrAlreadyInScene = errors.New("scene: node already belongs to a scene")

	// ErrNotInScene indicates the node has not been added to a scene.
	ErrNotInScene = errors.New("scene: node does not belong to a scene")

	// ErrDuplicateID indicates the ID generator produced an ID in use.
	ErrDuplicateID = errors.New("scene: duplicate node id")

	// ErrNoGrid indicates an s-rep node holds no grid.
	ErrNoGrid = errors.New("scene: node does not have an srep")

	// ErrNoLoader indicates a storage node without a Loader.
	ErrNoLoader = errors.New("scene: no srep loader")

	// ErrEmptyFileName indicates a load request without file name.
	ErrEmptyFileName = errors.New("scene: empty file name")
)

// Node is anything a Scene can hold.
type Node interface {
	// ID is assigned when the node is added to a scene.
	ID() string
	// Class names the node kind, e.g. ClassEllipticalSRep.
	Class() string
	Name() string
	SetName(name string)

	base() *baseNode
}

// baseNode carries the fields shared by all nodes.
type baseNode struct {
	id    string
	name  string
	scene *Scene
}

func (b *baseNode) ID() string          { return b.id }
func (b *baseNode) Name() string        { return b.name }
func (b *baseNode) SetName(name string) { b.name = name }
func (b *baseNode) base() *baseNode     { return b }

// Scene returns the scene holding the node, or nil.
func (b *baseNode) Scene() *Scene { return b.scene }

// SRepNode is a named container owning one elliptical s-rep.
type SRepNode struct {
	baseNode
	grid      *elliptical.SRep
	displayID string
}

// DisplayNode holds presentation settings for an SRepNode.
type DisplayNode struct {
	baseNode

	// Visible toggles rendering of the whole s-rep.
	Visible bool
	// Opacity in [0, 1].
	Opacity float64
	// UpColor, DownColor and CrestColor are RGB in [0, 1] per spoke mesh.
	UpColor, DownColor, CrestColor [3]float64
	// SkeletonVisible toggles the skeletal sheet mesh.
	SkeletonVisible bool
}

// Loader fills a grid from a file. It is the only persistence seam.
type Loader interface {
	Load(fileName string) (*elliptical.SRep, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(fileName string) (*elliptical.SRep, error)

// Load calls f(fileName).
func (f LoaderFunc) Load(fileName string) (*elliptical.SRep, error) {
	return f(fileName)
}

// StorageNode links a file name to a Loader.
type StorageNode struct {
	baseNode

	// FileName is the file CreateSRepNode reads.
	FileName string

	loader Loader
}

// SceneOption configures a Scene.
type SceneOption func(*Scene)

// WithIDGenerator replaces the default ID generator ("<class>_<uuid>").
func WithIDGenerator(fn func(class string) string) SceneOption {
	return func(s *Scene) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithOnNodeAdded registers a hook called after a node is added.
func WithOnNodeAdded(fn func(Node)) SceneOption {
	return func(s *Scene) {
		if fn != nil {
			s.onAdded = fn
		}
	}
}

// WithOnNodeRemoved registers a hook called after a node is removed.
func WithOnNodeRemoved(fn func(Node)) SceneOption {
	return func(s *Scene) {
		if fn != nil {
			s.onRemoved = fn
		}
	}
}

func defaultID(class string) string {
	return fmt.Sprintf("%s_%s", class, uuid.NewString())
}
