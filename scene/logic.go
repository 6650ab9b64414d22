package scene

import (
	"fmt"

	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/srep/elliptical"
	"github.com/katalvlaran/srep/interpolate"
)

// LogicOption configures a Logic.
type LogicOption func(*Logic)

// WithLogger sets the logger. nil is ignored.
func WithLogger(logger l.Wrapper) LogicOption {
	return func(lg *Logic) {
		if logger != nil {
			lg.logger = logger
		}
	}
}

// WithLoader sets the Loader used by LoadSRep.
func WithLoader(loader Loader) LogicOption {
	return func(lg *Logic) {
		lg.loader = loader
	}
}

// WithInterpolateOptions forwards options to interpolate.Interpolate.
func WithInterpolateOptions(opts ...interpolate.Option) LogicOption {
	return func(lg *Logic) {
		lg.interpolateOpts = append(lg.interpolateOpts, opts...)
	}
}

// Logic creates, loads and interpolates s-rep nodes in a Scene.
type Logic struct {
	scene           *Scene
	logger          l.Wrapper
	loader          Loader
	interpolateOpts []interpolate.Option
}

// NewLogic returns a Logic working on sc. A nil scene is allowed; every
// scene operation then fails with ErrNoScene until SetScene is called.
func NewLogic(sc *Scene, opts ...LogicOption) *Logic {
	lg := &Logic{scene: sc, logger: l.NewNopLoggerWrapper()}
	for _, opt := range opts {
		opt(lg)
	}
	lg.logger = lg.logger.WithFields(l.StringField(l.ClsKey, "srepLogic"))

	return lg
}

// Scene returns the scene Logic works on.
func (lg *Logic) Scene() *Scene {
	return lg.scene
}

// SetScene replaces the scene Logic works on.
func (lg *Logic) SetScene(sc *Scene) {
	lg.scene = sc
}

// AddNewEllipticalSRepNode adds an empty s-rep node with a display node and
// returns its ID. name is applied when not empty.
func (lg *Logic) AddNewEllipticalSRepNode(name string) (string, error) {
	n, err := lg.addNewEllipticalSRepNode(name)
	if err != nil {
		return "", err
	}

	return n.ID(), nil
}

func (lg *Logic) addNewEllipticalSRepNode(name string) (*SRepNode, error) {
	if lg.scene == nil {
		lg.logger.Error("AddNewEllipticalSRepNode: no scene to add a srep node to")
		return nil, ErrNoScene
	}

	n := NewSRepNode("")
	if _, err := lg.scene.AddNode(n); err != nil {
		lg.logger.WithFields(l.ErrorField(err)).Error("AddNewEllipticalSRepNode: add node failed")
		return nil, err
	}
	if _, err := lg.AddFirstDisplayNodeForSRepNode(n); err != nil {
		lg.discard(n)
		return nil, err
	}
	if name != "" {
		n.SetName(name)
	}

	return n, nil
}

// discard removes n and its display node from the Logic's scene, whatever
// part of them is still registered.
func (lg *Logic) discard(n *SRepNode) {
	if id := n.DisplayNodeID(); id != "" {
		if _, ok := lg.scene.NodeByID(id); ok {
			_ = lg.scene.RemoveNode(id)
		}
	}
	if n.Scene() == lg.scene {
		_ = lg.scene.RemoveNode(n.ID())
	}
}

// AddFirstDisplayNodeForSRepNode returns the ID of n's display node,
// creating it first when n has none.
func (lg *Logic) AddFirstDisplayNodeForSRepNode(n *SRepNode) (string, error) {
	if n == nil {
		lg.logger.Error("AddFirstDisplayNodeForSRepNode: nil srep node")
		return "", ErrNilNode
	}
	if n.Scene() == nil {
		lg.logger.WithFields(l.StringField("name", n.Name())).Error("AddFirstDisplayNodeForSRepNode: node is not in a scene")
		return "", ErrNotInScene
	}
	if d := n.DisplayNode(); d != nil {
		return d.ID(), nil
	}
	if err := n.CreateDefaultDisplayNodes(); err != nil {
		lg.logger.WithFields(l.ErrorField(err)).Error("AddFirstDisplayNodeForSRepNode: error creating display node")
		return "", err
	}

	return n.DisplayNodeID(), nil
}

// LoadSRep reads fileName through the configured Loader into a new s-rep
// node named nodeName and returns its ID. On failure the scene is left as
// it was.
func (lg *Logic) LoadSRep(fileName, nodeName string) (string, error) {
	logger := lg.logger.WithFields(l.StringField("fileName", fileName), l.StringField("nodeName", nodeName))
	if lg.scene == nil {
		logger.Error("LoadSRep: no scene")
		return "", ErrNoScene
	}
	if fileName == "" {
		logger.Error("LoadSRep: empty file name, cannot load")
		return "", ErrEmptyFileName
	}
	if lg.loader == nil {
		logger.Error("LoadSRep: no loader configured")
		return "", ErrNoLoader
	}
	logger.Debug("LoadSRep")

	storage := NewStorageNode(fileName, lg.loader)
	storageID, err := lg.scene.AddNode(storage)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("LoadSRep: failed to add storage node")
		return "", err
	}
	n, err := storage.CreateSRepNode(nodeName)
	if err != nil {
		_ = lg.scene.RemoveNode(storageID)
		logger.WithFields(l.ErrorField(err)).Error("LoadSRep: failed to create srep node")
		return "", err
	}

	return n.ID(), nil
}

// InterpolateGrid returns an interpolated copy of src; see interpolate.Interpolate.
func (lg *Logic) InterpolateGrid(src *elliptical.SRep, level int) (*elliptical.SRep, error) {
	opts := append([]interpolate.Option{interpolate.WithLogger(lg.logger)}, lg.interpolateOpts...)

	return interpolate.Interpolate(src, level, opts...)
}

// InterpolateSRepInto interpolates src's grid at level and installs the
// result into dest. dest is untouched on failure.
func (lg *Logic) InterpolateSRepInto(src *SRepNode, level int, dest *SRepNode) error {
	if dest == nil {
		lg.logger.Error("InterpolateSRep: no destination")
		return fmt.Errorf("%w: destination", ErrNilNode)
	}
	if src == nil {
		lg.logger.Error("InterpolateSRep: input node is nil")
		return fmt.Errorf("%w: source", ErrNilNode)
	}
	grid := src.Grid()
	if grid == nil {
		lg.logger.WithFields(l.StringField("id", src.ID())).Error("InterpolateSRep: input node does not have an srep")
		return ErrNoGrid
	}

	out, err := lg.InterpolateGrid(grid, level)
	if err != nil {
		lg.logger.WithFields(l.ErrorField(err), l.IntField("level", level)).Error("InterpolateSRep: unable to interpolate srep")
		return err
	}
	dest.SetGrid(out)

	return nil
}

// InterpolateSRep interpolates src at level into a new s-rep node named
// newName and returns its ID. On failure it returns "" and removes the node
// it created.
func (lg *Logic) InterpolateSRep(src *SRepNode, level int, newName string) (string, error) {
	if lg.scene == nil {
		lg.logger.Error("InterpolateSRep: no scene to add a srep node to")
		return "", ErrNoScene
	}

	dest, err := lg.addNewEllipticalSRepNode(newName)
	if err != nil {
		lg.logger.WithFields(l.ErrorField(err)).Error("InterpolateSRep: error making elliptical srep node")
		return "", err
	}
	// Scene hooks may have removed the new node meanwhile
	if dest.Scene() != lg.scene {
		lg.logger.WithFields(l.StringField("name", newName)).Error("InterpolateSRep: newly created srep node left the scene")
		lg.discard(dest)
		return "", fmt.Errorf("%w: new node %q", ErrNotInScene, newName)
	}

	if err = lg.InterpolateSRepInto(src, level, dest); err != nil {
		lg.discard(dest)
		return "", err
	}

	return dest.ID(), nil
}
