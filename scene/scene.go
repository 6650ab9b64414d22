package scene

import (
	"fmt"
	"slices"
)

// Scene is an ordered registry of nodes keyed by ID.
type Scene struct {
	nodes map[string]Node
	order []string

	newID     func(class string) string
	onAdded   func(Node)
	onRemoved func(Node)
}

// NewScene returns an empty Scene.
func NewScene(opts ...SceneOption) *Scene {
	s := &Scene{
		nodes:     make(map[string]Node),
		newID:     defaultID,
		onAdded:   func(Node) {},
		onRemoved: func(Node) {},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddNode assigns an ID to n and registers it.
// Returns ErrNilNode, ErrAlreadyInScene or ErrDuplicateID.
func (s *Scene) AddNode(n Node) (string, error) {
	if n == nil {
		return "", ErrNilNode
	}
	b := n.base()
	if b.scene != nil {
		return "", fmt.Errorf("%w: %s", ErrAlreadyInScene, b.id)
	}
	id := s.newID(n.Class())
	if _, ok := s.nodes[id]; ok {
		return "", fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	b.id, b.scene = id, s
	s.nodes[id] = n
	s.order = append(s.order, id)
	s.onAdded(n)

	return id, nil
}

// NodeByID returns the node registered under id.
func (s *Scene) NodeByID(id string) (Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// SRepNodeByID returns the s-rep node registered under id.
func (s *Scene) SRepNodeByID(id string) (*SRepNode, bool) {
	n, ok := s.nodes[id].(*SRepNode)
	return n, ok
}

// RemoveNode unregisters the node with id. Removing an SRepNode also
// removes its display node.
// Returns ErrNodeNotFound for unknown IDs.
func (s *Scene) RemoveNode(id string) error {
	n, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	if sn, isSRep := n.(*SRepNode); isSRep && sn.displayID != "" {
		if _, has := s.nodes[sn.displayID]; has {
			if err := s.RemoveNode(sn.displayID); err != nil {
				return err
			}
		}
		sn.displayID = ""
	}

	delete(s.nodes, id)
	s.order = slices.DeleteFunc(s.order, func(x string) bool { return x == id })
	b := n.base()
	b.scene, b.id = nil, ""
	s.onRemoved(n)

	return nil
}

// Nodes returns all nodes in insertion order.
func (s *Scene) Nodes() []Node {
	out := make([]Node, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.nodes[id])
	}

	return out
}

// NodesByClass returns the nodes of one class in insertion order.
func (s *Scene) NodesByClass(class string) []Node {
	var out []Node
	for _, id := range s.order {
		if n := s.nodes[id]; n.Class() == class {
			out = append(out, n)
		}
	}

	return out
}

// Len returns the number of nodes.
func (s *Scene) Len() int {
	return len(s.nodes)
}
