package scene_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srep/elliptical"
	"github.com/katalvlaran/srep/scene"
)

// sequentialIDs mimics "<class>1", "<class>2", ... per class.
func sequentialIDs() scene.SceneOption {
	counts := map[string]int{}
	return scene.WithIDGenerator(func(class string) string {
		counts[class]++
		return fmt.Sprintf("%s%d", class, counts[class])
	})
}

func TestScene_AddRemove(t *testing.T) {
	var added, removed []string
	sc := scene.NewScene(
		sequentialIDs(),
		scene.WithOnNodeAdded(func(n scene.Node) { added = append(added, n.ID()) }),
		scene.WithOnNodeRemoved(func(n scene.Node) { removed = append(removed, n.Class()) }),
	)

	n := scene.NewSRepNode("liver")
	id, err := sc.AddNode(n)
	require.NoError(t, err)
	assert.Equal(t, "EllipticalSRepNode1", id)
	assert.Equal(t, id, n.ID())
	assert.Same(t, sc, n.Scene())

	got, ok := sc.NodeByID(id)
	require.True(t, ok)
	assert.Same(t, n, got)
	_, err = sc.AddNode(n)
	require.ErrorIs(t, err, scene.ErrAlreadyInScene)
	_, err = sc.AddNode(nil)
	require.ErrorIs(t, err, scene.ErrNilNode)

	require.NoError(t, n.CreateDefaultDisplayNodes())
	require.NoError(t, n.CreateDefaultDisplayNodes(), "second call keeps the first display node")
	assert.Equal(t, 2, sc.Len())
	assert.Equal(t, "SRepDisplayNode1", n.DisplayNodeID())
	assert.Len(t, sc.NodesByClass(scene.ClassSRepDisplay), 1)

	require.NoError(t, sc.RemoveNode(id))
	assert.Zero(t, sc.Len(), "display node goes with its s-rep node")
	assert.Nil(t, n.Scene())
	assert.Empty(t, n.ID())
	assert.Equal(t, []string{"EllipticalSRepNode1", "SRepDisplayNode1"}, added)
	assert.Equal(t, []string{scene.ClassSRepDisplay, scene.ClassEllipticalSRep}, removed)

	require.ErrorIs(t, sc.RemoveNode(id), scene.ErrNodeNotFound)
}

func TestScene_DuplicateID(t *testing.T) {
	sc := scene.NewScene(scene.WithIDGenerator(func(string) string { return "same" }))
	_, err := sc.AddNode(scene.NewSRepNode("a"))
	require.NoError(t, err)
	b := scene.NewSRepNode("b")
	_, err = sc.AddNode(b)
	require.ErrorIs(t, err, scene.ErrDuplicateID)
	assert.Nil(t, b.Scene())
}

func TestScene_DefaultIDs(t *testing.T) {
	sc := scene.NewScene()
	id1, err := sc.AddNode(scene.NewSRepNode(""))
	require.NoError(t, err)
	id2, err := sc.AddNode(scene.NewDisplayNode())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id1, scene.ClassEllipticalSRep+"_"))
	assert.True(t, strings.HasPrefix(id2, scene.ClassSRepDisplay+"_"))
	assert.NotEqual(t, id1, id2)
	assert.Len(t, sc.Nodes(), 2)
}

func TestSRepNode_Detached(t *testing.T) {
	n := scene.NewSRepNode("x")
	require.NotNil(t, n.Grid())
	assert.True(t, n.Grid().IsEmpty())
	assert.Nil(t, n.DisplayNode())
	require.ErrorIs(t, n.CreateDefaultDisplayNodes(), scene.ErrNotInScene)

	n.SetGrid(nil)
	assert.Nil(t, n.Grid())
}

func TestDisplayNode_Defaults(t *testing.T) {
	d := scene.NewDisplayNode()
	assert.True(t, d.Visible)
	assert.Equal(t, 1.0, d.Opacity)
	assert.Equal(t, [3]float64{1, 0, 0}, d.CrestColor)
	assert.Equal(t, scene.ClassSRepDisplay, d.Class())
}

func TestSRepNode_SpokeLayers(t *testing.T) {
	sc := scene.NewScene(sequentialIDs())
	n := scene.NewSRepNode("layers")
	assert.Nil(t, n.SpokeLayers(), "detached")

	_, err := sc.AddNode(n)
	require.NoError(t, err)
	require.NoError(t, n.CreateDefaultDisplayNodes())
	assert.Nil(t, n.SpokeLayers(), "empty grid")

	n.SetGrid(grid(t))
	layers := n.SpokeLayers()
	require.Len(t, layers, 3)
	assert.Equal(t, []string{scene.LayerUp, scene.LayerDown, scene.LayerCrest},
		[]string{layers[0].Kind, layers[1].Kind, layers[2].Kind})
	assert.Equal(t, 4, layers[2].Mesh.Len())
	assert.Equal(t, n.DisplayNode().CrestColor, layers[2].Color)

	// placeholders carry no spokes, so only non-empty meshes are shown
	g, err := elliptical.NewWithSize(4, 2)
	require.NoError(t, err)
	n.SetGrid(g)
	assert.Empty(t, n.SpokeLayers())

	n.SetGrid(grid(t))
	n.DisplayNode().Visible = false
	assert.Nil(t, n.SpokeLayers())

	n.SetGrid(nil)
	assert.Nil(t, n.MeshSRep())
	n.DisplayNode().Visible = true
	assert.Nil(t, n.SpokeLayers())
}
