package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/nodegridgo/internal/value"
)

func TestAddNode(t *testing.T) {
	t.Run("fresh ids are assigned densely", func(t *testing.T) {
		g := New()
		a, err := g.AddNode(NewNode())
		require.NoError(t, err)
		b, err := g.AddNode(NewNode())
		require.NoError(t, err)
		assert.Equal(t, NodeID(0), a)
		assert.Equal(t, NodeID(1), b)
	})

	t.Run("pre-set id is kept and advances the counter", func(t *testing.T) {
		g := New()
		n := NewNode()
		n.ID = 5
		id, err := g.AddNode(n)
		require.NoError(t, err)
		assert.Equal(t, NodeID(5), id)

		next, err := g.AddNode(NewNode())
		require.NoError(t, err)
		assert.Equal(t, NodeID(6), next)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		g := New()
		n := NewNode()
		n.ID = 2
		_, err := g.AddNode(n)
		require.NoError(t, err)

		dup := NewNode()
		dup.ID = 2
		_, err = g.AddNode(dup)
		var dupErr *DuplicateNodeError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, NodeID(2), dupErr.ID)
	})
}

func TestAddWire(t *testing.T) {
	g := New()
	a, _ := g.AddNode(NewNode())
	b, _ := g.AddNode(NewNode())

	t.Run("valid endpoints", func(t *testing.T) {
		err := g.AddWire(Wire{FromNode: a, FromPin: "OUT", ToNode: b, ToPin: "A"})
		require.NoError(t, err)
		assert.Len(t, g.Wires(), 1)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		err := g.AddWire(Wire{FromNode: 99, FromPin: "OUT", ToNode: b, ToPin: "A"})
		var unknown *UnknownNodeError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, NodeID(99), unknown.ID)
	})

	t.Run("every wire endpoint exists in the index", func(t *testing.T) {
		for _, w := range g.Wires() {
			assert.NotNil(t, g.Node(w.FromNode))
			assert.NotNil(t, g.Node(w.ToNode))
		}
	})
}

func TestLookups(t *testing.T) {
	g := New()
	n := NewNode()
	n.GUID = "{AB12-CD}"
	n.Name = "  Mass Addition "
	_, err := g.AddNode(n)
	require.NoError(t, err)

	assert.Equal(t, []*Node{n}, g.NodesWithGUID("ab12-cd"))
	assert.Equal(t, []*Node{n}, g.NodesWithGUID("{AB12-CD}"))
	assert.Equal(t, []*Node{n}, g.NodesWithName("mass addition"))
	assert.Empty(t, g.NodesWithName("other"))
}

func TestDeclareInput(t *testing.T) {
	n := NewNode()
	n.DeclareInput("B", value.Number(1))
	n.DeclareInput("A", value.Number(2))
	n.DeclareInput("B", value.Number(3)) // re-declare updates the default only

	assert.Equal(t, []string{"B", "A"}, n.PinOrder)
	assert.Equal(t, value.Number(3), n.Inputs["B"])
}

func TestMeta(t *testing.T) {
	m := make(Meta)
	m.SetNumber("min", 0.5)
	m.SetInt("steps", 10)
	m.SetText("label", "x")

	f, ok := m.Number("min")
	require.True(t, ok)
	assert.Equal(t, 0.5, f)

	i, ok := m.Int("steps")
	require.True(t, ok)
	assert.Equal(t, int64(10), i)

	s, ok := m.Text("label")
	require.True(t, ok)
	assert.Equal(t, "x", s)

	// Numbers convert to text and back.
	s, ok = m.Text("min")
	require.True(t, ok)
	assert.Equal(t, "0.5", s)

	_, ok = m.Number("absent")
	assert.False(t, ok)
}
