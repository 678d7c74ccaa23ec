package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/value"
)

func addNodes(t *testing.T, g *graph.Graph, count int) []graph.NodeID {
	t.Helper()
	ids := make([]graph.NodeID, count)
	for i := range ids {
		id, err := g.AddNode(graph.NewNode())
		require.NoError(t, err)
		ids[i] = id
	}
	return ids
}

func TestOrderIsTopological(t *testing.T) {
	g := graph.New()
	ids := addNodes(t, g, 4)
	// Diamond: 0 -> 1, 0 -> 2, 1 -> 3, 2 -> 3.
	require.NoError(t, g.AddWire(graph.Wire{FromNode: ids[0], FromPin: "O", ToNode: ids[1], ToPin: "A"}))
	require.NoError(t, g.AddWire(graph.Wire{FromNode: ids[0], FromPin: "O", ToNode: ids[2], ToPin: "A"}))
	require.NoError(t, g.AddWire(graph.Wire{FromNode: ids[1], FromPin: "O", ToNode: ids[3], ToPin: "A"}))
	require.NoError(t, g.AddWire(graph.Wire{FromNode: ids[2], FromPin: "O", ToNode: ids[3], ToPin: "B"}))

	p, err := New(g)
	require.NoError(t, err)
	require.Len(t, p.Order, 4)

	pos := make(map[graph.NodeID]int)
	for i, id := range p.Order {
		pos[id] = i
	}
	for _, w := range g.Wires() {
		assert.Less(t, pos[w.FromNode], pos[w.ToNode], "wire %v must respect the order", w)
	}
}

func TestCycleRejected(t *testing.T) {
	g := graph.New()
	ids := addNodes(t, g, 2)
	require.NoError(t, g.AddWire(graph.Wire{FromNode: ids[0], FromPin: "O", ToNode: ids[1], ToPin: "A"}))
	require.NoError(t, g.AddWire(graph.Wire{FromNode: ids[1], FromPin: "O", ToNode: ids[0], ToPin: "A"}))

	_, err := New(g)
	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)
	assert.ElementsMatch(t, []graph.NodeID{ids[0], ids[1]}, cycle.Nodes)
}

func TestFanInOrderIsDeterministic(t *testing.T) {
	build := func(wires []graph.Wire) *Plan {
		g := graph.New()
		addNodes(t, g, 4)
		for _, w := range wires {
			require.NoError(t, g.AddWire(w))
		}
		p, err := New(g)
		require.NoError(t, err)
		return p
	}

	forward := []graph.Wire{
		{FromNode: 0, FromPin: "O", ToNode: 3, ToPin: "V"},
		{FromNode: 1, FromPin: "O", ToNode: 3, ToPin: "V"},
		{FromNode: 2, FromPin: "O", ToNode: 3, ToPin: "V"},
	}
	reversed := []graph.Wire{forward[2], forward[0], forward[1]}

	p1 := build(forward)
	p2 := build(reversed)

	want := []Source{{Node: 0, Pin: "O"}, {Node: 1, Pin: "O"}, {Node: 2, Pin: "O"}}
	assert.Equal(t, want, p1.Incoming[3]["V"])
	assert.Equal(t, want, p2.Incoming[3]["V"], "insertion order must not leak into fan-in order")
}

func TestPinOrder(t *testing.T) {
	g := graph.New()
	src, err := g.AddNode(graph.NewNode())
	require.NoError(t, err)

	n := graph.NewNode()
	n.DeclareInput("Z", value.Null{})
	n.DeclareInput("A", value.Null{})
	id, err := g.AddNode(n)
	require.NoError(t, err)

	// Wires into one declared pin and two undeclared ones.
	require.NoError(t, g.AddWire(graph.Wire{FromNode: src, FromPin: "O", ToNode: id, ToPin: "A"}))
	require.NoError(t, g.AddWire(graph.Wire{FromNode: src, FromPin: "O", ToNode: id, ToPin: "M"}))
	require.NoError(t, g.AddWire(graph.Wire{FromNode: src, FromPin: "O", ToNode: id, ToPin: "B"}))

	p, err := New(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "A", "B", "M"}, p.PinOrder[id])
}
