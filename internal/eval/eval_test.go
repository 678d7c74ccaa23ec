package eval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/nodegridgo/internal/components"
	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/plan"
	"github.com/vk/nodegridgo/internal/registry"
	"github.com/vk/nodegridgo/internal/value"
)

func sliderNode(t *testing.T, g *graph.Graph, val float64) graph.NodeID {
	t.Helper()
	n := graph.NewNode()
	n.GUID = components.SliderGUIDs[0]
	n.Meta.SetNumber("value", val)
	n.SetOutput("OUT", value.Number(val))
	id, err := g.AddNode(n)
	require.NoError(t, err)
	return id
}

func namedNode(t *testing.T, g *graph.Graph, name string) graph.NodeID {
	t.Helper()
	n := graph.NewNode()
	n.Name = name
	id, err := g.AddNode(n)
	require.NoError(t, err)
	return id
}

func mustPlan(t *testing.T, g *graph.Graph) *plan.Plan {
	t.Helper()
	p, err := plan.New(g)
	require.NoError(t, err)
	return p
}

func TestNumberPassthrough(t *testing.T) {
	g := graph.New()
	s := sliderNode(t, g, 3)
	n := namedNode(t, g, "Number")
	require.NoError(t, g.AddWire(graph.Wire{FromNode: s, FromPin: "OUT", ToNode: n, ToPin: "Num"}))

	result, err := Run(context.Background(), g, mustPlan(t, g), components.Default())
	require.NoError(t, err)
	assert.Equal(t, value.Number(3), result.NodeOutputs[n]["Num"])
}

func TestFanInCollapsesToSortedList(t *testing.T) {
	g := graph.New()
	a := sliderNode(t, g, 1)
	b := sliderNode(t, g, 2)
	c := sliderNode(t, g, 3)
	d := namedNode(t, g, "Mass Addition")

	// Insertion order deliberately scrambled; collection order must not
	// depend on it.
	require.NoError(t, g.AddWire(graph.Wire{FromNode: c, FromPin: "OUT", ToNode: d, ToPin: "V"}))
	require.NoError(t, g.AddWire(graph.Wire{FromNode: a, FromPin: "OUT", ToNode: d, ToPin: "V"}))
	require.NoError(t, g.AddWire(graph.Wire{FromNode: b, FromPin: "OUT", ToNode: d, ToPin: "V"}))

	result, err := Run(context.Background(), g, mustPlan(t, g), components.Default())
	require.NoError(t, err)
	assert.Equal(t, value.Number(6), result.NodeOutputs[d]["R"])
	assert.Equal(t, value.List{value.Number(1), value.Number(3), value.Number(6)}, result.NodeOutputs[d]["Pr"])
}

func TestCycleRejectedBeforeAnyComponentRuns(t *testing.T) {
	g := graph.New()
	r := registry.New()
	invoked := false
	r.Register(&registry.Component{
		Name:  "Probe",
		Names: []string{"Probe"},
		Evaluate: func(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
			invoked = true
			return registry.Outputs{}, nil
		},
	})

	a := namedNode(t, g, "Probe")
	b := namedNode(t, g, "Probe")
	require.NoError(t, g.AddWire(graph.Wire{FromNode: a, FromPin: "O", ToNode: b, ToPin: "I"}))
	require.NoError(t, g.AddWire(graph.Wire{FromNode: b, FromPin: "O", ToNode: a, ToPin: "I"}))

	_, err := plan.New(g)
	var cycle *plan.CycleError
	require.ErrorAs(t, err, &cycle)
	assert.ElementsMatch(t, []graph.NodeID{a, b}, cycle.Nodes)
	assert.False(t, invoked)
}

func TestMissingInput(t *testing.T) {
	g := graph.New()
	n := graph.NewNode()
	n.Name = "Addition"
	n.DeclareInput("A", value.Null{})
	n.DeclareInput("B", value.Number(1))
	id, err := g.AddNode(n)
	require.NoError(t, err)

	_, err = Run(context.Background(), g, mustPlan(t, g), components.Default())
	var missing *MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, id, missing.Node)
	assert.Equal(t, "A", missing.Pin)
}

func TestComponentNotFound(t *testing.T) {
	g := graph.New()
	n := graph.NewNode()
	n.Name = "No Such Thing"
	n.GUID = "ffffffff-0000-0000-0000-000000000000"
	id, err := g.AddNode(n)
	require.NoError(t, err)

	_, err = Run(context.Background(), g, mustPlan(t, g), components.Default())
	var notFound *ComponentNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, id, notFound.Node)
	assert.Equal(t, "No Such Thing", notFound.Name)
}

func TestComponentFailureNamesNode(t *testing.T) {
	g := graph.New()
	n := graph.NewNode()
	n.Name = "Division"
	n.DeclareInput("A", value.Number(1))
	n.DeclareInput("B", value.Number(0))
	id, err := g.AddNode(n)
	require.NoError(t, err)

	_, err = Run(context.Background(), g, mustPlan(t, g), components.Default())
	var failed *ComponentFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, id, failed.Node)
	assert.Equal(t, "Division", failed.Component)
	assert.Contains(t, failed.Err.Message, "division by zero")
}

func TestStubComponentFailure(t *testing.T) {
	g := graph.New()
	r := registry.New()
	r.Register(&registry.Component{
		Name:  "Probe",
		Names: []string{"Probe"},
		Evaluate: func(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
			return nil, registry.NotImplemented("Probe")
		},
	})

	n := graph.NewNode()
	n.Name = "Probe"
	id, err := g.AddNode(n)
	require.NoError(t, err)

	_, err = Run(context.Background(), g, mustPlan(t, g), r)
	var failed *ComponentFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, id, failed.Node)
	assert.Equal(t, "Probe", failed.Err.NotImplemented)
}

func TestInputVectorMatchesPinOrder(t *testing.T) {
	g := graph.New()
	r := registry.New()
	var got int
	r.Register(&registry.Component{
		Name:     "Probe",
		Names:    []string{"Probe"},
		Optional: []string{"A", "B", "C"},
		Evaluate: func(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
			got = len(inputs)
			return registry.Outputs{}, nil
		},
	})

	n := graph.NewNode()
	n.Name = "Probe"
	n.DeclareInput("A", value.Number(1))
	n.DeclareInput("B", value.Null{})
	n.DeclareInput("C", value.Null{})
	id, err := g.AddNode(n)
	require.NoError(t, err)

	p := mustPlan(t, g)
	_, err = Run(context.Background(), g, p, r)
	require.NoError(t, err)
	assert.Equal(t, len(p.PinOrder[id]), got)
}

func TestOverlayMergePreservesUntouchedOutputs(t *testing.T) {
	g := graph.New()
	r := registry.New()
	r.Register(&registry.Component{
		Name:  "Probe",
		Names: []string{"Probe"},
		Evaluate: func(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
			return registry.Outputs{"R": value.Number(1)}, nil
		},
	})

	n := graph.NewNode()
	n.Name = "Probe"
	n.SetOutput("Keep", value.Text("still here"))
	n.SetOutput("R", value.Number(0))
	id, err := g.AddNode(n)
	require.NoError(t, err)

	result, err := Run(context.Background(), g, mustPlan(t, g), r)
	require.NoError(t, err)
	assert.Equal(t, value.Text("still here"), result.NodeOutputs[id]["Keep"])
	assert.Equal(t, value.Number(1), result.NodeOutputs[id]["R"])
	// The stored run output is a copy, the node itself is untouched.
	assert.Equal(t, value.Number(0), n.Outputs["R"])
}

func TestGeometryHarvest(t *testing.T) {
	g := graph.New()
	r := registry.New()
	r.Register(&registry.Component{
		Name:  "Probe",
		Names: []string{"Probe"},
		Evaluate: func(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
			return registry.Outputs{
				"A": value.List{value.Point{X: 1}, value.Number(4), value.Point{X: 2}},
				"B": value.Line{P2: value.Point{Z: 1}},
				"C": value.Text("not geometry"),
			}, nil
		},
	})

	n := graph.NewNode()
	n.Name = "Probe"
	_, err := g.AddNode(n)
	require.NoError(t, err)

	result, err := Run(context.Background(), g, mustPlan(t, g), r)
	require.NoError(t, err)
	// Output pins are harvested in sorted pin order, list elements in
	// encounter order.
	assert.Equal(t, []value.Value{
		value.Point{X: 1},
		value.Point{X: 2},
		value.Line{P2: value.Point{Z: 1}},
	}, result.Geometry)
}
