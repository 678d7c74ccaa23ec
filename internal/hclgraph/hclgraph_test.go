package hclgraph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/nodegridgo/internal/components"
	"github.com/vk/nodegridgo/internal/eval"
	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/plan"
	"github.com/vk/nodegridgo/internal/value"
)

const sampleDoc = `
node "s" {
  component = "Number Slider"
  meta = { value = 3, min = 0, max = 10 }
}

node "add" {
  component = "Addition"

  input "A" {}
  input "B" { value = 1.5 }
}

wire {
  from = "s:OUT"
  to   = "add:A"
}
`

func TestLoad(t *testing.T) {
	g, err := Load("sample.hcl", []byte(sampleDoc))
	require.NoError(t, err)
	require.Len(t, g.Nodes(), 2)

	slider := g.Node(0)
	assert.Equal(t, "Number Slider", slider.Name)
	assert.Equal(t, "s", slider.Nickname)
	assert.Equal(t, value.Number(3), slider.Outputs["OUT"])
	min, ok := slider.Meta.Number("min")
	require.True(t, ok)
	assert.Equal(t, 0.0, min)

	add := g.Node(1)
	assert.Equal(t, []string{"A", "B"}, add.PinOrder)
	assert.Equal(t, value.Number(1.5), add.Inputs["B"])

	require.Len(t, g.Wires(), 1)
	assert.Equal(t, graph.Wire{FromNode: 0, FromPin: "OUT", ToNode: 1, ToPin: "A"}, g.Wires()[0])
}

func TestLoadAndEvaluate(t *testing.T) {
	g, err := Load("sample.hcl", []byte(sampleDoc))
	require.NoError(t, err)

	p, err := plan.New(g)
	require.NoError(t, err)

	result, err := eval.Run(context.Background(), g, p, components.Default())
	require.NoError(t, err)
	assert.Equal(t, value.Number(4.5), result.NodeOutputs[1]["R"])
}

func TestLoadPinValues(t *testing.T) {
	doc := `
node "n" {
  component = "Merge"

  input "L" { value = [1, 2, 3] }
  input "B" { value = true }
  input "T" { value = "hi" }
  output "R" {}
}
`
	g, err := Load("pins.hcl", []byte(doc))
	require.NoError(t, err)

	n := g.Node(0)
	assert.Equal(t, value.List{value.Number(1), value.Number(2), value.Number(3)}, n.Inputs["L"])
	assert.Equal(t, value.Boolean(true), n.Inputs["B"])
	assert.Equal(t, value.Text("hi"), n.Inputs["T"])
	assert.Equal(t, value.Null{}, n.Outputs["R"])
}

func TestLoadErrors(t *testing.T) {
	t.Run("syntax error", func(t *testing.T) {
		_, err := Load("bad.hcl", []byte(`node "x" {`))
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("duplicate node", func(t *testing.T) {
		_, err := Load("dup.hcl", []byte(`
node "x" {}
node "x" {}
`))
		assert.ErrorContains(t, err, "duplicate node")
	})

	t.Run("bad wire reference", func(t *testing.T) {
		_, err := Load("wire.hcl", []byte(`
node "x" {}
wire {
  from = "xOUT"
  to   = "x:A"
}
`))
		assert.ErrorContains(t, err, "not <node>:<pin>")
	})

	t.Run("unknown wire node", func(t *testing.T) {
		_, err := Load("wire.hcl", []byte(`
node "x" {}
wire {
  from = "y:OUT"
  to   = "x:A"
}
`))
		assert.ErrorContains(t, err, "unknown node")
	})
}
