package eval

import (
	"context"
	"errors"
	"sort"

	"github.com/vk/nodegridgo/internal/ctxlog"
	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/plan"
	"github.com/vk/nodegridgo/internal/registry"
	"github.com/vk/nodegridgo/internal/value"
)

// Result is the output of one run: every node's merged output pin map
// plus the renderable geometry harvested from them in encounter order.
type Result struct {
	NodeOutputs map[graph.NodeID]map[string]value.Value
	Geometry    []value.Value
}

// Run evaluates the graph along the plan's order. The registry and graph
// are only read; the returned result is owned by the caller. Any node
// failure aborts the run, no partial result is returned.
func Run(ctx context.Context, g *graph.Graph, p *plan.Plan, r *registry.Registry) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting evaluation.", "nodes", len(p.Order))

	result := &Result{
		NodeOutputs: make(map[graph.NodeID]map[string]value.Value, len(p.Order)),
	}

	for _, id := range p.Order {
		node := g.Node(id)
		if node == nil {
			return nil, &graph.UnknownNodeError{ID: id}
		}

		component, ok := r.Resolve(node.GUID, node.Name, node.Nickname)
		if !ok {
			return nil, &ComponentNotFoundError{
				Node: id, GUID: node.GUID, Name: node.Name, Nickname: node.Nickname,
			}
		}
		logger.Debug("Evaluating node.", "node", int(id), "component", component.Name)

		inputs, err := gatherInputs(node, component, p, result)
		if err != nil {
			return nil, err
		}

		outputs, err := component.Evaluate(inputs, node.Meta)
		if err != nil {
			var compErr *registry.ComponentError
			if !errors.As(err, &compErr) {
				compErr = registry.Errorf("%s", err.Error())
			}
			return nil, &ComponentFailedError{Node: id, Component: component.Name, Err: compErr}
		}

		merged := mergeOutputs(node, outputs)
		for _, pin := range sortedPins(merged) {
			harvest(merged[pin], &result.Geometry)
		}
		result.NodeOutputs[id] = merged
	}

	logger.Debug("Evaluation finished.", "geometry", len(result.Geometry))
	return result, nil
}

// gatherInputs builds the node's input vector in pin order. Fan-in
// collapses into a List in the plan's deterministic source order.
func gatherInputs(node *graph.Node, component *registry.Component, p *plan.Plan, result *Result) ([]value.Value, error) {
	pinOrder := p.PinOrder[node.ID]
	incoming := p.Incoming[node.ID]
	inputs := make([]value.Value, 0, len(pinOrder))

	for _, pin := range pinOrder {
		sources := incoming[pin]
		switch {
		case len(sources) > 0:
			collected := make(value.List, 0, len(sources))
			for _, src := range sources {
				outputs, ok := result.NodeOutputs[src.Node]
				if !ok {
					return nil, &MissingDependencyOutputError{Node: node.ID, Dependency: src.Node, Pin: src.Pin}
				}
				v, ok := outputs[src.Pin]
				if !ok {
					return nil, &MissingDependencyOutputError{Node: node.ID, Dependency: src.Node, Pin: src.Pin}
				}
				collected = append(collected, v)
			}
			if len(collected) == 1 {
				inputs = append(inputs, collected[0])
			} else {
				inputs = append(inputs, collected)
			}
		case hasDefault(node, pin):
			inputs = append(inputs, node.Inputs[pin])
		case component.IsOptional(pin):
			inputs = append(inputs, value.Null{})
		default:
			return nil, &MissingInputError{Node: node.ID, Pin: pin}
		}
	}
	return inputs, nil
}

// hasDefault reports whether the pin carries a usable default. A pin
// declared with Null counts as having none.
func hasDefault(node *graph.Node, pin string) bool {
	v, ok := node.Inputs[pin]
	if !ok {
		return false
	}
	_, isNull := v.(value.Null)
	return !isNull
}

// mergeOutputs overlays the component's outputs on a copy of the node's
// pre-existing ones. Pins the component did not mention survive.
func mergeOutputs(node *graph.Node, outputs registry.Outputs) map[string]value.Value {
	merged := make(map[string]value.Value, len(node.Outputs)+len(outputs))
	for pin, v := range node.Outputs {
		merged[pin] = v
	}
	for pin, v := range outputs {
		merged[pin] = v
	}
	return merged
}

func sortedPins(m map[string]value.Value) []string {
	pins := make([]string, 0, len(m))
	for pin := range m {
		pins = append(pins, pin)
	}
	sort.Strings(pins)
	return pins
}

// harvest appends every renderable value to geometry, descending into
// lists in order.
func harvest(v value.Value, geometry *[]value.Value) {
	switch el := v.(type) {
	case value.Point, value.Line, value.Surface, value.Mesh:
		*geometry = append(*geometry, el)
	case value.List:
		for _, child := range el {
			harvest(child, geometry)
		}
	}
}
