package plan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vk/nodegridgo/internal/graph"
)

// Source identifies the producing end of a wire.
type Source struct {
	Node graph.NodeID
	Pin  string
}

// CycleError reports that the graph is not acyclic. Nodes lists the ids
// left unordered once every acyclic node was placed, in ascending order.
type CycleError struct {
	Nodes []graph.NodeID
}

func (e *CycleError) Error() string {
	ids := make([]string, len(e.Nodes))
	for i, id := range e.Nodes {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("plan: cycle detected involving nodes %s", strings.Join(ids, ", "))
}

// Plan is the reusable execution schedule for one graph.
type Plan struct {
	// Order is a topological order over all node ids.
	Order []graph.NodeID

	// Incoming maps node -> input pin -> producing endpoints, sorted by
	// (source node, source pin) so fan-in collapse is deterministic.
	Incoming map[graph.NodeID]map[string][]Source

	// PinOrder maps node -> effective input pin order: the declared pins
	// first, then wire-only pins in sorted order.
	PinOrder map[graph.NodeID][]string
}

// New builds a plan from a graph, rejecting cyclic topologies.
func New(g *graph.Graph) (*Plan, error) {
	order, err := topoSort(g)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		Order:    order,
		Incoming: make(map[graph.NodeID]map[string][]Source),
		PinOrder: make(map[graph.NodeID][]string),
	}

	for _, w := range g.Wires() {
		pins := p.Incoming[w.ToNode]
		if pins == nil {
			pins = make(map[string][]Source)
			p.Incoming[w.ToNode] = pins
		}
		pins[w.ToPin] = append(pins[w.ToPin], Source{Node: w.FromNode, Pin: w.FromPin})
	}
	for _, pins := range p.Incoming {
		for _, sources := range pins {
			sort.Slice(sources, func(i, j int) bool {
				if sources[i].Node != sources[j].Node {
					return sources[i].Node < sources[j].Node
				}
				return sources[i].Pin < sources[j].Pin
			})
		}
	}

	for _, n := range g.Nodes() {
		p.PinOrder[n.ID] = pinOrder(n, p.Incoming[n.ID])
	}
	return p, nil
}

// pinOrder appends wire-only pins, sorted, after the node's declared pin
// order.
func pinOrder(n *graph.Node, incoming map[string][]Source) []string {
	order := append([]string(nil), n.PinOrder...)
	declared := make(map[string]bool, len(order))
	for _, pin := range order {
		declared[pin] = true
	}
	var extras []string
	for pin := range incoming {
		if !declared[pin] {
			extras = append(extras, pin)
		}
	}
	sort.Strings(extras)
	return append(order, extras...)
}

// topoSort is Kahn's algorithm with the ready set drained in ascending id
// order, so the evaluation order is stable for a given document.
func topoSort(g *graph.Graph) ([]graph.NodeID, error) {
	indegree := make(map[graph.NodeID]int, len(g.Nodes()))
	dependents := make(map[graph.NodeID][]graph.NodeID)
	for _, n := range g.Nodes() {
		indegree[n.ID] = 0
	}
	for _, w := range g.Wires() {
		indegree[w.ToNode]++
		dependents[w.FromNode] = append(dependents[w.FromNode], w.ToNode)
	}

	var ready []graph.NodeID
	for id, deg := range indegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}
	sortIDs(ready)

	order := make([]graph.NodeID, 0, len(indegree))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		released := false
		for _, dep := range dependents[id] {
			indegree[dep]--
			if indegree[dep] == 0 {
				ready = append(ready, dep)
				released = true
			}
		}
		if released {
			sortIDs(ready)
		}
	}

	if len(order) != len(indegree) {
		var stuck []graph.NodeID
		for id, deg := range indegree {
			if deg > 0 {
				stuck = append(stuck, id)
			}
		}
		sortIDs(stuck)
		return nil, &CycleError{Nodes: stuck}
	}
	return order, nil
}

func sortIDs(ids []graph.NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
