package graph

import "fmt"

// Wire is a directed edge from an output pin to an input pin. Endpoints
// are referenced by pin name, not index; several wires may target the
// same input pin (fan-in).
type Wire struct {
	FromNode NodeID
	FromPin  string
	ToNode   NodeID
	ToPin    string
}

// DuplicateNodeError reports an AddNode call with an id already in use.
type DuplicateNodeError struct {
	ID NodeID
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("graph: duplicate node id %d", e.ID)
}

// UnknownNodeError reports a reference to a node id the graph does not
// contain.
type UnknownNodeError struct {
	ID NodeID
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("graph: unknown node id %d", e.ID)
}

// Graph owns the nodes and wires of one document plus the three lookup
// indices: by id, by normalized guid and by normalized name.
type Graph struct {
	nodes  []*Node
	wires  []Wire
	byID   map[NodeID]*Node
	byGUID map[string][]*Node
	byName map[string][]*Node
	nextID NodeID
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		byID:   make(map[NodeID]*Node),
		byGUID: make(map[string][]*Node),
		byName: make(map[string][]*Node),
	}
}

// AddNode inserts n, assigning a fresh id when n.ID is Unassigned, and
// updates all indices. A colliding pre-set id is an error.
func (g *Graph) AddNode(n *Node) (NodeID, error) {
	if n.ID == Unassigned {
		n.ID = g.nextID
	} else if _, exists := g.byID[n.ID]; exists {
		return 0, &DuplicateNodeError{ID: n.ID}
	}
	if n.ID >= g.nextID {
		g.nextID = n.ID + 1
	}

	g.nodes = append(g.nodes, n)
	g.byID[n.ID] = n
	if n.GUID != "" {
		key := NormalizeGUID(n.GUID)
		g.byGUID[key] = append(g.byGUID[key], n)
	}
	if n.Name != "" {
		key := NormalizeName(n.Name)
		g.byName[key] = append(g.byName[key], n)
	}
	return n.ID, nil
}

// AddWire inserts w after checking both endpoints exist.
func (g *Graph) AddWire(w Wire) error {
	if _, ok := g.byID[w.FromNode]; !ok {
		return &UnknownNodeError{ID: w.FromNode}
	}
	if _, ok := g.byID[w.ToNode]; !ok {
		return &UnknownNodeError{ID: w.ToNode}
	}
	g.wires = append(g.wires, w)
	return nil
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id NodeID) *Node {
	return g.byID[id]
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Wires returns all wires in insertion order.
func (g *Graph) Wires() []Wire {
	return g.wires
}

// NodesWithGUID returns the nodes carrying the given guid, matched after
// normalization.
func (g *Graph) NodesWithGUID(guid string) []*Node {
	return g.byGUID[NormalizeGUID(guid)]
}

// NodesWithName returns the nodes carrying the given name, matched after
// normalization.
func (g *Graph) NodesWithName(name string) []*Node {
	return g.byName[NormalizeName(name)]
}
