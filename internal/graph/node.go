package graph

import (
	"strings"

	"github.com/vk/nodegridgo/internal/value"
)

// NodeID is the dense per-document identifier of a node.
type NodeID int

// Unassigned marks a node that has not been given an id yet; AddNode
// assigns a fresh one.
const Unassigned NodeID = -1

// Node is one component instance inside a document. Identity fields may
// be empty; the registry resolves whichever of guid, name and nickname
// are present, in that priority order.
type Node struct {
	ID       NodeID
	GUID     string
	Name     string
	Nickname string

	// Inputs maps input pin names to default values used when no wire
	// targets the pin.
	Inputs map[string]value.Value

	// Outputs maps output pin names to values. The evaluator fills this
	// in; parsers may seed it (sliders, panels, persistent data).
	Outputs map[string]value.Value

	// PinOrder is the declared input pin order, the authoritative
	// iteration order for input collection.
	PinOrder []string

	Meta Meta
}

// NewNode returns an unattached node with empty pin maps and metadata.
func NewNode() *Node {
	return &Node{
		ID:      Unassigned,
		Inputs:  make(map[string]value.Value),
		Outputs: make(map[string]value.Value),
		Meta:    make(Meta),
	}
}

// DeclareInput registers an input pin with a default value, keeping the
// declared pin order. Re-declaring a pin only updates the default.
func (n *Node) DeclareInput(pin string, def value.Value) {
	if _, exists := n.Inputs[pin]; !exists {
		n.PinOrder = append(n.PinOrder, pin)
	}
	n.Inputs[pin] = def
}

// SetOutput seeds an output pin value.
func (n *Node) SetOutput(pin string, v value.Value) {
	n.Outputs[pin] = v
}

// NormalizeGUID lowercases a guid and strips surrounding braces so that
// "{A3B...}" and "a3b..." index identically.
func NormalizeGUID(guid string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(guid), "{}"))
}

// NormalizeName trims and lowercases a component name or nickname.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
