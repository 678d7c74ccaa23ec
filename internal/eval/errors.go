package eval

import (
	"fmt"

	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/registry"
)

// ComponentNotFoundError reports a node whose identity resolves to no
// registered component. The identifiers carried are whatever the node
// had, so the failing object can be found without the source document.
type ComponentNotFoundError struct {
	Node     graph.NodeID
	GUID     string
	Name     string
	Nickname string
}

func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf("eval: node %d: no component for guid=%q name=%q nickname=%q",
		e.Node, e.GUID, e.Name, e.Nickname)
}

// MissingInputError reports a required input pin with no wire, no default
// and no optional marker.
type MissingInputError struct {
	Node graph.NodeID
	Pin  string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("eval: node %d: missing input on pin %q", e.Node, e.Pin)
}

// MissingDependencyOutputError reports a wired input whose source node
// has not produced the named output pin.
type MissingDependencyOutputError struct {
	Node       graph.NodeID
	Dependency graph.NodeID
	Pin        string
}

func (e *MissingDependencyOutputError) Error() string {
	return fmt.Sprintf("eval: node %d: dependency node %d produced no output pin %q",
		e.Node, e.Dependency, e.Pin)
}

// ComponentFailedError wraps a failure reported by a component's evaluate
// function, naming the node it ran on.
type ComponentFailedError struct {
	Node      graph.NodeID
	Component string
	Err       *registry.ComponentError
}

func (e *ComponentFailedError) Error() string {
	return fmt.Sprintf("eval: node %d: component %q failed: %s", e.Node, e.Component, e.Err.Error())
}

func (e *ComponentFailedError) Unwrap() error { return e.Err }
