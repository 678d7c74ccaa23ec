package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/value"
)

// Outputs maps output pin names to values. The evaluator iterates it in
// sorted key order.
type Outputs map[string]value.Value

// EvalFunc is the single evaluation contract every component kind
// implements: an input vector in pin order plus the node's metadata in,
// an output pin map out.
type EvalFunc func(inputs []value.Value, meta graph.Meta) (Outputs, error)

// Component is one kind in the closed catalogue.
type Component struct {
	// Name is the human-readable component name used in errors.
	Name string

	// GUIDs are the ecosystem-fixed unique ids of this kind.
	GUIDs []string

	// Names are the canonical names and nicknames this kind answers to.
	Names []string

	// Optional lists input pins that substitute Null when neither a wire
	// nor a default supplies them.
	Optional []string

	Evaluate EvalFunc
}

// IsOptional reports whether pin may be absent.
func (c *Component) IsOptional(pin string) bool {
	for _, p := range c.Optional {
		if p == pin {
			return true
		}
	}
	return false
}

// Module is implemented by each component category; its Register call
// inserts the category's kinds into the registry.
type Module interface {
	Register(r *Registry)
}

// Registry indexes components by normalized guid and name. It is built
// once and read-only afterwards, so it may be shared across concurrent
// evaluations of independent graphs.
type Registry struct {
	byGUID map[string]*Component
	byName map[string]*Component
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byGUID: make(map[string]*Component),
		byName: make(map[string]*Component),
	}
}

// Register inserts c under all of its guids and names. Colliding ids are
// a programming error in the catalogue tables.
func (r *Registry) Register(c *Component) {
	slog.Debug("Registering component.", "name", c.Name)
	for _, guid := range c.GUIDs {
		key := graph.NormalizeGUID(guid)
		if _, exists := r.byGUID[key]; exists {
			panic(fmt.Sprintf("component guid %q already registered", guid))
		}
		r.byGUID[key] = c
	}
	for _, name := range c.Names {
		key := graph.NormalizeName(name)
		if _, exists := r.byName[key]; exists {
			panic(fmt.Sprintf("component name %q already registered", name))
		}
		r.byName[key] = c
	}
}

// Resolve finds the component for a node identity. Guid is consulted
// first, then canonical name, then nickname; the first hit wins.
func (r *Registry) Resolve(guid, name, nickname string) (*Component, bool) {
	if guid != "" {
		if c, ok := r.byGUID[graph.NormalizeGUID(guid)]; ok {
			return c, true
		}
	}
	if name != "" {
		if c, ok := r.byName[graph.NormalizeName(name)]; ok {
			return c, true
		}
	}
	if nickname != "" {
		if c, ok := r.byName[graph.NormalizeName(nickname)]; ok {
			return c, true
		}
	}
	return nil, false
}
