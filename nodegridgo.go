// Package nodegridgo evaluates node-graph documents: XML definitions are
// parsed into a graph of component nodes, planned into a topological
// order, and executed against a closed component catalogue.
package nodegridgo

import (
	"context"

	"github.com/vk/nodegridgo/internal/components"
	"github.com/vk/nodegridgo/internal/eval"
	"github.com/vk/nodegridgo/internal/ghxml"
	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/plan"
	"github.com/vk/nodegridgo/internal/registry"
)

// Parse decodes an XML graph document, accepting both the compact and
// the archive shape.
func Parse(text string) (*graph.Graph, error) {
	return ghxml.Parse(text)
}

// DefaultRegistry builds the full component catalogue.
func DefaultRegistry() *registry.Registry {
	return components.Default()
}

// Evaluate plans the graph and runs it against the registry. The graph
// and registry are only read; the result is owned by the caller.
func Evaluate(ctx context.Context, g *graph.Graph, r *registry.Registry) (*eval.Result, error) {
	p, err := plan.New(g)
	if err != nil {
		return nil, err
	}
	return eval.Run(ctx, g, p, r)
}
