package app

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/vk/nodegridgo/internal/ctxlog"
	"github.com/vk/nodegridgo/internal/eval"
	"github.com/vk/nodegridgo/internal/ghxml"
	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/hclgraph"
	"github.com/vk/nodegridgo/internal/plan"
)

// loadDocument builds a graph from the document path, picking the HCL
// front end for .hcl files and the XML parser for everything else.
func loadDocument(path string) (*graph.Graph, error) {
	if strings.HasSuffix(strings.ToLower(path), ".hcl") {
		return hclgraph.LoadFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	g, err := ghxml.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return g, nil
}

// Run loads the configured document, evaluates it and reports per-node
// outputs and the harvested geometry.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	g, err := loadDocument(cfg.DocPath)
	if err != nil {
		return err
	}
	a.logger.Debug("Document loaded.", "nodes", len(g.Nodes()), "wires", len(g.Wires()))

	p, err := plan.New(g)
	if err != nil {
		return fmt.Errorf("failed to plan evaluation: %w", err)
	}

	a.logger.Info("Starting evaluation.", "nodes", len(p.Order))
	result, err := eval.Run(ctx, g, p, a.registry)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	a.logger.Info("Evaluation finished.", "geometry", len(result.Geometry))

	for _, id := range p.Order {
		outputs := result.NodeOutputs[id]
		pins := make([]string, 0, len(outputs))
		for pin := range outputs {
			pins = append(pins, pin)
		}
		sort.Strings(pins)
		for _, pin := range pins {
			fmt.Fprintf(a.outW, "node %d %s = %s\n", int(id), pin, outputs[pin].Kind())
		}
	}
	fmt.Fprintf(a.outW, "geometry: %d\n", len(result.Geometry))
	for _, geo := range result.Geometry {
		fmt.Fprintf(a.outW, "  %s\n", geo.Kind())
	}
	return nil
}
