package hclgraph

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/value"
)

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "node", LabelNames: []string{"name"}},
		{Type: "wire"},
	},
}

var nodeSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "component"},
		{Name: "guid"},
		{Name: "nickname"},
		{Name: "meta"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "input", LabelNames: []string{"name"}},
		{Type: "output", LabelNames: []string{"name"}},
	},
}

var pinSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "value"},
	},
}

var wireSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "from", Required: true},
		{Name: "to", Required: true},
	},
}

// LoadFile reads and builds a graph from an HCL file on disk.
func LoadFile(path string) (*graph.Graph, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Load(path, src)
}

// Load builds a graph from HCL source. Node blocks declare components by
// name, guid or nickname; wire blocks reference pins as "<node>:<pin>".
func Load(filename string, src []byte) (*graph.Graph, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid document structure: %w", diags)
	}

	g := graph.New()
	ids := make(map[string]graph.NodeID)

	for _, block := range content.Blocks {
		if block.Type != "node" {
			continue
		}
		label := block.Labels[0]
		if _, exists := ids[label]; exists {
			return nil, fmt.Errorf("duplicate node %q", label)
		}
		n, err := buildNode(label, block)
		if err != nil {
			return nil, err
		}
		id, err := g.AddNode(n)
		if err != nil {
			return nil, err
		}
		ids[label] = id
	}

	for _, block := range content.Blocks {
		if block.Type != "wire" {
			continue
		}
		if err := buildWire(g, ids, block); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func buildNode(label string, block *hcl.Block) (*graph.Node, error) {
	content, diags := block.Body.Content(nodeSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("node %q: %w", label, diags)
	}

	n := graph.NewNode()
	n.Nickname = label

	if attr, ok := content.Attributes["component"]; ok {
		name, err := stringValue(attr)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", label, err)
		}
		n.Name = name
	}
	if attr, ok := content.Attributes["guid"]; ok {
		guid, err := stringValue(attr)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", label, err)
		}
		n.GUID = guid
	}
	if attr, ok := content.Attributes["nickname"]; ok {
		nick, err := stringValue(attr)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", label, err)
		}
		n.Nickname = nick
	}
	if attr, ok := content.Attributes["meta"]; ok {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("node %q meta: %w", label, diags)
		}
		if !v.Type().IsObjectType() && !v.Type().IsMapType() {
			return nil, fmt.Errorf("node %q: meta must be an object", label)
		}
		for key, elem := range v.AsValueMap() {
			n.Meta[strings.ToLower(key)] = elem
		}
		// A slider authored purely through meta still needs its output.
		if current, ok := n.Meta.Number("value"); ok {
			n.SetOutput("OUT", value.Number(current))
		}
	}

	for _, pin := range content.Blocks {
		pinContent, diags := pin.Body.Content(pinSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("node %q pin %q: %w", label, pin.Labels[0], diags)
		}
		v := value.Value(value.Null{})
		if attr, ok := pinContent.Attributes["value"]; ok {
			ctyVal, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("node %q pin %q: %w", label, pin.Labels[0], diags)
			}
			converted, err := fromCty(ctyVal)
			if err != nil {
				return nil, fmt.Errorf("node %q pin %q: %w", label, pin.Labels[0], err)
			}
			v = converted
		}
		switch pin.Type {
		case "input":
			n.DeclareInput(pin.Labels[0], v)
		case "output":
			n.SetOutput(pin.Labels[0], v)
		}
	}
	return n, nil
}

func buildWire(g *graph.Graph, ids map[string]graph.NodeID, block *hcl.Block) error {
	content, diags := block.Body.Content(wireSchema)
	if diags.HasErrors() {
		return fmt.Errorf("wire: %w", diags)
	}
	fromNode, fromPin, err := endpoint(ids, content.Attributes["from"])
	if err != nil {
		return err
	}
	toNode, toPin, err := endpoint(ids, content.Attributes["to"])
	if err != nil {
		return err
	}
	return g.AddWire(graph.Wire{
		FromNode: fromNode, FromPin: fromPin,
		ToNode: toNode, ToPin: toPin,
	})
}

func endpoint(ids map[string]graph.NodeID, attr *hcl.Attribute) (graph.NodeID, string, error) {
	ref, err := stringValue(attr)
	if err != nil {
		return 0, "", fmt.Errorf("wire %s: %w", attr.Name, err)
	}
	name, pin, ok := strings.Cut(ref, ":")
	if !ok || pin == "" {
		return 0, "", fmt.Errorf("wire %s: reference %q is not <node>:<pin>", attr.Name, ref)
	}
	id, ok := ids[name]
	if !ok {
		return 0, "", fmt.Errorf("wire %s: unknown node %q", attr.Name, name)
	}
	return id, pin, nil
}

func stringValue(attr *hcl.Attribute) (string, error) {
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if v.Type() != cty.String {
		return "", fmt.Errorf("attribute %q must be a string", attr.Name)
	}
	return v.AsString(), nil
}

// fromCty converts an evaluated HCL expression into an engine value.
func fromCty(v cty.Value) (value.Value, error) {
	if v.IsNull() {
		return value.Null{}, nil
	}
	t := v.Type()
	switch {
	case t == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return value.Number(f), nil
	case t == cty.Bool:
		return value.Boolean(v.True()), nil
	case t == cty.String:
		return value.Text(v.AsString()), nil
	case t.IsTupleType() || t.IsListType():
		out := make(value.List, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			converted, err := fromCty(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", t.FriendlyName())
	}
}
