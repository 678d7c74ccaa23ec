package ghxml

import (
	"strconv"
	"strings"

	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/value"
)

// parseCompact reads the hand-authorable <ghx> shape: a flat list of
// <object> elements followed by a <wires> list.
func parseCompact(root *element) (*graph.Graph, error) {
	g := graph.New()

	objects := root.child("objects")
	if objects == nil {
		return nil, &GraphError{Message: "compact document: missing <objects>"}
	}
	for _, obj := range objects.children("object") {
		if err := compactObject(g, obj); err != nil {
			return nil, err
		}
	}

	if wires := root.child("wires"); wires != nil {
		for _, w := range wires.children("wire") {
			if err := compactWire(g, w); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func compactObject(g *graph.Graph, obj *element) error {
	idText, ok := obj.attr("id")
	if !ok {
		return &GraphError{Message: "compact object: missing id attribute"}
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return &IndexParseError{Text: idText, Context: "compact object id"}
	}

	n := graph.NewNode()
	n.ID = graph.NodeID(id)
	n.GUID, _ = obj.attr("guid")
	n.Name, _ = obj.attr("name")
	n.Nickname, _ = obj.attr("nickname")

	if slider := obj.child("slider"); slider != nil {
		if err := compactSlider(n, slider); err != nil {
			return err
		}
	}
	if inputs := obj.child("inputs"); inputs != nil {
		for _, pin := range inputs.children("input") {
			name, _ := pin.attr("name")
			if name == "" {
				return &GraphError{Message: "compact input pin: missing name attribute"}
			}
			n.DeclareInput(name, pinValue(pin))
		}
	}
	if outputs := obj.child("outputs"); outputs != nil {
		for _, pin := range outputs.children("output") {
			name, _ := pin.attr("name")
			if name == "" {
				return &GraphError{Message: "compact output pin: missing name attribute"}
			}
			n.SetOutput(name, pinValue(pin))
		}
	}

	if _, err := g.AddNode(n); err != nil {
		return &GraphError{Message: "compact document", Err: err}
	}
	return nil
}

func compactSlider(n *graph.Node, slider *element) error {
	for _, key := range []string{"min", "max", "value", "step"} {
		text, ok := slider.attr(key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return &NumberParseError{Text: text, Context: "slider " + key}
		}
		n.Meta.SetNumber(key, f)
	}
	out, ok := slider.attr("output")
	if !ok || out == "" {
		out = "OUT"
	}
	current, _ := n.Meta.Number("value")
	n.SetOutput(out, value.Number(current))
	return nil
}

// pinValue reads a pin's payload from the value attribute, then the
// default attribute, then element text, and interprets it as a number,
// a boolean or text in that order.
func pinValue(pin *element) value.Value {
	text, ok := pin.attr("value")
	if !ok {
		text, ok = pin.attr("default")
	}
	if !ok {
		text = pin.Text
	}
	return scalarFromText(text)
}

func scalarFromText(text string) value.Value {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return value.Null{}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return value.Number(f)
	}
	switch trimmed {
	case "true":
		return value.Boolean(true)
	case "false":
		return value.Boolean(false)
	}
	return value.Text(trimmed)
}

func compactWire(g *graph.Graph, w *element) error {
	fromText, _ := w.attr("from")
	toText, _ := w.attr("to")
	fromNode, fromPin, err := pinRef(fromText)
	if err != nil {
		return err
	}
	toNode, toPin, err := pinRef(toText)
	if err != nil {
		return err
	}
	if err := g.AddWire(graph.Wire{
		FromNode: fromNode, FromPin: fromPin,
		ToNode: toNode, ToPin: toPin,
	}); err != nil {
		return &GraphError{Message: "compact wire", Err: err}
	}
	return nil
}

// pinRef parses a "<node-id>:<pin-name>" reference.
func pinRef(text string) (graph.NodeID, string, error) {
	idText, pin, ok := strings.Cut(text, ":")
	if !ok || pin == "" {
		return 0, "", &IndexParseError{Text: text, Context: "wire endpoint"}
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return 0, "", &IndexParseError{Text: idText, Context: "wire endpoint node id"}
	}
	return graph.NodeID(id), strings.TrimSpace(pin), nil
}
