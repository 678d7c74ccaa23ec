package ghxml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/nodegridgo/internal/components"
	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/value"
)

// outputRef names the pin a dangling source reference resolves to.
type outputRef struct {
	node graph.NodeID
	pin  string
}

// pendingWire is a source reference recorded while nodes are still being
// created; it is resolved once every instance guid is known.
type pendingWire struct {
	target graph.NodeID
	pin    string
	source string
}

type archiveState struct {
	g       *graph.Graph
	sources map[string]outputRef
	pending []pendingWire
}

// parseArchive reads the chunk-tree <archive> shape. Chunk and item names
// are matched case-insensitively throughout.
func parseArchive(root *element) (*graph.Graph, error) {
	definition := findChunk(root, "Definition")
	if definition == nil {
		return nil, &GraphError{Message: "archive: missing Definition chunk"}
	}
	objects := findChunk(definition, "DefinitionObjects")
	if objects == nil {
		return nil, &GraphError{Message: "archive: missing DefinitionObjects chunk"}
	}

	st := &archiveState{
		g:       graph.New(),
		sources: make(map[string]outputRef),
	}
	for _, obj := range chunkChildren(objects) {
		if !strings.EqualFold(chunkName(obj), "Object") {
			continue
		}
		if err := st.addObject(obj); err != nil {
			return nil, err
		}
	}

	for _, w := range st.pending {
		ref, ok := st.sources[graph.NormalizeGUID(w.source)]
		if !ok {
			return nil, &GraphError{Message: fmt.Sprintf("archive: unknown source guid %q", w.source)}
		}
		if err := st.g.AddWire(graph.Wire{
			FromNode: ref.node, FromPin: ref.pin,
			ToNode: w.target, ToPin: w.pin,
		}); err != nil {
			return nil, &GraphError{Message: "archive wire", Err: err}
		}
	}
	return st.g, nil
}

func (st *archiveState) addObject(obj *element) error {
	container := findChunk(obj, "Container")
	if container == nil {
		return &GraphError{Message: "archive object: missing Container chunk"}
	}

	n := graph.NewNode()
	n.GUID, _ = itemText(obj, "GUID")
	n.Name, _ = itemText(container, "Name")
	n.Nickname, _ = itemText(container, "NickName")
	instance, _ := itemText(container, "InstanceGuid")

	var inputIndex, outputIndex int
	var firstOutput string
	var outputRefs []struct {
		guid string
		pin  string
	}
	for _, c := range chunkChildren(container) {
		switch {
		case strings.EqualFold(chunkName(c), "param_input"):
			if err := archiveInput(n, c, inputIndex); err != nil {
				return err
			}
			for _, src := range itemTexts(c, "Source") {
				st.pending = append(st.pending, pendingWire{
					target: graph.Unassigned,
					pin:    inputPinName(c, inputIndex),
					source: src,
				})
			}
			inputIndex++
		case strings.EqualFold(chunkName(c), "param_output"):
			pin := outputPinName(c, outputIndex)
			n.SetOutput(pin, value.Null{})
			if firstOutput == "" {
				firstOutput = pin
			}
			if guid, ok := itemText(c, "InstanceGuid"); ok {
				outputRefs = append(outputRefs, struct {
					guid string
					pin  string
				}{guid, pin})
			}
			outputIndex++
		}
	}

	guid := graph.NormalizeGUID(n.GUID)
	if isSliderGUID(guid) {
		if err := archiveSlider(n, container); err != nil {
			return err
		}
		if firstOutput == "" {
			firstOutput = "OUT"
		}
	}
	if guid == components.PanelGUID {
		archivePanel(n, container)
		if firstOutput == "" {
			firstOutput = "Output"
		}
	}

	id, err := st.g.AddNode(n)
	if err != nil {
		return &GraphError{Message: "archive object", Err: err}
	}

	// Pending wires for this node were queued before its id existed.
	for i := range st.pending {
		if st.pending[i].target == graph.Unassigned {
			st.pending[i].target = id
		}
	}
	if instance != "" {
		st.sources[graph.NormalizeGUID(instance)] = outputRef{node: id, pin: firstOutput}
	}
	for _, ref := range outputRefs {
		st.sources[graph.NormalizeGUID(ref.guid)] = outputRef{node: id, pin: ref.pin}
	}
	return nil
}

func isSliderGUID(guid string) bool {
	for _, g := range components.SliderGUIDs {
		if g == guid {
			return true
		}
	}
	return false
}

func inputPinName(c *element, index int) string {
	for _, key := range []string{"NickName", "Name", "Description"} {
		if v, ok := itemText(c, key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return fmt.Sprintf("in%d", index)
}

func outputPinName(c *element, index int) string {
	for _, key := range []string{"NickName", "Name", "Description"} {
		if v, ok := itemText(c, key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return fmt.Sprintf("out%d", index)
}

func archiveInput(n *graph.Node, c *element, index int) error {
	pin := inputPinName(c, index)
	def := value.Value(value.Null{})
	if item := persistentItem(c); item != nil {
		v, err := persistentValue(item, pin)
		if err != nil {
			return err
		}
		def = v
	}
	n.DeclareInput(pin, def)
	return nil
}

// persistentItem digs PersistentData > Branch > Item > item.
func persistentItem(c *element) *element {
	pd := findChunk(c, "PersistentData")
	if pd == nil {
		return nil
	}
	branch := findChunk(pd, "Branch")
	if branch == nil {
		return nil
	}
	itemChunk := findChunk(branch, "Item")
	if itemChunk == nil {
		return nil
	}
	items := itemsOf(itemChunk)
	if len(items) == 0 {
		return nil
	}
	return items[0]
}

// persistentValue interprets a persistent data item from its type_name
// attribute. Numbers accept both '.' and ',' decimal separators.
func persistentValue(item *element, ctx string) (value.Value, error) {
	typeName, _ := item.attr("type_name")
	typeName = strings.ToLower(typeName)
	switch {
	case strings.Contains(typeName, "point"):
		x, y, z, err := coordinates(item, ctx)
		if err != nil {
			return nil, err
		}
		return value.Point{X: x, Y: y, Z: z}, nil
	case strings.Contains(typeName, "vector"):
		x, y, z, err := coordinates(item, ctx)
		if err != nil {
			return nil, err
		}
		return value.Vector{X: x, Y: y, Z: z}, nil
	case strings.Contains(typeName, "double"),
		strings.Contains(typeName, "single"),
		strings.Contains(typeName, "int"),
		strings.Contains(typeName, "number"):
		f, err := parseDecimal(item.Text)
		if err != nil {
			return nil, &NumberParseError{Text: item.Text, Context: ctx}
		}
		return value.Number(f), nil
	case strings.Contains(typeName, "bool"):
		return value.Boolean(strings.EqualFold(strings.TrimSpace(item.Text), "true")), nil
	default:
		return value.Text(strings.TrimSpace(item.Text)), nil
	}
}

// coordinates reads a point or vector payload, either from X/Y/Z child
// elements or from semicolon-separated text.
func coordinates(item *element, ctx string) (x, y, z float64, err error) {
	axes := [3]string{"X", "Y", "Z"}
	var out [3]float64
	if item.child("X") != nil || item.child("x") != nil {
		for i, axis := range axes {
			c := item.child(axis)
			if c == nil {
				continue
			}
			f, perr := parseDecimal(c.Text)
			if perr != nil {
				return 0, 0, 0, &NumberParseError{Text: c.Text, Context: ctx + "." + axis}
			}
			out[i] = f
		}
		return out[0], out[1], out[2], nil
	}
	parts := strings.Split(strings.Trim(strings.TrimSpace(item.Text), "{}"), ";")
	for i := 0; i < len(parts) && i < 3; i++ {
		f, perr := parseDecimal(parts[i])
		if perr != nil {
			return 0, 0, 0, &NumberParseError{Text: parts[i], Context: ctx + "." + axes[i]}
		}
		out[i] = f
	}
	return out[0], out[1], out[2], nil
}

func parseDecimal(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.ReplaceAll(trimmed, ",", ".")
	return strconv.ParseFloat(trimmed, 64)
}

// archiveSlider collects slider metadata from nested chunks whose names
// contain "slider".
func archiveSlider(n *graph.Node, container *element) error {
	keys := map[string]string{
		"value":     "value",
		"min":       "min",
		"max":       "max",
		"step":      "step",
		"increment": "step",
		"interval":  "step",
	}
	var walk func(c *element) error
	walk = func(c *element) error {
		if strings.Contains(strings.ToLower(chunkName(c)), "slider") {
			for _, item := range itemsOf(c) {
				name, _ := item.attr("name")
				meta, ok := keys[strings.ToLower(strings.TrimSpace(name))]
				if !ok {
					continue
				}
				f, err := parseDecimal(item.Text)
				if err != nil {
					return &NumberParseError{Text: item.Text, Context: "slider " + name}
				}
				n.Meta.SetNumber(meta, f)
			}
		}
		for _, child := range chunkChildren(c) {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(container); err != nil {
		return err
	}
	if _, ok := n.Meta.Number("step"); !ok {
		min, hasMin := n.Meta.Number("min")
		max, hasMax := n.Meta.Number("max")
		if hasMin && hasMax && min > 0 && max > 0 {
			n.Meta.SetNumber("step", (max-min)/100)
		} else {
			n.Meta.SetNumber("step", 0.1)
		}
	}
	current, ok := n.Meta.Number("value")
	if !ok {
		current, _ = n.Meta.Number("min")
	}
	n.SetOutput("OUT", value.Number(current))
	return nil
}

// archivePanel republishes the panel's user text as meta and as the
// Output pin.
func archivePanel(n *graph.Node, container *element) {
	var text string
	var found bool
	var walk func(c *element)
	walk = func(c *element) {
		if found {
			return
		}
		if v, ok := itemText(c, "UserText"); ok {
			text, found = v, true
			return
		}
		for _, child := range chunkChildren(c) {
			walk(child)
		}
	}
	walk(container)
	if found {
		n.Meta.SetText("usertext", text)
		n.SetOutput("Output", value.Text(text))
	} else {
		n.SetOutput("Output", value.Null{})
	}
}

// Chunk-tree helpers. A chunk is a <chunk name="..."> element whose
// children live under <chunks> and whose items live under <items>;
// direct <chunk>/<item> children are tolerated too.

func chunkName(c *element) string {
	name, _ := c.attr("name")
	return name
}

func chunkChildren(c *element) []*element {
	var out []*element
	if wrapper := c.child("chunks"); wrapper != nil {
		out = append(out, wrapper.children("chunk")...)
	}
	out = append(out, c.children("chunk")...)
	return out
}

func itemsOf(c *element) []*element {
	var out []*element
	if wrapper := c.child("items"); wrapper != nil {
		out = append(out, wrapper.children("item")...)
	}
	out = append(out, c.children("item")...)
	return out
}

func findChunk(c *element, name string) *element {
	for _, child := range chunkChildren(c) {
		if strings.EqualFold(chunkName(child), name) {
			return child
		}
	}
	return nil
}

func itemText(c *element, name string) (string, bool) {
	for _, item := range itemsOf(c) {
		if n, ok := item.attr("name"); ok && strings.EqualFold(n, name) {
			return strings.TrimSpace(item.Text), true
		}
	}
	return "", false
}

func itemTexts(c *element, name string) []string {
	var out []string
	for _, item := range itemsOf(c) {
		if n, ok := item.attr("name"); ok && strings.EqualFold(n, name) {
			out = append(out, strings.TrimSpace(item.Text))
		}
	}
	return out
}
