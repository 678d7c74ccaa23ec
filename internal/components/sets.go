package components

import (
	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/registry"
	"github.com/vk/nodegridgo/internal/value"
)

// SetsModule registers list handling components.
type SetsModule struct{}

func (m *SetsModule) Register(r *registry.Registry) {
	r.Register(&registry.Component{
		Name:     "List Item",
		GUIDs:    []string{"59daf374-bc21-4a5e-8282-5504fb7ae9ae"},
		Names:    []string{"List Item", "Item"},
		Optional: []string{"i", "W"},
		Evaluate: evalListItem,
	})
	r.Register(&registry.Component{
		Name:     "List Length",
		GUIDs:    []string{"1817fd29-20ae-4503-b542-f0fb651e67d7"},
		Names:    []string{"List Length", "Lng"},
		Evaluate: evalListLength,
	})
	r.Register(&registry.Component{
		Name:     "Reverse List",
		GUIDs:    []string{"6ec97ea8-c559-47a2-8d0f-ce80c794d1f4"},
		Names:    []string{"Reverse List", "Rev"},
		Evaluate: evalReverseList,
	})
	r.Register(&registry.Component{
		Name:     "Merge",
		GUIDs:    []string{"86866576-6cc0-485a-9cd2-6f7d493f57f7"},
		Names:    []string{"Merge"},
		Evaluate: evalMerge,
	})
	r.Register(&registry.Component{
		Name:     "Flatten Tree",
		GUIDs:    []string{"f80cfe18-9510-4b89-8301-8e58faf423bb"},
		Names:    []string{"Flatten Tree", "Flatten"},
		Evaluate: evalFlatten,
	})
}

// asList reads v as a sequence; a scalar reads as a one-element list.
func asList(v value.Value) value.List {
	if l, ok := v.(value.List); ok {
		return l
	}
	if isNull(v) {
		return nil
	}
	return value.List{v}
}

func evalListItem(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	list := asList(arg(inputs, 0))
	if len(list) == 0 {
		return nil, registry.Errorf("List Item: empty list")
	}
	idxF, err := numberArg(inputs, 1, 0, "List Item.i")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	wrap := false
	if w := arg(inputs, 2); !isNull(w) {
		wrap, err = value.AsBoolean(w, "List Item.W")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
	}
	idx := int(idxF)
	if wrap {
		idx = ((idx % len(list)) + len(list)) % len(list)
	} else if idx < 0 || idx >= len(list) {
		return nil, registry.Errorf("List Item: index %d out of range [0,%d)", idx, len(list))
	}
	return registry.Outputs{"i": list[idx]}, nil
}

func evalListLength(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	return registry.Outputs{"L": value.Number(len(asList(arg(inputs, 0))))}, nil
}

func evalReverseList(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	list := asList(arg(inputs, 0))
	out := make(value.List, len(list))
	for i, v := range list {
		out[len(list)-1-i] = v
	}
	return registry.Outputs{"L": out}, nil
}

// evalMerge concatenates all inputs in pin order. Fan-in already arrives
// collapsed into lists, so one multi-wired pin merges naturally too.
func evalMerge(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	var out value.List
	for _, v := range inputs {
		out = append(out, asList(v)...)
	}
	return registry.Outputs{"R": out}, nil
}

func evalFlatten(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	var out value.List
	var walk func(value.Value)
	walk = func(v value.Value) {
		if l, ok := v.(value.List); ok {
			for _, child := range l {
				walk(child)
			}
			return
		}
		out = append(out, v)
	}
	walk(arg(inputs, 0))
	return registry.Outputs{"T": out}, nil
}
