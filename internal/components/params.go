package components

import (
	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/registry"
	"github.com/vk/nodegridgo/internal/value"
)

// Well-known parameter ids. The document parsers special-case sliders and
// panels, so these are shared rather than private to the tables below.
var (
	// SliderGUIDs are the two ids slider objects appear under in the
	// wild; both denote the same component.
	SliderGUIDs = []string{
		"57da07bd-ecab-415d-9d86-af36d7073abc",
		"2e78987b-9dfb-42a2-8b76-3923ac8bd91a",
	}

	// PanelGUID is the id of the text panel.
	PanelGUID = "59e0b89a-e487-49f8-bab8-b5bab16be14c"
)

// ParamsModule registers the holder components: sliders, panels and the
// typed passthrough parameters.
type ParamsModule struct{}

func (m *ParamsModule) Register(r *registry.Registry) {
	r.Register(&registry.Component{
		Name:     "Number Slider",
		GUIDs:    SliderGUIDs,
		Names:    []string{"Number Slider", "Slider"},
		Evaluate: evalSlider,
	})
	r.Register(&registry.Component{
		Name:     "Panel",
		GUIDs:    []string{PanelGUID},
		Names:    []string{"Panel", "Pnl"},
		Evaluate: evalPanel,
	})
	r.Register(&registry.Component{
		Name:     "Number",
		GUIDs:    []string{"3e8ca6be-fda8-4aaf-b5c0-3c54c8bb7312"},
		Names:    []string{"Number", "Num"},
		Optional: []string{"Num"},
		Evaluate: passthrough("Num", func(v value.Value) (value.Value, error) {
			n, err := value.AsNumber(v, "Number")
			if err != nil {
				return nil, err
			}
			return value.Number(n), nil
		}),
	})
	r.Register(&registry.Component{
		Name:     "Point",
		GUIDs:    []string{"fbac3e32-f100-4292-8692-77240a42fd1a"},
		Names:    []string{"Point", "Pt"},
		Optional: []string{"Pt"},
		Evaluate: passthrough("Pt", func(v value.Value) (value.Value, error) {
			p, err := value.AsPoint(v, "Point")
			if err != nil {
				return nil, err
			}
			return p, nil
		}),
	})
	r.Register(&registry.Component{
		Name:     "Boolean Toggle",
		GUIDs:    []string{"2e78987b-b2a5-4c56-a0fa-c2e1e5e1c0c7"},
		Names:    []string{"Boolean Toggle", "Toggle", "Boolean"},
		Optional: []string{"Bool"},
		Evaluate: passthrough("Bool", func(v value.Value) (value.Value, error) {
			b, err := value.AsBoolean(v, "Boolean Toggle")
			if err != nil {
				return nil, err
			}
			return value.Boolean(b), nil
		}),
	})
	r.Register(&registry.Component{
		Name:     "Text",
		GUIDs:    []string{"3ede854e-c753-40eb-84cb-b48008f14fd4"},
		Names:    []string{"Text", "Txt"},
		Optional: []string{"Txt"},
		Evaluate: passthrough("Txt", func(v value.Value) (value.Value, error) {
			s, err := value.AsText(v, "Text")
			if err != nil {
				return nil, err
			}
			return value.Text(s), nil
		}),
	})
}

// evalSlider reads the current value from metadata; the parsers store it
// there together with the bounds.
func evalSlider(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	current, ok := meta.Number("value")
	if !ok {
		if min, hasMin := meta.Number("min"); hasMin {
			current = min
		}
	}
	return registry.Outputs{"OUT": value.Number(current)}, nil
}

// evalPanel republishes the user text stored in metadata.
func evalPanel(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	text, ok := meta.Text("usertext")
	if !ok {
		return registry.Outputs{"Output": value.Null{}}, nil
	}
	return registry.Outputs{"Output": value.Text(text)}, nil
}

// passthrough builds the evaluate function of a typed parameter: coerce
// the single input and republish it under the parameter's pin. Absent
// input passes Null through untouched.
func passthrough(pin string, coerce func(value.Value) (value.Value, error)) registry.EvalFunc {
	return func(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
		in := arg(inputs, 0)
		if isNull(in) {
			return registry.Outputs{pin: value.Null{}}, nil
		}
		out, err := coerce(in)
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		return registry.Outputs{pin: out}, nil
	}
}
