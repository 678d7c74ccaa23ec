package components

import (
	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/registry"
	"github.com/vk/nodegridgo/internal/value"
)

// VectorModule registers point and vector components.
type VectorModule struct{}

func (m *VectorModule) Register(r *registry.Registry) {
	r.Register(&registry.Component{
		Name:     "Construct Point",
		GUIDs:    []string{"3581f42a-9592-4549-bd6b-1c0fc39d067b"},
		Names:    []string{"Construct Point", "Pt XYZ"},
		Optional: []string{"X", "Y", "Z"},
		Evaluate: evalConstructPoint,
	})
	r.Register(&registry.Component{
		Name:     "Deconstruct Point",
		GUIDs:    []string{"9abae6b7-fa1d-448c-9209-4a8155345841"},
		Names:    []string{"Deconstruct Point", "pDecon"},
		Evaluate: evalDeconstructPoint,
	})
	r.Register(&registry.Component{
		Name:     "Vector XYZ",
		GUIDs:    []string{"56b92eab-d121-43f7-94d3-6cd8f0ddead8"},
		Names:    []string{"Vector XYZ", "Vec"},
		Optional: []string{"X", "Y", "Z"},
		Evaluate: evalVectorXYZ,
	})
	r.Register(&registry.Component{
		Name:     "Unit X",
		GUIDs:    []string{"79f9fbb3-8f1d-4d9a-88a9-f7961b1012cd"},
		Names:    []string{"Unit X", "X"},
		Optional: []string{"F"},
		Evaluate: unitVector("Unit X", value.Vector{X: 1}),
	})
	r.Register(&registry.Component{
		Name:     "Unit Y",
		GUIDs:    []string{"d3d195ea-2d59-4ffa-90b1-8b7ff3369f69"},
		Names:    []string{"Unit Y", "Y"},
		Optional: []string{"F"},
		Evaluate: unitVector("Unit Y", value.Vector{Y: 1}),
	})
	r.Register(&registry.Component{
		Name:     "Unit Z",
		GUIDs:    []string{"9103c240-a6a9-4223-9b42-dbd19bf38e2b"},
		Names:    []string{"Unit Z", "Z"},
		Optional: []string{"F"},
		Evaluate: unitVector("Unit Z", value.Vector{Z: 1}),
	})
	r.Register(&registry.Component{
		Name:     "Vector Length",
		GUIDs:    []string{"675e31bf-1775-48d7-bb8d-76b77786dd53"},
		Names:    []string{"Vector Length", "VLen"},
		Evaluate: evalVectorLength,
	})
	r.Register(&registry.Component{
		Name:     "Amplitude",
		GUIDs:    []string{"2ab17f9a-d852-4405-80e1-938c5e57e78d"},
		Names:    []string{"Amplitude", "Amp"},
		Evaluate: evalAmplitude,
	})
	r.Register(&registry.Component{
		Name:     "Dot Product",
		GUIDs:    []string{"43b9ea8f-f772-40f2-9880-011a9c3cbbb0"},
		Names:    []string{"Dot Product", "DProd"},
		Evaluate: evalDotProduct,
	})
	r.Register(&registry.Component{
		Name:     "Cross Product",
		GUIDs:    []string{"2a5cfb31-028a-4b34-b4e1-9b20ae15312e"},
		Names:    []string{"Cross Product", "XProd"},
		Evaluate: evalCrossProduct,
	})
	r.Register(&registry.Component{
		Name:     "Distance",
		GUIDs:    []string{"93b8e93d-f932-402c-b435-84be04d87666"},
		Names:    []string{"Distance", "Dist"},
		Evaluate: evalDistance,
	})
	r.Register(&registry.Component{
		Name:     "Move",
		GUIDs:    []string{"e9eb1dcf-92f6-4d4d-84ae-96222d60f56b"},
		Names:    []string{"Move"},
		Evaluate: evalMove,
	})
}

func evalConstructPoint(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	x, err := numberArg(inputs, 0, 0, "Construct Point.X")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	y, err := numberArg(inputs, 1, 0, "Construct Point.Y")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	z, err := numberArg(inputs, 2, 0, "Construct Point.Z")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	return registry.Outputs{"Pt": value.Point{X: x, Y: y, Z: z}}, nil
}

func evalDeconstructPoint(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	p, err := value.AsPoint(arg(inputs, 0), "Deconstruct Point.P")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	return registry.Outputs{
		"X": value.Number(p.X),
		"Y": value.Number(p.Y),
		"Z": value.Number(p.Z),
	}, nil
}

func evalVectorXYZ(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	x, err := numberArg(inputs, 0, 0, "Vector XYZ.X")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	y, err := numberArg(inputs, 1, 0, "Vector XYZ.Y")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	z, err := numberArg(inputs, 2, 0, "Vector XYZ.Z")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	v := value.Vector{X: x, Y: y, Z: z}
	return registry.Outputs{"V": v, "L": value.Number(v.Length())}, nil
}

func unitVector(name string, axis value.Vector) registry.EvalFunc {
	return func(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
		factor, err := numberArg(inputs, 0, 1, name+".F")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		return registry.Outputs{"V": axis.Scale(factor)}, nil
	}
}

func evalVectorLength(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	v, err := value.AsVector(arg(inputs, 0), "Vector Length.V")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	return registry.Outputs{"L": value.Number(v.Length())}, nil
}

// evalAmplitude scales a vector to the requested length.
func evalAmplitude(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	v, err := value.AsVector(arg(inputs, 0), "Amplitude.V")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	amp, err := value.AsNumber(arg(inputs, 1), "Amplitude.A")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	if v.Length() == 0 {
		return nil, registry.Errorf("Amplitude: zero vector has no direction")
	}
	return registry.Outputs{"V": v.Unit().Scale(amp)}, nil
}

func evalDotProduct(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	a, err := value.AsVector(arg(inputs, 0), "Dot Product.A")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	b, err := value.AsVector(arg(inputs, 1), "Dot Product.B")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	return registry.Outputs{"D": value.Number(a.Dot(b))}, nil
}

func evalCrossProduct(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	a, err := value.AsVector(arg(inputs, 0), "Cross Product.A")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	b, err := value.AsVector(arg(inputs, 1), "Cross Product.B")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	cross := a.Cross(b)
	return registry.Outputs{"V": cross, "L": value.Number(cross.Length())}, nil
}

func evalDistance(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	a, err := value.AsPoint(arg(inputs, 0), "Distance.A")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	b, err := value.AsPoint(arg(inputs, 1), "Distance.B")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	return registry.Outputs{"D": value.Number(b.Sub(a).Length())}, nil
}

// evalMove translates geometry by a motion vector, descending into lists.
func evalMove(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	motion, err := value.AsVector(arg(inputs, 1), "Move.T")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	moved, err := translate(arg(inputs, 0), motion)
	if err != nil {
		return nil, err
	}
	return registry.Outputs{"G": moved, "T": motion}, nil
}

func translate(v value.Value, by value.Vector) (value.Value, error) {
	switch g := v.(type) {
	case value.Point:
		return g.Add(by), nil
	case value.Vector:
		return g, nil
	case value.Line:
		return value.Line{P1: g.P1.Add(by), P2: g.P2.Add(by)}, nil
	case value.Plane:
		moved := g
		moved.Origin = g.Origin.Add(by)
		return moved, nil
	case value.Surface:
		moved := value.Surface{Vertices: make([]value.Point, len(g.Vertices)), Faces: g.Faces}
		for i, p := range g.Vertices {
			moved.Vertices[i] = p.Add(by)
		}
		return moved, nil
	case value.Mesh:
		moved := g
		moved.Vertices = make([]value.Point, len(g.Vertices))
		for i, p := range g.Vertices {
			moved.Vertices[i] = p.Add(by)
		}
		return moved, nil
	case value.List:
		out := make(value.List, len(g))
		for i, child := range g {
			moved, err := translate(child, by)
			if err != nil {
				return nil, err
			}
			out[i] = moved
		}
		return out, nil
	}
	return nil, registry.Errorf("Move: cannot translate %s", v.Kind())
}
