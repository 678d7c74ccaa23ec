package components

import (
	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/registry"
	"github.com/vk/nodegridgo/internal/value"
)

// PlaneModule registers frame construction and deconstruction.
type PlaneModule struct{}

func (m *PlaneModule) Register(r *registry.Registry) {
	r.Register(&registry.Component{
		Name:     "XY Plane",
		GUIDs:    []string{"17b7152b-d30d-4d50-b9ef-c598dadc54a3"},
		Names:    []string{"XY Plane", "XY"},
		Optional: []string{"O"},
		Evaluate: evalXYPlane,
	})
	r.Register(&registry.Component{
		Name:     "Construct Plane",
		GUIDs:    []string{"bc3e379e-7206-4e7b-b63a-ff61f4b38a3e"},
		Names:    []string{"Construct Plane", "Pl"},
		Optional: []string{"O", "X", "Y"},
		Evaluate: evalConstructPlane,
	})
	r.Register(&registry.Component{
		Name:     "Deconstruct Plane",
		GUIDs:    []string{"3cd2949b-4ea8-4ffb-a70c-5c380f9f46ea"},
		Names:    []string{"Deconstruct Plane", "DePlane"},
		Evaluate: evalDeconstructPlane,
	})
	r.Register(&registry.Component{
		Name:     "Plane Normal",
		GUIDs:    []string{"cfb6b17f-ca82-4f5d-b604-d4f69f569de3"},
		Names:    []string{"Plane Normal", "Pl N"},
		Optional: []string{"O"},
		Evaluate: evalPlaneNormal,
	})
}

func evalXYPlane(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	frame := value.WorldXY()
	if o := arg(inputs, 0); !isNull(o) {
		origin, err := value.AsPoint(o, "XY Plane.O")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		frame.Origin = origin
	}
	return registry.Outputs{"P": frame}, nil
}

// evalConstructPlane builds a frame from an origin and two axis vectors,
// orthogonalizing the Y axis against X.
func evalConstructPlane(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	origin := value.Point{}
	if o := arg(inputs, 0); !isNull(o) {
		var err error
		origin, err = value.AsPoint(o, "Construct Plane.O")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
	}
	x := value.Vector{X: 1}
	if xv := arg(inputs, 1); !isNull(xv) {
		var err error
		x, err = value.AsVector(xv, "Construct Plane.X")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
	}
	y := value.Vector{Y: 1}
	if yv := arg(inputs, 2); !isNull(yv) {
		var err error
		y, err = value.AsVector(yv, "Construct Plane.Y")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
	}
	frame, err := value.PlaneFromPoints(origin, origin.Add(x), origin.Add(y))
	if err != nil {
		return nil, registry.Errorf("Construct Plane: %s", err.Error())
	}
	return registry.Outputs{"Pl": frame}, nil
}

func evalDeconstructPlane(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	frame, err := value.AsPlane(arg(inputs, 0), "Deconstruct Plane.P")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	return registry.Outputs{
		"O": frame.Origin,
		"X": frame.XAxis,
		"Y": frame.YAxis,
		"Z": frame.ZAxis,
	}, nil
}

func evalPlaneNormal(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	origin := value.Point{}
	if o := arg(inputs, 0); !isNull(o) {
		var err error
		origin, err = value.AsPoint(o, "Plane Normal.O")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
	}
	normal, err := value.AsVector(arg(inputs, 1), "Plane Normal.Z")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	frame, err := value.PlaneFromNormal(origin, normal)
	if err != nil {
		return nil, registry.Errorf("Plane Normal: %s", err.Error())
	}
	return registry.Outputs{"P": frame}, nil
}
