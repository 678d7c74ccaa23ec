package components

import (
	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/registry"
	"github.com/vk/nodegridgo/internal/value"
)

// CurveModule registers line construction and interrogation.
type CurveModule struct{}

func (m *CurveModule) Register(r *registry.Registry) {
	r.Register(&registry.Component{
		Name:     "Line",
		GUIDs:    []string{"4c4e56eb-2e6e-43a2-9d16-04dbd8c28aeb"},
		Names:    []string{"Line", "Ln"},
		Evaluate: evalLine,
	})
	r.Register(&registry.Component{
		Name:     "Line SDL",
		GUIDs:    []string{"4c619bc9-39fd-4717-82a6-1e07ea237bbe"},
		Names:    []string{"Line SDL", "SDL"},
		Optional: []string{"L"},
		Evaluate: evalLineSDL,
	})
	r.Register(&registry.Component{
		Name:     "End Points",
		GUIDs:    []string{"11bbd48b-bb0a-4f1b-8167-fa297590390d"},
		Names:    []string{"End Points", "End"},
		Evaluate: evalEndPoints,
	})
	r.Register(&registry.Component{
		Name:     "Polyline Length",
		GUIDs:    []string{"5ddcc800-3f79-4d5c-8a95-da4632e2d4e2"},
		Names:    []string{"Polyline Length", "PLen"},
		Evaluate: evalPolylineLength,
	})
}

// evalLine builds a segment between two point-coercible inputs. Numbers
// read as points on the Z axis, matching the numeric-to-point leniency
// of the coercion layer.
func evalLine(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	a, err := linePoint(arg(inputs, 0), "Line.A")
	if err != nil {
		return nil, err
	}
	b, err := linePoint(arg(inputs, 1), "Line.B")
	if err != nil {
		return nil, err
	}
	return registry.Outputs{"L": value.Line{P1: a, P2: b}}, nil
}

// linePoint coerces v as a point, additionally reading a bare scalar n as
// the point (0,0,n).
func linePoint(v value.Value, ctx string) (value.Point, error) {
	if n, err := value.AsNumber(v, ctx); err == nil {
		if _, isPoint := v.(value.Point); !isPoint {
			if _, isVector := v.(value.Vector); !isVector {
				return value.Point{Z: n}, nil
			}
		}
	}
	p, err := value.AsPoint(v, ctx)
	if err != nil {
		return value.Point{}, registry.Errorf("%s", err.Error())
	}
	return p, nil
}

func evalLineSDL(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	start, err := value.AsPoint(arg(inputs, 0), "Line SDL.S")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	direction, err := value.AsVector(arg(inputs, 1), "Line SDL.D")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	if direction.Length() == 0 {
		return nil, registry.Errorf("Line SDL: zero direction")
	}
	length, err := numberArg(inputs, 2, direction.Length(), "Line SDL.L")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	end := start.Add(direction.Unit().Scale(length))
	return registry.Outputs{"L": value.Line{P1: start, P2: end}}, nil
}

func evalEndPoints(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	line, err := value.AsLine(arg(inputs, 0), "End Points.C")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	return registry.Outputs{"S": line.P1, "E": line.P2}, nil
}

// evalPolylineLength sums the segment lengths of any point sequence.
func evalPolylineLength(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	pts, err := value.Polyline(arg(inputs, 0), "Polyline Length.P")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i].Sub(pts[i-1]).Length()
	}
	return registry.Outputs{"L": value.Number(total)}, nil
}
