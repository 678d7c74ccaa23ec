package components

import (
	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/registry"
	"github.com/vk/nodegridgo/internal/value"
)

// DomainModule registers interval components.
type DomainModule struct{}

func (m *DomainModule) Register(r *registry.Registry) {
	r.Register(&registry.Component{
		Name:     "Construct Domain",
		GUIDs:    []string{"d1a28e95-cf96-4936-bf34-8bf142d731bf"},
		Names:    []string{"Construct Domain", "Dom"},
		Optional: []string{"A", "B"},
		Evaluate: evalConstructDomain,
	})
	r.Register(&registry.Component{
		Name:     "Deconstruct Domain",
		GUIDs:    []string{"825ea536-aebb-41e9-af32-8baeb2ecb590"},
		Names:    []string{"Deconstruct Domain", "DeDomain"},
		Evaluate: evalDeconstructDomain,
	})
	r.Register(&registry.Component{
		Name:     "Construct Domain²",
		GUIDs:    []string{"8555a743-36c1-42b8-abcc-06d9cb94519f"},
		Names:    []string{"Construct Domain²", "Dom²", "Construct Domain 2"},
		Optional: []string{"U", "V"},
		Evaluate: evalConstructDomain2,
	})
	r.Register(&registry.Component{
		Name:     "Remap Numbers",
		GUIDs:    []string{"2fcc2743-8339-4cdf-a046-a1f17439191d"},
		Names:    []string{"Remap Numbers", "ReMap"},
		Optional: []string{"T"},
		Evaluate: evalRemapNumbers,
	})
	r.Register(&registry.Component{
		Name:     "Bounds",
		GUIDs:    []string{"f44b92b0-3b5b-493a-86f4-fd7408c3daf3"},
		Names:    []string{"Bounds", "Bnd"},
		Evaluate: evalBounds,
	})
}

func evalConstructDomain(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	start, err := numberArg(inputs, 0, 0, "Construct Domain.A")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	end, err := numberArg(inputs, 1, 1, "Construct Domain.B")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	return registry.Outputs{"I": value.Interval{Start: start, End: end}}, nil
}

func evalDeconstructDomain(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	d, err := value.AsInterval(arg(inputs, 0), "Deconstruct Domain.I")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	return registry.Outputs{
		"S": value.Number(d.Start),
		"E": value.Number(d.End),
	}, nil
}

func evalConstructDomain2(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	u := value.Interval{Start: 0, End: 1}
	if uv := arg(inputs, 0); !isNull(uv) {
		var err error
		u, err = value.AsInterval(uv, "Construct Domain².U")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
	}
	v := value.Interval{Start: 0, End: 1}
	if vv := arg(inputs, 1); !isNull(vv) {
		var err error
		v, err = value.AsInterval(vv, "Construct Domain².V")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
	}
	return registry.Outputs{"I²": value.Interval2{U: u, V: v}}, nil
}

// evalRemapNumbers maps a value from a source domain to a target domain,
// reporting both the raw mapping and the target-clipped one.
func evalRemapNumbers(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	v, err := value.AsNumber(arg(inputs, 0), "Remap Numbers.V")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	source, err := value.AsInterval(arg(inputs, 1), "Remap Numbers.S")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	target := value.Interval{Start: 0, End: 1}
	if tv := arg(inputs, 2); !isNull(tv) {
		target, err = value.AsInterval(tv, "Remap Numbers.T")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
	}
	if source.Length() == 0 {
		return nil, registry.Errorf("Remap Numbers: degenerate source domain")
	}
	t := (v - source.Start) / (source.End - source.Start)
	mapped := target.Start + t*(target.End-target.Start)
	clipped := mapped
	if clipped < target.Min() {
		clipped = target.Min()
	}
	if clipped > target.Max() {
		clipped = target.Max()
	}
	return registry.Outputs{"R": value.Number(mapped), "C": value.Number(clipped)}, nil
}

// evalBounds returns the smallest interval covering every input scalar.
func evalBounds(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	nums, err := value.Numbers(arg(inputs, 0), "Bounds.N")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	if len(nums) == 0 {
		return nil, registry.Errorf("Bounds: empty input")
	}
	min, max := nums[0], nums[0]
	for _, n := range nums[1:] {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	return registry.Outputs{"I": value.Interval{Start: min, End: max}}, nil
}
