package components

import (
	"math"
	"time"

	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/registry"
	"github.com/vk/nodegridgo/internal/value"
)

// DisplayModule registers annotation, color, material, date and complex
// number components.
type DisplayModule struct{}

func (m *DisplayModule) Register(r *registry.Registry) {
	r.Register(&registry.Component{
		Name:     "Colour RGB",
		GUIDs:    []string{"9c53bac0-ba66-40bd-8154-ce9829b9db1a"},
		Names:    []string{"Colour RGB", "RGB"},
		Optional: []string{"R", "G", "B"},
		Evaluate: evalColourRGB,
	})
	r.Register(&registry.Component{
		Name:     "Colour RGBA",
		GUIDs:    []string{"f99640f6-23fd-4be2-8d04-6e2bdee14639"},
		Names:    []string{"Colour RGBA", "RGBA"},
		Optional: []string{"R", "G", "B", "A"},
		Evaluate: evalColourRGBA,
	})
	r.Register(&registry.Component{
		Name:     "Create Material",
		GUIDs:    []string{"76975309-75a6-446a-afed-f8653720a9f2"},
		Names:    []string{"Create Material", "Material"},
		Optional: []string{"Kd", "Ks", "Ke", "T", "S"},
		Evaluate: evalCreateMaterial,
	})
	r.Register(&registry.Component{
		Name:     "Text Tag",
		GUIDs:    []string{"3b220754-4114-4170-b6c3-b286b86ed524"},
		Names:    []string{"Text Tag", "Tag"},
		Optional: []string{"S", "C"},
		Evaluate: evalTextTag,
	})
	r.Register(&registry.Component{
		Name:     "Dot",
		GUIDs:    []string{"6b1bd8b2-47a4-4aa6-a471-3fd91c62a486"},
		Names:    []string{"Dot", "Symbol Dot"},
		Optional: []string{"S", "R", "C"},
		Evaluate: evalDot,
	})
	r.Register(&registry.Component{
		Name:     "Construct Date",
		GUIDs:    []string{"31534405-6573-4be2-ab72-59b8eb14d6b2"},
		Names:    []string{"Construct Date", "Date"},
		Optional: []string{"h", "m", "s"},
		Evaluate: evalConstructDate,
	})
	r.Register(&registry.Component{
		Name:     "Create Complex",
		GUIDs:    []string{"d07d2e5b-f9b9-41a8-bbb7-a9f9e73be83c"},
		Names:    []string{"Create Complex", "Complex"},
		Optional: []string{"i"},
		Evaluate: evalCreateComplex,
	})
	r.Register(&registry.Component{
		Name:     "Deconstruct Complex",
		GUIDs:    []string{"ab8a1a72-0eb4-4f61-9218-9cf06ed62749"},
		Names:    []string{"Deconstruct Complex", "DeComplex"},
		Evaluate: evalDeconstructComplex,
	})
	r.Register(&registry.Component{
		Name:     "Complex Modulus",
		GUIDs:    []string{"b6d7dd23-ac77-4eab-aa04-58aa6d0b65fb"},
		Names:    []string{"Complex Modulus", "CMod"},
		Evaluate: evalComplexModulus,
	})
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func colorChannel(inputs []value.Value, i int, def float64, ctx string) (float64, error) {
	n, err := numberArg(inputs, i, def, ctx)
	if err != nil {
		return 0, registry.Errorf("%s", err.Error())
	}
	return clamp01(n), nil
}

func evalColourRGB(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	r, err := colorChannel(inputs, 0, 0, "Colour RGB.R")
	if err != nil {
		return nil, err
	}
	g, err := colorChannel(inputs, 1, 0, "Colour RGB.G")
	if err != nil {
		return nil, err
	}
	b, err := colorChannel(inputs, 2, 0, "Colour RGB.B")
	if err != nil {
		return nil, err
	}
	return registry.Outputs{"C": value.Color{R: r, G: g, B: b, A: 1}}, nil
}

func evalColourRGBA(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	r, err := colorChannel(inputs, 0, 0, "Colour RGBA.R")
	if err != nil {
		return nil, err
	}
	g, err := colorChannel(inputs, 1, 0, "Colour RGBA.G")
	if err != nil {
		return nil, err
	}
	b, err := colorChannel(inputs, 2, 0, "Colour RGBA.B")
	if err != nil {
		return nil, err
	}
	a, err := colorChannel(inputs, 3, 1, "Colour RGBA.A")
	if err != nil {
		return nil, err
	}
	return registry.Outputs{"C": value.Color{R: r, G: g, B: b, A: a}}, nil
}

func evalCreateMaterial(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	mat := value.Material{
		Diffuse:  value.Color{R: 0.5, G: 0.5, B: 0.5, A: 1},
		Specular: value.Color{R: 1, G: 1, B: 1, A: 1},
		Shine:    0.5,
	}
	if d := arg(inputs, 0); !isNull(d) {
		c, err := value.AsColor(d, "Create Material.Kd")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		mat.Diffuse = c
	}
	if s := arg(inputs, 1); !isNull(s) {
		c, err := value.AsColor(s, "Create Material.Ks")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		mat.Specular = c
	}
	if e := arg(inputs, 2); !isNull(e) {
		c, err := value.AsColor(e, "Create Material.Ke")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		mat.Emission = c
	}
	transparency, err := numberArg(inputs, 3, 0, "Create Material.T")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	mat.Transparency = clamp01(transparency)
	shine, err := numberArg(inputs, 4, 0.5, "Create Material.S")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	mat.Shine = clamp01(shine)
	return registry.Outputs{"M": mat}, nil
}

func evalTextTag(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	frame, err := value.AsPlane(arg(inputs, 0), "Text Tag.L")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	text, err := value.AsText(arg(inputs, 1), "Text Tag.T")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	size, err := numberArg(inputs, 2, 1, "Text Tag.S")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	tag := value.Tag{Plane: frame, Text: value.Text(text), Size: size}
	if c := arg(inputs, 3); !isNull(c) {
		col, err := value.AsColor(c, "Text Tag.C")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		tag.Color = &col
	}
	return registry.Outputs{"Tag": tag}, nil
}

func evalDot(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	style, err := value.AsText(arg(inputs, 0), "Dot.St")
	if err != nil {
		style = "circle"
	}
	size, err := numberArg(inputs, 1, 1, "Dot.S")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	rotation, err := numberArg(inputs, 2, 0, "Dot.R")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	sym := value.Symbol{
		Style:    value.Text(style),
		Primary:  size,
		Rotation: rotation,
		Fill:     value.Color{R: 1, G: 1, B: 1, A: 1},
		Width:    1,
	}
	if c := arg(inputs, 3); !isNull(c) {
		col, err := value.AsColor(c, "Dot.C")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		sym.Fill = col
	}
	return registry.Outputs{"S": sym}, nil
}

func evalConstructDate(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	year, err := value.AsNumber(arg(inputs, 0), "Construct Date.Y")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	month, err := value.AsNumber(arg(inputs, 1), "Construct Date.M")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	day, err := value.AsNumber(arg(inputs, 2), "Construct Date.D")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	hour, err := numberArg(inputs, 3, 0, "Construct Date.h")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	minute, err := numberArg(inputs, 4, 0, "Construct Date.m")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	second, err := numberArg(inputs, 5, 0, "Construct Date.s")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	secWhole, secFrac := math.Modf(second)
	t := time.Date(int(year), time.Month(int(month)), int(day),
		int(hour), int(minute), int(secWhole), int(secFrac*1e9), time.UTC)
	return registry.Outputs{"D": value.DateTime{Time: t}}, nil
}

func evalCreateComplex(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	re, err := value.AsNumber(arg(inputs, 0), "Create Complex.R")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	im, err := numberArg(inputs, 1, 0, "Create Complex.i")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	return registry.Outputs{"C": value.Complex{Re: re, Im: im}}, nil
}

func evalDeconstructComplex(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	c, ok := arg(inputs, 0).(value.Complex)
	if !ok {
		return nil, registry.Errorf("Deconstruct Complex: cannot read Complex from %s", arg(inputs, 0).Kind())
	}
	return registry.Outputs{"R": value.Number(c.Re), "i": value.Number(c.Im)}, nil
}

func evalComplexModulus(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	c, ok := arg(inputs, 0).(value.Complex)
	if !ok {
		return nil, registry.Errorf("Complex Modulus: cannot read Complex from %s", arg(inputs, 0).Kind())
	}
	return registry.Outputs{"M": value.Number(math.Hypot(c.Re, c.Im))}, nil
}
