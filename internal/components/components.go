package components

import (
	"github.com/vk/nodegridgo/internal/registry"
	"github.com/vk/nodegridgo/internal/value"
)

// Modules lists every component category in registration order.
var Modules = []registry.Module{
	&ParamsModule{},
	&MathsModule{},
	&SetsModule{},
	&VectorModule{},
	&PlaneModule{},
	&CurveModule{},
	&MeshModule{},
	&MatrixModule{},
	&DomainModule{},
	&DisplayModule{},
}

// Default builds the registry holding the full catalogue.
func Default() *registry.Registry {
	r := registry.New()
	for _, m := range Modules {
		m.Register(r)
	}
	return r
}

// arg returns the i-th input, or Null when the vector is shorter. Pin
// order is authoritative, so positional access is safe for declared pins.
func arg(inputs []value.Value, i int) value.Value {
	if i >= 0 && i < len(inputs) {
		return inputs[i]
	}
	return value.Null{}
}

func isNull(v value.Value) bool {
	_, ok := v.(value.Null)
	return ok
}

// numberArg coerces the i-th input as a scalar, substituting def when the
// input is absent or Null.
func numberArg(inputs []value.Value, i int, def float64, ctx string) (float64, error) {
	v := arg(inputs, i)
	if isNull(v) {
		return def, nil
	}
	return value.AsNumber(v, ctx)
}
