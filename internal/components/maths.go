package components

import (
	"math"

	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/registry"
	"github.com/vk/nodegridgo/internal/value"
)

// MathsModule registers scalar arithmetic.
type MathsModule struct{}

func (m *MathsModule) Register(r *registry.Registry) {
	r.Register(&registry.Component{
		Name:     "Addition",
		GUIDs:    []string{"a0d62394-a118-422d-abb3-6af115c75b25"},
		Names:    []string{"Addition", "A+B"},
		Evaluate: binaryOp("Addition", func(a, b float64) (float64, error) { return a + b, nil }),
	})
	r.Register(&registry.Component{
		Name:     "Subtraction",
		GUIDs:    []string{"9c007a04-d0d9-48e4-9da3-9ba142bc4d46"},
		Names:    []string{"Subtraction", "A-B"},
		Evaluate: binaryOp("Subtraction", func(a, b float64) (float64, error) { return a - b, nil }),
	})
	r.Register(&registry.Component{
		Name:     "Multiplication",
		GUIDs:    []string{"ce46b74e-00c9-43c4-805a-193b69ea4a11"},
		Names:    []string{"Multiplication", "A×B", "A*B"},
		Evaluate: binaryOp("Multiplication", func(a, b float64) (float64, error) { return a * b, nil }),
	})
	r.Register(&registry.Component{
		Name:  "Division",
		GUIDs: []string{"9c85271f-89fa-4e9f-9f4a-d75802120ccc"},
		Names: []string{"Division", "A/B"},
		Evaluate: binaryOp("Division", func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, registry.Errorf("Division: division by zero")
			}
			return a / b, nil
		}),
	})
	r.Register(&registry.Component{
		Name:  "Modulus",
		GUIDs: []string{"431bc610-8f1a-4c38-b4f4-b6b45c93ad5e"},
		Names: []string{"Modulus", "Mod"},
		Evaluate: binaryOp("Modulus", func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, registry.Errorf("Modulus: division by zero")
			}
			return math.Mod(a, b), nil
		}),
	})
	r.Register(&registry.Component{
		Name:     "Power",
		GUIDs:    []string{"78fed580-851b-46fe-af2f-6519a9d378e0"},
		Names:    []string{"Power", "Pow"},
		Evaluate: binaryOp("Power", func(a, b float64) (float64, error) { return math.Pow(a, b), nil }),
	})
	r.Register(&registry.Component{
		Name:     "Negative",
		GUIDs:    []string{"a3371040-e552-4bc8-b0ff-10a840258e88"},
		Names:    []string{"Negative", "Neg"},
		Evaluate: unaryOp("Negative", func(a float64) (float64, error) { return -a, nil }),
	})
	r.Register(&registry.Component{
		Name:     "Absolute",
		GUIDs:    []string{"4c4e56eb-2f04-43f9-95a3-cc46a14f495a"},
		Names:    []string{"Absolute", "Abs"},
		Evaluate: unaryOp("Absolute", func(a float64) (float64, error) { return math.Abs(a), nil }),
	})
	r.Register(&registry.Component{
		Name:  "Square Root",
		GUIDs: []string{"47ab955e-8fe7-46e2-b4e0-79bcdf9e5d10"},
		Names: []string{"Square Root", "Sqrt"},
		Evaluate: unaryOp("Square Root", func(a float64) (float64, error) {
			if a < 0 {
				return 0, registry.Errorf("Square Root: negative operand %g", a)
			}
			return math.Sqrt(a), nil
		}),
	})
	r.Register(&registry.Component{
		Name:     "Sine",
		GUIDs:    []string{"0d77c51e-584f-44e8-aed2-c2ddf4803888"},
		Names:    []string{"Sine", "Sin"},
		Evaluate: unaryOp("Sine", func(a float64) (float64, error) { return math.Sin(a), nil }),
	})
	r.Register(&registry.Component{
		Name:     "Cosine",
		GUIDs:    []string{"d2d2a900-780c-4d58-9a35-1f9d8d35df6f"},
		Names:    []string{"Cosine", "Cos"},
		Evaluate: unaryOp("Cosine", func(a float64) (float64, error) { return math.Cos(a), nil }),
	})
	r.Register(&registry.Component{
		Name:     "Tangent",
		GUIDs:    []string{"0f31784f-7177-4104-8500-1f4f4a306df4"},
		Names:    []string{"Tangent", "Tan"},
		Evaluate: unaryOp("Tangent", func(a float64) (float64, error) { return math.Tan(a), nil }),
	})
	r.Register(&registry.Component{
		Name:     "Pi",
		GUIDs:    []string{"90ee31e5-2716-4435-bbd2-8e5a2b90b6cd"},
		Names:    []string{"Pi"},
		Optional: []string{"N"},
		Evaluate: evalPi,
	})
	r.Register(&registry.Component{
		Name:     "Mass Addition",
		GUIDs:    []string{"5b850221-b527-4bd6-8c62-e94168cd6efa"},
		Names:    []string{"Mass Addition", "MA"},
		Evaluate: evalMassAddition,
	})
	r.Register(&registry.Component{
		Name:     "Mass Multiplication",
		GUIDs:    []string{"e44c9f9f-e5e4-4c71-a979-2b58c47b9cca"},
		Names:    []string{"Mass Multiplication", "MM"},
		Evaluate: evalMassMultiplication,
	})
	r.Register(&registry.Component{
		Name:     "Average",
		GUIDs:    []string{"95f54082-2a35-4b44-84b1-e32c77f33df8"},
		Names:    []string{"Average", "Avr"},
		Evaluate: evalAverage,
	})
	r.Register(&registry.Component{
		Name:     "Minimum",
		GUIDs:    []string{"57308b30-772d-4919-839b-b0b8b9e26f72"},
		Names:    []string{"Minimum", "Min"},
		Evaluate: binaryOp("Minimum", func(a, b float64) (float64, error) { return math.Min(a, b), nil }),
	})
	r.Register(&registry.Component{
		Name:     "Maximum",
		GUIDs:    []string{"cc2ee435-3dbb-41b1-b7b9-1a831cbb3a09"},
		Names:    []string{"Maximum", "Max"},
		Evaluate: binaryOp("Maximum", func(a, b float64) (float64, error) { return math.Max(a, b), nil }),
	})
	r.Register(&registry.Component{
		Name:     "Series",
		GUIDs:    []string{"e64c5fb1-845c-4ab1-8911-5f338516ba67"},
		Names:    []string{"Series"},
		Optional: []string{"S", "N", "C"},
		Evaluate: evalSeries,
	})
	r.Register(&registry.Component{
		Name:     "Range",
		GUIDs:    []string{"9445ca40-cc73-4861-a455-146308676855"},
		Names:    []string{"Range"},
		Optional: []string{"N"},
		Evaluate: evalRange,
	})
}

func binaryOp(name string, op func(a, b float64) (float64, error)) registry.EvalFunc {
	return func(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
		a, err := value.AsNumber(arg(inputs, 0), name+".A")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		b, err := value.AsNumber(arg(inputs, 1), name+".B")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		out, err := op(a, b)
		if err != nil {
			return nil, err
		}
		return registry.Outputs{"R": value.Number(out)}, nil
	}
}

func unaryOp(name string, op func(a float64) (float64, error)) registry.EvalFunc {
	return func(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
		a, err := value.AsNumber(arg(inputs, 0), name+".V")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		out, err := op(a)
		if err != nil {
			return nil, err
		}
		return registry.Outputs{"R": value.Number(out)}, nil
	}
}

func evalPi(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	factor, err := numberArg(inputs, 0, 1, "Pi.N")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	return registry.Outputs{"R": value.Number(math.Pi * factor)}, nil
}

// evalMassAddition sums every scalar reachable in the input tree and also
// reports the partial sums.
func evalMassAddition(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	nums, err := value.Numbers(arg(inputs, 0), "Mass Addition.I")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	sum := 0.0
	partials := make(value.List, 0, len(nums))
	for _, n := range nums {
		sum += n
		partials = append(partials, value.Number(sum))
	}
	return registry.Outputs{"R": value.Number(sum), "Pr": partials}, nil
}

func evalMassMultiplication(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	nums, err := value.Numbers(arg(inputs, 0), "Mass Multiplication.I")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	product := 1.0
	partials := make(value.List, 0, len(nums))
	for _, n := range nums {
		product *= n
		partials = append(partials, value.Number(product))
	}
	return registry.Outputs{"R": value.Number(product), "Pr": partials}, nil
}

func evalAverage(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	nums, err := value.Numbers(arg(inputs, 0), "Average.I")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	if len(nums) == 0 {
		return nil, registry.Errorf("Average: empty input")
	}
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return registry.Outputs{"AM": value.Number(sum / float64(len(nums)))}, nil
}

// evalSeries emits count values starting at start, spaced by step.
func evalSeries(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	start, err := numberArg(inputs, 0, 0, "Series.S")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	step, err := numberArg(inputs, 1, 1, "Series.N")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	countF, err := numberArg(inputs, 2, 10, "Series.C")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	count := int(countF)
	if count < 0 {
		return nil, registry.Errorf("Series: negative count %d", count)
	}
	out := make(value.List, count)
	for i := 0; i < count; i++ {
		out[i] = value.Number(start + float64(i)*step)
	}
	return registry.Outputs{"S": out}, nil
}

// evalRange divides a domain into steps, emitting steps+1 numbers.
func evalRange(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	domain, err := value.AsInterval(arg(inputs, 0), "Range.D")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	stepsF, err := numberArg(inputs, 1, 10, "Range.N")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	steps := int(stepsF)
	if steps < 1 {
		return nil, registry.Errorf("Range: need at least 1 step, got %d", steps)
	}
	out := make(value.List, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out[i] = value.Number(domain.Start + t*(domain.End-domain.Start))
	}
	return registry.Outputs{"R": out}, nil
}
