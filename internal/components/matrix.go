package components

import (
	"math"

	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/registry"
	"github.com/vk/nodegridgo/internal/value"
)

// MatrixModule registers dense matrix components.
type MatrixModule struct{}

func (m *MatrixModule) Register(r *registry.Registry) {
	r.Register(&registry.Component{
		Name:     "Construct Matrix",
		GUIDs:    []string{"54ac80cf-74f3-43f7-834c-0e3fe94632c9"},
		Names:    []string{"Construct Matrix", "Matrix"},
		Optional: []string{"V"},
		Evaluate: evalConstructMatrix,
	})
	r.Register(&registry.Component{
		Name:     "Deconstruct Matrix",
		GUIDs:    []string{"fb7e37dd-ab28-4b24-92b1-bfdc06acab32"},
		Names:    []string{"Deconstruct Matrix", "DeMatrix"},
		Evaluate: evalDeconstructMatrix,
	})
	r.Register(&registry.Component{
		Name:     "Transpose Matrix",
		GUIDs:    []string{"dc9d1b92-4b1e-4d7e-9f99-29844a6e2d94"},
		Names:    []string{"Transpose Matrix", "Trans"},
		Evaluate: evalTransposeMatrix,
	})
	r.Register(&registry.Component{
		Name:     "Invert Matrix",
		GUIDs:    []string{"6c1ec4e8-bbf2-4e08-9a93-41ba6e02c452"},
		Names:    []string{"Invert Matrix", "MInv"},
		Optional: []string{"t"},
		Evaluate: evalInvertMatrix,
	})
	r.Register(&registry.Component{
		Name:     "Multiply Matrix",
		GUIDs:    []string{"08fb9e14-2b74-4cb9-a972-bd61dd831f33"},
		Names:    []string{"Multiply Matrix", "MMult"},
		Evaluate: evalMultiplyMatrix,
	})
}

func evalConstructMatrix(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	rowsF, err := value.AsNumber(arg(inputs, 0), "Construct Matrix.R")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	colsF, err := value.AsNumber(arg(inputs, 1), "Construct Matrix.C")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	rows, cols := int(rowsF), int(colsF)
	if rows < 1 || cols < 1 {
		return nil, registry.Errorf("Construct Matrix: invalid size %dx%d", rows, cols)
	}
	m := value.Matrix{Rows: rows, Cols: cols, Values: make([]float64, rows*cols)}
	if vals := arg(inputs, 2); !isNull(vals) {
		nums, err := value.Numbers(vals, "Construct Matrix.V")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		if len(nums) != rows*cols {
			return nil, registry.Errorf("Construct Matrix: %d values for a %dx%d matrix", len(nums), rows, cols)
		}
		copy(m.Values, nums)
	} else {
		// Default to identity on the main diagonal.
		for i := 0; i < rows && i < cols; i++ {
			m.Values[i*cols+i] = 1
		}
	}
	return registry.Outputs{"M": m}, nil
}

func evalDeconstructMatrix(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	m, err := value.AsMatrix(arg(inputs, 0), "Deconstruct Matrix.M")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	vals := make(value.List, len(m.Values))
	for i, v := range m.Values {
		vals[i] = value.Number(v)
	}
	return registry.Outputs{
		"R": value.Number(m.Rows),
		"C": value.Number(m.Cols),
		"V": vals,
	}, nil
}

func evalTransposeMatrix(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	m, err := value.AsMatrix(arg(inputs, 0), "Transpose Matrix.M")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	return registry.Outputs{"M": transpose(m)}, nil
}

func transpose(m value.Matrix) value.Matrix {
	out := value.Matrix{Rows: m.Cols, Cols: m.Rows, Values: make([]float64, len(m.Values))}
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			out.Values[c*out.Cols+r] = m.Values[r*m.Cols+c]
		}
	}
	return out
}

// evalInvertMatrix inverts a square matrix by Gauss-Jordan elimination;
// pivots below the tolerance mark the matrix singular.
func evalInvertMatrix(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	m, err := value.AsMatrix(arg(inputs, 0), "Invert Matrix.M")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	tolerance, err := numberArg(inputs, 1, 1e-12, "Invert Matrix.t")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	inv, err := invert(m, tolerance)
	if err != nil {
		return nil, err
	}
	return registry.Outputs{"M": inv}, nil
}

func invert(m value.Matrix, tolerance float64) (value.Matrix, error) {
	if m.Rows != m.Cols {
		return value.Matrix{}, registry.Errorf("Invert Matrix: %dx%d matrix is not square", m.Rows, m.Cols)
	}
	n := m.Rows
	// Augmented [m | I], reduced in place.
	a := make([][]float64, n)
	for r := 0; r < n; r++ {
		a[r] = make([]float64, 2*n)
		copy(a[r], m.Values[r*n:(r+1)*n])
		a[r][n+r] = 1
	}
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) <= tolerance {
			return value.Matrix{}, registry.Errorf("Invert Matrix: singular within tolerance %g", tolerance)
		}
		a[col], a[pivot] = a[pivot], a[col]
		scale := a[col][col]
		for c := 0; c < 2*n; c++ {
			a[col][c] /= scale
		}
		for r := 0; r < n; r++ {
			if r == col || a[r][col] == 0 {
				continue
			}
			factor := a[r][col]
			for c := 0; c < 2*n; c++ {
				a[r][c] -= factor * a[col][c]
			}
		}
	}
	out := value.Matrix{Rows: n, Cols: n, Values: make([]float64, n*n)}
	for r := 0; r < n; r++ {
		copy(out.Values[r*n:(r+1)*n], a[r][n:])
	}
	return out, nil
}

func evalMultiplyMatrix(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	a, err := value.AsMatrix(arg(inputs, 0), "Multiply Matrix.A")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	b, err := value.AsMatrix(arg(inputs, 1), "Multiply Matrix.B")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	if a.Cols != b.Rows {
		return nil, registry.Errorf("Multiply Matrix: %dx%d times %dx%d", a.Rows, a.Cols, b.Rows, b.Cols)
	}
	out := value.Matrix{Rows: a.Rows, Cols: b.Cols, Values: make([]float64, a.Rows*b.Cols)}
	for r := 0; r < a.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			sum := 0.0
			for k := 0; k < a.Cols; k++ {
				sum += a.Values[r*a.Cols+k] * b.Values[k*b.Cols+c]
			}
			out.Values[r*out.Cols+c] = sum
		}
	}
	return registry.Outputs{"M": out}, nil
}
