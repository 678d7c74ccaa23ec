package value

// Equal reports component-wise structural equality of two values. Values
// of different variants are never equal; a single-element list is not
// unwrapped here (that leniency belongs to the coercion helpers).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	case Point:
		bv, ok := b.(Point)
		return ok && av == bv
	case Vector:
		bv, ok := b.(Vector)
		return ok && av == bv
	case Line:
		bv, ok := b.(Line)
		return ok && av == bv
	case Interval:
		bv, ok := b.(Interval)
		return ok && av == bv
	case Interval2:
		bv, ok := b.(Interval2)
		return ok && av == bv
	case Complex:
		bv, ok := b.(Complex)
		return ok && av == bv
	case DateTime:
		bv, ok := b.(DateTime)
		return ok && av.Time.Equal(bv.Time)
	case Color:
		bv, ok := b.(Color)
		return ok && av == bv
	case Material:
		bv, ok := b.(Material)
		return ok && av == bv
	case Plane:
		bv, ok := b.(Plane)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		if !ok {
			return false
		}
		return equalSymbol(av, bv)
	case Tag:
		bv, ok := b.(Tag)
		if !ok {
			return false
		}
		if av.Plane != bv.Plane || av.Text != bv.Text || av.Size != bv.Size {
			return false
		}
		return equalColorPtr(av.Color, bv.Color)
	case Matrix:
		bv, ok := b.(Matrix)
		if !ok || av.Rows != bv.Rows || av.Cols != bv.Cols {
			return false
		}
		return equalFloats(av.Values, bv.Values)
	case Surface:
		bv, ok := b.(Surface)
		if !ok || len(av.Vertices) != len(bv.Vertices) || len(av.Faces) != len(bv.Faces) {
			return false
		}
		for i := range av.Vertices {
			if av.Vertices[i] != bv.Vertices[i] {
				return false
			}
		}
		for i := range av.Faces {
			if !equalInts(av.Faces[i], bv.Faces[i]) {
				return false
			}
		}
		return true
	case Mesh:
		bv, ok := b.(Mesh)
		if !ok {
			return false
		}
		return equalMesh(av, bv)
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalSymbol(a, b Symbol) bool {
	if a.Style != b.Style || a.Primary != b.Primary || a.Rotation != b.Rotation ||
		a.Fill != b.Fill || a.Width != b.Width || a.Adjust != b.Adjust {
		return false
	}
	if (a.Secondary == nil) != (b.Secondary == nil) {
		return false
	}
	if a.Secondary != nil && *a.Secondary != *b.Secondary {
		return false
	}
	return equalColorPtr(a.Edge, b.Edge)
}

func equalColorPtr(a, b *Color) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func equalMesh(a, b Mesh) bool {
	if len(a.Vertices) != len(b.Vertices) || len(a.Normals) != len(b.Normals) ||
		len(a.UVs) != len(b.UVs) || len(a.Diagnostics) != len(b.Diagnostics) {
		return false
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			return false
		}
	}
	if !equalInts(a.Indices, b.Indices) {
		return false
	}
	for i := range a.Normals {
		if a.Normals[i] != b.Normals[i] {
			return false
		}
	}
	for i := range a.UVs {
		if a.UVs[i] != b.UVs[i] {
			return false
		}
	}
	for i := range a.Diagnostics {
		if a.Diagnostics[i] != b.Diagnostics[i] {
			return false
		}
	}
	return true
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
