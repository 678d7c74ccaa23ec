package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CoerceError reports a failed interpretation of a Value. Context names
// the consumer (component or pin), Want the requested shape, Got the kind
// actually encountered.
type CoerceError struct {
	Context string
	Want    string
	Got     string
	Detail  string
}

func (e *CoerceError) Error() string {
	msg := fmt.Sprintf("%s: cannot read %s from %s", e.Context, e.Want, e.Got)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func coerceErr(ctx, want string, v Value, detail string) error {
	return &CoerceError{Context: ctx, Want: want, Got: v.Kind(), Detail: detail}
}

// unwrap peels single-element lists. The leniency that List([v]) reads as
// v lives here, shared by every coercion helper.
func unwrap(v Value) Value {
	for {
		l, ok := v.(List)
		if !ok || len(l) != 1 {
			return v
		}
		v = l[0]
	}
}

// AsNumber reads v as a scalar. Booleans map to 0/1, text is parsed after
// trimming, NaN always fails.
func AsNumber(v Value, ctx string) (float64, error) {
	switch n := unwrap(v).(type) {
	case Number:
		if math.IsNaN(float64(n)) {
			return 0, coerceErr(ctx, "Number", v, "NaN")
		}
		return float64(n), nil
	case Boolean:
		if n {
			return 1, nil
		}
		return 0, nil
	case Text:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
		if err != nil || math.IsNaN(f) {
			return 0, coerceErr(ctx, "Number", v, fmt.Sprintf("unparsable text %q", string(n)))
		}
		return f, nil
	}
	return 0, coerceErr(ctx, "Number", v, "")
}

// AsBoolean reads v as a flag. Numbers map zero to false and anything
// else to true; text is parsed after trimming.
func AsBoolean(v Value, ctx string) (bool, error) {
	switch b := unwrap(v).(type) {
	case Boolean:
		return bool(b), nil
	case Number:
		return float64(b) != 0, nil
	case Text:
		parsed, err := strconv.ParseBool(strings.TrimSpace(string(b)))
		if err != nil {
			return false, coerceErr(ctx, "Boolean", v, fmt.Sprintf("unparsable text %q", string(b)))
		}
		return parsed, nil
	}
	return false, coerceErr(ctx, "Boolean", v, "")
}

// AsText reads v as a string. Scalars are formatted.
func AsText(v Value, ctx string) (string, error) {
	switch t := unwrap(v).(type) {
	case Text:
		return string(t), nil
	case Number:
		return strconv.FormatFloat(float64(t), 'g', -1, 64), nil
	case Boolean:
		return strconv.FormatBool(bool(t)), nil
	}
	return "", coerceErr(ctx, "Text", v, "")
}

// AsPoint reads v as a position. Vectors carry their components across; a
// list of two or three numbers is read as coordinates (z defaults to 0).
func AsPoint(v Value, ctx string) (Point, error) {
	switch p := unwrap(v).(type) {
	case Point:
		return p, nil
	case Vector:
		return Point{p.X, p.Y, p.Z}, nil
	case List:
		coords, err := coordTriple(p, ctx)
		if err != nil {
			return Point{}, coerceErr(ctx, "Point", v, err.Error())
		}
		return Point{coords[0], coords[1], coords[2]}, nil
	}
	return Point{}, coerceErr(ctx, "Point", v, "")
}

// AsVector reads v as a translation, with the same leniency as AsPoint.
func AsVector(v Value, ctx string) (Vector, error) {
	switch w := unwrap(v).(type) {
	case Vector:
		return w, nil
	case Point:
		return Vector{w.X, w.Y, w.Z}, nil
	case List:
		coords, err := coordTriple(w, ctx)
		if err != nil {
			return Vector{}, coerceErr(ctx, "Vector", v, err.Error())
		}
		return Vector{coords[0], coords[1], coords[2]}, nil
	}
	return Vector{}, coerceErr(ctx, "Vector", v, "")
}

func coordTriple(l List, ctx string) ([3]float64, error) {
	if len(l) != 2 && len(l) != 3 {
		return [3]float64{}, fmt.Errorf("need 2 or 3 coordinates, have %d elements", len(l))
	}
	var out [3]float64
	for i, el := range l {
		n, err := AsNumber(el, ctx)
		if err != nil {
			return [3]float64{}, err
		}
		out[i] = n
	}
	return out, nil
}

// AsLine reads v as a straight segment. A list of two points is accepted.
func AsLine(v Value, ctx string) (Line, error) {
	switch l := unwrap(v).(type) {
	case Line:
		return l, nil
	case List:
		if len(l) == 2 {
			p1, err1 := AsPoint(l[0], ctx)
			p2, err2 := AsPoint(l[1], ctx)
			if err1 == nil && err2 == nil {
				return Line{P1: p1, P2: p2}, nil
			}
		}
	}
	return Line{}, coerceErr(ctx, "CurveLine", v, "")
}

// AsPlane reads v as an oriented frame. Accepted encodings, most explicit
// first: a Plane; a list of three points (origin plus samples on the X
// and Y axes); a list of two (origin plus a normal); a bare point (origin
// of a Z-up frame); a bare vector (a normal anchored at world zero).
func AsPlane(v Value, ctx string) (Plane, error) {
	switch p := unwrap(v).(type) {
	case Plane:
		return p, nil
	case Point:
		frame := WorldXY()
		frame.Origin = p
		return frame, nil
	case Vector:
		frame, err := PlaneFromNormal(Point{}, p)
		if err != nil {
			return Plane{}, coerceErr(ctx, "Plane", v, err.Error())
		}
		return frame, nil
	case List:
		switch len(p) {
		case 3:
			o, err := AsPoint(p[0], ctx)
			if err != nil {
				return Plane{}, coerceErr(ctx, "Plane", v, err.Error())
			}
			onX, err := AsPoint(p[1], ctx)
			if err != nil {
				return Plane{}, coerceErr(ctx, "Plane", v, err.Error())
			}
			onY, err := AsPoint(p[2], ctx)
			if err != nil {
				return Plane{}, coerceErr(ctx, "Plane", v, err.Error())
			}
			frame, err := PlaneFromPoints(o, onX, onY)
			if err != nil {
				return Plane{}, coerceErr(ctx, "Plane", v, err.Error())
			}
			return frame, nil
		case 2:
			o, err := AsPoint(p[0], ctx)
			if err != nil {
				return Plane{}, coerceErr(ctx, "Plane", v, err.Error())
			}
			n, err := AsVector(p[1], ctx)
			if err != nil {
				return Plane{}, coerceErr(ctx, "Plane", v, err.Error())
			}
			frame, err := PlaneFromNormal(o, n)
			if err != nil {
				return Plane{}, coerceErr(ctx, "Plane", v, err.Error())
			}
			return frame, nil
		}
	}
	return Plane{}, coerceErr(ctx, "Plane", v, "")
}

// AsInterval reads v as a 1D domain. A list of two numbers is read as
// start and end; a bare number yields the degenerate [n,n] interval.
func AsInterval(v Value, ctx string) (Interval, error) {
	switch d := unwrap(v).(type) {
	case Interval:
		return d, nil
	case Number:
		n, err := AsNumber(d, ctx)
		if err != nil {
			return Interval{}, err
		}
		return Interval{Start: n, End: n}, nil
	case List:
		if len(d) == 2 {
			start, err1 := AsNumber(d[0], ctx)
			end, err2 := AsNumber(d[1], ctx)
			if err1 == nil && err2 == nil {
				return Interval{Start: start, End: end}, nil
			}
		}
	}
	return Interval{}, coerceErr(ctx, "Domain", v, "")
}

// AsMatrix reads v as a dense matrix.
func AsMatrix(v Value, ctx string) (Matrix, error) {
	if m, ok := unwrap(v).(Matrix); ok {
		return m, nil
	}
	return Matrix{}, coerceErr(ctx, "Matrix", v, "")
}

// AsColor reads v as a color. A list of three or four numbers is read as
// channels; alpha defaults to 1.
func AsColor(v Value, ctx string) (Color, error) {
	switch c := unwrap(v).(type) {
	case Color:
		return c, nil
	case List:
		if len(c) == 3 || len(c) == 4 {
			var ch [4]float64
			ch[3] = 1
			for i, el := range c {
				n, err := AsNumber(el, ctx)
				if err != nil {
					return Color{}, coerceErr(ctx, "Color", v, err.Error())
				}
				ch[i] = n
			}
			return Color{ch[0], ch[1], ch[2], ch[3]}, nil
		}
	}
	return Color{}, coerceErr(ctx, "Color", v, "")
}

// AsMesh reads v as a triangle mesh. Legacy surfaces are accepted and
// fan-triangulated.
func AsMesh(v Value, ctx string) (Mesh, error) {
	switch m := unwrap(v).(type) {
	case Mesh:
		return m, nil
	case Surface:
		mesh := Mesh{Vertices: m.Vertices}
		for _, face := range m.Faces {
			if len(face) < 3 {
				return Mesh{}, coerceErr(ctx, "Mesh", v, "surface face with fewer than 3 indices")
			}
			for i := 1; i+1 < len(face); i++ {
				mesh.Indices = append(mesh.Indices, face[0], face[i], face[i+1])
			}
		}
		if err := mesh.Validate(); err != nil {
			return Mesh{}, coerceErr(ctx, "Mesh", v, err.Error())
		}
		return mesh, nil
	}
	return Mesh{}, coerceErr(ctx, "Mesh", v, "")
}

// Polyline flattens v into an ordered point sequence. Nested lists and
// line segments contribute their points in encounter order; at least two
// points are required.
func Polyline(v Value, ctx string) ([]Point, error) {
	var pts []Point
	var walk func(Value) error
	walk = func(v Value) error {
		switch el := v.(type) {
		case List:
			// A bare coordinate list reads as one point.
			if p, err := AsPoint(el, ctx); err == nil && allNumbers(el) {
				pts = append(pts, p)
				return nil
			}
			for _, child := range el {
				if err := walk(child); err != nil {
					return err
				}
			}
			return nil
		case Line:
			pts = append(pts, el.P1, el.P2)
			return nil
		default:
			p, err := AsPoint(el, ctx)
			if err != nil {
				return err
			}
			pts = append(pts, p)
			return nil
		}
	}
	if err := walk(unwrap(v)); err != nil {
		return nil, err
	}
	if len(pts) < 2 {
		return nil, coerceErr(ctx, "Polyline", v, fmt.Sprintf("need at least 2 points, have %d", len(pts)))
	}
	return pts, nil
}

func allNumbers(l List) bool {
	for _, el := range l {
		if _, ok := el.(Number); !ok {
			return false
		}
	}
	return len(l) == 2 || len(l) == 3
}

// Numbers flattens v into a scalar sequence. Points and vectors yield
// their components; nested lists are walked in order.
func Numbers(v Value, ctx string) ([]float64, error) {
	var out []float64
	var walk func(Value) error
	walk = func(v Value) error {
		switch el := v.(type) {
		case List:
			for _, child := range el {
				if err := walk(child); err != nil {
					return err
				}
			}
			return nil
		case Point:
			out = append(out, el.X, el.Y, el.Z)
			return nil
		case Vector:
			out = append(out, el.X, el.Y, el.Z)
			return nil
		default:
			n, err := AsNumber(el, ctx)
			if err != nil {
				return err
			}
			out = append(out, n)
			return nil
		}
	}
	if err := walk(v); err != nil {
		return nil, err
	}
	return out, nil
}

// Points flattens v into a point sequence. Nested lists are walked in
// order; each leaf must coerce to a point.
func Points(v Value, ctx string) ([]Point, error) {
	var out []Point
	var walk func(Value) error
	walk = func(v Value) error {
		if l, ok := v.(List); ok {
			if allNumbers(l) {
				p, err := AsPoint(l, ctx)
				if err != nil {
					return err
				}
				out = append(out, p)
				return nil
			}
			for _, child := range l {
				if err := walk(child); err != nil {
					return err
				}
			}
			return nil
		}
		p, err := AsPoint(v, ctx)
		if err != nil {
			return err
		}
		out = append(out, p)
		return nil
	}
	if err := walk(v); err != nil {
		return nil, err
	}
	return out, nil
}

// IsRenderable reports whether v carries geometry the host can draw: a
// point, segment, surface or mesh, or a list containing one of those at
// any depth.
func IsRenderable(v Value) bool {
	switch el := v.(type) {
	case Point, Line, Surface, Mesh:
		return true
	case List:
		for _, child := range el {
			if IsRenderable(child) {
				return true
			}
		}
	}
	return false
}
