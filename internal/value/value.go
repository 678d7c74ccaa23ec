package value

import (
	"math"
	"time"
)

// Value is the closed tagged union of everything a wire can carry. Each
// variant implements the marker method; no other types do. Values are
// treated as immutable by the engine: fan-out hands the same Value to
// every consumer.
type Value interface {
	// Kind returns the textual kind of the variant, e.g. "Point" or
	// "Mesh". It is used only in error messages.
	Kind() string

	isValue()
}

// Null marks the absence of a value.
type Null struct{}

// Number is a 64-bit floating point scalar. NaN is a legal payload but
// fails whenever it is coerced.
type Number float64

// Boolean is a two-state flag.
type Boolean bool

// Text is an immutable string.
type Text string

// Point is a position in ambient world space.
type Point struct {
	X, Y, Z float64
}

// Vector is a translation in ambient world space. It shares the layout of
// Point but is semantically distinct.
type Vector struct {
	X, Y, Z float64
}

// Line is a straight segment between two points.
type Line struct {
	P1, P2 Point
}

// Surface is the legacy polygonal shape: an ordered vertex list plus
// faces of three or more vertex indices each.
type Surface struct {
	Vertices []Point
	Faces    [][]int
}

// Mesh is the preferred indexed triangle list. Indices is flat with
// length divisible by three. Normals and UVs, when present, are
// per-vertex. Diagnostics carries free-form notes from producers.
type Mesh struct {
	Vertices    []Point
	Indices     []int
	Normals     []Vector
	UVs         [][2]float64
	Diagnostics []string
}

// Interval is a closed 1D numeric domain. Min, Max, Length, Span and
// Center are derived so their invariants hold by construction.
type Interval struct {
	Start, End float64
}

// Interval2 is a 2D domain: independent U and V intervals.
type Interval2 struct {
	U, V Interval
}

// Matrix is a dense row-major matrix. len(Values) == Rows*Cols.
type Matrix struct {
	Rows, Cols int
	Values     []float64
}

// Complex is a complex scalar.
type Complex struct {
	Re, Im float64
}

// DateTime is a civil date plus time of day, nanosecond resolution, no
// time zone. The wrapped time.Time is always in UTC.
type DateTime struct {
	Time time.Time
}

// Color holds linear [0,1] channels.
type Color struct {
	R, G, B, A float64
}

// Material describes a render material.
type Material struct {
	Diffuse      Color
	Specular     Color
	Emission     Color
	Transparency float64
	Shine        float64
}

// Symbol describes an annotation symbol.
type Symbol struct {
	Style     Text
	Primary   float64
	Secondary *float64
	Rotation  float64
	Fill      Color
	Edge      *Color
	Width     float64
	Adjust    bool
}

// Tag is a textual annotation anchored to a plane.
type Tag struct {
	Plane Plane
	Text  Text
	Size  float64
	Color *Color
}

// Plane is an oriented frame: origin plus an orthonormal basis.
type Plane struct {
	Origin Point
	XAxis  Vector
	YAxis  Vector
	ZAxis  Vector
}

// List is a heterogeneous ordered sequence. Nesting carries tree
// structure.
type List []Value

func (Null) Kind() string      { return "Null" }
func (Number) Kind() string    { return "Number" }
func (Boolean) Kind() string   { return "Boolean" }
func (Text) Kind() string      { return "Text" }
func (Point) Kind() string     { return "Point" }
func (Vector) Kind() string    { return "Vector" }
func (Line) Kind() string      { return "CurveLine" }
func (Surface) Kind() string   { return "Surface" }
func (Mesh) Kind() string      { return "Mesh" }
func (Interval) Kind() string  { return "Domain" }
func (Interval2) Kind() string { return "Domain2" }
func (Matrix) Kind() string    { return "Matrix" }
func (Complex) Kind() string   { return "Complex" }
func (DateTime) Kind() string  { return "DateTime" }
func (Color) Kind() string     { return "Color" }
func (Material) Kind() string  { return "Material" }
func (Symbol) Kind() string    { return "Symbol" }
func (Tag) Kind() string       { return "Tag" }
func (Plane) Kind() string     { return "Plane" }
func (List) Kind() string      { return "List" }

func (Null) isValue()      {}
func (Number) isValue()    {}
func (Boolean) isValue()   {}
func (Text) isValue()      {}
func (Point) isValue()     {}
func (Vector) isValue()    {}
func (Line) isValue()      {}
func (Surface) isValue()   {}
func (Mesh) isValue()      {}
func (Interval) isValue()  {}
func (Interval2) isValue() {}
func (Matrix) isValue()    {}
func (Complex) isValue()   {}
func (DateTime) isValue()  {}
func (Color) isValue()     {}
func (Material) isValue()  {}
func (Symbol) isValue()    {}
func (Tag) isValue()       {}
func (Plane) isValue()     {}
func (List) isValue()      {}

// Min returns the lower bound of the interval.
func (d Interval) Min() float64 { return math.Min(d.Start, d.End) }

// Max returns the upper bound of the interval.
func (d Interval) Max() float64 { return math.Max(d.Start, d.End) }

// Length returns the absolute distance from Start to End.
func (d Interval) Length() float64 { return math.Abs(d.End - d.Start) }

// Span returns Max minus Min. It equals Length for a 1D interval.
func (d Interval) Span() float64 { return d.Max() - d.Min() }

// Center returns the midpoint of the interval.
func (d Interval) Center() float64 { return (d.Start + d.End) / 2 }
