package value

import (
	"fmt"
	"math"
)

// Add returns v translated by w.
func (p Point) Add(w Vector) Point { return Point{p.X + w.X, p.Y + w.Y, p.Z + w.Z} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector { return Vector{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Add returns the component-wise sum of two vectors.
func (v Vector) Add(w Vector) Vector { return Vector{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product v x w.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of the vector.
func (v Vector) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Unit returns v normalized to unit length. The zero vector is returned
// unchanged.
func (v Vector) Unit() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Length returns the length of the segment.
func (l Line) Length() float64 { return l.P2.Sub(l.P1).Length() }

// WorldXY is the default frame: origin at world zero, Z up.
func WorldXY() Plane {
	return Plane{
		Origin: Point{},
		XAxis:  Vector{X: 1},
		YAxis:  Vector{Y: 1},
		ZAxis:  Vector{Z: 1},
	}
}

// PlaneFromPoints builds an orthonormal frame from an origin and two
// points sampled on the X and Y axes. The Y sample is orthogonalized
// against the X direction.
func PlaneFromPoints(origin, onX, onY Point) (Plane, error) {
	x := onX.Sub(origin)
	if x.Length() == 0 {
		return Plane{}, fmt.Errorf("plane: x sample coincides with origin")
	}
	x = x.Unit()
	yRaw := onY.Sub(origin)
	y := yRaw.Add(x.Scale(-yRaw.Dot(x)))
	if y.Length() == 0 {
		return Plane{}, fmt.Errorf("plane: y sample is collinear with the x axis")
	}
	y = y.Unit()
	return Plane{Origin: origin, XAxis: x, YAxis: y, ZAxis: x.Cross(y)}, nil
}

// PlaneFromNormal builds a frame at origin whose Z axis is the given
// normal. The X axis is chosen perpendicular to the normal, preferring
// the world axes for stability.
func PlaneFromNormal(origin Point, normal Vector) (Plane, error) {
	if normal.Length() == 0 {
		return Plane{}, fmt.Errorf("plane: zero normal")
	}
	z := normal.Unit()
	ref := Vector{Z: 1}
	if math.Abs(z.Dot(ref)) > 0.999 {
		ref = Vector{X: 1}
	}
	x := ref.Cross(z).Unit()
	y := z.Cross(x)
	return Plane{Origin: origin, XAxis: x, YAxis: y, ZAxis: z}, nil
}

// Validate checks the structural invariants of the mesh: a flat triangle
// index list, in-range indices, and per-vertex attribute lengths.
func (m Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: index count %d is not divisible by 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if idx < 0 || idx >= len(m.Vertices) {
			return fmt.Errorf("mesh: index %d at position %d out of range [0,%d)", idx, i, len(m.Vertices))
		}
	}
	if m.Normals != nil && len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("mesh: %d normals for %d vertices", len(m.Normals), len(m.Vertices))
	}
	if m.UVs != nil && len(m.UVs) != len(m.Vertices) {
		return fmt.Errorf("mesh: %d uvs for %d vertices", len(m.UVs), len(m.Vertices))
	}
	return nil
}

// Validate checks that every face has at least three indices and that all
// indices are in range.
func (s Surface) Validate() error {
	for fi, face := range s.Faces {
		if len(face) < 3 {
			return fmt.Errorf("surface: face %d has %d indices, need at least 3", fi, len(face))
		}
		for _, idx := range face {
			if idx < 0 || idx >= len(s.Vertices) {
				return fmt.Errorf("surface: face %d references vertex %d out of range [0,%d)", fi, idx, len(s.Vertices))
			}
		}
	}
	return nil
}
