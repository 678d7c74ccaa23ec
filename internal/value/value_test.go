package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalInvariants(t *testing.T) {
	cases := []Interval{
		{Start: 0, End: 10},
		{Start: 10, End: 0},
		{Start: -3.5, End: 2},
		{Start: 4, End: 4},
	}
	for _, d := range cases {
		assert.LessOrEqual(t, d.Min(), d.Max())
		assert.Equal(t, math.Abs(d.End-d.Start), d.Length())
		assert.Equal(t, d.Max()-d.Min(), d.Span())
		assert.Equal(t, (d.Start+d.End)/2, d.Center())
	}
}

func TestMeshValidate(t *testing.T) {
	quadVerts := []Point{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}

	t.Run("valid mesh", func(t *testing.T) {
		m := Mesh{Vertices: quadVerts, Indices: []int{0, 1, 2, 0, 2, 3}}
		assert.NoError(t, m.Validate())
	})

	t.Run("index count not divisible by 3", func(t *testing.T) {
		m := Mesh{Vertices: quadVerts, Indices: []int{0, 1}}
		assert.ErrorContains(t, m.Validate(), "not divisible by 3")
	})

	t.Run("index out of range", func(t *testing.T) {
		m := Mesh{Vertices: quadVerts, Indices: []int{0, 1, 9}}
		assert.ErrorContains(t, m.Validate(), "out of range")
	})

	t.Run("attribute length mismatch", func(t *testing.T) {
		m := Mesh{Vertices: quadVerts, Indices: []int{0, 1, 2}, Normals: []Vector{{Z: 1}}}
		assert.ErrorContains(t, m.Validate(), "normals")
	})
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Number(3), Number(3)))
	assert.False(t, Equal(Number(3), Number(4)))
	assert.False(t, Equal(Number(1), Boolean(true)))
	assert.True(t, Equal(Point{1, 2, 3}, Point{1, 2, 3}))
	assert.False(t, Equal(Point{1, 2, 3}, Vector{1, 2, 3}))
	assert.True(t, Equal(
		List{Number(1), List{Text("a"), Null{}}},
		List{Number(1), List{Text("a"), Null{}}},
	))
	assert.False(t, Equal(List{Number(1)}, List{Number(1), Number(2)}))
	assert.True(t, Equal(
		Matrix{Rows: 2, Cols: 2, Values: []float64{1, 0, 0, 1}},
		Matrix{Rows: 2, Cols: 2, Values: []float64{1, 0, 0, 1}},
	))
}

func TestAsNumber(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		n, err := AsNumber(Number(2.5), "test")
		require.NoError(t, err)
		assert.Equal(t, 2.5, n)
	})

	t.Run("boolean maps to 0 and 1", func(t *testing.T) {
		n, err := AsNumber(Boolean(true), "test")
		require.NoError(t, err)
		assert.Equal(t, 1.0, n)
		n, err = AsNumber(Boolean(false), "test")
		require.NoError(t, err)
		assert.Equal(t, 0.0, n)
	})

	t.Run("text is trimmed and parsed", func(t *testing.T) {
		n, err := AsNumber(Text("  -1.25 "), "test")
		require.NoError(t, err)
		assert.Equal(t, -1.25, n)
	})

	t.Run("unparsable text names the context", func(t *testing.T) {
		_, err := AsNumber(Text("banana"), "Division.B")
		require.Error(t, err)
		assert.ErrorContains(t, err, "Division.B")
		assert.ErrorContains(t, err, "Text")
	})

	t.Run("NaN fails", func(t *testing.T) {
		_, err := AsNumber(Number(math.NaN()), "test")
		assert.ErrorContains(t, err, "NaN")
	})

	t.Run("wrong kind reports the actual kind", func(t *testing.T) {
		_, err := AsNumber(Mesh{}, "test")
		assert.ErrorContains(t, err, "Mesh")
	})
}

func TestCoercionIdempotence(t *testing.T) {
	// Reading v must agree with reading List([v]).
	n1, err := AsNumber(Number(7), "test")
	require.NoError(t, err)
	n2, err := AsNumber(List{Number(7)}, "test")
	require.NoError(t, err)
	assert.Equal(t, n1, n2)

	p1, err := AsPoint(Point{1, 2, 3}, "test")
	require.NoError(t, err)
	p2, err := AsPoint(List{Point{1, 2, 3}}, "test")
	require.NoError(t, err)
	assert.Equal(t, p1, p2)

	b1, err := AsBoolean(Boolean(true), "test")
	require.NoError(t, err)
	b2, err := AsBoolean(List{List{Boolean(true)}}, "test")
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
}

func TestAsPoint(t *testing.T) {
	t.Run("vector carries across", func(t *testing.T) {
		p, err := AsPoint(Vector{1, 2, 3}, "test")
		require.NoError(t, err)
		assert.Equal(t, Point{1, 2, 3}, p)
	})

	t.Run("coordinate list", func(t *testing.T) {
		p, err := AsPoint(List{Number(1), Number(2)}, "test")
		require.NoError(t, err)
		assert.Equal(t, Point{1, 2, 0}, p)
	})
}

func TestAsPlane(t *testing.T) {
	t.Run("three point encoding", func(t *testing.T) {
		o := Point{1, 1, 0}
		frame, err := AsPlane(List{o, Point{3, 1, 0}, Point{1, 5, 0}}, "test")
		require.NoError(t, err)
		assert.Equal(t, o, frame.Origin)
		assert.InDelta(t, 1, frame.XAxis.X, 1e-12)
		assert.InDelta(t, 1, frame.YAxis.Y, 1e-12)
		assert.InDelta(t, 1, frame.ZAxis.Z, 1e-12)
	})

	t.Run("skewed y sample is orthogonalized", func(t *testing.T) {
		frame, err := AsPlane(List{Point{}, Point{X: 2}, Point{X: 1, Y: 1}}, "test")
		require.NoError(t, err)
		assert.InDelta(t, 0, frame.XAxis.Dot(frame.YAxis), 1e-12)
		assert.InDelta(t, 1, frame.ZAxis.Length(), 1e-12)
		assert.InDelta(t, 0, frame.ZAxis.Dot(frame.XAxis), 1e-12)
		assert.InDelta(t, 0, frame.ZAxis.Dot(frame.YAxis), 1e-12)
	})

	t.Run("origin plus normal encoding", func(t *testing.T) {
		o := Point{0, 0, 5}
		frame, err := AsPlane(List{o, Vector{0, 3, 0}}, "test")
		require.NoError(t, err)
		assert.Equal(t, o, frame.Origin)
		assert.InDelta(t, 1, frame.ZAxis.Y, 1e-12)
	})

	t.Run("bare point gives z-up frame", func(t *testing.T) {
		frame, err := AsPlane(Point{2, 0, 0}, "test")
		require.NoError(t, err)
		assert.Equal(t, Point{2, 0, 0}, frame.Origin)
		assert.Equal(t, Vector{Z: 1}, frame.ZAxis)
	})

	t.Run("bare vector reads as a normal at world zero", func(t *testing.T) {
		frame, err := AsPlane(Vector{0, 0, 2}, "test")
		require.NoError(t, err)
		assert.Equal(t, Point{}, frame.Origin)
		assert.InDelta(t, 1, frame.ZAxis.Z, 1e-12)
	})

	t.Run("degenerate samples fail", func(t *testing.T) {
		_, err := AsPlane(List{Point{}, Point{}, Point{Y: 1}}, "test")
		assert.Error(t, err)
	})
}

func TestPolyline(t *testing.T) {
	t.Run("mixed nesting flattens in order", func(t *testing.T) {
		pts, err := Polyline(List{
			Point{0, 0, 0},
			List{Point{1, 0, 0}, Point{1, 1, 0}},
			Line{P1: Point{2, 0, 0}, P2: Point{3, 0, 0}},
		}, "test")
		require.NoError(t, err)
		assert.Equal(t, []Point{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {2, 0, 0}, {3, 0, 0},
		}, pts)
	})

	t.Run("fewer than two points fails", func(t *testing.T) {
		_, err := Polyline(List{Point{}}, "test")
		assert.ErrorContains(t, err, "at least 2")
	})
}

func TestNumbers(t *testing.T) {
	out, err := Numbers(List{Number(1), List{Number(2), Number(3)}, Point{4, 5, 6}}, "test")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, out)
}

func TestAsMeshFromSurface(t *testing.T) {
	s := Surface{
		Vertices: []Point{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		Faces:    [][]int{{0, 1, 2, 3}},
	}
	m, err := AsMesh(s, "test")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0, 2, 3}, m.Indices)
	assert.NoError(t, m.Validate())
}

func TestIsRenderable(t *testing.T) {
	assert.True(t, IsRenderable(Point{}))
	assert.True(t, IsRenderable(Line{}))
	assert.True(t, IsRenderable(Mesh{}))
	assert.True(t, IsRenderable(List{Number(1), List{Line{}}}))
	assert.False(t, IsRenderable(Number(1)))
	assert.False(t, IsRenderable(List{Number(1), Text("x")}))
	assert.False(t, IsRenderable(Plane{}))
}
