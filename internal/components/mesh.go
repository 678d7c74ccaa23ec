package components

import (
	"github.com/vk/nodegridgo/internal/graph"
	"github.com/vk/nodegridgo/internal/registry"
	"github.com/vk/nodegridgo/internal/value"
)

// MeshModule registers mesh and legacy surface components.
type MeshModule struct{}

func (m *MeshModule) Register(r *registry.Registry) {
	r.Register(&registry.Component{
		Name:     "Construct Mesh",
		GUIDs:    []string{"e2c0f9db-a862-4bd9-810c-ef3610e5a1a6"},
		Names:    []string{"Construct Mesh", "ConMesh"},
		Optional: []string{"N"},
		Evaluate: evalConstructMesh,
	})
	r.Register(&registry.Component{
		Name:     "Deconstruct Mesh",
		GUIDs:    []string{"ba1e6eb6-b4bc-4b25-83b8-2db11b960d8c"},
		Names:    []string{"Deconstruct Mesh", "DeMesh"},
		Evaluate: evalDeconstructMesh,
	})
	r.Register(&registry.Component{
		Name:     "Mesh Triangle",
		GUIDs:    []string{"5a4ddedd-5af9-49e5-bace-12910a8b9366"},
		Names:    []string{"Mesh Triangle", "Tri"},
		Evaluate: evalMeshTriangle,
	})
	r.Register(&registry.Component{
		Name:     "Surface From Points",
		GUIDs:    []string{"b7b44b8e-96a9-4c15-ac4a-d9e02cba889b"},
		Names:    []string{"Surface From Points", "SrfGrid"},
		Evaluate: evalSurfaceFromPoints,
	})
	r.Register(&registry.Component{
		Name:     "4Point Surface",
		GUIDs:    []string{"c77a8b3b-c569-4d81-9b59-1c27299a1c45"},
		Names:    []string{"4Point Surface", "Srf4Pt"},
		Optional: []string{"D"},
		Evaluate: eval4PointSurface,
	})
}

// evalConstructMesh assembles a mesh from a point list and a flat index
// list, validating the triangle structure.
func evalConstructMesh(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	verts, err := value.Points(arg(inputs, 0), "Construct Mesh.V")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	faceNums, err := value.Numbers(arg(inputs, 1), "Construct Mesh.F")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	mesh := value.Mesh{Vertices: verts, Indices: make([]int, len(faceNums))}
	for i, n := range faceNums {
		mesh.Indices[i] = int(n)
	}
	if normals := arg(inputs, 2); !isNull(normals) {
		nums, err := value.Numbers(normals, "Construct Mesh.N")
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		if len(nums)%3 != 0 {
			return nil, registry.Errorf("Construct Mesh: normal count %d is not a multiple of 3", len(nums))
		}
		for i := 0; i+2 < len(nums); i += 3 {
			mesh.Normals = append(mesh.Normals, value.Vector{X: nums[i], Y: nums[i+1], Z: nums[i+2]})
		}
	}
	if err := mesh.Validate(); err != nil {
		return nil, registry.Errorf("Construct Mesh: %s", err.Error())
	}
	return registry.Outputs{"M": mesh}, nil
}

func evalDeconstructMesh(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	mesh, err := value.AsMesh(arg(inputs, 0), "Deconstruct Mesh.M")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	verts := make(value.List, len(mesh.Vertices))
	for i, p := range mesh.Vertices {
		verts[i] = p
	}
	faces := make(value.List, len(mesh.Indices))
	for i, idx := range mesh.Indices {
		faces[i] = value.Number(idx)
	}
	normals := make(value.List, len(mesh.Normals))
	for i, n := range mesh.Normals {
		normals[i] = n
	}
	return registry.Outputs{"V": verts, "F": faces, "N": normals}, nil
}

func evalMeshTriangle(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	var corners [3]value.Point
	pins := [3]string{"A", "B", "C"}
	for i := range corners {
		p, err := value.AsPoint(arg(inputs, i), "Mesh Triangle."+pins[i])
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		corners[i] = p
	}
	mesh := value.Mesh{Vertices: corners[:], Indices: []int{0, 1, 2}}
	return registry.Outputs{"M": mesh}, nil
}

// evalSurfaceFromPoints lays a U-by-V grid of points out as a quad-faced
// surface. U is the number of points per row; the point count must be a
// multiple of it.
func evalSurfaceFromPoints(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	pts, err := value.Points(arg(inputs, 0), "Surface From Points.P")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	uF, err := value.AsNumber(arg(inputs, 1), "Surface From Points.U")
	if err != nil {
		return nil, registry.Errorf("%s", err.Error())
	}
	u := int(uF)
	if u < 2 {
		return nil, registry.Errorf("Surface From Points: need at least 2 points per row, got %d", u)
	}
	if len(pts)%u != 0 {
		return nil, registry.Errorf("Surface From Points: %d points do not fill rows of %d", len(pts), u)
	}
	rows := len(pts) / u
	if rows < 2 {
		return nil, registry.Errorf("Surface From Points: need at least 2 rows, got %d", rows)
	}
	var faces [][]int
	for r := 0; r < rows-1; r++ {
		for c := 0; c < u-1; c++ {
			a := r*u + c
			faces = append(faces, []int{a, a + 1, a + u + 1, a + u})
		}
	}
	srf := value.Surface{Vertices: pts, Faces: faces}
	if err := srf.Validate(); err != nil {
		return nil, registry.Errorf("Surface From Points: %s", err.Error())
	}
	return registry.Outputs{"S": srf}, nil
}

// eval4PointSurface builds a legacy quad surface; the fourth corner is
// optional and collapses the quad to a triangle when absent.
func eval4PointSurface(inputs []value.Value, meta graph.Meta) (registry.Outputs, error) {
	pins := [4]string{"A", "B", "C", "D"}
	var pts []value.Point
	for i := 0; i < 4; i++ {
		v := arg(inputs, i)
		if i == 3 && isNull(v) {
			break
		}
		p, err := value.AsPoint(v, "4Point Surface."+pins[i])
		if err != nil {
			return nil, registry.Errorf("%s", err.Error())
		}
		pts = append(pts, p)
	}
	face := make([]int, len(pts))
	for i := range face {
		face[i] = i
	}
	srf := value.Surface{Vertices: pts, Faces: [][]int{face}}
	if err := srf.Validate(); err != nil {
		return nil, registry.Errorf("4Point Surface: %s", err.Error())
	}
	return registry.Outputs{"S": srf}, nil
}
