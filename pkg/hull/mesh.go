package hull

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/dotscad/pkg/geom"
)

// Mesh is a set of planar faces enclosing a point set. Faces index into
// Points and are wound so their normals point out of the enclosed volume.
type Mesh struct {
	Points []v3.Vec
	Faces  [][]int
}

// Centroid returns the mean of the mesh points.
func (m *Mesh) Centroid() v3.Vec {
	var sum v3.Vec
	for _, p := range m.Points {
		sum = sum.Add(p)
	}
	return sum.DivScalar(float64(len(m.Points)))
}

// FaceNormal returns the (unnormalized) normal of face i, following its
// winding order.
func (m *Mesh) FaceNormal(i int) v3.Vec {
	face := m.Faces[i]
	a := m.Points[face[0]]
	b := m.Points[face[1]]
	c := m.Points[face[2]]
	return geom.PlaneNormal(a, b, c)
}

// FaceCentroid returns the mean of face i's vertices.
func (m *Mesh) FaceCentroid(i int) v3.Vec {
	var sum v3.Vec
	for _, idx := range m.Faces[i] {
		sum = sum.Add(m.Points[idx])
	}
	return sum.DivScalar(float64(len(m.Faces[i])))
}

// orientOutward flips any face whose normal points toward the given
// interior point, making all windings outward-consistent.
func (m *Mesh) orientOutward(interior v3.Vec) {
	for i, face := range m.Faces {
		outward := m.FaceCentroid(i).Sub(interior)
		if m.FaceNormal(i).Dot(outward) < 0 {
			reverse(face)
		}
	}
}

func reverse(face []int) {
	for l, r := 0, len(face)-1; l < r; l, r = l+1, r-1 {
		face[l], face[r] = face[r], face[l]
	}
}

// FromTemplate builds a mesh from a caller-declared face structure, used
// when the intended solid is deliberately non-convex and hull inference
// would be wrong. Faces are re-wound outward from the point centroid; the
// index structure itself is taken verbatim.
func FromTemplate(points []v3.Vec, faces [][]int) (*Mesh, error) {
	m := &Mesh{Points: points, Faces: make([][]int, len(faces))}
	for i, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("hull: template face %d has %d vertices: %w", i, len(face), geom.ErrArgument)
		}
		for _, idx := range face {
			if idx < 0 || idx >= len(points) {
				return nil, fmt.Errorf("hull: template face %d references point %d of %d: %w", i, idx, len(points), geom.ErrArgument)
			}
		}
		m.Faces[i] = append([]int(nil), face...)
	}
	m.orientOutward(m.Centroid())
	return m, nil
}
