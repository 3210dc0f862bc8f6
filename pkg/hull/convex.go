package hull

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// DegenerateError reports a convex hull request on input with no enclosed
// volume: fewer than four distinct points, or all points collinear or
// coplanar. Callers must not request a convex hull of such input.
type DegenerateError struct {
	NumPoints int
	Reason    string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("hull: degenerate input (%d points): %s", e.NumPoints, e.Reason)
}

// Convex computes the convex hull of the given points by incremental
// insertion, returning a triangulated mesh with outward-consistent
// winding. The mesh point table holds the distinct input points; interior
// points are kept in the table but referenced by no face.
func Convex(points []v3.Vec) (*Mesh, error) {
	distinct := dedupe(points)
	eps := scaledEpsilon(distinct)

	tet, err := initialTetrahedron(distinct, eps)
	if err != nil {
		return nil, err
	}

	m := &Mesh{Points: distinct}
	interior := tetCentroid(distinct, tet)
	m.Faces = [][]int{
		{tet[0], tet[1], tet[2]},
		{tet[0], tet[1], tet[3]},
		{tet[0], tet[2], tet[3]},
		{tet[1], tet[2], tet[3]},
	}
	m.orientOutward(interior)

	for i := range distinct {
		if i == tet[0] || i == tet[1] || i == tet[2] || i == tet[3] {
			continue
		}
		m.addPoint(i, eps)
	}
	return m, nil
}

// addPoint grows the hull to cover point i: faces visible from the point
// are removed and the resulting horizon ring is re-triangulated to the
// point. A point inside the current hull sees no face and changes nothing.
func (m *Mesh) addPoint(i int, eps float64) {
	p := m.Points[i]

	var visible, kept [][]int
	for f, face := range m.Faces {
		toPoint := p.Sub(m.Points[face[0]])
		if m.FaceNormal(f).Normalize().Dot(toPoint) > eps {
			visible = append(visible, face)
		} else {
			kept = append(kept, face)
		}
	}
	if len(visible) == 0 {
		return
	}

	// Directed edges of visible faces whose reverse is not also visible
	// form the horizon ring.
	type edge struct{ u, v int }
	visibleEdges := make(map[edge]bool)
	for _, face := range visible {
		for k := range face {
			visibleEdges[edge{face[k], face[(k+1)%len(face)]}] = true
		}
	}
	m.Faces = kept
	for e := range visibleEdges {
		if visibleEdges[edge{e.v, e.u}] {
			continue // interior edge of the visible region
		}
		m.Faces = append(m.Faces, []int{e.u, e.v, i})
	}
	m.sortFaces()
}

// sortFaces keeps the face list in a canonical order so hull output is
// deterministic regardless of map iteration order.
func (m *Mesh) sortFaces() {
	less := func(a, b []int) bool {
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	}
	// Insertionsort: face lists are small.
	for i := 1; i < len(m.Faces); i++ {
		for j := i; j > 0 && less(m.Faces[j], m.Faces[j-1]); j-- {
			m.Faces[j], m.Faces[j-1] = m.Faces[j-1], m.Faces[j]
		}
	}
}

func dedupe(points []v3.Vec) []v3.Vec {
	eps := scaledEpsilon(points)
	var out []v3.Vec
	for _, p := range points {
		found := false
		for _, q := range out {
			if p.Equals(q, eps) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, p)
		}
	}
	return out
}

func scaledEpsilon(points []v3.Vec) float64 {
	scale := 1.0
	for _, p := range points {
		scale = math.Max(scale, p.Abs().MaxComponent())
	}
	return 1e-9 * scale
}

// initialTetrahedron finds four non-coplanar points to seed the hull.
func initialTetrahedron(points []v3.Vec, eps float64) ([4]int, error) {
	var tet [4]int
	n := len(points)
	if n < 4 {
		return tet, &DegenerateError{NumPoints: n, Reason: "need at least 4 distinct points"}
	}

	tet[0] = 0

	// Second point: any point distinct from the first (guaranteed by
	// dedupe, so index 1 works).
	tet[1] = 1
	dir := points[1].Sub(points[0])

	// Third point: first point not collinear with the base edge.
	tet[2] = -1
	for i := 2; i < n; i++ {
		if dir.Cross(points[i].Sub(points[0])).Length() > eps {
			tet[2] = i
			break
		}
	}
	if tet[2] < 0 {
		return tet, &DegenerateError{NumPoints: n, Reason: "all points are collinear"}
	}

	// Fourth point: first point off the base plane.
	normal := dir.Cross(points[tet[2]].Sub(points[0])).Normalize()
	tet[3] = -1
	for i := 2; i < n; i++ {
		if i == tet[2] {
			continue
		}
		if math.Abs(normal.Dot(points[i].Sub(points[0]))) > eps {
			tet[3] = i
			break
		}
	}
	if tet[3] < 0 {
		return tet, &DegenerateError{NumPoints: n, Reason: "all points are coplanar"}
	}
	return tet, nil
}

func tetCentroid(points []v3.Vec, tet [4]int) v3.Vec {
	sum := points[tet[0]].Add(points[tet[1]]).Add(points[tet[2]]).Add(points[tet[3]])
	return sum.DivScalar(4)
}
