package model

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/dotscad/pkg/dots"
	"github.com/chazu/dotscad/pkg/hull"
)

// Resolved is the geometric output of a graph: one mesh per shape and one
// per edge, both in declaration order.
type Resolved struct {
	Shapes     []*hull.Mesh
	Connectors []*hull.Mesh
}

// Resolve computes every shape's face mesh and every edge's connector
// mesh. Each mesh is an independent pure computation; the first failure
// aborts the whole resolution.
func (g *Graph) Resolve() (*Resolved, error) {
	out := &Resolved{
		Shapes:     make([]*hull.Mesh, 0, len(g.shapes)),
		Connectors: make([]*hull.Mesh, 0, len(g.edges)),
	}
	for i, s := range g.shapes {
		m, err := s.Faces()
		if err != nil {
			return nil, fmt.Errorf("model: shape %d: %w", i, err)
		}
		out.Shapes = append(out.Shapes, m)
	}
	for i, e := range g.edges {
		m, err := g.resolveEdge(e)
		if err != nil {
			return nil, fmt.Errorf("model: edge %d: %w", i, err)
		}
		out.Connectors = append(out.Connectors, m)
	}
	return out, nil
}

func (g *Graph) resolveEdge(e Edge) (*hull.Mesh, error) {
	sa, err := g.Shape(e.A)
	if err != nil {
		return nil, err
	}
	sb, err := g.Shape(e.B)
	if err != nil {
		return nil, err
	}
	rimA, err := sa.Rim(e.RimA)
	if err != nil {
		return nil, err
	}
	rimB, err := sb.Rim(e.RimB)
	if err != nil {
		return nil, err
	}

	if e.Mode == BridgeHull {
		points := make([]v3.Vec, 0, len(rimA)+len(rimB))
		for _, d := range append(rimA, rimB...) {
			points = append(points, d.Pos(dots.Centroid()))
		}
		return hull.Convex(points)
	}
	return hull.Bridge(rimA, rimB)
}
