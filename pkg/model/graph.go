package model

import (
	"fmt"

	"github.com/chazu/dotscad/pkg/dots"
	"github.com/chazu/dotscad/pkg/shape"
)

// ShapeRef is a stable index into a graph's shape table.
type ShapeRef int

// RefError reports a shape reference outside the graph's table.
type RefError struct {
	Ref   ShapeRef
	Count int
}

func (e *RefError) Error() string {
	return fmt.Sprintf("model: shape ref %d out of range, graph has %d shapes", e.Ref, e.Count)
}

// BridgeMode selects how an edge's connector is built.
type BridgeMode int

const (
	// BridgeLoft matches the two rims dot by dot and lofts a ring of
	// faces between them.
	BridgeLoft BridgeMode = iota
	// BridgeHull takes the convex hull of both rims together.
	BridgeHull
)

func (m BridgeMode) String() string {
	switch m {
	case BridgeLoft:
		return "loft"
	case BridgeHull:
		return "hull"
	default:
		return "unknown"
	}
}

// Edge declares a required connector between the rims of two shapes.
type Edge struct {
	A, B       ShapeRef
	RimA, RimB shape.RimID
	Mode       BridgeMode
}

// Graph is an arena of shapes plus the edges bridging them. The zero
// value is an empty graph ready for use. Shapes and edges are appended,
// never removed, so refs stay stable for the graph's lifetime.
type Graph struct {
	shapes []shape.Shape
	edges  []Edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddShape appends a shape and returns its ref.
func (g *Graph) AddShape(s shape.Shape) ShapeRef {
	g.shapes = append(g.shapes, s)
	return ShapeRef(len(g.shapes) - 1)
}

// Shape returns the shape at the given ref.
func (g *Graph) Shape(ref ShapeRef) (shape.Shape, error) {
	if int(ref) < 0 || int(ref) >= len(g.shapes) {
		return shape.Shape{}, &RefError{Ref: ref, Count: len(g.shapes)}
	}
	return g.shapes[int(ref)], nil
}

// NumShapes returns the number of shapes in the arena.
func (g *Graph) NumShapes() int {
	return len(g.shapes)
}

// Edges returns the declared edges in declaration order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// AddEdge appends an edge after checking both refs, both rims and the
// rim labels, so bad wiring fails at declaration rather than at render.
func (g *Graph) AddEdge(e Edge) error {
	if err := g.checkEdge(e); err != nil {
		return err
	}
	g.edges = append(g.edges, e)
	return nil
}

func (g *Graph) checkEdge(e Edge) error {
	sa, err := g.Shape(e.A)
	if err != nil {
		return err
	}
	sb, err := g.Shape(e.B)
	if err != nil {
		return err
	}
	rimA, err := sa.Rim(e.RimA)
	if err != nil {
		return err
	}
	rimB, err := sb.Rim(e.RimB)
	if err != nil {
		return err
	}
	if e.Mode == BridgeLoft {
		if err := checkRimLabels(e.A, e.RimA, rimA); err != nil {
			return err
		}
		if err := checkRimLabels(e.B, e.RimB, rimB); err != nil {
			return err
		}
	}
	return nil
}

// checkRimLabels rejects rims a loft could never match: unlabeled or
// duplicate-labeled dots.
func checkRimLabels(ref ShapeRef, which shape.RimID, rim []dots.Dot) error {
	seen := make(map[string]bool, len(rim))
	for i, d := range rim {
		if d.Label == "" {
			return fmt.Errorf("model: shape %d %s rim: dot %d has no label", ref, which, i)
		}
		if seen[d.Label] {
			return fmt.Errorf("model: shape %d %s rim: duplicate label %q", ref, which, d.Label)
		}
		seen[d.Label] = true
	}
	return nil
}

// Validate re-checks every shape and edge and returns all violations, not
// just the first. An empty slice means the graph is consistent.
func (g *Graph) Validate() []error {
	var errs []error
	for i, s := range g.shapes {
		if len(s.Dots) != s.Kind.NumDots() {
			errs = append(errs, fmt.Errorf("model: shape %d: %w", i,
				&shape.ArityError{Kind: s.Kind, Got: len(s.Dots)}))
		}
	}
	for i, e := range g.edges {
		if err := g.checkEdge(e); err != nil {
			errs = append(errs, fmt.Errorf("model: edge %d: %w", i, err))
		}
	}
	return errs
}
