package scad

import (
	"github.com/chazu/dotscad/pkg/csg"
	"github.com/chazu/dotscad/pkg/model"
)

// Render resolves a model graph and emits it as a union of explicit
// polyhedron statements, one per shape then one per connector. The
// emitter does no geometry of its own; any resolution error (bad arity,
// degenerate hull, rim label mismatch) propagates unchanged.
func Render(g *model.Graph, cfg Config) (string, error) {
	resolved, err := g.Resolve()
	if err != nil {
		return "", err
	}

	children := make([]csg.Tree, 0, len(resolved.Shapes)+len(resolved.Connectors))
	for _, m := range resolved.Shapes {
		children = append(children, csg.PolyhedronNode{Points: m.Points, Faces: m.Faces})
	}
	for _, m := range resolved.Connectors {
		children = append(children, csg.PolyhedronNode{Points: m.Points, Faces: m.Faces})
	}
	return Emit(csg.Union(children...), cfg)
}
