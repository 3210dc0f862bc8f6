package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/dotscad/pkg/hull"
	"github.com/chazu/dotscad/pkg/shape"
)

func TestResolveOrder(t *testing.T) {
	g := NewGraph()
	a := g.AddShape(testPrism(t, 0, []string{"b0", "b1", "b2", "m0", "m1", "m2"}))
	b := g.AddShape(testPrism(t, 4, []string{"m0", "m1", "m2", "t0", "t1", "t2"}))
	require.NoError(t, g.AddEdge(Edge{A: a, B: b, RimA: shape.RimTop, RimB: shape.RimBottom, Mode: BridgeLoft}))

	resolved, err := g.Resolve()
	require.NoError(t, err)
	require.Len(t, resolved.Shapes, 2)
	require.Len(t, resolved.Connectors, 1)

	// Triangular prisms: 2 caps + 3 side quads each, meshes in
	// declaration order so the lower prism's points come first.
	for _, m := range resolved.Shapes {
		assert.Len(t, m.Faces, 5)
	}
	assert.InDelta(t, 0, resolved.Shapes[0].Points[0].Z, 1e-9)
	assert.InDelta(t, 4, resolved.Shapes[1].Points[0].Z, 1e-9)

	// A loft between equal rims is a ring of quads.
	loft := resolved.Connectors[0]
	assert.Len(t, loft.Points, 6)
	assert.Len(t, loft.Faces, 3)
	for _, f := range loft.Faces {
		assert.Len(t, f, 4)
	}
}

func TestResolveHullConnector(t *testing.T) {
	g := NewGraph()
	a := g.AddShape(testPrism(t, 0, nil))
	b := g.AddShape(testPrism(t, 4, nil))
	require.NoError(t, g.AddEdge(Edge{A: a, B: b, RimA: shape.RimTop, RimB: shape.RimBottom, Mode: BridgeHull}))

	resolved, err := g.Resolve()
	require.NoError(t, err)
	require.Len(t, resolved.Connectors, 1)

	// The hull of two parallel triangles is a triangulated prism.
	m := resolved.Connectors[0]
	assert.Len(t, m.Points, 6)
	for _, f := range m.Faces {
		assert.Len(t, f, 3)
	}
}

func TestResolveLabelMismatch(t *testing.T) {
	g := NewGraph()
	a := g.AddShape(testPrism(t, 0, []string{"b0", "b1", "b2", "m0", "m1", "m2"}))
	b := g.AddShape(testPrism(t, 4, []string{"x0", "x1", "x2", "t0", "t1", "t2"}))
	require.NoError(t, g.AddEdge(Edge{A: a, B: b, RimA: shape.RimTop, RimB: shape.RimBottom, Mode: BridgeLoft}))

	_, err := g.Resolve()
	require.Error(t, err)
	var labelErr *hull.LabelError
	require.ErrorAs(t, err, &labelErr)
	assert.Contains(t, err.Error(), "model: edge 0:")
}

func TestResolveDegenerateShape(t *testing.T) {
	g := NewGraph()
	g.AddShape(testPrism(t, 0, nil))
	// A shape whose face template points at missing dots fails during
	// resolution with the shape's index in the error.
	g.shapes = append(g.shapes, shape.Shape{Kind: shape.KindCube})

	_, err := g.Resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model: shape 1:")
}
