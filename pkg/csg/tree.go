package csg

import (
	"errors"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/dotscad/pkg/dots"
	"github.com/chazu/dotscad/pkg/geom"
)

// ErrChainLength is returned when chaining fewer than two elements.
var ErrChainLength = errors.New("csg: need at least 2 elements to chain")

// Tree is a CSG expression. Implementations are restricted to this
// package; consumers build trees through the constructors below.
type Tree interface {
	csgNode() // marker method restricting implementations to this package
}

// ---------------------------------------------------------------------------
// Objects
// ---------------------------------------------------------------------------

// DotNode draws a single dot solid.
type DotNode struct {
	Dot dots.Dot
}

func (DotNode) csgNode() {}

// CylinderNode draws a cylinder with an arbitrary height and diameter.
// Unlike a cylinder-shaped dot, height and diameter are independent; use it
// for discs shorter than they are wide.
type CylinderNode struct {
	CenterBot v3.Vec // center of the bottom face
	Diameter  float64
	Height    float64
	Rot       geom.Rot
}

func (CylinderNode) csgNode() {}

// PolyhedronNode draws an explicit vertex/face list.
type PolyhedronNode struct {
	Points []v3.Vec
	Faces  [][]int
}

func (PolyhedronNode) csgNode() {}

// ExtrusionNode draws a 2D polygon extruded along Z.
type ExtrusionNode struct {
	BottomZ   float64
	Height    float64
	Perimeter []v2.Vec
}

func (ExtrusionNode) csgNode() {}

// ---------------------------------------------------------------------------
// Operators
// ---------------------------------------------------------------------------

// UnionNode combines its children.
type UnionNode struct {
	Children []Tree
}

func (UnionNode) csgNode() {}

// HullNode takes the smallest convex shape enclosing its children.
type HullNode struct {
	Children []Tree
}

func (HullNode) csgNode() {}

// DiffNode subtracts all following children from the first.
type DiffNode struct {
	Children []Tree
}

func (DiffNode) csgNode() {}

// IntersectNode intersects its children.
type IntersectNode struct {
	Children []Tree
}

func (IntersectNode) csgNode() {}

// ColorNode tints its child, for debugging views.
type ColorNode struct {
	Color ColorSpec
	Child Tree
}

func (ColorNode) csgNode() {}

// MirrorNode mirrors its child across the plane with the given normal.
type MirrorNode struct {
	Normal v3.Vec
	Child  Tree
}

func (MirrorNode) csgNode() {}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// FromDot wraps a dot as a tree leaf.
func FromDot(d dots.Dot) Tree {
	return DotNode{Dot: d}
}

// FromDots wraps each dot as a tree leaf.
func FromDots(ds []dots.Dot) []Tree {
	out := make([]Tree, len(ds))
	for i, d := range ds {
		out[i] = DotNode{Dot: d}
	}
	return out
}

// Union combines the given trees.
func Union(children ...Tree) Tree {
	return UnionNode{Children: children}
}

// Hull returns the convex hull of the given trees.
func Hull(children ...Tree) Tree {
	return HullNode{Children: children}
}

// Diff subtracts the remaining trees from the first.
func Diff(children ...Tree) Tree {
	return DiffNode{Children: children}
}

// Intersect intersects the given trees.
func Intersect(children ...Tree) Tree {
	return IntersectNode{Children: children}
}

// Color tints the given tree.
func Color(color ColorSpec, child Tree) Tree {
	return ColorNode{Color: color, Child: child}
}

// Mirror reflects the given tree across the plane with the given normal.
func Mirror(normal v3.Vec, child Tree) Tree {
	return MirrorNode{Normal: normal, Child: child}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// Chain hulls each subsequent pair of trees and unions the segments,
// linking the elements into a continuous solid.
func Chain(things ...Tree) (Tree, error) {
	if len(things) < 2 {
		return nil, ErrChainLength
	}
	segments := make([]Tree, 0, len(things)-1)
	for i := 0; i+1 < len(things); i++ {
		segments = append(segments, Hull(things[i], things[i+1]))
	}
	return Union(segments...), nil
}

// ChainLoop is Chain with an extra segment closing the loop.
func ChainLoop(things ...Tree) (Tree, error) {
	if len(things) < 2 {
		return nil, ErrChainLength
	}
	circular := append(append([]Tree{}, things...), things[0])
	return Chain(circular...)
}

// LinkSnake chains the four dots of a snake.
func LinkSnake(s dots.Snake) (Tree, error) {
	return Chain(FromDots(s.Dots[:])...)
}

// Mark puts a small sphere at the given position, for debugging.
func Mark(pos v3.Vec, size float64) Tree {
	return FromDot(dots.New(dots.Spec{
		Pos:   pos,
		Align: dots.Centroid(),
		Size:  size,
		Rot:   geom.Identity(),
		Shape: dots.Sphere,
	}))
}

// DropSolid drops every dot to the given Z plane and hulls the originals
// together with the dropped copies, producing a solid that rests flat.
func DropSolid(ds []dots.Dot, bottomZ float64, shape dots.Shape) Tree {
	all := make([]Tree, 0, 2*len(ds))
	for _, d := range ds {
		all = append(all, FromDot(d))
	}
	for _, d := range ds {
		all = append(all, FromDot(d.Drop(bottomZ, shape)))
	}
	return Hull(all...)
}

// ExtrudeZ extrudes the polygon traced by the dot centers, discarding
// their Z coordinates. The solid's bottom sits at the lowest dot center.
func ExtrudeZ(height float64, polygon []dots.Dot) Tree {
	perimeter := make([]v2.Vec, len(polygon))
	bottomZ := 0.0
	for i, d := range polygon {
		center := d.Pos(dots.Centroid())
		perimeter[i] = v2.Vec{X: center.X, Y: center.Y}
		if i == 0 || center.Z < bottomZ {
			bottomZ = center.Z
		}
	}
	return ExtrusionNode{BottomZ: bottomZ, Height: height, Perimeter: perimeter}
}

// ColorSpec names a debug tint.
type ColorSpec int

const (
	Red ColorSpec = iota
	Green
)

// Name returns the OpenSCAD color name.
func (c ColorSpec) Name() string {
	switch c {
	case Red:
		return "red"
	default:
		return "green"
	}
}

// RGB returns the color as an RGB triple.
func (c ColorSpec) RGB() v3.Vec {
	switch c {
	case Red:
		return v3.Vec{X: 1}
	default:
		return v3.Vec{Y: 1}
	}
}
