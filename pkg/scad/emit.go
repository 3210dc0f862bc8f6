package scad

import (
	"fmt"
	"math"
	"strings"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/dotscad/pkg/csg"
	"github.com/chazu/dotscad/pkg/dots"
)

// Emit serializes a CSG tree to OpenSCAD source. Children are written in
// declaration order and every coordinate is rounded to the configured
// precision, so output is byte-for-byte reproducible.
func Emit(tree csg.Tree, cfg Config) (string, error) {
	w := &writer{cfg: cfg}
	w.printf("$fn = %d;\n", cfg.Detail)
	if err := w.tree(tree, 0); err != nil {
		return "", err
	}
	return w.b.String(), nil
}

type writer struct {
	cfg Config
	b   strings.Builder
}

func (w *writer) printf(format string, args ...any) {
	fmt.Fprintf(&w.b, format, args...)
}

func (w *writer) indent(depth int) {
	for i := 0; i < depth; i++ {
		w.b.WriteByte('\t')
	}
}

// num rounds to the configured precision, normalizing negative zero so
// that values a hair below zero don't flip a sign bit in the output.
func (w *writer) num(v float64) string {
	scale := math.Pow(10, float64(w.cfg.Precision))
	v = math.Round(v*scale) / scale
	if v == 0 {
		v = 0
	}
	return fmt.Sprintf("%.*f", w.cfg.Precision, v)
}

func (w *writer) vec3(v v3.Vec) string {
	return fmt.Sprintf("[%s, %s, %s]", w.num(v.X), w.num(v.Y), w.num(v.Z))
}

func (w *writer) vec2(v v2.Vec) string {
	return fmt.Sprintf("[%s, %s]", w.num(v.X), w.num(v.Y))
}

func (w *writer) tree(t csg.Tree, depth int) error {
	switch n := t.(type) {
	case csg.DotNode:
		return w.dot(n.Dot, depth)
	case csg.CylinderNode:
		return w.cylinder(n, depth)
	case csg.PolyhedronNode:
		w.polyhedron(n, depth)
		return nil
	case csg.ExtrusionNode:
		w.extrusion(n, depth)
		return nil
	case csg.UnionNode:
		return w.operator("union()", n.Children, depth)
	case csg.HullNode:
		return w.operator("hull()", n.Children, depth)
	case csg.DiffNode:
		return w.operator("difference()", n.Children, depth)
	case csg.IntersectNode:
		return w.operator("intersection()", n.Children, depth)
	case csg.ColorNode:
		rgb := n.Color.RGB()
		return w.wrap(fmt.Sprintf("color(%s)", w.vec3(rgb)), n.Child, depth)
	case csg.MirrorNode:
		return w.wrap(fmt.Sprintf("mirror(%s)", w.vec3(n.Normal)), n.Child, depth)
	default:
		return fmt.Errorf("scad: unknown tree node %T", t)
	}
}

func (w *writer) operator(head string, children []csg.Tree, depth int) error {
	w.indent(depth)
	w.printf("%s {\n", head)
	for _, child := range children {
		if err := w.tree(child, depth+1); err != nil {
			return err
		}
	}
	w.indent(depth)
	w.printf("}\n")
	return nil
}

func (w *writer) wrap(head string, child csg.Tree, depth int) error {
	return w.operator(head, []csg.Tree{child}, depth)
}

// dot writes a dot as translate/rotate around its primitive. The
// primitive sits with its bottom on the origin (corner for cubes), so the
// translation moves the rotated P000 reference onto the dot's position.
func (w *writer) dot(d dots.Dot, depth int) error {
	axis, err := d.Pose.Rot.Axis()
	if err != nil {
		return fmt.Errorf("scad: dot rotation: %w", err)
	}

	size := d.Size
	if size == 0 {
		size = w.cfg.DefaultDotSize
	}
	half := size / 2
	var toOrigin v3.Vec
	switch d.Shape {
	case dots.Cube:
		toOrigin = v3.Vec{}
	case dots.Sphere:
		toOrigin = v3.Vec{X: half, Y: half, Z: half}
	default:
		toOrigin = v3.Vec{X: half, Y: half}
	}
	translation := d.Pose.Pos.Add(d.Pose.Rot.Apply(toOrigin))

	w.indent(depth)
	w.printf("translate(%s) {\n", w.vec3(translation))
	w.indent(depth + 1)
	w.printf("rotate(%s, %s) {\n", w.num(d.Pose.Rot.Degrees()), w.vec3(axis))
	w.indent(depth + 2)
	switch d.Shape {
	case dots.Cube:
		w.printf("cube(%s);\n", w.vec3(v3.Vec{X: size, Y: size, Z: size}))
	case dots.Sphere:
		w.printf("sphere(d = %s);\n", w.num(size))
	default:
		w.printf("cylinder(h = %s, d = %s);\n", w.num(size), w.num(size))
	}
	w.indent(depth + 1)
	w.printf("}\n")
	w.indent(depth)
	w.printf("}\n")
	return nil
}

func (w *writer) cylinder(n csg.CylinderNode, depth int) error {
	axis, err := n.Rot.Axis()
	if err != nil {
		return fmt.Errorf("scad: cylinder rotation: %w", err)
	}
	w.indent(depth)
	w.printf("translate(%s) {\n", w.vec3(n.CenterBot))
	w.indent(depth + 1)
	w.printf("rotate(%s, %s) {\n", w.num(n.Rot.Degrees()), w.vec3(axis))
	w.indent(depth + 2)
	w.printf("cylinder(h = %s, d = %s);\n", w.num(n.Height), w.num(n.Diameter))
	w.indent(depth + 1)
	w.printf("}\n")
	w.indent(depth)
	w.printf("}\n")
	return nil
}

func (w *writer) polyhedron(n csg.PolyhedronNode, depth int) {
	w.indent(depth)
	w.printf("polyhedron(\n")
	w.indent(depth + 1)
	w.printf("points = [")
	for i, p := range n.Points {
		if i > 0 {
			w.printf(", ")
		}
		w.printf("%s", w.vec3(p))
	}
	w.printf("],\n")
	w.indent(depth + 1)
	w.printf("faces = [")
	for i, face := range n.Faces {
		if i > 0 {
			w.printf(", ")
		}
		w.printf("[")
		for j, idx := range face {
			if j > 0 {
				w.printf(", ")
			}
			w.printf("%d", idx)
		}
		w.printf("]")
	}
	w.printf("]\n")
	w.indent(depth)
	w.printf(");\n")
}

func (w *writer) extrusion(n csg.ExtrusionNode, depth int) {
	w.indent(depth)
	w.printf("translate(%s) {\n", w.vec3(v3.Vec{Z: n.BottomZ}))
	w.indent(depth + 1)
	w.printf("linear_extrude(height = %s) {\n", w.num(n.Height))
	w.indent(depth + 2)
	w.printf("polygon(points = [")
	for i, p := range n.Perimeter {
		if i > 0 {
			w.printf(", ")
		}
		w.printf("%s", w.vec2(p))
	}
	w.printf("]);\n")
	w.indent(depth + 1)
	w.printf("}\n")
	w.indent(depth)
	w.printf("}\n")
}
