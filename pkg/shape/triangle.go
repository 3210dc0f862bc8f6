package shape

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/dotscad/pkg/csg"
	"github.com/chazu/dotscad/pkg/dots"
	"github.com/chazu/dotscad/pkg/geom"
)

// Triangle is three cylinder dots inscribed in the corners of a triangle,
// so that hulling them produces the triangle with rounded corners.
type Triangle struct {
	A, B, C dots.Dot
}

// TriangleSpec describes a triangle by one side and its adjacent angles:
// corner B sits at PointB, side BC runs along the rotated X axis with
// length LenBC, and DegB/DegC are the interior angles at B and C.
type TriangleSpec struct {
	DegB   float64
	LenBC  float64
	DegC   float64
	Size   float64
	PointB v3.Vec
	Rot    geom.Rot
}

// TriCorner names a triangle corner.
type TriCorner int

const (
	TriA TriCorner = iota
	TriB
	TriC
)

// NewTriangle builds a triangle from a spec. The dots are placed inside
// the corners so their rims touch the triangle's sides.
func NewTriangle(spec TriangleSpec) (Triangle, error) {
	if spec.DegB+spec.DegC >= 180 || spec.DegB <= 0 || spec.DegC <= 0 {
		return Triangle{}, fmt.Errorf("shape: triangle angles %g and %g don't close: %w",
			spec.DegB, spec.DegC, geom.ErrArgument)
	}
	build := func(corner TriCorner) dots.Dot {
		return dots.New(dots.Spec{
			Pos:   spec.center(corner),
			Align: dots.CenterFace(geom.FaceZ0),
			Size:  spec.Size,
			Rot:   spec.Rot,
			Shape: dots.Cylinder,
		})
	}
	return Triangle{A: build(TriA), B: build(TriB), C: build(TriC)}, nil
}

// Dots returns the corner dots in A, B, C order.
func (t Triangle) Dots() []dots.Dot {
	return []dots.Dot{t.A, t.B, t.C}
}

// Link hulls the three corner dots.
func (t Triangle) Link() csg.Tree {
	return csg.Hull(csg.FromDots(t.Dots())...)
}

// Mark unions marker spheres at the true corner points, for debugging.
func (t Triangle) Mark(spec TriangleSpec) csg.Tree {
	return csg.Union(
		csg.Mark(spec.Point(TriA), 1),
		csg.Mark(spec.Point(TriB), 1),
		csg.Mark(spec.Point(TriC), 1),
	)
}

// Point returns the world position of the given corner point.
func (s TriangleSpec) Point(corner TriCorner) v3.Vec {
	switch corner {
	case TriB:
		return s.PointB
	case TriA:
		return s.PointB.Add(s.Side(TriB, TriA))
	default:
		return s.PointB.Add(s.Side(TriB, TriC))
	}
}

// Deg returns the interior angle at the given corner, in degrees.
func (s TriangleSpec) Deg(corner TriCorner) float64 {
	switch corner {
	case TriA:
		return 180 - s.DegB - s.DegC
	case TriB:
		return s.DegB
	default:
		return s.DegC
	}
}

// Side returns the vector from corner v1 to corner v2.
func (s TriangleSpec) Side(v1, v2 TriCorner) v3.Vec {
	return s.UnitSide(v1, v2).MulScalar(s.Len(v1, v2))
}

// Len returns the length of the side between two corners, by the law of
// sines.
func (s TriangleSpec) Len(v1, v2 TriCorner) float64 {
	return s.LenBC / geom.SinDeg(s.Deg(TriA)) * geom.SinDeg(s.Deg(triOpposite(v1, v2)))
}

// UnitSide returns the direction from corner v1 to corner v2.
func (s TriangleSpec) UnitSide(v1, v2 TriCorner) v3.Vec {
	switch {
	case v1 == TriB && v2 == TriC:
		return s.unit(geom.AxisX)
	case v1 == TriB && v2 == TriA:
		return s.rotZ(s.Deg(TriB), s.unit(geom.AxisX))
	case v1 == TriC && v2 == TriA:
		return s.rotZ(-s.Deg(TriC), s.unit(geom.AxisX).Neg())
	default:
		return s.UnitSide(v2, v1).Neg()
	}
}

// RotFromX returns the rotation taking the spec's X axis to the given
// side's direction.
func (s TriangleSpec) RotFromX(v1, v2 TriCorner) (geom.Rot, error) {
	return geom.RotationBetween(s.unit(geom.AxisX), s.UnitSide(v1, v2))
}

// center returns where the corner dot's bottom-face center goes: in from
// the corner point along the angle bisector, far enough that the dot's
// cylinder touches both sides.
func (s TriangleSpec) center(corner TriCorner) v3.Vec {
	return s.Point(corner).Add(s.unitToCenter(corner).MulScalar(s.distToCenter(corner)))
}

func (s TriangleSpec) unitToCenter(corner TriCorner) v3.Vec {
	var v1, v2 TriCorner
	switch corner {
	case TriA:
		v1, v2 = TriA, TriB
	case TriB:
		v1, v2 = TriB, TriC
	default:
		v1, v2 = TriC, TriA
	}
	return s.rotZ(s.Deg(corner)/2, s.UnitSide(v1, v2))
}

func (s TriangleSpec) distToCenter(corner TriCorner) float64 {
	return s.Size / (2 * geom.SinDeg(s.Deg(corner)/2))
}

func (s TriangleSpec) unit(axis geom.Axis) v3.Vec {
	return s.Rot.Apply(axis.Vec())
}

func (s TriangleSpec) rotZ(degrees float64, v v3.Vec) v3.Vec {
	return geom.AxisDegrees(s.unit(geom.AxisZ), degrees).Apply(v)
}

func triOpposite(v1, v2 TriCorner) TriCorner {
	switch {
	case v1 != TriA && v2 != TriA:
		return TriA
	case v1 != TriB && v2 != TriB:
		return TriB
	default:
		return TriC
	}
}
