package shape

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/dotscad/pkg/csg"
	"github.com/chazu/dotscad/pkg/dots"
	"github.com/chazu/dotscad/pkg/geom"
)

// Rect is four dots at the corners of a (possibly rotated) rectangle.
type Rect struct {
	P00, P01, P11, P10 dots.Dot
}

// RectSpec describes a rect to build: the alignment point is placed at
// Pos, and XLength/YLength are the outer dimensions including the dots.
type RectSpec struct {
	Pos     v3.Vec
	Align   RectAlign
	XLength float64
	YLength float64
	Size    float64
	Rot     geom.Rot
	Shapes  RectShapes
}

// innerDims returns the span between dot origins: the outer dimensions
// less one dot size per axis, with no Z extent.
func (s RectSpec) innerDims() v3.Vec {
	return v3.Vec{X: s.XLength - s.Size, Y: s.YLength - s.Size}
}

// WithPos returns a copy of the spec at a new position.
func (s RectSpec) WithPos(pos v3.Vec) RectSpec {
	s.Pos = pos
	return s
}

// WithAlign returns a copy of the spec with a new alignment.
func (s RectSpec) WithAlign(align RectAlign) RectSpec {
	s.Align = align
	return s
}

// WithRot returns a copy of the spec with a new rotation.
func (s RectSpec) WithRot(rot geom.Rot) RectSpec {
	s.Rot = rot
	return s
}

// NewRect builds a rect from a spec.
func NewRect(spec RectSpec) (Rect, error) {
	if spec.XLength < spec.Size || spec.YLength < spec.Size {
		return Rect{}, fmt.Errorf("shape: rect dimensions %gx%g smaller than dot size %g: %w",
			spec.XLength, spec.YLength, spec.Size, geom.ErrArgument)
	}
	origin := spec.Pos.Sub(spec.Align.offset(dotDims(spec.Size), spec.innerDims(), spec.Rot))
	build := func(c geom.Corner2) dots.Dot {
		return dots.New(dots.Spec{
			Pos:   origin.Add(c.Offset(spec.innerDims(), spec.Rot)),
			Align: dots.AlignOrigin(),
			Size:  spec.Size,
			Rot:   spec.Rot,
			Shape: spec.Shapes.get(c),
		})
	}
	return Rect{
		P00: build(geom.C2P00),
		P01: build(geom.C2P01),
		P11: build(geom.C2P11),
		P10: build(geom.C2P10),
	}, nil
}

func dotDims(size float64) v3.Vec {
	return v3.Vec{X: size, Y: size, Z: size}
}

// Dot returns a copy of one of the four corner dots.
func (r Rect) Dot(c geom.Corner2) dots.Dot {
	switch c {
	case geom.C2P00:
		return r.P00
	case geom.C2P01:
		return r.P01
	case geom.C2P11:
		return r.P11
	default:
		return r.P10
	}
}

// Dots returns the corner dots in winding order.
func (r Rect) Dots() []dots.Dot {
	out := make([]dots.Dot, 0, 4)
	for _, c := range geom.Corners2Clockwise() {
		out = append(out, r.Dot(c))
	}
	return out
}

// Size returns the dot size.
func (r Rect) Size() float64 {
	return r.P00.Size
}

// Rot returns the rect's rotation frame.
func (r Rect) Rot() geom.Rot {
	return r.P00.Pose.Rot
}

// Pos returns the world position of the given alignment point.
func (r Rect) Pos(align RectAlign) v3.Vec {
	if align.midpoint {
		return geom.Midpoint(
			r.Dot(align.rectA).Corner(align.dotA),
			r.Dot(align.rectB).Corner(align.dotB),
		)
	}
	return r.Dot(align.rectA).Corner(align.dotA)
}

// DimVec returns the direction and length of one edge of the rect. The
// axis is relative to the rect's default orientation, not its rotated one.
func (r Rect) DimVec(axis geom.Axis) v3.Vec {
	origin := r.Pos(RectOrigin())
	var far geom.Corner3
	switch axis {
	case geom.AxisX:
		far = geom.C3P100
	case geom.AxisY:
		far = geom.C3P010
	default:
		far = geom.C3P001
	}
	return r.Pos(RectOutside(far)).Sub(origin)
}

// DimUnitVec returns the direction of one edge of the rect.
func (r Rect) DimUnitVec(axis geom.Axis) v3.Vec {
	return r.DimVec(axis).Normalize()
}

// DimLen returns the length of one edge of the rect.
func (r Rect) DimLen(axis geom.Axis) float64 {
	return r.DimVec(axis).Length()
}

// DropSolid hulls the rect's dots with copies dropped to the given Z
// plane, producing a solid that rests flat.
func (r Rect) DropSolid(bottomZ float64, shape dots.Shape) csg.Tree {
	return csg.DropSolid(r.Dots(), bottomZ, shape)
}

// MarkCorners unions small marker spheres at every dot corner, for
// debugging.
func (r Rect) MarkCorners() csg.Tree {
	var marks []csg.Tree
	for _, d := range geom.Corners3() {
		for _, c := range geom.Corners2Clockwise() {
			marks = append(marks, csg.Mark(r.Pos(rectCorner(c, d)), 1))
		}
	}
	return csg.Union(marks...)
}

// Link joins the rect's dots into a solid in the given style.
func (r Rect) Link(style RectLink) (csg.Tree, error) {
	switch style {
	case RectDots:
		return csg.Union(csg.FromDots(r.Dots())...), nil
	case RectSolid:
		return csg.Hull(csg.FromDots(r.Dots())...), nil
	case RectFrame:
		return csg.ChainLoop(csg.FromDots(r.Dots())...)
	case RectYPosts:
		return csg.Union(
			csg.Hull(csg.FromDot(r.P00), csg.FromDot(r.P01)),
			csg.Hull(csg.FromDot(r.P10), csg.FromDot(r.P11)),
		), nil
	case RectChamfer:
		return r.chamfer()
	default:
		return nil, fmt.Errorf("shape: unknown rect link style %d: %w", style, geom.ErrArgument)
	}
}

// chamfer replaces each dot with a tiny cuboid and hulls the vertical
// posts nearest the rect's interior, cutting the corners off the solid.
func (r Rect) chamfer() (csg.Tree, error) {
	size := r.Size() / 100

	var posts []csg.Tree
	for _, c := range geom.Corners2Clockwise() {
		cuboid, err := CuboidFromDot(r.Dot(c), size, CuboidShapesUniform(dots.Cube))
		if err != nil {
			return nil, err
		}
		for _, other := range geom.Corners2Clockwise() {
			if other == c {
				continue
			}
			post, err := cuboid.Link(CuboidZPost(other))
			if err != nil {
				return nil, err
			}
			posts = append(posts, post)
		}
	}
	return csg.Hull(posts...), nil
}

// ---------------------------------------------------------------------------
// Alignment
// ---------------------------------------------------------------------------

// RectAlign names a reference point on a rect: a dot corner of one of the
// four dots, or the midpoint of two such points.
type RectAlign struct {
	rectA geom.Corner2
	dotA  geom.Corner3
	rectB geom.Corner2
	dotB  geom.Corner3

	midpoint bool
}

func rectCorner(rect geom.Corner2, dot geom.Corner3) RectAlign {
	return RectAlign{rectA: rect, dotA: dot}
}

// RectOrigin aligns to the rect's outside P000 corner.
func RectOrigin() RectAlign {
	return RectOutside(geom.C3P000)
}

// RectOutside aligns to the given outer corner of the rect.
func RectOutside(corner geom.Corner3) RectAlign {
	return rectCorner(corner.ToCorner2(), corner)
}

// RectInside aligns to the given inner corner: the matching corner of the
// empty box framed by the four dots.
func RectInside(corner geom.Corner3) RectAlign {
	return rectCorner(corner.ToCorner2(), corner.Invert(geom.AxisX).Invert(geom.AxisY))
}

// RectAlignMidpoint aligns to the midpoint of two corner alignments.
func RectAlignMidpoint(a, b RectAlign) (RectAlign, error) {
	if a.midpoint || b.midpoint {
		return RectAlign{}, fmt.Errorf("shape: midpoint of midpoint alignments: %w", geom.ErrArgument)
	}
	return RectAlign{
		rectA: a.rectA, dotA: a.dotA,
		rectB: b.rectA, dotB: b.dotA,
		midpoint: true,
	}, nil
}

// RectOutsideMidpoint aligns to the midpoint of two outer corners.
func RectOutsideMidpoint(a, b geom.Corner3) RectAlign {
	al, _ := RectAlignMidpoint(RectOutside(a), RectOutside(b))
	return al
}

// RectInsideMidpoint aligns to the midpoint of two inner corners.
func RectInsideMidpoint(a, b geom.Corner3) RectAlign {
	al, _ := RectAlignMidpoint(RectInside(a), RectInside(b))
	return al
}

// RectCentroid aligns to the rect's center of mass.
func RectCentroid() RectAlign {
	return RectOutsideMidpoint(geom.C3P000, geom.C3P111)
}

// RectCenterFace aligns to the center of the given face of the rect.
func RectCenterFace(face geom.CubeFace) RectAlign {
	a, b := face.Corners()
	return RectOutsideMidpoint(a, b)
}

func (al RectAlign) offset(dotDims, rectDims v3.Vec, rot geom.Rot) v3.Vec {
	point := func(rect geom.Corner2, dot geom.Corner3) v3.Vec {
		return dot.Offset(dotDims, rot).Add(rect.Offset(rectDims, rot))
	}
	if al.midpoint {
		return point(al.rectA, al.dotA).Add(point(al.rectB, al.dotB)).MulScalar(0.5)
	}
	return point(al.rectA, al.dotA)
}

// ---------------------------------------------------------------------------
// Shapes and link styles
// ---------------------------------------------------------------------------

// RectShapes selects the solid drawn for each of a rect's dots. The zero
// value draws cubes everywhere.
type RectShapes struct {
	custom             bool
	common             dots.Shape
	p00, p01, p11, p10 dots.Shape
}

// RectShapesUniform draws the same solid for every dot.
func RectShapesUniform(s dots.Shape) RectShapes {
	return RectShapes{common: s}
}

// RectShapesCustom picks a solid per corner.
func RectShapesCustom(p00, p01, p11, p10 dots.Shape) RectShapes {
	return RectShapes{custom: true, p00: p00, p01: p01, p11: p11, p10: p10}
}

func (rs RectShapes) get(c geom.Corner2) dots.Shape {
	if !rs.custom {
		return rs.common
	}
	switch c {
	case geom.C2P00:
		return rs.p00
	case geom.C2P01:
		return rs.p01
	case geom.C2P11:
		return rs.p11
	default:
		return rs.p10
	}
}

// RectLink selects how a rect's dots are joined into a solid.
type RectLink int

const (
	// RectSolid hulls all four dots.
	RectSolid RectLink = iota
	// RectFrame chains the dots into a hollow border.
	RectFrame
	// RectDots draws the dots unconnected.
	RectDots
	// RectYPosts hulls each Y-axis pair of dots separately.
	RectYPosts
	// RectChamfer is RectSolid with the outer corners cut off.
	RectChamfer
)
