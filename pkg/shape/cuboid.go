package shape

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/dotscad/pkg/csg"
	"github.com/chazu/dotscad/pkg/dots"
	"github.com/chazu/dotscad/pkg/geom"
)

// Cuboid is a box made of two rects, one above the other.
type Cuboid struct {
	Top, Bot Rect
}

// CuboidSpec describes a cuboid to build: the alignment point is placed
// at Pos, and the lengths are the outer dimensions including the dots.
type CuboidSpec struct {
	Pos     v3.Vec
	Align   CuboidAlign
	XLength float64
	YLength float64
	ZLength float64
	Size    float64
	Rot     geom.Rot
	Shapes  CuboidShapes
}

func (s CuboidSpec) innerDims() v3.Vec {
	return v3.Vec{
		X: s.XLength - s.Size,
		Y: s.YLength - s.Size,
		Z: s.ZLength - s.Size,
	}
}

// CuboidSpecChamferZHole sizes the dots as a fraction of the smaller XY
// dimension, for cuboids used as chamfered holes.
type CuboidSpecChamferZHole struct {
	Pos     v3.Vec
	Align   CuboidAlign
	XLength float64
	YLength float64
	ZLength float64
	Chamfer geom.Fraction
	Rot     geom.Rot
	Shapes  CuboidShapes
}

// Spec converts the chamfer sizing into a plain cuboid spec.
func (s CuboidSpecChamferZHole) Spec() CuboidSpec {
	short := s.XLength
	if s.YLength < short {
		short = s.YLength
	}
	return CuboidSpec{
		Pos:     s.Pos,
		Align:   s.Align,
		XLength: s.XLength,
		YLength: s.YLength,
		ZLength: s.ZLength,
		Size:    s.Chamfer.Value() * short / 2,
		Rot:     s.Rot,
		Shapes:  s.Shapes,
	}
}

// NewCuboid builds a cuboid from a spec.
func NewCuboid(spec CuboidSpec) (Cuboid, error) {
	if spec.ZLength < spec.Size {
		return Cuboid{}, fmt.Errorf("shape: cuboid height %g smaller than dot size %g: %w",
			spec.ZLength, spec.Size, geom.ErrArgument)
	}
	origin := spec.Pos.Sub(spec.Align.offset(spec.innerDims(), dotDims(spec.Size), spec.Rot))

	toRect := func(level geom.Corner1) (Rect, error) {
		return NewRect(RectSpec{
			Pos:     origin.Add(level.Offset(spec.innerDims().Z, spec.Rot)),
			Align:   RectOrigin(),
			XLength: spec.XLength,
			YLength: spec.YLength,
			Size:    spec.Size,
			Rot:     spec.Rot,
			Shapes:  spec.Shapes.get(level),
		})
	}

	bot, err := toRect(geom.C1P0)
	if err != nil {
		return Cuboid{}, err
	}
	top, err := toRect(geom.C1P1)
	if err != nil {
		return Cuboid{}, err
	}
	return Cuboid{Top: top, Bot: bot}, nil
}

// NewCuboidChamferZHole builds a cuboid sized for a chamfered Z hole.
func NewCuboidChamferZHole(spec CuboidSpecChamferZHole) (Cuboid, error) {
	return NewCuboid(spec.Spec())
}

// CuboidFromDot splits a cube-shaped dot into a cuboid of the same extent
// whose corner dots have the given smaller size.
func CuboidFromDot(d dots.Dot, size float64, shapes CuboidShapes) (Cuboid, error) {
	if d.Shape != dots.Cube {
		return Cuboid{}, fmt.Errorf("shape: cuboid can only be built from a cube-shaped dot: %w", geom.ErrArgument)
	}
	return NewCuboid(CuboidSpec{
		Pos:     d.Pose.Pos,
		Align:   CuboidOrigin(),
		XLength: d.Size,
		YLength: d.Size,
		ZLength: d.Size,
		Size:    size,
		Rot:     d.Pose.Rot,
		Shapes:  shapes,
	})
}

// Dot returns the corner dot at the given cube corner.
func (c Cuboid) Dot(corner geom.Corner3) dots.Dot {
	rect := c.Bot
	if corner.IsHigh(geom.AxisZ) {
		rect = c.Top
	}
	return rect.Dot(corner.ToCorner2())
}

// Dots returns all eight dots, bottom ring first, both rings in winding
// order.
func (c Cuboid) Dots() []dots.Dot {
	return append(c.Bot.Dots(), c.Top.Dots()...)
}

// Shape converts the cuboid into a KindCube shape, applying the given
// labels in slot order. Pass nil to leave the dots unlabeled.
func (c Cuboid) Shape(labels []string) (Shape, error) {
	s, err := New(KindCube, c.Dots())
	if err != nil {
		return Shape{}, err
	}
	if labels == nil {
		return s, nil
	}
	return s.WithLabels(labels)
}

// Size returns the dot size.
func (c Cuboid) Size() float64 {
	return c.Top.Size()
}

// Rot returns the cuboid's rotation frame.
func (c Cuboid) Rot() geom.Rot {
	return c.Top.Rot()
}

// Pos returns the world position of the given alignment point.
func (c Cuboid) Pos(align CuboidAlign) v3.Vec {
	if align.midpoint {
		return geom.Midpoint(
			c.Dot(align.cuboidA).Corner(align.dotA),
			c.Dot(align.cuboidB).Corner(align.dotB),
		)
	}
	return c.Dot(align.cuboidA).Corner(align.dotA)
}

// Edge returns the direction and length of one edge of the cuboid,
// starting from its origin. The axis is relative to the cuboid's default
// orientation, not its rotated one.
func (c Cuboid) Edge(axis geom.Axis) v3.Vec {
	if axis == geom.AxisZ {
		return c.Pos(CuboidOutside(geom.C3P001)).Sub(c.Pos(CuboidOrigin()))
	}
	return c.Bot.DimVec(axis)
}

// EdgeUnitVec returns the direction of one edge of the cuboid.
func (c Cuboid) EdgeUnitVec(axis geom.Axis) v3.Vec {
	return c.Edge(axis).Normalize()
}

// EdgeLength returns the length of one edge of the cuboid.
func (c Cuboid) EdgeLength(axis geom.Axis) float64 {
	return c.Edge(axis).Length()
}

// VerticalPost returns the post between the upper and lower dots at the
// given XY corner.
func (c Cuboid) VerticalPost(corner geom.Corner2) Post {
	return Post{
		Top: c.Top.Dot(corner),
		Bot: c.Bot.Dot(corner),
	}
}

// RectFace returns one face of the cuboid as a rect.
func (c Cuboid) RectFace(face geom.CubeFace) Rect {
	switch face {
	case geom.FaceZ0:
		return c.Bot
	case geom.FaceZ1:
		return c.Top
	case geom.FaceX0:
		return Rect{
			P00: c.Bot.Dot(geom.C2P00), P10: c.Bot.Dot(geom.C2P01),
			P01: c.Top.Dot(geom.C2P00), P11: c.Top.Dot(geom.C2P01),
		}
	case geom.FaceX1:
		return Rect{
			P00: c.Bot.Dot(geom.C2P10), P10: c.Bot.Dot(geom.C2P11),
			P01: c.Top.Dot(geom.C2P10), P11: c.Top.Dot(geom.C2P11),
		}
	case geom.FaceY0:
		return Rect{
			P00: c.Bot.Dot(geom.C2P00), P10: c.Bot.Dot(geom.C2P10),
			P01: c.Top.Dot(geom.C2P00), P11: c.Top.Dot(geom.C2P10),
		}
	default:
		return Rect{
			P00: c.Bot.Dot(geom.C2P01), P10: c.Bot.Dot(geom.C2P11),
			P01: c.Top.Dot(geom.C2P01), P11: c.Top.Dot(geom.C2P11),
		}
	}
}

// MarkCorners unions small marker spheres at every alignment corner, for
// debugging.
func (c Cuboid) MarkCorners() csg.Tree {
	var marks []csg.Tree
	for _, cc := range geom.Corners3() {
		for _, d := range geom.Corners3() {
			marks = append(marks, csg.Mark(c.Pos(cuboidCorner(cc, d)), 1))
		}
	}
	return csg.Union(marks...)
}

// Link joins the cuboid's dots into a solid in the given style.
func (c Cuboid) Link(style CuboidLink) (csg.Tree, error) {
	switch style.kind {
	case cuboidSolid:
		bot, err := c.Bot.Link(RectSolid)
		if err != nil {
			return nil, err
		}
		top, err := c.Top.Link(RectSolid)
		if err != nil {
			return nil, err
		}
		return csg.Hull(bot, top), nil
	case cuboidFrame:
		bot, err := c.Bot.Link(RectFrame)
		if err != nil {
			return nil, err
		}
		top, err := c.Top.Link(RectFrame)
		if err != nil {
			return nil, err
		}
		children := []csg.Tree{bot, top}
		for _, corner := range geom.Corners2Clockwise() {
			children = append(children, c.VerticalPost(corner).Link(PostSolid))
		}
		return csg.Union(children...), nil
	case cuboidDots:
		bot, err := c.Bot.Link(RectDots)
		if err != nil {
			return nil, err
		}
		top, err := c.Top.Link(RectDots)
		if err != nil {
			return nil, err
		}
		return csg.Union(top, bot), nil
	case cuboidFace:
		return c.RectFace(style.face).Link(RectSolid)
	case cuboidZPost:
		return c.VerticalPost(style.corner).Link(PostSolid), nil
	case cuboidSides:
		var sides []csg.Tree
		for _, f := range []geom.CubeFace{geom.FaceX0, geom.FaceX1, geom.FaceY0, geom.FaceY1} {
			side, err := c.Link(CuboidFace(f))
			if err != nil {
				return nil, err
			}
			sides = append(sides, side)
		}
		return csg.Union(sides...), nil
	case cuboidOpenBot:
		sides, err := c.Link(CuboidSides)
		if err != nil {
			return nil, err
		}
		top, err := c.Link(CuboidFace(geom.FaceZ1))
		if err != nil {
			return nil, err
		}
		return csg.Union(sides, top), nil
	case cuboidChamferZ:
		bot, err := c.Bot.Link(RectChamfer)
		if err != nil {
			return nil, err
		}
		top, err := c.Top.Link(RectChamfer)
		if err != nil {
			return nil, err
		}
		return csg.Union(bot, top), nil
	default:
		return nil, fmt.Errorf("shape: unknown cuboid link style: %w", geom.ErrArgument)
	}
}

// ---------------------------------------------------------------------------
// Alignment
// ---------------------------------------------------------------------------

// CuboidAlign names a reference point on a cuboid: a dot corner of one of
// its eight dots, or the midpoint of two such points.
type CuboidAlign struct {
	cuboidA geom.Corner3
	dotA    geom.Corner3
	cuboidB geom.Corner3
	dotB    geom.Corner3

	midpoint bool
}

func cuboidCorner(cuboid, dot geom.Corner3) CuboidAlign {
	return CuboidAlign{cuboidA: cuboid, dotA: dot}
}

// CuboidOrigin aligns to the cuboid's outside P000 corner.
func CuboidOrigin() CuboidAlign {
	return CuboidOutside(geom.C3P000)
}

// CuboidOutside aligns to the given outer corner of the cuboid.
func CuboidOutside(corner geom.Corner3) CuboidAlign {
	return cuboidCorner(corner, corner)
}

// CuboidInside aligns to the given inner corner: the matching corner of
// the empty box framed by the eight dots.
func CuboidInside(corner geom.Corner3) CuboidAlign {
	return cuboidCorner(corner, corner.InvertAll())
}

// CuboidAlignMidpoint aligns to the midpoint of two corner alignments.
func CuboidAlignMidpoint(a, b CuboidAlign) (CuboidAlign, error) {
	if a.midpoint || b.midpoint {
		return CuboidAlign{}, fmt.Errorf("shape: midpoint of midpoint alignments: %w", geom.ErrArgument)
	}
	return CuboidAlign{
		cuboidA: a.cuboidA, dotA: a.dotA,
		cuboidB: b.cuboidA, dotB: b.dotA,
		midpoint: true,
	}, nil
}

// CuboidOutsideMidpoint aligns to the midpoint of two outer corners.
func CuboidOutsideMidpoint(a, b geom.Corner3) CuboidAlign {
	al, _ := CuboidAlignMidpoint(CuboidOutside(a), CuboidOutside(b))
	return al
}

// CuboidInsideMidpoint aligns to the midpoint of two inner corners.
func CuboidInsideMidpoint(a, b geom.Corner3) CuboidAlign {
	al, _ := CuboidAlignMidpoint(CuboidInside(a), CuboidInside(b))
	return al
}

// CuboidCentroid aligns to the cuboid's center of mass.
func CuboidCentroid() CuboidAlign {
	return CuboidOutsideMidpoint(geom.C3P000, geom.C3P111)
}

// CuboidCenterFace aligns to the center of the given face.
func CuboidCenterFace(face geom.CubeFace) CuboidAlign {
	a, b := face.Corners()
	return CuboidOutsideMidpoint(a, b)
}

// CuboidCenterInsideFace aligns to the center of the given face of the
// inner box.
func CuboidCenterInsideFace(face geom.CubeFace) CuboidAlign {
	a, b := face.Corners()
	return CuboidInsideMidpoint(a, b)
}

func (al CuboidAlign) offset(cuboidDims, dotDims v3.Vec, rot geom.Rot) v3.Vec {
	point := func(cuboid, dot geom.Corner3) v3.Vec {
		return dot.Offset(dotDims, rot).Add(cuboid.Offset(cuboidDims, rot))
	}
	if al.midpoint {
		return point(al.cuboidA, al.dotA).Add(point(al.cuboidB, al.dotB)).MulScalar(0.5)
	}
	return point(al.cuboidA, al.dotA)
}

// ---------------------------------------------------------------------------
// Shapes and link styles
// ---------------------------------------------------------------------------

// CuboidShapes selects the solid drawn for each of a cuboid's dots. The
// zero value draws cubes everywhere.
type CuboidShapes struct {
	custom bool
	round  bool
	common dots.Shape
	top    RectShapes
	bot    RectShapes
}

// CuboidShapesUniform draws the same solid for every dot.
func CuboidShapesUniform(s dots.Shape) CuboidShapes {
	return CuboidShapes{common: s}
}

// CuboidShapesRound draws spheres on top and cylinders on the bottom,
// rounding the upper edges of linked solids.
func CuboidShapesRound() CuboidShapes {
	return CuboidShapes{round: true}
}

// CuboidShapesCustom picks the rect shapes per ring.
func CuboidShapesCustom(top, bot RectShapes) CuboidShapes {
	return CuboidShapes{custom: true, top: top, bot: bot}
}

func (cs CuboidShapes) get(level geom.Corner1) RectShapes {
	switch {
	case cs.round:
		if level.IsHigh() {
			return RectShapesUniform(dots.Sphere)
		}
		return RectShapesUniform(dots.Cylinder)
	case cs.custom:
		if level.IsHigh() {
			return cs.top
		}
		return cs.bot
	default:
		return RectShapesUniform(cs.common)
	}
}

type cuboidLinkKind int

const (
	cuboidSolid cuboidLinkKind = iota
	cuboidFrame
	cuboidDots
	cuboidSides
	cuboidFace
	cuboidOpenBot
	cuboidZPost
	cuboidChamferZ
)

// CuboidLink selects how a cuboid's dots are joined into a solid.
type CuboidLink struct {
	kind   cuboidLinkKind
	face   geom.CubeFace
	corner geom.Corner2
}

var (
	// CuboidSolid hulls the whole cuboid.
	CuboidSolid = CuboidLink{kind: cuboidSolid}
	// CuboidFrame links the edges into a hollow frame.
	CuboidFrame = CuboidLink{kind: cuboidFrame}
	// CuboidDots draws the dots unconnected.
	CuboidDots = CuboidLink{kind: cuboidDots}
	// CuboidSides links the four vertical faces, leaving top and bottom
	// open.
	CuboidSides = CuboidLink{kind: cuboidSides}
	// CuboidOpenBot links the sides and the top, leaving the bottom open.
	CuboidOpenBot = CuboidLink{kind: cuboidOpenBot}
	// CuboidChamferZ chamfers both rects.
	CuboidChamferZ = CuboidLink{kind: cuboidChamferZ}
)

// CuboidFace links a single face of the cuboid.
func CuboidFace(face geom.CubeFace) CuboidLink {
	return CuboidLink{kind: cuboidFace, face: face}
}

// CuboidZPost links the vertical post at the given XY corner.
func CuboidZPost(corner geom.Corner2) CuboidLink {
	return CuboidLink{kind: cuboidZPost, corner: corner}
}
