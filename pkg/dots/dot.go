package dots

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/dotscad/pkg/geom"
)

// Shape is the solid drawn for a dot.
type Shape int

const (
	Cube Shape = iota
	Sphere
	Cylinder
)

func (s Shape) String() string {
	switch s {
	case Cube:
		return "cube"
	case Sphere:
		return "sphere"
	case Cylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// Dot is the smallest building block of a model: an oriented solid of a
// given size. The pose position is the dot's P000 corner; the pose rotation
// is the dot's frame. Dots are immutable values; a "moved" dot is a new
// value.
type Dot struct {
	Shape Shape
	Pose  geom.Pose
	Size  float64
	Label string
}

// Spec describes a dot to be created: the given alignment point of the dot
// is placed at Pos.
type Spec struct {
	Pos   v3.Vec
	Align Align
	Size  float64
	Rot   geom.Rot
	Shape Shape
	Label string
}

// Origin returns the P000 corner position implied by the spec.
func (s Spec) Origin() v3.Vec {
	return s.Pos.Sub(s.Align.Offset(s.Size, s.Rot))
}

// WithPos returns a copy of the spec at a new position.
func (s Spec) WithPos(pos v3.Vec) Spec {
	s.Pos = pos
	return s
}

// WithAlign returns a copy of the spec with a new alignment.
func (s Spec) WithAlign(align Align) Spec {
	s.Align = align
	return s
}

// WithRot returns a copy of the spec with a new rotation.
func (s Spec) WithRot(rot geom.Rot) Spec {
	s.Rot = rot
	return s
}

// WithSize returns a copy of the spec with a new size.
func (s Spec) WithSize(size float64) Spec {
	s.Size = size
	return s
}

// New creates a dot from a spec.
func New(spec Spec) Dot {
	return Dot{
		Shape: spec.Shape,
		Pose:  geom.Pose{Pos: spec.Origin(), Rot: spec.Rot},
		Size:  spec.Size,
		Label: spec.Label,
	}
}

// Default returns a unit cube dot at the origin.
func Default() Dot {
	return New(Spec{Size: 1, Rot: geom.Identity()})
}

// Align names a reference point on a dot: either one of its eight corners
// or the midpoint of two of them.
type Align struct {
	a, b     geom.Corner3
	midpoint bool
}

// AlignCorner aligns to the given corner.
func AlignCorner(c geom.Corner3) Align {
	return Align{a: c}
}

// AlignMidpoint aligns to the midpoint of two corners.
func AlignMidpoint(a, b geom.Corner3) Align {
	return Align{a: a, b: b, midpoint: true}
}

// AlignOrigin aligns to the P000 corner.
func AlignOrigin() Align {
	return AlignCorner(geom.C3P000)
}

// Centroid aligns to the center of the dot.
func Centroid() Align {
	return AlignMidpoint(geom.C3P000, geom.C3P111)
}

// CenterFace aligns to the center of the given face.
func CenterFace(face geom.CubeFace) Align {
	a, b := face.Corners()
	return AlignMidpoint(a, b)
}

// Offset returns the alignment point's offset from the P000 corner, for a
// dot of the given size in the given frame.
func (al Align) Offset(size float64, rot geom.Rot) v3.Vec {
	dims := v3.Vec{X: size, Y: size, Z: size}
	if al.midpoint {
		return al.a.Offset(dims, rot).Add(al.b.Offset(dims, rot)).MulScalar(0.5)
	}
	return al.a.Offset(dims, rot)
}

// Pos returns the world position of the given alignment point.
func (d Dot) Pos(align Align) v3.Vec {
	return d.Pose.Pos.Add(align.Offset(d.Size, d.Pose.Rot))
}

// Corner returns the world position of one of the dot's eight corners.
func (d Dot) Corner(c geom.Corner3) v3.Vec {
	return d.Pos(AlignCorner(c))
}

// DimUnitVec returns the dot's local axis direction in world space.
func (d Dot) DimUnitVec(axis geom.Axis) v3.Vec {
	return d.Pose.Rot.Apply(axis.Vec())
}

// RotAxis returns the dot's axis of rotation.
func (d Dot) RotAxis() (v3.Vec, error) {
	return d.Pose.Rot.Axis()
}

// RotDegrees returns the dot's angle of rotation in degrees.
func (d Dot) RotDegrees() float64 {
	return d.Pose.Rot.Degrees()
}

// Translate returns a copy of the dot moved by the given offset.
func (d Dot) Translate(offset v3.Vec) Dot {
	d.Pose = d.Pose.Translate(offset)
	return d
}

// Rotate returns the dot rotated about the world origin.
func (d Dot) Rotate(rot geom.Rot) Dot {
	d.Pose = d.Pose.Rotate(rot)
	return d
}

// RotateTo returns the dot rotated so that its frame matches the given one.
func (d Dot) RotateTo(rot geom.Rot) Dot {
	diff := rot.Compose(d.Pose.Rot.Inverse())
	return d.Rotate(diff)
}

// TranslateTo returns a copy of the dot with the given alignment point
// placed at pos.
func (d Dot) TranslateTo(pos v3.Vec, align Align) Dot {
	return New(Spec{
		Pos:   pos,
		Align: align,
		Size:  d.Size,
		Rot:   d.Pose.Rot,
		Shape: d.Shape,
		Label: d.Label,
	})
}

// TranslateAlongUntil moves the dot along the direction vector until the
// alignment point's coordinate on the given axis reaches the given value.
func (d Dot) TranslateAlongUntil(direction v3.Vec, axis geom.Axis, value float64, align Align) Dot {
	pos := geom.TranslateAlongUntil(d.Pos(align), direction, axis, value)
	return d.TranslateTo(pos, align)
}

// WithCoord returns a copy with the P000 coordinate on the given axis
// replaced.
func (d Dot) WithCoord(coord float64, axis geom.Axis) Dot {
	d.Pose.Pos = geom.CopyCoord(d.Pose.Pos, coord, axis)
	return d
}

// CopyCoordFrom returns a copy with the P000 coordinate on the given axis
// taken from the other dot.
func (d Dot) CopyCoordFrom(other Dot, axis geom.Axis) Dot {
	d.Pose.Pos = geom.CopyCoordFrom(d.Pose.Pos, other.Pose.Pos, axis)
	return d
}

// WithShape returns a copy with a different solid shape.
func (d Dot) WithShape(shape Shape) Dot {
	d.Shape = shape
	return d
}

// WithLabel returns a copy with a different label.
func (d Dot) WithLabel(label string) Dot {
	d.Label = label
	return d
}

// Dist returns the distance between the P000 corners of the dots, not the
// minimum distance between their surfaces.
func (d Dot) Dist(other Dot) float64 {
	return d.Pose.Pos.Sub(other.Pose.Pos).Length()
}

// Drop returns a dot centered under this one with its bottom face at the
// given Z height, sitting flat regardless of the original rotation.
func (d Dot) Drop(bottomZ float64, shape Shape) Dot {
	return d.DropAlong(geom.AxisZ.Vec(), bottomZ, shape)
}

// DropAlong is Drop along an arbitrary direction line: the dot slides along
// the direction until its center's Z coordinate equals bottomZ, then rests
// flat with its bottom face centered there.
func (d Dot) DropAlong(direction v3.Vec, bottomZ float64, shape Shape) Dot {
	pos := geom.TranslateAlongUntil(d.Pos(Centroid()), direction, geom.AxisZ, bottomZ)
	return New(Spec{
		Pos:   pos,
		Align: CenterFace(geom.FaceZ0),
		Size:  d.Size,
		Rot:   geom.Identity(),
		Shape: shape,
		Label: d.Label,
	})
}

// ExplodeRadially returns count copies of the dot, arranged in a circle of
// the given radius around the axis through the dot's center. A zero axis
// defaults to the dot's local Z. When adjustRotations is set, each copy is
// additionally spun around the circle axis to face outward.
func (d Dot) ExplodeRadially(radius float64, axis v3.Vec, count int, adjustRotations bool) ([]Dot, error) {
	if axis.Length() == 0 {
		axis = d.DimUnitVec(geom.AxisZ)
	}
	out := make([]Dot, 0, count)
	for i := 0; i < count; i++ {
		radians := float64(i) / float64(count) * 2 * math.Pi
		offset, err := geom.RadialOffset(radians, radius, axis)
		if err != nil {
			return nil, err
		}
		rot := d.Pose.Rot
		if adjustRotations {
			rot = geom.AxisAngle(axis, radians).Compose(rot)
		}
		out = append(out, New(Spec{
			Pos:   d.Pos(Centroid()).Add(offset),
			Align: Centroid(),
			Size:  d.Size,
			Rot:   rot,
			Shape: d.Shape,
			Label: d.Label,
		}))
	}
	return out, nil
}

// MinCoord returns the smallest coordinate of any dot corner on the axis.
func (d Dot) MinCoord(axis geom.Axis) float64 {
	return foldCorners(d, axis, math.Min)
}

// MaxCoord returns the largest coordinate of any dot corner on the axis.
func (d Dot) MaxCoord(axis geom.Axis) float64 {
	return foldCorners(d, axis, math.Max)
}

// LessThan reports whether d's extent starts before the other dot's on the
// given axis.
func (d Dot) LessThan(other Dot, axis geom.Axis) bool {
	return d.MinCoord(axis) < other.MinCoord(axis)
}

func foldCorners(d Dot, axis geom.Axis, f func(a, b float64) float64) float64 {
	corners := geom.Corners3()
	acc := axis.Of(d.Corner(corners[0]))
	for _, c := range corners[1:] {
		acc = f(acc, axis.Of(d.Corner(c)))
	}
	return acc
}

// MinCoordOf returns the smallest corner coordinate over all dots.
func MinCoordOf(ds []Dot, axis geom.Axis) float64 {
	if len(ds) == 0 {
		return math.NaN()
	}
	acc := ds[0].MinCoord(axis)
	for _, d := range ds[1:] {
		acc = math.Min(acc, d.MinCoord(axis))
	}
	return acc
}

// MaxCoordOf returns the largest corner coordinate over all dots.
func MaxCoordOf(ds []Dot, axis geom.Axis) float64 {
	if len(ds) == 0 {
		return math.NaN()
	}
	acc := ds[0].MaxCoord(axis)
	for _, d := range ds[1:] {
		acc = math.Max(acc, d.MaxCoord(axis))
	}
	return acc
}

// BoundLength returns the extent of the dots along the axis.
func BoundLength(ds []Dot, axis geom.Axis) float64 {
	return MaxCoordOf(ds, axis) - MinCoordOf(ds, axis)
}

// MidCoordOf returns the midpoint of the dots' extent along the axis.
func MidCoordOf(ds []Dot, axis geom.Axis) float64 {
	return 0.5 * (MinCoordOf(ds, axis) + MaxCoordOf(ds, axis))
}

// Translate returns copies of all dots moved by the given offset.
func Translate(ds []Dot, offset v3.Vec) []Dot {
	out := make([]Dot, len(ds))
	for i, d := range ds {
		out[i] = d.Translate(offset)
	}
	return out
}

// Rotate returns copies of all dots rotated about the world origin.
func Rotate(ds []Dot, rot geom.Rot) []Dot {
	out := make([]Dot, len(ds))
	for i, d := range ds {
		out[i] = d.Rotate(rot)
	}
	return out
}

// Map applies f to every dot, returning the new slice.
func Map(ds []Dot, f func(Dot) Dot) []Dot {
	out := make([]Dot, len(ds))
	for i, d := range ds {
		out[i] = f(d)
	}
	return out
}
