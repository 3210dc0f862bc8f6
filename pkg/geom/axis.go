package geom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Axis identifies one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// Vec returns the unit vector along the axis.
func (a Axis) Vec() v3.Vec {
	switch a {
	case AxisX:
		return v3.Vec{X: 1}
	case AxisY:
		return v3.Vec{Y: 1}
	default:
		return v3.Vec{Z: 1}
	}
}

// Of returns the coordinate of v along the axis.
func (a Axis) Of(v v3.Vec) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// Axes lists all three axes in X, Y, Z order.
func Axes() []Axis {
	return []Axis{AxisX, AxisY, AxisZ}
}

// Corner1 is an end of a unit segment along the Z axis.
type Corner1 int

const (
	C1P0 Corner1 = iota
	C1P1
)

// IsHigh reports whether the corner is the far (1) end.
func (c Corner1) IsHigh() bool {
	return c == C1P1
}

// Sign returns +1 for the high end and -1 for the low end.
func (c Corner1) Sign() float64 {
	if c.IsHigh() {
		return 1
	}
	return -1
}

// Vec returns the corner position of a unit segment along Z.
func (c Corner1) Vec() v3.Vec {
	if c.IsHigh() {
		return v3.Vec{Z: 1}
	}
	return v3.Vec{}
}

// Offset returns the corner's position for a segment of the given length,
// rotated into the given frame.
func (c Corner1) Offset(zLength float64, rot Rot) v3.Vec {
	return rot.Apply(c.Vec().MulScalar(zLength))
}

// Corner2 is a corner of a unit square in the XY plane.
type Corner2 int

const (
	C2P00 Corner2 = iota
	C2P01
	C2P11
	C2P10
)

// Corners2Clockwise lists the square corners in winding order, starting
// from P00.
func Corners2Clockwise() []Corner2 {
	return []Corner2{C2P00, C2P01, C2P11, C2P10}
}

// Corners2ClockwiseFrom lists the square corners in winding order, starting
// from the given corner.
func Corners2ClockwiseFrom(start Corner2) []Corner2 {
	all := Corners2Clockwise()
	for i, c := range all {
		if c == start {
			return append(all[i:], all[:i]...)
		}
	}
	return all
}

// IsHigh reports whether the corner is at the far end of the given axis.
// The Z value of a square corner is not defined.
func (c Corner2) IsHigh(axis Axis) (bool, error) {
	if axis == AxisZ {
		return false, ErrArgument
	}
	x, y := c.bools()
	if axis == AxisX {
		return x, nil
	}
	return y, nil
}

// Vec returns the corner position of the unit square, with Z zero.
func (c Corner2) Vec() v3.Vec {
	x, y := c.bools()
	return v3.Vec{X: boolCoord(x), Y: boolCoord(y)}
}

// Offset returns the corner's position for a square with the given side
// lengths, rotated into the given frame.
func (c Corner2) Offset(dimensions v3.Vec, rot Rot) v3.Vec {
	return rot.Apply(c.Vec().Mul(dimensions))
}

// ToCorner3 lifts the square corner into a cube corner at the given height.
func (c Corner2) ToCorner3(z Corner1) Corner3 {
	x, y := c.bools()
	return corner3FromBools(x, y, z.IsHigh())
}

func (c Corner2) bools() (x, y bool) {
	switch c {
	case C2P00:
		return false, false
	case C2P01:
		return false, true
	case C2P11:
		return true, true
	default:
		return true, false
	}
}

// Corner3 is a corner of the unit cube.
type Corner3 int

const (
	C3P000 Corner3 = iota
	C3P010
	C3P110
	C3P100
	C3P001
	C3P011
	C3P111
	C3P101
)

// Corners3 lists all eight cube corners, bottom square first.
func Corners3() []Corner3 {
	return []Corner3{
		C3P000, C3P010, C3P110, C3P100,
		C3P001, C3P011, C3P111, C3P101,
	}
}

// IsHigh reports whether the corner is at the far end of the given axis.
func (c Corner3) IsHigh(axis Axis) bool {
	x, y, z := c.bools()
	switch axis {
	case AxisX:
		return x
	case AxisY:
		return y
	default:
		return z
	}
}

// CopyTo returns the corner with the given axis forced high or low.
func (c Corner3) CopyTo(axis Axis, high bool) Corner3 {
	x, y, z := c.bools()
	switch axis {
	case AxisX:
		x = high
	case AxisY:
		y = high
	default:
		z = high
	}
	return corner3FromBools(x, y, z)
}

// Invert returns the corner mirrored along the given axis.
func (c Corner3) Invert(axis Axis) Corner3 {
	return c.CopyTo(axis, !c.IsHigh(axis))
}

// InvertAll returns the diagonally opposite corner.
func (c Corner3) InvertAll() Corner3 {
	return c.Invert(AxisX).Invert(AxisY).Invert(AxisZ)
}

// ToCorner2 projects the cube corner onto the XY square.
func (c Corner3) ToCorner2() Corner2 {
	x, y, _ := c.bools()
	switch {
	case !x && !y:
		return C2P00
	case !x && y:
		return C2P01
	case x && y:
		return C2P11
	default:
		return C2P10
	}
}

// Vec returns the corner position of the unit cube.
func (c Corner3) Vec() v3.Vec {
	x, y, z := c.bools()
	return v3.Vec{X: boolCoord(x), Y: boolCoord(y), Z: boolCoord(z)}
}

// Offset returns the corner's position for a box with the given side
// lengths, rotated into the given frame.
func (c Corner3) Offset(dimensions v3.Vec, rot Rot) v3.Vec {
	return rot.Apply(c.Vec().Mul(dimensions))
}

func (c Corner3) bools() (x, y, z bool) {
	switch c {
	case C3P000:
		return false, false, false
	case C3P010:
		return false, true, false
	case C3P110:
		return true, true, false
	case C3P100:
		return true, false, false
	case C3P001:
		return false, false, true
	case C3P011:
		return false, true, true
	case C3P111:
		return true, true, true
	default:
		return true, false, true
	}
}

func corner3FromBools(x, y, z bool) Corner3 {
	switch {
	case !x && !y && !z:
		return C3P000
	case !x && y && !z:
		return C3P010
	case x && y && !z:
		return C3P110
	case x && !y && !z:
		return C3P100
	case !x && !y && z:
		return C3P001
	case !x && y && z:
		return C3P011
	case x && y && z:
		return C3P111
	default:
		return C3P101
	}
}

func boolCoord(high bool) float64 {
	if high {
		return 1
	}
	return 0
}

// CubeFace identifies one of the six faces of a cube by its axis and
// whether it is the near (0) or far (1) face along that axis.
type CubeFace int

const (
	FaceX0 CubeFace = iota
	FaceX1
	FaceY0
	FaceY1
	FaceZ0
	FaceZ1
)

// CubeFaces lists all six faces, low faces first.
func CubeFaces() []CubeFace {
	return []CubeFace{FaceX0, FaceY0, FaceZ0, FaceX1, FaceY1, FaceZ1}
}

// IsHigh reports whether this is the far face along its axis.
func (f CubeFace) IsHigh() bool {
	switch f {
	case FaceX1, FaceY1, FaceZ1:
		return true
	default:
		return false
	}
}

// Axis returns the axis the face is perpendicular to.
func (f CubeFace) Axis() Axis {
	switch f {
	case FaceX0, FaceX1:
		return AxisX
	case FaceY0, FaceY1:
		return AxisY
	default:
		return AxisZ
	}
}

// Corners returns the two diagonally opposite cube corners spanning the
// face.
func (f CubeFace) Corners() (Corner3, Corner3) {
	switch f {
	case FaceX0:
		return C3P000, C3P011
	case FaceX1:
		return C3P100, C3P111
	case FaceY0:
		return C3P000, C3P101
	case FaceY1:
		return C3P010, C3P111
	case FaceZ0:
		return C3P000, C3P110
	default:
		return C3P001, C3P111
	}
}
