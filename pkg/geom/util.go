package geom

import (
	"errors"
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ErrArgument is returned for arguments that are structurally invalid,
// such as asking for the Z coordinate of a square corner.
var ErrArgument = errors.New("geom: invalid argument")

// RadiansToDegrees converts an angle from radians to degrees.
func RadiansToDegrees(rad float64) float64 {
	return rad / math.Pi * 180
}

// DegreesToRadians converts an angle from degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg / 180 * math.Pi
}

// SinDeg returns the sine of an angle given in degrees.
func SinDeg(degrees float64) float64 {
	return math.Sin(DegreesToRadians(degrees))
}

// CosDeg returns the cosine of an angle given in degrees.
func CosDeg(degrees float64) float64 {
	return math.Cos(DegreesToRadians(degrees))
}

// DegreesBetween returns the angle between two vectors in degrees.
func DegreesBetween(a, b v3.Vec) (float64, error) {
	rot, err := RotationBetween(a, b)
	if err != nil {
		return 0, err
	}
	return rot.Degrees(), nil
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b v3.Vec) v3.Vec {
	return a.Add(b).MulScalar(0.5)
}

// CopyCoord returns p with its coordinate along the given axis replaced.
func CopyCoord(p v3.Vec, coord float64, axis Axis) v3.Vec {
	switch axis {
	case AxisX:
		p.X = coord
	case AxisY:
		p.Y = coord
	default:
		p.Z = coord
	}
	return p
}

// CopyCoordFrom returns p with its coordinate along the given axis taken
// from other.
func CopyCoordFrom(p, other v3.Vec, axis Axis) v3.Vec {
	return CopyCoord(p, axis.Of(other), axis)
}

// TranslateAlongUntil moves p along the direction vector until its
// coordinate on the given axis reaches the given value. The direction must
// not be perpendicular to the axis.
func TranslateAlongUntil(p, direction v3.Vec, axis Axis, value float64) v3.Vec {
	m := (value - axis.Of(p)) / axis.Of(direction)
	return p.Add(direction.MulScalar(m))
}

// PlaneNormal returns the (unnormalized) normal of the plane through the
// three points, wound counterclockwise when seen from the normal side.
func PlaneNormal(origin, end1, end2 v3.Vec) v3.Vec {
	return end1.Sub(origin).Cross(end2.Sub(origin))
}

// RadialOffset returns a vector of the given radius, perpendicular to the
// given axis, swept by the given angle around it. Fails when the axis is
// zero-length.
func RadialOffset(radians, radius float64, axis v3.Vec) (v3.Vec, error) {
	if axis.Length() < rotTolerance {
		return v3.Vec{}, ErrArgument
	}
	n := axis.Normalize()
	// Any vector not parallel to the axis seeds the perpendicular.
	seed := v3.Vec{X: 1}
	if math.Abs(n.Dot(seed)) > 1-1e-6 {
		seed = v3.Vec{Y: 1}
	}
	perp := n.Cross(seed).Normalize().MulScalar(radius)
	return AxisAngle(n, radians).Apply(perp), nil
}

// Fraction is a ratio checked to lie in [0, 1].
type Fraction struct {
	v float64
}

// NewFraction validates and wraps a ratio.
func NewFraction(value float64) (Fraction, error) {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return Fraction{}, fmt.Errorf("geom: invalid ratio %v: %w", value, ErrArgument)
	}
	return Fraction{v: value}, nil
}

// Value returns the wrapped ratio.
func (f Fraction) Value() float64 {
	return f.v
}

// Complement returns 1 minus the ratio.
func (f Fraction) Complement() float64 {
	return 1 - f.v
}

// WeightedAverage mixes a and b, weighting a by the fraction.
func (f Fraction) WeightedAverage(a, b float64) float64 {
	return a*f.v + b*f.Complement()
}

// WeightedMidpoint mixes two points, weighting a by the fraction.
func (f Fraction) WeightedMidpoint(a, b v3.Vec) v3.Vec {
	return a.MulScalar(f.v).Add(b.MulScalar(f.Complement()))
}
