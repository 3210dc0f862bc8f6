package geom

import (
	"errors"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ErrRotation is returned when a rotation cannot be computed, such as the
// rotation between two antiparallel vectors.
var ErrRotation = errors.New("geom: failed to compute rotation")

// rotTolerance is the magnitude below which a quaternion vector part is
// treated as zero (no rotation axis).
const rotTolerance = 1e-12

// Rot is a rotation frame in 3D space, represented as a unit quaternion.
// The zero value is not valid; use Identity or a constructor.
type Rot struct {
	W float64
	V v3.Vec
}

// Identity returns the no-rotation frame.
func Identity() Rot {
	return Rot{W: 1}
}

// AxisAngle returns the rotation of the given angle (radians, right hand
// rule) around the given axis. The axis need not be normalized.
func AxisAngle(axis v3.Vec, radians float64) Rot {
	n := axis.Normalize()
	half := radians / 2
	return Rot{
		W: math.Cos(half),
		V: n.MulScalar(math.Sin(half)),
	}
}

// AxisDegrees is AxisAngle with the angle in degrees.
func AxisDegrees(axis v3.Vec, degrees float64) Rot {
	return AxisAngle(axis, DegreesToRadians(degrees))
}

// RotationBetween returns the rotation that takes the direction of a to the
// direction of b. It fails with ErrRotation when the vectors are
// antiparallel, since the rotation axis is then ambiguous.
func RotationBetween(a, b v3.Vec) (Rot, error) {
	an := a.Normalize()
	bn := b.Normalize()
	cross := an.Cross(bn)
	dot := an.Dot(bn)
	if cross.Length() < rotTolerance {
		if dot < 0 {
			return Rot{}, ErrRotation
		}
		return Identity(), nil
	}
	return AxisAngle(cross, math.Atan2(cross.Length(), dot)), nil
}

// Compose returns the rotation equivalent to applying b first, then r.
// This matches quaternion multiplication r * b, so rotating a composed
// frame rotates in r's local frame.
func (r Rot) Compose(b Rot) Rot {
	return Rot{
		W: r.W*b.W - r.V.Dot(b.V),
		V: b.V.MulScalar(r.W).
			Add(r.V.MulScalar(b.W)).
			Add(r.V.Cross(b.V)),
	}.normalize()
}

// Inverse returns the reverse rotation.
func (r Rot) Inverse() Rot {
	return Rot{W: r.W, V: r.V.Neg()}
}

// Apply rotates the vector v by r.
func (r Rot) Apply(v v3.Vec) v3.Vec {
	// v' = v + 2*w*(q x v) + 2*(q x (q x v))
	t := r.V.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(r.W)).Add(r.V.Cross(t))
}

// Angle returns the rotation angle in radians, in [0, pi].
func (r Rot) Angle() float64 {
	w := math.Abs(r.W)
	if w > 1 {
		w = 1
	}
	return 2 * math.Acos(w)
}

// Degrees returns the rotation angle in degrees.
func (r Rot) Degrees() float64 {
	return RadiansToDegrees(r.Angle())
}

// Axis returns the unit rotation axis. A zero rotation has no defined axis;
// the Z axis is returned so that callers emitting axis/angle pairs always
// have a valid vector. A non-identity rotation with a vanishing vector part
// fails with ErrRotation.
func (r Rot) Axis() (v3.Vec, error) {
	length := r.V.Length()
	if length < rotTolerance {
		if r.Angle() > rotTolerance {
			return v3.Vec{}, ErrRotation
		}
		return v3.Vec{Z: 1}, nil
	}
	axis := r.V.DivScalar(length)
	if r.W < 0 {
		// Keep the angle in [0, pi] by flipping the axis instead.
		axis = axis.Neg()
	}
	return axis, nil
}

// Equals reports whether two rotations are the same within tolerance,
// accounting for the double cover (q and -q are the same rotation).
func (r Rot) Equals(b Rot, tolerance float64) bool {
	if math.Abs(r.W-b.W) <= tolerance && r.V.Equals(b.V, tolerance) {
		return true
	}
	return math.Abs(r.W+b.W) <= tolerance && r.V.Equals(b.V.Neg(), tolerance)
}

func (r Rot) normalize() Rot {
	length := math.Sqrt(r.W*r.W + r.V.Length2())
	if length < rotTolerance {
		return Identity()
	}
	return Rot{W: r.W / length, V: r.V.DivScalar(length)}
}
