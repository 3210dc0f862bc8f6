package geom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Pose is an oriented point in space: a position plus a rotation frame.
// Poses are immutable values; operations return new poses.
type Pose struct {
	Pos v3.Vec
	Rot Rot
}

// PoseAt returns an unrotated pose at the given position.
func PoseAt(pos v3.Vec) Pose {
	return Pose{Pos: pos, Rot: Identity()}
}

// Compose applies pose b in the local frame of a: b's offset is rotated by
// a's frame and added to a's position, and the rotations are composed.
func Compose(a, b Pose) Pose {
	return Pose{
		Pos: a.Pos.Add(a.Rot.Apply(b.Pos)),
		Rot: a.Rot.Compose(b.Rot),
	}
}

// Inverse returns the pose q such that Compose(p, q) is the identity pose.
func (p Pose) Inverse() Pose {
	inv := p.Rot.Inverse()
	return Pose{
		Pos: inv.Apply(p.Pos.Neg()),
		Rot: inv,
	}
}

// Apply maps a point from the pose's local frame into the world frame.
func (p Pose) Apply(local v3.Vec) v3.Vec {
	return p.Pos.Add(p.Rot.Apply(local))
}

// Translate returns a copy of the pose moved by the given world offset.
func (p Pose) Translate(offset v3.Vec) Pose {
	return Pose{Pos: p.Pos.Add(offset), Rot: p.Rot}
}

// Rotate returns the pose rotated about the world origin.
func (p Pose) Rotate(rot Rot) Pose {
	return Pose{Pos: rot.Apply(p.Pos), Rot: rot.Compose(p.Rot)}
}

// Equals reports whether two poses match within tolerance.
func (p Pose) Equals(b Pose, tolerance float64) bool {
	return p.Pos.Equals(b.Pos, tolerance) && p.Rot.Equals(b.Rot, tolerance)
}
