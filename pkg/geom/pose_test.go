package geom

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestPoseAtApply(t *testing.T) {
	p := PoseAt(v3.Vec{X: 1, Y: 2, Z: 3})
	vecNear(t, p.Apply(v3.Vec{X: 1}), v3.Vec{X: 2, Y: 2, Z: 3})
}

func TestComposeRotatesOffset(t *testing.T) {
	a := Pose{Pos: v3.Vec{X: 1}, Rot: AxisDegrees(v3.Vec{Z: 1}, 90)}
	b := PoseAt(v3.Vec{X: 1})
	// b's X offset lands on a's local X axis, which points along world Y.
	got := Compose(a, b)
	vecNear(t, got.Pos, v3.Vec{X: 1, Y: 1})
}

func TestPoseInverse(t *testing.T) {
	p := Pose{
		Pos: v3.Vec{X: 2, Y: -1, Z: 0.5},
		Rot: AxisDegrees(v3.Vec{X: 1, Z: 2}, 40),
	}
	round := Compose(p, p.Inverse())
	if !round.Equals(PoseAt(v3.Vec{}), 1e-9) {
		t.Errorf("p composed with its inverse is %+v, want identity", round)
	}

	// The inverse undoes Apply.
	local := v3.Vec{X: 1, Y: 2, Z: 3}
	vecNear(t, p.Inverse().Apply(p.Apply(local)), local)
}

func TestTranslateRotate(t *testing.T) {
	p := PoseAt(v3.Vec{X: 1}).Translate(v3.Vec{Y: 2})
	vecNear(t, p.Pos, v3.Vec{X: 1, Y: 2})

	r := AxisDegrees(v3.Vec{Z: 1}, 90)
	spun := PoseAt(v3.Vec{X: 1}).Rotate(r)
	vecNear(t, spun.Pos, v3.Vec{Y: 1})
	if !spun.Rot.Equals(r, 1e-9) {
		t.Errorf("rotation not composed into the pose")
	}
}

func genRot() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(0, math.Pi),     // polar angle of the axis
		gen.Float64Range(0, 2*math.Pi),   // azimuth of the axis
		gen.Float64Range(-math.Pi, math.Pi), // rotation angle
	).Map(func(vals []interface{}) Rot {
		theta := vals[0].(float64)
		phi := vals[1].(float64)
		angle := vals[2].(float64)
		axis := v3.Vec{
			X: math.Sin(theta) * math.Cos(phi),
			Y: math.Sin(theta) * math.Sin(phi),
			Z: math.Cos(theta),
		}
		return AxisAngle(axis, angle)
	})
}

func genPose() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(-10, 10),
		gen.Float64Range(-10, 10),
		gen.Float64Range(-10, 10),
		genRot(),
	).Map(func(vals []interface{}) Pose {
		return Pose{
			Pos: v3.Vec{
				X: vals[0].(float64),
				Y: vals[1].(float64),
				Z: vals[2].(float64),
			},
			Rot: vals[3].(Rot),
		}
	})
}

func TestPoseProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("composition is associative", prop.ForAll(
		func(a, b, c Pose) bool {
			left := Compose(Compose(a, b), c)
			right := Compose(a, Compose(b, c))
			return left.Equals(right, 1e-6)
		},
		genPose(), genPose(), genPose(),
	))

	properties.Property("identity is a left and right unit", prop.ForAll(
		func(p Pose) bool {
			id := PoseAt(v3.Vec{})
			return Compose(id, p).Equals(p, 1e-9) && Compose(p, id).Equals(p, 1e-9)
		},
		genPose(),
	))

	properties.Property("inverse cancels", prop.ForAll(
		func(p Pose) bool {
			return Compose(p, p.Inverse()).Equals(PoseAt(v3.Vec{}), 1e-6)
		},
		genPose(),
	))

	properties.Property("apply preserves distances", prop.ForAll(
		func(p Pose, x, y, z float64) bool {
			a := v3.Vec{X: x, Y: y, Z: z}
			b := v3.Vec{X: z, Y: x, Z: y}
			before := a.Sub(b).Length()
			after := p.Apply(a).Sub(p.Apply(b)).Length()
			return math.Abs(before-after) < 1e-6
		},
		genPose(),
		gen.Float64Range(-10, 10), gen.Float64Range(-10, 10), gen.Float64Range(-10, 10),
	))

	properties.TestingRun(t)
}
