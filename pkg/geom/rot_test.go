package geom

import (
	"errors"
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

const tol = 1e-9

func vecNear(t *testing.T, got, want v3.Vec) {
	t.Helper()
	if !got.Equals(want, 1e-9) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIdentityApply(t *testing.T) {
	v := v3.Vec{X: 1, Y: 2, Z: 3}
	vecNear(t, Identity().Apply(v), v)
}

func TestAxisAngleQuarterTurn(t *testing.T) {
	r := AxisAngle(v3.Vec{Z: 1}, math.Pi/2)
	vecNear(t, r.Apply(v3.Vec{X: 1}), v3.Vec{Y: 1})
	vecNear(t, r.Apply(v3.Vec{Y: 1}), v3.Vec{X: -1})
	vecNear(t, r.Apply(v3.Vec{Z: 1}), v3.Vec{Z: 1})
}

func TestAxisAngleUnnormalizedAxis(t *testing.T) {
	a := AxisAngle(v3.Vec{Z: 1}, 1)
	b := AxisAngle(v3.Vec{Z: 17.3}, 1)
	if !a.Equals(b, tol) {
		t.Errorf("axis length changed the rotation: %v vs %v", a, b)
	}
}

func TestAxisDegrees(t *testing.T) {
	r := AxisDegrees(v3.Vec{X: 1}, 90)
	vecNear(t, r.Apply(v3.Vec{Y: 1}), v3.Vec{Z: 1})
	if d := r.Degrees(); math.Abs(d-90) > tol {
		t.Errorf("got %v degrees, want 90", d)
	}
}

func TestRotationBetween(t *testing.T) {
	a := v3.Vec{X: 3}
	b := v3.Vec{Y: 0.5}
	r, err := RotationBetween(a, b)
	if err != nil {
		t.Fatalf("RotationBetween: %v", err)
	}
	vecNear(t, r.Apply(a.Normalize()), b.Normalize())

	if _, err := RotationBetween(v3.Vec{X: 1}, v3.Vec{X: 1}); err != nil {
		t.Errorf("parallel vectors should rotate by identity, got %v", err)
	}
	if _, err := RotationBetween(v3.Vec{X: 1}, v3.Vec{X: -1}); !errors.Is(err, ErrRotation) {
		t.Errorf("antiparallel vectors: got %v, want ErrRotation", err)
	}
}

func TestComposeMatchesSequentialApply(t *testing.T) {
	a := AxisDegrees(v3.Vec{Z: 1}, 90)
	b := AxisDegrees(v3.Vec{X: 1}, 45)
	v := v3.Vec{X: 1, Y: 2, Z: 3}
	vecNear(t, a.Compose(b).Apply(v), a.Apply(b.Apply(v)))
}

func TestInverse(t *testing.T) {
	r := AxisDegrees(v3.Vec{X: 1, Y: 2, Z: -1}, 73)
	round := r.Compose(r.Inverse())
	if round.Angle() > tol {
		t.Errorf("r * r^-1 has angle %v, want 0", round.Angle())
	}
	v := v3.Vec{X: -2, Y: 1, Z: 5}
	vecNear(t, r.Inverse().Apply(r.Apply(v)), v)
}

func TestAxis(t *testing.T) {
	axis, err := AxisDegrees(v3.Vec{Y: 1}, 30).Axis()
	if err != nil {
		t.Fatalf("Axis: %v", err)
	}
	vecNear(t, axis, v3.Vec{Y: 1})

	// A negative angle flips the axis so the reported angle stays in
	// [0, 180].
	r := AxisDegrees(v3.Vec{Z: 1}, -90)
	axis, err = r.Axis()
	if err != nil {
		t.Fatalf("Axis: %v", err)
	}
	vecNear(t, axis, v3.Vec{Z: -1})
	if d := r.Degrees(); math.Abs(d-90) > tol {
		t.Errorf("got %v degrees, want 90", d)
	}

	// The identity has no axis; Z is the fallback.
	axis, err = Identity().Axis()
	if err != nil {
		t.Fatalf("Axis: %v", err)
	}
	vecNear(t, axis, v3.Vec{Z: 1})
}

func TestEqualsDoubleCover(t *testing.T) {
	r := AxisDegrees(v3.Vec{X: 1}, 120)
	neg := Rot{W: -r.W, V: r.V.Neg()}
	if !r.Equals(neg, tol) {
		t.Error("q and -q should be the same rotation")
	}
	other := AxisDegrees(v3.Vec{X: 1}, 121)
	if r.Equals(other, tol) {
		t.Error("different angles reported equal")
	}
}
