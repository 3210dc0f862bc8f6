package geom

import (
	"errors"
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestDegreeConversions(t *testing.T) {
	if got := DegreesToRadians(180); math.Abs(got-math.Pi) > tol {
		t.Errorf("DegreesToRadians(180) = %v", got)
	}
	if got := RadiansToDegrees(math.Pi / 2); math.Abs(got-90) > tol {
		t.Errorf("RadiansToDegrees(pi/2) = %v", got)
	}
	if got := SinDeg(30); math.Abs(got-0.5) > tol {
		t.Errorf("SinDeg(30) = %v", got)
	}
	if got := CosDeg(60); math.Abs(got-0.5) > tol {
		t.Errorf("CosDeg(60) = %v", got)
	}
}

func TestDegreesBetween(t *testing.T) {
	got, err := DegreesBetween(v3.Vec{X: 1}, v3.Vec{Y: 2})
	if err != nil {
		t.Fatalf("DegreesBetween: %v", err)
	}
	if math.Abs(got-90) > tol {
		t.Errorf("got %v, want 90", got)
	}
}

func TestCopyCoord(t *testing.T) {
	p := v3.Vec{X: 1, Y: 2, Z: 3}
	vecNear(t, CopyCoord(p, 9, AxisY), v3.Vec{X: 1, Y: 9, Z: 3})
	vecNear(t, CopyCoordFrom(p, v3.Vec{Z: 7}, AxisZ), v3.Vec{X: 1, Y: 2, Z: 7})
}

func TestTranslateAlongUntil(t *testing.T) {
	got := TranslateAlongUntil(v3.Vec{}, v3.Vec{X: 1, Y: 1}, AxisX, 2)
	vecNear(t, got, v3.Vec{X: 2, Y: 2})

	// Moving backwards along the direction is allowed.
	got = TranslateAlongUntil(v3.Vec{Z: 4}, v3.Vec{Z: 2}, AxisZ, 1)
	vecNear(t, got, v3.Vec{Z: 1})
}

func TestPlaneNormal(t *testing.T) {
	n := PlaneNormal(v3.Vec{}, v3.Vec{X: 1}, v3.Vec{Y: 1})
	vecNear(t, n, v3.Vec{Z: 1})
}

func TestRadialOffset(t *testing.T) {
	first, err := RadialOffset(0, 2, v3.Vec{Z: 1})
	if err != nil {
		t.Fatalf("RadialOffset: %v", err)
	}
	if math.Abs(first.Length()-2) > tol {
		t.Errorf("radius not preserved: %v", first)
	}
	if math.Abs(first.Z) > tol {
		t.Errorf("offset not perpendicular to axis: %v", first)
	}

	quarter, err := RadialOffset(math.Pi/2, 2, v3.Vec{Z: 1})
	if err != nil {
		t.Fatalf("RadialOffset: %v", err)
	}
	if math.Abs(first.Dot(quarter)) > tol {
		t.Errorf("quarter sweep not perpendicular to start: %v vs %v", first, quarter)
	}

	if _, err := RadialOffset(1, 1, v3.Vec{}); !errors.Is(err, ErrArgument) {
		t.Errorf("zero axis: got %v, want ErrArgument", err)
	}
}

func TestFraction(t *testing.T) {
	f, err := NewFraction(0.25)
	if err != nil {
		t.Fatalf("NewFraction: %v", err)
	}
	if f.Value() != 0.25 || f.Complement() != 0.75 {
		t.Errorf("Value/Complement: %v %v", f.Value(), f.Complement())
	}
	if got := f.WeightedAverage(8, 4); math.Abs(got-5) > tol {
		t.Errorf("WeightedAverage: %v", got)
	}
	vecNear(t, f.WeightedMidpoint(v3.Vec{X: 8}, v3.Vec{X: 4}), v3.Vec{X: 5})

	for _, bad := range []float64{-0.1, 1.1, math.NaN()} {
		if _, err := NewFraction(bad); !errors.Is(err, ErrArgument) {
			t.Errorf("NewFraction(%v): got %v, want ErrArgument", bad, err)
		}
	}
}
