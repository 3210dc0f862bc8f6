package dots

import (
	"errors"
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/dotscad/pkg/geom"
)

func vecNear(t *testing.T, got, want v3.Vec) {
	t.Helper()
	if !got.Equals(want, 1e-9) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSpecOriginAlignments(t *testing.T) {
	cases := []struct {
		name  string
		align Align
		want  v3.Vec
	}{
		{"origin", AlignOrigin(), v3.Vec{X: 5, Y: 5, Z: 5}},
		{"far corner", AlignCorner(geom.C3P111), v3.Vec{X: 3, Y: 3, Z: 3}},
		{"centroid", Centroid(), v3.Vec{X: 4, Y: 4, Z: 4}},
		{"bottom face center", CenterFace(geom.FaceZ0), v3.Vec{X: 4, Y: 4, Z: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := New(Spec{
				Pos:   v3.Vec{X: 5, Y: 5, Z: 5},
				Align: tc.align,
				Size:  2,
				Rot:   geom.Identity(),
			})
			vecNear(t, d.Pose.Pos, tc.want)
			// The alignment point itself must land on Pos.
			vecNear(t, d.Pos(tc.align), v3.Vec{X: 5, Y: 5, Z: 5})
		})
	}
}

func TestRotatedCorner(t *testing.T) {
	// A unit dot spun 90 degrees about Z around its origin corner.
	d := New(Spec{
		Align: AlignOrigin(),
		Size:  1,
		Rot:   geom.AxisDegrees(v3.Vec{Z: 1}, 90),
	})
	vecNear(t, d.Corner(geom.C3P100), v3.Vec{Y: 1})
	vecNear(t, d.Corner(geom.C3P010), v3.Vec{X: -1})
	vecNear(t, d.Corner(geom.C3P001), v3.Vec{Z: 1})
}

func TestTranslateAndTo(t *testing.T) {
	d := Default().Translate(v3.Vec{X: 3})
	vecNear(t, d.Pose.Pos, v3.Vec{X: 3})

	d = d.TranslateTo(v3.Vec{X: 10, Y: 10, Z: 10}, Centroid())
	vecNear(t, d.Pos(Centroid()), v3.Vec{X: 10, Y: 10, Z: 10})
}

func TestRotateTo(t *testing.T) {
	target := geom.AxisDegrees(v3.Vec{Y: 1}, 30)
	d := Default().Rotate(geom.AxisDegrees(v3.Vec{X: 1}, 45)).RotateTo(target)
	if !d.Pose.Rot.Equals(target, 1e-9) {
		t.Errorf("got rot %+v, want %+v", d.Pose.Rot, target)
	}
}

func TestDimUnitVec(t *testing.T) {
	d := New(Spec{Size: 1, Rot: geom.AxisDegrees(v3.Vec{Z: 1}, 90)})
	vecNear(t, d.DimUnitVec(geom.AxisX), v3.Vec{Y: 1})
}

func TestWithCoord(t *testing.T) {
	d := Default().WithCoord(4, geom.AxisY)
	vecNear(t, d.Pose.Pos, v3.Vec{Y: 4})

	other := Default().Translate(v3.Vec{X: 7})
	vecNear(t, d.CopyCoordFrom(other, geom.AxisX).Pose.Pos, v3.Vec{X: 7, Y: 4})
}

func TestDrop(t *testing.T) {
	d := New(Spec{
		Pos:   v3.Vec{X: 2, Y: 3, Z: 9},
		Align: Centroid(),
		Size:  2,
		Rot:   geom.AxisDegrees(v3.Vec{X: 1}, 33),
	})
	dropped := d.Drop(0, Cube)
	// Sits flat at the given Z with the same XY center.
	vecNear(t, dropped.Pos(CenterFace(geom.FaceZ0)), v3.Vec{X: 2, Y: 3})
	if !dropped.Pose.Rot.Equals(geom.Identity(), 1e-9) {
		t.Errorf("dropped dot still rotated: %+v", dropped.Pose.Rot)
	}
}

func TestMinMaxCoord(t *testing.T) {
	d := New(Spec{
		Pos:   v3.Vec{X: 1, Y: 1, Z: 1},
		Align: AlignOrigin(),
		Size:  2,
		Rot:   geom.Identity(),
	})
	if got := d.MinCoord(geom.AxisX); math.Abs(got-1) > 1e-9 {
		t.Errorf("MinCoord = %v, want 1", got)
	}
	if got := d.MaxCoord(geom.AxisZ); math.Abs(got-3) > 1e-9 {
		t.Errorf("MaxCoord = %v, want 3", got)
	}

	// Rotation widens the axis-aligned extent.
	spun := d.Rotate(geom.AxisDegrees(v3.Vec{Z: 1}, 45))
	want := 2 * math.Sqrt2
	if got := spun.MaxCoord(geom.AxisY) - spun.MinCoord(geom.AxisY); math.Abs(got-want) > 1e-9 {
		t.Errorf("rotated extent = %v, want %v", got, want)
	}
}

func TestSliceQueries(t *testing.T) {
	a := Default()
	b := Default().Translate(v3.Vec{X: 5})
	ds := []Dot{a, b}

	if got := MinCoordOf(ds, geom.AxisX); got != 0 {
		t.Errorf("MinCoordOf = %v, want 0", got)
	}
	if got := MaxCoordOf(ds, geom.AxisX); got != 6 {
		t.Errorf("MaxCoordOf = %v, want 6", got)
	}
	if got := BoundLength(ds, geom.AxisX); got != 6 {
		t.Errorf("BoundLength = %v, want 6", got)
	}
	if got := MidCoordOf(ds, geom.AxisX); got != 3 {
		t.Errorf("MidCoordOf = %v, want 3", got)
	}
	if !math.IsNaN(MinCoordOf(nil, geom.AxisX)) {
		t.Error("MinCoordOf(nil) should be NaN")
	}

	if !a.LessThan(b, geom.AxisX) || b.LessThan(a, geom.AxisX) {
		t.Error("LessThan ordering wrong")
	}
}

func TestMapTranslateRotate(t *testing.T) {
	ds := []Dot{Default(), Default().Translate(v3.Vec{X: 1})}
	moved := Translate(ds, v3.Vec{Z: 2})
	vecNear(t, moved[0].Pose.Pos, v3.Vec{Z: 2})
	vecNear(t, moved[1].Pose.Pos, v3.Vec{X: 1, Z: 2})

	labeled := Map(ds, func(d Dot) Dot { return d.WithLabel("x") })
	for _, d := range labeled {
		if d.Label != "x" {
			t.Errorf("label not applied: %+v", d)
		}
	}
}

func TestExplodeRadially(t *testing.T) {
	d := New(Spec{
		Pos:   v3.Vec{X: 1, Y: 1},
		Align: Centroid(),
		Size:  1,
		Rot:   geom.Identity(),
	})
	out, err := d.ExplodeRadially(3, v3.Vec{Z: 1}, 4, false)
	if err != nil {
		t.Fatalf("ExplodeRadially: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("got %d dots, want 4", len(out))
	}
	for _, o := range out {
		r := o.Pos(Centroid()).Sub(d.Pos(Centroid())).Length()
		if math.Abs(r-3) > 1e-9 {
			t.Errorf("radius %v, want 3", r)
		}
	}
}

func TestSnake(t *testing.T) {
	start := Default()
	end := Default().Translate(v3.Vec{X: 4, Y: 5, Z: 6})
	s, err := NewSnake(start, end, [3]geom.Axis{geom.AxisZ, geom.AxisX, geom.AxisY})
	if err != nil {
		t.Fatalf("NewSnake: %v", err)
	}
	vecNear(t, s.Dots[0].Pose.Pos, v3.Vec{})
	vecNear(t, s.Dots[1].Pose.Pos, v3.Vec{Z: 6})
	vecNear(t, s.Dots[2].Pose.Pos, v3.Vec{X: 4, Z: 6})
	vecNear(t, s.Dots[3].Pose.Pos, v3.Vec{X: 4, Y: 5, Z: 6})

	if _, err := NewSnake(start, end, [3]geom.Axis{geom.AxisX, geom.AxisX, geom.AxisY}); !errors.Is(err, ErrSnakeOrder) {
		t.Errorf("repeated axis: got %v, want ErrSnakeOrder", err)
	}
}
