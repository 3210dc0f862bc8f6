package hull

import (
	"errors"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/dotscad/pkg/dots"
	"github.com/chazu/dotscad/pkg/geom"
)

func rimDot(label string, pos v3.Vec) dots.Dot {
	return dots.New(dots.Spec{
		Pos:   pos,
		Align: dots.Centroid(),
		Size:  1,
		Rot:   geom.Identity(),
		Label: label,
	})
}

func squareRim(z float64, labels [4]string) []dots.Dot {
	return []dots.Dot{
		rimDot(labels[0], v3.Vec{X: 0, Y: 0, Z: z}),
		rimDot(labels[1], v3.Vec{X: 4, Y: 0, Z: z}),
		rimDot(labels[2], v3.Vec{X: 4, Y: 4, Z: z}),
		rimDot(labels[3], v3.Vec{X: 0, Y: 4, Z: z}),
	}
}

func TestBridgeEqualRims(t *testing.T) {
	rimA := squareRim(0, [4]string{"a", "b", "c", "d"})
	// Same cycle, rotated start.
	rimB := []dots.Dot{
		rimDot("c", v3.Vec{X: 4, Y: 4, Z: 5}),
		rimDot("d", v3.Vec{X: 0, Y: 4, Z: 5}),
		rimDot("a", v3.Vec{X: 0, Y: 0, Z: 5}),
		rimDot("b", v3.Vec{X: 4, Y: 0, Z: 5}),
	}
	m, err := Bridge(rimA, rimB)
	if err != nil {
		t.Fatalf("Bridge: %v", err)
	}
	if len(m.Faces) != 4 {
		t.Fatalf("got %d faces, want 4", len(m.Faces))
	}
	for i, face := range m.Faces {
		if len(face) != 4 {
			t.Errorf("face %d has %d vertices, want 4", i, len(face))
		}
	}
	if len(m.Points) != 8 {
		t.Errorf("got %d points, want 8", len(m.Points))
	}
	// Rotation must have been resolved by label, so point 4 pairs with
	// point 0 directly above it.
	if got := m.Points[4]; got.X != 0 || got.Y != 0 || got.Z != 5 {
		t.Errorf("label matching failed, point 4 = %v", got)
	}
	checkOutward(t, m)
}

func TestBridgeOffByOne(t *testing.T) {
	long := squareRim(0, [4]string{"a", "b", "c", "d"})
	short := []dots.Dot{
		rimDot("a", v3.Vec{X: 0, Y: 0, Z: 5}),
		rimDot("b", v3.Vec{X: 4, Y: 0, Z: 5}),
		rimDot("c", v3.Vec{X: 2, Y: 4, Z: 5}),
	}

	for _, order := range []struct {
		name string
		a, b []dots.Dot
	}{
		{"long first", long, short},
		{"short first", short, long},
	} {
		t.Run(order.name, func(t *testing.T) {
			m, err := Bridge(order.a, order.b)
			if err != nil {
				t.Fatalf("Bridge: %v", err)
			}
			if len(m.Faces) != 4 {
				t.Fatalf("got %d faces, want 4", len(m.Faces))
			}
			quads, tris := 0, 0
			for _, face := range m.Faces {
				switch len(face) {
				case 4:
					quads++
				case 3:
					tris++
				default:
					t.Errorf("face with %d vertices", len(face))
				}
			}
			if quads != 2 || tris != 2 {
				t.Errorf("got %d quads and %d triangles, want 2 and 2", quads, tris)
			}
			checkOutward(t, m)
		})
	}
}

func TestBridgeLabelMismatch(t *testing.T) {
	base := squareRim(0, [4]string{"a", "b", "c", "d"})
	cases := []struct {
		name string
		rimB []dots.Dot
	}{
		{"reversed cycle", squareRim(5, [4]string{"a", "d", "c", "b"})},
		{"disjoint labels", squareRim(5, [4]string{"w", "x", "y", "z"})},
		{"length gap of two", []dots.Dot{
			rimDot("a", v3.Vec{Z: 5}),
			rimDot("b", v3.Vec{X: 4, Z: 5}),
		}},
		{"unlabeled dot", []dots.Dot{
			rimDot("a", v3.Vec{Z: 5}),
			rimDot("b", v3.Vec{X: 4, Z: 5}),
			rimDot("c", v3.Vec{X: 4, Y: 4, Z: 5}),
			rimDot("", v3.Vec{Y: 4, Z: 5}),
		}},
		{"duplicate label", squareRim(5, [4]string{"a", "b", "b", "d"})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Bridge(base, tc.rimB)
			var lerr *LabelError
			if !errors.As(err, &lerr) {
				t.Fatalf("got %v, want *LabelError", err)
			}
		})
	}
}

func TestBridgeIncompatibleOrder(t *testing.T) {
	long := squareRim(0, [4]string{"a", "b", "c", "d"})
	// Short rim carries the long rim's labels in a different cyclic order.
	short := []dots.Dot{
		rimDot("a", v3.Vec{Z: 5}),
		rimDot("c", v3.Vec{X: 4, Z: 5}),
		rimDot("b", v3.Vec{X: 2, Y: 4, Z: 5}),
	}
	_, err := Bridge(long, short)
	var lerr *LabelError
	if !errors.As(err, &lerr) {
		t.Fatalf("got %v, want *LabelError", err)
	}
}
