package shape

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/dotscad/pkg/dots"
	"github.com/chazu/dotscad/pkg/hull"
)

// ArityError reports a dot count that does not match the shape kind.
type ArityError struct {
	Kind Kind
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("shape: %s needs %d dots, got %d", e.Kind, e.Kind.NumDots(), e.Got)
}

// Shape is a solid with a fixed topology: a Kind plus the dots filling its
// slots, in the kind's ordering (bottom ring first, then top).
type Shape struct {
	Kind Kind
	Dots []dots.Dot
}

// New builds a shape, checking the dot count against the kind's arity.
func New(kind Kind, ds []dots.Dot) (Shape, error) {
	if !kind.valid() {
		return Shape{}, fmt.Errorf("shape: invalid kind %q", kind.name)
	}
	if len(ds) != kind.NumDots() {
		return Shape{}, &ArityError{Kind: kind, Got: len(ds)}
	}
	return Shape{Kind: kind, Dots: append([]dots.Dot(nil), ds...)}, nil
}

// WithLabels returns a copy of the shape with the labels applied to its
// dots in slot order.
func (s Shape) WithLabels(labels []string) (Shape, error) {
	if len(labels) != len(s.Dots) {
		return Shape{}, &ArityError{Kind: s.Kind, Got: len(labels)}
	}
	ds := make([]dots.Dot, len(s.Dots))
	for i, d := range s.Dots {
		ds[i] = d.WithLabel(labels[i])
	}
	return Shape{Kind: s.Kind, Dots: ds}, nil
}

// Centroids returns the world-space center of each dot, in slot order.
func (s Shape) Centroids() []v3.Vec {
	out := make([]v3.Vec, len(s.Dots))
	for i, d := range s.Dots {
		out[i] = d.Pos(dots.Centroid())
	}
	return out
}

// Faces applies the kind's face template to the dot centroids and orients
// every face outward from the shape centroid, regardless of how the shape
// is rotated or where its dots ended up.
func (s Shape) Faces() (*hull.Mesh, error) {
	return hull.FromTemplate(s.Centroids(), s.Kind.faces())
}

// Rim returns the labeled dot cycle of the given cap, for bridging.
func (s Shape) Rim(which RimID) ([]dots.Dot, error) {
	idx, err := s.Kind.rim(which)
	if err != nil {
		return nil, err
	}
	out := make([]dots.Dot, len(idx))
	for i, j := range idx {
		if j >= len(s.Dots) {
			return nil, &ArityError{Kind: s.Kind, Got: len(s.Dots)}
		}
		out[i] = s.Dots[j]
	}
	return out, nil
}
