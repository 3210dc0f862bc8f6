package shape

import "fmt"

// Kind fixes the topology of a shape: its dot count, the face-index
// template applied to the dot centroids, and the index cycle of each cap
// rim. The dot ordering convention is bottom ring first, then the top
// dots, both in winding order.
type Kind struct {
	name  string
	sides int
}

var (
	// KindCube is a box: two four-dot rings, six quad faces.
	KindCube = Kind{name: "cube", sides: 4}

	// KindWedge is a box with the top collapsed to a ridge over the
	// bottom ring's first edge: four bottom dots, two top dots, three
	// quads and two triangles.
	KindWedge = Kind{name: "wedge", sides: 4}
)

// KindPrism is an n-gonal prism: two n-dot rings, two n-gon caps and n
// quad sides. n must be at least 3.
func KindPrism(n int) Kind {
	return Kind{name: "prism", sides: n}
}

func (k Kind) String() string {
	if k.name == "prism" {
		return fmt.Sprintf("prism%d", k.sides)
	}
	return k.name
}

func (k Kind) valid() bool {
	switch k.name {
	case "cube", "wedge":
		return k.sides == 4
	case "prism":
		return k.sides >= 3
	default:
		return false
	}
}

// NumDots returns the number of dots the kind requires.
func (k Kind) NumDots() int {
	if k.name == "wedge" {
		return 6
	}
	return 2 * k.sides
}

// faces returns the kind's face-index template. Winding within the
// template is arbitrary; faces are re-oriented outward when applied.
func (k Kind) faces() [][]int {
	if k.name == "wedge" {
		// Ridge dots 4 and 5 sit over bottom dots 0 and 1.
		return [][]int{
			{0, 1, 2, 3},
			{0, 1, 5, 4},
			{2, 3, 4, 5},
			{1, 2, 5},
			{3, 0, 4},
		}
	}
	n := k.sides
	faces := make([][]int, 0, n+2)
	bottom := make([]int, n)
	top := make([]int, n)
	for i := 0; i < n; i++ {
		bottom[i] = i
		top[i] = n + i
	}
	faces = append(faces, bottom, top)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		faces = append(faces, []int{i, next, n + next, n + i})
	}
	return faces
}

// rim returns the dot indices of a cap cycle.
func (k Kind) rim(which RimID) ([]int, error) {
	n := k.sides
	var lo, count int
	switch which {
	case RimBottom:
		lo, count = 0, n
	case RimTop:
		lo, count = n, n
		if k.name == "wedge" {
			count = 2
		}
	default:
		return nil, fmt.Errorf("shape: %s has no rim %d", k, which)
	}
	out := make([]int, count)
	for i := range out {
		out[i] = lo + i
	}
	return out, nil
}

// RimID selects one of a shape's cap rims.
type RimID int

const (
	RimBottom RimID = iota
	RimTop
)

func (r RimID) String() string {
	switch r {
	case RimBottom:
		return "bottom"
	case RimTop:
		return "top"
	default:
		return "unknown"
	}
}
