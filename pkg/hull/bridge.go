package hull

import (
	"fmt"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/dotscad/pkg/dots"
)

// LabelError reports two rims whose dot labels cannot be matched: counts
// differing by more than one, duplicate or missing labels, or label cycles
// that no rotation brings into correspondence. It is a model-authoring
// error and aborts the whole render.
type LabelError struct {
	LabelsA []string
	LabelsB []string
	Reason  string
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("hull: rim labels [%s] and [%s] don't correspond: %s",
		strings.Join(e.LabelsA, " "), strings.Join(e.LabelsB, " "), e.Reason)
}

// Bridge derives the connector surface joining two shape rims. Rims are
// cyclic sequences of labeled dots; corresponding dots are matched by
// label, allowing any cyclic rotation. Equal-length rims produce a ring of
// quads; rims whose lengths differ by one produce quads plus two triangles
// around the unmatched dot. The face count always equals the longer rim
// length, and winding is consistent with an outward-facing ring.
func Bridge(rimA, rimB []dots.Dot) (*Mesh, error) {
	labelsA, err := rimLabels(rimA)
	if err != nil {
		return nil, err
	}
	labelsB, err := rimLabels(rimB)
	if err != nil {
		return nil, err
	}

	switch {
	case len(rimA) == len(rimB):
		return bridgeEqual(rimA, rimB, labelsA, labelsB)
	case len(rimA) == len(rimB)+1:
		return bridgeOffByOne(rimA, rimB, labelsA, labelsB)
	case len(rimB) == len(rimA)+1:
		m, err := bridgeOffByOne(rimB, rimA, labelsB, labelsA)
		if err != nil {
			return nil, err
		}
		// Flip back so winding is consistent with the A-to-B direction.
		for _, face := range m.Faces {
			reverse(face)
		}
		m.orientOutward(m.Centroid())
		return m, nil
	default:
		return nil, &LabelError{
			LabelsA: labelsA,
			LabelsB: labelsB,
			Reason:  fmt.Sprintf("rim lengths %d and %d differ by more than one", len(rimA), len(rimB)),
		}
	}
}

// rimLabels extracts and validates the labels of a rim: every dot must be
// labeled, and labels must be unique within the rim.
func rimLabels(rim []dots.Dot) ([]string, error) {
	labels := make([]string, len(rim))
	seen := make(map[string]int)
	for i, d := range rim {
		if d.Label == "" {
			return nil, &LabelError{Reason: fmt.Sprintf("rim dot %d has no label", i)}
		}
		if j, dup := seen[d.Label]; dup {
			return nil, &LabelError{Reason: fmt.Sprintf("label %q appears at rim positions %d and %d", d.Label, j, i)}
		}
		seen[d.Label] = i
		labels[i] = d.Label
	}
	return labels, nil
}

// rotationOffset finds k such that b rotated left by k matches a, or -1.
func rotationOffset(a, b []string) int {
	n := len(a)
	for k := 0; k < n; k++ {
		match := true
		for i := 0; i < n; i++ {
			if a[i] != b[(i+k)%n] {
				match = false
				break
			}
		}
		if match {
			return k
		}
	}
	return -1
}

// bridgeEqual lofts two equal-length rims with one quad per rim edge.
func bridgeEqual(rimA, rimB []dots.Dot, labelsA, labelsB []string) (*Mesh, error) {
	n := len(rimA)
	k := rotationOffset(labelsA, labelsB)
	if k < 0 {
		return nil, &LabelError{
			LabelsA: labelsA,
			LabelsB: labelsB,
			Reason:  "no cyclic rotation matches the label cycles",
		}
	}

	points := make([]v3.Vec, 0, 2*n)
	for _, d := range rimA {
		points = append(points, d.Pos(dots.Centroid()))
	}
	for i := range rimB {
		points = append(points, rimB[(i+k)%n].Pos(dots.Centroid()))
	}

	m := &Mesh{Points: points}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		m.Faces = append(m.Faces, []int{i, next, n + next, n + i})
	}
	m.orientOutward(m.Centroid())
	return m, nil
}

// bridgeOffByOne lofts a rim onto one that is shorter by a single dot.
// Every label of the short rim must appear on the long rim in compatible
// cyclic order; the long rim's single unmatched dot bridges to its
// neighbors' partners with two triangles.
func bridgeOffByOne(long, short []dots.Dot, labelsLong, labelsShort []string) (*Mesh, error) {
	nL := len(long)
	nS := len(short)

	// partner[i] is the short-rim index matching long-rim dot i, or -1.
	partner := make([]int, nL)
	shortIndex := make(map[string]int, nS)
	for i, l := range labelsShort {
		shortIndex[l] = i
	}
	unmatched := -1
	for i, l := range labelsLong {
		j, ok := shortIndex[l]
		if !ok {
			if unmatched >= 0 {
				return nil, &LabelError{
					LabelsA: labelsLong,
					LabelsB: labelsShort,
					Reason:  "more than one unmatched label on the longer rim",
				}
			}
			unmatched = i
			partner[i] = -1
			continue
		}
		partner[i] = j
	}
	if unmatched < 0 {
		return nil, &LabelError{
			LabelsA: labelsLong,
			LabelsB: labelsShort,
			Reason:  "duplicate labels across rims of unequal length",
		}
	}

	// The matched labels must advance through the short rim one step per
	// long-rim step, i.e. the cycles agree after deleting the odd dot.
	step := 0
	prev := -1
	for o := 0; o < nL; o++ {
		i := (unmatched + 1 + o) % nL
		if partner[i] < 0 {
			continue
		}
		if prev >= 0 && partner[i] != (prev+1)%nS {
			return nil, &LabelError{
				LabelsA: labelsLong,
				LabelsB: labelsShort,
				Reason:  "label cycles are in incompatible order",
			}
		}
		prev = partner[i]
		step++
	}
	if step != nS {
		return nil, &LabelError{
			LabelsA: labelsLong,
			LabelsB: labelsShort,
			Reason:  "short rim labels missing from the longer rim",
		}
	}

	points := make([]v3.Vec, 0, nL+nS)
	for _, d := range long {
		points = append(points, d.Pos(dots.Centroid()))
	}
	for _, d := range short {
		points = append(points, d.Pos(dots.Centroid()))
	}

	m := &Mesh{Points: points}
	for i := 0; i < nL; i++ {
		next := (i + 1) % nL
		switch {
		case partner[i] >= 0 && partner[next] >= 0:
			m.Faces = append(m.Faces, []int{i, next, nL + partner[next], nL + partner[i]})
		case partner[next] < 0:
			// Edge running into the unmatched dot.
			m.Faces = append(m.Faces, []int{i, next, nL + partner[i]})
		default:
			// Edge leaving the unmatched dot.
			m.Faces = append(m.Faces, []int{i, next, nL + partner[next]})
		}
	}
	m.orientOutward(m.Centroid())
	return m, nil
}
