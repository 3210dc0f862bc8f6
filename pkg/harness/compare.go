package harness

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// MaxRelative is the default numeric tolerance for comparing rendered
// scripts. Loose enough to absorb rounding differences, tight enough to
// catch real geometry changes.
const MaxRelative = 1e-5

// Compare reports whether two OpenSCAD scripts are equivalent up to a
// relative tolerance on their numbers. Both scripts are tokenized;
// non-numeric tokens must match exactly and in order, numeric tokens may
// differ by maxRel relative to the larger magnitude.
func Compare(a, b string, maxRel float64) (bool, error) {
	if maxRel < 0 {
		return false, fmt.Errorf("harness: negative tolerance %v", maxRel)
	}
	ta := tokenize(a)
	tb := tokenize(b)
	if len(ta) != len(tb) {
		return false, nil
	}
	for i := range ta {
		if !ta[i].equal(tb[i], maxRel) {
			return false, nil
		}
	}
	return true, nil
}

type token struct {
	text   string
	value  float64
	number bool
}

func (t token) equal(o token, maxRel float64) bool {
	if t.number != o.number {
		return false
	}
	if !t.number {
		return t.text == o.text
	}
	diff := math.Abs(t.value - o.value)
	scale := math.Max(math.Abs(t.value), math.Abs(o.value))
	return diff <= maxRel*math.Max(scale, 1)
}

// tokenize splits a script into numbers, identifiers and single
// punctuation characters. A leading minus binds to the number after it,
// so "-0.5" is one token.
func tokenize(s string) []token {
	var out []token
	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isNumberStart(runes, i):
			j := i + 1
			for j < len(runes) && isNumberPart(runes[j]) {
				j++
			}
			text := string(runes[i:j])
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				out = append(out, token{text: text, value: v, number: true})
			} else {
				out = append(out, token{text: text})
			}
			i = j
		case unicode.IsLetter(r) || r == '_' || r == '$':
			j := i + 1
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			out = append(out, token{text: string(runes[i:j])})
			i = j
		default:
			out = append(out, token{text: string(r)})
			i++
		}
	}
	return out
}

func isNumberStart(runes []rune, i int) bool {
	r := runes[i]
	if unicode.IsDigit(r) {
		return true
	}
	if (r == '-' || r == '.') && i+1 < len(runes) {
		next := runes[i+1]
		return unicode.IsDigit(next) || (r == '-' && next == '.')
	}
	return false
}

func isNumberPart(r rune) bool {
	return unicode.IsDigit(r) || strings.ContainsRune(".eE+-", r)
}
