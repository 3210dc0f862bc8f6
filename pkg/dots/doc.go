// Package dots defines the Dot, the smallest building block of a model:
// an oriented cube, sphere or cylinder anchor with a size and an optional
// label used to match corresponding dots across shapes.
package dots
