// Package hull computes enclosing face meshes for point sets: convex
// hulls, caller-templated face lists for deliberately non-convex solids,
// and label-matched bridge surfaces joining the rims of two shapes.
package hull
