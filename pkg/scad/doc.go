// Package scad turns CSG trees and resolved model graphs into OpenSCAD
// source text.
//
// Emission is deterministic: the same tree and config always produce the
// same bytes, so generated scripts diff cleanly under version control.
// The emitter does no geometry of its own; anything that can fail does so
// during model resolution, before emission starts.
package scad
