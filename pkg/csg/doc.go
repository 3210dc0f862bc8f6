// Package csg defines the constructive-solid-geometry expression tree
// that models are lowered into before being emitted as OpenSCAD text.
// Leaves are primitive objects (dots, cylinders, polyhedra, extrusions);
// interior nodes are boolean and transform operators.
package csg
