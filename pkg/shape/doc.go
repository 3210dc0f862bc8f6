// Package shape builds fixed-topology solids out of dots.
//
// A Shape pairs a Kind, which fixes how many dots the solid has and how its
// faces index into them, with the concrete dots themselves. Shapes convert
// to face meshes for rendering and expose their cap rims for bridging to
// other shapes.
//
// The package also provides the composite builders Rect, Cuboid, Post and
// Triangle, which place groups of dots from a spec and link them into CSG
// trees in various styles.
package shape
