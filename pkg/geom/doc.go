// Package geom provides the spatial vocabulary for dotscad models:
// poses (position + rotation frame), unit-cube corner and face enums,
// and small vector helpers on top of the sdfx vector type.
package geom
