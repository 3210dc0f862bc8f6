// Package model holds a graph of shapes and the bridges between them.
//
// Shapes live in a flat arena table and are referred to by index, so edges
// stay valid as the graph grows and the whole model serializes naturally in
// declaration order. Resolving the graph turns every shape into a face mesh
// and every edge into a connector mesh joining two shape rims.
package model
