// Package geom defines the value-type primitives a canvas rasterizes:
// lines, circles, ellipses, triangles and rotated rectangles.
//
// Coordinates are in visible-pixel units with the origin at the top-left
// corner and y increasing downward. Angles are in radians; a positive
// angle turns the +x axis toward +y.
package geom

import (
	"math"

	"github.com/0382/games/mat"
)

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointOf converts a 2-vector to a Point.
func PointOf(v mat.Mat[float64]) Point {
	return Point{X: v.X(), Y: v.Y()}
}

// Vec returns p as a 2×1 column vector.
func (p Point) Vec() mat.Mat[float64] {
	return mat.Vec(p.X, p.Y)
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Mapper maps a point to another point. transform.Transform2D implements it.
type Mapper interface {
	ApplyXY(x, y float64) (float64, float64)
}

// Map returns p mapped through m.
func (p Point) Map(m Mapper) Point {
	x, y := m.ApplyXY(p.X, p.Y)
	return Point{X: x, Y: y}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
