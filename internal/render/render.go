// Package render converts geometry values into the float32 points a
// renderer draws with.
//
// Render-side types are plain mutable structs owned by the renderer; the
// geometry values they were built from are never referenced again.
package render

import (
	"github.com/chewxy/math32"

	"uniformity/internal/geometry/line"
	"uniformity/internal/geometry/vector"
)

// Point is a 3D point in renderer space.
type Point struct {
	X, Y, Z float32
}

// FromVec3 converts a vector to a render point, rounding to float32.
func FromVec3(v vector.Vec3) Point {
	return Point{X: float32(v.X()), Y: float32(v.Y()), Z: float32(v.Z())}
}

// Add returns the sum of two points
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }

// Sub returns the difference between two points
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// Mul scales a point by a scalar
func (p Point) Mul(s float32) Point { return Point{p.X * s, p.Y * s, p.Z * s} }

// Dot returns the dot product of two points
func (p Point) Dot(o Point) float32 { return p.X*o.X + p.Y*o.Y + p.Z*o.Z }

// Vec3 converts p back to a geometry vector.
func (p Point) Vec3() vector.Vec3 { return vector.NewVec3(float64(p.X), float64(p.Y), float64(p.Z)) }

// Len returns the length of p.
func (p Point) Len() float32 {
	return math32.Sqrt(p.Dot(p))
}

// Normalize returns p scaled to unit length. A zero point stays zero.
func (p Point) Normalize() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return p.Mul(1 / l)
}

// Ray is a line in renderer space.
type Ray struct {
	Origin Point
	Dir    Point
}

// FromLinear converts a line or segment into a ray from its anchor point.
// Dir is re-normalized after rounding to float32.
func FromLinear(l line.Linear) Ray {
	return Ray{
		Origin: FromVec3(l.Point()),
		Dir:    FromVec3(l.Direction()).Normalize(),
	}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) Point { return r.Origin.Add(r.Dir.Mul(t)) }

// Edge is a drawable segment.
type Edge struct {
	A, B Point
}

// FromSegment converts a segment into an edge between its endpoints.
func FromSegment(s line.Segment) Edge {
	return Edge{A: FromVec3(s.Start()), B: FromVec3(s.End())}
}

// Len returns the edge length.
func (e Edge) Len() float32 { return e.B.Sub(e.A).Len() }

// Edges converts a batch of segments, preserving order.
func Edges(segs []line.Segment) []Edge {
	out := make([]Edge, 0, len(segs))
	for _, s := range segs {
		out = append(out, FromSegment(s))
	}
	return out
}

// Bounds returns the axis-aligned box enclosing every edge endpoint.
// ok is false when edges is empty.
func Bounds(edges []Edge) (lo, hi Point, ok bool) {
	if len(edges) == 0 {
		return Point{}, Point{}, false
	}
	lo, hi = edges[0].A, edges[0].A
	for _, e := range edges {
		for _, p := range [2]Point{e.A, e.B} {
			lo = Point{math32.Min(lo.X, p.X), math32.Min(lo.Y, p.Y), math32.Min(lo.Z, p.Z)}
			hi = Point{math32.Max(hi.X, p.X), math32.Max(hi.Y, p.Y), math32.Max(hi.Z, p.Z)}
		}
	}
	return lo, hi, true
}
