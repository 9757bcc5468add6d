// Package geometry provides the 2D point/vector value type used as the
// spatial primitive everywhere in the simulation. Positions, velocities,
// and offsets all share the one representation; which of those a value
// means is up to the caller.
package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the per-component tolerance used by NearlyEquals.
const Epsilon = 1e-4

// Point represents a point or vector in 2D space with float32 coordinates.
// It has plain value semantics: copies are independent, exact comparison is
// the built-in == on the struct, and every operation below is total over the
// float domain. Non-finite inputs produce well-defined IEEE-754 outputs
// rather than errors.
type Point struct {
	X float32
	Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns the vector pointing the opposite way.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// MulComponents returns the componentwise (Hadamard) product (p.X*q.X, p.Y*q.Y).
// This is not a geometric product; for scaling use Mul, for projections use Dot.
func (p Point) MulComponents(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// DivComponents returns the componentwise quotient (p.X/q.X, p.Y/q.Y).
// Zero components in q yield IEEE ±Inf or NaN; nothing is trapped.
func (p Point) DivComponents(q Point) Point {
	return Point{X: p.X / q.X, Y: p.Y / q.Y}
}

// Mul returns the vector scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the vector scaled by 1/s.
func (p Point) Div(s float32) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Scale is the scalar-first spelling of Mul.
func Scale(s float32, p Point) Point {
	return p.Mul(s)
}

// Dot returns the dot product of the two vectors.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the scalar 2D cross product p.X*q.Y - p.Y*q.X. The sign is
// positive when q lies counter-clockwise of p.
func (p Point) Cross(q Point) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Mag returns the Euclidean length of the vector.
func (p Point) Mag() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// MagSq returns the squared length. Cheaper than Mag when only ordering or
// threshold checks are needed.
func (p Point) MagSq() float32 {
	return p.X*p.X + p.Y*p.Y
}

// Normalized returns the unit vector in the same direction. The zero vector
// normalizes to the zero vector instead of dividing by zero.
func (p Point) Normalized() Point {
	return p.NormalizedTo(1)
}

// NormalizedTo returns a vector in the same direction with the given
// magnitude. The zero vector is returned unchanged.
func (p Point) NormalizedTo(magnitude float32) Point {
	m := p.Mag()
	if m == 0 {
		return Point{}
	}
	return Point{X: magnitude * p.X / m, Y: magnitude * p.Y / m}
}

// ClampedMag returns the vector with its magnitude restricted to at most max,
// direction preserved. Vectors already within the bound come back unchanged,
// bit for bit.
func (p Point) ClampedMag(max float32) Point {
	ratio := p.Mag() / max
	if ratio > 1 {
		return Point{X: p.X / ratio, Y: p.Y / ratio}
	}
	return p
}

// Saturated limits the magnitude to |max|, leaving shorter vectors untouched.
func (p Point) Saturated(max float32) Point {
	bound := float32(math.Abs(float64(max)))
	if p.Mag() > bound {
		return p.Normalized().Mul(bound)
	}
	return p
}

// Rotated returns the vector rotated counter-clockwise about the origin by
// angle radians.
func (p Point) Rotated(angle float32) Point {
	sin, cos := math.Sincos(float64(angle))
	return Point{
		X: p.X*float32(cos) - p.Y*float32(sin),
		Y: p.Y*float32(cos) + p.X*float32(sin),
	}
}

// RotatedAbout returns the point rotated counter-clockwise about origin by
// angle radians.
func (p Point) RotatedAbout(origin Point, angle float32) Point {
	return p.Sub(origin).Rotated(angle).Add(origin)
}

// DistTo returns the distance between the two points.
func (p Point) DistTo(q Point) float32 {
	return q.Sub(p).Mag()
}

// Angle returns the angle of the vector in radians, counter-clockwise from
// the +X axis, in (-π, π].
func (p Point) Angle() float32 {
	return float32(math.Atan2(float64(p.Y), float64(p.X)))
}

// AngleTo returns the angle of the vector pointing from p to q.
func (p Point) AngleTo(q Point) float32 {
	return q.Sub(p).Angle()
}

// AngleBetween returns the unsigned angle between the directions of the two
// vectors, in [0, π]. A zero vector normalizes to the zero vector, so the
// result degenerates to π/2 rather than reporting an error; callers that
// need to tell the difference check MagSq first.
func (p Point) AngleBetween(q Point) float32 {
	return float32(math.Acos(float64(p.Normalized().Dot(q.Normalized()))))
}

// Direction returns the unit vector pointing at theta radians.
func Direction(theta float32) Point {
	sin, cos := math.Sincos(float64(theta))
	return Point{X: float32(cos), Y: float32(sin)}
}

// PerpCW returns the clockwise perpendicular (p.Y, -p.X).
func (p Point) PerpCW() Point {
	return Point{X: p.Y, Y: -p.X}
}

// PerpCCW returns the counter-clockwise perpendicular (-p.Y, p.X).
func (p Point) PerpCCW() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Near reports whether q lies within threshold of p. The check compares
// squared magnitudes, so no square root is taken.
func (p Point) Near(q Point, threshold float32) bool {
	return p.Sub(q).MagSq() <= threshold*threshold
}

// NearlyEquals reports whether both components of p and q differ by at most
// Epsilon. Exact comparison stays with ==; this is the explicit fuzzy form.
func (p Point) NearlyEquals(q Point) bool {
	return abs(p.X-q.X) <= Epsilon && abs(p.Y-q.Y) <= Epsilon
}

// String renders the point as "Point(<x>, <y>)" for diagnostics. The format
// is not meant to be parsed back.
func (p Point) String() string {
	return fmt.Sprintf("Point(%v, %v)", p.X, p.Y)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
