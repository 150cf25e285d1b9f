// Package vector provides an immutable 3D vector value type.
//
// Every operation returns a new Vec3 and never modifies its operands, so
// values can be shared freely between goroutines.
package vector

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
)

// Dim is the number of components in a Vec3.
const Dim = 3

var (
	// ErrDivideByZero is returned when a vector is divided by a zero scalar.
	ErrDivideByZero = errors.New("cannot divide a vector by zero")

	// ErrNormalization is returned when normalizing the zero vector. It wraps
	// ErrDivideByZero, so errors.Is matches either sentinel.
	ErrNormalization = fmt.Errorf("%w: cannot normalize the zero vector", ErrDivideByZero)

	// ErrIndexOutOfRange is returned by At for indices outside [0, Dim).
	ErrIndexOutOfRange = errors.New("vector index out of range")

	// ErrNonFinite is returned when normalizing a vector with a NaN or
	// infinite component, which has no well-defined direction.
	ErrNonFinite = errors.New("vector has a non-finite component")
)

// Vec3 is a 3D vector. Components are only readable; use the constructor or
// an operation to get a different vector.
type Vec3 struct{ x, y, z float64 }

// Zero is the zero vector.
var Zero = Vec3{}

// NewVec3 creates a new 3D vector with the given components
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x: x, y: y, z: z}
}

// X returns the first component.
func (v Vec3) X() float64 { return v.x }

// Y returns the second component.
func (v Vec3) Y() float64 { return v.y }

// Z returns the third component.
func (v Vec3) Z() float64 { return v.z }

// Add returns the sum of two vectors
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.x + o.x, v.y + o.y, v.z + o.z} }

// Neg returns the vector with every component negated
func (v Vec3) Neg() Vec3 { return Vec3{-v.x, -v.y, -v.z} }

// Sub returns the difference between two vectors
func (v Vec3) Sub(o Vec3) Vec3 { return v.Add(o.Neg()) }

// Mul scales a vector by a scalar
func (v Vec3) Mul(k float64) Vec3 { return Vec3{v.x * k, v.y * k, v.z * k} }

// Scale is Mul with the scalar written first.
func Scale(k float64, v Vec3) Vec3 { return v.Mul(k) }

// Div divides a vector by a scalar. Dividing by zero returns ErrDivideByZero
// instead of producing infinities.
func (v Vec3) Div(k float64) (Vec3, error) {
	if k == 0 {
		return Vec3{}, ErrDivideByZero
	}
	// Dividing each component keeps subnormal k from overflowing 1/k.
	return Vec3{v.x / k, v.y / k, v.z / k}, nil
}

// Norm returns the vector's magnitude (Euclidean norm).
//
// It is computed with math.Hypot, so tiny components do not underflow to a
// zero magnitude. Norm is zero only when every component is zero.
func (v Vec3) Norm() float64 { return math.Hypot(math.Hypot(v.x, v.y), v.z) }

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction and yields ErrNormalization; a vector
// with a NaN or infinite component yields ErrNonFinite.
func (v Vec3) Normalize() (Vec3, error) {
	if !v.IsFinite() {
		return Vec3{}, ErrNonFinite
	}
	n := v.Norm()
	if n == 0 {
		return Vec3{}, ErrNormalization
	}
	if math.IsInf(n, 1) {
		// Finite components whose norm overflows: bring the largest to 1 first.
		m := math.Max(math.Abs(v.x), math.Max(math.Abs(v.y), math.Abs(v.z)))
		v = Vec3{v.x / m, v.y / m, v.z / m}
		n = v.Norm()
	}
	return v.Div(n)
}

// Distance returns the Euclidean distance between two points
func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Norm() }

// Dot returns the dot product of two vectors
func (v Vec3) Dot(o Vec3) float64 { return v.x*o.x + v.y*o.y + v.z*o.z }

// Cross returns the right-handed cross product of two vectors
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		x: v.y*o.z - v.z*o.y,
		y: v.z*o.x - v.x*o.z,
		z: v.x*o.y - v.y*o.x,
	}
}

// Equal reports whether the distance between v and o is exactly zero.
//
// For finite components this agrees with ==, which treats +0 and -0 as the
// same value, so a Vec3 can be used directly as a map key. The agreement
// holds only for finite components: with a NaN or infinite component the
// distance is NaN or infinite, so Equal is false even where == is true.
func (v Vec3) Equal(o Vec3) bool { return v.Distance(o) == 0 }

// ApproxEqual reports whether v and o are within eps of each other.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool { return v.Distance(o) <= eps }

// IsZero reports whether v is the zero vector.
func (v Vec3) IsZero() bool { return v.Norm() == 0 }

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	for c := range v.All() {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// At returns the component at index i: 0 is x, 1 is y, 2 is z.
func (v Vec3) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.x, nil
	case 1:
		return v.y, nil
	case 2:
		return v.z, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
}

// Array returns the components as an array.
func (v Vec3) Array() [Dim]float64 { return [Dim]float64{v.x, v.y, v.z} }

// All yields x, y and z in order. The sequence can be ranged over any
// number of times.
func (v Vec3) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, c := range v.Array() {
			if !yield(c) {
				return
			}
		}
	}
}

// String returns the display form "(x, y, z)".
func (v Vec3) String() string {
	return "(" + formatFloat(v.x) + ", " + formatFloat(v.y) + ", " + formatFloat(v.z) + ")"
}

// GoString returns the debug form used by %#v.
func (v Vec3) GoString() string { return "vector.Vec3" + v.String() }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
