// Package linear provides the 3-component vector value used by scenes and sketches.
//
// Vector3 is a plain value type: every operation returns a new value and
// nothing in this package holds state.
package linear

import (
	"math"
	"strconv"
)

// Vector3 is a 3-component vector of float64.
type Vector3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// NewVector3 constructs a Vector3 from its components.
func NewVector3(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Zero returns the zero vector.
func Zero() Vector3 { return Vector3{} }

// Up returns the unit Y vector.
func Up() Vector3 { return Vector3{Y: 1} }

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns s ⋅ v.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: s * v.X, Y: s * v.Y, Z: s * v.Z}
}

// Mul returns the component-wise product of v and w.
func (v Vector3) Mul(w Vector3) Vector3 {
	return Vector3{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

// Dot returns v ⋅ w.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns v × w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length of v.
func (v Vector3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Min returns the component-wise minimum of v and w.
func (v Vector3) Min(w Vector3) Vector3 {
	return Vector3{X: math.Min(v.X, w.X), Y: math.Min(v.Y, w.Y), Z: math.Min(v.Z, w.Z)}
}

// Max returns the component-wise maximum of v and w.
func (v Vector3) Max(w Vector3) Vector3 {
	return Vector3{X: math.Max(v.X, w.X), Y: math.Max(v.Y, w.Y), Z: math.Max(v.Z, w.Z)}
}

// ApproxEqual reports whether every component of v and w differs by at most eps.
func (v Vector3) ApproxEqual(w Vector3, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps &&
		math.Abs(v.Y-w.Y) <= eps &&
		math.Abs(v.Z-w.Z) <= eps
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vector3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Array returns the components as [x, y, z].
func (v Vector3) Array() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// String implements fmt.Stringer.
func (v Vector3) String() string {
	// Example: (1, 1, 0)
	return "(" + ftoa(v.X) + ", " + ftoa(v.Y) + ", " + ftoa(v.Z) + ")"
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
