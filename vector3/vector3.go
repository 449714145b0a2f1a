package vector3

import (
	"fmt"
	"math"
)

// V represents a 3D vector of float64 components
type V struct {
	X float64
	Y float64
	Z float64
}

// Point3 is a V used as a position in space
type Point3 = V

// Color is a V holding red, green and blue channels
type Color = V

// Zero is the zero vector
var Zero = V{}

// New returns the vector (x, y, z)
func New(x, y, z float64) V {
	return V{X: x, Y: y, Z: z}
}

// At returns component i, where 0 is X, 1 is Y and 2 is Z.
// It panics if i is out of range.
func (v V) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vector3: index %d out of range [0,2]", i))
}

// Set assigns component i. It panics if i is out of range.
func (v *V) Set(i int, value float64) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(fmt.Sprintf("vector3: index %d out of range [0,2]", i))
	}
}

// Negate returns the vector with every component negated
func (v V) Negate() V {
	return V{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// AddAssign adds other to v in place and returns v
func (v *V) AddAssign(other V) *V {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// ScaleAssign multiplies v by t in place and returns v
func (v *V) ScaleAssign(t float64) *V {
	v.X *= t
	v.Y *= t
	v.Z *= t
	return v
}

// DivideAssign divides v by t in place and returns v.
// Dividing by zero leaves infinite or NaN components.
func (v *V) DivideAssign(t float64) *V {
	return v.ScaleAssign(1 / t)
}

// LengthSquared returns X*X + Y*Y + Z*Z
func (v V) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the Euclidean length of the vector
func (v V) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Add returns the sum of two vectors
func (v V) Add(other V) V {
	return V{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Subtract returns the difference between two vectors
func (v V) Subtract(other V) V {
	return V{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Multiply returns the component-wise product of two vectors.
// This is not the dot product.
func (v V) Multiply(other V) V {
	return V{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Scale multiplies all components of the vector by a scalar
func (v V) Scale(scalar float64) V {
	return V{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Divide multiplies the vector by the reciprocal of scalar
func (v V) Divide(scalar float64) V {
	return v.Scale(1 / scalar)
}

// Cross returns the cross product of two vectors
func (v V) Cross(other V) V {
	return V{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Dot returns the dot product of two vectors
func (v V) Dot(other V) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Normalize returns the vector divided by its length.
// A zero vector yields NaN components.
func (v V) Normalize() V {
	return v.Divide(v.Length())
}

func Add(u, v V) V { return u.Add(v) }

func Subtract(u, v V) V { return u.Subtract(v) }

func Multiply(u, v V) V { return u.Multiply(v) }

// Scale returns v scaled by t; it is the same as v.Scale(t)
func Scale(t float64, v V) V { return v.Scale(t) }

func Divide(v V, t float64) V { return v.Divide(t) }

func Dot(u, v V) float64 { return u.Dot(v) }

func Cross(u, v V) V { return u.Cross(v) }

// UnitVector returns v scaled to length 1
func UnitVector(v V) V { return v.Normalize() }
