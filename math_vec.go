package physics3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the single tolerance used for edge uniqueness, axis length,
// and coplanarity checks throughout the package. Never compare floats with
// == directly; go through the helpers below.
const Epsilon = 1e-4

// Vec3 is a column vector in 3-space.
type Vec3 = mgl64.Vec3

// Mat3 is a 3x3 matrix, used for inverse inertia tensors.
type Mat3 = mgl64.Mat3

// Mat4 is a 4x4 homogeneous transform matrix, the format exposed to fold
// callbacks so an external renderer can consume it directly.
type Mat4 = mgl64.Mat4

func vec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// NearZero reports whether v's length is below Epsilon.
func NearZero(v Vec3) bool {
	return v.Dot(v) < Epsilon*Epsilon
}

// ApproxEqualVec3 reports whether a and b are equal to within Epsilon per
// component sum-of-squares.
func ApproxEqualVec3(a, b Vec3) bool {
	d := a.Sub(b)
	return d.Dot(d) < Epsilon*Epsilon
}

// ApproxEqualScalar reports whether a and b differ by less than Epsilon.
func ApproxEqualScalar(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// SafeNormalize normalizes v, returning the zero vector and false if v's
// length is at or below Epsilon rather than propagating a NaN.
func SafeNormalize(v Vec3) (Vec3, bool) {
	l := v.Len()
	if l <= Epsilon {
		return Vec3{}, false
	}
	return v.Mul(1.0 / l), true
}
