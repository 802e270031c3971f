package physics3d

import "github.com/go-gl/mathgl/mgl64"

// Quaternion is a unit quaternion representing an orientation. Composition
// via Mul is non-commutative, matching spec order (left rotation applied
// after right).
type Quaternion = mgl64.Quat

// IdentityQuaternion is the identity rotation.
func IdentityQuaternion() Quaternion {
	return mgl64.QuatIdent()
}

// QuaternionFromAngleAxis constructs a rotation of angle radians about axis.
// axis need not be normalized; a zero-length axis yields the identity
// rotation rather than a NaN quaternion.
func QuaternionFromAngleAxis(angle float64, axis Vec3) Quaternion {
	unit, ok := SafeNormalize(axis)
	if !ok {
		return IdentityQuaternion()
	}
	return mgl64.QuatRotate(angle, unit)
}

// RotateVec3 applies q to v.
func RotateVec3(q Quaternion, v Vec3) Vec3 {
	return q.Rotate(v)
}

// IntegrateQuaternion advances q by angular velocity omega over dt using
// the standard first-order quaternion derivative q̇ = ½·(ω as pure
// quaternion)·q, then renormalizes.
func IntegrateQuaternion(q Quaternion, omega Vec3, dt float64) Quaternion {
	omegaQuat := mgl64.Quat{W: 0, V: omega}
	dq := omegaQuat.Mul(q).Scale(0.5 * dt)
	return q.Add(dq).Normalize()
}
