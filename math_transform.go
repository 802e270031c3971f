package physics3d

// Transform is a rigid pose: a world position and orientation. The zero
// value is NOT the identity transform — use IdentityTransform.
type Transform struct {
	Position   Vec3
	Quaternion Quaternion
}

// IdentityTransform returns the origin with identity rotation.
func IdentityTransform() Transform {
	return Transform{Position: Vec3{}, Quaternion: IdentityQuaternion()}
}

// PointToWorld maps a local-space point p through t into world space:
// t.Position + rotate(t.Quaternion, p).
func (t Transform) PointToWorld(p Vec3) Vec3 {
	return t.Position.Add(RotateVec3(t.Quaternion, p))
}

// VectorToWorld rotates a direction vector by t's orientation without
// translating it.
func (t Transform) VectorToWorld(v Vec3) Vec3 {
	return RotateVec3(t.Quaternion, v)
}

// Mat4 composes t into a 4x4 homogeneous matrix, the representation handed
// to fold callbacks for external rendering.
func (t Transform) Mat4() Mat4 {
	rot := t.Quaternion.Mat4()
	rot[12] = t.Position.X()
	rot[13] = t.Position.Y()
	rot[14] = t.Position.Z()
	return rot
}

// Compose returns the transform equivalent to applying inner, then outer
// (outer.Compose(inner) moves a point expressed in inner's local frame into
// outer's parent frame) — used to combine a body's pose with a shape's
// local offset transform.
func Compose(outer, inner Transform) Transform {
	return Transform{
		Position:   outer.PointToWorld(inner.Position),
		Quaternion: outer.Quaternion.Mul(inner.Quaternion),
	}
}
