package physics3d

// ShapeId is a dense, never-reused index into a body's shape list.
type ShapeId uint32

// BodyId is a dense, never-reused index into a World's body list.
type BodyId uint32

// Body is the mutable per-rigid-body aggregate: pose, velocity,
// force/torque accumulators, mass, and its attached shapes. Created by
// NewBody and registered with World.AddBody; set up through its mutators
// (SetMass, AddShape, OffsetBy, RotateBy, ApplyForce, ApplyTorque) and
// otherwise advanced by World.Step — grounded on the teacher's B2Body
// (DynamicsB2Body.go).
type Body struct {
	Position        Vec3
	Quaternion      Quaternion
	Velocity        Vec3
	AngularVelocity Vec3

	force  Vec3
	torque Vec3

	Mass    float64
	InvMass float64

	// InvInertiaWorld is treated as a scaled identity derived from mass,
	// sufficient for box-like bodies.
	InvInertiaWorld Mat3

	shapes          []Shape
	shapeTransforms []Transform
}

// NewBody returns a default dynamic body of unit mass at the origin with
// identity orientation and no shapes.
func NewBody() Body {
	b := Body{
		Position:   Vec3{},
		Quaternion: IdentityQuaternion(),
	}
	b.SetMass(1)
	return b
}

// SetMass sets the body's mass and derives InvMass (0 for zero or negative
// mass, meaning static/infinite) and a scaled-identity InvInertiaWorld.
func (b *Body) SetMass(mass float64) {
	b.Mass = mass
	if mass <= 0 {
		b.InvMass = 0
		b.InvInertiaWorld = Mat3{}
		return
	}
	b.InvMass = 1.0 / mass
	invI := 6.0 / mass
	b.InvInertiaWorld = Mat3{invI, 0, 0, 0, invI, 0, 0, 0, invI}
}

// IsStatic reports whether the body has infinite mass.
func (b *Body) IsStatic() bool {
	return b.InvMass == 0
}

// AddShape attaches shape to the body with an identity local transform and
// returns its dense ShapeId.
func (b *Body) AddShape(shape Shape) ShapeId {
	return b.AddShapeWithTransform(shape, IdentityTransform())
}

// AddShapeWithTransform attaches shape with an explicit local offset
// transform.
func (b *Body) AddShapeWithTransform(shape Shape, local Transform) ShapeId {
	id := ShapeId(len(b.shapes))
	b.shapes = append(b.shapes, shape)
	b.shapeTransforms = append(b.shapeTransforms, local)
	return id
}

// Shapes returns the body's shapes in dense ShapeId order. The returned
// slice must not be mutated by the caller.
func (b *Body) Shapes() []Shape {
	return b.shapes
}

// ShapeTransform returns the local offset transform for id, identity if
// none was set explicitly.
func (b *Body) ShapeTransform(id ShapeId) Transform {
	assertf(int(id) < len(b.shapeTransforms), "ShapeTransform: id %d out of range (%d shapes)", id, len(b.shapeTransforms))
	return b.shapeTransforms[id]
}

// Transform returns the body's world pose as a Transform.
func (b *Body) Transform() Transform {
	return Transform{Position: b.Position, Quaternion: b.Quaternion}
}

// WorldTransform composes the body's pose with a shape's local transform,
// for fold callbacks and narrow phase.
func (b *Body) WorldTransform(id ShapeId) Transform {
	return Compose(b.Transform(), b.shapeTransforms[id])
}

// OffsetBy translates the body by delta.
func (b *Body) OffsetBy(delta Vec3) {
	b.Position = b.Position.Add(delta)
}

// RotateBy composes the body's orientation with a rotation of angle
// radians about axis.
func (b *Body) RotateBy(axis Vec3, angle float64) {
	b.Quaternion = QuaternionFromAngleAxis(angle, axis).Mul(b.Quaternion).Normalize()
}

// ApplyForce accumulates a world-space force applied at the body's center
// of mass, consumed and cleared at the end of the next Step.
func (b *Body) ApplyForce(force Vec3) {
	b.force = b.force.Add(force)
}

// ApplyTorque accumulates a world-space torque, consumed and cleared at the
// end of the next Step.
func (b *Body) ApplyTorque(torque Vec3) {
	b.torque = b.torque.Add(torque)
}

// ClearAccumulators zeroes the force/torque accumulators, called by World
// at the end of each Step.
func (b *Body) ClearAccumulators() {
	b.force = Vec3{}
	b.torque = Vec3{}
}

// IntegrateForces applies the accumulated force and torque to velocity and
// angular velocity over dt, alongside gravity.
func (b *Body) IntegrateForces(gravity Vec3, dt float64) {
	b.Velocity = b.Velocity.Add(gravity.Mul(dt)).Add(b.force.Mul(b.InvMass * dt))
	b.AngularVelocity = b.AngularVelocity.Add(b.InvInertiaWorld.Mul3x1(b.torque).Mul(dt))
}
