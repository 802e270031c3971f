package physics3d

import "testing"

func TestSetMassZeroIsStatic(t *testing.T) {
	b := NewBody()
	b.SetMass(0)
	if !b.IsStatic() {
		t.Fatal("expected zero-mass body to be static")
	}
	if b.InvMass != 0 {
		t.Fatalf("InvMass = %v, want 0", b.InvMass)
	}
}

func TestSetMassPositive(t *testing.T) {
	b := NewBody()
	b.SetMass(2)
	if b.IsStatic() {
		t.Fatal("expected positive-mass body to be dynamic")
	}
	if !ApproxEqualScalar(b.InvMass, 0.5) {
		t.Fatalf("InvMass = %v, want 0.5", b.InvMass)
	}
}

func TestAddShapeAssignsDenseIds(t *testing.T) {
	b := NewBody()
	id0 := b.AddShape(Plane())
	id1 := b.AddShape(Box(vec3(1, 1, 1)))
	if id0 != 0 || id1 != 1 {
		t.Fatalf("shape ids = %d, %d, want 0, 1", id0, id1)
	}
	if len(b.Shapes()) != 2 {
		t.Fatalf("got %d shapes, want 2", len(b.Shapes()))
	}
}

func TestOffsetAndRotateBy(t *testing.T) {
	b := NewBody()
	b.OffsetBy(vec3(1, 2, 3))
	if !ApproxEqualVec3(b.Position, vec3(1, 2, 3)) {
		t.Fatalf("position = %v, want (1,2,3)", b.Position)
	}

	b.RotateBy(vec3(0, 0, 1), halfPi)
	rotated := RotateVec3(b.Quaternion, vec3(1, 0, 0))
	if !ApproxEqualVec3(rotated, vec3(0, 1, 0)) {
		t.Errorf("rotated x-axis = %v, want (0,1,0)", rotated)
	}
}

func TestApplyForceAndTorqueClearedAfterStep(t *testing.T) {
	w := NewWorld()
	b := NewBody()
	id := w.AddBody(b)
	w.Body(id).ApplyForce(vec3(0, 100, 0))
	w.Body(id).ApplyTorque(vec3(0, 0, 5))

	w.Step(1.0 / 60.0)

	// Force/torque accumulators are internal and only observable by their
	// absence of effect: a second step with no new forces must not apply
	// the previous step's force again, i.e. velocity growth in step 2 is
	// solely due to gravity (zero here), not accumulated force.
	before := w.Body(id).Velocity
	w.Step(1.0 / 60.0)
	after := w.Body(id).Velocity
	if !ApproxEqualVec3(before, after) {
		t.Errorf("velocity changed without new forces or gravity: %v -> %v", before, after)
	}
}
