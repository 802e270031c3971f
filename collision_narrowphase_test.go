package physics3d

import "testing"

func TestNarrowPhasePlanePlaneNoContacts(t *testing.T) {
	out := NarrowPhase(nil, 0, Vec3{}, Plane(), IdentityTransform(), 1, Vec3{}, Plane(), IdentityTransform())
	if len(out) != 0 {
		t.Fatalf("got %d contacts, want 0", len(out))
	}
}

func TestNarrowPhasePlaneConvexPenetrating(t *testing.T) {
	planeTransform := IdentityTransform()
	boxTransform := Transform{Position: vec3(0, 0, 0.3), Quaternion: IdentityQuaternion()}
	box := Box(vec3(0.5, 0.5, 0.5))

	out := NarrowPhase(nil, 0, Vec3{}, Plane(), planeTransform, 1, boxTransform.Position, box, boxTransform)
	if len(out) != 4 {
		t.Fatalf("got %d contacts, want 4 (bottom face vertices penetrating): %v", len(out), out)
	}
	for _, c := range out {
		if !ApproxEqualVec3(c.Ni, vec3(0, 0, 1)) {
			t.Errorf("normal = %v, want (0,0,1)", c.Ni)
		}
		if c.BodyID1 != 0 || c.BodyID2 != 1 {
			t.Errorf("body ids = %d,%d, want 0,1", c.BodyID1, c.BodyID2)
		}
	}
}

func TestNarrowPhaseConvexPlaneFlippedMatchesUnflipped(t *testing.T) {
	planeTransform := IdentityTransform()
	boxTransform := Transform{Position: vec3(0, 0, 0.3), Quaternion: IdentityQuaternion()}
	box := Box(vec3(0.5, 0.5, 0.5))

	direct := NarrowPhase(nil, 0, Vec3{}, Plane(), planeTransform, 1, boxTransform.Position, box, boxTransform)
	flipped := NarrowPhase(nil, 1, boxTransform.Position, box, boxTransform, 0, Vec3{}, Plane(), planeTransform)

	if len(direct) != len(flipped) {
		t.Fatalf("got %d vs %d contacts", len(direct), len(flipped))
	}
	for i := range direct {
		if direct[i].BodyID1 != flipped[i].BodyID2 || direct[i].BodyID2 != flipped[i].BodyID1 {
			t.Errorf("contact %d: body roles not swapped: %+v vs %+v", i, direct[i], flipped[i])
		}
		if !ApproxEqualVec3(direct[i].Ni, flipped[i].Ni.Mul(-1)) {
			t.Errorf("contact %d: normal not negated: %v vs %v", i, direct[i].Ni, flipped[i].Ni)
		}
	}
}

func TestNarrowPhaseNoFalseContactsWhenSeparated(t *testing.T) {
	hullA := Box(vec3(0.5, 0.5, 0.5))
	hullB := Box(vec3(0.5, 0.5, 0.5))
	transformA := IdentityTransform()
	transformB := Transform{Position: vec3(100, 0, 0), Quaternion: IdentityQuaternion()}

	out := NarrowPhase(nil, 0, transformA.Position, hullA, transformA, 1, transformB.Position, hullB, transformB)
	if len(out) != 0 {
		t.Fatalf("got %d contacts, want 0 for separated boxes", len(out))
	}
}
