package physics3d

import "testing"

func TestFoldShapesVisitsEveryShape(t *testing.T) {
	w := NewWorld()
	b0 := NewBody()
	b0.AddShape(Plane())
	w.AddBody(b0)

	b1 := NewBody()
	b1.AddShape(Box(vec3(1, 1, 1)))
	b1.AddShape(Sphere(0.5))
	w.AddBody(b1)

	handles := FoldShapes(&w, []ShapeHandle{}, func(acc []ShapeHandle, h ShapeHandle) []ShapeHandle {
		return append(acc, h)
	})

	if len(handles) != 3 {
		t.Fatalf("got %d shape handles, want 3", len(handles))
	}
	if handles[0].BodyID != 0 || handles[1].BodyID != 1 || handles[2].BodyID != 1 {
		t.Errorf("unexpected body id ordering: %+v", handles)
	}
	if handles[1].ShapeID != 0 || handles[2].ShapeID != 1 {
		t.Errorf("unexpected shape id ordering: %+v", handles)
	}
}

func TestFoldFaceNormalsSkipsNonConvex(t *testing.T) {
	w := NewWorld()
	b := NewBody()
	b.AddShape(Plane())
	b.AddShape(Sphere(1))
	b.AddShape(Box(vec3(1, 1, 1)))
	w.AddBody(b)

	count := FoldFaceNormals(&w, 0, func(acc int, n FaceNormal) int {
		return acc + 1
	})
	if count != 6 {
		t.Fatalf("got %d face normals, want 6 (only the box)", count)
	}
}

func TestFoldUniqueEdgesSkipsNonConvex(t *testing.T) {
	w := NewWorld()
	b := NewBody()
	b.AddShape(Plane())
	b.AddShape(Box(vec3(1, 1, 1)))
	w.AddBody(b)

	count := FoldUniqueEdges(&w, 0, func(acc int, e UniqueEdge) int {
		return acc + 1
	})
	if count != 3 {
		t.Fatalf("got %d unique edges, want 3 (only the box)", count)
	}
}

func TestFoldContactsReportsWorldPoints(t *testing.T) {
	w := NewWorld()
	w.SetGravity(vec3(0, 0, -10))

	ground := NewBody()
	ground.SetMass(0)
	ground.AddShape(Plane())
	w.AddBody(ground)

	box := NewBody()
	box.Position = vec3(0, 0, 0.3)
	box.AddShape(Box(vec3(0.5, 0.5, 0.5)))
	w.AddBody(box)

	w.Step(1.0 / 60.0)

	points := FoldContacts(&w, []ContactPoint{}, func(acc []ContactPoint, c ContactPoint) []ContactPoint {
		return append(acc, c)
	})
	if len(points) != 4 {
		t.Fatalf("got %d contact points, want 4", len(points))
	}
	for _, p := range points {
		if p.Point.Z() > Epsilon {
			t.Errorf("contact point %v has z > 0, expected near the plane", p.Point)
		}
	}
}
