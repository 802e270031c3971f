package physics3d

// ShapeHandle identifies one shape of one body, with its current
// world-space transform, for external consumption (e.g. a renderer).
type ShapeHandle struct {
	BodyID    BodyId
	ShapeID   ShapeId
	Transform Transform
	Shape     Shape
}

// FoldShapes folds f over every shape of every body in the world, in
// (bodyId, shapeId) order, composing each shape's local transform with its
// owning body's pose. This is the sole read surface external code (a
// renderer) needs per step.
func FoldShapes[T any](w *World, acc T, f func(acc T, h ShapeHandle) T) T {
	for bi := range w.bodies {
		b := &w.bodies[bi]
		for si, shape := range b.Shapes() {
			acc = f(acc, ShapeHandle{
				BodyID:    BodyId(bi),
				ShapeID:   ShapeId(si),
				Transform: b.WorldTransform(ShapeId(si)),
				Shape:     shape,
			})
		}
	}
	return acc
}

// ContactPoint is one world-space contact from the most recent Step,
// yielded by FoldContacts.
type ContactPoint struct {
	BodyID1, BodyID2 BodyId
	Point            Vec3
	Normal           Vec3
}

// FoldContacts folds f over the contact points produced by the world's
// most recent Step. The contact point in world space is reconstructed from
// body1's position plus Ri.
func FoldContacts[T any](w *World, acc T, f func(acc T, c ContactPoint) T) T {
	for _, c := range w.contacts {
		point := w.bodies[c.BodyID1].Position.Add(c.Ri)
		acc = f(acc, ContactPoint{BodyID1: c.BodyID1, BodyID2: c.BodyID2, Point: point, Normal: c.Ni})
	}
	return acc
}

// FaceNormal is one face normal of one convex shape, in world space.
type FaceNormal struct {
	BodyID  BodyId
	ShapeID ShapeId
	Normal  Vec3
}

// FoldFaceNormals folds f over the world-space face normals of every
// convex shape in the world. Non-convex shapes (plane, sphere) are
// skipped.
func FoldFaceNormals[T any](w *World, acc T, f func(acc T, n FaceNormal) T) T {
	return FoldShapes(w, acc, func(acc T, h ShapeHandle) T {
		if h.Shape.Kind != ShapeConvex {
			return acc
		}
		for _, n := range h.Shape.Hull.Normals {
			acc = f(acc, FaceNormal{BodyID: h.BodyID, ShapeID: h.ShapeID, Normal: h.Transform.VectorToWorld(n)})
		}
		return acc
	})
}

// UniqueEdge is one world-space unique edge direction of one convex shape.
type UniqueEdge struct {
	BodyID    BodyId
	ShapeID   ShapeId
	Direction Vec3
}

// FoldUniqueEdges folds f over the world-space unique edge directions of
// every convex shape in the world. Non-convex shapes are skipped.
func FoldUniqueEdges[T any](w *World, acc T, f func(acc T, e UniqueEdge) T) T {
	return FoldShapes(w, acc, func(acc T, h ShapeHandle) T {
		if h.Shape.Kind != ShapeConvex {
			return acc
		}
		for _, e := range h.Shape.Hull.Edges {
			acc = f(acc, UniqueEdge{BodyID: h.BodyID, ShapeID: h.ShapeID, Direction: h.Transform.VectorToWorld(e)})
		}
		return acc
	})
}
