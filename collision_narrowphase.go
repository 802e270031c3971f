package physics3d

// ContactEquation is the ephemeral per-step contact record: a unit normal
// pointing from body1 toward body2, and the contact point expressed
// relative to each body's center, in world-axis-aligned offsets.
type ContactEquation struct {
	BodyID1, BodyID2 BodyId
	Ni               Vec3
	Ri, Rj           Vec3
}

const (
	narrowPhaseMinDepth = -100.0
	narrowPhaseMaxDepth = 100.0
)

// NarrowPhase dispatches on the (kind1, kind2) pair of two shapes' world
// transforms and appends any resulting contacts to out. body1/body2
// identify the owning bodies so the caller can attribute contacts without
// this function knowing about World.
func NarrowPhase(out []ContactEquation, body1 BodyId, pos1 Vec3, shape1 Shape, transform1 Transform, body2 BodyId, pos2 Vec3, shape2 Shape, transform2 Transform) []ContactEquation {
	switch {
	case shape1.Kind == ShapePlane && shape2.Kind == ShapePlane:
		return out

	case shape1.Kind == ShapePlane && shape2.Kind == ShapeConvex:
		return planeVsConvex(out, body1, pos1, transform1, body2, pos2, &shape2.Hull, transform2, false)

	case shape1.Kind == ShapeConvex && shape2.Kind == ShapePlane:
		return planeVsConvex(out, body2, pos2, transform2, body1, pos1, &shape1.Hull, transform1, true)

	case shape1.Kind == ShapeConvex && shape2.Kind == ShapeConvex:
		return convexVsConvex(out, body1, pos1, &shape1.Hull, transform1, body2, pos2, &shape2.Hull, transform2)

	default:
		// Sphere cases are enumerated but unimplemented.
		return out
	}
}

// planeVsConvex handles the (Plane, Convex) dispatch. flipped is true when
// the caller's original pair order was (Convex, Plane); in that case the
// produced normal is negated and body roles swapped back to match the
// caller's original (body1, body2) order.
func planeVsConvex(out []ContactEquation, planeBody BodyId, planePos Vec3, planeTransform Transform, convexBody BodyId, convexPos Vec3, hull *ConvexPolyhedron, convexTransform Transform, flipped bool) []ContactEquation {
	worldNormal := planeTransform.VectorToWorld(PlaneNormalLocal)

	for _, v := range hull.Vertices {
		worldVertex := convexTransform.PointToWorld(v)
		d := worldVertex.Sub(planePos).Dot(worldNormal)
		if d > 0 {
			continue
		}

		contactOnPlane := worldVertex.Sub(worldNormal.Mul(d))

		if !flipped {
			out = append(out, ContactEquation{
				BodyID1: planeBody,
				BodyID2: convexBody,
				Ni:      worldNormal,
				Ri:      contactOnPlane.Sub(planePos),
				Rj:      worldVertex.Sub(convexPos),
			})
		} else {
			out = append(out, ContactEquation{
				BodyID1: convexBody,
				BodyID2: planeBody,
				Ni:      worldNormal.Mul(-1),
				Ri:      worldVertex.Sub(convexPos),
				Rj:      contactOnPlane.Sub(planePos),
			})
		}
	}
	return out
}

func convexVsConvex(out []ContactEquation, body1 BodyId, pos1 Vec3, hull1 *ConvexPolyhedron, transform1 Transform, body2 BodyId, pos2 Vec3, hull2 *ConvexPolyhedron, transform2 Transform) []ContactEquation {
	axis, ok := FindSeparatingAxis(hull1, transform1, hull2, transform2)
	if !ok {
		return out
	}

	clipped := ClipAgainstHull(hull1, transform1, hull2, transform2, axis, narrowPhaseMinDepth, narrowPhaseMaxDepth)
	for _, cp := range clipped {
		out = append(out, ContactEquation{
			BodyID1: body1,
			BodyID2: body2,
			Ni:      axis.Mul(-1),
			Ri:      cp.Point.Add(cp.Normal.Mul(-cp.Depth)).Sub(pos1),
			Rj:      cp.Point.Sub(pos2),
		})
	}
	return out
}
