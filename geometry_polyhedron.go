package physics3d

// ConvexPolyhedron is an immutable convex hull in local coordinates: an
// ordered vertex list, faces as ordered index lists winding outward by the
// right-hand rule, one outward unit normal per face, and the set of unique
// edge directions (up to sign) across all faces.
type ConvexPolyhedron struct {
	Vertices []Vec3
	Faces    [][]int
	Normals  []Vec3
	Edges    []Vec3
}

// FromBox builds the canonical 8-vertex, 6-face axis-aligned box hull. Its
// normals are the six axis directions in a fixed order, and its edges are
// the three coordinate axes returned directly rather than recomputed,
// avoiding floating-point drift for the common case.
func FromBox(halfExtents Vec3) ConvexPolyhedron {
	hx, hy, hz := halfExtents.X(), halfExtents.Y(), halfExtents.Z()

	vertices := []Vec3{
		vec3(-hx, -hy, -hz), // 0
		vec3(hx, -hy, -hz),  // 1
		vec3(hx, hy, -hz),   // 2
		vec3(-hx, hy, -hz),  // 3
		vec3(-hx, -hy, hz),  // 4
		vec3(hx, -hy, hz),   // 5
		vec3(hx, hy, hz),    // 6
		vec3(-hx, hy, hz),   // 7
	}

	faces := [][]int{
		{0, 3, 2, 1}, // z = -hz, normal (0,0,-1)
		{4, 5, 6, 7}, // z = +hz, normal (0,0,1)
		{0, 1, 5, 4}, // y = -hy, normal (0,-1,0)
		{3, 7, 6, 2}, // y = +hy, normal (0,1,0)
		{0, 4, 7, 3}, // x = -hx, normal (-1,0,0)
		{1, 2, 6, 5}, // x = +hx, normal (1,0,0)
	}

	normals := []Vec3{
		vec3(0, 0, -1),
		vec3(0, 0, 1),
		vec3(0, -1, 0),
		vec3(0, 1, 0),
		vec3(-1, 0, 0),
		vec3(1, 0, 0),
	}

	edges := []Vec3{
		vec3(1, 0, 0),
		vec3(0, 1, 0),
		vec3(0, 0, 1),
	}

	return ConvexPolyhedron{Vertices: vertices, Faces: faces, Normals: normals, Edges: edges}
}

// FromVerticesAndFaces builds a hull from explicit vertices and face index
// lists. Normals are derived from the first three vertices of each face as
// normalize(cross(v1-v0, v2-v0)); the caller is responsible for winding
// faces so this comes out pointing outward. Edges are computed by
// UniqueEdges; seed may be nil.
func FromVerticesAndFaces(vertices []Vec3, faces [][]int, seed []Vec3) ConvexPolyhedron {
	normals := make([]Vec3, len(faces))
	for i, face := range faces {
		v0, v1, v2 := vertices[face[0]], vertices[face[1]], vertices[face[2]]
		n, ok := SafeNormalize(v1.Sub(v0).Cross(v2.Sub(v0)))
		if !ok {
			n = vec3(0, 0, 1)
		}
		normals[i] = n
	}

	return ConvexPolyhedron{
		Vertices: vertices,
		Faces:    faces,
		Normals:  normals,
		Edges:    UniqueEdges(vertices, faces, seed),
	}
}

// UniqueEdges walks every face's consecutive vertex pairs (wrapping) and
// collects the set of distinct edge directions, up to sign, within Epsilon.
// The result preserves order of first occurrence; seed pre-populates the
// result for determinism across related hulls.
func UniqueEdges(vertices []Vec3, faces [][]int, seed []Vec3) []Vec3 {
	result := append([]Vec3{}, seed...)

	addCandidate := func(dir Vec3) {
		unit, ok := SafeNormalize(dir)
		if !ok {
			return
		}
		for _, e := range result {
			if ApproxEqualVec3(e, unit) || ApproxEqualVec3(e, unit.Mul(-1)) {
				return
			}
		}
		result = append(result, unit)
	}

	for _, face := range faces {
		n := len(face)
		for i := 0; i < n; i++ {
			a := vertices[face[i]]
			b := vertices[face[(i+1)%n]]
			addCandidate(b.Sub(a))
		}
	}

	return result
}

// ClipFaceAgainstPlane clips an ordered polygon against the half-space
// n·x+c <= 0 using Sutherland-Hodgman. The returned polygon may be empty.
func ClipFaceAgainstPlane(n Vec3, c float64, polygon []Vec3) []Vec3 {
	if len(polygon) == 0 {
		return nil
	}

	result := make([]Vec3, 0, len(polygon)+1)
	prev := polygon[len(polygon)-1]
	dPrev := n.Dot(prev) + c

	for _, curr := range polygon {
		dCurr := n.Dot(curr) + c

		if dPrev*dCurr < 0 {
			t := dPrev / (dPrev - dCurr)
			result = append(result, prev.Add(curr.Sub(prev).Mul(t)))
		}
		if dCurr <= 0 {
			result = append(result, curr)
		}

		prev = curr
		dPrev = dCurr
	}

	return result
}

// ClippedPoint is one point produced by clipping an incident face against a
// reference face, with the reference face's outward normal negated (so it
// points from the incident hull toward the reference hull) and the signed
// penetration depth against the reference face plane.
type ClippedPoint struct {
	Point  Vec3
	Normal Vec3
	Depth  float64
}

// facePlane returns the world-space (normal, constant) pair for hull face
// faceIndex under transform, satisfying normal·x + constant = 0 on the
// plane.
func facePlane(hull *ConvexPolyhedron, transform Transform, faceIndex int) (Vec3, float64) {
	assertf(faceIndex >= 0 && faceIndex < len(hull.Faces), "facePlane: face index %d out of range (%d faces)", faceIndex, len(hull.Faces))
	normal := transform.VectorToWorld(hull.Normals[faceIndex])
	point := transform.PointToWorld(hull.Vertices[hull.Faces[faceIndex][0]])
	return normal, -normal.Dot(point)
}

// neighborFaces returns the indices of every face of hull sharing an edge
// (two consecutive vertex indices, in either winding) with faceIndex.
func neighborFaces(hull *ConvexPolyhedron, faceIndex int) []int {
	edgeKey := func(a, b int) (int, int) {
		if a < b {
			return a, b
		}
		return b, a
	}

	target := map[[2]int]bool{}
	face := hull.Faces[faceIndex]
	for i, n := 0, len(face); i < n; i++ {
		a, b := edgeKey(face[i], face[(i+1)%n])
		target[[2]int{a, b}] = true
	}

	var neighbors []int
	for fi, other := range hull.Faces {
		if fi == faceIndex {
			continue
		}
		for i, n := 0, len(other); i < n; i++ {
			a, b := edgeKey(other[i], other[(i+1)%n])
			if target[[2]int{a, b}] {
				neighbors = append(neighbors, fi)
				break
			}
		}
	}
	return neighbors
}

// ClipFaceAgainstHull clips polygon (already in world coordinates) against
// every face plane of hull EXCEPT referenceFaceIndex, then filters the
// result to points whose signed distance to the reference face plane lies
// within [minDepth, maxDepth].
func ClipFaceAgainstHull(hull *ConvexPolyhedron, transform Transform, referenceFaceIndex int, polygon []Vec3, minDepth, maxDepth float64) []ClippedPoint {
	clipped := polygon
	for fi := range hull.Faces {
		if fi == referenceFaceIndex {
			continue
		}
		if len(clipped) == 0 {
			break
		}
		n, c := facePlane(hull, transform, fi)
		clipped = ClipFaceAgainstPlane(n, c, clipped)
	}

	refNormal, refC := facePlane(hull, transform, referenceFaceIndex)
	outNormal := refNormal.Mul(-1)

	result := make([]ClippedPoint, 0, len(clipped))
	for _, p := range clipped {
		depth := refNormal.Dot(p) + refC
		if depth >= minDepth && depth <= maxDepth {
			result = append(result, ClippedPoint{Point: p, Normal: outNormal, Depth: depth})
		}
	}
	return result
}

// Project returns (max, min) such that the projection of every world
// vertex of hull under transform onto axis lies in [-min, max]: max is the
// maximum of worldVertex·axis, min is the maximum of -worldVertex·axis.
func Project(transform Transform, hull *ConvexPolyhedron, axis Vec3) (max, min float64) {
	first := true
	for _, v := range hull.Vertices {
		w := transform.PointToWorld(v)
		d := w.Dot(axis)
		if first {
			max, min = d, -d
			first = false
			continue
		}
		if d > max {
			max = d
		}
		if -d > min {
			min = -d
		}
	}
	return max, min
}

// FindSeparatingAxis runs SAT over hullA's face normals, hullB's face
// normals, and the cross products of hullA's and hullB's unique edge
// directions (skipping near-parallel pairs). It returns the axis of
// smallest positive overlap depth, oriented so it points from
// hullB toward hullA (i.e. (posB - posA)·axis < 0), and false if any
// candidate axis separates the hulls.
func FindSeparatingAxis(hullA *ConvexPolyhedron, transformA Transform, hullB *ConvexPolyhedron, transformB Transform) (Vec3, bool) {
	var bestAxis Vec3
	bestDepth := 0.0
	found := false

	consider := func(axis Vec3) bool {
		unit, ok := SafeNormalize(axis)
		if !ok {
			return true
		}
		maxA, minA := Project(transformA, hullA, unit)
		maxB, minB := Project(transformB, hullB, unit)
		depth := min(maxA+minB, maxB+minA)
		if depth < 0 {
			return false
		}
		if !found || depth < bestDepth {
			bestDepth = depth
			bestAxis = unit
			found = true
		}
		return true
	}

	for _, n := range hullA.Normals {
		if !consider(transformA.VectorToWorld(n)) {
			return Vec3{}, false
		}
	}
	for _, n := range hullB.Normals {
		if !consider(transformB.VectorToWorld(n)) {
			return Vec3{}, false
		}
	}
	for _, ea := range hullA.Edges {
		wa := transformA.VectorToWorld(ea)
		for _, eb := range hullB.Edges {
			wb := transformB.VectorToWorld(eb)
			cross := wa.Cross(wb)
			if cross.Dot(cross) < Epsilon*Epsilon {
				continue
			}
			if !consider(cross) {
				return Vec3{}, false
			}
		}
	}

	if !found {
		return Vec3{}, false
	}

	if transformB.Position.Sub(transformA.Position).Dot(bestAxis) > 0 {
		bestAxis = bestAxis.Mul(-1)
	}
	return bestAxis, true
}

// ClipAgainstHull generates the contact manifold between hullA and hullB
// given a separating axis returned by FindSeparatingAxis, selecting a
// reference face and an incident face and clipping the incident face's
// polygon against the reference face's neighbors.
func ClipAgainstHull(hullA *ConvexPolyhedron, transformA Transform, hullB *ConvexPolyhedron, transformB Transform, axis Vec3, minDepth, maxDepth float64) []ClippedPoint {
	bestFaceDot := func(hull *ConvexPolyhedron, transform Transform, dir Vec3) (int, float64) {
		best, bestDot := 0, -2.0
		for fi, n := range hull.Normals {
			d := transform.VectorToWorld(n).Dot(dir)
			if d > bestDot {
				bestDot = d
				best = fi
			}
		}
		return best, bestDot
	}

	faceA, dotA := bestFaceDot(hullA, transformA, axis.Mul(-1))
	faceB, dotB := bestFaceDot(hullB, transformB, axis)

	var refHull, incHull *ConvexPolyhedron
	var refTransform, incTransform Transform
	var refFace, incFace int

	if dotA >= dotB {
		refHull, refTransform, refFace = hullA, transformA, faceA
		incHull, incTransform = hullB, transformB
		incFace, _ = bestFaceDot(incHull, incTransform, axis)
	} else {
		refHull, refTransform, refFace = hullB, transformB, faceB
		incHull, incTransform = hullA, transformA
		incFace, _ = bestFaceDot(incHull, incTransform, axis.Mul(-1))
	}

	incidentPolygon := make([]Vec3, len(incHull.Faces[incFace]))
	for i, vi := range incHull.Faces[incFace] {
		incidentPolygon[i] = incTransform.PointToWorld(incHull.Vertices[vi])
	}

	clipped := incidentPolygon
	for _, fi := range neighborFaces(refHull, refFace) {
		if len(clipped) == 0 {
			break
		}
		n, c := facePlane(refHull, refTransform, fi)
		clipped = ClipFaceAgainstPlane(n, c, clipped)
	}

	refNormal, refC := facePlane(refHull, refTransform, refFace)
	outNormal := refNormal.Mul(-1)

	result := make([]ClippedPoint, 0, len(clipped))
	for _, p := range clipped {
		depth := refNormal.Dot(p) + refC
		if depth >= minDepth && depth <= maxDepth {
			result = append(result, ClippedPoint{Point: p, Normal: outNormal, Depth: depth})
		}
	}
	return result
}
