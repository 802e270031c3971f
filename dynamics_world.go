package physics3d

// SolverIterations is the default fixed Gauss-Seidel iteration count.
const SolverIterations = 20

// AABB is a world-space axis-aligned bounding box, used only as a cheap
// broad-phase rejection test ahead of narrow phase — the naive box-overlap
// version of the teacher's B2AABB/B2TestOverlapBoundingBoxes.
type AABB struct {
	Min, Max Vec3
}

func (a AABB) overlaps(b AABB) bool {
	d1 := b.Min.Sub(a.Max)
	d2 := a.Min.Sub(b.Max)
	if d1.X() > 0 || d1.Y() > 0 || d1.Z() > 0 {
		return false
	}
	if d2.X() > 0 || d2.Y() > 0 || d2.Z() > 0 {
		return false
	}
	return true
}

// shapeAABB computes a conservative world AABB for shape under transform.
// Planes have no finite extent and always overlap.
func shapeAABB(shape Shape, transform Transform) (AABB, bool) {
	switch shape.Kind {
	case ShapePlane:
		return AABB{}, false
	case ShapeSphere:
		center := transform.Position
		r := vec3(shape.Radius, shape.Radius, shape.Radius)
		return AABB{Min: center.Sub(r), Max: center.Add(r)}, true
	case ShapeConvex:
		first := true
		var box AABB
		for _, v := range shape.Hull.Vertices {
			w := transform.PointToWorld(v)
			if first {
				box = AABB{Min: w, Max: w}
				first = false
				continue
			}
			box.Min = minVec3(box.Min, w)
			box.Max = maxVec3(box.Max, w)
		}
		return box, !first
	default:
		return AABB{}, false
	}
}

func minVec3(a, b Vec3) Vec3 {
	return vec3(min(a.X(), b.X()), min(a.Y(), b.Y()), min(a.Z(), b.Z()))
}

func maxVec3(a, b Vec3) Vec3 {
	return vec3(max(a.X(), b.X()), max(a.Y(), b.Y()), max(a.Z(), b.Z()))
}

// World owns a dense body registry, gravity, and orchestrates Step.
// Grounded on the teacher's B2World (DynamicsB2World.go), simplified to a
// single-threaded, no-joint, no-sleep core.
type World struct {
	bodies  []Body
	gravity Vec3

	contacts []ContactEquation
}

// NewWorld returns an empty world with zero gravity.
func NewWorld() World {
	return World{}
}

// SetGravity sets the world's gravity vector.
func (w *World) SetGravity(g Vec3) {
	w.gravity = g
}

// Gravity returns the world's gravity vector.
func (w *World) Gravity() Vec3 {
	return w.gravity
}

// AddBody appends b to the registry and returns its dense BodyId, equal to
// the previous body count.
func (w *World) AddBody(b Body) BodyId {
	id := BodyId(len(w.bodies))
	w.bodies = append(w.bodies, b)
	return id
}

// BodyCount returns the number of registered bodies.
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Body returns a pointer to the body identified by id, valid until the
// next AddBody call.
func (w *World) Body(id BodyId) *Body {
	return &w.bodies[id]
}

// ContactCount returns the number of contacts produced by the most recent
// Step.
func (w *World) ContactCount() int {
	return len(w.contacts)
}

// Step advances the simulation by dt seconds: apply gravity, run narrow
// phase over every body pair, relax contacts for SolverIterations, then
// integrate poses and clear accumulators — strictly in that order.
func (w *World) Step(dt float64) {
	for i := range w.bodies {
		b := &w.bodies[i]
		if b.IsStatic() {
			continue
		}
		b.IntegrateForces(w.gravity, dt)
	}

	w.contacts = w.gatherContacts(w.contacts[:0])

	SolveContacts(w.bodies, w.contacts, dt, SolverIterations)

	for i := range w.bodies {
		b := &w.bodies[i]
		if b.IsStatic() {
			continue
		}
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
		b.Quaternion = IntegrateQuaternion(b.Quaternion, b.AngularVelocity, dt)
		b.ClearAccumulators()
	}
}

// gatherContacts enumerates the unordered set of body-index pairs {i,j}
// with i<j, sorted by (bodyId1, bodyId2) for deterministic ordering, and
// dispatches each shape pair to NarrowPhase after an AABB rejection
// pre-filter.
func (w *World) gatherContacts(out []ContactEquation) []ContactEquation {
	n := len(w.bodies)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			bi, bj := &w.bodies[i], &w.bodies[j]
			if bi.IsStatic() && bj.IsStatic() {
				continue
			}
			for si, shapeI := range bi.Shapes() {
				tI := bi.WorldTransform(ShapeId(si))
				boxI, hasI := shapeAABB(shapeI, tI)
				for sj, shapeJ := range bj.Shapes() {
					tJ := bj.WorldTransform(ShapeId(sj))
					boxJ, hasJ := shapeAABB(shapeJ, tJ)
					if hasI && hasJ && !boxI.overlaps(boxJ) {
						continue
					}
					out = NarrowPhase(out, BodyId(i), bi.Position, shapeI, tI, BodyId(j), bj.Position, shapeJ, tJ)
				}
			}
		}
	}
	return out
}
