package physics3d

// ShapeKind tags the variant held by a Shape. Dispatch on shapes is a
// switch over Kind, not a virtual call.
type ShapeKind int

const (
	ShapePlane ShapeKind = iota
	ShapeSphere
	ShapeConvex
)

// Shape is the tagged {Plane, Sphere(radius), Convex(hull)} variant. Plane
// is the canonical z=0 plane, outward normal +z in local space. Only the
// field matching Kind is meaningful.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	Hull   ConvexPolyhedron
}

// Plane constructs the canonical plane shape.
func Plane() Shape {
	return Shape{Kind: ShapePlane}
}

// Sphere constructs a sphere shape of the given radius. Narrow-phase
// dispatch against spheres is unimplemented — the kind is reserved so
// callers may extend it without breaking the contract.
func Sphere(radius float64) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// Box constructs a convex box shape from half-extents.
func Box(halfExtents Vec3) Shape {
	return Shape{Kind: ShapeConvex, Hull: FromBox(halfExtents)}
}

// Convex wraps an arbitrary convex hull as a shape.
func Convex(hull ConvexPolyhedron) Shape {
	return Shape{Kind: ShapeConvex, Hull: hull}
}

// PlaneNormalLocal is the plane shape's fixed local-space outward normal.
var PlaneNormalLocal = vec3(0, 0, 1)
