// Package ibm implements the ghost-cell immersed-boundary classifier: the
// three-pass sweep that labels every node fluid, solid, ghost or exterior
// around one or more embedded rigid bodies. Grounded on
// original_source/gcibm.c (InitializeDomainGeometryGCIBM,
// LocateSolidGeometry, IdentifyGhostCells).
package ibm

import "github.com/artracfd/gocfd/internal/geom"

// Body is an embedded rigid geometry the classifier tests nodes against.
// The original only ever modeled spheres (gcibm.c's Particle array); Sphere,
// Box and HalfSpace here generalize that to the body kinds spec.md's
// component design calls for, all behind the same interface the classifier
// consumes.
type Body interface {
	// Inside reports whether point p lies within the body's solid region.
	Inside(p geom.Vec3) bool
	// GeoID returns the body's index, stored alongside solid/ghost nodes so
	// later passes (force integration, kinematics) can look the body back up
	// without storing per-node geometry.
	GeoID() int
}

// Sphere is a rigid ball, the only body kind the original solver supported.
// Inside reproduces LocateSolidGeometry's test exactly: squared distance to
// center minus squared radius, not a true signed distance, kept because
// spec.md's testable properties are phrased against this exact predicate.
// Vel is the body's linear velocity; zero for a stationary sphere.
type Sphere struct {
	Center geom.Vec3
	Radius float64
	Vel    geom.Vec3
	ID     int
}

func (s Sphere) Inside(p geom.Vec3) bool {
	return geom.Dist2(p, s.Center)-s.Radius*s.Radius < 0
}

func (s Sphere) GeoID() int { return s.ID }

// Velocity returns the sphere's linear velocity.
func (s Sphere) Velocity() geom.Vec3 { return s.Vel }

// Translate returns a copy of s with its center advanced by d.
func (s Sphere) Translate(d geom.Vec3) Body {
	s.Center = geom.Vec3{s.Center[0] + d[0], s.Center[1] + d[1], s.Center[2] + d[2]}
	return s
}

// Kinematic is implemented by bodies whose center can translate over time.
// internal/solver's time driver advances any Kinematic body by forward
// Euler and re-runs the classifier on every step a body has moved (spec.md
// 4.6's "InitializeDomainGeometry as a whole on body motion").
type Kinematic interface {
	Body
	Velocity() geom.Vec3
	Translate(d geom.Vec3) Body
}

// Box is an axis-aligned rectangular solid.
type Box struct {
	Min, Max geom.Vec3
	ID       int
}

func (b Box) Inside(p geom.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if p[axis] < b.Min[axis] || p[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}

func (b Box) GeoID() int { return b.ID }

// HalfSpace is everything on the inward side of an infinite plane, used to
// model walls and ramps that extend past the domain's extents.
type HalfSpace struct {
	Point, Normal geom.Vec3 // Normal points out of the solid, into the fluid.
	ID            int
}

func (h HalfSpace) Inside(p geom.Vec3) bool {
	d := geom.Vec3{p[0] - h.Point[0], p[1] - h.Point[1], p[2] - h.Point[2]}
	return geom.Dot(d, h.Normal) < 0
}

func (h HalfSpace) GeoID() int { return h.ID }
