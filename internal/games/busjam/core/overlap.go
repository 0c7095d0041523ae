package core

import "github.com/go-gl/mathgl/mgl64"

// OverlapChecker answers physics-style sphere queries against scene objects.
type OverlapChecker interface {
	CheckSphere(center mgl64.Vec3, radius float64) bool
}

// ObjectMask is a bit set of ObjectTypes.
type ObjectMask uint8

// MaskOf builds a mask from object types.
func MaskOf(types ...ObjectType) ObjectMask {
	var m ObjectMask
	for _, t := range types {
		m |= 1 << t
	}
	return m
}

// Has reports whether the mask contains t.
func (m ObjectMask) Has(t ObjectType) bool {
	return m&(1<<t) != 0
}

// SphereOverlap tests spheres against world objects whose type is in the
// mask. Every object is treated as a sphere of ObjectRadius.
type SphereOverlap struct {
	objects      []WorldObject
	mask         ObjectMask
	objectRadius float64
}

// NewSphereOverlap creates an overlap checker. It returns nil for an empty
// mask so callers can skip the query entirely.
func NewSphereOverlap(objects []WorldObject, mask ObjectMask, objectRadius float64) *SphereOverlap {
	if mask == 0 {
		return nil
	}
	filtered := make([]WorldObject, 0, len(objects))
	for _, o := range objects {
		if mask.Has(o.Type) {
			filtered = append(filtered, o)
		}
	}
	return &SphereOverlap{objects: filtered, mask: mask, objectRadius: objectRadius}
}

// CheckSphere returns true if the sphere touches any masked object.
func (s *SphereOverlap) CheckSphere(center mgl64.Vec3, radius float64) bool {
	if s == nil {
		return false
	}
	limit := radius + s.objectRadius
	for _, o := range s.objects {
		if o.Position.Sub(center).Len() < limit {
			return true
		}
	}
	return false
}
