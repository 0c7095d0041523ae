package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line in world space. Dir need not be normalized.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Plane is the set of points p with Normal·p + Distance = 0.
type Plane struct {
	Normal   mgl64.Vec3
	Distance float64
}

// NewPlane creates a plane through point with the given normal.
func NewPlane(normal, point mgl64.Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Distance: -n.Dot(point)}
}

// Raycast returns the ray parameter of the intersection. ok is false if the
// ray is parallel to the plane or points away from it.
func (p Plane) Raycast(r Ray) (t float64, ok bool) {
	denom := p.Normal.Dot(r.Dir)
	if math.Abs(denom) < 1e-9 {
		return 0, false
	}
	t = -(p.Normal.Dot(r.Origin) + p.Distance) / denom
	return t, t >= 0
}

// raySphere returns the nearest non-negative hit parameter against a sphere.
func raySphere(r Ray, center mgl64.Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	a := r.Dir.Dot(r.Dir)
	if a == 0 {
		return 0, false
	}
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := (-b - sq) / a
	if t < 0 {
		t = (-b + sq) / a
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Camera converts screen points into world rays.
type Camera interface {
	ScreenPointToRay(x, y float64) Ray
}

// TopDownCamera is an orthographic camera looking straight down -Y.
// Screen X follows world +X and screen Y grows toward world -Z.
type TopDownCamera struct {
	// Center is the world point under the screen origin (OriginX, OriginY).
	Center  mgl64.Vec3
	OriginX float64
	OriginY float64
	// UnitsX and UnitsY are screen units per world unit.
	UnitsX float64
	UnitsY float64
	// Height is the ray origin above Center.
	Height float64
}

// ScreenPointToRay returns a downward ray through the screen point.
func (c TopDownCamera) ScreenPointToRay(x, y float64) Ray {
	wx := c.Center.X() + (x-c.OriginX)/c.UnitsX
	wz := c.Center.Z() - (y-c.OriginY)/c.UnitsY
	return Ray{
		Origin: mgl64.Vec3{wx, c.Center.Y() + c.Height, wz},
		Dir:    mgl64.Vec3{0, -1, 0},
	}
}

// WorldToScreen projects a world point to screen coordinates.
func (c TopDownCamera) WorldToScreen(p mgl64.Vec3) (x, y float64) {
	x = c.OriginX + (p.X()-c.Center.X())*c.UnitsX
	y = c.OriginY - (p.Z()-c.Center.Z())*c.UnitsY
	return x, y
}

// Hit is the result of a segment raycast.
type Hit struct {
	Bus      *Bus
	Segment  int
	Distance float64
}

// RaycastBuses returns the nearest bus segment hit by the ray. Each segment
// is a sphere of radius scaled by the segment scale. Disabled buses are not
// pickable.
func RaycastBuses(g *Grid, r Ray, radius float64) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, b := range g.buses {
		if b.Disabled() {
			continue
		}
		for i, s := range b.segments {
			t, ok := raySphere(r, s.Position, radius*s.Scale)
			if ok && t < best.Distance {
				best = Hit{Bus: b, Segment: i, Distance: t}
				found = true
			}
		}
	}
	return best, found
}
