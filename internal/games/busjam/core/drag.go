package core

import (
	"github.com/go-gl/mathgl/mgl64"
	platformcore "github.com/vovakirdan/busjam/internal/core"
)

// DefaultHitRadius is the pick radius of a segment in cells.
const DefaultHitRadius = 0.5

// DragController turns pointer gestures into bus drags. Grabbing the first
// segment drags the head, the last segment drags the tail, and middle
// segments are ignored.
type DragController struct {
	grid      *Grid
	camera    Camera
	hitRadius float64

	active *Bus
	plane  Plane
}

// NewDragController creates a controller. hitRadius is in world units; a
// non-positive value picks DefaultHitRadius cells.
func NewDragController(g *Grid, cam Camera, hitRadius float64) *DragController {
	if hitRadius <= 0 {
		hitRadius = DefaultHitRadius * g.CellSize
	}
	return &DragController{grid: g, camera: cam, hitRadius: hitRadius}
}

// SetCamera replaces the camera, e.g. after a terminal resize.
func (d *DragController) SetCamera(cam Camera) {
	d.camera = cam
}

// Active returns the bus being dragged, or nil.
func (d *DragController) Active() *Bus {
	return d.active
}

// Handle dispatches a pointer event.
func (d *DragController) Handle(ev platformcore.PointerEvent) {
	switch ev.Kind {
	case platformcore.PointerDown:
		d.PointerDown(ev.X, ev.Y)
	case platformcore.PointerMove:
		d.PointerMove(ev.X, ev.Y)
	case platformcore.PointerUp, platformcore.PointerCancel:
		d.Release()
	}
}

// PointerDown picks a bus end under the screen point and begins dragging.
func (d *DragController) PointerDown(x, y float64) bool {
	if d.active != nil || d.camera == nil {
		return false
	}
	ray := d.camera.ScreenPointToRay(x, y)
	hit, ok := RaycastBuses(d.grid, ray, d.hitRadius)
	if !ok || hit.Bus.Disabled() {
		return false
	}

	b := hit.Bus
	last := len(b.segments) - 1
	var end End
	switch hit.Segment {
	case 0:
		end = EndHead
	case last:
		end = EndTail
	default:
		return false
	}

	grabbed := b.segments[hit.Segment].Position
	d.plane = NewPlane(mgl64.Vec3{0, 1, 0}, grabbed)
	target := d.grid.WorldToGrid(grabbed)
	if t, ok := d.plane.Raycast(ray); ok {
		target = d.grid.WorldToGrid(ray.At(t))
	}

	if !b.BeginDrag(end, target) {
		return false
	}
	d.active = b
	return true
}

// PointerMove retargets the active drag.
func (d *DragController) PointerMove(x, y float64) {
	if d.active == nil || d.camera == nil {
		return
	}
	ray := d.camera.ScreenPointToRay(x, y)
	if t, ok := d.plane.Raycast(ray); ok {
		d.active.SetPointerTarget(d.grid.WorldToGrid(ray.At(t)))
	}
}

// Release ends the active drag, if any.
func (d *DragController) Release() {
	if d.active == nil {
		return
	}
	d.active.EndDrag()
	d.active = nil
}

// Drop forgets the active bus if it matches b, without touching its state.
func (d *DragController) Drop(b *Bus) {
	if d.active == b {
		d.active = nil
	}
}
