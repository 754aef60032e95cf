package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/papercards/common"
)

type hitBody struct {
	body   *cp.Body
	shape  *cp.Shape
	width  float64
	height float64
	z      int
	index  int
}

// HitWorld owns a Chipmunk space with one kinematic box per card so pointer
// presses can be routed to the topmost rotated card.
type HitWorld struct {
	space  *cp.Space
	bodies map[Entity]*hitBody
}

// NewHitWorld creates an empty hit world.
func NewHitWorld() *HitWorld {
	return &HitWorld{
		space:  cp.NewSpace(),
		bodies: make(map[Entity]*hitBody),
	}
}

// Sync places e's box at center (cx, cy) with the given size and rotation in
// degrees. The box is rebuilt when its size changes.
func (hw *HitWorld) Sync(e Entity, cx, cy, width, height, rotationDeg float64, z, index int) {
	if hw == nil || !e.Valid() || width <= 0 || height <= 0 {
		return
	}
	hb, ok := hw.bodies[e]
	if ok && (hb.width != width || hb.height != height) {
		hw.space.RemoveShape(hb.shape)
		hb.shape = cp.NewBox(hb.body, width, height, 0)
		hw.space.AddShape(hb.shape)
		hb.width = width
		hb.height = height
	}
	if !ok {
		body := hw.space.AddBody(cp.NewKinematicBody())
		shape := hw.space.AddShape(cp.NewBox(body, width, height, 0))
		hb = &hitBody{body: body, shape: shape, width: width, height: height}
		hw.bodies[e] = hb
	}
	hb.z = z
	hb.index = index
	hb.body.SetPosition(cp.Vector{X: cx, Y: cy})
	hb.body.SetAngle(common.DegToRad(rotationDeg))
	hb.shape.CacheBB()
}

// Remove drops e's box.
func (hw *HitWorld) Remove(e Entity) {
	if hw == nil {
		return
	}
	hb, ok := hw.bodies[e]
	if !ok {
		return
	}
	hw.space.RemoveShape(hb.shape)
	hw.space.RemoveBody(hb.body)
	delete(hw.bodies, e)
}

// Topmost returns the entity under (x, y) with the highest stacking value;
// ties go to the later card in document order.
func (hw *HitWorld) Topmost(x, y float64) (Entity, bool) {
	if hw == nil {
		return 0, false
	}
	var (
		best  Entity
		found bool
		bestZ int
		bestI int
	)
	p := cp.Vector{X: x, Y: y}
	for e, hb := range hw.bodies {
		info := hb.shape.PointQuery(p)
		if info.Distance > 0 {
			continue
		}
		if !found || hb.z > bestZ || (hb.z == bestZ && hb.index > bestI) {
			best, bestZ, bestI, found = e, hb.z, hb.index, true
		}
	}
	return best, found
}

// Len reports how many boxes are tracked.
func (hw *HitWorld) Len() int {
	if hw == nil {
		return 0
	}
	return len(hw.bodies)
}
