package ecs

import (
	"log"
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/combatloop/common"
	"github.com/milk9111/combatloop/ecs/component"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeProjectile
	collisionTypeStatic
)

// RaycastHit is the first thing a ray struck. Entity is zero for static
// scenery.
type RaycastHit struct {
	Entity   Entity
	Point    common.Vec3
	Distance float64
	Layer    component.Layer
}

type bodyInfo struct {
	entity  Entity
	body    *cp.Body
	shape   *cp.Shape
	spec    component.PhysicsBody
	layer   component.CollisionLayer
	y       float64
	vy      float64
	enabled bool
}

// extent is the vertical span of the collider. Actors stand on y,
// projectiles are centred on it.
func (b *bodyInfo) extent() (float64, float64) {
	if b.spec.Dynamic {
		return b.y - b.spec.Radius, b.y + b.spec.Radius
	}
	return b.y, b.y + b.spec.Height
}

type staticInfo struct {
	shape *cp.Shape
	bb    cp.BB
	base  float64
	top   float64
	layer component.Layer
}

// PhysicsWorld owns the Chipmunk space. The space models the horizontal XZ
// plane (cp X = world X, cp Y = world Z); the vertical axis is integrated
// per body and checked whenever two shapes touch.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool

	bodies        map[Entity]*bodyInfo
	shapeToEntity map[*cp.Shape]Entity
	statics       map[*cp.Shape]*staticInfo
	floors        []*staticInfo
	pending       map[Entity]common.Vec3
	contacts      []ContactEvent
}

// NewPhysicsWorld creates an empty physics world.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	pw := &PhysicsWorld{
		space:         space,
		bodies:        make(map[Entity]*bodyInfo),
		shapeToEntity: make(map[*cp.Shape]Entity),
		statics:       make(map[*cp.Shape]*staticInfo),
		pending:       make(map[Entity]common.Vec3),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

func planar(v common.Vec3) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Z}
}

func shapeFilter(category, mask component.Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(0, uint(category), uint(mask|component.LayerQuery))
}

func queryFilter(mask component.Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(0, uint(component.LayerQuery), uint(mask))
}

// AddFloor adds a walkable rectangle whose surface sits at height.
func (pw *PhysicsWorld) AddFloor(minX, minZ, maxX, maxZ, height float64) {
	if pw == nil || pw.space == nil {
		return
	}
	bb := cp.BB{L: minX, B: minZ, R: maxX, T: maxZ}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetCollisionType(collisionTypeStatic)
	// Floors answer queries only; nothing collides with them in the plane.
	shape.SetFilter(cp.NewShapeFilter(0, uint(component.LayerGround), uint(component.LayerQuery)))
	pw.space.AddShape(shape)
	info := &staticInfo{shape: shape, bb: bb, base: height, top: height, layer: component.LayerGround}
	pw.statics[shape] = info
	pw.floors = append(pw.floors, info)
}

// AddWall adds a solid block standing on base up to base+height.
func (pw *PhysicsWorld) AddWall(minX, minZ, maxX, maxZ, base, height float64) {
	if pw == nil || pw.space == nil {
		return
	}
	bb := cp.BB{L: minX, B: minZ, R: maxX, T: maxZ}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeStatic)
	shape.SetFilter(shapeFilter(component.LayerWall, component.LayerAll))
	pw.space.AddShape(shape)
	pw.statics[shape] = &staticInfo{shape: shape, bb: bb, base: base, top: base + height, layer: component.LayerWall}
}

// EnsureBody creates the collider for e if it has none yet.
func (pw *PhysicsWorld) EnsureBody(e Entity, spec component.PhysicsBody, layer component.CollisionLayer, pos common.Vec3) {
	if pw == nil || pw.space == nil || !e.Valid() {
		return
	}
	if _, ok := pw.bodies[e]; ok {
		return
	}
	if spec.Radius <= 0 {
		spec.Radius = 0.5
	}
	if layer.Category == 0 {
		layer.Category = component.LayerDefault
	}
	if layer.Mask == 0 {
		layer.Mask = component.LayerAll
	}

	var body *cp.Body
	if spec.Dynamic {
		if spec.Mass <= 0 {
			spec.Mass = 1
		}
		body = cp.NewBody(spec.Mass, cp.MomentForCircle(spec.Mass, 0, spec.Radius, cp.Vector{}))
	} else {
		body = cp.NewKinematicBody()
	}
	body.SetPosition(planar(pos))

	shape := cp.NewCircle(body, spec.Radius, cp.Vector{})
	shape.SetSensor(spec.Sensor)
	if spec.Dynamic {
		shape.SetCollisionType(collisionTypeProjectile)
	} else {
		shape.SetCollisionType(collisionTypeActor)
	}
	shape.SetFilter(shapeFilter(layer.Category, layer.Mask))

	pw.space.AddBody(body)
	pw.space.AddShape(shape)

	info := &bodyInfo{entity: e, body: body, shape: shape, spec: spec, layer: layer, y: pos.Y, enabled: true}
	pw.bodies[e] = info
	pw.shapeToEntity[shape] = e

	if impulse, ok := pw.pending[e]; ok {
		delete(pw.pending, e)
		pw.applyImpulse(info, impulse)
	}
}

// RemoveBody drops the collider of e. It must not be called during Step.
func (pw *PhysicsWorld) RemoveBody(e Entity) {
	if pw == nil {
		return
	}
	delete(pw.pending, e)
	info, ok := pw.bodies[e]
	if !ok {
		return
	}
	delete(pw.bodies, e)
	delete(pw.shapeToEntity, info.shape)
	pw.space.RemoveShape(info.shape)
	pw.space.RemoveBody(info.body)
}

// BodyEntities lists entities that currently own a collider.
func (pw *PhysicsWorld) BodyEntities() []Entity {
	if pw == nil {
		return nil
	}
	out := make([]Entity, 0, len(pw.bodies))
	for e := range pw.bodies {
		out = append(out, e)
	}
	return out
}

// IsDynamic reports whether e owns a simulated body.
func (pw *PhysicsWorld) IsDynamic(e Entity) bool {
	if pw == nil {
		return false
	}
	info, ok := pw.bodies[e]
	return ok && info.spec.Dynamic
}

// MoveKinematic teleports a kinematic collider to pos.
func (pw *PhysicsWorld) MoveKinematic(e Entity, pos common.Vec3) {
	if pw == nil {
		return
	}
	info, ok := pw.bodies[e]
	if !ok || info.spec.Dynamic {
		return
	}
	info.body.SetPosition(planar(pos))
	info.y = pos.Y
}

// Position returns the simulated position of e.
func (pw *PhysicsWorld) Position(e Entity) (common.Vec3, bool) {
	if pw == nil {
		return common.Vec3{}, false
	}
	info, ok := pw.bodies[e]
	if !ok {
		return common.Vec3{}, false
	}
	p := info.body.Position()
	return common.Vec3{X: p.X, Y: info.y, Z: p.Y}, true
}

// Velocity returns the simulated velocity of e.
func (pw *PhysicsWorld) Velocity(e Entity) (common.Vec3, bool) {
	if pw == nil {
		return common.Vec3{}, false
	}
	info, ok := pw.bodies[e]
	if !ok {
		return common.Vec3{}, false
	}
	v := info.body.Velocity()
	return common.Vec3{X: v.X, Y: info.vy, Z: v.Y}, true
}

// AddImpulse applies an instantaneous velocity change to a dynamic body.
// Impulses for bodies not built yet are applied when the body appears.
func (pw *PhysicsWorld) AddImpulse(e Entity, impulse common.Vec3) {
	if pw == nil {
		return
	}
	info, ok := pw.bodies[e]
	if !ok {
		pw.pending[e] = pw.pending[e].Add(impulse)
		return
	}
	pw.applyImpulse(info, impulse)
}

func (pw *PhysicsWorld) applyImpulse(info *bodyInfo, impulse common.Vec3) {
	if !info.spec.Dynamic {
		return
	}
	inv := 1 / info.spec.Mass
	info.body.SetVelocityVector(info.body.Velocity().Add(planar(impulse).Mult(inv)))
	info.vy += impulse.Y * inv
}

// SetCollidersEnabled turns every collider of e on or off.
func (pw *PhysicsWorld) SetCollidersEnabled(e Entity, enabled bool) {
	if pw == nil {
		return
	}
	info, ok := pw.bodies[e]
	if !ok || info.enabled == enabled {
		return
	}
	info.enabled = enabled
	if enabled {
		info.shape.SetFilter(shapeFilter(info.layer.Category, info.layer.Mask))
		return
	}
	info.shape.SetFilter(cp.NewShapeFilter(0, 0, 0))
	log.Printf("PhysicsWorld: colliders disabled for entity %s", e)
}

// OverlapSphere returns the entities on mask whose colliders intersect the
// sphere.
func (pw *PhysicsWorld) OverlapSphere(center common.Vec3, radius float64, mask component.Layer) []Entity {
	if pw == nil || pw.space == nil || radius <= 0 {
		return nil
	}
	seen := make(map[Entity]struct{})
	var out []Entity
	origin := planar(center)
	pw.space.BBQuery(cp.NewBBForCircle(origin, radius), queryFilter(mask), func(shape *cp.Shape, data interface{}) {
		e, ok := pw.shapeToEntity[shape]
		if !ok {
			return
		}
		distance := shape.PointQuery(origin).Distance
		if distance > radius {
			return
		}
		info := pw.bodies[e]
		if info == nil || !info.enabled {
			return
		}
		lo, hi := info.extent()
		dy := math.Max(0, math.Max(lo-center.Y, center.Y-hi))
		if math.Hypot(math.Max(distance, 0), dy) > radius {
			return
		}
		if _, dup := seen[e]; dup {
			return
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}, nil)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Raycast returns the first collider on mask along the ray within maxDist.
// Floors are tested analytically against their surface height.
func (pw *PhysicsWorld) Raycast(origin, dir common.Vec3, maxDist float64, mask component.Layer) (RaycastHit, bool) {
	if pw == nil || pw.space == nil || maxDist <= 0 {
		return RaycastHit{}, false
	}
	dir = dir.Normalize()
	if dir == (common.Vec3{}) {
		return RaycastHit{}, false
	}

	best := RaycastHit{Distance: math.Inf(1)}
	found := false

	if mask&component.LayerGround != 0 && dir.Y < 0 {
		for _, f := range pw.floors {
			t := (origin.Y - f.top) / -dir.Y
			if t < 0 || t > maxDist || t >= best.Distance {
				continue
			}
			p := origin.Add(dir.Scale(t))
			if p.X < f.bb.L || p.X > f.bb.R || p.Z < f.bb.B || p.Z > f.bb.T {
				continue
			}
			best = RaycastHit{Point: p, Distance: t, Layer: component.LayerGround}
			found = true
		}
	}

	end := origin.Add(dir.Scale(maxDist))
	if solid := mask &^ component.LayerGround; solid != 0 && math.Hypot(dir.X, dir.Z) > 1e-9 {
		pw.space.SegmentQuery(planar(origin), planar(end), 0, queryFilter(solid), func(shape *cp.Shape, point, normal cp.Vector, alpha float64, data interface{}) {
			t := alpha * maxDist
			if t >= best.Distance {
				return
			}
			p := origin.Add(dir.Scale(t))
			hit, ok := pw.verticalHit(shape, p)
			if !ok {
				return
			}
			hit.Point = p
			hit.Distance = t
			best = hit
			found = true
		}, nil)
	}

	if !found {
		return RaycastHit{}, false
	}
	return best, true
}

// verticalHit checks that p lies within the vertical extent of shape.
func (pw *PhysicsWorld) verticalHit(shape *cp.Shape, p common.Vec3) (RaycastHit, bool) {
	if st, ok := pw.statics[shape]; ok {
		if st.layer == component.LayerGround || p.Y < st.base || p.Y > st.top {
			return RaycastHit{}, false
		}
		return RaycastHit{Layer: st.layer}, true
	}
	e, ok := pw.shapeToEntity[shape]
	if !ok {
		return RaycastHit{}, false
	}
	info := pw.bodies[e]
	if info == nil || !info.enabled {
		return RaycastHit{}, false
	}
	lo, hi := info.extent()
	if p.Y < lo || p.Y > hi {
		return RaycastHit{}, false
	}
	return RaycastHit{Entity: e, Layer: info.layer.Category}, true
}

// floorAt returns the surface height under (x, z).
func (pw *PhysicsWorld) floorAt(x, z float64) (float64, bool) {
	best, found := 0.0, false
	for _, f := range pw.floors {
		if x < f.bb.L || x > f.bb.R || z < f.bb.B || z > f.bb.T {
			continue
		}
		if !found || f.top > best {
			best, found = f.top, true
		}
	}
	return best, found
}

// Step advances the simulation and returns the projectile contacts seen.
func (pw *PhysicsWorld) Step(dt float64) []ContactEvent {
	if pw == nil || pw.space == nil || dt <= 0 {
		return nil
	}
	pw.contacts = pw.contacts[:0]
	pw.space.Step(dt)

	for e, info := range pw.bodies {
		if !info.spec.Dynamic {
			continue
		}
		if info.spec.UseGravity {
			info.vy += common.Gravity * dt
		}
		info.y += info.vy * dt
		if !info.enabled || info.vy > 0 {
			continue
		}
		p := info.body.Position()
		if h, ok := pw.floorAt(p.X, p.Y); ok && info.y-info.spec.Radius <= h && info.y+info.spec.Radius >= h-1 {
			pw.contacts = append(pw.contacts, ContactEvent{Projectile: e, Kind: ContactCollision})
		}
	}

	out := make([]ContactEvent, len(pw.contacts))
	copy(out, pw.contacts)
	return out
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	projectileHandler := pw.space.NewWildcardCollisionHandler(collisionTypeProjectile)
	projectileHandler.UserData = pw
	projectileHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return false
		}
		a, b := arb.Shapes()
		world.recordContact(a, b)
		world.recordContact(b, a)
		// Projectiles never bounce; contacts are resolved by gameplay code.
		return false
	}

	pw.handlersReady = true
}

// recordContact notes that projectile shape a touched b when their vertical
// extents overlap.
func (pw *PhysicsWorld) recordContact(a, b *cp.Shape) {
	pe, ok := pw.shapeToEntity[a]
	if !ok {
		return
	}
	proj := pw.bodies[pe]
	if proj == nil || !proj.spec.Dynamic || !proj.enabled {
		return
	}
	kind := ContactCollision
	if proj.spec.Sensor {
		kind = ContactTrigger
	}
	lo, hi := proj.extent()

	if st, ok := pw.statics[b]; ok {
		if hi < st.base || lo > st.top {
			return
		}
		pw.contacts = append(pw.contacts, ContactEvent{Projectile: pe, Kind: kind})
		return
	}
	oe, ok := pw.shapeToEntity[b]
	if !ok {
		return
	}
	other := pw.bodies[oe]
	if other == nil || !other.enabled {
		return
	}
	if other.spec.Sensor {
		kind = ContactTrigger
	}
	olo, ohi := other.extent()
	if hi < olo || lo > ohi {
		return
	}
	pw.contacts = append(pw.contacts, ContactEvent{Projectile: pe, Other: oe, Kind: kind})
}
