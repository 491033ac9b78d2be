package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/ecs/event"
	"go.uber.org/zap"
)

const collisionTypeBody cp.CollisionType = 1

// PhysicsSystem owns the Chipmunk2D space. Each update it mirrors new and
// removed bodies, applies accumulated external impulses, steps the space by
// the tick delta, publishes contact notifications as event.Collision and
// writes positions and velocities back to the entities.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	logger        *zap.Logger

	entities      map[ecs.Entity]*bodyInfo
	shapeToEntity map[*cp.Shape]ecs.Entity
	contacts      []event.Collision
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(opts ...Option) *PhysicsSystem {
	o := buildOptions(opts)
	space := cp.NewSpace()
	space.Iterations = o.iters
	space.SetGravity(o.gravity)
	return &PhysicsSystem{
		space:         space,
		logger:        o.logger,
		entities:      make(map[ecs.Entity]*bodyInfo),
		shapeToEntity: make(map[*cp.Shape]ecs.Entity),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.applyImpulses(w)

	ps.space.Step(w.Delta().Seconds())

	ps.flushContacts(w)
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeBody, collisionTypeBody)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.recordContact(arb, event.CollisionStarted)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.recordContact(arb, event.CollisionStopped)
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) recordContact(arb *cp.Arbiter, kind event.CollisionKind) {
	shapeA, shapeB := arb.Shapes()
	a, okA := ps.shapeToEntity[shapeA]
	b, okB := ps.shapeToEntity[shapeB]
	if !okA || !okB {
		return
	}
	ps.contacts = append(ps.contacts, event.Collision{Kind: kind, A: a, B: b})
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	for _, c := range ps.contacts {
		ecs.Send(w, event.CollisionEvents, c)
	}
	ps.contacts = ps.contacts[:0]
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		if _, exists := ps.entities[e]; exists {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		var vel component.Velocity
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel = *v
		}

		info := ps.createBodyInfo(*transform, *bodyComp, vel)
		ps.entities[e] = info
		ps.shapeToEntity[info.shape] = e
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody, vel component.Velocity) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		width = 32
		height = 32
	}
	pos := transform.Position()

	info := &bodyInfo{static: bodyComp.Static}

	if bodyComp.Static {
		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, pos)
		} else {
			bb := cp.BB{L: pos.X - width/2, B: pos.Y - height/2, R: pos.X + width/2, T: pos.Y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		ps.configureShape(shape, bodyComp)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.shape = shape
		return info
	}

	mass := bodyMass(bodyComp, width, height)
	var moment float64
	if radius > 0 {
		moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
	} else {
		moment = cp.MomentForBox(mass, width, height)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(pos)
	body.SetAngle(transform.Rotation)
	body.SetVelocityVector(vel.Linear)
	body.SetAngularVelocity(vel.Angular)

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	ps.configureShape(shape, bodyComp)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shape = shape
	return info
}

func (ps *PhysicsSystem) configureShape(shape *cp.Shape, bodyComp component.PhysicsBody) {
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeBody)
	shape.SetSensor(bodyComp.Sensor)
}

// bodyMass prefers an explicit mass, then density times collider area, then 1.
func bodyMass(bodyComp component.PhysicsBody, width, height float64) float64 {
	if bodyComp.Mass > 0 {
		return bodyComp.Mass
	}
	if bodyComp.Density > 0 {
		area := width * height
		if bodyComp.Radius > 0 {
			area = math.Pi * bodyComp.Radius * bodyComp.Radius
		}
		if m := bodyComp.Density * area; m > 0 {
			return m
		}
	}
	return 1
}

// applyImpulses hands each accumulated impulse to its body and clears the
// accumulator.
func (ps *PhysicsSystem) applyImpulses(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.ExternalImpulseComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, acc *component.ExternalImpulse) {
		impulse := acc.Impulse
		acc.Impulse = cp.Vector{}
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		if impulse.X == 0 && impulse.Y == 0 {
			return
		}
		bodyComp.Body.ApplyImpulseAtWorldPoint(impulse, bodyComp.Body.Position())
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static || info.body == nil {
			continue
		}
		if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			pos := info.body.Position()
			transform.X = pos.X
			transform.Y = pos.Y
			transform.Rotation = info.body.Angle()
		}
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel.Linear = info.body.Velocity()
			vel.Angular = info.body.AngularVelocity()
		}
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}

		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapeToEntity, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
		ps.logger.Debug("physics body removed", zap.Stringer("entity", e))
	}
	// Separation callbacks fired by the removals above refer to entities that
	// no longer exist; contact-end notifications carry no state anyway.
	ps.contacts = ps.contacts[:0]
}

// BodyCount reports how many entities currently own a body in the space.
func (ps *PhysicsSystem) BodyCount() int {
	if ps == nil {
		return 0
	}
	return len(ps.entities)
}
