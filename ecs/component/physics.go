package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Radius > 0 selects a ball collider, otherwise Width x Height is a box.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Radius     float64
	Width      float64
	Height     float64
	Mass       float64
	Density    float64
	Friction   float64
	Elasticity float64
	Static     bool
	Sensor     bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Velocity mirrors the body's velocity. Setting it before the body exists
// seeds the body's initial velocity.
type Velocity struct {
	Linear  cp.Vector
	Angular float64
}

var VelocityComponent = NewComponent[Velocity]()

// ExternalImpulse accumulates impulses to be applied on the next physics
// step. Writers add to it; the physics system applies and clears it.
type ExternalImpulse struct {
	Impulse cp.Vector
}

var ExternalImpulseComponent = NewComponent[ExternalImpulse]()
