package component

import "github.com/go-gl/mathgl/mgl64"

// RigidBody is the simulated state of a dynamic body. While Simulated is
// false the body is kinematic and the physics system leaves it alone.
type RigidBody struct {
	Simulated       bool
	Mass            float64
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3 // radians per second, world space
	// CenterOfMass is a body-local offset; rotation happens about it.
	CenterOfMass   mgl64.Vec3
	AngularDamping float64
}

var RigidBodyComponent = NewComponent[RigidBody]()

// GravityScale multiplies world gravity for one body; 0 floats.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()
