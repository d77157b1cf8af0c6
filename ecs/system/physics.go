package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/bloxroll/common"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
)

// PhysicsSystem integrates simulated rigid bodies: gravity on the centre of
// mass and rotation about it. It also flags anything that fell below its
// kill height for respawn.
type PhysicsSystem struct {
	dt      float64
	gravity mgl64.Vec3
}

func NewPhysicsSystem(dt float64) *PhysicsSystem {
	return &PhysicsSystem{dt: dt, gravity: mgl64.Vec3{0, common.Gravity, 0}}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.RigidBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.RigidBody, t *component.Transform) {
		if !body.Simulated {
			return
		}
		scale := 1.0
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent); ok {
			scale = gs.Scale
		}
		integrate(body, t, p.gravity.Mul(scale), p.dt)
	})

	ecs.ForEach2(w, component.SafeRespawnComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, safe *component.SafeRespawn, t *component.Transform) {
		if t.Position.Y() >= safe.KillHeight || ecs.Has(w, e, component.RespawnRequestComponent) {
			return
		}
		_ = ecs.Add(w, e, component.RespawnRequestComponent, component.RespawnRequest{})
	})
}

// integrate advances one body by dt with semi-implicit Euler.
func integrate(body *component.RigidBody, t *component.Transform, gravity mgl64.Vec3, dt float64) {
	if dt <= 0 {
		return
	}
	rot := t.Rotation
	if rot.Len() == 0 {
		rot = mgl64.QuatIdent()
	}

	com := t.Position.Add(rot.Rotate(body.CenterOfMass))

	body.Velocity = body.Velocity.Add(gravity.Mul(dt))
	com = com.Add(body.Velocity.Mul(dt))

	if speed := body.AngularVelocity.Len(); speed > 0 {
		step := mgl64.QuatRotate(speed*dt, body.AngularVelocity.Mul(1/speed))
		rot = step.Mul(rot).Normalize()
		body.AngularVelocity = body.AngularVelocity.Mul(math.Max(0, 1-body.AngularDamping*dt))
	}

	t.Rotation = rot
	t.Position = com.Sub(rot.Rotate(body.CenterOfMass))
}
