package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/bloxroll/common"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBody(t *testing.T, w *ecs.World, body component.RigidBody, pos mgl64.Vec3) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.RigidBodyComponent, body))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent, component.Transform{Position: pos, Rotation: mgl64.QuatIdent()}))
	return e
}

func TestPhysicsGravity(t *testing.T) {
	w := ecs.NewWorld()
	falling := newBody(t, w, component.RigidBody{Simulated: true, Mass: 1}, mgl64.Vec3{0, 1, 0})
	resting := newBody(t, w, component.RigidBody{Mass: 1}, mgl64.Vec3{2, 1, 0})

	run(w, 60, NewPhysicsSystem(tick))

	ft, _ := ecs.Get(w, falling, component.TransformComponent)
	fb, _ := ecs.Get(w, falling, component.RigidBodyComponent)
	assert.InDelta(t, common.Gravity, fb.Velocity.Y(), 1e-9)
	// semi-implicit Euler over one second: sum of k*g*dt^2 for k=1..60
	assert.InDelta(t, 1+common.Gravity*tick*tick*60*61/2, ft.Position.Y(), 1e-9)

	rt, _ := ecs.Get(w, resting, component.TransformComponent)
	assert.Equal(t, mgl64.Vec3{2, 1, 0}, rt.Position)
}

func TestPhysicsGravityScale(t *testing.T) {
	w := ecs.NewWorld()
	e := newBody(t, w, component.RigidBody{Simulated: true, Mass: 1}, mgl64.Vec3{})
	require.NoError(t, ecs.Add(w, e, component.GravityScaleComponent, component.GravityScale{Scale: 0}))

	run(w, 30, NewPhysicsSystem(tick))

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	assert.Equal(t, mgl64.Vec3{}, tr.Position)
}

func TestPhysicsRotatesAboutCenterOfMass(t *testing.T) {
	w := ecs.NewWorld()
	e := newBody(t, w, component.RigidBody{
		Simulated:       true,
		Mass:            1,
		AngularVelocity: mgl64.Vec3{0, 0, -math.Pi / 2},
		CenterOfMass:    mgl64.Vec3{0, -0.5, 0},
	}, mgl64.Vec3{0, 1, 0})
	require.NoError(t, ecs.Add(w, e, component.GravityScaleComponent, component.GravityScale{Scale: 0}))

	run(w, 60, NewPhysicsSystem(tick))

	tr, _ := ecs.Get(w, e, component.TransformComponent)
	// a quarter turn about the world point (0, 0.5, 0)
	assert.InDelta(t, 0.5, tr.Position.X(), 1e-9)
	assert.InDelta(t, 0.5, tr.Position.Y(), 1e-9)
	com := tr.Position.Add(tr.Rotation.Rotate(mgl64.Vec3{0, -0.5, 0}))
	assert.True(t, com.ApproxEqualThreshold(mgl64.Vec3{0, 0.5, 0}, 1e-9), "centre of mass moved to %v", com)
}

func TestPhysicsAngularDamping(t *testing.T) {
	w := ecs.NewWorld()
	e := newBody(t, w, component.RigidBody{
		Simulated:       true,
		AngularVelocity: mgl64.Vec3{1, 0, 0},
		AngularDamping:  0.5,
	}, mgl64.Vec3{})

	run(w, 10, NewPhysicsSystem(tick))

	b, _ := ecs.Get(w, e, component.RigidBodyComponent)
	assert.Less(t, b.AngularVelocity.X(), 1.0)
	assert.Greater(t, b.AngularVelocity.X(), 0.9)
}

func TestPhysicsRaisesRespawnBelowKillHeight(t *testing.T) {
	w := ecs.NewWorld()
	e := newBody(t, w, component.RigidBody{}, mgl64.Vec3{0, -20, 0})
	require.NoError(t, ecs.Add(w, e, component.SafeRespawnComponent, component.SafeRespawn{KillHeight: -10}))
	above := newBody(t, w, component.RigidBody{}, mgl64.Vec3{0, -5, 0})
	require.NoError(t, ecs.Add(w, above, component.SafeRespawnComponent, component.SafeRespawn{KillHeight: -10}))

	run(w, 1, NewPhysicsSystem(tick))

	assert.True(t, ecs.Has(w, e, component.RespawnRequestComponent))
	assert.False(t, ecs.Has(w, above, component.RespawnRequestComponent))
}
