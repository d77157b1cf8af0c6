package system

import (
	"log"

	"github.com/milk9111/bloxroll/cuboid"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
)

type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

// Update performs pending respawn requests. It runs after the PhysicsSystem
// so a body that just crossed its kill height is handled the same tick.
func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(component.RespawnRequestComponent.Kind()) {
		_ = ecs.Remove(w, e, component.RespawnRequestComponent)

		safe, ok := ecs.Get(w, e, component.SafeRespawnComponent)
		if !ok || !safe.Initialized {
			continue
		}
		pose := cuboid.Pose{Position: safe.Position, Rotation: safe.Rotation}

		if ctl, ok := ecs.Get(w, e, component.CuboidControlComponent); ok && ctl.Controller != nil {
			// Reset also switches the rigid body back to kinematic.
			ctl.Controller.Reset(pose)
			ctl.LastPhase = ctl.Controller.Phase()
		} else if body, ok := ecs.Get(w, e, component.RigidBodyComponent); ok {
			*body = component.RigidBody{Mass: body.Mass, AngularDamping: body.AngularDamping}
		}

		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			t.Position = pose.Position
			t.Rotation = pose.Rotation
		}

		log.Printf("RespawnSystem: %v back at %v", e, pose.Position)
		w.Events().Push(ecs.Event{Type: ecs.EventRespawned, Data: e})
	}
}
