package system

import (
	"log"

	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
)

// CuboidSystem ticks every cuboid controller and mirrors its pose onto the
// entity transform while the controller owns it.
type CuboidSystem struct {
	dt float64
}

func NewCuboidSystem(dt float64) *CuboidSystem {
	return &CuboidSystem{dt: dt}
}

func (s *CuboidSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CuboidControlComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ctl *component.CuboidControl, t *component.Transform) {
		c := ctl.Controller
		if c == nil {
			return
		}
		c.Update(s.dt)

		if c.OwnsPose() {
			pose := c.Pose()
			t.Position = pose.Position
			t.Rotation = pose.Rotation
		}

		if phase := c.Phase(); phase != ctl.LastPhase {
			log.Printf("CuboidSystem: %v %s -> %s", e, ctl.LastPhase, phase)
			w.Events().Push(ecs.Event{
				Type: ecs.EventPhaseChanged,
				Data: ecs.PhaseChanged{Entity: e, From: ctl.LastPhase.String(), To: phase.String()},
			})
			ctl.LastPhase = phase
		}
	})
}
