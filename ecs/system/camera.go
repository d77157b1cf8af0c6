package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
)

// CameraSystem eases a following camera towards the player's X/Z.
type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok || !cam.Follow {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind())
	if !ok {
		return
	}
	t, _ := ecs.Get(w, player, component.TransformComponent)

	target := mgl64.Vec2{t.Position.X(), t.Position.Z()}
	k := cam.Smoothness
	if k <= 0 || k > 1 {
		k = 1
	}
	cam.Center = cam.Center.Add(target.Sub(cam.Center).Mul(k))
}
