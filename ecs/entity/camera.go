package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
	"github.com/milk9111/bloxroll/prefabs"
)

// NewCamera frames a width x depth map.
func NewCamera(w *ecs.World, width, depth int) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraTagComponent, component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	zoom := cameraSpec.Zoom
	if zoom <= 0 {
		zoom = 48
	}
	smooth := cameraSpec.Smoothness
	if smooth == 0 {
		smooth = 0.15
	}
	if err := ecs.Add(w, camera, component.CameraComponent, component.Camera{
		Center:     mgl64.Vec2{float64(width-1) / 2, float64(depth-1) / 2},
		Zoom:       zoom,
		Smoothness: smooth,
		Follow:     cameraSpec.Follow,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
