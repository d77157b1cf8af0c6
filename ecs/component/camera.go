package component

import "github.com/go-gl/mathgl/mgl64"

// Camera frames the level for the top-down debug renderer.
type Camera struct {
	Center     mgl64.Vec2 // world X/Z at screen centre
	Zoom       float64    // pixels per world unit
	Smoothness float64
	Follow     bool
}

var CameraComponent = NewComponent[Camera]()
