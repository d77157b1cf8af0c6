package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is the world pose of an entity.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

var TransformComponent = NewComponent[Transform]()
