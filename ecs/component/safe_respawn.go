package component

import "github.com/go-gl/mathgl/mgl64"

// SafeRespawn stores where a cuboid returns to after falling below
// KillHeight.
type SafeRespawn struct {
	Position    mgl64.Vec3
	Rotation    mgl64.Quat
	KillHeight  float64
	Initialized bool
}

var SafeRespawnComponent = NewComponent[SafeRespawn]()
