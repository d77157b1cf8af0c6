package cuboid

import "github.com/go-gl/mathgl/mgl64"

// GroundQuery casts a ray straight down from origin, at most maxDist long,
// against the ground layer.
type GroundQuery interface {
	CastDown(origin mgl64.Vec3, maxDist float64) bool
}

// InputReader samples the current 2D move vector. X is left/right and Y is
// forward/back.
type InputReader interface {
	MoveVector() mgl64.Vec2
}

// SoundPlayer plays a clip at a world position without blocking.
type SoundPlayer interface {
	Play(clip string, at mgl64.Vec3)
}

// PhysicsBody is the rigid body that takes over once the cuboid falls.
type PhysicsBody interface {
	// SetSimulated turns gravity-driven simulation on or off, starting from
	// pose.
	SetSimulated(on bool, pose Pose)
	SetAngularVelocity(w mgl64.Vec3)
	// SetCenterOfMass places the centre of mass at a body-local offset.
	SetCenterOfMass(local mgl64.Vec3)
}

// Deps are the collaborators a controller is built with.
type Deps struct {
	Ground  GroundQuery
	Input   InputReader
	Sound   SoundPlayer
	Physics PhysicsBody
	// Pick returns a uniform index in [0, n). Nil uses math/rand/v2.
	Pick func(n int) int
}
