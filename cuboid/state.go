package cuboid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Phase is the controlled-motion state of a cuboid.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRotating
	PhaseFreeFalling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRotating:
		return "rotating"
	case PhaseFreeFalling:
		return "free_falling"
	default:
		return "unknown"
	}
}

// Pose is a rigid transform: the body centre and its orientation.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewPose returns an unrotated pose at pos.
func NewPose(pos mgl64.Vec3) Pose {
	return Pose{Position: pos, Rotation: mgl64.QuatIdent()}
}

// Point maps a body-local offset into world space.
func (p Pose) Point(local mgl64.Vec3) mgl64.Vec3 {
	return p.Position.Add(p.Rotation.Rotate(local))
}

// RotateAround turns the pose by degrees around the line through pivot along
// axis. Positive angles are counter-clockwise looking down the axis.
func (p Pose) RotateAround(pivot, axis mgl64.Vec3, degrees float64) Pose {
	q := mgl64.QuatRotate(mgl64.DegToRad(degrees), axis.Normalize())
	return Pose{
		Position: pivot.Add(q.Rotate(p.Position.Sub(pivot))),
		Rotation: q.Mul(p.Rotation).Normalize(),
	}
}

// Bounds returns the world-space axis-aligned box of a body with the given
// local half extents, as centre and half extents.
func (p Pose) Bounds(half mgl64.Vec3) (center, extents mgl64.Vec3) {
	m := p.Rotation.Mat4()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			extents[i] += math.Abs(m.At(i, j)) * half[j]
		}
	}
	return p.Position, extents
}

// SameRotation reports whether two quaternions describe the same orientation
// within tolerance (q and -q are the same rotation).
func SameRotation(a, b mgl64.Quat, tolerance float64) bool {
	return math.Abs(math.Abs(a.Normalize().Dot(b.Normalize()))-1) <= tolerance
}

// snapRotation rounds an orientation to the nearest axis-aligned rotation.
func snapRotation(q mgl64.Quat) mgl64.Quat {
	m := q.Normalize().Mat4()
	var r mgl64.Mat4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.Set(i, j, math.Round(m.At(i, j)))
		}
	}
	r.Set(3, 3, 1)
	return mgl64.Mat4ToQuat(r).Normalize()
}

// RotationIntent is the in-flight 90 degree roll.
type RotationIntent struct {
	Pivot     mgl64.Vec3
	Axis      mgl64.Vec3
	Remaining float64 // degrees left, in (0, 90] while rolling
	Direction float64 // +1 or -1

	StartedStanding bool
}

// Active reports whether the intent describes a usable rotation.
func (r RotationIntent) Active() bool {
	return r.Axis.Len() > 0 && r.Direction != 0
}

// BalancePoints are two body-local landmarks sampled for ground support,
// one under each "foot" of the cuboid.
type BalancePoints struct {
	A mgl64.Vec3
	B mgl64.Vec3
}

// State is the controller-owned cuboid state.
type State struct {
	Pose     Pose
	Standing bool
	Phase    Phase
}

// GroundSample is the result of one support query.
type GroundSample struct {
	A                bool
	B                bool
	Grounded         bool
	PartiallyOffEdge bool
}
