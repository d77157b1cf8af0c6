package cuboid

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/bloxroll/common"
)

var (
	worldForward = mgl64.Vec3{0, 0, 1}
	worldRight   = mgl64.Vec3{1, 0, 0}
)

// Controller drives one cuboid through idle, rolling and falling. It is
// ticked once per frame and never blocks.
type Controller struct {
	cfg Config

	ground  GroundQuery
	input   InputReader
	sound   SoundPlayer
	physics PhysicsBody
	pick    func(n int) int

	state      State
	intent     RotationIntent
	lastGround GroundSample
	offEdgeFor float64
}

// New builds a controller resting at spawn.
func New(cfg Config, spawn Pose, deps Deps) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Ground == nil {
		return nil, ErrNoGround
	}
	if deps.Input == nil {
		return nil, ErrNoInput
	}
	if cfg.Fall == FallPhysics && deps.Physics == nil {
		return nil, ErrNoPhysics
	}
	if deps.Sound != nil && len(cfg.MoveClips) == 0 {
		return nil, fmt.Errorf("cuboid: new: %w", ErrNoMoveClips)
	}
	if cfg.EdgeDebounce < 0 {
		cfg.EdgeDebounce = 0
	}

	pick := deps.Pick
	if pick == nil {
		pick = rand.IntN
	}

	c := &Controller{
		cfg:     cfg,
		ground:  deps.Ground,
		input:   deps.Input,
		sound:   deps.Sound,
		physics: deps.Physics,
		pick:    pick,
	}
	c.Reset(spawn)
	return c, nil
}

// Reset puts the cuboid back at pose, idle and kinematic. It is the hook an
// outside collaborator uses to respawn a fallen cuboid.
func (c *Controller) Reset(pose Pose) {
	if pose.Rotation.Len() == 0 {
		pose.Rotation = mgl64.QuatIdent()
	}
	c.state = State{Pose: pose, Phase: PhaseIdle}
	c.state.Standing = c.isStanding()
	c.intent = RotationIntent{}
	c.lastGround = GroundSample{}
	c.offEdgeFor = 0
	if c.physics != nil {
		c.physics.SetSimulated(false, pose)
	}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Phase() Phase { return c.state.Phase }

func (c *Controller) Pose() Pose { return c.state.Pose }

func (c *Controller) Intent() RotationIntent { return c.intent }

func (c *Controller) Config() Config { return c.cfg }

// LastGround returns the most recent support sample.
func (c *Controller) LastGround() GroundSample { return c.lastGround }

// OwnsPose reports whether the controller, rather than physics, is currently
// responsible for the body transform.
func (c *Controller) OwnsPose() bool {
	return c.state.Phase != PhaseFreeFalling || c.cfg.Fall == FallKinematic
}

// Update advances the state machine by dt seconds.
func (c *Controller) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}

	switch c.state.Phase {
	case PhaseFreeFalling:
		if c.cfg.Fall == FallKinematic {
			c.state.Pose.Position = c.state.Pose.Position.Sub(mgl64.Vec3{0, c.cfg.FallSpeed * dt, 0})
		}
		return
	case PhaseRotating:
		c.rotationStep(dt)
		return
	}

	g := c.sampleGrounded()
	if !g.Grounded {
		c.startFreeFall(g)
		return
	}
	if g.PartiallyOffEdge {
		c.offEdgeFor += dt
		if c.offEdgeFor > c.cfg.EdgeDebounce {
			c.startFreeFall(g)
			return
		}
	} else {
		c.offEdgeFor = 0
	}

	c.snapToGrid()

	dir := c.input.MoveVector()
	if !HasMovementInput(dir) {
		return
	}
	c.beginRotation(dir)
}

// HasMovementInput reports whether dir is a full press on exactly one axis.
// Diagonals and partial deflections are ignored.
func HasMovementInput(dir mgl64.Vec2) bool {
	x := math.Abs(dir.X()) >= InputThreshold
	y := math.Abs(dir.Y()) >= InputThreshold
	return x != y
}

func (c *Controller) beginRotation(dir mgl64.Vec2) {
	c.intent = RotationIntent{
		Remaining:       RollAngle,
		StartedStanding: c.isStanding(),
	}
	if math.Abs(dir.X()) > math.Abs(dir.Y()) {
		c.intent.Axis = worldForward
		c.intent.Direction = 1
		if dir.X() > 0 {
			c.intent.Direction = -1
		}
	} else {
		c.intent.Axis = worldRight
		c.intent.Direction = -1
		if dir.Y() > 0 {
			c.intent.Direction = 1
		}
	}
	c.intent.Pivot = c.pivotFor(dir)
	c.state.Phase = PhaseRotating
	c.offEdgeFor = 0

	if c.sound != nil && len(c.cfg.MoveClips) > 0 {
		c.sound.Play(c.cfg.MoveClips[c.pick(len(c.cfg.MoveClips))], c.state.Pose.Position)
	}
}

// pivotFor returns the bottom edge of the world bounds on the side the
// cuboid is moving towards.
func (c *Controller) pivotFor(dir mgl64.Vec2) mgl64.Vec3 {
	center, ext := c.state.Pose.Bounds(c.cfg.HalfExtents)
	bottom := center.Y() - ext.Y()
	switch {
	case dir.X() >= InputThreshold:
		return mgl64.Vec3{center.X() + ext.X(), bottom, center.Z()}
	case dir.X() <= -InputThreshold:
		return mgl64.Vec3{center.X() - ext.X(), bottom, center.Z()}
	case dir.Y() >= InputThreshold:
		return mgl64.Vec3{center.X(), bottom, center.Z() + ext.Z()}
	case dir.Y() <= -InputThreshold:
		return mgl64.Vec3{center.X(), bottom, center.Z() - ext.Z()}
	}
	return center
}

func (c *Controller) rotationStep(dt float64) {
	step := c.cfg.RotSpeed * dt
	if step >= c.intent.Remaining-angleEpsilon {
		step = c.intent.Remaining
	}

	c.state.Pose = c.state.Pose.RotateAround(c.intent.Pivot, c.intent.Axis, step*c.intent.Direction)
	c.intent.Remaining -= step

	if !c.intent.StartedStanding {
		if g := c.sampleGrounded(); !g.Grounded {
			c.startFreeFall(g)
			return
		}
	}

	if c.intent.Remaining <= 0 {
		c.intent.Remaining = 0
		c.state.Phase = PhaseIdle
		c.snapToGrid()
	}
}

// snapToGrid removes drift: horizontal position to the half grid, height to
// the resting height of the current orientation, rotation to the nearest
// axis-aligned one.
func (c *Controller) snapToGrid() {
	standing := c.isStanding()
	pos := c.state.Pose.Position

	height := c.cfg.FlatHeight
	if standing {
		height = c.cfg.StandingHeight
	}

	c.state.Pose.Position = mgl64.Vec3{
		common.RoundToStep(pos.X(), common.GridStep),
		height,
		common.RoundToStep(pos.Z(), common.GridStep),
	}
	c.state.Pose.Rotation = snapRotation(c.state.Pose.Rotation)
	c.state.Standing = standing
}

func (c *Controller) isStanding() bool {
	return IsStanding(c.balanceA(), c.balanceB())
}

// IsStanding classifies the cuboid from the world heights of its two balance
// points.
func IsStanding(a, b mgl64.Vec3) bool {
	return math.Abs(math.Abs(a.Y())-math.Abs(b.Y())) > StandingEpsilon
}

func (c *Controller) balanceA() mgl64.Vec3 { return c.state.Pose.Point(c.cfg.Balance.A) }

func (c *Controller) balanceB() mgl64.Vec3 { return c.state.Pose.Point(c.cfg.Balance.B) }

// BalancePointsWorld returns both balance points in world space.
func (c *Controller) BalancePointsWorld() (a, b mgl64.Vec3) {
	return c.balanceA(), c.balanceB()
}

func (c *Controller) startFreeFall(g GroundSample) {
	if c.state.Phase == PhaseFreeFalling {
		return
	}
	wasRotating := c.state.Phase == PhaseRotating
	c.state.Phase = PhaseFreeFalling
	c.offEdgeFor = 0

	if c.cfg.Fall == FallPhysics {
		c.physics.SetSimulated(true, c.state.Pose)

		if wasRotating && c.intent.Active() && c.cfg.RotSpeed != 0 {
			radians := mgl64.DegToRad(c.cfg.RotSpeed) * c.intent.Direction
			c.physics.SetAngularVelocity(c.intent.Axis.Normalize().Mul(radians))
		}

		switch {
		case !g.A && g.B:
			c.physics.SetCenterOfMass(c.cfg.Balance.A)
		case !g.B && g.A:
			c.physics.SetCenterOfMass(c.cfg.Balance.B)
		}
	}

	if c.sound != nil && c.cfg.FallClip != "" {
		c.sound.Play(c.cfg.FallClip, c.state.Pose.Position)
	}
}
