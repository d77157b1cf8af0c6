package cuboid

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// InputThreshold is the axis magnitude that counts as a full press.
	InputThreshold = 0.99
	// StandingEpsilon separates standing from flat by balance point height.
	StandingEpsilon = 0.001
	// RollAngle is the angle of one move, in degrees.
	RollAngle = 90.0
	// DefaultEdgeDebounce is how long, in seconds, the cuboid may rest
	// partially off an edge before it topples.
	DefaultEdgeDebounce = 0.1

	angleEpsilon = 1e-6
)

var (
	ErrNoGround          = errors.New("cuboid: ground query is nil")
	ErrNoInput           = errors.New("cuboid: input reader is nil")
	ErrNoPhysics         = errors.New("cuboid: physics body is nil")
	ErrBadBalancePoints  = errors.New("cuboid: balance points are unset or coincide")
	ErrBadSpeed          = errors.New("cuboid: rotation speed must be positive")
	ErrBadExtents        = errors.New("cuboid: half extents must be positive")
	ErrUnknownGrounding  = errors.New("cuboid: unknown grounding policy")
	ErrUnknownFallMode   = errors.New("cuboid: unknown fall mode")
	ErrNoMoveClips       = errors.New("cuboid: move clip set is empty")
	ErrBadRestingHeights = errors.New("cuboid: resting heights must be positive")
)

// GroundingPolicy selects how balance point hits combine into "grounded".
type GroundingPolicy int

const (
	// GroundingStrict requires both balance points to be supported.
	GroundingStrict GroundingPolicy = iota
	// GroundingEdgeTolerant checks only the foot when standing and lets a
	// flat cuboid rest with one point unsupported for a short debounce.
	GroundingEdgeTolerant
)

func (g GroundingPolicy) String() string {
	switch g {
	case GroundingStrict:
		return "strict"
	case GroundingEdgeTolerant:
		return "edge-tolerant"
	default:
		return "unknown"
	}
}

func ParseGroundingPolicy(s string) (GroundingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return GroundingStrict, nil
	case "edge-tolerant", "edge_tolerant", "edge":
		return GroundingEdgeTolerant, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGrounding, s)
	}
}

// FallMode selects who moves the cuboid once it loses support.
type FallMode int

const (
	// FallPhysics hands the body to the physics collaborator.
	FallPhysics FallMode = iota
	// FallKinematic keeps the controller translating the body straight down.
	FallKinematic
)

func (f FallMode) String() string {
	switch f {
	case FallPhysics:
		return "physics"
	case FallKinematic:
		return "kinematic"
	default:
		return "unknown"
	}
}

func ParseFallMode(s string) (FallMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "physics":
		return FallPhysics, nil
	case "kinematic":
		return FallKinematic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFallMode, s)
	}
}

// Config tunes one controller.
type Config struct {
	RotSpeed  float64 // degrees per second
	FallSpeed float64 // units per second, kinematic falls only

	HalfExtents mgl64.Vec3
	Balance     BalancePoints

	StandingHeight float64
	FlatHeight     float64

	Grounding    GroundingPolicy
	Fall         FallMode
	EdgeDebounce float64

	MoveClips []string
	FallClip  string
}

// DefaultConfig describes a 1x2x1 cuboid.
func DefaultConfig() Config {
	return Config{
		RotSpeed:       360,
		FallSpeed:      6,
		HalfExtents:    mgl64.Vec3{0.5, 1, 0.5},
		Balance:        BalancePoints{A: mgl64.Vec3{0, 0.5, 0}, B: mgl64.Vec3{0, -0.5, 0}},
		StandingHeight: 1.0,
		FlatHeight:     0.5,
		Grounding:      GroundingStrict,
		Fall:           FallPhysics,
		EdgeDebounce:   DefaultEdgeDebounce,
		MoveClips:      []string{"move1", "move2", "move3"},
		FallClip:       "fall",
	}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if !(c.RotSpeed > 0) || math.IsInf(c.RotSpeed, 0) {
		return ErrBadSpeed
	}
	if c.HalfExtents.X() <= 0 || c.HalfExtents.Y() <= 0 || c.HalfExtents.Z() <= 0 {
		return ErrBadExtents
	}
	if c.Balance.A.ApproxEqual(c.Balance.B) {
		return ErrBadBalancePoints
	}
	if c.StandingHeight <= 0 || c.FlatHeight <= 0 {
		return ErrBadRestingHeights
	}
	switch c.Grounding {
	case GroundingStrict, GroundingEdgeTolerant:
	default:
		return ErrUnknownGrounding
	}
	switch c.Fall {
	case FallPhysics, FallKinematic:
	default:
		return ErrUnknownFallMode
	}
	return nil
}
