package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/bloxroll/cuboid"
	"gopkg.in/yaml.v3"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type CuboidComponentSpec struct {
	RotSpeed       float64    `yaml:"rot_speed"`
	FallSpeed      float64    `yaml:"fall_speed"`
	HalfExtents    [3]float64 `yaml:"half_extents"`
	BalanceA       [3]float64 `yaml:"balance_a"`
	BalanceB       [3]float64 `yaml:"balance_b"`
	StandingHeight float64    `yaml:"standing_height"`
	FlatHeight     float64    `yaml:"flat_height"`
	Grounding      string     `yaml:"grounding"`
	Fall           string     `yaml:"fall"`
	EdgeDebounce   *float64   `yaml:"edge_debounce"`
	MoveClips      []string   `yaml:"move_clips"`
	FallClip       string     `yaml:"fall_clip"`
}

// Config overlays the spec on cuboid.DefaultConfig. Zero fields keep the
// default.
func (s CuboidComponentSpec) Config() (cuboid.Config, error) {
	cfg := cuboid.DefaultConfig()
	if s.RotSpeed != 0 {
		cfg.RotSpeed = s.RotSpeed
	}
	if s.FallSpeed != 0 {
		cfg.FallSpeed = s.FallSpeed
	}
	if s.HalfExtents != [3]float64{} {
		cfg.HalfExtents = mgl64.Vec3(s.HalfExtents)
	}
	if s.BalanceA != [3]float64{} || s.BalanceB != [3]float64{} {
		cfg.Balance = cuboid.BalancePoints{A: mgl64.Vec3(s.BalanceA), B: mgl64.Vec3(s.BalanceB)}
	}
	if s.StandingHeight != 0 {
		cfg.StandingHeight = s.StandingHeight
	}
	if s.FlatHeight != 0 {
		cfg.FlatHeight = s.FlatHeight
	}
	if s.EdgeDebounce != nil {
		cfg.EdgeDebounce = *s.EdgeDebounce
	}
	if s.MoveClips != nil {
		cfg.MoveClips = s.MoveClips
	}
	if s.FallClip != "" {
		cfg.FallClip = s.FallClip
	}

	var err error
	if cfg.Grounding, err = cuboid.ParseGroundingPolicy(s.Grounding); err != nil {
		return cfg, fmt.Errorf("prefabs: cuboid: %w", err)
	}
	if cfg.Fall, err = cuboid.ParseFallMode(s.Fall); err != nil {
		return cfg, fmt.Errorf("prefabs: cuboid: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("prefabs: cuboid: %w", err)
	}
	return cfg, nil
}

type RigidBodyComponentSpec struct {
	Mass           float64  `yaml:"mass"`
	AngularDamping float64  `yaml:"angular_damping"`
	GravityScale   *float64 `yaml:"gravity_scale"`
	KillHeight     float64  `yaml:"kill_height"`
}

type RenderComponentSpec struct {
	Color  YAMLColor `yaml:"color"`
	Layer  int       `yaml:"layer"`
	Accent YAMLColor `yaml:"accent"`
}
