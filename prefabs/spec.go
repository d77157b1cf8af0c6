package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/bloxroll/levels"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	CuboidFile = "cuboid.yaml"
	TilesFile  = "tiles.yaml"
	CameraFile = "camera.yaml"
)

var ErrMissingPrefab = errors.New("prefabs: missing tile prefab")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	Volume float64 `yaml:"volume"`
	// Tone is the base frequency of the synthesized clip, in Hz.
	Tone     float64 `yaml:"tone"`
	Duration float64 `yaml:"duration"`
	// Sweep bends the tone by this many Hz over the clip.
	Sweep float64 `yaml:"sweep"`
}

// TileSpec is the prefab for one tile code.
type TileSpec struct {
	Color    YAMLColor `yaml:"color"`
	Category string    `yaml:"category"`
}

type RiseSpec struct {
	Depth    float64 `yaml:"depth"`
	Duration float64 `yaml:"duration"`
	Stagger  float64 `yaml:"stagger"`
}

type TilesSpec struct {
	TileY     float64             `yaml:"tile_y"`
	Thickness float64             `yaml:"thickness"`
	Rise      RiseSpec            `yaml:"rise"`
	Types     map[string]TileSpec `yaml:"types"`
}

func LoadTilesSpec() (*TilesSpec, error) {
	spec, err := LoadSpec[TilesSpec](TilesFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks that every solid tile code has a prefab.
func (s *TilesSpec) Validate() error {
	for _, t := range levels.SolidTypes() {
		if _, ok := s.Types[t.String()]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingPrefab, t)
		}
	}
	for name, ts := range s.Types {
		if _, ok := levels.ParseTileType(name); !ok {
			return fmt.Errorf("prefabs: tiles: unknown tile type %q", name)
		}
		switch ts.Category {
		case "", "ground", "decor":
		default:
			return fmt.Errorf("prefabs: tiles: %s: unknown category %q", name, ts.Category)
		}
	}
	return nil
}

// Tile returns the prefab for t.
func (s *TilesSpec) Tile(t levels.TileType) (TileSpec, bool) {
	if s == nil {
		return TileSpec{}, false
	}
	ts, ok := s.Types[t.String()]
	return ts, ok
}

type CameraSpec struct {
	Name       string  `yaml:"name"`
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
	Follow     bool    `yaml:"follow"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.RGBA = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i*2 < len(s); i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = uint8(v)
	}

	c.RGBA = color.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
