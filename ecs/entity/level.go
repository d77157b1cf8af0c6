package entity

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
	"github.com/milk9111/bloxroll/levels"
	"github.com/milk9111/bloxroll/prefabs"
)

// BuildLevel creates one entity per solid map cell and registers it with the
// ground layer. Empty cells and unknown codes produce nothing; unknown codes
// are logged. With animate set, every tile starts below its rest height with
// a TileRise attached.
func BuildLevel(w *ecs.World, ground *ecs.GroundWorld, tiles *prefabs.TilesSpec, m *levels.Map, animate bool) ([]ecs.Entity, error) {
	if w == nil || ground == nil {
		return nil, fmt.Errorf("build level: world and ground are required")
	}
	if m == nil {
		return nil, fmt.Errorf("build level: %w: no map", levels.ErrMalformedMap)
	}
	if tiles == nil {
		return nil, fmt.Errorf("build level: %w: no tile specs", prefabs.ErrMissingPrefab)
	}
	if err := tiles.Validate(); err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}

	bounds, err := buildEntity(w, func(e ecs.Entity) error {
		return ecs.Add(w, e, component.LevelBoundsComponent, component.LevelBounds{Width: m.Width, Depth: m.Depth})
	})
	if err != nil {
		return nil, err
	}

	restY := ground.TileY()
	var out []ecs.Entity
	var buildErr error
	m.Each(func(x, z int, t levels.TileType) {
		if buildErr != nil {
			return
		}
		switch {
		case t == levels.TileEmpty:
			return
		case !t.Known():
			log.Printf("MapCreation: unknown tile type %d at (%d, %d)", int(t), x, z)
			return
		}
		spec, _ := tiles.Tile(t)
		e, err := newTile(w, ground, spec, t, x, z, restY, tiles.Rise, animate)
		if err != nil {
			buildErr = fmt.Errorf("build level: tile (%d, %d): %w", x, z, err)
			return
		}
		out = append(out, e)
	})
	if buildErr != nil {
		for _, e := range out {
			w.DestroyEntity(e)
		}
		w.DestroyEntity(bounds)
		ground.Clear()
		return nil, buildErr
	}
	return out, nil
}

func newTile(w *ecs.World, ground *ecs.GroundWorld, spec prefabs.TileSpec, t levels.TileType, x, z int, restY float64, rise prefabs.RiseSpec, animate bool) (ecs.Entity, error) {
	category := ecs.CategoryGround
	if spec.Category == "decor" {
		category = ecs.CategoryDecor
	}

	e, err := buildEntity(w, func(e ecs.Entity) error {
		y := restY
		if animate && rise.Duration > 0 {
			y = restY - rise.Depth
			if err := ecs.Add(w, e, component.TileRiseComponent, component.TileRise{
				FromY:    y,
				Delay:    rise.Stagger * float64(x+z),
				Duration: rise.Duration,
			}); err != nil {
				return err
			}
		}

		if err := ecs.Add(w, e, component.TransformComponent, component.Transform{
			Position: mgl64.Vec3{float64(x), y, float64(z)},
			Rotation: mgl64.QuatIdent(),
			Scale:    mgl64.Vec3{1, 0.1, 1},
		}); err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.TileComponent, component.Tile{
			X: x, Z: z, Type: t, Color: spec.Color.RGBA, RestY: restY,
		}); err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.CollisionLayerComponent, component.CollisionLayer{Category: category}); err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: component.LayerTiles}); err != nil {
			return err
		}
		if t == levels.TileGoal {
			return ecs.Add(w, e, component.GoalTagComponent, component.GoalTag{})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	ground.AddTile(x, z, e, category)
	return e, nil
}
