package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/bloxroll/cuboid"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
	"github.com/milk9111/bloxroll/prefabs"
)

// BuildContext carries the collaborators a prefab needs beyond its own yaml.
type BuildContext struct {
	PrefabPath string

	Ground cuboid.GroundQuery
	SpawnX int
	SpawnZ int
	// Tune adjusts the decoded controller config, e.g. from command-line flags.
	Tune func(*cuboid.Config)
	Pick func(n int) int
	// Mute skips audio players; headless runs have no audio device.
	Mute bool
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *BuildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag": addPlayerTag,
	"render":     addRender,
	"rigid_body": addRigidBody,
	"audio":      addAudio,
	"cuboid":     addCuboid,
}

// cuboid comes last: its controller wires adapters onto the components
// built before it.
var componentBuildOrder = []string{
	"player_tag",
	"render",
	"rigid_body",
	"audio",
	"cuboid",
}

func BuildEntity(w *ecs.World, prefabPath string, ctx *BuildContext) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, spec, prefabPath, ctx)
}

func BuildEntityFromSpec(w *ecs.World, spec prefabs.EntityBuildSpec, prefabPath string, ctx *BuildContext) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}
	if ctx == nil {
		ctx = &BuildContext{}
	}
	ctx.PrefabPath = prefabPath

	for _, name := range sortedKeys(spec.Components) {
		if _, ok := componentRegistry[name]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
	}

	return buildEntity(w, func(e ecs.Entity) error {
		for _, name := range componentBuildOrder {
			raw, ok := spec.Components[name]
			if !ok {
				continue
			}
			if err := componentRegistry[name](w, e, raw, ctx); err != nil {
				return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
			}
		}
		return nil
	})
}

// buildEntity creates an entity and runs build on it. If build fails the
// entity is destroyed again, so no half-built entity stays in the world.
func buildEntity(w *ecs.World, build func(e ecs.Entity) error) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := build(e); err != nil {
		w.DestroyEntity(e)
		return 0, err
	}
	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *BuildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{})
}

func addRender(w *ecs.World, e ecs.Entity, raw any, _ *BuildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RenderComponentSpec](raw)
	if err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.AppearanceComponent, component.Appearance{
		Color:  spec.Color.RGBA,
		Accent: spec.Accent.RGBA,
	}); err != nil {
		return err
	}
	layer := spec.Layer
	if layer == 0 {
		layer = component.LayerBody
	}
	return ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: layer})
}

func addRigidBody(w *ecs.World, e ecs.Entity, raw any, _ *BuildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RigidBodyComponentSpec](raw)
	if err != nil {
		return err
	}
	mass := spec.Mass
	if mass <= 0 {
		mass = 1
	}
	if err := ecs.Add(w, e, component.RigidBodyComponent, component.RigidBody{
		Mass:           mass,
		AngularDamping: spec.AngularDamping,
	}); err != nil {
		return err
	}
	// gravity_scale: 0 is a floating body, so only an absent field means 1
	gravity := 1.0
	if spec.GravityScale != nil {
		gravity = *spec.GravityScale
	}
	if err := ecs.Add(w, e, component.GravityScaleComponent, component.GravityScale{Scale: gravity}); err != nil {
		return err
	}
	kill := spec.KillHeight
	if kill == 0 {
		kill = DefaultKillHeight
	}
	return ecs.Add(w, e, component.SafeRespawnComponent, component.SafeRespawn{KillHeight: kill})
}

func addAudio(w *ecs.World, e ecs.Entity, raw any, ctx *BuildContext) error {
	if ctx.Mute {
		return nil
	}
	specs, err := prefabs.DecodeComponentSpec[[]prefabs.AudioSpec](raw)
	if err != nil {
		return err
	}
	comp, err := buildAudioComponent(specs)
	if err != nil || comp == nil {
		return err
	}
	return ecs.Add(w, e, component.AudioComponent, *comp)
}

func sortedKeys(m map[string]any) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
