package entity

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/bloxroll/cuboid"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
	"github.com/milk9111/bloxroll/prefabs"
)

const DefaultKillHeight = -10.0

// NewCuboidAt builds the player cuboid from cuboid.yaml, standing on cell
// (ctx.SpawnX, ctx.SpawnZ).
func NewCuboidAt(w *ecs.World, ctx *BuildContext) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabs.CuboidFile, ctx)
	if err != nil {
		return 0, fmt.Errorf("cuboid: %w", err)
	}
	return e, nil
}

// SpawnPose is the standing pose on cell (x, z).
func SpawnPose(cfg cuboid.Config, x, z int) cuboid.Pose {
	return cuboid.NewPose(mgl64.Vec3{float64(x), cfg.StandingHeight, float64(z)})
}

func addCuboid(w *ecs.World, e ecs.Entity, raw any, ctx *BuildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CuboidComponentSpec](raw)
	if err != nil {
		return err
	}
	cfg, err := spec.Config()
	if err != nil {
		return err
	}
	if ctx.Tune != nil {
		ctx.Tune(&cfg)
	}

	pose := SpawnPose(cfg, ctx.SpawnX, ctx.SpawnZ)
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{
		Position: pose.Position,
		Rotation: pose.Rotation,
		Scale:    cfg.HalfExtents.Mul(2),
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.InputComponent, component.Input{}); err != nil {
		return err
	}

	if !ecs.Has(w, e, component.RigidBodyComponent) {
		if err := ecs.Add(w, e, component.RigidBodyComponent, component.RigidBody{Mass: 1}); err != nil {
			return err
		}
	}
	if !ecs.Has(w, e, component.SafeRespawnComponent) {
		if err := ecs.Add(w, e, component.SafeRespawnComponent, component.SafeRespawn{KillHeight: DefaultKillHeight}); err != nil {
			return err
		}
	}
	respawn, _ := ecs.Get(w, e, component.SafeRespawnComponent)
	respawn.Position = pose.Position
	respawn.Rotation = pose.Rotation
	respawn.Initialized = true

	deps := cuboid.Deps{
		Ground:  ctx.Ground,
		Input:   inputReader{w: w, e: e},
		Physics: rigidBody{w: w, e: e},
		Pick:    ctx.Pick,
	}
	if ecs.Has(w, e, component.AudioComponent) {
		deps.Sound = audioPlayer{w: w, e: e}
	}

	ctrl, err := cuboid.New(cfg, pose, deps)
	if err != nil {
		return err
	}
	log.Printf("Cuboid: spawned at (%d, %d) grounding=%s fall=%s", ctx.SpawnX, ctx.SpawnZ, cfg.Grounding, cfg.Fall)

	return ecs.Add(w, e, component.CuboidControlComponent, component.CuboidControl{
		Controller: ctrl,
		LastPhase:  ctrl.Phase(),
	})
}

// inputReader reads the entity's Input component as a move vector.
type inputReader struct {
	w *ecs.World
	e ecs.Entity
}

func (r inputReader) MoveVector() mgl64.Vec2 {
	in, ok := ecs.Get(r.w, r.e, component.InputComponent)
	if !ok {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{in.MoveX, in.MoveY}
}

// rigidBody exposes the entity's RigidBody to the controller.
type rigidBody struct {
	w *ecs.World
	e ecs.Entity
}

func (b rigidBody) SetSimulated(on bool, pose cuboid.Pose) {
	body, ok := ecs.Get(b.w, b.e, component.RigidBodyComponent)
	if !ok {
		return
	}
	body.Simulated = on
	body.Velocity = mgl64.Vec3{}
	body.AngularVelocity = mgl64.Vec3{}
	body.CenterOfMass = mgl64.Vec3{}

	if t, ok := ecs.Get(b.w, b.e, component.TransformComponent); ok {
		t.Position = pose.Position
		t.Rotation = pose.Rotation
	}
}

func (b rigidBody) SetAngularVelocity(v mgl64.Vec3) {
	if body, ok := ecs.Get(b.w, b.e, component.RigidBodyComponent); ok {
		body.AngularVelocity = v
	}
}

func (b rigidBody) SetCenterOfMass(local mgl64.Vec3) {
	if body, ok := ecs.Get(b.w, b.e, component.RigidBodyComponent); ok {
		body.CenterOfMass = local
	}
}

// audioPlayer flags clips on the entity's Audio component; the audio system
// starts them.
type audioPlayer struct {
	w *ecs.World
	e ecs.Entity
}

func (a audioPlayer) Play(clip string, _ mgl64.Vec3) {
	comp, ok := ecs.Get(a.w, a.e, component.AudioComponent)
	if !ok {
		return
	}
	if i := comp.Index(clip); i >= 0 && i < len(comp.Play) {
		comp.Play[i] = true
	}
}
