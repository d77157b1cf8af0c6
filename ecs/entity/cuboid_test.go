package entity

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/bloxroll/cuboid"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
	"github.com/milk9111/bloxroll/prefabs"
)

func spawnOn(t *testing.T, mapText string, x, z int, tune func(*cuboid.Config)) (*ecs.World, ecs.Entity, *cuboid.Controller) {
	t.Helper()
	w := ecs.NewWorld()
	gw := ecs.NewGroundWorld(ecs.DefaultTileY, ecs.DefaultTileThickness)
	if _, err := BuildLevel(w, gw, loadTiles(t), mustMap(t, mapText), false); err != nil {
		t.Fatalf("build level: %v", err)
	}
	e, err := NewCuboidAt(w, &BuildContext{Ground: gw, SpawnX: x, SpawnZ: z, Tune: tune, Mute: true})
	if err != nil {
		t.Fatalf("new cuboid: %v", err)
	}
	ctrl, ok := ecs.Get(w, e, component.CuboidControlComponent)
	if !ok {
		t.Fatal("missing controller")
	}
	return w, e, ctrl.Controller
}

func TestNewCuboidAt(t *testing.T) {
	w, e, ctrl := spawnOn(t, "3 1 2 2 2", 0, 0, nil)

	if !ecs.Has(w, e, component.PlayerTagComponent) {
		t.Fatal("missing player tag")
	}
	if ecs.Has(w, e, component.AudioComponent) {
		t.Fatal("muted build should not carry audio")
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if !tr.Position.ApproxEqual(mgl64.Vec3{0, 1, 0}) {
		t.Fatalf("spawned at %v", tr.Position)
	}
	respawn, _ := ecs.Get(w, e, component.SafeRespawnComponent)
	if !respawn.Initialized || respawn.KillHeight >= 0 {
		t.Fatalf("unexpected respawn %+v", respawn)
	}
	if ctrl.Phase() != cuboid.PhaseIdle || !ctrl.State().Standing {
		t.Fatalf("unexpected spawn state %+v", ctrl.State())
	}
}

func TestCuboidReadsInputComponent(t *testing.T) {
	w, e, ctrl := spawnOn(t, "3 1 2 2 2", 0, 0, nil)

	in, _ := ecs.Get(w, e, component.InputComponent)
	in.MoveX = 1
	ctrl.Update(1.0 / 60)
	if ctrl.Phase() != cuboid.PhaseRotating {
		t.Fatalf("expected rotating, got %v", ctrl.Phase())
	}
	in.MoveX = 0
	for i := 0; i < 60 && ctrl.Phase() == cuboid.PhaseRotating; i++ {
		ctrl.Update(1.0 / 60)
	}
	if ctrl.Phase() != cuboid.PhaseIdle {
		t.Fatalf("roll did not finish: %v", ctrl.Phase())
	}
	if !ctrl.Pose().Position.ApproxEqualThreshold(mgl64.Vec3{1.5, 0.5, 0}, 1e-9) {
		t.Fatalf("rolled to %v", ctrl.Pose().Position)
	}
}

func TestCuboidFallHandsOffToRigidBody(t *testing.T) {
	// spawn on a single tile, roll off the end
	w, e, ctrl := spawnOn(t, "1 1 2", 0, 0, nil)

	in, _ := ecs.Get(w, e, component.InputComponent)
	in.MoveX = 1
	for i := 0; i < 60 && ctrl.Phase() != cuboid.PhaseFreeFalling; i++ {
		ctrl.Update(1.0 / 60)
	}
	if ctrl.Phase() != cuboid.PhaseFreeFalling {
		t.Fatalf("expected a fall, got %v", ctrl.Phase())
	}
	body, _ := ecs.Get(w, e, component.RigidBodyComponent)
	if !body.Simulated {
		t.Fatal("rigid body not simulated after fall")
	}
	if ctrl.OwnsPose() {
		t.Fatal("controller should hand the pose to physics")
	}
}

func TestCuboidTuneOverridesPrefab(t *testing.T) {
	_, _, ctrl := spawnOn(t, "1 1 2", 0, 0, func(cfg *cuboid.Config) {
		cfg.Fall = cuboid.FallKinematic
		cfg.Grounding = cuboid.GroundingEdgeTolerant
	})
	if ctrl.Config().Fall != cuboid.FallKinematic || ctrl.Config().Grounding != cuboid.GroundingEdgeTolerant {
		t.Fatalf("tune not applied: %+v", ctrl.Config())
	}
}

func TestBuildEntityFromSpecErrors(t *testing.T) {
	w := ecs.NewWorld()

	_, err := BuildEntityFromSpec(w, prefabs.EntityBuildSpec{Name: "empty"}, "empty.yaml", nil)
	if err == nil {
		t.Fatal("expected error for empty prefab")
	}

	spec := prefabs.EntityBuildSpec{Name: "odd", Components: map[string]any{"player_tag": map[string]any{}, "jetpack": 1}}
	_, err = BuildEntityFromSpec(w, spec, "odd.yaml", nil)
	if err == nil || !strings.Contains(err.Error(), "jetpack") {
		t.Fatalf("expected unknown component error, got %v", err)
	}

	// cuboid without a ground query
	spec = prefabs.EntityBuildSpec{Name: "lost", Components: map[string]any{"cuboid": map[string]any{}}}
	_, err = BuildEntityFromSpec(w, spec, "lost.yaml", &BuildContext{Mute: true})
	if err == nil {
		t.Fatal("expected error without ground")
	}
	if n := len(w.Entities()); n != 0 {
		t.Fatalf("failed builds left %d entities", n)
	}
}

func TestRigidBodyGravityScale(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want float64
	}{
		{name: "absent_defaults_to_one", body: map[string]any{"mass": 1}, want: 1},
		{name: "explicit_zero_floats", body: map[string]any{"mass": 1, "gravity_scale": 0}, want: 0},
		{name: "explicit_value", body: map[string]any{"gravity_scale": 2.5}, want: 2.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			spec := prefabs.EntityBuildSpec{Name: "body", Components: map[string]any{"rigid_body": tc.body}}
			e, err := BuildEntityFromSpec(w, spec, "body.yaml", nil)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			gs, ok := ecs.Get(w, e, component.GravityScaleComponent)
			if !ok {
				t.Fatal("missing gravity scale")
			}
			if gs.Scale != tc.want {
				t.Fatalf("gravity scale = %v, want %v", gs.Scale, tc.want)
			}
			respawn, _ := ecs.Get(w, e, component.SafeRespawnComponent)
			if respawn.KillHeight != DefaultKillHeight {
				t.Fatalf("kill height = %v, want default %v", respawn.KillHeight, DefaultKillHeight)
			}
		})
	}
}
