package system

import (
	"testing"

	"github.com/milk9111/bloxroll/cuboid"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
	"github.com/milk9111/bloxroll/ecs/entity"
	"github.com/milk9111/bloxroll/levels"
	"github.com/milk9111/bloxroll/prefabs"
)

const tick = 1.0 / 60

type scene struct {
	w      *ecs.World
	ground *ecs.GroundWorld
	player ecs.Entity
	ctrl   *cuboid.Controller
}

// newScene builds mapText and, when spawn is non-nil, a muted cuboid on it.
func newScene(t *testing.T, mapText string, animate bool, spawn *[2]int, tune func(*cuboid.Config)) *scene {
	t.Helper()
	m, err := levels.ParseMap(mapText)
	if err != nil {
		t.Fatalf("parse map: %v", err)
	}
	tiles, err := prefabs.LoadTilesSpec()
	if err != nil {
		t.Fatalf("tiles: %v", err)
	}

	s := &scene{w: ecs.NewWorld(), ground: ecs.NewGroundWorld(ecs.DefaultTileY, ecs.DefaultTileThickness)}
	if _, err := entity.BuildLevel(s.w, s.ground, tiles, m, animate); err != nil {
		t.Fatalf("build level: %v", err)
	}
	if spawn == nil {
		return s
	}

	s.player, err = entity.NewCuboidAt(s.w, &entity.BuildContext{
		Ground: s.ground,
		SpawnX: spawn[0],
		SpawnZ: spawn[1],
		Tune:   tune,
		Mute:   true,
	})
	if err != nil {
		t.Fatalf("cuboid: %v", err)
	}
	ctl, _ := ecs.Get(s.w, s.player, component.CuboidControlComponent)
	s.ctrl = ctl.Controller
	return s
}

func (s *scene) press(x, y float64) {
	in, _ := ecs.Get(s.w, s.player, component.InputComponent)
	in.MoveX, in.MoveY = x, y
}

func (s *scene) transform() *component.Transform {
	t, _ := ecs.Get(s.w, s.player, component.TransformComponent)
	return t
}

func run(w *ecs.World, ticks int, systems ...ecs.System) {
	sched := ecs.NewScheduler(systems...)
	for i := 0; i < ticks; i++ {
		sched.Update(w)
	}
}
