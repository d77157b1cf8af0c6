package system

import (
	"testing"

	"github.com/milk9111/bloxroll/cuboid"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
)

func TestCrumbleBreaksFragileTileAndRestoresOnRespawn(t *testing.T) {
	s := newScene(t, "3 1 2 4 2", false, &[2]int{1, 0}, nil)
	crumble := NewCrumbleSystem(s.ground)
	systems := []ecs.System{NewCuboidSystem(tick), NewPhysicsSystem(tick), NewRespawnSystem(), crumble}

	fragile, ok := s.ground.TileAt(1, 0)
	if !ok {
		t.Fatal("expected a tile under the spawn")
	}

	run(s.w, DefaultCrumbleFrames-1, systems...)
	cr, ok := ecs.Get(s.w, fragile, component.CrumbleComponent)
	if !ok || cr.Broken {
		t.Fatalf("expected the tile to be crumbling but intact, got %+v", cr)
	}
	if s.ground.Len() != 3 || s.ctrl.Phase() != cuboid.PhaseIdle {
		t.Fatalf("tile left early: len=%d phase=%v", s.ground.Len(), s.ctrl.Phase())
	}

	run(s.w, 1, systems...)
	if !cr.Broken || s.ground.Len() != 2 {
		t.Fatalf("expected the tile to break, got %+v len=%d", cr, s.ground.Len())
	}
	run(s.w, 1, systems...)
	if s.ctrl.Phase() != cuboid.PhaseFreeFalling {
		t.Fatalf("expected the cuboid to fall through, got %v", s.ctrl.Phase())
	}

	respawned := false
	for i := 0; i < 600 && !respawned; i++ {
		run(s.w, 1, systems...)
		respawned = s.w.Events().Has(ecs.EventRespawned)
		s.w.Events().Drain()
	}
	if !respawned {
		t.Fatal("never respawned")
	}
	if s.ground.Len() != 3 {
		t.Fatalf("expected the broken tile back, got %d tiles", s.ground.Len())
	}
	if ecs.Has(s.w, fragile, component.CrumbleComponent) {
		t.Fatal("crumble state should be cleared on respawn")
	}
	if e, ok := s.ground.TileAt(1, 0); !ok || e != fragile {
		t.Fatalf("restored tile should map to the same entity, got %v %v", e, ok)
	}
}

func TestCrumbleIgnoresSolidTilesAndFlatCuboids(t *testing.T) {
	tests := []struct {
		name    string
		mapText string
		spawn   [2]int
		move    [2]float64
	}{
		{name: "standing_on_normal", mapText: "3 1 2 2 4", spawn: [2]int{1, 0}},
		// flat across two fragile tiles spreads the weight
		{name: "flat_on_fragile", mapText: "4 1 4 4 4 2", spawn: [2]int{0, 0}, move: [2]float64{1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newScene(t, tc.mapText, false, &tc.spawn, nil)
			systems := []ecs.System{NewCuboidSystem(tick), NewCrumbleSystem(s.ground)}

			s.press(tc.move[0], tc.move[1])
			run(s.w, 1, systems...)
			s.press(0, 0)
			run(s.w, 60, systems...)

			if n := len(s.w.Query(component.CrumbleComponent.Kind())); n != 0 {
				t.Fatalf("expected no crumbling tiles, got %d", n)
			}
		})
	}
}
