package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/bloxroll/cuboid"
	"github.com/milk9111/bloxroll/ecs"
)

func TestCuboidSystemMirrorsPose(t *testing.T) {
	s := newScene(t, "4 1 2 2 2 2", false, &[2]int{0, 0}, nil)
	sys := NewCuboidSystem(tick)

	s.press(1, 0)
	run(s.w, 1, sys)
	s.press(0, 0)
	run(s.w, 30, sys)

	if s.ctrl.Phase() != cuboid.PhaseIdle {
		t.Fatalf("expected idle, got %v", s.ctrl.Phase())
	}
	if !s.transform().Position.ApproxEqualThreshold(mgl64.Vec3{1.5, 0.5, 0}, 1e-9) {
		t.Fatalf("transform at %v", s.transform().Position)
	}

	var phases []string
	for _, evt := range s.w.Events().Drain() {
		if evt.Type != ecs.EventPhaseChanged {
			continue
		}
		phases = append(phases, evt.Data.(ecs.PhaseChanged).To)
	}
	if len(phases) != 2 || phases[0] != "rotating" || phases[1] != "idle" {
		t.Fatalf("unexpected phase events %v", phases)
	}
}

func TestCuboidSystemStopsWritingAfterPhysicsFall(t *testing.T) {
	s := newScene(t, "1 1 2", false, &[2]int{0, 0}, nil)
	cub := NewCuboidSystem(tick)
	phys := NewPhysicsSystem(tick)

	s.press(1, 0)
	run(s.w, 40, cub, phys)
	if s.ctrl.Phase() != cuboid.PhaseFreeFalling {
		t.Fatalf("expected fall, got %v", s.ctrl.Phase())
	}

	frozen := s.ctrl.Pose().Position
	run(s.w, 10, cub, phys)
	if s.transform().Position.Y() >= frozen.Y() {
		t.Fatalf("physics did not move the body: %v", s.transform().Position)
	}
	if s.ctrl.Pose().Position != frozen {
		t.Fatal("controller pose should stay put once physics owns the body")
	}
}

func TestCuboidSystemKinematicFall(t *testing.T) {
	s := newScene(t, "1 1 2", false, &[2]int{0, 0}, func(cfg *cuboid.Config) {
		cfg.Fall = cuboid.FallKinematic
	})
	cub := NewCuboidSystem(tick)

	s.press(1, 0)
	run(s.w, 40, cub)
	if s.ctrl.Phase() != cuboid.PhaseFreeFalling {
		t.Fatalf("expected fall, got %v", s.ctrl.Phase())
	}
	before := s.transform().Position.Y()
	run(s.w, 6, cub)
	if got := before - s.transform().Position.Y(); got < 0.59 || got > 0.61 {
		t.Fatalf("fell %.3f in 6 ticks, want 0.6", got)
	}
}
