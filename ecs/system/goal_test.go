package system

import (
	"testing"

	"github.com/milk9111/bloxroll/ecs"
)

func nextUpTo(last int) func(int) (int, bool) {
	return func(n int) (int, bool) {
		if n >= last {
			return 0, false
		}
		return n + 1, true
	}
}

func TestGoalSystem(t *testing.T) {
	tests := []struct {
		name     string
		mapText  string
		spawn    [2]int
		move     [2]float64
		level    int
		wantHit  bool
		wantNext int
		wantMenu bool
	}{
		{name: "standing_on_goal", mapText: "2 1 2 3", spawn: [2]int{1, 0}, level: 1, wantHit: true, wantNext: 2},
		{name: "last_level_goes_to_menu", mapText: "2 1 2 3", spawn: [2]int{1, 0}, level: 3, wantHit: true, wantMenu: true},
		{name: "normal_tile", mapText: "2 1 3 2", spawn: [2]int{1, 0}, level: 1},
		// lying across the goal does not count
		{name: "flat_over_goal", mapText: "4 1 2 3 2 2", spawn: [2]int{0, 0}, move: [2]float64{1, 0}, level: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newScene(t, tc.mapText, false, &tc.spawn, nil)
			goal := NewGoalSystem(s.ground, tc.level, nextUpTo(3))
			cub := NewCuboidSystem(tick)

			s.press(tc.move[0], tc.move[1])
			run(s.w, 1, cub, goal)
			s.press(0, 0)
			run(s.w, 40, cub, goal)

			if goal.Reached() != tc.wantHit {
				t.Fatalf("Reached = %v", goal.Reached())
			}
			req, ok := TakeLevelChange(s.w)
			if ok != tc.wantHit {
				t.Fatalf("request pending = %v", ok)
			}
			if !ok {
				return
			}
			if req.MainMenu != tc.wantMenu || (!tc.wantMenu && req.Level != tc.wantNext) {
				t.Fatalf("unexpected request %+v", req)
			}
			goals := 0
			for _, evt := range s.w.Events().Drain() {
				if evt.Type == ecs.EventGoalReached {
					goals++
				}
			}
			if goals != 1 {
				t.Fatalf("goal fired %d times", goals)
			}
		})
	}
}
