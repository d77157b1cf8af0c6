package system

import (
	"log"
	"math"

	"github.com/milk9111/bloxroll/cuboid"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
	"github.com/milk9111/bloxroll/levels"
)

// TileLocator finds the tile entity under a world X/Z point.
type TileLocator interface {
	TileAt(x, z float64) (ecs.Entity, bool)
}

// GoalSystem finishes the level when a cuboid stands upright and idle on a
// goal tile. It requests the level after the current one, or the main menu
// after the last.
type GoalSystem struct {
	tiles TileLocator
	level int
	next  func(level int) (int, bool)
	fired bool
}

func NewGoalSystem(tiles TileLocator, level int, next func(int) (int, bool)) *GoalSystem {
	return &GoalSystem{tiles: tiles, level: level, next: next}
}

func (g *GoalSystem) Update(w *ecs.World) {
	if w == nil || g.tiles == nil || g.fired {
		return
	}

	ecs.ForEach(w, component.CuboidControlComponent.Kind(), func(e ecs.Entity, ctl *component.CuboidControl) {
		c := ctl.Controller
		if g.fired || c == nil || c.Phase() != cuboid.PhaseIdle || !c.State().Standing {
			return
		}
		pos := c.Pose().Position
		tileEnt, ok := g.tiles.TileAt(math.Round(pos.X()), math.Round(pos.Z()))
		if !ok {
			return
		}
		tile, ok := ecs.Get(w, tileEnt, component.TileComponent)
		if !ok || tile.Type != levels.TileGoal {
			return
		}

		g.fired = true
		log.Printf("GoalSystem: level %d cleared by %v", g.level, e)
		w.Events().Push(ecs.Event{Type: ecs.EventGoalReached, Data: g.level})

		req := component.LevelChangeRequest{MainMenu: true}
		if g.next != nil {
			if n, ok := g.next(g.level); ok {
				req = component.LevelChangeRequest{Level: n}
			}
		}
		RequestLevelChange(w, req)
	})
}

// Reached reports whether the goal fired this level.
func (g *GoalSystem) Reached() bool { return g.fired }
