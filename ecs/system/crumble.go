package system

import (
	"log"
	"math"

	"github.com/milk9111/bloxroll/cuboid"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
	"github.com/milk9111/bloxroll/levels"
)

const (
	DefaultCrumbleFrames   = 24
	DefaultCrumbleInterval = 4
)

// FragileGround is the part of the ground layer a crumbling tile changes.
type FragileGround interface {
	TileLocator
	AddTile(x, z int, e ecs.Entity, category uint)
	RemoveTile(x, z int) bool
}

// CrumbleSystem breaks fragile tiles that carry a standing cuboid. A tile
// blinks for a while, then leaves the ground layer so the cuboid falls.
// Broken tiles come back when a respawn is queued. Run it after the
// RespawnSystem.
type CrumbleSystem struct {
	ground   FragileGround
	Frames   int
	Interval int
}

func NewCrumbleSystem(ground FragileGround) *CrumbleSystem {
	return &CrumbleSystem{ground: ground, Frames: DefaultCrumbleFrames, Interval: DefaultCrumbleInterval}
}

func (s *CrumbleSystem) Update(w *ecs.World) {
	if w == nil || s.ground == nil {
		return
	}

	if w.Events().Has(ecs.EventRespawned) {
		s.restore(w)
		return
	}

	ecs.ForEach(w, component.CuboidControlComponent.Kind(), func(_ ecs.Entity, ctl *component.CuboidControl) {
		c := ctl.Controller
		if c == nil || c.Phase() != cuboid.PhaseIdle || !c.State().Standing {
			return
		}
		pos := c.Pose().Position
		e, ok := s.ground.TileAt(math.Round(pos.X()), math.Round(pos.Z()))
		if !ok || ecs.Has(w, e, component.CrumbleComponent) {
			return
		}
		if tile, ok := ecs.Get(w, e, component.TileComponent); ok && tile.Type == levels.TileFragile {
			_ = ecs.Add(w, e, component.CrumbleComponent, component.Crumble{Frames: s.Frames, Interval: s.Interval})
		}
	})

	ecs.ForEach2(w, component.CrumbleComponent.Kind(), component.TileComponent.Kind(), func(e ecs.Entity, cr *component.Crumble, tile *component.Tile) {
		if cr.Broken {
			return
		}
		if cr.Interval <= 0 {
			cr.Interval = 1
		}
		cr.Timer++
		if cr.Timer >= cr.Interval {
			cr.Timer = 0
			cr.On = !cr.On
			cr.Frames -= cr.Interval
		}
		if cr.Frames <= 0 {
			cr.Broken = true
			cr.On = false
			s.ground.RemoveTile(tile.X, tile.Z)
			log.Printf("CrumbleSystem: tile (%d, %d) broke", tile.X, tile.Z)
		}
	})
}

func (s *CrumbleSystem) restore(w *ecs.World) {
	for _, e := range w.Query(component.CrumbleComponent.Kind(), component.TileComponent.Kind()) {
		cr, _ := ecs.Get(w, e, component.CrumbleComponent)
		tile, _ := ecs.Get(w, e, component.TileComponent)
		if cr.Broken {
			category := uint(ecs.CategoryGround)
			if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent); ok {
				category = layer.Category
			}
			s.ground.AddTile(tile.X, tile.Z, e, category)
		}
		_ = ecs.Remove(w, e, component.CrumbleComponent)
	}
}
