package system

import (
	"github.com/milk9111/bloxroll/common"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
)

// TileAnimator raises freshly built tiles into place. The game starts it
// after building a map and spawns the player once Finished reports true.
type TileAnimator struct {
	dt       float64
	started  bool
	finished bool
}

func NewTileAnimator(dt float64) *TileAnimator {
	return &TileAnimator{dt: dt}
}

// Start begins the animation. Calling it again restarts the flags for a new
// level.
func (a *TileAnimator) Start() {
	a.started = true
	a.finished = false
}

func (a *TileAnimator) Finished() bool { return a.finished }

func (a *TileAnimator) Update(w *ecs.World) {
	if w == nil || !a.started || a.finished {
		return
	}

	done := true
	ecs.ForEach3(w, component.TileRiseComponent.Kind(), component.TileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, rise *component.TileRise, tile *component.Tile, t *component.Transform) {
		if rise.Done {
			return
		}
		rise.Elapsed += a.dt

		progress := 1.0
		if rise.Duration > 0 {
			progress = common.Clamp((rise.Elapsed-rise.Delay)/rise.Duration, 0, 1)
		}

		y := common.Lerp(rise.FromY, tile.RestY, common.SmoothStep(progress))
		if progress >= 1 {
			y = tile.RestY
			rise.Done = true
		} else {
			done = false
		}
		t.Position[1] = y
	})
	a.finished = done
}
