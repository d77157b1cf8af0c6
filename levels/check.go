package levels

import (
	"errors"
	"fmt"
)

var ErrUnplayable = errors.New("levels: unplayable level")

// Check reports why a level cannot be played: the spawn must be a solid,
// non-fragile cell inside the map and the map needs a goal.
func Check(e Entry, m *Map) error {
	if m == nil {
		return fmt.Errorf("%w: level %d has no map", ErrUnplayable, e.Level)
	}
	x, z := e.Spawn[0], e.Spawn[1]
	if x < 0 || z < 0 || x >= m.Width || z >= m.Depth {
		return fmt.Errorf("%w: level %d spawn (%d, %d) is outside the %dx%d map", ErrUnplayable, e.Level, x, z, m.Width, m.Depth)
	}
	switch t := m.At(x, z); {
	case !t.Solid():
		return fmt.Errorf("%w: level %d spawn (%d, %d) is %s", ErrUnplayable, e.Level, x, z, t)
	case t == TileFragile:
		return fmt.Errorf("%w: level %d spawn (%d, %d) is fragile", ErrUnplayable, e.Level, x, z)
	}
	if _, _, ok := m.Find(TileGoal); !ok {
		return fmt.Errorf("%w: level %d has no goal", ErrUnplayable, e.Level)
	}
	return nil
}
