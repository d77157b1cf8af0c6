package component

import (
	"image/color"

	"github.com/milk9111/bloxroll/levels"
)

// Tile is one floor cell built from a level map.
type Tile struct {
	X, Z  int
	Type  levels.TileType
	Color color.RGBA
	// RestY is the height the tile settles at once the level is built.
	RestY float64
}

var TileComponent = NewComponent[Tile]()
