package levels

import "fmt"

// TileType is a map cell code.
type TileType int

const (
	TileEmpty     TileType = 1
	TileNormal    TileType = 2
	TileGoal      TileType = 3
	TileFragile   TileType = 4
	TileSeparator TileType = 5
	TileOButton   TileType = 6
	TileXButton   TileType = 7
)

var tileNames = map[TileType]string{
	TileEmpty:     "empty",
	TileNormal:    "normal",
	TileGoal:      "goal",
	TileFragile:   "fragile",
	TileSeparator: "separator",
	TileOButton:   "obutton",
	TileXButton:   "xbutton",
}

func (t TileType) String() string {
	if n, ok := tileNames[t]; ok {
		return n
	}
	return fmt.Sprintf("tile(%d)", int(t))
}

// Known reports whether t is one of the defined codes.
func (t TileType) Known() bool {
	_, ok := tileNames[t]
	return ok
}

// Solid reports whether a tile of this type is built at all.
func (t TileType) Solid() bool {
	return t.Known() && t != TileEmpty
}

// ParseTileType maps a prefab name back to its code.
func ParseTileType(name string) (TileType, bool) {
	for t, n := range tileNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// SolidTypes lists every code that needs a tile prefab.
func SolidTypes() []TileType {
	return []TileType{TileNormal, TileGoal, TileFragile, TileSeparator, TileOButton, TileXButton}
}
