package component

// LevelBounds stores the map size in cells.
type LevelBounds struct {
	Width int
	Depth int
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
