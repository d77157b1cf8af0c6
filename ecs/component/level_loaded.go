package component

// LevelLoaded is a transient marker the game adds once the tile animation has
// finished and the player has been placed.
type LevelLoaded struct {
	Level int
}

var LevelLoadedComponent = NewComponent[LevelLoaded]()
