package component

// Crumble marks a fragile tile that is giving way. It blinks for Frames ticks
// and is then Broken: gone from the ground layer until the next respawn.
type Crumble struct {
	Frames   int
	Interval int
	Timer    int
	// On is the blink state; the renderer draws the tile highlighted.
	On     bool
	Broken bool
}

var CrumbleComponent = NewComponent[Crumble]()
