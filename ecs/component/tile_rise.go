package component

// TileRise animates a tile up from below its rest height. Delay and
// Duration are in seconds.
type TileRise struct {
	FromY    float64
	Delay    float64
	Duration float64
	Elapsed  float64
	Done     bool
}

var TileRiseComponent = NewComponent[TileRise]()
