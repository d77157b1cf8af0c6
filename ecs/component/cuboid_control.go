package component

import "github.com/milk9111/bloxroll/cuboid"

// CuboidControl attaches a rolling controller to an entity.
type CuboidControl struct {
	Controller *cuboid.Controller
	LastPhase  cuboid.Phase
}

var CuboidControlComponent = NewComponent[CuboidControl]()
