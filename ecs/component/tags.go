package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// GoalTag marks the tile that finishes a level.
type GoalTag struct{}

var GoalTagComponent = NewComponent[GoalTag]()
