package component

// Input stores per-frame input state for an entity.
type Input struct {
	MoveX float64
	MoveY float64 // +1 is away from the camera (+Z)
}

var InputComponent = NewComponent[Input]()
