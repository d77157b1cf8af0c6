package component

// LevelChangeRequest is a one-shot request emitted by gameplay systems to ask
// the outer game loop to switch scenes. Systems only emit data; the Game owns
// world reinitialization.
type LevelChangeRequest struct {
	Level    int
	MainMenu bool
	Credits  bool
	Restart  bool
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
