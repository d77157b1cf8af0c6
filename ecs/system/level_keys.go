package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
)

var digitKeys = [10][2]ebiten.Key{
	{ebiten.KeyDigit0, ebiten.KeyNumpad0},
	{ebiten.KeyDigit1, ebiten.KeyNumpad1},
	{ebiten.KeyDigit2, ebiten.KeyNumpad2},
	{ebiten.KeyDigit3, ebiten.KeyNumpad3},
	{ebiten.KeyDigit4, ebiten.KeyNumpad4},
	{ebiten.KeyDigit5, ebiten.KeyNumpad5},
	{ebiten.KeyDigit6, ebiten.KeyNumpad6},
	{ebiten.KeyDigit7, ebiten.KeyNumpad7},
	{ebiten.KeyDigit8, ebiten.KeyNumpad8},
	{ebiten.KeyDigit9, ebiten.KeyNumpad9},
}

// LevelKeysSystem turns level-select key presses into a LevelChangeRequest:
// digits load level N, Escape opens the main menu and R restarts.
type LevelKeysSystem struct {
	justPressed func(ebiten.Key) bool
}

// NewLevelKeysSystemWith reads key presses from justPressed, usually
// inpututil.IsKeyJustPressed.
func NewLevelKeysSystemWith(justPressed func(ebiten.Key) bool) *LevelKeysSystem {
	return &LevelKeysSystem{justPressed: justPressed}
}

func (s *LevelKeysSystem) Update(w *ecs.World) {
	if w == nil || s.justPressed == nil {
		return
	}
	if req, ok := s.poll(); ok {
		RequestLevelChange(w, req)
	}
}

func (s *LevelKeysSystem) poll() (component.LevelChangeRequest, bool) {
	// the highest digit pressed this tick wins
	level := -1
	for n, keys := range digitKeys {
		if s.justPressed(keys[0]) || s.justPressed(keys[1]) {
			level = n
		}
	}
	if level >= 0 {
		return component.LevelChangeRequest{Level: level}, true
	}
	if s.justPressed(ebiten.KeyEscape) {
		return component.LevelChangeRequest{MainMenu: true}, true
	}
	if s.justPressed(ebiten.KeyR) {
		return component.LevelChangeRequest{Restart: true}, true
	}
	return component.LevelChangeRequest{}, false
}

// RequestLevelChange records req for the game loop. A later request in the
// same tick replaces an earlier one.
func RequestLevelChange(w *ecs.World, req component.LevelChangeRequest) {
	if e, ok := w.First(component.LevelChangeRequestComponent.Kind()); ok {
		if cur, ok := ecs.Get(w, e, component.LevelChangeRequestComponent); ok {
			*cur = req
			return
		}
	}
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.LevelChangeRequestComponent, req)
}

// TakeLevelChange removes and returns the pending request, if any.
func TakeLevelChange(w *ecs.World) (component.LevelChangeRequest, bool) {
	e, ok := w.First(component.LevelChangeRequestComponent.Kind())
	if !ok {
		return component.LevelChangeRequest{}, false
	}
	req, _ := ecs.Get(w, e, component.LevelChangeRequestComponent)
	out := *req
	w.DestroyEntity(e)
	return out, true
}
