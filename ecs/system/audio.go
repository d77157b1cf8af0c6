package system

import (
	"github.com/milk9111/bloxroll/ecs"
	"github.com/milk9111/bloxroll/ecs/component"
)

// AudioSystem starts and stops the clips flagged on Audio components.
type AudioSystem struct {
	Muted bool
}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Play), len(audioComp.Players), len(audioComp.Stop))

		for i := 0; i < count; i++ {
			if audioComp.Stop[i] {
				if p := audioComp.Players[i]; p != nil && p.IsPlaying() {
					p.Pause()
				}
				audioComp.Stop[i] = false
			}

			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false
			if a.Muted {
				continue
			}

			player := audioComp.Players[i]
			if player == nil {
				continue
			}
			if i < len(audioComp.Volume) {
				player.SetVolume(audioComp.Volume[i])
			}
			// quick successive rolls retrigger the clip from the start
			_ = player.Rewind()
			player.Play()
		}
	})
}
