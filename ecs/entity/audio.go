package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/bloxroll/assets"
	"github.com/milk9111/bloxroll/ecs/component"
	"github.com/milk9111/bloxroll/prefabs"
)

func buildAudioComponent(audioSpecs []prefabs.AudioSpec) (*component.Audio, error) {
	n := len(audioSpecs)
	if n == 0 {
		return nil, nil
	}

	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	volume := make([]float64, 0, n)

	for i, clip := range audioSpecs {
		if clip.Name == "" {
			return nil, fmt.Errorf("audio clip %d has no name", i)
		}
		if clip.Tone <= 0 || clip.Duration <= 0 {
			return nil, fmt.Errorf("audio clip %d (%q): tone and duration must be positive", i, clip.Name)
		}
		player := assets.NewClipPlayer(assets.Clip{
			Tone:     clip.Tone,
			Sweep:    clip.Sweep,
			Duration: clip.Duration,
		})
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, clip.Volume)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}, nil
}
