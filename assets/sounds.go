package assets

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the rate every synthesized clip is rendered at.
const SampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide Ebiten audio context, creating it on
// first use. Ebiten allows only one.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// Clip describes a short synthesized sound.
type Clip struct {
	Tone     float64 // Hz at the start
	Sweep    float64 // Hz added by the end
	Duration float64 // seconds
}

// Synthesize renders c as 16-bit little-endian stereo PCM. The tone decays
// linearly to silence so clips never click at the end.
func Synthesize(c Clip) []byte {
	if c.Duration <= 0 || c.Tone <= 0 {
		return nil
	}
	frames := int(c.Duration * SampleRate)
	buf := make([]byte, frames*4)

	phase := 0.0
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames)
		freq := c.Tone + c.Sweep*t
		if freq < 20 {
			freq = 20
		}
		phase += 2 * math.Pi * freq / SampleRate
		v := math.Sin(phase) * (1 - t)
		s := uint16(int16(v * math.MaxInt16 * 0.8))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}

// NewClipPlayer synthesizes c and wraps it in an audio player.
func NewClipPlayer(c Clip) *audio.Player {
	return AudioContext().NewPlayerFromBytes(Synthesize(c))
}
