// Package audio plays the game's two sound cues as short sine beeps through
// oto. Audio is strictly fire-and-forget: if the audio device cannot be
// opened or playback fails, cues are silently skipped.
package audio

import (
	"bytes"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const sampleRate = 44100

// Beeper owns the audio context. The context is created lazily on the first
// cue so that a headless run never touches the audio device.
type Beeper struct {
	enabled bool

	once sync.Once
	ctx  *oto.Context
}

// NewBeeper creates a beeper. When enabled is false every cue is a no-op.
func NewBeeper(enabled bool) *Beeper {
	return &Beeper{enabled: enabled}
}

// FoodEaten plays the short high blip for a successful bite.
func (b *Beeper) FoodEaten() {
	b.play(880, 100*time.Millisecond)
}

// GameOver plays the low losing tone.
func (b *Beeper) GameOver() {
	b.play(220, 400*time.Millisecond)
}

func (b *Beeper) init() {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return
	}
	<-ready
	b.ctx = ctx
}

func (b *Beeper) play(freq float64, dur time.Duration) {
	if b == nil || !b.enabled {
		return
	}
	b.once.Do(b.init)
	if b.ctx == nil {
		return
	}

	pcm := sineWave(freq, dur)
	player := b.ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()

	go func() {
		time.Sleep(dur + 50*time.Millisecond)
		player.Close()
	}()
}

// sineWave renders a mono 16-bit LE sine tone with a short linear fade-out to
// avoid a click at the end.
func sineWave(freq float64, dur time.Duration) []byte {
	n := int(float64(sampleRate) * dur.Seconds())
	buf := make([]byte, n*2)

	fade := n / 8
	for i := 0; i < n; i++ {
		amp := 0.3
		if remaining := n - i; remaining < fade {
			amp *= float64(remaining) / float64(fade)
		}
		v := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
		buf[2*i] = byte(v)
		buf[2*i+1] = byte(v >> 8)
	}
	return buf
}
