package audio

import (
	"testing"
	"time"
)

func TestSineWaveShape(t *testing.T) {
	dur := 100 * time.Millisecond
	pcm := sineWave(880, dur)

	wantSamples := int(float64(sampleRate) * dur.Seconds())
	if len(pcm) != wantSamples*2 {
		t.Fatalf("pcm length = %d bytes, expected %d", len(pcm), wantSamples*2)
	}

	// The last sample should be faded close to silence.
	last := int16(pcm[len(pcm)-2]) | int16(pcm[len(pcm)-1])<<8
	if last > 300 || last < -300 {
		t.Errorf("final sample %d not faded out", last)
	}
}

func TestDisabledBeeperIsNoop(t *testing.T) {
	b := NewBeeper(false)
	// Must not touch the audio device or panic.
	b.FoodEaten()
	b.GameOver()
	if b.ctx != nil {
		t.Error("disabled beeper should never open an audio context")
	}
}

func TestNilBeeperIsSafe(t *testing.T) {
	var b *Beeper
	b.FoodEaten()
	b.GameOver()
}
