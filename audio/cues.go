package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/goldberg/event"
)

const (
	chimeDuration   = 400 * time.Millisecond
	chimeNoteGap    = 120 * time.Millisecond
	thumpDuration   = 180 * time.Millisecond
	squeakDuration  = 90 * time.Millisecond
	clickDuration   = 25 * time.Millisecond
	cueAttack       = 5 * time.Millisecond
	cueShortRelease = 20 * time.Millisecond
)

// CreateChime is a rising two-note chime for a scored goal
func CreateChime(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		fund := NewEnvelope(NewOscillator(freq, chimeDuration, WaveSine, rate), chimeDuration, cueAttack, chimeDuration/2, rate)
		over := NewEnvelope(NewOscillator(freq*2, chimeDuration, WaveSine, rate), chimeDuration, cueAttack, chimeDuration/4, rate)
		return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	}
	// Second note starts after a short gap of silence
	second := beep.Seq(beep.Silence(rate.N(chimeNoteGap)), note(1318.5))
	mixed := beep.Mix(newVolume(note(987.8), 0.5), newVolume(second, 0.5))
	return beep.Take(rate.N(chimeNoteGap+chimeDuration), mixed)
}

// CreateThump is a falling low tone for a basket launch
func CreateThump(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(140, 55, thumpDuration, WaveSine, rate)
	return newVolume(NewEnvelope(osc, thumpDuration, cueAttack, thumpDuration-cueAttack, rate), 0.8)
}

// CreateSqueak is a short upward square chirp for a hamster waking up
func CreateSqueak(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(1800, 2600, squeakDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, squeakDuration, cueAttack, cueShortRelease, rate), 0.15)
}

// CreateClick is a noise burst for a machine reset
func CreateClick(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, clickDuration, WaveNoise, rate)
	return newVolume(NewEnvelope(noise, clickDuration, 0, cueShortRelease, rate), 0.3)
}

// CueFor returns the streamer for an event type, or nil when it has no cue
func CueFor(t event.Type, rate beep.SampleRate) beep.Streamer {
	switch t {
	case event.GoalScored:
		return CreateChime(rate)
	case event.BasketFired:
		return CreateThump(rate)
	case event.HamsterWoke:
		return CreateSqueak(rate)
	case event.MachineReset:
		return CreateClick(rate)
	}
	return nil
}
