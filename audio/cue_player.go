package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/goldberg/event"
)

var sampleRate = beep.SampleRate(48000)

// maxQueued bounds cues mixed at once; a replay burst would otherwise stack them
const maxQueued = 8

// CuePlayer plays a short synthesized cue for machine events
// Every method is a no-op until Initialize succeeds, so the viewer runs without audio
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
	muted       bool
}

// NewCuePlayer creates an uninitialized player
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker
func (cp *CuePlayer) Initialize() error {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if cp.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	cp.ctrl = &beep.Ctrl{Streamer: cp.mixer, Paused: false}
	speaker.Play(cp.ctrl)
	cp.initialized = true
	return nil
}

// Play queues the cue for e, dropping it when muted or saturated
func (cp *CuePlayer) Play(e event.Event) bool {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized || cp.muted {
		return false
	}
	streamer := CueFor(e.Type, sampleRate)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	if cp.mixer.Len() >= maxQueued {
		return false
	}
	cp.mixer.Add(streamer)
	return true
}

// PlayAll plays a batch of drained events in order
func (cp *CuePlayer) PlayAll(events []event.Event) int {
	played := 0
	for _, e := range events {
		if cp.Play(e) {
			played++
		}
	}
	return played
}

// SetMuted silences new cues and pauses the mix
func (cp *CuePlayer) SetMuted(muted bool) {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	cp.muted = muted
	if !cp.initialized {
		return
	}
	speaker.Lock()
	cp.ctrl.Paused = muted
	speaker.Unlock()
}

func (cp *CuePlayer) Muted() bool {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return cp.muted
}

// Cleanup stops playback and drops queued cues
func (cp *CuePlayer) Cleanup() {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized {
		return
	}

	speaker.Lock()
	cp.ctrl.Paused = true
	cp.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	cp.initialized = false
}
