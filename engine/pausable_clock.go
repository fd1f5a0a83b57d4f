package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock is the viewer's playback clock: wall time minus pauses, plus seeks
type PausableClock struct {
	mu sync.RWMutex

	provider  TimeProvider
	startTime time.Time     // wall time the clock was created
	offset    time.Duration // added by Seek

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a running clock at zero; nil provider uses the system clock
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Elapsed returns playback time (affected by pause and seek)
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.elapsedLocked()
}

func (pc *PausableClock) elapsedLocked() time.Duration {
	now := pc.provider.Now()
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		// During pause: frozen at the pause point
		now = pc.pauseStartTime
	}
	return now.Sub(pc.startTime) - pc.totalPausedTime + pc.offset
}

// Seek sets playback time to d, keeping the pause state
func (pc *PausableClock) Seek(d time.Duration) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.offset += d - pc.elapsedLocked()
}

// Pause stops playback time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.provider.Now()
	}
}

// Resume continues playback time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// Toggle flips the pause state and reports whether the clock is now paused
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// GetTotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// FrameAt converts playback time to a frame number at rate frames per second
func FrameAt(elapsed time.Duration, rate float64) int {
	if elapsed <= 0 || rate <= 0 {
		return 0
	}
	return int(elapsed.Seconds() * rate)
}
