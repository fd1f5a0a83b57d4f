package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

// TestMockTimeProviderConcurrency verifies concurrent advances are all applied
func TestMockTimeProviderConcurrency(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = mock.Now()
			}
		}()
	}
	wg.Wait()

	if expected := start.Add(250 * time.Millisecond); !mock.Now().Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, mock.Now())
	}
}

// TestPausableClockPause verifies paused wall time is excluded from playback
func TestPausableClockPause(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)

	mock.Advance(2 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Fatalf("Expected 2s, got %v", got)
	}

	clock.Pause()
	mock.Advance(5 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected frozen 2s while paused, got %v", got)
	}
	if got := clock.GetTotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s paused, got %v", got)
	}

	clock.Resume()
	mock.Advance(time.Second)
	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected 3s after resume, got %v", got)
	}
	if clock.IsPaused() {
		t.Error("Expected running clock")
	}
}

// TestPausableClockSeek verifies seeking works both running and paused
func TestPausableClockSeek(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)
	mock.Advance(4 * time.Second)

	clock.Seek(time.Second)
	if got := clock.Elapsed(); got != time.Second {
		t.Fatalf("Expected 1s after seek, got %v", got)
	}
	mock.Advance(500 * time.Millisecond)
	if got := clock.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s, got %v", got)
	}

	if !clock.Toggle() {
		t.Fatal("Expected toggle to pause")
	}
	clock.Seek(10 * time.Second)
	mock.Advance(time.Second)
	if got := clock.Elapsed(); got != 10*time.Second {
		t.Errorf("Expected 10s while paused, got %v", got)
	}
	if clock.Toggle() {
		t.Fatal("Expected toggle to resume")
	}
	mock.Advance(time.Second)
	if got := clock.Elapsed(); got != 11*time.Second {
		t.Errorf("Expected 11s, got %v", got)
	}
}

func TestFrameAt(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		rate    float64
		want    int
	}{
		{0, 30, 0},
		{-time.Second, 30, 0},
		{time.Second, 30, 30},
		{1500 * time.Millisecond, 30, 45},
		{time.Second, 0, 0},
	}
	for _, tc := range cases {
		if got := FrameAt(tc.elapsed, tc.rate); got != tc.want {
			t.Errorf("FrameAt(%v, %f): expected %d, got %d", tc.elapsed, tc.rate, tc.want, got)
		}
	}
}
