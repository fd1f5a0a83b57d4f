package status

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
)

// TestMetricMapCachedPointer verifies repeated Get returns the same metric
func TestMetricMapCachedPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	a.Set(1.5)
	if b := m.Get("x"); b != a || b.Get() != 1.5 {
		t.Errorf("Expected cached pointer holding 1.5, got %v", b.Get())
	}
	if !m.Has("x") || m.Has("y") {
		t.Error("Expected only x registered")
	}
}

// TestMetricMapConcurrentGet verifies racing registrations share one pointer and keep keys sorted
func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	keys := []string{"seek.steps", "machine.frame", "events.total"}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get(keys[j%len(keys)]).Add(1)
			}
		}()
	}
	wg.Wait()

	if got := m.Get("seek.steps").Load(); got != 8*34 {
		t.Errorf("Expected %d, got %d", 8*34, got)
	}
	if got := m.Keys(); !reflect.DeepEqual(got, []string{"events.total", "machine.frame", "seek.steps"}) {
		t.Errorf("Expected sorted keys, got %v", got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected empty zero value")
	}
	s.Store("basket_fired@1234567890[basket1]=0.3")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected %d chars, got %d", MaxStringLen, len(s.Load()))
	}

	// A multi-byte rune straddling the limit is dropped whole
	s.Store("hamster_woke@12345678[hamster1]é")
	if got := s.Load(); got != "hamster_woke@12345678[hamster1]" {
		t.Errorf("Expected cut before the rune, got %q", got)
	}
}

// TestRegistryLines verifies sorted key=value output per type
func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyFrame).Store(42)
	r.Ints.Get(KeyMachine).Store(2)
	r.Floats.Get(KeyTime).Set(1.4)
	r.Bools.Get(KeyRunning).Store(true)
	r.Strings.Get(KeyLastEvent).Store("goal_scored")

	want := []string{
		"machine.frame=42",
		"machine.number=2",
		"machine.time=1.400",
		"viewer.running=true",
		"events.last=goal_scored",
	}
	if got := r.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if r.TotalCount() != 5 {
		t.Errorf("Expected 5 metrics, got %d", r.TotalCount())
	}
}
