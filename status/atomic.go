package status

import (
	"math"
	"strconv"
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen is the maximum length in bytes for atomic strings, enough for an event label
const MaxStringLen = 32

// AtomicFloat is a float64 stored as its bit pattern; the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// String formats with millisecond precision, enough for machine time
func (f *AtomicFloat) String() string {
	return strconv.FormatFloat(f.Get(), 'f', 3, 64)
}

// AtomicString holds a short label; the zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, cut to MaxStringLen bytes on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
