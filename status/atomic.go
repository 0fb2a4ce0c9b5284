package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// AtomicFloat is a float64 stored as its IEEE bits; the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) { f.bits.Store(math.Float64bits(val)) }

func (f *AtomicFloat) Get() float64 { return math.Float64frombits(f.bits.Load()) }

// Max keeps the larger of the stored value and val, returning the result
// Used for peak metrics written by the loop while the overlay reads
func (f *AtomicFloat) Max(val float64) float64 {
	for {
		old := f.bits.Load()
		if cur := math.Float64frombits(old); val <= cur {
			return cur
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return val
		}
	}
}

// MaxStringLen fits a canonical UUID
const MaxStringLen = 36

// AtomicString holds a short label such as a session id; the zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store keeps at most MaxStringLen bytes of val without splitting a rune
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
