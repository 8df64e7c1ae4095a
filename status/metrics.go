package status

import (
	"math"
	"slices"
	"sort"
	"sync"
	"sync/atomic"
	"unicode/utf8"
)

// Table holds named metrics of one type, keeping names sorted as they register
// Lookups take the lock; owners cache the returned pointer and write to it directly
type Table[T any] struct {
	mu     sync.RWMutex
	byName map[string]*T
	names  []string
}

// NewTable creates an empty Table
func NewTable[T any]() *Table[T] {
	return &Table[T]{byName: make(map[string]*T)}
}

// Get returns the metric for name, allocating it on first use
func (t *Table[T]) Get(name string) *T {
	t.mu.RLock()
	ptr, ok := t.byName[name]
	t.mu.RUnlock()
	if ok {
		return ptr
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if ptr, ok := t.byName[name]; ok {
		return ptr
	}
	ptr = new(T)
	t.byName[name] = ptr
	i := sort.SearchStrings(t.names, name)
	t.names = slices.Insert(t.names, i, name)
	return ptr
}

// Each visits metrics in name order
func (t *Table[T]) Each(fn func(name string, ptr *T)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, name := range t.names {
		fn(name, t.byName[name])
	}
}

// Len returns the number of registered metrics
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.names)
}

// AtomicFloat is a float64 gauge stored as bits; zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) { f.bits.Store(math.Float64bits(val)) }

func (f *AtomicFloat) Get() float64 { return math.Float64frombits(f.bits.Load()) }

// SetMax raises the gauge to val if higher and returns the value it holds afterwards
func (f *AtomicFloat) SetMax(val float64) float64 {
	return f.update(func(cur float64) float64 { return math.Max(cur, val) })
}

// Add accumulates delta and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	return f.update(func(cur float64) float64 { return cur + delta })
}

func (f *AtomicFloat) update(next func(float64) float64) float64 {
	for {
		old := f.bits.Load()
		val := next(math.Float64frombits(old))
		if math.Float64bits(val) == old || f.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return val
		}
	}
}

// MaxStringLen bounds labels shown in the debug overlay, in runes
const MaxStringLen = 16

// AtomicString is a short label gauge
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store keeps at most MaxStringLen runes of val
func (s *AtomicString) Store(val string) {
	if utf8.RuneCountInString(val) > MaxStringLen {
		val = string([]rune(val)[:MaxStringLen])
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
