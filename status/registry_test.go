package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestTableReturnsCachedPointer(t *testing.T) {
	m := NewTable[AtomicFloat]()
	a := m.Get("player.speed")
	b := m.Get("player.speed")
	if a != b {
		t.Fatal("Expected same pointer for repeated Get")
	}
	a.Set(1.5)
	if b.Get() != 1.5 {
		t.Errorf("Expected 1.5, got %v", b.Get())
	}
	if m.Len() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Len())
	}
}

func TestTableEachSorted(t *testing.T) {
	m := NewTable[atomic.Int64]()
	for _, name := range []string{"spawn.props", "audio.played", "engine.ticks", "cull.entities"} {
		m.Get(name)
	}
	var got []string
	m.Each(func(name string, _ *atomic.Int64) { got = append(got, name) })

	want := []string{"audio.played", "cull.entities", "engine.ticks", "spawn.props"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTableConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get("engine.ticks").Add(1)
		}()
	}
	wg.Wait()
	if got := r.Ints.Get("engine.ticks").Load(); got != 16 {
		t.Errorf("Expected 16, got %d", got)
	}
	if r.Ints.Len() != 1 {
		t.Errorf("Expected 1 metric, got %d", r.Ints.Len())
	}
}

func TestAtomicFloatSetMax(t *testing.T) {
	var f AtomicFloat
	f.Set(2)
	if got := f.SetMax(1); got != 2 {
		t.Errorf("Expected 2, got %v", got)
	}
	if got := f.SetMax(3); got != 3 {
		t.Errorf("Expected 3, got %v", got)
	}
	if got := f.Add(0.5); got != 3.5 {
		t.Errorf("Expected 3.5, got %v", got)
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if f.Get() != 400 {
		t.Errorf("Expected 400, got %v", f.Get())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected empty zero value")
	}
	s.Store("a-very-long-phase-label")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(s.Load()))
	}

	// Truncation counts runes, never splitting a multibyte character
	s.Store("◆◆◆◆◆◆◆◆◆◆◆◆◆◆◆◆◆◆◆◆")
	if got := []rune(s.Load()); len(got) != MaxStringLen || got[MaxStringLen-1] != '◆' {
		t.Errorf("Expected %d whole runes, got %q", MaxStringLen, s.Load())
	}
}

func TestRegistryLinesOrder(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("spawn.obstacles").Store(3)
	r.Ints.Get("engine.ticks").Store(10)
	r.Strings.Get("engine.phase").Store("PLAYING")
	r.Floats.Get("player.speed").Set(0.9)

	want := []string{
		"engine.phase PLAYING",
		"engine.ticks 10",
		"spawn.obstacles 3",
		"player.speed 0.900",
	}
	got := r.Lines()
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected 4, got %d", r.TotalCount())
	}
}
