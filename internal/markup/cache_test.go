package markup

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestSplitterMatchesUncachedSplit(t *testing.T) {
	s := NewSplitter(8)
	text := "some *bold* text " + strings.Repeat("word ", 50)

	cached := s.Split(text, 40)
	direct := Split(text, 40)
	assertChunks(t, cached, direct)

	// Second call is served from the cache and must be identical.
	again := s.Split(text, 40)
	assertChunks(t, again, direct)
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSplitterKeyIncludesMaxLength(t *testing.T) {
	s := NewSplitter(8)
	text := strings.Repeat("a", 30)

	if got := s.Split(text, 10); len(got) != 3 {
		t.Errorf("Split(10) produced %d chunks, want 3", len(got))
	}
	if got := s.Split(text, 15); len(got) != 2 {
		t.Errorf("Split(15) produced %d chunks, want 2", len(got))
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2 distinct entries", s.Len())
	}
}

func TestSplitterEvictsOldest(t *testing.T) {
	s := NewSplitter(2)

	for i := 0; i < 5; i++ {
		s.Split(fmt.Sprintf("text number %d", i), 100)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want capacity 2 after eviction", s.Len())
	}

	// Evicted entries are recomputed, not lost.
	got := s.Split("text number 0", 100)
	if len(got) != 1 || got[0] != "text number 0" {
		t.Errorf("Split() after eviction = %q, want original result", got)
	}
}

func TestSplitterNonPositiveCapacity(t *testing.T) {
	s := NewSplitter(0)
	s.Split("abc", 10)
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 under default capacity", s.Len())
	}
}

func TestSplitterConcurrentUse(t *testing.T) {
	s := NewSplitter(4)
	text := strings.Repeat("concurrent access ", 100)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				chunks := s.Split(text, 64)
				if strings.Join(chunks, "") != text {
					t.Error("concurrent Split() corrupted result")
					return
				}
			}
		}()
	}
	wg.Wait()
}
