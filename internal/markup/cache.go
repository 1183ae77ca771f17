package markup

import (
	"container/list"
	"sync"
)

// DefaultCacheCapacity is the memoization capacity of NewSplitter.
const DefaultCacheCapacity = 128

type splitKey struct {
	text      string
	maxLength int
}

type splitEntry struct {
	key    splitKey
	chunks []string
}

// Splitter memoizes Split behind a bounded LRU keyed by the exact
// (text, maxLength) pair. It is an optimization only: results are identical
// to calling Split directly. Safe for concurrent use. Callers must not
// mutate a returned slice.
type Splitter struct {
	mu       sync.Mutex
	capacity int
	entries  map[splitKey]*list.Element
	order    *list.List // front = most recently used
}

// NewSplitter creates a memoizing splitter holding up to capacity results.
// A non-positive capacity falls back to DefaultCacheCapacity.
func NewSplitter(capacity int) *Splitter {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Splitter{
		capacity: capacity,
		entries:  make(map[splitKey]*list.Element),
		order:    list.New(),
	}
}

// Split behaves exactly like the package-level Split, serving repeated
// (text, maxLength) pairs from the cache.
func (s *Splitter) Split(text string, maxLength int) []string {
	key := splitKey{text: text, maxLength: maxLength}

	s.mu.Lock()
	if el, ok := s.entries[key]; ok {
		s.order.MoveToFront(el)
		chunks := el.Value.(*splitEntry).chunks
		s.mu.Unlock()
		return chunks
	}
	s.mu.Unlock()

	// Compute outside the lock: splitting large inputs is the slow path.
	chunks := Split(text, maxLength)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		s.entries[key] = s.order.PushFront(&splitEntry{key: key, chunks: chunks})
		if s.order.Len() > s.capacity {
			oldest := s.order.Back()
			s.order.Remove(oldest)
			delete(s.entries, oldest.Value.(*splitEntry).key)
		}
	}
	return chunks
}

// Len returns the number of memoized results.
func (s *Splitter) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}
