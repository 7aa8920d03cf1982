package hashmap

import (
	"iter"
	"sync"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the padding unit SyncMap uses to keep its lock off
// cache lines shared with neighbouring data. It is detected for the
// target CPU by `golang.org/x/sys`.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// SyncMap is a Map guarded by a single read-write mutex around the whole
// table. Lookups and snapshots share the lock; every mutation, including
// the rehash it may trigger, runs exclusively. There is no per-bucket
// locking because entries move between buckets when the table grows.
//
// The zero value is an empty map with the default capacity and load
// factor. A SyncMap must not be copied after first use.
type SyncMap[V any] struct {
	//lint:ignore U1000 prevents false sharing
	pad [(CacheLineSize - unsafe.Sizeof(struct {
		mu sync.RWMutex
		m  Map[struct{}]
	}{})%CacheLineSize) % CacheLineSize]byte

	mu sync.RWMutex
	m  Map[V]
}

// NewSyncMap creates a SyncMap configured like New.
func NewSyncMap[V any](options ...func(*MapConfig)) *SyncMap[V] {
	s := &SyncMap[V]{}
	for _, opt := range options {
		opt(&s.m.cfg)
	}
	s.m.init()
	return s
}

// Set stores value under key. See Map.Set.
func (s *SyncMap[V]) Set(key string, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Set(key, value)
}

// Update replaces the value under key with fn(old, loaded) and returns
// the stored value. fn runs with the write lock held and must not call
// back into s.
func (s *SyncMap[V]) Update(key string, fn func(old V, loaded bool) V) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, loaded := s.m.Get(key)
	value := fn(old, loaded)
	if err := s.m.Set(key, value); err != nil {
		return old, err
	}
	return value, nil
}

// Get returns the value stored under key.
func (s *SyncMap[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Get(key)
}

// Has reports whether key is present.
func (s *SyncMap[V]) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Has(key)
}

// Remove deletes key and reports whether it was present.
func (s *SyncMap[V]) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Remove(key)
}

// Len returns the number of entries.
func (s *SyncMap[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Len()
}

// Capacity returns the current number of buckets.
func (s *SyncMap[V]) Capacity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Capacity()
}

// SetLoadFactor changes the load factor. See Map.SetLoadFactor.
func (s *SyncMap[V]) SetLoadFactor(loadFactor float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.SetLoadFactor(loadFactor)
}

// Keys returns a snapshot of all keys.
func (s *SyncMap[V]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Keys()
}

// Values returns a snapshot of all values.
func (s *SyncMap[V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Values()
}

// Entries returns a snapshot of all key-value pairs.
func (s *SyncMap[V]) Entries() []Entry[V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Entries()
}

// Range calls yield for each entry while holding the read lock. yield must
// not modify s.
func (s *SyncMap[V]) Range(yield func(key string, value V) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.m.Range(yield)
}

// All is the iterator version of Range.
func (s *SyncMap[V]) All() iter.Seq2[string, V] {
	return s.Range
}

// Clear removes all entries and restores the initial configuration.
func (s *SyncMap[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Clear()
}

// Stats returns statistics for the underlying Map.
func (s *SyncMap[V]) Stats() *MapStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Stats()
}

// String implement the formatting output interface fmt.Stringer
func (s *SyncMap[V]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.String()
}
