package hashmap

// Entry is a key-value pair stored in a Map.
type Entry[V any] struct {
	Key   string
	Value V
}

// Sequence is the ordered entry collection a bucket falls back to once two
// keys collide in it. Positions are zero-based and stable until the next
// RemoveAt.
//
// Any implementation works as a chain as long as Append keeps insertion
// order and Find returns the first position matching the predicate.
type Sequence[V any] interface {
	// Append adds e after the last entry.
	Append(e Entry[V])
	// Find returns the position of the first entry for which match reports
	// true, or -1.
	Find(match func(e *Entry[V]) bool) int
	// RemoveAt deletes and returns the entry at pos.
	RemoveAt(pos int) (Entry[V], error)
	// At returns the entry at pos for in-place updates, or nil.
	At(pos int) *Entry[V]
	// Range calls yield for each entry in order until it returns false.
	Range(yield func(e *Entry[V]) bool)
	// Size returns the number of entries.
	Size() int
}

// keyMatcher returns a Find predicate selecting key.
func keyMatcher[V any](key string) func(e *Entry[V]) bool {
	return func(e *Entry[V]) bool { return e.Key == key }
}

// sliceSeq is the default chain: a growable array of entries.
type sliceSeq[V any] struct {
	entries []Entry[V]
}

func newSliceSeq[V any]() *sliceSeq[V] {
	return &sliceSeq[V]{entries: make([]Entry[V], 0, 2)}
}

func (s *sliceSeq[V]) Append(e Entry[V]) {
	s.entries = append(s.entries, e)
}

func (s *sliceSeq[V]) Find(match func(e *Entry[V]) bool) int {
	for i := range s.entries {
		if match(&s.entries[i]) {
			return i
		}
	}
	return -1
}

func (s *sliceSeq[V]) RemoveAt(pos int) (Entry[V], error) {
	if pos < 0 || pos >= len(s.entries) {
		return Entry[V]{}, indexError(pos, len(s.entries))
	}
	e := s.entries[pos]
	copy(s.entries[pos:], s.entries[pos+1:])
	// drop the stale tail so the value can be collected
	s.entries[len(s.entries)-1] = Entry[V]{}
	s.entries = s.entries[:len(s.entries)-1]
	return e, nil
}

func (s *sliceSeq[V]) At(pos int) *Entry[V] {
	if pos < 0 || pos >= len(s.entries) {
		return nil
	}
	return &s.entries[pos]
}

func (s *sliceSeq[V]) Range(yield func(e *Entry[V]) bool) {
	for i := range s.entries {
		if !yield(&s.entries[i]) {
			return
		}
	}
}

func (s *sliceSeq[V]) Size() int {
	return len(s.entries)
}
