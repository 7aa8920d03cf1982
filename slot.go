package hashmap

import (
	"fmt"
)

type slotKind uint8

const (
	slotEmpty slotKind = iota
	slotSingle
	slotChained
)

// slot is one bucket of the table. A bucket holding a single entry keeps it
// inline; the chain is only allocated once a second key lands here, and is
// dropped again when removals bring it back to one entry.
//
// Invariant: kind == slotChained implies chain.Size() >= 2 with distinct
// keys.
type slot[V any] struct {
	kind  slotKind
	entry Entry[V]    // slotSingle
	chain Sequence[V] // slotChained
}

func (s *slot[V]) invalid() string {
	return fmt.Sprintf("hashmap: invalid slot kind %d", s.kind)
}

// find returns the live entry for key in this bucket, or nil.
func (s *slot[V]) find(key string) *Entry[V] {
	switch s.kind {
	case slotEmpty:
		return nil
	case slotSingle:
		if s.entry.Key == key {
			return &s.entry
		}
		return nil
	case slotChained:
		return s.chain.At(s.chain.Find(keyMatcher[V](key)))
	default:
		panic(s.invalid())
	}
}

// insert stores value under key and reports whether a new entry was
// added (false means an existing value was overwritten in place).
func (s *slot[V]) insert(key string, value V, newChain func() Sequence[V]) bool {
	switch s.kind {
	case slotEmpty:
		s.kind = slotSingle
		s.entry = Entry[V]{Key: key, Value: value}
		return true
	case slotSingle:
		if s.entry.Key == key {
			s.entry.Value = value
			return false
		}
		chain := newChain()
		chain.Append(s.entry)
		chain.Append(Entry[V]{Key: key, Value: value})
		s.kind, s.entry, s.chain = slotChained, Entry[V]{}, chain
		return true
	case slotChained:
		if e := s.chain.At(s.chain.Find(keyMatcher[V](key))); e != nil {
			e.Value = value
			return false
		}
		s.chain.Append(Entry[V]{Key: key, Value: value})
		return true
	default:
		panic(s.invalid())
	}
}

// remove deletes key from this bucket and reports whether it was present.
// A chain left with one entry is demoted back to slotSingle.
func (s *slot[V]) remove(key string) bool {
	switch s.kind {
	case slotEmpty:
		return false
	case slotSingle:
		if s.entry.Key != key {
			return false
		}
		*s = slot[V]{}
		return true
	case slotChained:
		pos := s.chain.Find(keyMatcher[V](key))
		if pos < 0 {
			return false
		}
		if _, err := s.chain.RemoveAt(pos); err != nil {
			return false
		}
		if s.chain.Size() == 1 {
			s.kind, s.entry, s.chain = slotSingle, *s.chain.At(0), nil
		}
		return true
	default:
		panic(s.invalid())
	}
}

// size returns the number of entries in this bucket.
func (s *slot[V]) size() int {
	switch s.kind {
	case slotEmpty:
		return 0
	case slotSingle:
		return 1
	case slotChained:
		return s.chain.Size()
	default:
		panic(s.invalid())
	}
}

// rangeEntries calls yield for each entry in chain order. It returns false
// if yield stopped the walk.
func (s *slot[V]) rangeEntries(yield func(e *Entry[V]) bool) bool {
	switch s.kind {
	case slotEmpty:
		return true
	case slotSingle:
		return yield(&s.entry)
	case slotChained:
		cont := true
		s.chain.Range(func(e *Entry[V]) bool {
			cont = yield(e)
			return cont
		})
		return cont
	default:
		panic(s.invalid())
	}
}
