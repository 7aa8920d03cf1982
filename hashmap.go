package hashmap

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/pkg/errors"
)

const (
	// defaultCapacity is the number of buckets a Map starts with.
	defaultCapacity = 16
	// defaultLoadFactor is the ratio of entries to buckets above which the
	// table doubles. A map holds at most ceil(capacity*loadFactor) entries.
	defaultLoadFactor = 0.75
)

// Map is a string-keyed hash table that resolves collisions by separate
// chaining. Each bucket is empty, holds one entry inline, or holds a chain
// of two or more entries; a chain that drops back to one entry is turned
// into an inline entry again.
//
// The bucket index is a polynomial hash of the key reduced modulo the
// current capacity, so growing the table rehashes every entry into a newly
// allocated bucket array. The new array is installed only once it is
// complete.
//
// Map is not safe for concurrent use; see SyncMap.
//
// The zero value is an empty map with the default capacity and load
// factor.
type Map[V any] struct {
	buckets      []slot[V]
	count        int
	loadFactor   float64
	totalGrowths int
	cfg          MapConfig
}

// New creates a new Map.
//
// Parameters:
//   - WithCapacity option for the initial number of buckets
//   - WithLoadFactor option for the growth threshold
//   - WithLinkedChains option to chain collisions in a LinkedList
//   - WithResizeHook option to observe growth
func New[V any](options ...func(*MapConfig)) *Map[V] {
	m := &Map[V]{}
	for _, opt := range options {
		opt(&m.cfg)
	}
	m.init()
	return m
}

// MapConfig defines configurable Map options.
type MapConfig struct {
	capacity     int
	loadFactor   float64
	linkedChains bool
	onResize     func(oldCapacity, newCapacity int)
}

// WithCapacity configures the initial number of buckets. Clear shrinks the
// table back to this capacity. If capacity is zero or negative, the value
// is ignored.
func WithCapacity(capacity int) func(*MapConfig) {
	return func(c *MapConfig) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

// WithLoadFactor configures the maximum ratio of entries to buckets.
// Values outside (0, 1] are ignored.
func WithLoadFactor(loadFactor float64) func(*MapConfig) {
	return func(c *MapConfig) {
		if loadFactor > 0 && loadFactor <= 1 {
			c.loadFactor = loadFactor
		}
	}
}

// WithLinkedChains makes colliding buckets chain their entries in a
// LinkedList instead of a slice.
func WithLinkedChains() func(*MapConfig) {
	return func(c *MapConfig) {
		c.linkedChains = true
	}
}

// WithResizeHook registers fn to be called after every table growth.
func WithResizeHook(fn func(oldCapacity, newCapacity int)) func(*MapConfig) {
	return func(c *MapConfig) {
		c.onResize = fn
	}
}

func (m *Map[V]) init() {
	if m.cfg.capacity <= 0 {
		m.cfg.capacity = defaultCapacity
	}
	if m.cfg.loadFactor <= 0 || m.cfg.loadFactor > 1 {
		m.cfg.loadFactor = defaultLoadFactor
	}
	m.buckets = make([]slot[V], m.cfg.capacity)
	m.loadFactor = m.cfg.loadFactor
	m.count = 0
}

func (m *Map[V]) newChain() Sequence[V] {
	if m.cfg.linkedChains {
		return NewLinkedList[V]()
	}
	return newSliceSeq[V]()
}

// bucketIndex hashes key against capacity and checks the result.
func bucketIndex(key string, capacity int) (int, error) {
	idx := hashKey(key, capacity)
	if idx < 0 || idx >= capacity {
		return 0, errors.Wrapf(ErrOutOfRange, "key %q hashed to %d, capacity %d", key, idx, capacity)
	}
	return idx, nil
}

// lookup returns the bucket key belongs to, or nil for the empty key or an
// unallocated table.
func (m *Map[V]) lookup(key string) *slot[V] {
	if key == "" || len(m.buckets) == 0 {
		return nil
	}
	idx, err := bucketIndex(key, len(m.buckets))
	if err != nil {
		panic(err)
	}
	return &m.buckets[idx]
}

// maxEntries is the largest count a table of capacity buckets may hold.
// The product is rounded to 1e-9 first so that float error cannot push
// an exact result such as 100*0.07 over the next integer.
func maxEntries(capacity int, loadFactor float64) int {
	product := math.Round(float64(capacity)*loadFactor*1e9) / 1e9
	return int(math.Ceil(product))
}

// Set stores value under key, replacing any previous value.
//
// It returns ErrInvalidKey for an empty key and ErrOutOfRange if the
// table is corrupted; in both cases the map is left unchanged.
func (m *Map[V]) Set(key string, value V) error {
	if key == "" {
		return errors.WithStack(ErrInvalidKey)
	}
	if len(m.buckets) == 0 {
		m.init()
	}
	idx, err := bucketIndex(key, len(m.buckets))
	if err != nil {
		return err
	}
	if !m.buckets[idx].insert(key, value, m.newChain) {
		return nil
	}
	m.count++
	if err := m.grow(); err != nil {
		// the new array was discarded, so idx still addresses key
		m.buckets[idx].remove(key)
		m.count--
		return err
	}
	return nil
}

// grow doubles the capacity until count fits under the load factor and
// rehashes every entry into the new bucket array.
func (m *Map[V]) grow() error {
	oldCapacity := len(m.buckets)
	newCapacity := oldCapacity
	for m.count > maxEntries(newCapacity, m.loadFactor) {
		newCapacity <<= 1
	}
	if newCapacity == oldCapacity {
		return nil
	}
	buckets, err := m.rehash(newCapacity)
	if err != nil {
		return err
	}
	m.buckets = buckets
	m.totalGrowths++
	if m.cfg.onResize != nil {
		m.cfg.onResize(oldCapacity, newCapacity)
	}
	return nil
}

// rehash builds a bucket array of the given capacity holding every entry
// of m. m itself is not modified.
func (m *Map[V]) rehash(capacity int) ([]slot[V], error) {
	buckets := make([]slot[V], capacity)
	var err error
	m.rangeEntries(func(e *Entry[V]) bool {
		var idx int
		if idx, err = bucketIndex(e.Key, capacity); err != nil {
			return false
		}
		buckets[idx].insert(e.Key, e.Value, m.newChain)
		return true
	})
	if err != nil {
		return nil, errors.Wrap(err, "rehash")
	}
	return buckets, nil
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (value V, ok bool) {
	if s := m.lookup(key); s != nil {
		if e := s.find(key); e != nil {
			return e.Value, true
		}
	}
	return
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	s := m.lookup(key)
	return s != nil && s.find(key) != nil
}

// Remove deletes key and reports whether it was present. The capacity
// never shrinks.
func (m *Map[V]) Remove(key string) bool {
	s := m.lookup(key)
	if s == nil || !s.remove(key) {
		return false
	}
	m.count--
	return true
}

// Len returns the number of entries in the map.
// This is an O(1) operation.
func (m *Map[V]) Len() int {
	return m.count
}

// Capacity returns the current number of buckets.
func (m *Map[V]) Capacity() int {
	if len(m.buckets) == 0 {
		return defaultCapacity
	}
	return len(m.buckets)
}

// LoadFactor returns the current growth threshold ratio.
func (m *Map[V]) LoadFactor() float64 {
	if m.loadFactor == 0 {
		return defaultLoadFactor
	}
	return m.loadFactor
}

// SetLoadFactor changes the load factor, growing the table at once if the
// current entries no longer fit. Clear restores the configured value.
func (m *Map[V]) SetLoadFactor(loadFactor float64) error {
	if !(loadFactor > 0 && loadFactor <= 1) {
		return errors.Wrapf(ErrInvalidLoadFactor, "got %v", loadFactor)
	}
	if len(m.buckets) == 0 {
		m.init()
	}
	prev := m.loadFactor
	m.loadFactor = loadFactor
	if err := m.grow(); err != nil {
		m.loadFactor = prev
		return err
	}
	return nil
}

// Clear removes all entries and restores the initial capacity and load
// factor.
func (m *Map[V]) Clear() {
	m.init()
}

// rangeEntries walks buckets in index order, chains in chain order.
func (m *Map[V]) rangeEntries(yield func(e *Entry[V]) bool) {
	for i := range m.buckets {
		if !m.buckets[i].rangeEntries(yield) {
			return
		}
	}
}

// Keys returns a snapshot of all keys in bucket order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, m.count)
	m.rangeEntries(func(e *Entry[V]) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

// Values returns a snapshot of all values in bucket order.
func (m *Map[V]) Values() []V {
	values := make([]V, 0, m.count)
	m.rangeEntries(func(e *Entry[V]) bool {
		values = append(values, e.Value)
		return true
	})
	return values
}

// Entries returns a snapshot of all key-value pairs in bucket order.
func (m *Map[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, m.count)
	m.rangeEntries(func(e *Entry[V]) bool {
		entries = append(entries, *e)
		return true
	})
	return entries
}

// Range calls yield for each entry in bucket order until it returns false.
// The map must not be modified during the walk.
func (m *Map[V]) Range(yield func(key string, value V) bool) {
	m.rangeEntries(func(e *Entry[V]) bool {
		return yield(e.Key, e.Value)
	})
}

// All is the iterator version of Range.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return m.Range
}

// ToMap collect all entries and return a map[string]V
func (m *Map[V]) ToMap() map[string]V {
	a := make(map[string]V, m.count)
	m.Range(func(k string, v V) bool {
		a[k] = v
		return true
	})
	return a
}

// FromMap stores every pair of source. Either every pair is stored or,
// on error, the map is left unchanged.
func (m *Map[V]) FromMap(source map[string]V) error {
	if _, ok := source[""]; ok {
		return errors.Wrap(ErrInvalidKey, "from map")
	}
	next := *m
	if len(next.buckets) == 0 {
		next.init()
	} else {
		buckets, err := m.rehash(len(m.buckets))
		if err != nil {
			return errors.Wrap(err, "from map")
		}
		next.buckets = buckets
	}
	for k, v := range source {
		if err := next.Set(k, v); err != nil {
			return errors.Wrapf(err, "from map: key %q", k)
		}
	}
	*m = next
	return nil
}

// String implement the formatting output interface fmt.Stringer
func (m *Map[V]) String() string {
	return strings.Replace(fmt.Sprint(m.ToMap()), "map[", "Map[", 1)
}
