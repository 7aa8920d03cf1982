package hashmap

import (
	"fmt"
	"strings"
)

type listNode[V any] struct {
	entry Entry[V]
	next  *listNode[V]
}

// LinkedList is a singly linked list of entries with a tail pointer, so
// Append is O(1). It satisfies Sequence and can back bucket chains via
// WithLinkedChains.
//
// The zero value is an empty list ready to use.
type LinkedList[V any] struct {
	head *listNode[V]
	tail *listNode[V]
	size int
}

// NewLinkedList returns an empty list.
func NewLinkedList[V any]() *LinkedList[V] {
	return &LinkedList[V]{}
}

// Append adds e to the end of the list.
func (l *LinkedList[V]) Append(e Entry[V]) {
	n := &listNode[V]{entry: e}
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// Prepend adds e to the start of the list.
func (l *LinkedList[V]) Prepend(e Entry[V]) {
	n := &listNode[V]{entry: e, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// Size returns the number of entries in the list.
func (l *LinkedList[V]) Size() int {
	return l.size
}

// Head returns the first entry, or nil if the list is empty.
func (l *LinkedList[V]) Head() *Entry[V] {
	if l.head == nil {
		return nil
	}
	return &l.head.entry
}

// Tail returns the last entry, or nil if the list is empty.
func (l *LinkedList[V]) Tail() *Entry[V] {
	if l.tail == nil {
		return nil
	}
	return &l.tail.entry
}

func (l *LinkedList[V]) node(pos int) *listNode[V] {
	if pos < 0 || pos >= l.size {
		return nil
	}
	if pos == l.size-1 {
		return l.tail
	}
	n := l.head
	for i := 0; i < pos; i++ {
		n = n.next
	}
	return n
}

// At returns the entry at pos, or nil if pos is out of range.
func (l *LinkedList[V]) At(pos int) *Entry[V] {
	if n := l.node(pos); n != nil {
		return &n.entry
	}
	return nil
}

// Pop removes and returns the last entry.
func (l *LinkedList[V]) Pop() (Entry[V], error) {
	if l.size == 0 {
		return Entry[V]{}, indexError(0, 0)
	}
	return l.RemoveAt(l.size - 1)
}

// Contains reports whether an entry with key is in the list.
func (l *LinkedList[V]) Contains(key string) bool {
	return l.Find(keyMatcher[V](key)) >= 0
}

// Find returns the position of the first entry matching, or -1.
func (l *LinkedList[V]) Find(match func(e *Entry[V]) bool) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if match(&n.entry) {
			return i
		}
		i++
	}
	return -1
}

// InsertAt inserts e so that it ends up at pos. pos may equal Size, which
// appends.
func (l *LinkedList[V]) InsertAt(e Entry[V], pos int) error {
	if pos < 0 || pos > l.size {
		return indexError(pos, l.size)
	}
	if pos == 0 {
		l.Prepend(e)
		return nil
	}
	if pos == l.size {
		l.Append(e)
		return nil
	}
	prev := l.node(pos - 1)
	prev.next = &listNode[V]{entry: e, next: prev.next}
	l.size++
	return nil
}

// RemoveAt unlinks and returns the entry at pos.
func (l *LinkedList[V]) RemoveAt(pos int) (Entry[V], error) {
	if pos < 0 || pos >= l.size {
		return Entry[V]{}, indexError(pos, l.size)
	}
	var removed *listNode[V]
	if pos == 0 {
		removed = l.head
		l.head = removed.next
		if l.head == nil {
			l.tail = nil
		}
	} else {
		prev := l.node(pos - 1)
		removed = prev.next
		prev.next = removed.next
		if removed == l.tail {
			l.tail = prev
		}
	}
	removed.next = nil
	l.size--
	return removed.entry, nil
}

// Range calls yield for each entry from head to tail until it returns
// false.
func (l *LinkedList[V]) Range(yield func(e *Entry[V]) bool) {
	for n := l.head; n != nil; n = n.next {
		if !yield(&n.entry) {
			return
		}
	}
}

// String renders the list as "( k: v ) -> ( k: v ) -> ( null )".
func (l *LinkedList[V]) String() string {
	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		sb.WriteString(fmt.Sprintf("( %s: %v ) -> ", n.entry.Key, n.entry.Value))
	}
	sb.WriteString("( null )")
	return sb.String()
}
