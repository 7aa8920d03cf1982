package hashmap

import (
	"testing"

	"github.com/pkg/errors"
)

func animals() *LinkedList[int] {
	l := NewLinkedList[int]()
	for i, k := range []string{"dog", "cat", "parrot", "hamster", "snake", "turtle"} {
		l.Append(Entry[int]{Key: k, Value: i})
	}
	return l
}

func TestLinkedList_PrependInsertRemove(t *testing.T) {
	l := animals()
	l.Prepend(Entry[int]{Key: "mouse", Value: -1})
	if l.Size() != 7 || l.Head().Key != "mouse" || l.Tail().Key != "turtle" {
		t.Fatalf("got size %d head %v tail %v", l.Size(), l.Head(), l.Tail())
	}
	if err := l.InsertAt(Entry[int]{Key: "cow", Value: -2}, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RemoveAt(3); err != nil {
		t.Fatal(err)
	}
	want := "( cow: -2 ) -> ( mouse: -1 ) -> ( dog: 0 ) -> ( parrot: 2 ) -> " +
		"( hamster: 3 ) -> ( snake: 4 ) -> ( turtle: 5 ) -> ( null )"
	if s := l.String(); s != want {
		t.Fatalf("string got %q", s)
	}
}

func TestLinkedList_InsertAt(t *testing.T) {
	var l LinkedList[int]
	if err := l.InsertAt(Entry[int]{Key: "b"}, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := l.InsertAt(Entry[int]{Key: "b"}, 0); err != nil {
		t.Fatal(err)
	}
	if err := l.InsertAt(Entry[int]{Key: "d"}, 1); err != nil {
		t.Fatal(err)
	}
	if err := l.InsertAt(Entry[int]{Key: "c"}, 1); err != nil {
		t.Fatal(err)
	}
	if err := l.InsertAt(Entry[int]{Key: "a"}, 0); err != nil {
		t.Fatal(err)
	}
	if seqKeys(&l) != "abcd" || l.Tail().Key != "d" {
		t.Fatalf("got %s tail %v", seqKeys(&l), l.Tail())
	}
}

func TestLinkedList_PopContains(t *testing.T) {
	l := animals()
	if !l.Contains("hamster") || l.Contains("mouse") {
		t.Fatalf("contains mismatch")
	}
	e, err := l.Pop()
	if err != nil || e.Key != "turtle" {
		t.Fatalf("pop got %v %v", e, err)
	}
	if l.Tail().Key != "snake" || l.Size() != 5 {
		t.Fatalf("tail got %v size %d", l.Tail(), l.Size())
	}
	for l.Size() > 0 {
		if _, err := l.Pop(); err != nil {
			t.Fatal(err)
		}
	}
	if l.Head() != nil || l.Tail() != nil {
		t.Fatalf("expected empty list")
	}
	if _, err := l.Pop(); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if s := l.String(); s != "( null )" {
		t.Fatalf("string got %q", s)
	}
}

func TestLinkedList_At(t *testing.T) {
	l := animals()
	if e := l.At(2); e == nil || e.Key != "parrot" {
		t.Fatalf("at 2 got %v", e)
	}
	if e := l.At(5); e == nil || e.Key != "turtle" {
		t.Fatalf("at 5 got %v", e)
	}
	if l.At(6) != nil || l.At(-1) != nil {
		t.Fatalf("expected nil out of range")
	}
}
