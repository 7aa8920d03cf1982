package hashmap

import (
	"runtime"
	"strconv"
	"sync"
	"testing"
)

func TestSyncMap_BasicOperations(t *testing.T) {
	var m SyncMap[int]
	if _, ok := m.Get("a"); ok {
		t.Fatalf("expected empty")
	}
	if err := m.Set("a", 1); err != nil {
		t.Fatal(err)
	}
	if v, ok := m.Get("a"); !ok || v != 1 || !m.Has("a") {
		t.Fatalf("get got %v %v", v, ok)
	}
	if m.Len() != 1 || m.Capacity() != 16 {
		t.Fatalf("len %d capacity %d", m.Len(), m.Capacity())
	}
	if !m.Remove("a") || m.Len() != 0 {
		t.Fatalf("remove failed")
	}
}

func TestSyncMap_Options(t *testing.T) {
	m := NewSyncMap[int](WithCapacity(4), WithLoadFactor(0.5))
	for i := 0; i < 3; i++ {
		if err := m.Set(strconv.Itoa(i), i); err != nil {
			t.Fatal(err)
		}
	}
	if m.Capacity() != 8 {
		t.Fatalf("capacity got %d", m.Capacity())
	}
	m.Clear()
	if m.Capacity() != 4 || m.Len() != 0 {
		t.Fatalf("clear got capacity %d len %d", m.Capacity(), m.Len())
	}
}

func TestSyncMap_Concurrent(t *testing.T) {
	m := NewSyncMap[int]()
	var wg sync.WaitGroup
	n := runtime.GOMAXPROCS(0)
	wg.Add(n * 2)
	for g := 0; g < n; g++ {
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				if err := m.Set(strconv.Itoa(base*10000+i), i); err != nil {
					t.Error(err)
					return
				}
			}
		}(g)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				m.Get(strconv.Itoa(base*10000 + i))
				if i%500 == 0 {
					m.Entries()
				}
			}
		}(g)
	}
	wg.Wait()
	if m.Len() != n*2000 {
		t.Fatalf("len got %d want %d", m.Len(), n*2000)
	}
	stats := m.Stats()
	if stats.Size != stats.Counter {
		t.Fatalf("stats got %s", stats.ToString())
	}
}

func TestSyncMap_Update(t *testing.T) {
	m := NewSyncMap[int]()
	var wg sync.WaitGroup
	const workers, increments = 8, 1000
	wg.Add(workers)
	for g := 0; g < workers; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < increments; i++ {
				if _, err := m.Update("counter", func(old int, _ bool) int {
					return old + 1
				}); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if v, _ := m.Get("counter"); v != workers*increments {
		t.Fatalf("counter got %d", v)
	}
	if _, err := m.Update("", func(int, bool) int { return 1 }); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestSyncMap_RangeAndSnapshots(t *testing.T) {
	m := NewSyncMap[int]()
	for i := 0; i < 20; i++ {
		if err := m.Set(strconv.Itoa(i), i); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.SetLoadFactor(1); err != nil {
		t.Fatal(err)
	}
	sum := 0
	for _, v := range m.All() {
		sum += v
	}
	if sum != 190 {
		t.Fatalf("sum got %d", sum)
	}
	if len(m.Keys()) != 20 || len(m.Values()) != 20 {
		t.Fatalf("snapshots have wrong size")
	}
	if m.String() == "" {
		t.Fatalf("empty string")
	}
}
