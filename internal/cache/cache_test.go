package cache

import (
	"errors"
	"sort"
	"sync"
	"testing"
)

func TestGetOrCreate(t *testing.T) {
	c := New[int, string](0, nil)

	calls := 0
	create := func() (string, error) {
		calls++
		return "font", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrCreate(7, create)
		if err != nil || v != "font" {
			t.Fatalf("GetOrCreate = %q, %v; want font, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestGetOrCreateError(t *testing.T) {
	c := New[int, string](0, nil)
	errBoom := errors.New("boom")

	_, err := c.GetOrCreate(1, func() (string, error) { return "", errBoom })
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if _, ok := c.Get(1); ok {
		t.Error("failed create should not be cached")
	}
}

func TestEviction(t *testing.T) {
	var evictedKeys []int
	c := New[int, int](4, func(k, _ int) { evictedKeys = append(evictedKeys, k) })

	for i := 0; i < 5; i++ {
		i := i
		if _, err := c.GetOrCreate(i, func() (int, error) { return i * 10, nil }); err != nil {
			t.Fatal(err)
		}
	}

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	sort.Ints(evictedKeys)
	if len(evictedKeys) != 2 || evictedKeys[0] != 0 || evictedKeys[1] != 1 {
		t.Errorf("evicted %v, want [0 1]", evictedKeys)
	}
	if _, ok := c.Get(4); !ok {
		t.Error("newest entry must survive eviction")
	}
}

func TestEvictionRespectsAccess(t *testing.T) {
	var evictedKeys []int
	c := New[int, int](4, func(k, _ int) { evictedKeys = append(evictedKeys, k) })

	for i := 0; i < 4; i++ {
		i := i
		_, _ = c.GetOrCreate(i, func() (int, error) { return i, nil })
	}
	c.Get(0)
	_, _ = c.GetOrCreate(4, func() (int, error) { return 4, nil })

	sort.Ints(evictedKeys)
	if len(evictedKeys) != 2 || evictedKeys[0] != 1 || evictedKeys[1] != 2 {
		t.Errorf("evicted %v, want [1 2]", evictedKeys)
	}
}

func TestDeleteAndDrain(t *testing.T) {
	closed := map[int]bool{}
	c := New[int, int](0, func(k, _ int) { closed[k] = true })

	for i := 0; i < 3; i++ {
		i := i
		_, _ = c.GetOrCreate(i, func() (int, error) { return i, nil })
	}

	if !c.Delete(1) {
		t.Error("Delete(1) = false, want true")
	}
	if c.Delete(1) {
		t.Error("second Delete(1) = true, want false")
	}
	if !closed[1] {
		t.Error("Delete should call the eviction callback")
	}

	c.Drain()
	if c.Len() != 0 {
		t.Errorf("Len() after Drain = %d, want 0", c.Len())
	}
	if !closed[0] || !closed[2] {
		t.Errorf("Drain should evict every entry, got %v", closed)
	}
}

func TestConcurrentGetOrCreate(t *testing.T) {
	c := New[int, int](0, nil)

	var mu sync.Mutex
	calls := 0

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, _ = c.GetOrCreate(i%10, func() (int, error) {
					mu.Lock()
					calls++
					mu.Unlock()
					return i, nil
				})
			}
		}()
	}
	wg.Wait()

	if calls != 10 {
		t.Errorf("create called %d times, want 10", calls)
	}
}
