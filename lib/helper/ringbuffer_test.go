package helper

import (
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestRingBuffer_AddAndSnapshot(t *testing.T) {
	ringBuffer := NewRingBuffer[int](5)
	ringBuffer.Add(1)
	ringBuffer.Add(2)
	ringBuffer.Add(3)

	expected := []int{1, 2, 3}
	actual := ringBuffer.Snapshot()
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Expected %v, but got %v", expected, actual)
	}

	ringBuffer.Add(4)
	ringBuffer.Add(5)
	ringBuffer.Add(6)

	expected = []int{2, 3, 4, 5, 6}
	actual = ringBuffer.Snapshot()
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Expected %v, but got %v", expected, actual)
	}
}

func TestRingBuffer_Select(t *testing.T) {
	ringBuffer := NewRingBuffer[int](4)
	for i := 1; i <= 6; i++ {
		ringBuffer.Add(i)
	}

	even := ringBuffer.Select(func(v int) bool { return v%2 == 0 })
	if !reflect.DeepEqual(even, []int{4, 6}) {
		t.Errorf("Expected [4 6], got %v", even)
	}
	if ringBuffer.Len() != 4 {
		t.Errorf("Select must not change the buffer, len=%d", ringBuffer.Len())
	}
}

func TestRingBuffer_ZeroSize(t *testing.T) {
	ringBuffer := NewRingBuffer[string](0)
	ringBuffer.Add("a")
	ringBuffer.Add("b")
	if got := ringBuffer.Snapshot(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Expected [b], got %v", got)
	}
}

func TestRingBufferConcurrent(t *testing.T) {
	ringBuffer := NewRingBuffer[int](3)
	var wg sync.WaitGroup

	addValues := func(values []int) {
		defer wg.Done()
		for _, value := range values {
			ringBuffer.Add(value)
			time.Sleep(time.Millisecond)
		}
	}

	wg.Add(3)
	go addValues([]int{1, 2, 3})
	go addValues([]int{4, 5})
	go addValues([]int{6, 7, 8})

	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			if n := len(ringBuffer.Snapshot()); n > 3 {
				t.Errorf("snapshot larger than capacity: %d", n)
			}
		}()
	}
	wg.Wait()

	finalValues := ringBuffer.Snapshot()
	for _, value := range finalValues {
		if value < 1 || value > 8 {
			t.Errorf("Unexpected value in buffer: %d", value)
		}
	}
	if len(finalValues) != 3 {
		t.Errorf("Expected buffer size 3, but got %d", len(finalValues))
	}
}

func TestSightingHistory_Record(t *testing.T) {
	h := NewSightingHistory(8, 4)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var stats SightingStats
	for i := 0; i < 5; i++ {
		stats = h.Record("aa:bb:cc:dd:ee:ff", base.Add(time.Duration(i)*time.Minute), 5*time.Minute)
	}
	if stats.Count != 5 {
		t.Errorf("Expected 5 sightings within window, got %d", stats.Count)
	}
	if stats.Span != 4*time.Minute {
		t.Errorf("Expected span 4m, got %s", stats.Span)
	}

	later := h.Record("aa:bb:cc:dd:ee:ff", base.Add(20*time.Minute), 5*time.Minute)
	if later.Count != 1 {
		t.Errorf("Old sightings must fall out of the window, got %d", later.Count)
	}
}

func TestSightingHistory_EvictsLeastRecent(t *testing.T) {
	h := NewSightingHistory(4, 2)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	h.Record("a", base, time.Minute)
	h.Record("b", base.Add(time.Second), time.Minute)
	h.Record("c", base.Add(2*time.Second), time.Minute)

	if h.Len() != 2 {
		t.Fatalf("Expected 2 tracked keys, got %d", h.Len())
	}
	if stats := h.Record("a", base.Add(3*time.Second), time.Minute); stats.Count != 1 {
		t.Errorf("Evicted key must restart its history, got %d", stats.Count)
	}

	h.Reset()
	if h.Len() != 0 {
		t.Errorf("Reset must forget every key")
	}
}
