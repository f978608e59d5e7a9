package sim

import (
	"testing"
)

func TestWaitQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with orders [1, 2]
	wq := &WaitQueue{}
	o1 := &Order{ID: 1}
	o2 := &Order{ID: 2}
	wq.Enqueue(o1)
	wq.Enqueue(o2)

	// WHEN Peek() is called
	got := wq.Peek()

	// THEN it returns the front element without removing it
	if got != o1 {
		t.Errorf("Peek: got order %v, want %v", got.ID, o1.ID)
	}
	if wq.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", wq.Len())
	}
}

func TestWaitQueue_Peek_Empty_ReturnsNil(t *testing.T) {
	// GIVEN an empty queue
	wq := &WaitQueue{}

	// WHEN Peek() is called
	got := wq.Peek()

	// THEN it returns nil
	if got != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", got)
	}
}

func TestWaitQueue_Dequeue_RemovesInFIFOOrder(t *testing.T) {
	// GIVEN a queue with orders [1, 2, 3]
	wq := &WaitQueue{}
	wq.Enqueue(&Order{ID: 1})
	wq.Enqueue(&Order{ID: 2})
	wq.Enqueue(&Order{ID: 3})

	// WHEN all orders are dequeued
	ids := make([]int64, 0, 3)
	for wq.Len() > 0 {
		ids = append(ids, wq.Dequeue().ID)
	}

	// THEN they come out in enqueue order
	want := []int64{1, 2, 3}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("Dequeue order[%d]: got %d, want %d", i, id, want[i])
		}
	}
}

func TestWaitQueue_Dequeue_Empty_ReturnsNil(t *testing.T) {
	// GIVEN an empty queue
	wq := &WaitQueue{}

	// WHEN Dequeue() is called
	got := wq.Dequeue()

	// THEN it returns nil
	if got != nil {
		t.Errorf("Dequeue on empty queue: got %v, want nil", got)
	}
}

func TestWaitQueue_Items_ReturnsContents(t *testing.T) {
	// GIVEN a queue with orders [1, 2, 3]
	wq := &WaitQueue{}
	wq.Enqueue(&Order{ID: 1})
	wq.Enqueue(&Order{ID: 2})
	wq.Enqueue(&Order{ID: 3})

	// WHEN Items() is called
	items := wq.Items()

	// THEN it returns [1, 2, 3] in order
	if len(items) != 3 {
		t.Fatalf("Items: got %d elements, want 3", len(items))
	}
	wantIDs := []int64{1, 2, 3}
	for i, o := range items {
		if o.ID != wantIDs[i] {
			t.Errorf("Items[%d]: got %d, want %d", i, o.ID, wantIDs[i])
		}
	}
}

func TestWaitQueue_Items_EmptyQueue(t *testing.T) {
	// GIVEN an empty queue
	wq := &WaitQueue{}

	// WHEN Items() is called
	items := wq.Items()

	// THEN it returns an empty (or nil) slice
	if len(items) != 0 {
		t.Errorf("Items on empty queue: got %d elements, want 0", len(items))
	}
}
