// Implements the WaitQueue, which holds the orders waiting at one station.
// Orders are enqueued when every machine at the station is busy.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of orders waiting for a machine.
// Each station owns one; orders leave strictly in arrival order when a
// machine frees up.
type WaitQueue struct {
	queue []*Order // FIFO queue of orders
}

// Enqueue adds an order to the back of the wait queue.
func (wq *WaitQueue) Enqueue(o *Order) {
	wq.queue = append(wq.queue, o)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of orders in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the order at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Order {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Items returns the queue contents for iteration, front first.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
func (wq *WaitQueue) Items() []*Order {
	return wq.queue
}

// Dequeue removes and returns the order at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Order {
	if len(wq.queue) == 0 {
		return nil
	}
	front := wq.queue[0]
	wq.queue = wq.queue[1:]
	return front
}
