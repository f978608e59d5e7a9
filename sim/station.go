// Implements the Station, a finite pool of identical machines with a FIFO
// wait queue. Stations are the only contended resource in the simulation.

package sim

import (
	"fmt"
)

// Station models one stage's machine pool. At most Capacity orders hold a
// machine at once; the rest wait in FIFO order. Admission order is tracked
// so that day-boundary snapshots can reconstruct the exact resource state.
type Station struct {
	Stage    Stage
	Capacity int

	holders []*Order // orders holding a machine, in admission order
	waitq   *WaitQueue
}

// NewStation creates a station with the given machine count.
// Returns ErrInvalidCapacity when capacity is below one.
func NewStation(stage Stage, capacity int) (*Station, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: stage %s needs at least 1 machine, got %d", ErrInvalidCapacity, stage, capacity)
	}
	return &Station{
		Stage:    stage,
		Capacity: capacity,
		holders:  make([]*Order, 0, capacity),
		waitq:    &WaitQueue{},
	}, nil
}

// Acquire requests a machine for the order. If one is free the order is
// admitted immediately and Acquire returns true; otherwise the order joins
// the back of the wait queue and Acquire returns false.
func (s *Station) Acquire(o *Order) bool {
	if len(s.holders) < s.Capacity {
		s.admit(o)
		return true
	}
	o.Waiting = true
	s.waitq.Enqueue(o)
	return false
}

// Release returns the order's machine to the pool and, when orders are
// waiting, hands the machine to the front of the queue. The newly admitted
// order is returned so the caller can start its service; nil means the
// machine went idle. Panics if the order does not hold a machine here.
func (s *Station) Release(o *Order) *Order {
	idx := -1
	for i, h := range s.holders {
		if h.ID == o.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic(fmt.Sprintf("Release: order %d does not hold a machine at %s", o.ID, s.Stage))
	}
	s.holders = append(s.holders[:idx], s.holders[idx+1:]...)

	next := s.waitq.Dequeue()
	if next == nil {
		return nil
	}
	s.admit(next)
	return next
}

// ResumeHold re-admits an order that already held a machine when the
// previous day ended. It bypasses the queue: the machine was never released.
func (s *Station) ResumeHold(o *Order) {
	s.admit(o)
}

// admit gives the order a machine. Over-admission is a bug in the caller,
// not a recoverable condition.
func (s *Station) admit(o *Order) {
	if len(s.holders) >= s.Capacity {
		panic(fmt.Sprintf("station %s over capacity: %d machines, %d holders", s.Stage, s.Capacity, len(s.holders)))
	}
	o.Waiting = false
	s.holders = append(s.holders, o)
}

// InUse returns the number of machines currently held.
func (s *Station) InUse() int {
	return len(s.holders)
}

// QueueLen returns the number of orders waiting for a machine.
func (s *Station) QueueLen() int {
	return s.waitq.Len()
}

// Holders returns the orders currently holding machines, in admission order.
// The returned slice is internal storage; callers must not modify it.
func (s *Station) Holders() []*Order {
	return s.holders
}

// Waiting returns the queued orders, front first.
// The returned slice is internal storage; callers must not modify it.
func (s *Station) Waiting() []*Order {
	return s.waitq.Items()
}

func (s *Station) String() string {
	return fmt.Sprintf("Station(%s cap=%d busy=%d queued=%d)", s.Stage, s.Capacity, len(s.holders), s.waitq.Len())
}
