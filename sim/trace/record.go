// Package trace provides order-journey recording for line-level flow analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// OrderEvent identifies one kind of order lifecycle transition.
type OrderEvent string

const (
	// EventArrived marks an order entering the line.
	EventArrived OrderEvent = "arrived"
	// EventQueued marks an order joining a station's wait queue.
	EventQueued OrderEvent = "queued"
	// EventStarted marks an order beginning its hold on a machine.
	EventStarted OrderEvent = "started"
	// EventFinished marks an order finishing service at a station.
	EventFinished OrderEvent = "finished"
	// EventCompleted marks an order leaving the line.
	EventCompleted OrderEvent = "completed"
)

// OrderRecord captures a single lifecycle transition.
type OrderRecord struct {
	OrderID int64
	Clock   float64 // global hours
	Stage   string  // empty for line-level events (arrived, completed)
	Event   OrderEvent
}
