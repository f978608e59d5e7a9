package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event must have a Timestamp (day-local hours) and an Execute method
// that advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// OrderArrivalEvent represents a new order entering the line at Prep.
type OrderArrivalEvent struct {
	time  float64 // Day-local arrival time (hours)
	Order *Order  // The arriving order
}

// NewOrderArrivalEvent creates an arrival event for the given order.
func NewOrderArrivalEvent(time float64, o *Order) *OrderArrivalEvent {
	return &OrderArrivalEvent{time: time, Order: o}
}

// Timestamp returns the scheduled time of the OrderArrivalEvent.
func (e *OrderArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute admits the order to the Prep station, or queues it there.
func (e *OrderArrivalEvent) Execute(sim *Simulator) {
	logrus.Infof("<< Arrival: order %d at %.3fh", e.Order.ID, e.time)
	sim.handleArrival(e.time, e.Order)
}

// ServiceCompleteEvent fires when an order's hold on a machine ends. The
// order releases the machine, advances to its next stage, and the freed
// machine is granted to the station's next waiter.
type ServiceCompleteEvent struct {
	time  float64 // Scheduled completion time (day-local hours)
	Stage Stage   // Stage whose machine the order is holding
	Order *Order
}

// NewServiceCompleteEvent creates a completion event for an order at a stage.
func NewServiceCompleteEvent(time float64, stage Stage, o *Order) *ServiceCompleteEvent {
	return &ServiceCompleteEvent{time: time, Stage: stage, Order: o}
}

// Timestamp returns the scheduled time of the ServiceCompleteEvent.
func (e *ServiceCompleteEvent) Timestamp() float64 {
	return e.time
}

// Execute the ServiceCompleteEvent
func (e *ServiceCompleteEvent) Execute(sim *Simulator) {
	logrus.Infof("<< ServiceComplete: order %d done at %s at %.3fh", e.Order.ID, e.Stage, e.time)
	sim.handleServiceComplete(e.time, e.Stage, e.Order)
}
