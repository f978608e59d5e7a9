// Defines the Order struct that models an individual manufacturing order in the simulation.
// Tracks arrival time, current stage, and service progress for day-boundary carry-over.

package sim

import (
	"fmt"
	"strings"
)

// Stage identifies a processing stage on the manufacturing line.
// Orders pass through the stages strictly in declared order:
// Prep → Assembly → Testing → Done.
type Stage int

const (
	StagePrep Stage = iota
	StageAssembly
	StageTesting
	StageDone
)

// stageNames maps stages to their display names. Done is a terminal
// pseudo-stage, not a station.
var stageNames = map[Stage]string{
	StagePrep:     "Prep",
	StageAssembly: "Assembly",
	StageTesting:  "Testing",
	StageDone:     "Done",
}

// String returns the display name of the stage.
func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Next returns the stage an order advances to after completing service at s.
// Advancing past Testing yields Done; advancing Done is a programming error.
func (s Stage) Next() Stage {
	switch s {
	case StagePrep:
		return StageAssembly
	case StageAssembly:
		return StageTesting
	case StageTesting:
		return StageDone
	default:
		panic(fmt.Sprintf("Next: no stage follows %s", s))
	}
}

// ProcessStages returns the processing stages in line order.
// Simulation code must iterate stations via this slice, never via map
// iteration, so that runs are deterministic.
func ProcessStages() []Stage {
	return []Stage{StagePrep, StageAssembly, StageTesting}
}

// ParseStage converts a case-insensitive stage name ("prep", "Assembly", ...)
// into a Stage. Done is not accepted: it is not a configurable station.
func ParseStage(name string) (Stage, error) {
	for _, s := range ProcessStages() {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of Prep, Assembly, Testing)", ErrUnknownStage, name)
}

// Order models a single order's passage through the line.
// Each order has:
// - a campaign-unique increasing ID
// - a global arrival timestamp (continuous hours since campaign start)
// - its current stage, and whether it is waiting or holding a machine there
// - the local time its current service completes, while holding
type Order struct {
	ID          int64   // Campaign-unique identifier, assigned at creation, never reused
	ArrivalTime float64 // Global arrival timestamp in hours (not day-relative)

	Stage   Stage // Current stage, or StageDone once off the line
	Waiting bool  // true: queued at Stage; false: holding a machine at Stage

	// ServiceEnd is the day-local time at which the current hold completes.
	// Only meaningful while the order holds a machine (Waiting == false and
	// Stage != StageDone). At the day boundary, ServiceEnd − horizon is the
	// exact remaining duration carried into the next day.
	ServiceEnd float64
}

// String returns a human-readable representation of an Order.
func (o Order) String() string {
	return fmt.Sprintf("Order: (ID: %d, Stage: %s, Waiting: %v, ArrivalTime: %.3f)", o.ID, o.Stage, o.Waiting, o.ArrivalTime)
}

// TimeInSystem returns the order's cumulative time in the system at the given
// global timestamp.
func (o Order) TimeInSystem(globalNow float64) float64 {
	return globalNow - o.ArrivalTime
}

// CarriedOrder is the day-boundary snapshot of one in-flight order. It holds
// everything the next day needs to resume the order exactly where it froze.
//
// Slice order encodes resume priority: per station, machine holders first in
// admission order, then the wait queue front to back.
type CarriedOrder struct {
	OrderID     int64
	ArrivalTime float64 // global hours, unchanged across days
	Stage       Stage
	Waiting     bool

	// Remaining is the unserved portion of the current hold, in hours.
	// Meaningful only when Waiting is false: a waiting order has not begun
	// service and samples a fresh duration when it is finally admitted.
	// Zero is valid and means the hold completes the instant the day opens.
	Remaining float64
}

// CompletedOrder records one order leaving the line, with the revenue it
// earned. Day is the 1-based campaign day the order completed on.
type CompletedOrder struct {
	OrderID        int64
	Revenue        int64
	Day            int
	LeadTime       float64 // global completion − global arrival, hours
	ArrivalTime    float64 // global hours
	CompletionTime float64 // global hours
}
