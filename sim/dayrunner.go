// Implements RunDay, the one-day orchestration: validate, restore yesterday's
// backlog, generate arrivals, run the event loop to the horizon, snapshot.
//
// RunDay never mutates the campaign state it reads. The client decides what
// to do with the DayResult; ApplyResult is the canonical consumer.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DayResult is the complete outcome of simulating one day. It carries
// everything ApplyResult needs to advance a campaign, plus observational
// statistics for reporting.
type DayResult struct {
	Day int           // 1-based campaign day that was simulated
	Key SimulationKey // seed the day ran under, for replay

	CarriedIn int // orders restored from the previous day's backlog
	Arrivals  int // new orders that entered the line

	Completed  []CompletedOrder // orders that left the line, completion order
	CarriedOut []CarriedOrder   // in-flight orders frozen at the boundary

	Revenue     int64 // sum of Completed revenue
	NextOrderID int64 // highest order ID assigned by the end of the day

	Stations map[Stage]StationStats
}

// RunDay simulates one day against the given campaign state without mutating
// it. The machine counts are the station capacities for this day; the key
// seeds all of the day's randomness.
//
// Validation failures return before any simulation happens:
//   - ErrCampaignEnded if the campaign has reached its final day
//   - ErrInvalidCapacity if any count is below one, below the owned count,
//     or below the number of in-service orders carried at that station
func RunDay(state *CampaignState, machines MachineCounts, key SimulationKey) (*DayResult, error) {
	if state.Ended() {
		return nil, fmt.Errorf("%w: day %d of %d", ErrCampaignEnded, state.Day, state.Config.CampaignDays)
	}
	if err := machines.Validate(); err != nil {
		return nil, err
	}
	for _, stage := range ProcessStages() {
		if owned := state.MachinesOwned[stage]; machines[stage] < owned {
			return nil, fmt.Errorf("%w: stage %s owns %d machines, cannot run with %d", ErrInvalidCapacity, stage, owned, machines[stage])
		}
	}

	simulator, err := NewSimulator(state.Config, machines, key, state.Day, state.LastOrderID)
	if err != nil {
		return nil, err
	}
	if err := simulator.RestoreBacklog(state.Backlog); err != nil {
		return nil, err
	}
	simulator.GenerateArrivals()

	logrus.Infof("Day %d starting: %d carried in, %d arrivals scheduled, seed %d", state.Day+1, simulator.CarriedIn(), simulator.Arrivals(), key)
	simulator.Run()

	carried := simulator.Snapshot()
	assertConservation(simulator, carried)

	var revenue int64
	for _, c := range simulator.Completed {
		revenue += c.Revenue
	}
	stats := make(map[Stage]StationStats, len(ProcessStages()))
	for _, stage := range ProcessStages() {
		stats[stage] = *simulator.Stats[stage]
	}

	return &DayResult{
		Day:         state.Day + 1,
		Key:         key,
		CarriedIn:   simulator.CarriedIn(),
		Arrivals:    simulator.Arrivals(),
		Completed:   simulator.Completed,
		CarriedOut:  carried,
		Revenue:     revenue,
		NextOrderID: simulator.LastOrderID(),
		Stations:    stats,
	}, nil
}

// assertConservation checks the day's order accounting identity:
// carried_in + arrivals == completed + carried_out. A violation means the
// engine lost or duplicated an order, which is never recoverable.
func assertConservation(simulator *Simulator, carried []CarriedOrder) {
	in := simulator.CarriedIn() + simulator.Arrivals()
	out := len(simulator.Completed) + len(carried)
	if in != out {
		panic(fmt.Sprintf("order conservation violated: %d carried in + %d arrived != %d completed + %d carried out",
			simulator.CarriedIn(), simulator.Arrivals(), len(simulator.Completed), len(carried)))
	}
}
