// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/factory-sim/factory-sim/sim/trace"
)

// StationStats collects observational counters for one station over a day.
// Counters never feed back into simulation decisions.
type StationStats struct {
	Admitted  int // machine grants, including resumed holds
	Completed int // service completions at this station
	PeakBusy  int // max machines held at once
	PeakQueue int // max orders waiting at once
	EndBusy   int // machines held at the day boundary
	EndQueue  int // orders waiting at the day boundary
}

// Simulator is the core object that holds simulation time, system state, and
// the event loop for a single day. A fresh Simulator is built per day; the
// campaign layer threads state between days through DayResult.
type Simulator struct {
	// Clock is the day-local time in hours. It only moves forward.
	Clock float64
	// Horizon is the day length. Events at or past it stay frozen in the
	// queue and are carried into the next day as remaining work.
	Horizon float64
	// DayIndex is the zero-based campaign day this simulator runs.
	DayIndex int

	// EventQueue has all the simulator events, like arrival and service
	// completion events
	EventQueue *EventHeap
	// Stations holds the three machine pools. Iterate via ProcessStages(),
	// never by map order.
	Stations map[Stage]*Station
	// Samplers provides arrival and per-stage service durations. Exported so
	// tests can substitute fixed samplers.
	Samplers *SamplerSet

	// Completed accumulates orders that left the line today, in completion
	// order.
	Completed []CompletedOrder
	// Stats per station, observational only.
	Stats map[Stage]*StationStats
	// Trace collects order lifecycle records when enabled. nil disables
	// tracing.
	Trace *trace.LineTrace

	// live is the authoritative arena of on-line orders keyed by ID. Orders
	// enter on arrival or carry-in and leave only on completion; at the day
	// boundary it must agree exactly with the station snapshot.
	live map[int64]*Order

	cfg         *Config
	dayStart    float64 // global hours at local time zero
	nextOrderID int64   // last assigned order ID
	arrivals    int     // orders that entered the line today
	carriedIn   int     // orders restored from the previous day
}

// NewSimulator builds a one-day simulator with the given station capacities.
// lastOrderID is the highest order ID the campaign has assigned so far; new
// arrivals continue the sequence.
func NewSimulator(cfg *Config, counts MachineCounts, key SimulationKey, dayIndex int, lastOrderID int64) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := counts.Validate(); err != nil {
		return nil, err
	}

	stations := make(map[Stage]*Station, len(ProcessStages()))
	stats := make(map[Stage]*StationStats, len(ProcessStages()))
	for _, stage := range ProcessStages() {
		st, err := NewStation(stage, counts[stage])
		if err != nil {
			return nil, err
		}
		stations[stage] = st
		stats[stage] = &StationStats{}
	}

	return &Simulator{
		Clock:       0,
		Horizon:     cfg.HoursPerDay,
		DayIndex:    dayIndex,
		EventQueue:  NewEventHeap(),
		Stations:    stations,
		Samplers:    NewSamplerSet(cfg, NewPartitionedRNG(key)),
		Completed:   make([]CompletedOrder, 0),
		Stats:       stats,
		live:        make(map[int64]*Order),
		cfg:         cfg,
		dayStart:    float64(dayIndex) * cfg.HoursPerDay,
		nextOrderID: lastOrderID,
	}, nil
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	sim.EventQueue.Schedule(ev)
}

// Run executes events in timestamp order until the day boundary. Events
// scheduled at or past the horizon are left in the queue: the work they
// represent freezes and is reconstructed by Snapshot. The clock lands exactly
// on the horizon when the loop exits.
func (sim *Simulator) Run() {
	for sim.EventQueue.Len() > 0 {
		if sim.EventQueue.Peek().Timestamp() >= sim.Horizon {
			break
		}
		ev := sim.EventQueue.PopNext()
		if ev.Timestamp() < sim.Clock {
			panic(fmt.Sprintf("Clock went backwards: %.6f < %.6f", ev.Timestamp(), sim.Clock))
		}
		sim.Clock = ev.Timestamp()
		logrus.Infof("[%08.3fh] Executing %T", sim.Clock, ev)
		ev.Execute(sim)
	}
	sim.Clock = sim.Horizon
	logrus.Infof("[%08.3fh] Day %d ended: %d completed, %d still on the line", sim.Clock, sim.DayIndex+1, len(sim.Completed), len(sim.live))
}

// RestoreBacklog seeds the previous day's unfinished orders at local time
// zero. Holders resume their machines with the exact recorded remaining
// durations; waiters re-enter the FIFO queues and, if today's capacity has
// room, are admitted immediately with a fresh service draw.
//
// Returns ErrInvalidCapacity when a station has fewer machines than carried
// in-service orders, before touching any state.
func (sim *Simulator) RestoreBacklog(backlog []CarriedOrder) error {
	holding := make(map[Stage]int, len(ProcessStages()))
	for _, c := range backlog {
		if !c.Waiting {
			holding[c.Stage]++
		}
	}
	for _, stage := range ProcessStages() {
		if st := sim.Stations[stage]; holding[stage] > st.Capacity {
			return fmt.Errorf("%w: stage %s has %d in-service orders to resume but only %d machines", ErrInvalidCapacity, stage, holding[stage], st.Capacity)
		}
	}

	// Holders first so their machines are occupied before any waiter is
	// considered, whatever order the slice arrived in.
	for _, c := range backlog {
		if c.Waiting {
			continue
		}
		o := sim.restoreOrder(c)
		st := sim.Stations[c.Stage]
		st.ResumeHold(o)
		o.ServiceEnd = c.Remaining
		sim.Schedule(NewServiceCompleteEvent(c.Remaining, c.Stage, o))
		sim.Stats[c.Stage].Admitted++
		sim.notePeaks(c.Stage)
		sim.traceOrder(0, o, c.Stage.String(), trace.EventStarted)
	}
	for _, c := range backlog {
		if !c.Waiting {
			continue
		}
		o := sim.restoreOrder(c)
		st := sim.Stations[c.Stage]
		if st.Acquire(o) {
			sim.startService(0, st, o)
		} else {
			sim.traceOrder(0, o, c.Stage.String(), trace.EventQueued)
		}
		sim.notePeaks(c.Stage)
	}
	return nil
}

func (sim *Simulator) restoreOrder(c CarriedOrder) *Order {
	o := &Order{
		ID:          c.OrderID,
		ArrivalTime: c.ArrivalTime,
		Stage:       c.Stage,
		Waiting:     c.Waiting,
	}
	sim.live[o.ID] = o
	sim.carriedIn++
	return o
}

// GenerateArrivals pre-schedules today's order arrivals as a Poisson process:
// cumulative exponential gaps, stopping at the first arrival to land at or
// past the horizon. Every scheduled arrival therefore executes today, which
// keeps the day's order conservation exact.
func (sim *Simulator) GenerateArrivals() {
	t := 0.0
	for {
		t += sim.Samplers.SampleInterArrival()
		if t >= sim.Horizon {
			break
		}
		sim.scheduleArrival(t)
	}
}

// InjectArrival schedules a single arrival at the given day-local time and
// returns the created order. Tests use it to build exact scenarios. Panics
// if t is outside [0, Horizon): such an arrival could never execute.
func (sim *Simulator) InjectArrival(t float64) *Order {
	if t < 0 || t >= sim.Horizon {
		panic(fmt.Sprintf("InjectArrival: time %.4f outside day [0, %.1f)", t, sim.Horizon))
	}
	return sim.scheduleArrival(t)
}

func (sim *Simulator) scheduleArrival(t float64) *Order {
	sim.nextOrderID++
	o := &Order{
		ID:          sim.nextOrderID,
		ArrivalTime: sim.dayStart + t,
		Stage:       StagePrep,
	}
	sim.Schedule(NewOrderArrivalEvent(t, o))
	sim.arrivals++
	return o
}

// handleArrival admits the arriving order to Prep or queues it there.
func (sim *Simulator) handleArrival(now float64, o *Order) {
	sim.live[o.ID] = o
	sim.traceOrder(now, o, "", trace.EventArrived)
	st := sim.Stations[StagePrep]
	if st.Acquire(o) {
		sim.startService(now, st, o)
	} else {
		sim.traceOrder(now, o, StagePrep.String(), trace.EventQueued)
	}
	sim.notePeaks(StagePrep)
}

// handleServiceComplete finishes the order's hold at a station: the freed
// machine goes to the queue head (whose service starts now, duration sampled
// at grant), and the finished order advances to the next stage or completes.
func (sim *Simulator) handleServiceComplete(now float64, stage Stage, o *Order) {
	if o.Stage != stage {
		panic(fmt.Sprintf("service completion for order %d at %s but order is at %s", o.ID, stage, o.Stage))
	}
	st := sim.Stations[stage]
	next := st.Release(o)
	sim.Stats[stage].Completed++
	sim.traceOrder(now, o, stage.String(), trace.EventFinished)
	if next != nil {
		sim.startService(now, st, next)
	}

	o.Stage = o.Stage.Next()
	if o.Stage == StageDone {
		sim.recordCompletion(now, o)
		return
	}
	dst := sim.Stations[o.Stage]
	if dst.Acquire(o) {
		sim.startService(now, dst, o)
	} else {
		sim.traceOrder(now, o, o.Stage.String(), trace.EventQueued)
	}
	sim.notePeaks(o.Stage)
}

// startService begins the order's hold at the station: samples the duration
// and schedules the completion. Admission itself already happened.
func (sim *Simulator) startService(now float64, st *Station, o *Order) {
	duration := sim.Samplers.SampleService(st.Stage)
	o.ServiceEnd = now + duration
	sim.Schedule(NewServiceCompleteEvent(o.ServiceEnd, st.Stage, o))
	sim.Stats[st.Stage].Admitted++
	sim.traceOrder(now, o, st.Stage.String(), trace.EventStarted)
	if st.InUse() > sim.Stats[st.Stage].PeakBusy {
		sim.Stats[st.Stage].PeakBusy = st.InUse()
	}
}

// recordCompletion takes the order off the line and books its revenue.
func (sim *Simulator) recordCompletion(now float64, o *Order) {
	delete(sim.live, o.ID)
	completion := sim.dayStart + now
	lead := completion - o.ArrivalTime
	sim.Completed = append(sim.Completed, CompletedOrder{
		OrderID:        o.ID,
		Revenue:        sim.cfg.RevenueFor(lead),
		Day:            sim.DayIndex + 1,
		LeadTime:       lead,
		ArrivalTime:    o.ArrivalTime,
		CompletionTime: completion,
	})
	sim.traceOrder(now, o, "", trace.EventCompleted)
	logrus.Infof("Finished order %d: lead time %.3fh", o.ID, lead)
}

func (sim *Simulator) notePeaks(stage Stage) {
	st := sim.Stations[stage]
	stats := sim.Stats[stage]
	if st.InUse() > stats.PeakBusy {
		stats.PeakBusy = st.InUse()
	}
	if st.QueueLen() > stats.PeakQueue {
		stats.PeakQueue = st.QueueLen()
	}
}

// traceOrder records one lifecycle transition when tracing is enabled.
// Clocks are recorded in global hours.
func (sim *Simulator) traceOrder(now float64, o *Order, stage string, event trace.OrderEvent) {
	if !sim.Trace.Enabled() {
		return
	}
	sim.Trace.Record(trace.OrderRecord{
		OrderID: o.ID,
		Clock:   sim.dayStart + now,
		Stage:   stage,
		Event:   event,
	})
}

// Snapshot reconstructs the in-flight orders at the day boundary from
// station state: per station, holders first in admission order with their
// exact remaining durations, then the wait queue front to back. It never
// derives carry-over by subtracting completed IDs from arrivals.
//
// Also freezes each station's end-of-day occupancy into Stats. Call once,
// after Run.
func (sim *Simulator) Snapshot() []CarriedOrder {
	carried := make([]CarriedOrder, 0, len(sim.live))
	for _, stage := range ProcessStages() {
		st := sim.Stations[stage]
		for _, o := range st.Holders() {
			remaining := o.ServiceEnd - sim.Horizon
			if remaining < 0 {
				panic(fmt.Sprintf("order %d finished service at %.4f inside the day but still holds a machine at %s", o.ID, o.ServiceEnd, stage))
			}
			carried = append(carried, CarriedOrder{
				OrderID:     o.ID,
				ArrivalTime: o.ArrivalTime,
				Stage:       stage,
				Waiting:     false,
				Remaining:   remaining,
			})
		}
		for _, o := range st.Waiting() {
			carried = append(carried, CarriedOrder{
				OrderID:     o.ID,
				ArrivalTime: o.ArrivalTime,
				Stage:       stage,
				Waiting:     true,
			})
		}
		stats := sim.Stats[stage]
		stats.EndBusy = st.InUse()
		stats.EndQueue = st.QueueLen()
	}
	if len(carried) != len(sim.live) {
		panic(fmt.Sprintf("snapshot found %d orders on stations but %d are live", len(carried), len(sim.live)))
	}
	return carried
}

// CarriedIn returns how many orders were restored from the previous day.
func (sim *Simulator) CarriedIn() int { return sim.carriedIn }

// Arrivals returns how many orders entered the line today.
func (sim *Simulator) Arrivals() int { return sim.arrivals }

// LastOrderID returns the highest order ID assigned so far.
func (sim *Simulator) LastOrderID() int64 { return sim.nextOrderID }

// Lookup returns the live order with the given ID, or nil if it is not on
// the line.
func (sim *Simulator) Lookup(id int64) *Order {
	return sim.live[id]
}
