package trace

import "sort"

// Summary aggregates statistics from a LineTrace.
type Summary struct {
	TotalRecords  int
	Arrivals      int
	QueueJoins    int
	ServiceStarts int
	Completions   int
	EventsByStage map[string]int // stage name → count of station-level records
	BusiestStage  string         // stage with the most queue joins
}

// Summarize computes aggregate statistics from a LineTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(lt *LineTrace) *Summary {
	summary := &Summary{
		EventsByStage: make(map[string]int),
	}
	if lt == nil {
		return summary
	}

	summary.TotalRecords = len(lt.Orders)
	queueJoinsByStage := make(map[string]int)
	for _, r := range lt.Orders {
		switch r.Event {
		case EventArrived:
			summary.Arrivals++
		case EventQueued:
			summary.QueueJoins++
			queueJoinsByStage[r.Stage]++
		case EventStarted:
			summary.ServiceStarts++
		case EventCompleted:
			summary.Completions++
		}
		if r.Stage != "" {
			summary.EventsByStage[r.Stage]++
		}
	}

	// Ties resolve to the lexically first stage so summaries are deterministic.
	stages := make([]string, 0, len(queueJoinsByStage))
	for stage := range queueJoinsByStage {
		stages = append(stages, stage)
	}
	sort.Strings(stages)
	best := 0
	for _, stage := range stages {
		if queueJoinsByStage[stage] > best {
			best = queueJoinsByStage[stage]
			summary.BusiestStage = stage
		}
	}

	return summary
}
