// Campaign-level reporting: lead-time distributions, revenue by day, cash
// trajectory. Everything here is observational; nothing feeds back into
// simulation decisions.

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Distribution captures the statistical summary of a metric.
type Distribution struct {
	Mean  float64
	P50   float64
	P95   float64
	P99   float64
	Min   float64
	Max   float64
	Count int
}

// NewDistribution computes a Distribution from raw values.
// Returns zero-value Distribution for empty input.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Distribution{
		Mean:  stat.Mean(sorted, nil),
		P50:   stat.Quantile(0.50, stat.LinInterp, sorted, nil),
		P95:   stat.Quantile(0.95, stat.LinInterp, sorted, nil),
		P99:   stat.Quantile(0.99, stat.LinInterp, sorted, nil),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Count: len(sorted),
	}
}

// CampaignReport aggregates a finished (or in-progress) campaign for final
// reporting.
type CampaignReport struct {
	DaysPlayed      int
	OrdersCompleted int
	LateOrders      int // lead time over the bonus threshold

	LeadTimes Distribution // hours

	TotalRevenue  int64
	PurchaseSpend int64 // total spent on machines (positive number)
	StartingCash  int64
	FinalCash     int64

	// RevenueByDay maps 1-based completion day to the revenue earned that
	// day. Days with no completions are absent.
	RevenueByDay map[int]int64

	MachinesOwned MachineCounts
	BacklogSize   int // orders still in flight after the last applied day
}

// BuildCampaignReport derives a report from campaign state.
func BuildCampaignReport(state *CampaignState) *CampaignReport {
	leadTimes := make([]float64, 0, len(state.History))
	revenueByDay := make(map[int]int64)
	late := 0
	var revenue int64
	for _, c := range state.History {
		leadTimes = append(leadTimes, c.LeadTime)
		revenueByDay[c.Day] += c.Revenue
		revenue += c.Revenue
		if c.LeadTime > state.Config.MaxLeadTimeForBonus {
			late++
		}
	}

	return &CampaignReport{
		DaysPlayed:      state.Day,
		OrdersCompleted: len(state.History),
		LateOrders:      late,
		LeadTimes:       NewDistribution(leadTimes),
		TotalRevenue:    revenue,
		PurchaseSpend:   -state.Ledger.TotalByKind(TxnMachinePurchase),
		StartingCash:    state.Config.StartingCash,
		FinalCash:       state.Cash,
		RevenueByDay:    revenueByDay,
		MachinesOwned:   state.MachinesOwned.Clone(),
		BacklogSize:     len(state.Backlog),
	}
}

// Print displays the report at the end of a campaign.
func (r *CampaignReport) Print() {
	fmt.Println("=== Campaign Report ===")
	fmt.Printf("Days Played          : %d\n", r.DaysPlayed)
	fmt.Printf("Orders Completed     : %d\n", r.OrdersCompleted)
	fmt.Printf("Late Orders          : %d\n", r.LateOrders)
	if r.OrdersCompleted > 0 {
		fmt.Printf("Lead Time Mean       : %.2f h\n", r.LeadTimes.Mean)
		fmt.Printf("Lead Time P50/P95/P99: %.2f / %.2f / %.2f h\n", r.LeadTimes.P50, r.LeadTimes.P95, r.LeadTimes.P99)
		fmt.Printf("Lead Time Min/Max    : %.2f / %.2f h\n", r.LeadTimes.Min, r.LeadTimes.Max)
	}
	fmt.Printf("Total Revenue        : %d\n", r.TotalRevenue)
	fmt.Printf("Machine Spend        : %d\n", r.PurchaseSpend)
	fmt.Printf("Cash                 : %d -> %d\n", r.StartingCash, r.FinalCash)
	fmt.Printf("Machines Owned       : %s\n", r.MachinesOwned)
	fmt.Printf("Final Backlog        : %d orders\n", r.BacklogSize)

	if len(r.RevenueByDay) > 0 {
		days := make([]int, 0, len(r.RevenueByDay))
		for day := range r.RevenueByDay {
			days = append(days, day)
		}
		sort.Ints(days)
		fmt.Println("Revenue By Day:")
		for _, day := range days {
			fmt.Printf("  day %2d : %d\n", day, r.RevenueByDay[day])
		}
	}
}
