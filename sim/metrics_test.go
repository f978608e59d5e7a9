package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistribution_Empty(t *testing.T) {
	d := NewDistribution(nil)

	assert.Equal(t, Distribution{}, d)
	assert.Equal(t, 0, d.Count)
}

func TestNewDistribution_SingleValue(t *testing.T) {
	d := NewDistribution([]float64{6.5})

	assert.Equal(t, 1, d.Count)
	assert.Equal(t, 6.5, d.Mean)
	assert.Equal(t, 6.5, d.P50)
	assert.Equal(t, 6.5, d.P95)
	assert.Equal(t, 6.5, d.P99)
	assert.Equal(t, 6.5, d.Min)
	assert.Equal(t, 6.5, d.Max)
}

func TestNewDistribution_ConstantValues(t *testing.T) {
	values := []float64{3.0, 3.0, 3.0, 3.0}
	d := NewDistribution(values)

	assert.Equal(t, 4, d.Count)
	assert.Equal(t, 3.0, d.Mean)
	assert.Equal(t, 3.0, d.P50)
	assert.Equal(t, 3.0, d.P99)
	assert.Equal(t, 3.0, d.Min)
	assert.Equal(t, 3.0, d.Max)
}

func TestNewDistribution_SummaryShape(t *testing.T) {
	// GIVEN unsorted lead times
	values := []float64{12.0, 4.0, 30.0, 8.0, 16.0, 6.0, 22.0, 10.0}

	// WHEN summarizing
	d := NewDistribution(values)

	// THEN exact aggregates hold and the quantiles are ordered within range
	assert.Equal(t, 8, d.Count)
	assert.Equal(t, 4.0, d.Min)
	assert.Equal(t, 30.0, d.Max)
	assert.InDelta(t, 13.5, d.Mean, 1e-9)

	assert.GreaterOrEqual(t, d.P50, d.Min)
	assert.LessOrEqual(t, d.P50, d.P95)
	assert.LessOrEqual(t, d.P95, d.P99)
	assert.LessOrEqual(t, d.P99, d.Max)
}

func TestNewDistribution_DoesNotMutateInput(t *testing.T) {
	values := []float64{5.0, 1.0, 3.0}

	NewDistribution(values)

	assert.Equal(t, []float64{5.0, 1.0, 3.0}, values)
}

func TestBuildCampaignReport_AggregatesHistory(t *testing.T) {
	// GIVEN a campaign three days in, with a purchase and mixed lead times
	state := newTestCampaign(t)
	state.Day = 3
	state.Cash = 50000 + 3500 - 20000
	state.LastOrderID = 4
	state.History = []CompletedOrder{
		{OrderID: 1, Revenue: 1000, Day: 1, LeadTime: 6.5},
		{OrderID: 2, Revenue: 1000, Day: 2, LeadTime: 10.0},
		{OrderID: 3, Revenue: 500, Day: 3, LeadTime: 26.0},
		{OrderID: 4, Revenue: 1000, Day: 3, LeadTime: 24.0},
	}
	state.Backlog = []CarriedOrder{
		{OrderID: 5, ArrivalTime: 70.0, Stage: StageAssembly, Waiting: true},
	}
	state.MachinesOwned[StagePrep] = 2
	state.Ledger = Ledger{
		{Day: 1, Kind: TxnOrderRevenue, Amount: 1000, Balance: 51000},
		{Day: 2, Kind: TxnMachinePurchase, Amount: -20000, Balance: 31000},
		{Day: 2, Kind: TxnOrderRevenue, Amount: 1000, Balance: 32000},
		{Day: 3, Kind: TxnOrderRevenue, Amount: 1500, Balance: 33500},
	}

	// WHEN building the report
	report := BuildCampaignReport(state)

	// THEN the aggregates line up with the history and ledger
	assert.Equal(t, 3, report.DaysPlayed)
	assert.Equal(t, 4, report.OrdersCompleted)
	assert.Equal(t, 1, report.LateOrders, "only the 26h order is over the 24h threshold")
	assert.Equal(t, int64(3500), report.TotalRevenue)
	assert.Equal(t, int64(20000), report.PurchaseSpend)
	assert.Equal(t, int64(50000), report.StartingCash)
	assert.Equal(t, int64(33500), report.FinalCash)
	assert.Equal(t, 1, report.BacklogSize)

	assert.Equal(t, map[int]int64{1: 1000, 2: 1000, 3: 1500}, report.RevenueByDay)

	require.Equal(t, 4, report.LeadTimes.Count)
	assert.Equal(t, 6.5, report.LeadTimes.Min)
	assert.Equal(t, 26.0, report.LeadTimes.Max)
	assert.InDelta(t, 16.625, report.LeadTimes.Mean, 1e-9)

	// AND the reported machine counts are a copy, not the live map
	report.MachinesOwned[StagePrep] = 99
	assert.Equal(t, 2, state.MachinesOwned[StagePrep])
}

func TestBuildCampaignReport_FreshCampaign(t *testing.T) {
	// GIVEN a campaign that has not played a day
	state := newTestCampaign(t)

	// WHEN building the report
	report := BuildCampaignReport(state)

	// THEN everything is at its starting point
	assert.Equal(t, 0, report.DaysPlayed)
	assert.Equal(t, 0, report.OrdersCompleted)
	assert.Equal(t, 0, report.LateOrders)
	assert.Equal(t, 0, report.LeadTimes.Count)
	assert.Equal(t, int64(0), report.TotalRevenue)
	assert.Equal(t, int64(0), report.PurchaseSpend)
	assert.Equal(t, report.StartingCash, report.FinalCash)
	assert.Empty(t, report.RevenueByDay)
	assert.Equal(t, 0, report.BacklogSize)
}
