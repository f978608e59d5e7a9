package cmd

import (
	"bytes"
	"io"
	"os"
	"reflect"
	"testing"

	sim "github.com/factory-sim/factory-sim/sim"
	"github.com/stretchr/testify/assert"
)

func TestCampaignReport_PrintedToStdout(t *testing.T) {
	// GIVEN a campaign with a played day's worth of history
	state, err := sim.NewCampaignState(sim.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	result, err := sim.RunDay(state, state.MachinesOwned, sim.NewSimulationKey(42))
	if err != nil {
		t.Fatal(err)
	}
	if err := state.ApplyResult(result); err != nil {
		t.Fatal(err)
	}

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// WHEN the report is printed, as the run command does after the loop
	sim.BuildCampaignReport(state).Print()

	// Restore stdout and read captured output
	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	output := buf.String()

	// THEN the report lands on stdout with its headline figures
	assert.Contains(t, output, "=== Campaign Report ===")
	assert.Contains(t, output, "Days Played")
	assert.Contains(t, output, "Total Revenue")
	assert.Contains(t, output, "Cash")
}

// playCampaign mirrors the run command's day loop: purchase per plan, run the
// day under a derived key, apply.
func playCampaign(t *testing.T, cfg *sim.Config, plan *CapacityPlan, master sim.SimulationKey) *sim.CampaignState {
	t.Helper()
	state, err := sim.NewCampaignState(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for !state.Ended() {
		if plan != nil {
			requested := plan.TargetsFor(state.Day+1, state.MachinesOwned)
			if _, err := state.PurchaseMachines(requested); err != nil {
				t.Fatalf("day %d purchase: %v", state.Day+1, err)
			}
		}
		result, err := sim.RunDay(state, state.MachinesOwned, sim.DeriveDayKey(master, state.Day))
		if err != nil {
			t.Fatalf("day %d: %v", state.Day+1, err)
		}
		if err := state.ApplyResult(result); err != nil {
			t.Fatalf("day %d apply: %v", state.Day+1, err)
		}
	}
	return state
}

func TestCampaignLoop_SameMasterSeed_IdenticalCampaign(t *testing.T) {
	// GIVEN a short campaign configuration
	cfg := sim.DefaultConfig()
	cfg.CampaignDays = 4

	// WHEN the loop plays twice under the same master seed
	s1 := playCampaign(t, cfg, nil, sim.NewSimulationKey(42))
	s2 := playCampaign(t, cfg, nil, sim.NewSimulationKey(42))

	// THEN the campaigns are indistinguishable
	if s1.Cash != s2.Cash {
		t.Errorf("final cash differs: %d vs %d", s1.Cash, s2.Cash)
	}
	if !reflect.DeepEqual(s1.History, s2.History) {
		t.Errorf("histories differ: %d vs %d orders", len(s1.History), len(s2.History))
	}
	if !reflect.DeepEqual(s1.Backlog, s2.Backlog) {
		t.Errorf("final backlogs differ: %d vs %d orders", len(s1.Backlog), len(s2.Backlog))
	}
}

func TestCampaignLoop_DifferentMasterSeeds_DifferentCampaigns(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.CampaignDays = 4

	s1 := playCampaign(t, cfg, nil, sim.NewSimulationKey(100))
	s2 := playCampaign(t, cfg, nil, sim.NewSimulationKey(200))

	// Four days of Poisson arrivals under different seeds cannot produce the
	// same order history
	if reflect.DeepEqual(s1.History, s2.History) {
		t.Error("different master seeds produced identical campaigns")
	}
}

func TestCampaignLoop_PlanPurchasesOnSchedule(t *testing.T) {
	// GIVEN a plan that buys a second Assembly machine before day 2
	cfg := sim.DefaultConfig()
	cfg.CampaignDays = 3
	plan := &CapacityPlan{
		Purchases: []PlannedPurchase{
			{Day: 2, Machines: map[string]int{"assembly": 2}},
		},
	}

	// WHEN the loop plays the campaign
	state := playCampaign(t, cfg, plan, sim.NewSimulationKey(7))

	// THEN the machine was bought and billed exactly once
	assert.Equal(t, 2, state.MachinesOwned[sim.StageAssembly])
	assert.Equal(t, 1, state.MachinesOwned[sim.StagePrep])
	assert.Equal(t, -cfg.MachineCost, state.Ledger.TotalByKind(sim.TxnMachinePurchase))
	assert.True(t, state.Ledger.Reconciles(cfg.StartingCash, state.Cash))
}
