// Campaign state and its two legal transitions: ApplyResult, which banks a
// simulated day, and PurchaseMachines, which grows station capacity for cash.
// RunDay reads this state but never writes it.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// CampaignState is the durable state of one campaign between day runs.
type CampaignState struct {
	Config *Config

	// Day counts completed days, 0 through Config.CampaignDays. RunDay
	// simulates day Day+1; ApplyResult advances the counter.
	Day int

	// Cash is signed. The campaign never blocks a purchase for lack of
	// funds; going negative is a legitimate (losing) position.
	Cash int64

	// MachinesOwned per stage. Counts only ever grow.
	MachinesOwned MachineCounts

	// History accumulates every completed order across the campaign.
	History []CompletedOrder

	// Backlog is the in-flight carry-over from the last applied day,
	// replaced wholesale by each ApplyResult.
	Backlog []CarriedOrder

	// LastOrderID is the highest order ID assigned so far. Monotonic; IDs
	// are never reused.
	LastOrderID int64

	// Ledger records every cash movement.
	Ledger Ledger
}

// NewCampaignState creates a fresh campaign on day zero: starting cash, the
// configured machine count at every station, nothing in flight.
func NewCampaignState(cfg *Config) (*CampaignState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CampaignState{
		Config:        cfg,
		Day:           0,
		Cash:          cfg.StartingCash,
		MachinesOwned: NewMachineCounts(cfg.StartingMachines),
		History:       make([]CompletedOrder, 0),
		Backlog:       make([]CarriedOrder, 0),
		Ledger:        make(Ledger, 0),
	}, nil
}

// Ended reports whether the campaign has reached its final day. Once true it
// stays true: RunDay and PurchaseMachines both refuse.
func (s *CampaignState) Ended() bool {
	return s.Day >= s.Config.CampaignDays
}

// ApplyResult banks one simulated day into the campaign: appends the
// completed orders to history, adds the day's revenue to cash, replaces the
// backlog with the day's carry-over, and advances the day counter.
//
// The result must be for the campaign's next day; anything else is rejected
// so a result can never be applied twice or out of order.
func (s *CampaignState) ApplyResult(result *DayResult) error {
	if s.Ended() {
		return fmt.Errorf("%w: day %d of %d", ErrCampaignEnded, s.Day, s.Config.CampaignDays)
	}
	if result.Day != s.Day+1 {
		return fmt.Errorf("result is for day %d, campaign expects day %d", result.Day, s.Day+1)
	}

	s.History = append(s.History, result.Completed...)
	if result.Revenue != 0 {
		s.book(result.Day, TxnOrderRevenue, result.Revenue)
	}
	s.Backlog = result.CarriedOut
	s.LastOrderID = result.NextOrderID
	s.Day++

	logrus.Infof("Day %d applied: %d completed, %d carried, revenue %d, cash %d", result.Day, len(result.Completed), len(result.CarriedOut), result.Revenue, s.Cash)
	return nil
}

// PurchaseMachines raises station capacities to the requested counts and
// charges the increase immediately. Returns the total cost.
//
// Machines are never sold: any requested count below the owned count is
// rejected with ErrInvalidCapacity, leaving cash and counts untouched.
// Requesting exactly the owned counts is a valid no-op costing 0. Cash may
// go negative; the purchase is never blocked for lack of funds.
func (s *CampaignState) PurchaseMachines(requested MachineCounts) (int64, error) {
	if s.Ended() {
		return 0, fmt.Errorf("%w: day %d of %d", ErrCampaignEnded, s.Day, s.Config.CampaignDays)
	}
	if err := requested.Validate(); err != nil {
		return 0, err
	}
	added := 0
	for _, stage := range ProcessStages() {
		owned := s.MachinesOwned[stage]
		if requested[stage] < owned {
			return 0, fmt.Errorf("%w: stage %s owns %d machines, cannot reduce to %d", ErrInvalidCapacity, stage, owned, requested[stage])
		}
		added += requested[stage] - owned
	}
	if added == 0 {
		return 0, nil
	}

	cost := int64(added) * s.Config.MachineCost
	s.MachinesOwned = requested.Clone()
	s.book(s.Day+1, TxnMachinePurchase, -cost)

	logrus.Infof("Purchased %d machines for %d: now own %s, cash %d", added, cost, s.MachinesOwned, s.Cash)
	return cost, nil
}

// book applies a signed cash movement and appends the ledger entry.
func (s *CampaignState) book(day int, kind TransactionKind, amount int64) {
	s.Cash += amount
	s.Ledger = append(s.Ledger, CashTransaction{
		Day:     day,
		Kind:    kind,
		Amount:  amount,
		Balance: s.Cash,
	})
}
