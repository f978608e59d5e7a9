package sim

import "fmt"

// Default campaign parameters. DefaultConfig assembles them; the CLI may
// override any of them per run.
const (
	// DefaultHoursPerDay is the simulated length of one working day. Events
	// scheduled at or after this horizon freeze into the next day.
	DefaultHoursPerDay = 24.0

	// DefaultArrivalRateMean is the mean gap between order arrivals in hours.
	DefaultArrivalRateMean = 1.2

	// DefaultRevenuePerOrder is earned for every completed order.
	DefaultRevenuePerOrder int64 = 1000

	// DefaultMaxLeadTimeForBonus is the lead-time threshold in hours; orders
	// at or under it earn full revenue, orders over it pay the late penalty.
	DefaultMaxLeadTimeForBonus = 24.0

	// DefaultLatePenalty is deducted from a late order's revenue.
	DefaultLatePenalty int64 = 500

	// DefaultMachineCost is the price of one machine at any station.
	DefaultMachineCost int64 = 20000

	// DefaultCampaignDays is the number of days in a campaign.
	DefaultCampaignDays = 30

	// DefaultStartingCash is the campaign's opening balance.
	DefaultStartingCash int64 = 50000

	// DefaultStartingMachines is the day-zero machine count per station.
	DefaultStartingMachines = 1
)

// Config groups the tunable parameters of a campaign and its day runs.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// Time model
	HoursPerDay     float64           // day horizon in hours
	ArrivalRateMean float64           // mean inter-arrival gap in hours
	ProcessTimes    map[Stage]float64 // mean service time per stage in hours

	// Economics, in whole currency units
	RevenuePerOrder     int64
	MaxLeadTimeForBonus float64 // lead-time threshold in hours
	LatePenalty         int64
	MachineCost         int64

	// Campaign shape
	CampaignDays     int
	StartingCash     int64
	StartingMachines int
}

// DefaultConfig returns the standard campaign parameters.
func DefaultConfig() *Config {
	return &Config{
		HoursPerDay:     DefaultHoursPerDay,
		ArrivalRateMean: DefaultArrivalRateMean,
		ProcessTimes: map[Stage]float64{
			StagePrep:     1.5,
			StageAssembly: 3.0,
			StageTesting:  2.0,
		},
		RevenuePerOrder:     DefaultRevenuePerOrder,
		MaxLeadTimeForBonus: DefaultMaxLeadTimeForBonus,
		LatePenalty:         DefaultLatePenalty,
		MachineCost:         DefaultMachineCost,
		CampaignDays:        DefaultCampaignDays,
		StartingCash:        DefaultStartingCash,
		StartingMachines:    DefaultStartingMachines,
	}
}

// Validate checks that the config describes a runnable campaign.
func (c *Config) Validate() error {
	if c.HoursPerDay <= 0 {
		return fmt.Errorf("hours per day must be positive, got %v", c.HoursPerDay)
	}
	if c.ArrivalRateMean <= 0 {
		return fmt.Errorf("arrival rate mean must be positive, got %v", c.ArrivalRateMean)
	}
	for _, stage := range ProcessStages() {
		mean, ok := c.ProcessTimes[stage]
		if !ok {
			return fmt.Errorf("missing process time for stage %s", stage)
		}
		if mean <= 0 {
			return fmt.Errorf("process time for stage %s must be positive, got %v", stage, mean)
		}
	}
	if c.RevenuePerOrder < 0 {
		return fmt.Errorf("revenue per order must not be negative, got %d", c.RevenuePerOrder)
	}
	if c.MaxLeadTimeForBonus <= 0 {
		return fmt.Errorf("max lead time for bonus must be positive, got %v", c.MaxLeadTimeForBonus)
	}
	if c.LatePenalty < 0 {
		return fmt.Errorf("late penalty must not be negative, got %d", c.LatePenalty)
	}
	if c.MachineCost < 0 {
		return fmt.Errorf("machine cost must not be negative, got %d", c.MachineCost)
	}
	if c.CampaignDays < 1 {
		return fmt.Errorf("campaign needs at least 1 day, got %d", c.CampaignDays)
	}
	if c.StartingMachines < 1 {
		return fmt.Errorf("%w: campaign starts with %d machines per station", ErrInvalidCapacity, c.StartingMachines)
	}
	return nil
}

// RevenueFor returns the revenue an order earns for the given lead time:
// full revenue at or under the threshold, penalized above it.
func (c *Config) RevenueFor(leadTime float64) int64 {
	if leadTime > c.MaxLeadTimeForBonus {
		return c.RevenuePerOrder - c.LatePenalty
	}
	return c.RevenuePerOrder
}

// MachineCounts maps each processing stage to its machine count for a day
// run. Counts are capacity requested for the day, not ownership; ownership
// and billing live in CampaignState.
type MachineCounts map[Stage]int

// NewMachineCounts returns the same count at every station.
func NewMachineCounts(perStation int) MachineCounts {
	counts := make(MachineCounts, len(ProcessStages()))
	for _, stage := range ProcessStages() {
		counts[stage] = perStation
	}
	return counts
}

// Validate checks every stage has at least one machine.
func (m MachineCounts) Validate() error {
	for _, stage := range ProcessStages() {
		count, ok := m[stage]
		if !ok {
			return fmt.Errorf("%w: no machine count for stage %s", ErrInvalidCapacity, stage)
		}
		if count < 1 {
			return fmt.Errorf("%w: stage %s needs at least 1 machine, got %d", ErrInvalidCapacity, stage, count)
		}
	}
	return nil
}

// Clone returns an independent copy.
func (m MachineCounts) Clone() MachineCounts {
	out := make(MachineCounts, len(m))
	for stage, count := range m {
		out[stage] = count
	}
	return out
}

// Total returns the machine count summed over all stations.
func (m MachineCounts) Total() int {
	total := 0
	for _, stage := range ProcessStages() {
		total += m[stage]
	}
	return total
}

func (m MachineCounts) String() string {
	s := "{"
	for i, stage := range ProcessStages() {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s:%d", stage, m[stage])
	}
	return s + "}"
}
