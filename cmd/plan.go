package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/factory-sim/factory-sim/sim"
)

// CapacityPlan is a declarative schedule of machine purchases, loaded from
// YAML. Each entry names the 1-based day a station should reach a target
// machine count; targets below the owned count are no-ops, so a plan can
// never shrink capacity.
//
//	purchases:
//	  - day: 3
//	    machines:
//	      assembly: 2
//	  - day: 10
//	    machines:
//	      prep: 2
//	      testing: 2
type CapacityPlan struct {
	Purchases []PlannedPurchase `yaml:"purchases"`
}

// PlannedPurchase raises stations to target counts before the given day runs.
type PlannedPurchase struct {
	Day      int            `yaml:"day"`
	Machines map[string]int `yaml:"machines"`
}

// LoadCapacityPlan reads and validates a capacity plan YAML file.
func LoadCapacityPlan(path string) (*CapacityPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capacity plan: %w", err)
	}
	var plan CapacityPlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse capacity plan: %w", err)
	}
	if err := plan.validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (p *CapacityPlan) validate() error {
	for i, entry := range p.Purchases {
		if entry.Day < 1 {
			return fmt.Errorf("capacity plan entry %d: day must be 1 or later, got %d", i, entry.Day)
		}
		if len(entry.Machines) == 0 {
			return fmt.Errorf("capacity plan entry %d (day %d): no machines listed", i, entry.Day)
		}
		for name, count := range entry.Machines {
			if _, err := sim.ParseStage(name); err != nil {
				return fmt.Errorf("capacity plan entry %d (day %d): %w", i, entry.Day, err)
			}
			if count < 1 {
				return fmt.Errorf("capacity plan entry %d (day %d): station %s target must be at least 1, got %d", i, entry.Day, name, count)
			}
		}
	}
	return nil
}

// TargetsFor resolves the machine counts to request before the given 1-based
// day runs: the owned counts raised to any plan targets for that day.
// Several entries for the same day merge; the highest target wins.
func (p *CapacityPlan) TargetsFor(day int, owned sim.MachineCounts) sim.MachineCounts {
	requested := owned.Clone()
	for _, entry := range p.Purchases {
		if entry.Day != day {
			continue
		}
		for name, count := range entry.Machines {
			stage, err := sim.ParseStage(name)
			if err != nil {
				continue
			}
			if count > requested[stage] {
				requested[stage] = count
			}
		}
	}
	return requested
}
