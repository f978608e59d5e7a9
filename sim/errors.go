// Sentinel errors shared across the simulation packages. Callers match them
// with errors.Is after unwrapping the context added by fmt.Errorf %w.

package sim

import "errors"

var (
	// ErrInvalidCapacity is returned when a requested station capacity is
	// below one machine or below the count the campaign already owns.
	ErrInvalidCapacity = errors.New("invalid station capacity")

	// ErrCampaignEnded is returned when a day run or purchase is attempted
	// after the campaign has reached its final day.
	ErrCampaignEnded = errors.New("campaign has ended")

	// ErrUnknownStage is returned when a configuration or plan references a
	// stage name that is not part of the line.
	ErrUnknownStage = errors.New("unknown stage")
)
