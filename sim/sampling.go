// Stochastic duration sampling for arrivals and station service times.
//
// Samplers are pure distributions; all randomness flows through the
// *rand.Rand handed to Sample, so determinism is owned by PartitionedRNG
// and tests can swap in FixedSampler for exact-arithmetic scenarios.

package sim

import (
	"math/rand"
)

// DurationSampler draws a duration in hours. Implementations must be
// stateless apart from their parameters: the same rng state always yields
// the same sequence of draws.
type DurationSampler interface {
	// Sample returns the next duration in hours. Always positive.
	Sample(rng *rand.Rand) float64
}

// ExponentialSampler draws exponentially-distributed durations with the
// given mean, matching a Poisson process when used for inter-arrival times.
type ExponentialSampler struct {
	Mean float64 // mean duration in hours
}

// NewExponentialSampler creates an ExponentialSampler. Panics if the mean is
// not positive: a zero or negative mean has no exponential distribution.
func NewExponentialSampler(mean float64) *ExponentialSampler {
	if mean <= 0 {
		panic("NewExponentialSampler: mean must be positive")
	}
	return &ExponentialSampler{Mean: mean}
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) float64 {
	return rng.ExpFloat64() * s.Mean
}

// FixedSampler always returns the same duration. Used by tests that need
// hand-computable queueing arithmetic.
type FixedSampler struct {
	Value float64
}

func (s *FixedSampler) Sample(rng *rand.Rand) float64 {
	return s.Value
}

// SamplerSet bundles the arrival sampler and the per-stage service samplers
// for one day run, together with the partitioned RNG their draws come from.
type SamplerSet struct {
	rng      *PartitionedRNG
	arrivals DurationSampler
	service  map[Stage]DurationSampler
}

// NewSamplerSet builds the default sampler set from a config: exponential
// inter-arrival times and exponential service times with the configured
// per-stage means.
func NewSamplerSet(cfg *Config, rng *PartitionedRNG) *SamplerSet {
	service := make(map[Stage]DurationSampler, len(cfg.ProcessTimes))
	for _, stage := range ProcessStages() {
		service[stage] = NewExponentialSampler(cfg.ProcessTimes[stage])
	}
	return &SamplerSet{
		rng:      rng,
		arrivals: NewExponentialSampler(cfg.ArrivalRateMean),
		service:  service,
	}
}

// NewFixedSamplerSet builds a sampler set with constant durations, keyed by
// the same config fields as NewSamplerSet. Tests use it to remove variance.
func NewFixedSamplerSet(cfg *Config, rng *PartitionedRNG) *SamplerSet {
	service := make(map[Stage]DurationSampler, len(cfg.ProcessTimes))
	for _, stage := range ProcessStages() {
		service[stage] = &FixedSampler{Value: cfg.ProcessTimes[stage]}
	}
	return &SamplerSet{
		rng:      rng,
		arrivals: &FixedSampler{Value: cfg.ArrivalRateMean},
		service:  service,
	}
}

// SampleInterArrival draws the next order inter-arrival gap in hours.
func (s *SamplerSet) SampleInterArrival() float64 {
	return s.arrivals.Sample(s.rng.ForSubsystem(SubsystemArrivals))
}

// SampleService draws a service duration for the given stage in hours.
func (s *SamplerSet) SampleService(stage Stage) float64 {
	sampler, ok := s.service[stage]
	if !ok {
		panic("SampleService: no sampler for stage " + stage.String())
	}
	return sampler.Sample(s.rng.ForSubsystem(SubsystemService(stage)))
}

// RNG exposes the underlying partitioned RNG, letting callers that need an
// extra stream derive it from the same key.
func (s *SamplerSet) RNG() *PartitionedRNG {
	return s.rng
}
