// Service-time and inter-arrival samplers. All draws go through a seeded
// *rand.Rand so whole runs are reproducible from one master seed.

package sim

import (
	"fmt"
	"math"
	"math/rand"
)

// Sampler generates non-negative durations in simulated minutes.
type Sampler interface {
	Sample(rng *rand.Rand) float64
}

// FixedSampler always returns the same duration (zero variance).
type FixedSampler struct {
	value float64
}

func (s *FixedSampler) Sample(_ *rand.Rand) float64 {
	return s.value
}

// ExponentialSampler produces exponentially-distributed durations.
// Used for ship inter-arrival times (Poisson arrival process).
type ExponentialSampler struct {
	mean float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) float64 {
	// Inverse CDF: -ln(1-U) * mean, U in [0,1)
	u := rng.Float64()
	return -math.Log(1-u) * s.mean
}

// TriangularSampler produces triangular(min, mode, max) durations.
// Used for loading and gate service times.
type TriangularSampler struct {
	min, mode, max float64
}

func (s *TriangularSampler) Sample(rng *rand.Rand) float64 {
	if s.max == s.min {
		return s.min
	}
	u := rng.Float64()
	c := (s.mode - s.min) / (s.max - s.min)
	if u < c {
		return s.min + math.Sqrt(u*(s.max-s.min)*(s.mode-s.min))
	}
	return s.max - math.Sqrt((1-u)*(s.max-s.min)*(s.max-s.mode))
}

// DiscreteSampler picks uniformly at random from a fixed set of durations.
// Used for dwell policies, whose day-lengths come in small curated sets.
type DiscreteSampler struct {
	values []float64
}

func (s *DiscreteSampler) Sample(rng *rand.Rand) float64 {
	return s.values[rng.Intn(len(s.values))]
}

// DurationSpec selects and parameterizes a service-time distribution for one
// stage. Type is "fixed" (Value) or "triangular" (Min/Mode/Max).
type DurationSpec struct {
	Type  string  `yaml:"type" json:"type"`
	Value float64 `yaml:"value,omitempty" json:"value,omitempty"`
	Min   float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Mode  float64 `yaml:"mode,omitempty" json:"mode,omitempty"`
	Max   float64 `yaml:"max,omitempty" json:"max,omitempty"`
}

// NewServiceSampler creates a Sampler from a DurationSpec.
func NewServiceSampler(spec DurationSpec) (Sampler, error) {
	switch spec.Type {
	case "fixed":
		if spec.Value < 0 {
			return nil, fmt.Errorf("fixed duration must be non-negative, got %v", spec.Value)
		}
		return &FixedSampler{value: spec.Value}, nil

	case "triangular":
		if spec.Min < 0 {
			return nil, fmt.Errorf("triangular min must be non-negative, got %v", spec.Min)
		}
		if spec.Min > spec.Mode {
			return nil, fmt.Errorf("triangular requires min <= mode, got min=%v mode=%v", spec.Min, spec.Mode)
		}
		if spec.Mode > spec.Max {
			return nil, fmt.Errorf("triangular requires mode <= max, got mode=%v max=%v", spec.Mode, spec.Max)
		}
		return &TriangularSampler{min: spec.Min, mode: spec.Mode, max: spec.Max}, nil

	default:
		return nil, fmt.Errorf("unknown duration type %q", spec.Type)
	}
}

// MinutesPerDay converts dwell day-lengths to simulated minutes.
const MinutesPerDay = 1440.0

// Dwell policy names. Each policy is a small discrete set of whole-day dwell
// lengths; the sampler picks one uniformly per container.
const (
	DwellPolicyBaseline = "baseline" // {3, 5, 7} days
	DwellPolicyImproved = "improved" // {2, 3, 4} days
)

var dwellPolicyDays = map[string][]float64{
	DwellPolicyBaseline: {3, 5, 7},
	DwellPolicyImproved: {2, 3, 4},
}

// NewDwellSampler creates the yard-dwell sampler for a named policy.
// Returned durations are in minutes.
func NewDwellSampler(policy string) (Sampler, error) {
	days, ok := dwellPolicyDays[policy]
	if !ok {
		return nil, fmt.Errorf("unknown dwell policy %q", policy)
	}
	mins := make([]float64, len(days))
	for i, d := range days {
		mins[i] = d * MinutesPerDay
	}
	return &DiscreteSampler{values: mins}, nil
}
