// Bounded scenario overrides. An override file tweaks a small, explicitly
// allowed subset of config knobs (capacities, arrival rate, horizon, dwell
// policy, seed) on top of a base scenario. Keeping the set closed makes
// before/after runs auditable: only named knobs can differ.

package sim

// Overrides holds optional replacement values for the allowed knobs.
// Nil fields leave the base config untouched. Unknown keys are rejected at
// decode time by the strict YAML loader in the cmd layer.
type Overrides struct {
	Seed        *int64   `yaml:"seed,omitempty"`
	HorizonMins *float64 `yaml:"horizon_mins,omitempty"`

	ShipInterarrivalMeanMins *float64 `yaml:"ship_interarrival_mean_mins,omitempty"`

	NumCranes   *int `yaml:"num_cranes,omitempty"`
	NumScanners *int `yaml:"num_scanners,omitempty"`
	NumLoaders  *int `yaml:"num_loaders,omitempty"`
	NumGates    *int `yaml:"num_gates,omitempty"`

	DwellPolicy *string `yaml:"dwell_policy,omitempty"`
}

// Apply merges the overrides into a copy of the base config and validates the
// result. The base config is not mutated; on validation failure nothing is
// returned.
func (o *Overrides) Apply(base *SimulationConfig) (*SimulationConfig, error) {
	merged := *base

	if o.Seed != nil {
		merged.Seed = *o.Seed
	}
	if o.HorizonMins != nil {
		merged.HorizonMins = *o.HorizonMins
	}
	if o.ShipInterarrivalMeanMins != nil {
		merged.ShipInterarrivalMeanMins = *o.ShipInterarrivalMeanMins
	}
	if o.NumCranes != nil {
		merged.NumCranes = *o.NumCranes
	}
	if o.NumScanners != nil {
		merged.NumScanners = *o.NumScanners
	}
	if o.NumLoaders != nil {
		merged.NumLoaders = *o.NumLoaders
	}
	if o.NumGates != nil {
		merged.NumGates = *o.NumGates
	}
	if o.DwellPolicy != nil {
		merged.DwellPolicy = *o.DwellPolicy
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}
