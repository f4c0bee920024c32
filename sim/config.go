package sim

import (
	"errors"
	"fmt"
)

// SimulationConfig is the immutable input of one run: pool capacities,
// service-time distributions per stage, the arrival process, the dwell
// policy, the horizon, and the master seed. Constructed once, read-only
// thereafter.
type SimulationConfig struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Seed        int64   `yaml:"seed" json:"seed"`
	HorizonMins float64 `yaml:"horizon_mins" json:"horizon_mins"`

	// Mean inter-arrival time of discharged containers in minutes
	// (Poisson arrival process).
	ShipInterarrivalMeanMins float64 `yaml:"ship_interarrival_mean_mins" json:"ship_interarrival_mean_mins"`

	NumCranes   int `yaml:"num_cranes" json:"num_cranes"`
	NumScanners int `yaml:"num_scanners" json:"num_scanners"`
	NumLoaders  int `yaml:"num_loaders" json:"num_loaders"`
	NumGates    int `yaml:"num_gates" json:"num_gates"`

	CraneService   DurationSpec `yaml:"crane_service" json:"crane_service"`
	ScanService    DurationSpec `yaml:"scan_service" json:"scan_service"`
	LoadingService DurationSpec `yaml:"loading_service" json:"loading_service"`
	GateService    DurationSpec `yaml:"gate_service" json:"gate_service"`

	DwellPolicy string `yaml:"dwell_policy" json:"dwell_policy"`
}

// Validate checks the config before a run starts. All problems are reported
// together; a failed validation produces nothing.
func (c *SimulationConfig) Validate() error {
	var errs []error

	if c.HorizonMins < 0 {
		errs = append(errs, fmt.Errorf("horizon_mins must be non-negative, got %v", c.HorizonMins))
	}
	if c.ShipInterarrivalMeanMins <= 0 {
		errs = append(errs, fmt.Errorf("ship_interarrival_mean_mins must be positive, got %v", c.ShipInterarrivalMeanMins))
	}

	capacities := []struct {
		name string
		val  int
	}{
		{"num_cranes", c.NumCranes},
		{"num_scanners", c.NumScanners},
		{"num_loaders", c.NumLoaders},
		{"num_gates", c.NumGates},
	}
	for _, pool := range capacities {
		if pool.val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 1, got %d", pool.name, pool.val))
		}
	}

	services := []struct {
		name string
		spec DurationSpec
	}{
		{"crane_service", c.CraneService},
		{"scan_service", c.ScanService},
		{"loading_service", c.LoadingService},
		{"gate_service", c.GateService},
	}
	for _, svc := range services {
		if _, err := NewServiceSampler(svc.spec); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", svc.name, err))
		}
	}

	if _, err := NewDwellSampler(c.DwellPolicy); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
