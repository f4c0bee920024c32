// Curated scenario presets. GetScenario is the controlled entrypoint for CLI
// runs: it returns a known-good baseline and a small "improved" variant for
// quick before/after comparisons. Anything beyond these two goes through a
// YAML config file plus bounded overrides.

package sim

import "fmt"

// baselineScenario is the source of truth for demo runs: synthetic Poisson
// arrivals, scaled service timings, one week of arrivals.
func baselineScenario() *SimulationConfig {
	return &SimulationConfig{
		Name:        "baseline",
		Description: "Baseline terminal with current capacities and the standard dwell policy.",

		Seed:                     42,
		HorizonMins:              7 * 24 * 60,
		ShipInterarrivalMeanMins: 6.0,

		NumCranes:   2,
		NumScanners: 1,
		NumLoaders:  2,
		NumGates:    1,

		// 30 crane moves/hour -> 2 minutes per move
		CraneService:   DurationSpec{Type: "fixed", Value: 2.0},
		ScanService:    DurationSpec{Type: "fixed", Value: 5.0},
		LoadingService: DurationSpec{Type: "triangular", Min: 6.0, Mode: 10.0, Max: 18.0},
		GateService:    DurationSpec{Type: "triangular", Min: 0.5, Mode: 1.0, Max: 2.0},

		DwellPolicy: DwellPolicyBaseline,
	}
}

// GetScenario returns a curated scenario by name ("baseline" or "improved").
// The improved variant bumps the landside capacities and switches to the
// reduced-dwell policy.
func GetScenario(name string) (*SimulationConfig, error) {
	switch name {
	case "baseline":
		return baselineScenario(), nil

	case "improved":
		cfg := baselineScenario()
		cfg.Name = "improved"
		cfg.Description = "Improved terminal: extra scanner, loader and gate plus the reduced-dwell policy."
		cfg.NumScanners++
		cfg.NumLoaders++
		cfg.NumGates++
		cfg.DwellPolicy = DwellPolicyImproved
		return cfg, nil

	default:
		return nil, fmt.Errorf("unknown scenario %q (expected baseline or improved)", name)
	}
}
