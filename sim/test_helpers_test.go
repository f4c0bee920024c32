package sim

// Shared helpers for engine tests.

// stubEvent is a minimal Event carrying an optional action, used to drive the
// scheduler and pools directly without the full lifecycle.
type stubEvent struct {
	time   float64
	action func(*Simulator)
}

func (e *stubEvent) Timestamp() float64 { return e.time }

func (e *stubEvent) Execute(sim *Simulator) {
	if e.action != nil {
		e.action(sim)
	}
}

// newTestConfig returns a small valid config with fixed service times so
// tests stay fast and fully deterministic.
func newTestConfig() *SimulationConfig {
	return &SimulationConfig{
		Name:                     "test",
		Seed:                     7,
		HorizonMins:              120,
		ShipInterarrivalMeanMins: 5.0,
		NumCranes:                2,
		NumScanners:              1,
		NumLoaders:               2,
		NumGates:                 1,
		CraneService:             DurationSpec{Type: "fixed", Value: 2.0},
		ScanService:              DurationSpec{Type: "fixed", Value: 5.0},
		LoadingService:           DurationSpec{Type: "triangular", Min: 6.0, Mode: 10.0, Max: 18.0},
		GateService:              DurationSpec{Type: "triangular", Min: 0.5, Mode: 1.0, Max: 2.0},
		DwellPolicy:              DwellPolicyBaseline,
	}
}

// newTestSimulator builds a simulator from newTestConfig. The config is
// known-good, so a constructor error is a test-harness bug.
func newTestSimulator() *Simulator {
	s, err := NewSimulator(newTestConfig())
	if err != nil {
		panic(err)
	}
	return s
}

// drain pops and executes events until the queue is empty, mirroring the body
// of Simulator.Run without seeding the arrival process.
func (sim *Simulator) drain() {
	for {
		ev, ok := sim.Scheduler.Pop()
		if !ok {
			return
		}
		sim.Clock = ev.Timestamp()
		ev.Execute(sim)
	}
}
