// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time, system state, and
// the event loop. The simulated clock lives here, never in ambient state, so
// independent runs (e.g. Monte Carlo batches) can coexist in one process.
//
// Single-threaded by design: all mutation happens synchronously inside one
// event-processing step, and the scheduler is the sole arbiter of order.
type Simulator struct {
	Clock   float64
	Horizon float64

	Scheduler *EventScheduler
	RNG       *PartitionedRNG

	Cranes   *ResourcePool
	Scanners *ResourcePool
	Loaders  *ResourcePool
	Gates    *ResourcePool

	Metrics *MetricsCollector
	Config  *SimulationConfig

	arrival Sampler // inter-arrival sampler (exponential)
	crane   Sampler
	scan    Sampler
	loading Sampler
	gate    Sampler
	dwell   Sampler

	nextContainerID   int
	arrivalsGenerated int
}

// NewSimulator validates the config and builds the run state. A config error
// aborts before anything is produced.
func NewSimulator(cfg *SimulationConfig) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	cranes, err := NewResourcePool("crane", cfg.NumCranes)
	if err != nil {
		return nil, err
	}
	scanners, err := NewResourcePool("scan", cfg.NumScanners)
	if err != nil {
		return nil, err
	}
	loaders, err := NewResourcePool("loading", cfg.NumLoaders)
	if err != nil {
		return nil, err
	}
	gates, err := NewResourcePool("gate", cfg.NumGates)
	if err != nil {
		return nil, err
	}

	// Validate() already vetted every spec; errors here are impossible.
	craneSvc, _ := NewServiceSampler(cfg.CraneService)
	scanSvc, _ := NewServiceSampler(cfg.ScanService)
	loadSvc, _ := NewServiceSampler(cfg.LoadingService)
	gateSvc, _ := NewServiceSampler(cfg.GateService)
	dwellSvc, _ := NewDwellSampler(cfg.DwellPolicy)

	return &Simulator{
		Clock:     0,
		Horizon:   cfg.HorizonMins,
		Scheduler: NewEventScheduler(),
		RNG:       NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
		Cranes:    cranes,
		Scanners:  scanners,
		Loaders:   loaders,
		Gates:     gates,
		Metrics:   NewMetricsCollector(),
		Config:    cfg,
		arrival:   &ExponentialSampler{mean: cfg.ShipInterarrivalMeanMins},
		crane:     craneSvc,
		scan:      scanSvc,
		loading:   loadSvc,
		gate:      gateSvc,
		dwell:     dwellSvc,
	}, nil
}

// Schedule pushes an event into the simulator's event heap.
func (sim *Simulator) Schedule(ev Event) {
	sim.Scheduler.Schedule(ev)
}

// Run seeds the arrival process, drains the event queue and assembles the
// result. Termination is guaranteed: arrivals stop past the horizon, every
// sampled duration is finite and non-negative, and every pool has capacity
// >= 1, so each container's stage chain completes.
func (sim *Simulator) Run() *SimulationResult {
	sim.scheduleNextArrival()

	for {
		ev, ok := sim.Scheduler.Pop()
		if !ok {
			break
		}
		// advance the clock
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[t=%09.2f] Executing %T", sim.Clock, ev)
		// process the event
		ev.Execute(sim)
	}
	logrus.Infof("[t=%09.2f] Simulation ended: %d arrivals, %d completed",
		sim.Clock, sim.arrivalsGenerated, sim.Metrics.Completed())

	return sim.buildResult()
}

// scheduleNextArrival draws the next inter-arrival gap and schedules the
// arrival event. The horizon check happens when the event fires, so the last
// scheduled arrival past the horizon is simply dropped.
func (sim *Simulator) scheduleNextArrival() {
	gap := sim.arrival.Sample(sim.RNG.ForSubsystem(SubsystemArrivals))
	sim.Schedule(&ArrivalEvent{time: sim.Clock + gap})
}

// newContainer mints the next container at its arrival time.
func (sim *Simulator) newContainer(arrival float64) *Container {
	c := NewContainer(fmt.Sprintf("C%d", sim.nextContainerID), arrival)
	sim.nextContainerID++
	sim.arrivalsGenerated++
	return c
}

// buildResult extends every queue series to the maximum observed exit time
// and packages the run output.
func (sim *Simulator) buildResult() *SimulationResult {
	pools := []*ResourcePool{sim.Cranes, sim.Scanners, sim.Loaders, sim.Gates}
	series := make(map[string][]QueueLengthSample, len(pools))
	for _, p := range pools {
		p.extendSeries(sim.Metrics.MaxExitTime)
		series[p.Name()] = p.Series()
	}

	return &SimulationResult{
		Scenario:            sim.Config.Name,
		Seed:                sim.Config.Seed,
		HorizonMins:         sim.Config.HorizonMins,
		Containers:          sim.Metrics.Rows,
		QueueSeries:         series,
		MaxExitTime:         sim.Metrics.MaxExitTime,
		ArrivalsGenerated:   sim.arrivalsGenerated,
		CompletedContainers: sim.Metrics.Completed(),
	}
}
