// Stage transitions of the import flow:
//
//	Arrived → CraneService → YardEntry → Dwell → Scan → Loading → GateOut → Exit
//
// Transitions are strictly sequential. Each resource-gated stage issues one
// pool request whose continuations stamp the timestamps and kick off the next
// stage; the dwell stage is a pure timer with no resource contention.

package sim

import "github.com/sirupsen/logrus"

// startStage issues the pool request for one resource-gated stage, stamping
// queue-enter now, service-start on admission and service-end on completion,
// then handing off to next.
func (sim *Simulator) startStage(c *Container, stage Stage, state ContainerState,
	pool *ResourcePool, svc Sampler, next func(*Simulator, *Container)) {

	st := c.StageTimes(stage)
	st.QueueEnter = sim.Clock
	pool.Request(sim, &PendingRequest{
		Container: c,
		Service:   svc,
		OnAdmit: func(_ *Simulator, now float64) {
			c.State = state
			st.ServiceStart = now
		},
		OnFinish: func(sim *Simulator, now float64) {
			st.ServiceEnd = now
			next(sim, c)
		},
	})
}

// startCrane contends for a quay crane to discharge the container.
func (sim *Simulator) startCrane(c *Container) {
	sim.startStage(c, StageCrane, StateCraning, sim.Cranes, sim.crane, (*Simulator).enterYard)
}

// enterYard stamps yard entry and schedules yard exit after a sampled dwell.
func (sim *Simulator) enterYard(c *Container) {
	c.State = StateDwelling
	c.YardEntryTime = sim.Clock
	dwell := sim.dwell.Sample(sim.RNG.ForSubsystem(SubsystemDwell))
	logrus.Debugf("[t=%.2f] %s enters yard, dwell %.0f mins", sim.Clock, c.ID, dwell)
	sim.Schedule(&DwellEndEvent{time: sim.Clock + dwell, Container: c})
}

// leaveYard stamps yard exit and contends for a scanner.
func (sim *Simulator) leaveYard(c *Container) {
	c.YardExitTime = sim.Clock
	sim.startStage(c, StageScan, StateScanning, sim.Scanners, sim.scan, (*Simulator).startLoading)
}

// startLoading contends for a truck loader.
func (sim *Simulator) startLoading(c *Container) {
	sim.startStage(c, StageLoading, StateLoading, sim.Loaders, sim.loading, (*Simulator).startGateOut)
}

// startGateOut contends for an exit gate.
func (sim *Simulator) startGateOut(c *Container) {
	sim.startStage(c, StageGate, StateGating, sim.Gates, sim.gate, (*Simulator).exit)
}

// exit finalizes the container's metrics row.
func (sim *Simulator) exit(c *Container) {
	c.State = StateExited
	c.ExitTime = sim.Clock
	logrus.Infof(">> Exit: %s at t=%.2f (total %.2f mins)", c.ID, c.ExitTime, c.ExitTime-c.ArrivalTime)
	sim.Metrics.Finalize(c)
}
