package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event must have a Timestamp (simulated minutes) and an Execute method
// that advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// ArrivalEvent represents the discharge arrival of a new container.
// The arrival process is self-perpetuating: executing one arrival schedules
// the next, until the horizon cuts generation off. Containers already in the
// system keep running past the horizon.
type ArrivalEvent struct {
	time float64 // Simulation time of arrival (minutes)
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute creates the container, issues its crane request and schedules the
// next arrival. Arrivals at or past the horizon are dropped without creating
// a container, which terminates the arrival process.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	if e.time >= sim.Horizon {
		logrus.Debugf("[t=%.2f] arrival past horizon %.2f, generation stops", e.time, sim.Horizon)
		return
	}
	c := sim.newContainer(e.time)
	logrus.Infof("<< Arrival: %s at t=%.2f", c.ID, e.time)
	sim.startCrane(c)
	sim.scheduleNextArrival()
}

// ServiceEndEvent fires when a resource pool finishes serving one admitted
// request. It returns the capacity unit to the pool, which then admits the
// head of the wait queue if any.
type ServiceEndEvent struct {
	time    float64
	Pool    *ResourcePool
	Pending *PendingRequest
}

// Timestamp returns the scheduled time of the ServiceEndEvent.
func (e *ServiceEndEvent) Timestamp() float64 {
	return e.time
}

// Execute the ServiceEndEvent.
func (e *ServiceEndEvent) Execute(sim *Simulator) {
	logrus.Debugf("[t=%.2f] service end on %s", e.time, e.Pool.Name())
	e.Pool.complete(sim, e.Pending)
}

// DwellEndEvent ends a container's yard dwell. Dwell is a pure timer: no
// resource is held while the container rests in the yard.
type DwellEndEvent struct {
	time      float64
	Container *Container
}

// Timestamp returns the scheduled time of the DwellEndEvent.
func (e *DwellEndEvent) Timestamp() float64 {
	return e.time
}

// Execute records yard exit and moves the container to the scan stage.
func (e *DwellEndEvent) Execute(sim *Simulator) {
	logrus.Debugf("[t=%.2f] dwell end for %s", e.time, e.Container.ID)
	sim.leaveYard(e.Container)
}
