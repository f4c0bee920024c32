// Implements the capacity-constrained FIFO service points of the terminal:
// quay cranes, scanners, truck loaders, and exit gates. Each pool realizes a
// single-stage queue with arbitrary service distribution and FIFO discipline.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// PendingRequest captures "what to do once admitted" for one container at one
// stage: the service-time sampler plus the admit/finish continuations.
// Requests are opaque to the pool; all domain logic lives in the callbacks.
type PendingRequest struct {
	Container *Container // entity context (may be nil in tests)
	Service   Sampler    // non-negative service duration sampler
	OnAdmit   func(sim *Simulator, now float64)
	OnFinish  func(sim *Simulator, now float64)
}

// QueueLengthSample is one point of a pool's piecewise-constant queue-length
// time series.
type QueueLengthSample struct {
	Time   float64 `json:"time"`
	Length int     `json:"length"`
}

// ResourcePool is a capacity-constrained service point with a FIFO wait
// queue. Invariants: busy <= capacity always; the wait queue is non-empty
// only while busy == capacity. No balking, no reneging, no preemption.
type ResourcePool struct {
	name     string
	capacity int
	busy     int
	waitQ    waitQueue
	series   []QueueLengthSample
}

// NewResourcePool creates a pool. Zero or negative capacity is invalid
// configuration: a pool that can never admit would block the pipeline forever.
func NewResourcePool(name string, capacity int) (*ResourcePool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("resource pool %q requires capacity >= 1, got %d", name, capacity)
	}
	return &ResourcePool{name: name, capacity: capacity}, nil
}

// Name returns the pool's resource name.
func (p *ResourcePool) Name() string { return p.name }

// Capacity returns the configured number of capacity units.
func (p *ResourcePool) Capacity() int { return p.capacity }

// Busy returns the number of units currently in service.
func (p *ResourcePool) Busy() int { return p.busy }

// QueueLen returns the current wait-queue length.
func (p *ResourcePool) QueueLen() int { return p.waitQ.Len() }

// Series returns the recorded queue-length samples in time order.
func (p *ResourcePool) Series() []QueueLengthSample { return p.series }

// Request admits the pending request immediately if a capacity unit is free,
// otherwise appends it to the FIFO wait queue and records a queue-length
// sample at the current time.
func (p *ResourcePool) Request(sim *Simulator, pr *PendingRequest) {
	if p.busy < p.capacity {
		p.admit(sim, pr)
		return
	}
	p.waitQ.Enqueue(pr)
	logrus.Debugf("[t=%.2f] %s saturated (%d/%d busy), queue length %d",
		sim.Clock, p.name, p.busy, p.capacity, p.waitQ.Len())
	p.recordQueueLen(sim.Clock)
}

// admit takes one capacity unit, fires OnAdmit, samples the service duration
// and schedules the completion event. Negative samples are clamped to zero so
// a misbehaving sampler cannot violate causality.
func (p *ResourcePool) admit(sim *Simulator, pr *PendingRequest) {
	p.busy++
	now := sim.Clock
	if pr.OnAdmit != nil {
		pr.OnAdmit(sim, now)
	}
	d := pr.Service.Sample(sim.RNG.ForSubsystem(SubsystemService))
	if d < 0 {
		d = 0
	}
	sim.Schedule(&ServiceEndEvent{time: now + d, Pool: p, Pending: pr})
}

// complete frees the capacity unit, fires OnFinish, then hands the freed unit
// to the head of the wait queue (strict FIFO), recording the new queue length.
func (p *ResourcePool) complete(sim *Simulator, pr *PendingRequest) {
	p.busy--
	if pr.OnFinish != nil {
		pr.OnFinish(sim, sim.Clock)
	}
	if next := p.waitQ.Dequeue(); next != nil {
		p.recordQueueLen(sim.Clock)
		p.admit(sim, next)
	}
}

// recordQueueLen appends a (time, length) sample. A sample at an
// already-recorded time overwrites the prior one: only the latest length at a
// given instant is kept.
func (p *ResourcePool) recordQueueLen(t float64) {
	n := len(p.series)
	if n > 0 && p.series[n-1].Time == t {
		p.series[n-1].Length = p.waitQ.Len()
		return
	}
	p.series = append(p.series, QueueLengthSample{Time: t, Length: p.waitQ.Len()})
}

// extendSeries appends a final sample at the given time carrying the current
// queue length, so the series spans the full observed run for plotting.
// No-op for pools that never queued or when t does not advance the series.
func (p *ResourcePool) extendSeries(t float64) {
	n := len(p.series)
	if n == 0 || p.series[n-1].Time >= t {
		return
	}
	p.series = append(p.series, QueueLengthSample{Time: t, Length: p.waitQ.Len()})
}
