// Package sim provides the core discrete-event simulation engine for
// container flow through a seaport terminal.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - container.go: Container lifecycle (arrived → crane → dwell → scan → loading → gate → exited)
//   - event.go: Event types that drive the simulation (Arrival, ServiceEnd, DwellEnd)
//   - simulator.go: The event loop, arrival process, and result assembly
//
// # Architecture
//
// The engine is single-threaded over logical time. A binary min-heap
// (scheduler.go) orders events by (timestamp, insertion sequence); resource
// pools (resource.go) model capacity-constrained FIFO service points such as
// quay cranes, scanners, truck loaders, and exit gates. Service durations and
// inter-arrival times are drawn from seeded samplers (sampler.go) through a
// partitioned RNG (rng.go) so whole runs replay bit-for-bit from one seed.
//
// The core performs no I/O: it consumes a validated SimulationConfig and
// produces an in-memory SimulationResult. Export and comparison of results
// happen in the cmd layer.
package sim
