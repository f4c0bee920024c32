// Defines the Container struct that models an individual import container in
// the simulation. Tracks arrival, per-stage timestamps, and yard entry/exit.

package sim

import (
	"fmt"
)

// Stage names one sequential processing step a container contends for.
type Stage string

const (
	StageCrane   Stage = "crane"
	StageScan    Stage = "scan"
	StageLoading Stage = "loading"
	StageGate    Stage = "gate"
)

// ContainerState represents the lifecycle state of a container.
type ContainerState string

const (
	StateArrived  ContainerState = "arrived"
	StateCraning  ContainerState = "craning"
	StateDwelling ContainerState = "dwelling"
	StateScanning ContainerState = "scanning"
	StateLoading  ContainerState = "loading"
	StateGating   ContainerState = "gating"
	StateExited   ContainerState = "exited"
)

// StageTimestamps records the three instants of one resource-gated stage:
// when the request was issued, when the pool admitted it, and when service
// finished.
type StageTimestamps struct {
	QueueEnter   float64 `json:"queue_enter"`
	ServiceStart float64 `json:"service_start"`
	ServiceEnd   float64 `json:"service_end"`
}

// Container models a single import container's passage through the terminal:
// discharge by crane, yard dwell, security scan, truck loading, gate-out.
//
// A container is created at arrival, mutated only by the stage currently
// processing it, and finalized into the metrics collector at gate-out. It is
// never reused or deleted mid-run.
type Container struct {
	ID string // Unique identifier for the container

	ArrivalTime   float64 // Simulated minute the container was discharged into the flow
	YardEntryTime float64 // Minute the container entered the yard (crane service end)
	YardExitTime  float64 // Minute the dwell timer expired and pickup began
	ExitTime      float64 // Minute the container cleared the exit gate

	State ContainerState

	// Stages maps stage name to its timestamps. Entries are created lazily
	// as the container reaches each stage.
	Stages map[Stage]*StageTimestamps
}

// NewContainer creates a container in the arrived state.
func NewContainer(id string, arrival float64) *Container {
	return &Container{
		ID:          id,
		ArrivalTime: arrival,
		State:       StateArrived,
		Stages:      make(map[Stage]*StageTimestamps),
	}
}

// StageTimes returns the timestamp record for a stage, creating it on first use.
func (c *Container) StageTimes(stage Stage) *StageTimestamps {
	st, ok := c.Stages[stage]
	if !ok {
		st = &StageTimestamps{}
		c.Stages[stage] = st
	}
	return st
}

// String returns a human-readable representation of a Container.
func (c *Container) String() string {
	return fmt.Sprintf("Container: (ID: %s, State: %s, ArrivalTime: %.2f)", c.ID, c.State, c.ArrivalTime)
}
