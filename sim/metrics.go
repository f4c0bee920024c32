// Derives per-container KPIs from lifecycle timestamps and collects them for
// final reporting.

package sim

// ContainerMetrics is one finalized metrics row: raw timestamps plus the
// derived waits and totals used for bottleneck analysis.
type ContainerMetrics struct {
	ID string `json:"container_id"`

	ArrivalTime   float64 `json:"arrival_time"`
	ExitTime      float64 `json:"exit_time"`
	YardEntryTime float64 `json:"yard_entry_time"`
	YardExitTime  float64 `json:"yard_exit_time"`

	Stages map[Stage]StageTimestamps `json:"stages"`

	TotalTime   float64 `json:"total_time"`   // exit - arrival
	YardDwell   float64 `json:"yard_dwell"`   // yard exit - yard entry
	CraneWait   float64 `json:"crane_wait"`   // crane service start - queue enter
	ScanWait    float64 `json:"scan_wait"`    // scan service start - queue enter
	LoadingWait float64 `json:"loading_wait"` // loading service start - queue enter
	GateWait    float64 `json:"gate_wait"`    // gate service start - queue enter
}

// MetricsCollector accumulates finalized container rows in completion order
// and tracks the maximum observed exit time.
type MetricsCollector struct {
	Rows        []ContainerMetrics
	MaxExitTime float64
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{Rows: make([]ContainerMetrics, 0)}
}

// safeDiff clips timestamp differences at zero, mirroring how the derived
// KPIs are consumed: a wait can never be negative.
func safeDiff(end, start float64) float64 {
	if end < start {
		return 0
	}
	return end - start
}

// stageWait returns serviceStart - queueEnter for a stage the container
// completed, or 0 if the stage was never reached.
func stageWait(c *Container, stage Stage) float64 {
	st, ok := c.Stages[stage]
	if !ok {
		return 0
	}
	return safeDiff(st.ServiceStart, st.QueueEnter)
}

// Finalize derives the KPI row for a container that reached Exit and appends
// it to the collection.
func (m *MetricsCollector) Finalize(c *Container) {
	stages := make(map[Stage]StageTimestamps, len(c.Stages))
	for name, st := range c.Stages {
		stages[name] = *st
	}
	m.Rows = append(m.Rows, ContainerMetrics{
		ID:            c.ID,
		ArrivalTime:   c.ArrivalTime,
		ExitTime:      c.ExitTime,
		YardEntryTime: c.YardEntryTime,
		YardExitTime:  c.YardExitTime,
		Stages:        stages,
		TotalTime:     safeDiff(c.ExitTime, c.ArrivalTime),
		YardDwell:     safeDiff(c.YardExitTime, c.YardEntryTime),
		CraneWait:     stageWait(c, StageCrane),
		ScanWait:      stageWait(c, StageScan),
		LoadingWait:   stageWait(c, StageLoading),
		GateWait:      stageWait(c, StageGate),
	})
	if c.ExitTime > m.MaxExitTime {
		m.MaxExitTime = c.ExitTime
	}
}

// Completed returns the number of finalized containers.
func (m *MetricsCollector) Completed() int {
	return len(m.Rows)
}
