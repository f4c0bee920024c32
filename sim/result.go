package sim

import "fmt"

// SimulationResult is the complete in-memory output of one run: per-container
// metric rows in completion order plus per-resource queue-length time series.
// The core performs no I/O; JSON export lives in the cmd layer.
type SimulationResult struct {
	Scenario    string  `json:"scenario"`
	Seed        int64   `json:"seed"`
	HorizonMins float64 `json:"horizon_mins"`

	Containers  []ContainerMetrics             `json:"containers"`
	QueueSeries map[string][]QueueLengthSample `json:"queue_series"`
	MaxExitTime float64                        `json:"max_exit_time"`

	ArrivalsGenerated   int `json:"arrivals_generated"`
	CompletedContainers int `json:"completed_containers"`
}

// PrintSummary displays aggregated KPIs at the end of a run.
func (r *SimulationResult) PrintSummary() {
	fmt.Println("=== Simulation Summary ===")
	fmt.Printf("Scenario             : %s (seed %d, horizon %.0f mins)\n", r.Scenario, r.Seed, r.HorizonMins)
	fmt.Printf("Containers completed : %d\n", r.CompletedContainers)
	if r.CompletedContainers == 0 {
		return
	}
	fmt.Printf("Max exit time        : %.2f mins\n", r.MaxExitTime)

	var total, dwell, crane, scan, load, gate float64
	for _, row := range r.Containers {
		total += row.TotalTime
		dwell += row.YardDwell
		crane += row.CraneWait
		scan += row.ScanWait
		load += row.LoadingWait
		gate += row.GateWait
	}
	n := float64(r.CompletedContainers)
	fmt.Printf("Average total time   : %.2f mins\n", total/n)
	fmt.Printf("Average yard dwell   : %.2f mins\n", dwell/n)
	fmt.Printf("Average crane wait   : %.2f mins\n", crane/n)
	fmt.Printf("Average scan wait    : %.2f mins\n", scan/n)
	fmt.Printf("Average loading wait : %.2f mins\n", load/n)
	fmt.Printf("Average gate wait    : %.2f mins\n", gate/n)
}
