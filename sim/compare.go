// Before/after KPI comparison of two simulation runs. Congestion systems
// have long tails, and the mean alone can hide them, so every metric is
// summarized with median and tail percentiles alongside the mean.

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// compareMetrics are the headline KPIs for before/after comparisons:
// total_time is the main outcome, the stage waits explain where delay moved.
var compareMetrics = []struct {
	name string
	get  func(ContainerMetrics) float64
}{
	{"total_time", func(m ContainerMetrics) float64 { return m.TotalTime }},
	{"yard_dwell", func(m ContainerMetrics) float64 { return m.YardDwell }},
	{"crane_wait", func(m ContainerMetrics) float64 { return m.CraneWait }},
	{"scan_wait", func(m ContainerMetrics) float64 { return m.ScanWait }},
	{"loading_wait", func(m ContainerMetrics) float64 { return m.LoadingWait }},
	{"gate_wait", func(m ContainerMetrics) float64 { return m.GateWait }},
}

// SeriesStats summarizes one KPI series with central tendency and tails.
// Zero Count means the run completed no containers; the stats are then zero.
type SeriesStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
	P95    float64 `json:"p95"`
}

func summarizeSeries(values []float64) SeriesStats {
	if len(values) == 0 {
		return SeriesStats{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return SeriesStats{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.90, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}

// MetricComparison holds one KPI's baseline and after stats plus deltas
// (after - baseline; negative is an improvement).
type MetricComparison struct {
	Metric    string      `json:"metric"`
	Baseline  SeriesStats `json:"baseline"`
	After     SeriesStats `json:"after"`
	MeanDelta float64     `json:"mean_delta"`
	P90Delta  float64     `json:"p90_delta"`
}

// Comparison is the full before/after report across all headline KPIs.
type Comparison struct {
	BaselineScenario string             `json:"baseline_scenario"`
	AfterScenario    string             `json:"after_scenario"`
	Metrics          []MetricComparison `json:"metrics"`
}

// Compare computes per-metric summary stats and deltas for two runs.
func Compare(baseline, after *SimulationResult) *Comparison {
	cmp := &Comparison{
		BaselineScenario: baseline.Scenario,
		AfterScenario:    after.Scenario,
	}
	for _, metric := range compareMetrics {
		base := make([]float64, 0, len(baseline.Containers))
		for _, row := range baseline.Containers {
			base = append(base, metric.get(row))
		}
		aft := make([]float64, 0, len(after.Containers))
		for _, row := range after.Containers {
			aft = append(aft, metric.get(row))
		}
		baseStats := summarizeSeries(base)
		aftStats := summarizeSeries(aft)
		cmp.Metrics = append(cmp.Metrics, MetricComparison{
			Metric:    metric.name,
			Baseline:  baseStats,
			After:     aftStats,
			MeanDelta: aftStats.Mean - baseStats.Mean,
			P90Delta:  aftStats.P90 - baseStats.P90,
		})
	}
	return cmp
}

// Print displays the comparison as a fixed-width table (values in minutes).
func (c *Comparison) Print() {
	fmt.Printf("=== KPI Comparison: %s vs %s ===\n", c.BaselineScenario, c.AfterScenario)
	fmt.Printf("%-14s %12s %12s %12s %12s %12s\n",
		"metric", "base mean", "after mean", "mean delta", "base p90", "after p90")
	for _, m := range c.Metrics {
		fmt.Printf("%-14s %12.2f %12.2f %+12.2f %12.2f %12.2f\n",
			m.Metric, m.Baseline.Mean, m.After.Mean, m.MeanDelta, m.Baseline.P90, m.After.P90)
	}
}
