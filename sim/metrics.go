// Tracks per-condition results for final reporting.

package sim

import (
	"fmt"
	"time"

	"github.com/neudestifanoes/ltpsim/sim/trace"
)

// Metrics collects per-condition summaries during a run
// for final reporting. Useful for comparing potentiation
// across conditions without inspecting the chart.
type Metrics struct {
	Summaries []*trace.Summary
}

// NewMetrics creates an empty Metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{Summaries: make([]*trace.Summary, 0)}
}

// Add appends one condition's summary, preserving run order.
func (m *Metrics) Add(s *trace.Summary) {
	m.Summaries = append(m.Summaries, s)
}

// Print displays the per-condition results at the end of the run.
// Includes final/peak weight, potentiation ratio, and half-max crossing time.
func (m *Metrics) Print(elapsed time.Duration) {
	fmt.Println("=== LTP Simulation Results ===")
	for _, s := range m.Summaries {
		fmt.Printf("%-15s: final weight %.4f (peak %.4f), potentiation x%.2f, %.1f%% of range closed\n",
			s.Condition, s.FinalWeight, s.PeakWeight, s.PotentiationRatio, 100*s.RangeClosed)
		if s.HalfMaxTime >= 0 {
			fmt.Printf("%-15s  half-max reached at t=%.1fs, window mean %.4f\n",
				"", s.HalfMaxTime, s.WindowMeanWeight)
		} else {
			fmt.Printf("%-15s  half-max never reached, window mean %.4f\n",
				"", s.WindowMeanWeight)
		}
	}
	fmt.Printf("Elapsed              : %v\n", elapsed.Round(time.Microsecond))
}
