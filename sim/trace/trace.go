// Package trace provides weight-trace recording for condition comparison.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Trace is an ordered sequence of (time, weight) samples for one condition.
// Times and Weights are always equal length.
type Trace struct {
	Condition string
	Times     []float64
	Weights   []float64
}

// New creates an empty Trace with capacity for the expected sample count.
func New(condition string, capacity int) *Trace {
	return &Trace{
		Condition: condition,
		Times:     make([]float64, 0, capacity),
		Weights:   make([]float64, 0, capacity),
	}
}

// Record appends one (time, weight) sample.
func (tr *Trace) Record(t, w float64) {
	tr.Times = append(tr.Times, t)
	tr.Weights = append(tr.Weights, w)
}

// Len returns the number of recorded samples.
func (tr *Trace) Len() int {
	return len(tr.Times)
}

// Final returns the last recorded weight, or 0 for an empty trace.
func (tr *Trace) Final() float64 {
	if len(tr.Weights) == 0 {
		return 0
	}
	return tr.Weights[len(tr.Weights)-1]
}
