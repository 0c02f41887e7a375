package trace

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates statistics from one condition's Trace.
type Summary struct {
	Condition         string
	InitialWeight     float64
	FinalWeight       float64
	PeakWeight        float64
	PotentiationRatio float64 // FinalWeight / InitialWeight
	RangeClosed       float64 // fraction of (wMax - initial) the trace closed
	WindowMeanWeight  float64 // mean weight across the stimulation window
	HalfMaxTime       float64 // first time at which the trace crossed halfway to wMax; -1 if never
}

// Summarize computes aggregate statistics from a Trace against the
// condition's ceiling and stimulation window.
// Safe for nil or empty traces (returns zero-value fields, HalfMaxTime=-1).
func Summarize(tr *Trace, wMax, tetanusStart, tetanusEnd float64) *Summary {
	summary := &Summary{HalfMaxTime: -1}
	if tr == nil || tr.Len() == 0 {
		return summary
	}

	summary.Condition = tr.Condition
	summary.InitialWeight = tr.Weights[0]
	summary.FinalWeight = tr.Final()
	summary.PeakWeight = floats.Max(tr.Weights)

	if summary.InitialWeight != 0 {
		summary.PotentiationRatio = summary.FinalWeight / summary.InitialWeight
	}
	if gap := wMax - summary.InitialWeight; gap != 0 {
		summary.RangeClosed = (summary.FinalWeight - summary.InitialWeight) / gap
	}

	halfMax := summary.InitialWeight + 0.5*(wMax-summary.InitialWeight)
	var window []float64
	for i, t := range tr.Times {
		if tetanusStart <= t && t < tetanusEnd {
			window = append(window, tr.Weights[i])
		}
		if summary.HalfMaxTime < 0 && tr.Weights[i] >= halfMax && wMax > summary.InitialWeight {
			summary.HalfMaxTime = t
		}
	}
	if len(window) > 0 {
		summary.WindowMeanWeight = stat.Mean(window, nil)
	}

	return summary
}
