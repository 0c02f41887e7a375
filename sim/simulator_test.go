package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inWindow reports whether grid time t falls inside p's stimulation window.
func inWindow(p Params, t float64) bool {
	return p.TetanusStart <= t && t < p.TetanusEnd
}

func TestRun_TraceLengthMatchesGrid(t *testing.T) {
	for _, p := range DefaultConditions() {
		tr := NewSimulator(p).Run()
		// 100s at dt=0.1 is exactly 1000 grid points.
		assert.Equal(t, 1000, tr.Len(), p.Condition)
		assert.Len(t, tr.Times, len(tr.Weights), p.Condition)
	}
}

func TestRun_ConstantOutsideWindow_NonDecreasingInside(t *testing.T) {
	for _, p := range DefaultConditions() {
		tr := NewSimulator(p).Run()
		for i := 0; i < tr.Len()-1; i++ {
			if inWindow(p, tr.Times[i]) {
				assert.GreaterOrEqual(t, tr.Weights[i+1], tr.Weights[i],
					"%s: weight decreased during stimulation at t=%g", p.Condition, tr.Times[i])
			} else {
				assert.Equal(t, tr.Weights[i], tr.Weights[i+1],
					"%s: weight changed outside stimulation at t=%g", p.Condition, tr.Times[i])
			}
		}
	}
}

func TestRun_WeightNeverExceedsCeiling(t *testing.T) {
	for _, p := range DefaultConditions() {
		tr := NewSimulator(p).Run()
		for i, w := range tr.Weights {
			require.LessOrEqual(t, w, p.WMax,
				"%s: weight above w_max at t=%g", p.Condition, tr.Times[i])
		}
	}
}

func TestRun_ZeroLearningRate_HoldsInitialWeight(t *testing.T) {
	// GIVEN a condition that cannot potentiate
	p := NewParams("frozen", DefaultBase(), 2.5, 0)

	// WHEN the simulation runs
	tr := NewSimulator(p).Run()

	// THEN the weight stays at the initial value for all time
	for _, w := range tr.Weights {
		require.Equal(t, p.WInitial, w)
	}
}

func TestRun_HealthyAtWindowEnd_StrictlyBetweenInitialAndCeiling(t *testing.T) {
	p := DefaultConditions()[0]
	tr := NewSimulator(p).Run()

	// t=45s is grid index 450 at dt=0.1.
	w45 := tr.Weights[450]
	assert.Greater(t, w45, p.WInitial)
	assert.Less(t, w45, p.WMax)
}

func TestRun_HealthyConvergesFasterThanAD(t *testing.T) {
	conditions := DefaultConditions()
	healthy, ad := conditions[0], conditions[1]

	wHealthy := NewSimulator(healthy).Run().Weights[450]
	wAD := NewSimulator(ad).Run().Weights[450]

	// Fraction of the available range closed by the end of the window.
	closedHealthy := (wHealthy - healthy.WInitial) / (healthy.WMax - healthy.WInitial)
	closedAD := (wAD - ad.WInitial) / (ad.WMax - ad.WInitial)
	assert.Greater(t, closedHealthy, closedAD)
}

func TestRun_TreatmentRestoresHealthyTrajectory(t *testing.T) {
	conditions := DefaultConditions()
	healthy := NewSimulator(conditions[0]).Run()
	treated := NewSimulator(conditions[2]).Run()

	require.Equal(t, healthy.Len(), treated.Len())
	assert.Equal(t, healthy.Weights, treated.Weights)
}

func TestRun_Deterministic(t *testing.T) {
	p := DefaultConditions()[1]
	first := NewSimulator(p).Run()
	second := NewSimulator(p).Run()
	assert.Equal(t, first.Weights, second.Weights)
	assert.Equal(t, first.Times, second.Times)
}

func TestSteps_ExactAndInexactDivision(t *testing.T) {
	tests := []struct {
		name      string
		totalTime float64
		dt        float64
		want      int
	}{
		{"exact", 100, 0.1, 1000},
		{"unit step", 100, 1, 100},
		{"inexact rounds up", 100, 0.3, 334},
		{"single step", 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := DefaultBase()
			base.TotalTime = tt.totalTime
			base.Dt = tt.dt
			s := NewSimulator(NewParams("x", base, 2.5, 0.5))
			assert.Equal(t, tt.want, s.Steps())
			assert.Equal(t, tt.want, s.Run().Len())
		})
	}
}
