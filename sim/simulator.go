// sim/simulator.go
package sim

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/neudestifanoes/ltpsim/sim/trace"
)

// Simulator advances a single synaptic weight over a uniform time grid under
// one condition's parameters. Deterministic: the same Params always produce
// the same trace.
type Simulator struct {
	Params Params
}

// NewSimulator creates a Simulator for one condition.
func NewSimulator(p Params) *Simulator {
	return &Simulator{Params: p}
}

// Steps returns the number of grid points, ceil(TotalTime/Dt). The grid
// starts at t=0 and excludes t=TotalTime, so an exact division (100s at
// dt=0.1) yields TotalTime/Dt points. Ceil rather than a plain int cast
// because the float quotient of an exact division can land just under the
// true value.
func (s *Simulator) Steps() int {
	return int(math.Ceil(s.Params.TotalTime / s.Params.Dt))
}

// Run executes the simulation and returns the weight trace.
//
// At each grid point inside the stimulation window [TetanusStart, TetanusEnd)
// the weight moves toward WMax by LearningRate*Dt of the remaining gap, the
// discretized form of dw/dt = LearningRate*(WMax - w). Outside the window the
// weight holds constant.
func (s *Simulator) Run() *trace.Trace {
	p := s.Params
	steps := s.Steps()

	logrus.Debugf("condition %q: %d steps, window [%gs, %gs), w_max=%g, learning_rate=%g",
		p.Condition, steps, p.TetanusStart, p.TetanusEnd, p.WMax, p.LearningRate)

	tr := trace.New(p.Condition, steps)
	if steps == 0 {
		return tr
	}

	w := p.WInitial
	tr.Record(0, w)
	for i := 0; i < steps-1; i++ {
		t := float64(i) * p.Dt
		if p.TetanusStart <= t && t < p.TetanusEnd {
			w += p.LearningRate * (p.WMax - w) * p.Dt
		}
		tr.Record(float64(i+1)*p.Dt, w)
	}
	return tr
}
