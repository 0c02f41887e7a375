package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neudestifanoes/ltpsim/sim/trace"
)

func TestMetrics_Add_PreservesRunOrder(t *testing.T) {
	m := NewMetrics()
	for _, p := range DefaultConditions() {
		tr := NewSimulator(p).Run()
		m.Add(trace.Summarize(tr, p.WMax, p.TetanusStart, p.TetanusEnd))
	}

	assert.Len(t, m.Summaries, 3)
	assert.Equal(t, ConditionHealthy, m.Summaries[0].Condition)
	assert.Equal(t, ConditionAD, m.Summaries[1].Condition)
	assert.Equal(t, ConditionADTreated, m.Summaries[2].Condition)

	// treatment restores healthy potentiation; AD stays far behind
	assert.Equal(t, m.Summaries[0].FinalWeight, m.Summaries[2].FinalWeight)
	assert.Greater(t, m.Summaries[0].RangeClosed, m.Summaries[1].RangeClosed)
}
