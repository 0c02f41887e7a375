package sim

// Built-in condition names, also used as chart legend labels.
const (
	ConditionHealthy   = "Healthy"
	ConditionAD        = "AD"
	ConditionADTreated = "AD + Treatment"
)

// BaseParams groups the parameters shared by every condition: the time grid,
// the starting weight, and the tetanic stimulation window.
type BaseParams struct {
	TotalTime    float64 // total simulated duration in seconds
	Dt           float64 // time step in seconds (must be > 0, enforced at the CLI boundary)
	WInitial     float64 // synaptic weight before stimulation
	TetanusStart float64 // stimulation onset in seconds
	TetanusEnd   float64 // stimulation offset in seconds (exclusive)
}

// Params holds the full parameter record for one biological condition.
// Records are immutable once constructed; one instance per condition.
type Params struct {
	Condition    string  // condition label used in reports and the chart legend
	TotalTime    float64 // total simulated duration in seconds
	Dt           float64 // time step in seconds
	WInitial     float64 // synaptic weight before stimulation
	TetanusStart float64 // stimulation onset in seconds
	TetanusEnd   float64 // stimulation offset in seconds (exclusive)
	WMax         float64 // ceiling the weight approaches during stimulation
	LearningRate float64 // potentiation rate in 1/s
}

// DefaultBase returns the shared parameters used by the built-in conditions:
// a 100s run at dt=0.1s with a 5s tetanus starting at t=40s.
func DefaultBase() BaseParams {
	return BaseParams{
		TotalTime:    100,
		Dt:           0.1,
		WInitial:     1.0,
		TetanusStart: 40,
		TetanusEnd:   45,
	}
}

// NewParams builds a condition record from shared base parameters plus the
// two values that differ per condition.
func NewParams(condition string, base BaseParams, wMax, learningRate float64) Params {
	return Params{
		Condition:    condition,
		TotalTime:    base.TotalTime,
		Dt:           base.Dt,
		WInitial:     base.WInitial,
		TetanusStart: base.TetanusStart,
		TetanusEnd:   base.TetanusEnd,
		WMax:         wMax,
		LearningRate: learningRate,
	}
}

// Conditions returns the three modeled conditions over the given base
// parameters, in presentation order. A slice (not a map) so the run order and
// chart legend order stay fixed.
func Conditions(base BaseParams) []Params {
	return []Params{
		NewParams(ConditionHealthy, base, 2.5, 0.5),
		// In the AD condition the capacity to strengthen the synapse is
		// severely impaired: lower ceiling, 10x slower potentiation.
		NewParams(ConditionAD, base, 1.2, 0.05),
		// Treatment is modeled as restoring the synaptic parameters to
		// healthy levels.
		NewParams(ConditionADTreated, base, 2.5, 0.5),
	}
}

// DefaultConditions returns the built-in condition set over DefaultBase.
func DefaultConditions() []Params {
	return Conditions(DefaultBase())
}
