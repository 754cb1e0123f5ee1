package dom

// Simulation is implemented by the simulation types
type Simulation interface {
	Element
	// SimulationAlgorithm returns the algorithm, or nil if none is set
	SimulationAlgorithm() *Algorithm
	// CreateAlgorithm replaces the algorithm with a new, empty one
	CreateAlgorithm() *Algorithm
}

type simulationBase struct {
	Base
	Algorithm *Algorithm
}

func (s *simulationBase) SimulationAlgorithm() *Algorithm { return s.Algorithm }

func (s *simulationBase) createAlgorithm(owner Simulation) *Algorithm {
	a := &Algorithm{}
	a.parent = owner
	s.Algorithm = a
	return a
}

// UniformTimeCourse simulates from InitialTime and records
// NumberOfPoints equally spaced intervals between OutputStartTime and
// OutputEndTime
type UniformTimeCourse struct {
	simulationBase
	InitialTime     float64
	OutputStartTime float64
	OutputEndTime   float64
	NumberOfPoints  int
}

// TypeCode implements Element
func (*UniformTimeCourse) TypeCode() TypeCode { return TypeUniformTimeCourse }

// CreateAlgorithm implements Simulation
func (s *UniformTimeCourse) CreateAlgorithm() *Algorithm { return s.createAlgorithm(s) }

// OneStep advances the model state by Step
type OneStep struct {
	simulationBase
	Step float64
}

// TypeCode implements Element
func (*OneStep) TypeCode() TypeCode { return TypeOneStep }

// CreateAlgorithm implements Simulation
func (s *OneStep) CreateAlgorithm() *Algorithm { return s.createAlgorithm(s) }

// SteadyState finds a steady state of the model
type SteadyState struct {
	simulationBase
}

// TypeCode implements Element
func (*SteadyState) TypeCode() TypeCode { return TypeSteadyState }

// CreateAlgorithm implements Simulation
func (s *SteadyState) CreateAlgorithm() *Algorithm { return s.createAlgorithm(s) }

// Analysis is a simulation whose semantics are given by its algorithm
type Analysis struct {
	simulationBase
}

// TypeCode implements Element
func (*Analysis) TypeCode() TypeCode { return TypeAnalysis }

// CreateAlgorithm implements Simulation
func (s *Analysis) CreateAlgorithm() *Algorithm { return s.createAlgorithm(s) }

// Algorithm names a KiSAO algorithm and its parameters
type Algorithm struct {
	Base
	KisaoID    string
	Parameters []*AlgorithmParameter
}

// TypeCode implements Element
func (*Algorithm) TypeCode() TypeCode { return TypeAlgorithm }

// CreateParameter appends a new algorithm parameter
func (a *Algorithm) CreateParameter() *AlgorithmParameter {
	p := &AlgorithmParameter{}
	p.parent = a
	a.Parameters = append(a.Parameters, p)
	return p
}

// AlgorithmParameter is a KiSAO parameter setting of an algorithm
type AlgorithmParameter struct {
	Base
	KisaoID string
	Value   string
}

// TypeCode implements Element
func (*AlgorithmParameter) TypeCode() TypeCode { return TypeAlgorithmParameter }
