package dom

import "math"

// AbstractTask is implemented by Task and RepeatedTask
type AbstractTask interface {
	Element
}

// Task runs a simulation of a model
type Task struct {
	Base
	ModelReference      string
	SimulationReference string
}

// TypeCode implements Element
func (*Task) TypeCode() TypeCode { return TypeTask }

// RepeatedTask runs its subtasks once for every value of its master
// range, applying the set values before each iteration
type RepeatedTask struct {
	Base
	// RangeID is the id of the master range, one of Ranges
	RangeID    string
	ResetModel bool
	Ranges     []Range
	SetValues  []*SetValue
	SubTasks   []*SubTask
}

// TypeCode implements Element
func (*RepeatedTask) TypeCode() TypeCode { return TypeRepeatedTask }

// Range returns the range with the given id, or nil
func (t *RepeatedTask) Range(id string) Range {
	for _, r := range t.Ranges {
		if r.SedBase().ID == id {
			return r
		}
	}
	return nil
}

func (t *RepeatedTask) addRange(r Range) {
	r.SedBase().parent = t
	t.Ranges = append(t.Ranges, r)
}

// CreateUniformRange appends a new uniform range
func (t *RepeatedTask) CreateUniformRange() *UniformRange {
	r := &UniformRange{}
	t.addRange(r)
	return r
}

// CreateVectorRange appends a new vector range
func (t *RepeatedTask) CreateVectorRange() *VectorRange {
	r := &VectorRange{}
	t.addRange(r)
	return r
}

// CreateFunctionalRange appends a new functional range
func (t *RepeatedTask) CreateFunctionalRange() *FunctionalRange {
	r := &FunctionalRange{}
	t.addRange(r)
	return r
}

// CreateSetValue appends a new set value
func (t *RepeatedTask) CreateSetValue() *SetValue {
	sv := &SetValue{}
	sv.parent = t
	t.SetValues = append(t.SetValues, sv)
	return sv
}

// CreateSubTask appends a new subtask
func (t *RepeatedTask) CreateSubTask() *SubTask {
	st := &SubTask{}
	st.parent = t
	t.SubTasks = append(t.SubTasks, st)
	return st
}

// Range is implemented by the range types of a repeated task
type Range interface {
	Element
}

// Uniform range spacing types
const (
	RangeLinear = "linear"
	RangeLog    = "log"
)

// UniformRange spans Start to End in NumberOfPoints intervals
type UniformRange struct {
	Base
	Start          float64
	End            float64
	NumberOfPoints int
	Type           string
}

// TypeCode implements Element
func (*UniformRange) TypeCode() TypeCode { return TypeUniformRange }

// Values returns the range's values: NumberOfPoints+1 of them,
// equally spaced for RangeLinear or geometrically for RangeLog
func (r *UniformRange) Values() []float64 {
	if r.NumberOfPoints < 0 {
		return nil
	}
	out := make([]float64, r.NumberOfPoints+1)
	for i := range out {
		if r.NumberOfPoints == 0 {
			out[i] = r.Start
			continue
		}
		f := float64(i) / float64(r.NumberOfPoints)
		if r.Type == RangeLog {
			out[i] = r.Start * math.Pow(r.End/r.Start, f)
		} else {
			out[i] = r.Start + (r.End-r.Start)*f
		}
	}
	return out
}

// VectorRange iterates over an explicit list of values
type VectorRange struct {
	Base
	Values []float64
}

// TypeCode implements Element
func (*VectorRange) TypeCode() TypeCode { return TypeVectorRange }

// FunctionalRange computes its values from another range of the same
// repeated task
type FunctionalRange struct {
	Base
	RangeID string
	Calculation
}

// TypeCode implements Element
func (*FunctionalRange) TypeCode() TypeCode { return TypeFunctionalRange }

// CreateVariable appends a new variable
func (r *FunctionalRange) CreateVariable() *Variable { return newVariable(r, &r.Variables) }

// CreateParameter appends a new parameter
func (r *FunctionalRange) CreateParameter() *Parameter { return newParameter(r, &r.Parameters) }

// SetValue changes a model value at each iteration of a repeated task
type SetValue struct {
	Base
	ModelReference string
	Target         string
	Symbol         string
	RangeID        string
	Calculation
}

// TypeCode implements Element
func (*SetValue) TypeCode() TypeCode { return TypeSetValue }

// CreateVariable appends a new variable
func (sv *SetValue) CreateVariable() *Variable { return newVariable(sv, &sv.Variables) }

// CreateParameter appends a new parameter
func (sv *SetValue) CreateParameter() *Parameter { return newParameter(sv, &sv.Parameters) }

// SubTask is a task run within a repeated task. Order, when set, sorts
// subtasks within an iteration.
type SubTask struct {
	Base
	Task  string
	Order *int
}

// TypeCode implements Element
func (*SubTask) TypeCode() TypeCode { return TypeSubTask }

// SetOrder sets the subtask order
func (st *SubTask) SetOrder(order int) { st.Order = &order }
