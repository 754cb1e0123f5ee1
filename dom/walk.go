package dom

import "github.com/pkg/errors"

// SkipChildren may be returned by a WalkFunc to skip the children of the
// element just visited
var SkipChildren = errors.New("skip children")

// WalkFunc is called by Walk for each element
type WalkFunc func(e Element) error

// Children returns the direct children of e in document order
func Children(e Element) []Element {
	var out []Element
	addVars := func(c *Calculation) {
		for _, v := range c.Variables {
			out = append(out, v)
		}
		for _, p := range c.Parameters {
			out = append(out, p)
		}
	}
	addAlgorithm := func(s Simulation) {
		if a := s.SimulationAlgorithm(); a != nil {
			out = append(out, a)
		}
	}
	switch e := e.(type) {
	case *Document:
		for _, dd := range e.DataDescriptions {
			out = append(out, dd)
		}
		for _, m := range e.Models {
			out = append(out, m)
		}
		for _, s := range e.Simulations {
			out = append(out, s)
		}
		for _, t := range e.Tasks {
			out = append(out, t)
		}
		for _, dg := range e.DataGenerators {
			out = append(out, dg)
		}
		for _, o := range e.Outputs {
			out = append(out, o)
		}
	case *DataDescription:
		for _, ds := range e.DataSources {
			out = append(out, ds)
		}
	case *DataSource:
		for _, sl := range e.Slices {
			out = append(out, sl)
		}
	case *Model:
		for _, c := range e.Changes {
			out = append(out, c)
		}
	case *ComputeChange:
		addVars(&e.Calculation)
	case *DataGenerator:
		addVars(&e.Calculation)
	case *FunctionalRange:
		addVars(&e.Calculation)
	case *SetValue:
		addVars(&e.Calculation)
	case *UniformTimeCourse:
		addAlgorithm(e)
	case *OneStep:
		addAlgorithm(e)
	case *SteadyState:
		addAlgorithm(e)
	case *Analysis:
		addAlgorithm(e)
	case *Algorithm:
		for _, p := range e.Parameters {
			out = append(out, p)
		}
	case *RepeatedTask:
		for _, r := range e.Ranges {
			out = append(out, r)
		}
		for _, sv := range e.SetValues {
			out = append(out, sv)
		}
		for _, st := range e.SubTasks {
			out = append(out, st)
		}
	case *Report:
		for _, ds := range e.DataSets {
			out = append(out, ds)
		}
	case *Plot2D:
		for _, c := range e.Curves {
			out = append(out, c)
		}
	case *Plot3D:
		for _, s := range e.Surfaces {
			out = append(out, s)
		}
	}
	return out
}

// Walk visits e and then, depth first in document order, all of its
// descendants. It stops at the first error returned by fn other than
// SkipChildren and returns it.
func Walk(e Element, fn WalkFunc) error {
	if err := fn(e); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	for _, c := range Children(e) {
		if err := Walk(c, fn); err != nil {
			return err
		}
	}
	return nil
}

// Walk visits every element of the document, see the package level Walk
func (d *Document) Walk(fn WalkFunc) error { return Walk(d, fn) }
