package validate

import (
	"fmt"
	"regexp"

	"github.com/andaru/sedml/dom"
	"github.com/andaru/sedml/mathml"
	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/sedlog"
	"github.com/antchfx/xpath"
)

var (
	sidPattern    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	metaidPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.\-]*$`)
	kisaoPattern  = regexp.MustCompile(`^KISAO:\d{7}$`)
)

// ValidSId reports whether id conforms to the SId syntax: a letter or
// underscore followed by letters, digits and underscores
func ValidSId(id string) bool { return sidPattern.MatchString(id) }

// ValidKisaoID reports whether id has the form KISAO:nnnnnnn
func ValidKisaoID(id string) bool { return kisaoPattern.MatchString(id) }

// Document checks doc and returns the problems found
func Document(doc *dom.Document) *sederr.Log {
	c := &checker{doc: doc, errs: &sederr.Log{}, ids: map[string]dom.Element{}}
	_ = doc.Walk(func(e dom.Element) error {
		c.element(e)
		return nil
	})
	c.modelSources()
	c.subTaskCycles()
	sedlog.Logger().Debug().Int("diagnostics", c.errs.Len()).Msg("validated SED-ML document")
	return c.errs
}

type checker struct {
	doc  *dom.Document
	errs *sederr.Log
	ids  map[string]dom.Element
}

func (c *checker) add(e dom.Element, err *sederr.Error) {
	b := e.SedBase()
	if err.Line == 0 {
		err.Line, err.Column = b.Line, b.Column
	}
	if err.Element == "" {
		err.Element = e.TypeCode().String()
	}
	c.errs.Add(err)
}

func (c *checker) element(e dom.Element) {
	c.identity(e)
	switch e := e.(type) {
	case *dom.Model:
		c.model(e)
	case *dom.ComputeChange:
		c.target(e, e.Target)
		c.math(e, &e.Calculation, nil)
	case *dom.ChangeAttribute:
		c.target(e, e.Target)
	case *dom.AddXML:
		c.target(e, e.Target)
	case *dom.ChangeXML:
		c.target(e, e.Target)
	case *dom.RemoveXML:
		c.target(e, e.Target)
	case *dom.Variable:
		c.variable(e)
	case *dom.UniformTimeCourse:
		c.uniformTimeCourse(e)
	case *dom.OneStep:
		if e.Step <= 0 {
			c.add(e, sederr.New(sederr.SedSimulationTimeOrder, sederr.WithAttribute("step"),
				sederr.WithMessage(fmt.Sprintf("step %v of the <oneStep> element must be positive", e.Step))))
		}
	case *dom.Algorithm:
		c.kisao(e, e.KisaoID)
	case *dom.AlgorithmParameter:
		c.kisao(e, e.KisaoID)
	case *dom.Task:
		c.task(e)
	case *dom.RepeatedTask:
		c.repeatedTask(e)
	case *dom.UniformRange:
		if e.NumberOfPoints < 0 {
			c.add(e, sederr.New(sederr.SedmlUniformRangeNumberOfPointsMustBeInteger, sederr.WithAttribute("numberOfPoints"),
				sederr.WithMessage(fmt.Sprintf("numberOfPoints %d must not be negative", e.NumberOfPoints))))
		}
	case *dom.FunctionalRange:
		c.functionalRange(e)
	case *dom.SetValue:
		c.setValue(e)
	case *dom.SubTask:
		c.subTask(e)
	case *dom.DataGenerator:
		c.math(e, &e.Calculation, nil)
	case *dom.Report:
		if len(e.DataSets) == 0 {
			c.add(e, sederr.New(sederr.SedmlReportAllowedElements, sederr.WithMessage(minOccurs(e, 0, 1).Error())))
		}
	case *dom.DataSet:
		c.dataReference(e, "dataReference", e.DataReference, sederr.SedmlDataSetDataReferenceMustBeDataGenerator)
	case *dom.Plot2D:
		if len(e.Curves) == 0 {
			c.add(e, sederr.New(sederr.SedmlPlotAllowedElements, sederr.WithMessage(minOccurs(e, 0, 1).Error())))
		}
	case *dom.Curve:
		c.dataReference(e, "xDataReference", e.XDataReference, sederr.SedmlAbstractCurveXDataReferenceMustBeDataReference)
		c.dataReference(e, "yDataReference", e.YDataReference, sederr.SedmlCurveYDataReferenceMustBeDataGenerator)
	case *dom.Plot3D:
		if len(e.Surfaces) == 0 {
			c.add(e, sederr.New(sederr.SedmlPlotAllowedElements, sederr.WithMessage(minOccurs(e, 0, 1).Error())))
		}
	case *dom.Surface:
		c.dataReference(e, "xDataReference", e.XDataReference, sederr.SedmlAbstractCurveXDataReferenceMustBeDataReference)
		c.dataReference(e, "yDataReference", e.YDataReference, sederr.SedmlCurveYDataReferenceMustBeDataGenerator)
		c.dataReference(e, "zDataReference", e.ZDataReference, sederr.SedmlSurfaceZDataReferenceMustBeDataGenerator)
	}
}

// identity checks the id and metaid syntax of e, and that its id is not
// already used elsewhere in the document
func (c *checker) identity(e dom.Element) {
	b := e.SedBase()
	if b.MetaID != "" && !metaidPattern.MatchString(b.MetaID) {
		c.add(e, sederr.New(sederr.SedInvalidMetaidSyntax, sederr.WithAttribute("metaid"),
			sederr.WithMessage(fmt.Sprintf("the metaid '%s' is not a valid XML ID", b.MetaID))))
	}
	if b.ID == "" {
		return
	}
	if !ValidSId(b.ID) {
		c.add(e, sederr.InvalidID(b.ID, e.TypeCode().String()))
		return
	}
	if prev, ok := c.ids[b.ID]; ok {
		err := sederr.DuplicateID(b.ID, e.TypeCode().String())
		if pb := prev.SedBase(); pb.Line > 0 {
			err.Message += fmt.Sprintf(" (first used on line %d by <%s>)", pb.Line, prev.TypeCode())
		}
		c.add(e, err)
		return
	}
	c.ids[b.ID] = e
}

func (c *checker) model(m *dom.Model) {
	if m.Source == "" {
		c.add(m, sederr.MissingAttribute(sederr.SedmlModelAllowedAttributes, "source", "model"))
	}
}

// target checks that an XPath target compiles with the namespace
// prefixes in scope at e
func (c *checker) target(e dom.Element, target string) {
	if target == "" {
		c.add(e, sederr.MissingAttribute(sederr.SedmlChangeAllowedAttributes, "target", e.TypeCode().String()))
		return
	}
	if _, err := xpath.CompileWithNS(target, dom.NamespacesInScope(e)); err != nil {
		c.add(e, sederr.New(sederr.SedTargetSyntax, sederr.WithAttribute("target"),
			sederr.WithMessage(fmt.Sprintf("target %q: %v", target, err))))
	}
}

func (c *checker) variable(v *dom.Variable) {
	switch {
	case v.Target == "" && v.Symbol == "":
		c.add(v, sederr.New(sederr.SedVariableTargetOrSymbol,
			sederr.WithMessage(fmt.Sprintf("variable '%s' has neither a target nor a symbol", v.ID))))
	case v.Target != "" && v.Symbol != "":
		c.add(v, sederr.New(sederr.SedVariableTargetOrSymbol,
			sederr.WithMessage(fmt.Sprintf("variable '%s' has both a target and a symbol", v.ID))))
	case v.Target != "":
		c.target(v, v.Target)
	}

	if v.TaskReference != "" && c.doc.Task(v.TaskReference) == nil {
		c.add(v, sederr.BadReference(sederr.SedmlVariableTaskReferenceMustBeAbstractTask,
			"taskReference", "variable", v.TaskReference))
	}
	if v.ModelReference != "" && c.doc.Model(v.ModelReference) == nil {
		c.add(v, sederr.BadReference(sederr.SedmlVariableModelReferenceMustBeModel,
			"modelReference", "variable", v.ModelReference))
	}
	if _, ok := v.Parent().(*dom.DataGenerator); ok && v.TaskReference == "" {
		c.add(v, sederr.MissingAttribute(sederr.SedmlVariableAllowedAttributes, "taskReference", "variable",
			sederr.WithMessage(fmt.Sprintf("variable '%s' of a data generator must refer to a task", v.ID))))
	}
}

// math checks that calc has math and that every identifier in it names
// one of its variables or parameters, or one of extra
func (c *checker) math(e dom.Element, calc *dom.Calculation, extra map[string]bool) {
	if calc.Math == nil {
		c.add(e, sederr.MissingElement(sederr.SedMissingMath, "math", e.TypeCode().String()))
		return
	}
	for _, id := range mathml.Identifiers(calc.Math) {
		if calc.Variable(id) != nil || calc.Parameter(id) != nil || extra[id] {
			continue
		}
		c.add(e, sederr.New(sederr.SedMathUndefinedSymbol, sederr.WithMessage(fmt.Sprintf(
			"the math of %s refers to '%s', which is not a variable or parameter in scope", describe(e), id))))
	}
}

func (c *checker) uniformTimeCourse(s *dom.UniformTimeCourse) {
	if s.OutputStartTime < s.InitialTime {
		c.add(s, sederr.New(sederr.SedSimulationTimeOrder, sederr.WithAttribute("outputStartTime"), sederr.WithMessage(
			fmt.Sprintf("outputStartTime %v is before initialTime %v", s.OutputStartTime, s.InitialTime))))
	}
	if s.OutputEndTime < s.OutputStartTime {
		c.add(s, sederr.New(sederr.SedSimulationTimeOrder, sederr.WithAttribute("outputEndTime"), sederr.WithMessage(
			fmt.Sprintf("outputEndTime %v is before outputStartTime %v", s.OutputEndTime, s.OutputStartTime))))
	}
	if s.NumberOfPoints < 0 {
		c.add(s, sederr.New(sederr.SedmlUniformTimeCourseNumberOfPointsMustBeInteger, sederr.WithAttribute("numberOfPoints"),
			sederr.WithMessage(fmt.Sprintf("numberOfPoints %d must not be negative", s.NumberOfPoints))))
	}
}

func (c *checker) kisao(e dom.Element, id string) {
	if id == "" {
		c.add(e, sederr.MissingAttribute(sederr.SedmlAlgorithmAllowedAttributes, "kisaoID", e.TypeCode().String()))
		return
	}
	if !ValidKisaoID(id) {
		c.add(e, sederr.New(sederr.SedKisaoIDSyntax, sederr.WithAttribute("kisaoID"),
			sederr.WithMessage(fmt.Sprintf("'%s' is not a KiSAO identifier", id))))
	}
}

func (c *checker) task(t *dom.Task) {
	if c.doc.Model(t.ModelReference) == nil {
		c.add(t, sederr.BadReference(sederr.SedmlTaskModelReferenceMustBeModel, "modelReference", "task", t.ModelReference))
	}
	if c.doc.Simulation(t.SimulationReference) == nil {
		c.add(t, sederr.BadReference(sederr.SedmlTaskSimulationReferenceMustBeSimulation,
			"simulationReference", "task", t.SimulationReference))
	}
}

func (c *checker) repeatedTask(t *dom.RepeatedTask) {
	if t.RangeID == "" {
		c.add(t, sederr.MissingAttribute(sederr.SedmlRepeatedTaskAllowedAttributes, "range", "repeatedTask"))
	} else if t.Range(t.RangeID) == nil {
		c.add(t, sederr.BadReference(sederr.SedmlRepeatedTaskRangeMustBeRange, "range", "repeatedTask", t.RangeID))
	}
	if len(t.SubTasks) == 0 {
		c.add(t, sederr.New(sederr.SedEmptyListElement, sederr.WithMessage(minOccurs(t, 0, 1).Error())))
	}
}

// rangeIDs returns the ids of the ranges of the repeated task owning e
func rangeIDs(e dom.Element) map[string]bool {
	rt, ok := e.Parent().(*dom.RepeatedTask)
	if !ok {
		return nil
	}
	ids := make(map[string]bool, len(rt.Ranges))
	for _, r := range rt.Ranges {
		if id := r.SedBase().ID; id != "" {
			ids[id] = true
		}
	}
	return ids
}

func (c *checker) functionalRange(r *dom.FunctionalRange) {
	ranges := rangeIDs(r)
	switch {
	case r.RangeID == "":
	case r.RangeID == r.ID:
		c.add(r, sederr.BadReference(sederr.SedmlFunctionalRangeRangeMustBeRange, "range", "functionalRange", r.RangeID,
			sederr.WithMessage(fmt.Sprintf("the functional range '%s' refers to itself", r.ID))))
	case !ranges[r.RangeID]:
		c.add(r, sederr.BadReference(sederr.SedmlFunctionalRangeRangeMustBeRange, "range", "functionalRange", r.RangeID))
	}
	c.math(r, &r.Calculation, ranges)
}

func (c *checker) setValue(sv *dom.SetValue) {
	if c.doc.Model(sv.ModelReference) == nil {
		c.add(sv, sederr.BadReference(sederr.SedmlSetValueModelReferenceMustBeModel,
			"modelReference", "setValue", sv.ModelReference))
	}
	ranges := rangeIDs(sv)
	if sv.RangeID != "" && !ranges[sv.RangeID] {
		c.add(sv, sederr.BadReference(sederr.SedmlSetValueRangeMustBeRange, "range", "setValue", sv.RangeID))
	}
	if sv.Target != "" {
		c.target(sv, sv.Target)
	}
	c.math(sv, &sv.Calculation, ranges)
}

func (c *checker) subTask(st *dom.SubTask) {
	if c.doc.Task(st.Task) == nil {
		c.add(st, sederr.BadReference(sederr.SedmlSubTaskTaskMustBeAbstractTask, "task", "subTask", st.Task))
		return
	}
	if rt, ok := st.Parent().(*dom.RepeatedTask); ok && rt.ID == st.Task {
		c.add(st, sederr.New(sederr.SedSubTaskSelfReference,
			sederr.WithMessage(fmt.Sprintf("the subTask refers to its own repeatedTask '%s'", rt.ID))))
	}
}

func (c *checker) dataReference(e dom.Element, attr, ref string, code sederr.Code) {
	if ref == "" {
		c.add(e, sederr.MissingAttribute(code, attr, e.TypeCode().String()))
		return
	}
	if c.doc.DataGenerator(ref) == nil {
		c.add(e, sederr.BadReference(code, attr, e.TypeCode().String(), ref))
	}
}

// modelSources reports models whose source chain, followed through other
// model ids, returns to the model itself
func (c *checker) modelSources() {
	for _, m := range c.doc.Models {
		seen := map[*dom.Model]bool{m: true}
		for next := c.doc.Model(m.Source); next != nil; next = c.doc.Model(next.Source) {
			if next == m {
				c.add(m, sederr.New(sederr.SedModelSourceCycle, sederr.WithAttribute("source"),
					sederr.WithMessage(fmt.Sprintf("the source of model '%s' leads back to itself", m.ID))))
				break
			}
			if seen[next] {
				break
			}
			seen[next] = true
		}
	}
}

// subTaskCycles reports repeated tasks which reach themselves through the
// subtasks of other repeated tasks. Direct self references are reported
// by subTask.
func (c *checker) subTaskCycles() {
	var reaches func(from *dom.RepeatedTask, target string, seen map[string]bool) bool
	reaches = func(from *dom.RepeatedTask, target string, seen map[string]bool) bool {
		for _, st := range from.SubTasks {
			if st.Task == from.ID || seen[st.Task] {
				continue
			}
			if st.Task == target {
				return true
			}
			seen[st.Task] = true
			if next, ok := c.doc.Task(st.Task).(*dom.RepeatedTask); ok && reaches(next, target, seen) {
				return true
			}
		}
		return false
	}
	for _, t := range c.doc.Tasks {
		rt, ok := t.(*dom.RepeatedTask)
		if !ok || rt.ID == "" {
			continue
		}
		if reaches(rt, rt.ID, map[string]bool{}) {
			c.add(rt, sederr.New(sederr.SedSubTaskSelfReference,
				sederr.WithMessage(fmt.Sprintf("the subtasks of repeatedTask '%s' lead back to it", rt.ID))))
		}
	}
}
