package validate

import (
	"fmt"
	"testing"

	"github.com/andaru/sedml/dom"
	"github.com/andaru/sedml/sederr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const speciesS1 = "/sbml:sbml/sbml:model/sbml:listOfSpecies/sbml:species[@id='S1']"

// validDocument returns a small document with no problems
func validDocument(t *testing.T) *dom.Document {
	doc := dom.NewDocument(1, 3)
	doc.AddNamespace("sbml", "http://www.sbml.org/sbml/level2")
	m := doc.CreateModel()
	m.ID, m.Source, m.Language = "model1", "file.xml", dom.LanguageSBML
	m.NewChangeAttribute(speciesS1+"/@initialConcentration", "2")

	sim := doc.CreateUniformTimeCourse()
	sim.ID, sim.OutputEndTime, sim.NumberOfPoints = "sim1", 10, 100
	sim.CreateAlgorithm().KisaoID = "KISAO:0000019"

	task := doc.CreateTask()
	task.ID, task.ModelReference, task.SimulationReference = "task1", "model1", "sim1"

	rt := doc.CreateRepeatedTask()
	rt.ID, rt.RangeID = "rt1", "r1"
	ur := rt.CreateUniformRange()
	ur.ID, ur.End, ur.NumberOfPoints, ur.Type = "r1", 10, 5, dom.RangeLinear
	fr := rt.CreateFunctionalRange()
	fr.ID, fr.RangeID = "r2", "r1"
	require.NoError(t, fr.SetFormula("r1 * 2"))
	sv := rt.CreateSetValue()
	sv.ModelReference, sv.RangeID, sv.Target = "model1", "r1", speciesS1+"/@initialConcentration"
	require.NoError(t, sv.SetFormula("r2"))
	rt.CreateSubTask().Task = "task1"

	dg := doc.CreateDataGenerator()
	dg.ID = "S1"
	v := dg.CreateVariable()
	v.ID, v.TaskReference, v.Target = "v1", "task1", speciesS1
	p := dg.CreateParameter()
	p.ID, p.Value = "scale", 2
	require.NoError(t, dg.SetFormula("v1 * scale"))

	rep := doc.CreateReport()
	rep.ID = "report1"
	ds := rep.CreateDataSet()
	ds.ID, ds.Label, ds.DataReference = "ds1", "S1", "S1"
	plot := doc.CreatePlot2D()
	plot.ID = "plot1"
	c := plot.CreateCurve()
	c.ID, c.XDataReference, c.YDataReference = "c1", "S1", "S1"
	return doc
}

func TestValidDocument(t *testing.T) {
	errs := Document(validDocument(t))
	assert.Zero(t, errs.Len(), errs.String())
}

func TestDocumentProblems(t *testing.T) {
	for _, tc := range []struct {
		name     string
		modify   func(t *testing.T, doc *dom.Document)
		code     sederr.Code
		severity sederr.Severity
	}{
		{
			name:     "bad id syntax",
			modify:   func(t *testing.T, doc *dom.Document) { doc.Models[0].ID = "1model" },
			code:     sederr.SedmlIdSyntaxRule,
			severity: sederr.SeverityError,
		},
		{
			name:     "duplicate id",
			modify:   func(t *testing.T, doc *dom.Document) { doc.Outputs[1].SedBase().ID = "report1" },
			code:     sederr.SedmlDuplicateComponentId,
			severity: sederr.SeverityError,
		},
		{
			name:     "bad metaid",
			modify:   func(t *testing.T, doc *dom.Document) { doc.Models[0].MetaID = "has space" },
			code:     sederr.SedInvalidMetaidSyntax,
			severity: sederr.SeverityError,
		},
		{
			name:     "task model reference",
			modify:   func(t *testing.T, doc *dom.Document) { doc.Tasks[0].(*dom.Task).ModelReference = "nope" },
			code:     sederr.SedmlTaskModelReferenceMustBeModel,
			severity: sederr.SeverityError,
		},
		{
			name:     "task simulation reference",
			modify:   func(t *testing.T, doc *dom.Document) { doc.Tasks[0].(*dom.Task).SimulationReference = "nope" },
			code:     sederr.SedmlTaskSimulationReferenceMustBeSimulation,
			severity: sederr.SeverityError,
		},
		{
			name:     "variable task reference",
			modify:   func(t *testing.T, doc *dom.Document) { doc.DataGenerators[0].Variables[0].TaskReference = "nope" },
			code:     sederr.SedmlVariableTaskReferenceMustBeAbstractTask,
			severity: sederr.SeverityError,
		},
		{
			name:     "variable without task",
			modify:   func(t *testing.T, doc *dom.Document) { doc.DataGenerators[0].Variables[0].TaskReference = "" },
			code:     sederr.SedmlVariableAllowedAttributes,
			severity: sederr.SeverityError,
		},
		{
			name: "variable target and symbol",
			modify: func(t *testing.T, doc *dom.Document) {
				doc.DataGenerators[0].Variables[0].Symbol = dom.SymbolTime
			},
			code:     sederr.SedVariableTargetOrSymbol,
			severity: sederr.SeverityError,
		},
		{
			name: "variable without target or symbol",
			modify: func(t *testing.T, doc *dom.Document) {
				doc.DataGenerators[0].Variables[0].Target = ""
			},
			code:     sederr.SedVariableTargetOrSymbol,
			severity: sederr.SeverityError,
		},
		{
			name:     "target syntax",
			modify:   func(t *testing.T, doc *dom.Document) { doc.DataGenerators[0].Variables[0].Target = "/sbml:sbml/[" },
			code:     sederr.SedTargetSyntax,
			severity: sederr.SeverityError,
		},
		{
			name: "change target syntax",
			modify: func(t *testing.T, doc *dom.Document) {
				doc.Models[0].Changes[0].(*dom.ChangeAttribute).Target = "//species[@id="
			},
			code:     sederr.SedTargetSyntax,
			severity: sederr.SeverityError,
		},
		{
			name:     "undefined math symbol",
			modify:   func(t *testing.T, doc *dom.Document) { require.NoError(t, doc.DataGenerators[0].SetFormula("v1 * k")) },
			code:     sederr.SedMathUndefinedSymbol,
			severity: sederr.SeverityError,
		},
		{
			name:     "missing math",
			modify:   func(t *testing.T, doc *dom.Document) { doc.DataGenerators[0].Math = nil },
			code:     sederr.SedMissingMath,
			severity: sederr.SeverityError,
		},
		{
			name: "range symbol outside repeated task scope",
			modify: func(t *testing.T, doc *dom.Document) {
				require.NoError(t, doc.DataGenerators[0].SetFormula("v1 * r1"))
			},
			code:     sederr.SedMathUndefinedSymbol,
			severity: sederr.SeverityError,
		},
		{
			name: "output start before initial time",
			modify: func(t *testing.T, doc *dom.Document) {
				utc := doc.Simulations[0].(*dom.UniformTimeCourse)
				utc.InitialTime = 5
				utc.OutputStartTime = 1
			},
			code:     sederr.SedSimulationTimeOrder,
			severity: sederr.SeverityError,
		},
		{
			name: "output end before output start",
			modify: func(t *testing.T, doc *dom.Document) {
				doc.Simulations[0].(*dom.UniformTimeCourse).OutputEndTime = -1
			},
			code:     sederr.SedSimulationTimeOrder,
			severity: sederr.SeverityError,
		},
		{
			name: "negative number of points",
			modify: func(t *testing.T, doc *dom.Document) {
				doc.Simulations[0].(*dom.UniformTimeCourse).NumberOfPoints = -1
			},
			code:     sederr.SedmlUniformTimeCourseNumberOfPointsMustBeInteger,
			severity: sederr.SeverityError,
		},
		{
			name: "kisao syntax",
			modify: func(t *testing.T, doc *dom.Document) {
				doc.Simulations[0].SimulationAlgorithm().KisaoID = "KISAO_19"
			},
			code:     sederr.SedKisaoIDSyntax,
			severity: sederr.SeverityWarning,
		},
		{
			name:     "repeated task range",
			modify:   func(t *testing.T, doc *dom.Document) { doc.Tasks[1].(*dom.RepeatedTask).RangeID = "nope" },
			code:     sederr.SedmlRepeatedTaskRangeMustBeRange,
			severity: sederr.SeverityError,
		},
		{
			name: "functional range refers to itself",
			modify: func(t *testing.T, doc *dom.Document) {
				doc.Tasks[1].(*dom.RepeatedTask).Ranges[1].(*dom.FunctionalRange).RangeID = "r2"
			},
			code:     sederr.SedmlFunctionalRangeRangeMustBeRange,
			severity: sederr.SeverityError,
		},
		{
			name: "set value model reference",
			modify: func(t *testing.T, doc *dom.Document) {
				doc.Tasks[1].(*dom.RepeatedTask).SetValues[0].ModelReference = "nope"
			},
			code:     sederr.SedmlSetValueModelReferenceMustBeModel,
			severity: sederr.SeverityError,
		},
		{
			name: "set value range",
			modify: func(t *testing.T, doc *dom.Document) {
				doc.Tasks[1].(*dom.RepeatedTask).SetValues[0].RangeID = "nope"
			},
			code:     sederr.SedmlSetValueRangeMustBeRange,
			severity: sederr.SeverityError,
		},
		{
			name: "subtask task reference",
			modify: func(t *testing.T, doc *dom.Document) {
				doc.Tasks[1].(*dom.RepeatedTask).SubTasks[0].Task = "nope"
			},
			code:     sederr.SedmlSubTaskTaskMustBeAbstractTask,
			severity: sederr.SeverityError,
		},
		{
			name: "subtask self reference",
			modify: func(t *testing.T, doc *dom.Document) {
				doc.Tasks[1].(*dom.RepeatedTask).SubTasks[0].Task = "rt1"
			},
			code:     sederr.SedSubTaskSelfReference,
			severity: sederr.SeverityError,
		},
		{
			name: "subtask cycle",
			modify: func(t *testing.T, doc *dom.Document) {
				rt2 := doc.CreateRepeatedTask()
				rt2.ID, rt2.RangeID = "rt2", "q"
				q := rt2.CreateVectorRange()
				q.ID, q.Values = "q", []float64{1, 2}
				rt2.CreateSubTask().Task = "rt1"
				doc.Tasks[1].(*dom.RepeatedTask).CreateSubTask().Task = "rt2"
			},
			code:     sederr.SedSubTaskSelfReference,
			severity: sederr.SeverityError,
		},
		{
			name:     "dataset reference",
			modify:   func(t *testing.T, doc *dom.Document) { doc.Outputs[0].(*dom.Report).DataSets[0].DataReference = "nope" },
			code:     sederr.SedmlDataSetDataReferenceMustBeDataGenerator,
			severity: sederr.SeverityError,
		},
		{
			name:     "curve y reference",
			modify:   func(t *testing.T, doc *dom.Document) { doc.Outputs[1].(*dom.Plot2D).Curves[0].YDataReference = "nope" },
			code:     sederr.SedmlCurveYDataReferenceMustBeDataGenerator,
			severity: sederr.SeverityError,
		},
		{
			name: "surface z reference",
			modify: func(t *testing.T, doc *dom.Document) {
				p := doc.CreatePlot3D()
				p.ID = "plot2"
				s := p.CreateSurface()
				s.ID, s.XDataReference, s.YDataReference = "surf1", "S1", "S1"
			},
			code:     sederr.SedmlSurfaceZDataReferenceMustBeDataGenerator,
			severity: sederr.SeverityError,
		},
		{
			name:     "empty report",
			modify:   func(t *testing.T, doc *dom.Document) { doc.Outputs[0].(*dom.Report).DataSets = nil },
			code:     sederr.SedmlReportAllowedElements,
			severity: sederr.SeverityWarning,
		},
		{
			name:     "empty plot",
			modify:   func(t *testing.T, doc *dom.Document) { doc.Outputs[1].(*dom.Plot2D).Curves = nil },
			code:     sederr.SedmlPlotAllowedElements,
			severity: sederr.SeverityWarning,
		},
		{
			name: "model source cycle",
			modify: func(t *testing.T, doc *dom.Document) {
				m2 := doc.CreateModel()
				m2.ID, m2.Source = "model2", "model3"
				m3 := doc.CreateModel()
				m3.ID, m3.Source = "model3", "model2"
			},
			code:     sederr.SedModelSourceCycle,
			severity: sederr.SeverityError,
		},
		{
			name:     "model without source",
			modify:   func(t *testing.T, doc *dom.Document) { doc.Models[0].Source = "" },
			code:     sederr.SedmlModelAllowedAttributes,
			severity: sederr.SeverityError,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc := validDocument(t)
			tc.modify(t, doc)
			errs := Document(doc)
			require.True(t, errs.Contains(tc.code), errs.String())
			for _, e := range errs.Entries() {
				if e.Code == tc.code {
					assert.Equal(t, tc.severity, e.Severity, e.Error())
				}
			}
		})
	}
}

func TestModelSourceChain(t *testing.T) {
	doc := validDocument(t)
	m2 := doc.CreateModel()
	m2.ID, m2.Source = "model2", "model1"
	m3 := doc.CreateModel()
	m3.ID, m3.Source = "model3", "model2"
	errs := Document(doc)
	assert.Zero(t, errs.Len(), errs.String())
}

func TestCycleReportedOnMembersOnly(t *testing.T) {
	doc := validDocument(t)
	for _, ms := range [][2]string{{"a", "b"}, {"b", "a"}, {"c", "a"}} {
		m := doc.CreateModel()
		m.ID, m.Source = ms[0], ms[1]
	}
	errs := Document(doc)
	var cycles []string
	for _, e := range errs.Entries() {
		if e.Code == sederr.SedModelSourceCycle {
			cycles = append(cycles, e.Message)
		}
	}
	assert.Len(t, cycles, 2, errs.String())
}

func TestPositions(t *testing.T) {
	doc := validDocument(t)
	task := doc.Tasks[0].(*dom.Task)
	task.SetPosition(12, 7)
	task.ModelReference = "nope"
	errs := Document(doc)
	require.Equal(t, 1, errs.Len(), errs.String())
	e := errs.Entries()[0]
	assert.Equal(t, 12, e.Line)
	assert.Equal(t, 7, e.Column)
	assert.Equal(t, "task", e.Element)
	assert.Equal(t, "modelReference", e.Attribute)
}

func TestValidSId(t *testing.T) {
	for id, want := range map[string]bool{
		"a":      true,
		"_a1":    true,
		"S1":     true,
		"":       false,
		"1a":     false,
		"a-b":    false,
		"a b":    false,
		"model1": true,
	} {
		assert.Equal(t, want, ValidSId(id), id)
	}
}

func TestConstraintError(t *testing.T) {
	r := dom.NewDocument(0, 0).CreateReport()
	r.ID = "r1"
	err := minOccurs(r, 0, 1)
	assert.Equal(t, `constraint min-occurs:1 (saw 0) failed on element <report id="r1">`, err.Error())
	ce, ok := IsConstraintError(error(err))
	require.True(t, ok)
	assert.Equal(t, "min-occurs", ce.Name)
}

func TestTargetPrefixScope(t *testing.T) {
	doc := dom.NewDocument(1, 3)
	m := doc.CreateModel()
	m.ID, m.Source = "model1", "file.xml"
	m.DeclareNamespace("s", "http://www.sbml.org/sbml/level2")
	m.NewChangeAttribute("/s:sbml/s:model/@id", "m2")

	other := doc.CreateModel()
	other.ID, other.Source = "model2", "file.xml"
	other.NewChangeAttribute("/s:sbml/s:model/@id", "m3")

	errs := Document(doc)
	require.Equal(t, 1, errs.Len(), errs.String())
	e := errs.Entries()[0]
	assert.Equal(t, sederr.SedTargetSyntax, e.Code)
}

func TestLevelVersion(t *testing.T) {
	for _, tc := range []struct {
		level, version int
		want           []string
	}{
		{level: 1, version: 1, want: []string{"dataDescription", "steadyState", "repeatedTask", "curve", "curve"}},
		{level: 1, version: 2, want: []string{"algorithmParameter", "curve", "curve"}},
		{level: 1, version: 3, want: []string{"curve", "curve"}},
		{level: 1, version: 4},
	} {
		t.Run(fmt.Sprintf("L%dV%d", tc.level, tc.version), func(t *testing.T) {
			doc := dom.NewDocument(tc.level, tc.version)
			dd := doc.CreateDataDescription()
			dd.ID, dd.Source = "data1", "data.csv"
			dd.CreateDataSource().ID = "ds1"
			ss := doc.CreateSteadyState()
			ss.ID = "ss1"
			ss.CreateAlgorithm().CreateParameter().KisaoID = "KISAO:0000211"
			rt := doc.CreateRepeatedTask()
			rt.ID = "rt1"
			rt.CreateSubTask().Task = "task1"
			p := doc.CreatePlot2D()
			p.ID = "p1"
			c := p.CreateCurve()
			c.ID, c.Type = "c1", "points"
			c.SetOrder(2)

			var got []string
			check := assert.New(t)
			for _, e := range LevelVersion(doc).Entries() {
				check.Equal(sederr.SedNotInLevelVersion, e.Code)
				check.Equal(sederr.SeverityWarning, e.Severity)
				got = append(got, e.Element)
			}
			check.Equal(tc.want, got)
		})
	}
}
