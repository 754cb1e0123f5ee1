// Package example builds the demonstration SED-ML document written by
// create_sedml: two models, one time course, one task, two data
// generators and three outputs.
package example

import (
	"github.com/andaru/sedml/dom"
	"github.com/andaru/sedml/mathml"
)

const (
	sbmlPrefix    = "sbml"
	sbmlNamespace = "http://www.sbml.org/sbml/level2"

	speciesPath   = "/sbml:sbml/sbml:model/sbml:listOfSpecies/sbml:species"
	parameterPath = "/sbml:sbml/sbml:model/sbml:listOfParameters/sbml:parameter"
)

// Document returns a new SED-ML level 1 version 1 document describing a
// time course of an SBML model and a modified copy of it
func Document() *dom.Document {
	doc := dom.NewDocument(1, 1)
	doc.AddNamespace(sbmlPrefix, sbmlNamespace)

	// a model read from an SBML file
	model := doc.CreateModel()
	model.ID = "model1"
	model.Source = "file.xml"
	model.Language = dom.LanguageSBML

	// a second model deriving from the first
	model = doc.CreateModel()
	model.ID = "model2"
	model.Source = "model1"
	model.Language = dom.LanguageSBML
	model.NewChangeAttribute(parameterPath+"[@id='k']/@value", "0.1")
	remove := model.CreateRemoveXML()
	remove.Target = speciesPath + "[@id='S1']"
	// halve the initial concentration of S2
	compute := model.CreateComputeChange()
	compute.Target = speciesPath + "[@id='S2']/@initialConcentration"
	variable := compute.CreateVariable()
	variable.ID = "S2"
	variable.ModelReference = "model1"
	variable.Target = speciesPath + "[@id='S2']"
	compute.Math = mathml.MustParseFormula("S2 / 2")

	tc := doc.CreateUniformTimeCourse()
	tc.ID = "sim1"
	tc.InitialTime = 0
	tc.OutputStartTime = 0
	tc.OutputEndTime = 10
	tc.NumberOfPoints = 1000
	tc.CreateAlgorithm().KisaoID = "KISAO:0000019"

	task := doc.CreateTask()
	task.ID = "task1"
	task.ModelReference = "model1"
	task.SimulationReference = "sim1"

	dg := doc.CreateDataGenerator()
	dg.ID = "time"
	dg.Name = "time"
	v := dg.CreateVariable()
	v.ID = "v0"
	v.Name = "time"
	v.TaskReference = "task1"
	v.Symbol = dom.SymbolTime
	dg.Math = mathml.MustParseFormula("v0")

	dg = doc.CreateDataGenerator()
	dg.ID = "S1"
	dg.Name = "S1"
	v = dg.CreateVariable()
	v.ID = "v1"
	v.Name = "S1"
	v.TaskReference = "task1"
	v.Target = speciesPath + "[@id='S1']"
	dg.Math = mathml.MustParseFormula("v1")

	report := doc.CreateReport()
	report.ID = "r1"
	report.Name = "report 1"
	ds := report.CreateDataSet()
	ds.ID = "ds1"
	ds.Label = "time"
	ds.DataReference = "time"
	ds = report.CreateDataSet()
	ds.ID = "ds2"
	ds.Label = "S1"
	ds.DataReference = "S1"

	plot := doc.CreatePlot2D()
	plot.ID = "p1"
	plot.Name = "S1 Timecourse"
	curve := plot.CreateCurve()
	curve.ID = "c1"
	curve.Name = "S1"
	curve.XDataReference = "time"
	curve.YDataReference = "S1"

	plot3 := doc.CreatePlot3D()
	plot3.ID = "p2"
	plot3.Name = "dunno"
	surf := plot3.CreateSurface()
	surf.ID = "surf1"
	surf.Name = "S1"
	surf.XDataReference = "time"
	surf.YDataReference = "S1"
	surf.ZDataReference = "S1"

	return doc
}
