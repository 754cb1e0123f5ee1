package summary

import (
	"bytes"
	"testing"

	"github.com/andaru/sedml/dom"
	"github.com/andaru/sedml/example"
	"github.com/andaru/sedml/sederr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSummary = `The document has 1 simulation(s).
	Timecourse id=sim1 start=0 end=10 numPoints=1000 kisao=KISAO:0000019

The document has 2 model(s).
	Model id=model1 language=urn:sedml:language:sbml source=file.xml numChanges=0
	Model id=model2 language=urn:sedml:language:sbml source=model1 numChanges=3
		change 1 target: /sbml:sbml/sbml:model/sbml:listOfParameters/sbml:parameter[@id='k']/@value changes the attribute to: 0.1
		change 2 target: /sbml:sbml/sbml:model/sbml:listOfSpecies/sbml:species[@id='S1'] removes the target!
		change 3 target: /sbml:sbml/sbml:model/sbml:listOfSpecies/sbml:species[@id='S2']/@initialConcentration replaces the value with the computation: S2 / 2

The document has 1 task(s).
	Task id=task1 model=model1 sim=sim1

The document has 2 datagenerator(s).
	DG id=time math=v0
	DG id=S1 math=v1

The document has 3 output(s).
	Report id=r1 numDataSets=2
	Plot2d id=p1 numCurves=1
	Plot3d id=p2 numSurfaces=1
`

func TestWriteExample(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write(&b, example.Document()))
	assert.Equal(t, exampleSummary, b.String())
}

func TestWriteKinds(t *testing.T) {
	doc := dom.NewDocument(0, 0)
	dd := doc.CreateDataDescription()
	dd.ID, dd.Source, dd.Format = "d1", "data.csv", "urn:sedml:format:csv"
	m := doc.CreateModel()
	m.ID, m.Source = "m", "m.xml"
	add := m.CreateAddXML()
	add.Target, add.NewXML = "/a", `<b id="x"/>`
	chg := m.CreateChangeXML()
	chg.Target, chg.NewXML = "/c", `<d/>`
	one := doc.CreateOneStep()
	one.ID, one.Step = "one", 0.5
	doc.CreateSteadyState().ID = "steady"
	doc.CreateAnalysis().ID = "an"
	rt := doc.CreateRepeatedTask()
	rt.ID, rt.RangeID, rt.ResetModel = "rt", "u", true
	u := rt.CreateUniformRange()
	u.ID, u.Start, u.End, u.NumberOfPoints, u.Type = "u", 1, 2.5, 4, dom.RangeLinear
	vr := rt.CreateVectorRange()
	vr.ID, vr.Values = "v", []float64{1, 2, 3}
	fr := rt.CreateFunctionalRange()
	fr.ID, fr.RangeID = "f", "u"
	require.NoError(t, fr.SetFormula("u^2"))
	sv := rt.CreateSetValue()
	sv.RangeID, sv.ModelReference, sv.Target = "u", "m", "/x/@y"
	require.NoError(t, sv.SetFormula("f"))
	rt.CreateSubTask().Task = "t"
	st := rt.CreateSubTask()
	st.Task = "t2"
	st.SetOrder(2)

	var b bytes.Buffer
	require.NoError(t, Write(&b, doc))
	out := b.String()
	for _, want := range []string{
		"The document has 1 data description(s).\n\tDataDescription id=d1 source=data.csv format=urn:sedml:format:csv\n\n",
		"\t\tchange 1 target: /a adds the following child: <b id=\"x\"/>\n",
		"\t\tchange 2 target: /c replaces the target with: <d/>\n",
		"\tOneStep id=one step=0.5\n",
		"\tSteadyState id=steady\n",
		"\tAnalysis id=an\n",
		"\tRepeatedTask id=rt resetModel=true range=u\n",
		"\t\tUniformRange id=u start=1 end=2.5 numPoints=4 type=linear\n",
		"\t\tVectorRange id=v values=1, 2, 3\n",
		"\t\tFunctionalRange id=f range=u math=u^2\n",
		"\t\tSetValue range=u modelReference=m target=/x/@y math=f\n",
		"\t\tSubTask order=unset task=t\n",
		"\t\tSubTask order=2 task=t2\n",
		"The document has 0 output(s).\n",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWarnings(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Warnings(&b, &sederr.Log{}))
	assert.Empty(t, b.String())

	errs := &sederr.Log{}
	errs.Add(
		sederr.UnknownAttribute("colour", "model", sederr.WithPosition(3, 5)),
		sederr.New(sederr.SedmlTaskModelReferenceMustBeModel),
	)
	require.NoError(t, Warnings(&b, errs))
	assert.Equal(t, "Warnings: line 3: (99994 [Warning]) Encountered an unknown attribute in the SED-ML namespace: "+
		"attribute 'colour' is not defined for the <model> element\n\n", b.String())
}

func TestWriteNil(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, nil))
}
