package sedxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andaru/sedml/dom"
	"github.com/andaru/sedml/mathml"
	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/sedlog"
	"github.com/andaru/sedml/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
)

// Read parses a SED-ML document from r.
//
// Problems found in the document are recorded in the returned log; the
// returned document holds everything that could be read. A document
// which is not well-formed XML yields an empty document and a Fatal
// entry.
func Read(r io.Reader) (*dom.Document, *sederr.Log) {
	data, err := io.ReadAll(r)
	if err != nil {
		errs := &sederr.Log{}
		errs.Add(sederr.New(sederr.SedFileUnreadable, sederr.WithMessage(err.Error())))
		return dom.NewDocument(0, 0), errs
	}
	return parse(data)
}

// ReadString parses a SED-ML document held in s
func ReadString(s string) (*dom.Document, *sederr.Log) { return parse([]byte(s)) }

// ReadFile parses the SED-ML document stored at path
func ReadFile(path string) (*dom.Document, *sederr.Log) {
	data, err := os.ReadFile(path)
	if err != nil {
		errs := &sederr.Log{}
		errs.Add(sederr.New(sederr.SedFileUnreadable, sederr.WithMessage(err.Error())))
		return dom.NewDocument(0, 0), errs
	}
	sedlog.Logger().Debug().Str("path", path).Int("bytes", len(data)).Msg("reading SED-ML file")
	return parse(data)
}

func xmlFailure(err error) *sederr.Error {
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return sederr.NotSchemaConformant(sederr.WithMessage(se.Msg), sederr.WithPosition(se.Line, 0))
	}
	if strings.Contains(err.Error(), "CharsetReader") {
		return sederr.New(sederr.SedNotUTF8, sederr.WithSeverity(sederr.SeverityFatal), sederr.WithMessage(err.Error()))
	}
	return sederr.NotSchemaConformant(sederr.WithMessage(err.Error()))
}

func parse(data []byte) (*dom.Document, *sederr.Log) {
	errs := &sederr.Log{}
	positions, err := scanPositions(data)
	if err != nil {
		errs.Add(xmlFailure(err))
		return dom.NewDocument(0, 0), errs
	}
	top, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		errs.Add(xmlFailure(err))
		return dom.NewDocument(0, 0), errs
	}
	r := &reader{errs: errs, pos: indexPositions(top, positions)}
	doc := r.document(top)
	sedlog.Logger().Debug().
		Int("level", doc.Level).
		Int("version", doc.Version).
		Int("models", len(doc.Models)).
		Int("simulations", len(doc.Simulations)).
		Int("tasks", len(doc.Tasks)).
		Int("dataGenerators", len(doc.DataGenerators)).
		Int("outputs", len(doc.Outputs)).
		Int("diagnostics", errs.Len()).
		Msg("read SED-ML document")
	return doc, errs
}

type reader struct {
	errs *sederr.Log
	pos  map[*xmlquery.Node]position
	ns   string
	doc  *dom.Document
}

// readers maps permitted child element names to their reader
type readers map[string]func(*xmlquery.Node)

func (r *reader) add(n *xmlquery.Node, e *sederr.Error) {
	if p, ok := r.pos[n]; ok && e.Line == 0 {
		e.Line, e.Column = p.line, p.col
	}
	r.errs.Add(e)
}

func (r *reader) position(n *xmlquery.Node, b *dom.Base) {
	if p, ok := r.pos[n]; ok {
		b.SetPosition(p.line, p.col)
	}
}

func elementChildren(n *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// base reads the attributes every SED-ML element may carry
func (r *reader) base(n *xmlquery.Node, b *dom.Base, a *attrReader, idRequired bool) {
	r.position(n, b)
	r.namespaces(n, b)
	b.MetaID = a.str("metaid", false)
	b.ID = a.str("id", idRequired)
	b.Name = a.str("name", false)
}

// namespaces records the prefixes declared at n, or on a list element
// above it, which the owning element does not already have in scope
func (r *reader) namespaces(n *xmlquery.Node, b *dom.Base) {
	parent := b.Parent()
	if parent == nil {
		return
	}
	inherited := dom.NamespacesInScope(parent)
	for prefix, uri := range xmlutil.FromNode(n) {
		if inherited[prefix] != uri {
			b.DeclareNamespace(prefix, uri)
		}
	}
}

// common consumes the <notes> and <annotation> children of an element
func (r *reader) common(c *xmlquery.Node, b *dom.Base) bool {
	switch c.Data {
	case "notes":
		if b.Notes != "" {
			r.add(c, sederr.New(sederr.SedOnlyOneNotesElementAllowed, sederr.WithElement(c.Parent.Data)))
		}
		b.Notes = strings.TrimSpace(c.OutputXML(false))
	case "annotation":
		if b.Annotation != "" {
			r.add(c, sederr.New(sederr.SedMultipleAnnotations, sederr.WithElement(c.Parent.Data)))
		}
		b.Annotation = strings.TrimSpace(c.OutputXML(false))
	default:
		return false
	}
	return true
}

// children visits the element children of n other than notes and
// annotation. Children for which fn returns false are reported as
// unrecognized.
func (r *reader) children(n *xmlquery.Node, b *dom.Base, fn func(c *xmlquery.Node) bool) {
	for _, c := range elementChildren(n) {
		if r.common(c, b) {
			continue
		}
		if fn == nil || !fn(c) {
			r.add(c, sederr.UnrecognizedElement(c.Data, n.Data))
		}
	}
}

// list reads a listOf element, dispatching each child to its reader
func (r *reader) list(n *xmlquery.Node, rs readers) {
	a := r.attrs(n, sederr.SedAllowedAttributes)
	var b dom.Base
	r.base(n, &b, a, false)
	a.done()
	for _, c := range elementChildren(n) {
		if c.Data == "notes" || c.Data == "annotation" {
			continue
		}
		if c.NamespaceURI != r.ns {
			r.add(c, sederr.New(sederr.SedmlElementNotInNs, sederr.WithElement(c.Data), sederr.WithMessage(
				fmt.Sprintf("element <%s> in <%s> is in namespace %q", c.Data, n.Data, c.NamespaceURI))))
			continue
		}
		read, ok := rs[c.Data]
		if !ok {
			r.add(c, sederr.UnrecognizedElement(c.Data, n.Data))
			continue
		}
		read(c)
	}
}

func (r *reader) document(top *xmlquery.Node) *dom.Document {
	doc := dom.NewDocument(0, 0)
	r.doc = doc
	var root *xmlquery.Node
	if es := elementChildren(top); len(es) > 0 {
		root = es[0]
	}
	if root == nil {
		r.errs.Add(sederr.NotSchemaConformant(sederr.WithMessage("document has no root element")))
		return doc
	}
	if root.Data != "sedML" {
		r.add(root, sederr.New(sederr.SedmlDocumentAllowedElements, sederr.WithElement(root.Data), sederr.WithMessage(
			fmt.Sprintf("the root element must be <sedML>, not <%s>", root.Data))))
		return doc
	}

	r.ns = root.NamespaceURI
	nsLevel, nsVersion, nsOK := dom.LevelVersion(r.ns)
	if nsOK {
		doc.Level, doc.Version = nsLevel, nsVersion
	} else {
		r.add(root, sederr.New(sederr.SedmlElementNotInNs, sederr.WithElement("sedML"), sederr.WithMessage(
			fmt.Sprintf("namespace %q is not a SED-ML namespace", r.ns))))
	}

	a := r.attrs(root, sederr.SedmlDocumentAllowedAttributes)
	r.base(root, &doc.Base, a, false)
	if level, ok := a.int("level", !nsOK, sederr.SedmlDocumentLevelMustBeNonNegativeInteger); ok {
		doc.Level = level
	}
	if version, ok := a.int("version", !nsOK, sederr.SedmlDocumentVersionMustBeNonNegativeInteger); ok {
		doc.Version = version
	}
	a.done()
	if nsOK && (doc.Level != nsLevel || doc.Version != nsVersion) {
		r.add(root, sederr.New(sederr.SedmlDocumentAllowedAttributes, sederr.WithSeverity(sederr.SeverityWarning),
			sederr.WithMessage(fmt.Sprintf("level %d version %d does not match namespace %q", doc.Level, doc.Version, r.ns))))
	}
	doc.Namespaces = xmlutil.FromNode(root)

	r.children(root, &doc.Base, func(c *xmlquery.Node) bool {
		switch c.Data {
		case "listOfDataDescriptions":
			r.list(c, readers{
				"dataDescription": func(n *xmlquery.Node) { r.dataDescription(n, doc.CreateDataDescription()) },
			})
		case "listOfModels":
			r.list(c, readers{
				"model": func(n *xmlquery.Node) { r.model(n, doc.CreateModel()) },
			})
		case "listOfSimulations":
			r.list(c, readers{
				"uniformTimeCourse": func(n *xmlquery.Node) { r.uniformTimeCourse(n, doc.CreateUniformTimeCourse()) },
				"oneStep":           func(n *xmlquery.Node) { r.oneStep(n, doc.CreateOneStep()) },
				"steadyState":       func(n *xmlquery.Node) { r.otherSimulation(n, doc.CreateSteadyState()) },
				"analysis":          func(n *xmlquery.Node) { r.otherSimulation(n, doc.CreateAnalysis()) },
			})
		case "listOfTasks":
			r.list(c, readers{
				"task":         func(n *xmlquery.Node) { r.task(n, doc.CreateTask()) },
				"repeatedTask": func(n *xmlquery.Node) { r.repeatedTask(n, doc.CreateRepeatedTask()) },
			})
		case "listOfDataGenerators":
			r.list(c, readers{
				"dataGenerator": func(n *xmlquery.Node) { r.dataGenerator(n, doc.CreateDataGenerator()) },
			})
		case "listOfOutputs":
			r.list(c, readers{
				"report": func(n *xmlquery.Node) { r.report(n, doc.CreateReport()) },
				"plot2D": func(n *xmlquery.Node) { r.plot2D(n, doc.CreatePlot2D()) },
				"plot3D": func(n *xmlquery.Node) { r.plot3D(n, doc.CreatePlot3D()) },
			})
		case "listOfStyles":
			r.add(c, sederr.UnrecognizedElement(c.Data, "sedML",
				sederr.WithSeverity(sederr.SeverityWarning), sederr.WithMessage("styles are not supported and were ignored")))
		default:
			return false
		}
		return true
	})
	return doc
}

func (r *reader) dataDescription(n *xmlquery.Node, dd *dom.DataDescription) {
	a := r.attrs(n, sederr.SedmlDataDescriptionAllowedAttributes)
	r.base(n, &dd.Base, a, true)
	dd.Format = a.str("format", false)
	dd.Source = a.str("source", true)
	a.done()
	r.children(n, &dd.Base, func(c *xmlquery.Node) bool {
		switch c.Data {
		case "dimensionDescription":
			dd.DimensionDescription = strings.TrimSpace(c.OutputXML(true))
		case "listOfDataSources":
			r.list(c, readers{"dataSource": func(n *xmlquery.Node) { r.dataSource(n, dd.CreateDataSource()) }})
		default:
			return false
		}
		return true
	})
}

func (r *reader) dataSource(n *xmlquery.Node, ds *dom.DataSource) {
	a := r.attrs(n, sederr.SedmlDataSourceAllowedAttributes)
	r.base(n, &ds.Base, a, true)
	ds.IndexSet = a.str("indexSet", false)
	a.done()
	r.children(n, &ds.Base, func(c *xmlquery.Node) bool {
		if c.Data != "listOfSlices" {
			return false
		}
		r.list(c, readers{"slice": func(n *xmlquery.Node) { r.slice(n, ds.CreateSlice()) }})
		return true
	})
}

func (r *reader) slice(n *xmlquery.Node, sl *dom.Slice) {
	a := r.attrs(n, sederr.SedmlSliceAllowedAttributes)
	r.base(n, &sl.Base, a, false)
	sl.Reference = a.str("reference", true)
	sl.Value = a.str("value", false)
	sl.Index = a.str("index", false)
	if i, ok := a.int("startIndex", false, sederr.SedmlSliceStartIndexMustBeInteger); ok {
		sl.SetStartIndex(i)
	}
	if i, ok := a.int("endIndex", false, sederr.SedmlSliceEndIndexMustBeInteger); ok {
		sl.SetEndIndex(i)
	}
	a.done()
	r.children(n, &sl.Base, nil)
}

func (r *reader) model(n *xmlquery.Node, m *dom.Model) {
	a := r.attrs(n, sederr.SedmlModelAllowedAttributes)
	r.base(n, &m.Base, a, true)
	m.Language = a.str("language", false)
	m.Source = a.str("source", true)
	a.done()
	r.children(n, &m.Base, func(c *xmlquery.Node) bool {
		if c.Data != "listOfChanges" {
			return false
		}
		r.list(c, readers{
			"changeAttribute": func(n *xmlquery.Node) { r.changeAttribute(n, m.CreateChangeAttribute()) },
			"addXML":          func(n *xmlquery.Node) { r.addXML(n, m.CreateAddXML()) },
			"changeXML":       func(n *xmlquery.Node) { r.changeXML(n, m.CreateChangeXML()) },
			"removeXML":       func(n *xmlquery.Node) { r.removeXML(n, m.CreateRemoveXML()) },
			"computeChange":   func(n *xmlquery.Node) { r.computeChange(n, m.CreateComputeChange()) },
		})
		return true
	})
}

func (r *reader) changeAttribute(n *xmlquery.Node, c *dom.ChangeAttribute) {
	a := r.attrs(n, sederr.SedmlChangeAttributeAllowedAttributes)
	r.base(n, &c.Base, a, false)
	c.Target = a.str("target", true)
	c.NewValue = a.str("newValue", true)
	a.done()
	r.children(n, &c.Base, nil)
}

// newXML returns the inner XML of the <newXML> child of n
func (r *reader) newXML(n *xmlquery.Node, b *dom.Base, code sederr.Code) string {
	var content string
	found := false
	r.children(n, b, func(c *xmlquery.Node) bool {
		if c.Data != "newXML" {
			return false
		}
		found = true
		content = strings.TrimSpace(c.OutputXML(false))
		return true
	})
	if !found {
		r.add(n, sederr.MissingElement(code, "newXML", n.Data))
	}
	return content
}

func (r *reader) addXML(n *xmlquery.Node, c *dom.AddXML) {
	a := r.attrs(n, sederr.SedmlChangeAllowedAttributes)
	r.base(n, &c.Base, a, false)
	c.Target = a.str("target", true)
	a.done()
	c.NewXML = r.newXML(n, &c.Base, sederr.SedmlAddXMLAllowedElements)
}

func (r *reader) changeXML(n *xmlquery.Node, c *dom.ChangeXML) {
	a := r.attrs(n, sederr.SedmlChangeAllowedAttributes)
	r.base(n, &c.Base, a, false)
	c.Target = a.str("target", true)
	a.done()
	c.NewXML = r.newXML(n, &c.Base, sederr.SedmlChangeXMLAllowedElements)
}

func (r *reader) removeXML(n *xmlquery.Node, c *dom.RemoveXML) {
	a := r.attrs(n, sederr.SedmlChangeAllowedAttributes)
	r.base(n, &c.Base, a, false)
	c.Target = a.str("target", true)
	a.done()
	r.children(n, &c.Base, nil)
}

func (r *reader) computeChange(n *xmlquery.Node, c *dom.ComputeChange) {
	a := r.attrs(n, sederr.SedmlChangeAllowedAttributes)
	r.base(n, &c.Base, a, false)
	c.Target = a.str("target", true)
	a.done()
	r.calculation(n, &c.Base, &c.Calculation, c.CreateVariable, c.CreateParameter, nil)
}

// calculation reads the variables, parameters and math of n. Other
// children are passed to extra, when set.
func (r *reader) calculation(n *xmlquery.Node, b *dom.Base, calc *dom.Calculation,
	newVariable func() *dom.Variable, newParameter func() *dom.Parameter, extra func(*xmlquery.Node) bool) {
	r.children(n, b, func(c *xmlquery.Node) bool {
		switch c.Data {
		case "listOfVariables":
			r.list(c, readers{"variable": func(n *xmlquery.Node) { r.variable(n, newVariable()) }})
		case "listOfParameters":
			r.list(c, readers{"parameter": func(n *xmlquery.Node) { r.parameter(n, newParameter()) }})
		case "math":
			m, err := mathml.Decode(c)
			if err != nil {
				r.add(c, sederr.InvalidMath(n.Data, err))
				return true
			}
			calc.Math = m
		default:
			return extra != nil && extra(c)
		}
		return true
	})
	if calc.Math == nil && !r.hasChild(n, "math") {
		r.add(n, sederr.MissingElement(sederr.SedMissingMath, "math", n.Data))
	}
}

func (r *reader) hasChild(n *xmlquery.Node, name string) bool {
	for _, c := range elementChildren(n) {
		if c.Data == name {
			return true
		}
	}
	return false
}

func (r *reader) variable(n *xmlquery.Node, v *dom.Variable) {
	a := r.attrs(n, sederr.SedmlVariableAllowedAttributes)
	r.base(n, &v.Base, a, true)
	v.Symbol = a.str("symbol", false)
	v.Target = a.str("target", false)
	v.TaskReference = a.str("taskReference", false)
	v.ModelReference = a.str("modelReference", false)
	a.done()
	r.children(n, &v.Base, nil)
}

func (r *reader) parameter(n *xmlquery.Node, p *dom.Parameter) {
	a := r.attrs(n, sederr.SedmlParameterAllowedAttributes)
	r.base(n, &p.Base, a, true)
	p.Value, _ = a.float("value", true, sederr.SedmlParameterValueMustBeDouble)
	a.done()
	r.children(n, &p.Base, nil)
}

// simulation reads the base attributes of a simulation. The caller
// reads its own attributes and then calls simulationChildren.
func (r *reader) simulation(n *xmlquery.Node, s dom.Simulation, code sederr.Code) *attrReader {
	a := r.attrs(n, code)
	r.base(n, s.SedBase(), a, true)
	return a
}

func (r *reader) simulationChildren(n *xmlquery.Node, s dom.Simulation) {
	r.children(n, s.SedBase(), func(c *xmlquery.Node) bool {
		if c.Data != "algorithm" {
			return false
		}
		r.algorithm(c, s.CreateAlgorithm())
		return true
	})
}

func (r *reader) uniformTimeCourse(n *xmlquery.Node, s *dom.UniformTimeCourse) {
	a := r.simulation(n, s, sederr.SedmlUniformTimeCourseAllowedAttributes)
	s.InitialTime, _ = a.float("initialTime", true, sederr.SedmlUniformTimeCourseInitialTimeMustBeDouble)
	s.OutputStartTime, _ = a.float("outputStartTime", true, sederr.SedmlUniformTimeCourseOutputStartTimeMustBeDouble)
	s.OutputEndTime, _ = a.float("outputEndTime", true, sederr.SedmlUniformTimeCourseOutputEndTimeMustBeDouble)
	s.NumberOfPoints = a.steps(sederr.SedmlUniformTimeCourseNumberOfPointsMustBeInteger)
	a.done()
	r.simulationChildren(n, s)
}

func (r *reader) oneStep(n *xmlquery.Node, s *dom.OneStep) {
	a := r.simulation(n, s, sederr.SedmlOneStepAllowedAttributes)
	s.Step, _ = a.float("step", true, sederr.SedmlOneStepStepMustBeDouble)
	a.done()
	r.simulationChildren(n, s)
}

func (r *reader) otherSimulation(n *xmlquery.Node, s dom.Simulation) {
	r.simulation(n, s, sederr.SedAllowedAttributes).done()
	r.simulationChildren(n, s)
}

func (r *reader) algorithm(n *xmlquery.Node, alg *dom.Algorithm) {
	a := r.attrs(n, sederr.SedmlAlgorithmAllowedAttributes)
	r.base(n, &alg.Base, a, false)
	alg.KisaoID = a.str("kisaoID", true)
	a.done()
	r.children(n, &alg.Base, func(c *xmlquery.Node) bool {
		if c.Data != "listOfAlgorithmParameters" {
			return false
		}
		r.list(c, readers{"algorithmParameter": func(n *xmlquery.Node) {
			p := alg.CreateParameter()
			a := r.attrs(n, sederr.SedmlAlgorithmParameterAllowedAttributes)
			r.base(n, &p.Base, a, false)
			p.KisaoID = a.str("kisaoID", true)
			p.Value = a.str("value", true)
			a.done()
			r.children(n, &p.Base, nil)
		}})
		return true
	})
}

func (r *reader) task(n *xmlquery.Node, t *dom.Task) {
	a := r.attrs(n, sederr.SedmlTaskAllowedAttributes)
	r.base(n, &t.Base, a, true)
	t.ModelReference = a.str("modelReference", true)
	t.SimulationReference = a.str("simulationReference", true)
	a.done()
	r.children(n, &t.Base, nil)
}

func (r *reader) repeatedTask(n *xmlquery.Node, t *dom.RepeatedTask) {
	a := r.attrs(n, sederr.SedmlRepeatedTaskAllowedAttributes)
	r.base(n, &t.Base, a, true)
	t.RangeID = a.str("range", false)
	t.ResetModel, _ = a.bool("resetModel", true, sederr.SedmlRepeatedTaskResetModelMustBeBoolean)
	a.done()
	r.children(n, &t.Base, func(c *xmlquery.Node) bool {
		switch c.Data {
		case "listOfRanges":
			r.list(c, readers{
				"uniformRange":    func(n *xmlquery.Node) { r.uniformRange(n, t.CreateUniformRange()) },
				"vectorRange":     func(n *xmlquery.Node) { r.vectorRange(n, t.CreateVectorRange()) },
				"functionalRange": func(n *xmlquery.Node) { r.functionalRange(n, t.CreateFunctionalRange()) },
			})
		case "listOfChanges":
			r.list(c, readers{"setValue": func(n *xmlquery.Node) { r.setValue(n, t.CreateSetValue()) }})
		case "listOfSubTasks":
			r.list(c, readers{"subTask": func(n *xmlquery.Node) { r.subTask(n, t.CreateSubTask()) }})
		default:
			return false
		}
		return true
	})
}

func (r *reader) uniformRange(n *xmlquery.Node, u *dom.UniformRange) {
	a := r.attrs(n, sederr.SedmlUniformRangeAllowedAttributes)
	r.base(n, &u.Base, a, true)
	u.Start, _ = a.float("start", true, sederr.SedmlUniformRangeStartMustBeDouble)
	u.End, _ = a.float("end", true, sederr.SedmlUniformRangeEndMustBeDouble)
	u.NumberOfPoints = a.steps(sederr.SedmlUniformRangeNumberOfPointsMustBeInteger)
	u.Type = a.str("type", true)
	a.done()
	r.children(n, &u.Base, nil)
}

func (r *reader) vectorRange(n *xmlquery.Node, v *dom.VectorRange) {
	a := r.attrs(n, sederr.SedmlVectorRangeAllowedAttributes)
	r.base(n, &v.Base, a, true)
	a.done()
	r.children(n, &v.Base, func(c *xmlquery.Node) bool {
		if c.Data != "value" {
			return false
		}
		text := strings.TrimSpace(c.InnerText())
		f, err := parseDouble(text)
		if err != nil {
			r.add(c, sederr.New(sederr.SedmlVectorRangeAllowedAttributes, sederr.WithElement("value"),
				sederr.WithMessage(fmt.Sprintf("vectorRange value %q is not a double", text))))
			return true
		}
		v.Values = append(v.Values, f)
		return true
	})
}

func (r *reader) functionalRange(n *xmlquery.Node, f *dom.FunctionalRange) {
	a := r.attrs(n, sederr.SedmlFunctionalRangeAllowedAttributes)
	r.base(n, &f.Base, a, true)
	f.RangeID = a.str("range", true)
	a.done()
	r.calculation(n, &f.Base, &f.Calculation, f.CreateVariable, f.CreateParameter, nil)
}

func (r *reader) setValue(n *xmlquery.Node, sv *dom.SetValue) {
	a := r.attrs(n, sederr.SedmlSetValueAllowedAttributes)
	r.base(n, &sv.Base, a, false)
	sv.ModelReference = a.str("modelReference", true)
	sv.Symbol = a.str("symbol", false)
	sv.Target = a.str("target", false)
	sv.RangeID = a.str("range", false)
	a.done()
	r.calculation(n, &sv.Base, &sv.Calculation, sv.CreateVariable, sv.CreateParameter, nil)
}

func (r *reader) subTask(n *xmlquery.Node, st *dom.SubTask) {
	a := r.attrs(n, sederr.SedmlSubTaskAllowedAttributes)
	r.base(n, &st.Base, a, false)
	st.Task = a.str("task", true)
	if order, ok := a.int("order", false, sederr.SedmlSubTaskOrderMustBeInteger); ok {
		st.SetOrder(order)
	}
	a.done()
	r.children(n, &st.Base, nil)
}

func (r *reader) dataGenerator(n *xmlquery.Node, dg *dom.DataGenerator) {
	a := r.attrs(n, sederr.SedmlDataGeneratorAllowedAttributes)
	r.base(n, &dg.Base, a, true)
	a.done()
	r.calculation(n, &dg.Base, &dg.Calculation, dg.CreateVariable, dg.CreateParameter, nil)
}

func (r *reader) report(n *xmlquery.Node, rep *dom.Report) {
	a := r.attrs(n, sederr.SedAllowedAttributes)
	r.base(n, &rep.Base, a, true)
	a.done()
	r.children(n, &rep.Base, func(c *xmlquery.Node) bool {
		if c.Data != "listOfDataSets" {
			return false
		}
		r.list(c, readers{"dataSet": func(n *xmlquery.Node) {
			ds := rep.CreateDataSet()
			a := r.attrs(n, sederr.SedmlDataSetAllowedAttributes)
			r.base(n, &ds.Base, a, true)
			ds.Label = a.str("label", true)
			ds.DataReference = a.str("dataReference", true)
			a.done()
			r.children(n, &ds.Base, nil)
		}})
		return true
	})
}

func (r *reader) plot2D(n *xmlquery.Node, p *dom.Plot2D) {
	a := r.attrs(n, sederr.SedAllowedAttributes)
	r.base(n, &p.Base, a, true)
	a.done()
	r.children(n, &p.Base, func(c *xmlquery.Node) bool {
		if c.Data != "listOfCurves" {
			return false
		}
		r.list(c, readers{"curve": func(n *xmlquery.Node) { r.curve(n, p.CreateCurve()) }})
		return true
	})
}

// logRequired reports whether the logX/logY/logZ attributes of curves
// and surfaces are mandatory in the document's version
func (r *reader) logRequired() bool { return !r.doc.UsesNumberOfSteps() }

func (r *reader) curve(n *xmlquery.Node, c *dom.Curve) {
	a := r.attrs(n, sederr.SedmlCurveAllowedAttributes)
	r.base(n, &c.Base, a, true)
	c.LogX, _ = a.bool("logX", r.logRequired(), sederr.SedmlAbstractCurveLogXMustBeBoolean)
	c.LogY, _ = a.bool("logY", r.logRequired(), sederr.SedmlCurveLogYMustBeBoolean)
	c.XDataReference = a.str("xDataReference", true)
	c.YDataReference = a.str("yDataReference", true)
	c.Type = a.str("type", false)
	c.Style = a.str("style", false)
	if order, ok := a.int("order", false, sederr.SedmlAbstractCurveOrderMustBeInteger); ok {
		c.SetOrder(order)
	}
	a.done()
	r.children(n, &c.Base, nil)
}

func (r *reader) plot3D(n *xmlquery.Node, p *dom.Plot3D) {
	a := r.attrs(n, sederr.SedAllowedAttributes)
	r.base(n, &p.Base, a, true)
	a.done()
	r.children(n, &p.Base, func(c *xmlquery.Node) bool {
		if c.Data != "listOfSurfaces" {
			return false
		}
		r.list(c, readers{"surface": func(n *xmlquery.Node) { r.surface(n, p.CreateSurface()) }})
		return true
	})
}

func (r *reader) surface(n *xmlquery.Node, s *dom.Surface) {
	a := r.attrs(n, sederr.SedmlSurfaceAllowedAttributes)
	r.base(n, &s.Base, a, true)
	s.LogX, _ = a.bool("logX", r.logRequired(), sederr.SedmlAbstractCurveLogXMustBeBoolean)
	s.LogY, _ = a.bool("logY", r.logRequired(), sederr.SedmlCurveLogYMustBeBoolean)
	s.LogZ, _ = a.bool("logZ", r.logRequired(), sederr.SedmlSurfaceLogZMustBeBoolean)
	s.XDataReference = a.str("xDataReference", true)
	s.YDataReference = a.str("yDataReference", true)
	s.ZDataReference = a.str("zDataReference", true)
	a.done()
	r.children(n, &s.Base, nil)
}
