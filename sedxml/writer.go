package sedxml

import (
	"bufio"
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/andaru/sedml/dom"
	"github.com/andaru/sedml/mathml"
	"github.com/andaru/sedml/sedlog"
	"github.com/andaru/sedml/xmlutil"
	"github.com/pkg/errors"
)

// Write writes doc to w as an indented SED-ML document
func Write(w io.Writer, doc *dom.Document) error {
	if doc == nil {
		return errors.New("sedxml: nil document")
	}
	ns := doc.Namespace()
	if ns == "" {
		return errors.Errorf("sedxml: unsupported SED-ML level %d version %d", doc.Level, doc.Version)
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(xml.Header); err != nil {
		return errors.Wrap(err, "sedxml")
	}
	wr := &writer{bw: bw, enc: xml.NewEncoder(bw), doc: doc}
	wr.enc.Indent("", "  ")
	wr.document(ns)
	if wr.err == nil {
		wr.err = wr.enc.Flush()
	}
	if wr.err == nil {
		wr.err = bw.WriteByte('\n')
	}
	if wr.err == nil {
		wr.err = bw.Flush()
	}
	return errors.Wrap(wr.err, "sedxml")
}

// WriteString returns doc as a SED-ML document string
func WriteString(doc *dom.Document) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteFile writes doc to the file at path, creating or truncating it
func WriteFile(path string, doc *dom.Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.WithStack(cerr)
		}
	}()
	sedlog.Logger().Debug().Str("path", path).Int("level", doc.Level).Int("version", doc.Version).Msg("writing SED-ML file")
	return Write(f, doc)
}

type writer struct {
	bw  *bufio.Writer
	enc *xml.Encoder
	doc *dom.Document
	err error
}

// attrs is an attribute list under construction
type attrs []xml.Attr

func (a attrs) str(name, v string) attrs {
	if v == "" {
		return a
	}
	return append(a, xmlutil.XMLAttr(name, v))
}

func (a attrs) req(name, v string) attrs { return append(a, xmlutil.XMLAttr(name, v)) }

func (a attrs) float(name string, v float64) attrs { return a.req(name, formatDouble(v)) }

func (a attrs) int(name string, v int) attrs { return a.req(name, strconv.Itoa(v)) }

func (a attrs) bool(name string, v bool) attrs { return a.req(name, strconv.FormatBool(v)) }

func baseAttrs(b *dom.Base) attrs {
	return attrs(nil).str("metaid", b.MetaID).str("id", b.ID).str("name", b.Name)
}

func formatDouble(v float64) string {
	switch s := strconv.FormatFloat(v, 'g', -1, 64); s {
	case "+Inf":
		return "INF"
	case "-Inf":
		return "-INF"
	default:
		return s
	}
}

func (w *writer) token(t xml.Token) {
	if w.err == nil {
		w.err = w.enc.EncodeToken(t)
	}
}

// raw writes pre-serialized XML content at the current position
func (w *writer) raw(s string) {
	if w.err == nil {
		w.err = w.enc.Flush()
	}
	if w.err == nil {
		_, w.err = w.bw.WriteString(s)
	}
}

// open starts an element and writes the notes and annotation of b
func (w *writer) open(name string, b *dom.Base, a attrs) xml.StartElement {
	if b != nil {
		a = append(b.DeclaredNamespaces.Attr(), a...)
	}
	se := xml.StartElement{Name: xmlutil.XMLName(name), Attr: a}
	w.token(se)
	if b != nil {
		w.rawElement("notes", b.Notes)
		w.rawElement("annotation", b.Annotation)
	}
	return se
}

func (w *writer) close(se xml.StartElement) { w.token(se.End()) }

func (w *writer) leaf(name string, b *dom.Base, a attrs) { w.close(w.open(name, b, a)) }

func (w *writer) rawElement(name, content string) {
	if content == "" {
		return
	}
	se := xml.StartElement{Name: xmlutil.XMLName(name)}
	w.token(se)
	w.raw(content)
	w.token(se.End())
}

// list writes a listOf element holding n children, if n > 0
func (w *writer) list(name string, n int, each func(i int)) {
	if n == 0 {
		return
	}
	se := w.open(name, nil, nil)
	for i := 0; i < n; i++ {
		each(i)
	}
	w.close(se)
}

func (w *writer) stepsAttr() string {
	if w.doc.UsesNumberOfSteps() {
		return "numberOfSteps"
	}
	return "numberOfPoints"
}

func (w *writer) document(ns string) {
	d := w.doc
	a := attrs(d.Namespaces.Attr()).int("level", d.Level).int("version", d.Version)
	a = append(a, baseAttrs(&d.Base)...)
	root := xml.StartElement{Name: xmlutil.XMLName("sedML", ns), Attr: a}
	w.token(root)
	w.rawElement("notes", d.Notes)
	w.rawElement("annotation", d.Annotation)

	w.list("listOfDataDescriptions", len(d.DataDescriptions), func(i int) {
		w.dataDescription(d.DataDescriptions[i])
	})
	w.list("listOfModels", len(d.Models), func(i int) { w.model(d.Models[i]) })
	w.list("listOfSimulations", len(d.Simulations), func(i int) { w.simulation(d.Simulations[i]) })
	w.list("listOfTasks", len(d.Tasks), func(i int) { w.task(d.Tasks[i]) })
	w.list("listOfDataGenerators", len(d.DataGenerators), func(i int) {
		dg := d.DataGenerators[i]
		se := w.open("dataGenerator", &dg.Base, baseAttrs(&dg.Base))
		w.calculation(&dg.Calculation)
		w.close(se)
	})
	w.list("listOfOutputs", len(d.Outputs), func(i int) { w.output(d.Outputs[i]) })
	w.close(root)
}

func (w *writer) dataDescription(dd *dom.DataDescription) {
	se := w.open("dataDescription", &dd.Base, baseAttrs(&dd.Base).str("format", dd.Format).req("source", dd.Source))
	if dd.DimensionDescription != "" {
		w.raw(dd.DimensionDescription)
	}
	w.list("listOfDataSources", len(dd.DataSources), func(i int) {
		ds := dd.DataSources[i]
		dse := w.open("dataSource", &ds.Base, baseAttrs(&ds.Base).str("indexSet", ds.IndexSet))
		w.list("listOfSlices", len(ds.Slices), func(j int) {
			sl := ds.Slices[j]
			a := baseAttrs(&sl.Base).req("reference", sl.Reference).str("value", sl.Value).str("index", sl.Index)
			if sl.StartIndex != nil {
				a = a.int("startIndex", *sl.StartIndex)
			}
			if sl.EndIndex != nil {
				a = a.int("endIndex", *sl.EndIndex)
			}
			w.leaf("slice", &sl.Base, a)
		})
		w.close(dse)
	})
	w.close(se)
}

func (w *writer) model(m *dom.Model) {
	se := w.open("model", &m.Base, baseAttrs(&m.Base).str("language", m.Language).req("source", m.Source))
	w.list("listOfChanges", len(m.Changes), func(i int) {
		switch c := m.Changes[i].(type) {
		case *dom.ChangeAttribute:
			w.leaf("changeAttribute", &c.Base, baseAttrs(&c.Base).req("target", c.Target).req("newValue", c.NewValue))
		case *dom.AddXML:
			se := w.open("addXML", &c.Base, baseAttrs(&c.Base).req("target", c.Target))
			w.newXML(c.NewXML)
			w.close(se)
		case *dom.ChangeXML:
			se := w.open("changeXML", &c.Base, baseAttrs(&c.Base).req("target", c.Target))
			w.newXML(c.NewXML)
			w.close(se)
		case *dom.RemoveXML:
			w.leaf("removeXML", &c.Base, baseAttrs(&c.Base).req("target", c.Target))
		case *dom.ComputeChange:
			se := w.open("computeChange", &c.Base, baseAttrs(&c.Base).req("target", c.Target))
			w.calculation(&c.Calculation)
			w.close(se)
		default:
			w.err = errors.Errorf("sedxml: cannot write change of type %T", c)
		}
	})
	w.close(se)
}

func (w *writer) newXML(content string) {
	se := xml.StartElement{Name: xmlutil.XMLName("newXML")}
	w.token(se)
	w.raw(content)
	w.token(se.End())
}

func (w *writer) calculation(c *dom.Calculation) {
	w.list("listOfVariables", len(c.Variables), func(i int) {
		v := c.Variables[i]
		w.leaf("variable", &v.Base, baseAttrs(&v.Base).
			str("symbol", v.Symbol).
			str("target", v.Target).
			str("taskReference", v.TaskReference).
			str("modelReference", v.ModelReference))
	})
	w.list("listOfParameters", len(c.Parameters), func(i int) {
		p := c.Parameters[i]
		w.leaf("parameter", &p.Base, baseAttrs(&p.Base).float("value", p.Value))
	})
	if c.Math != nil && w.err == nil {
		w.err = mathml.Encode(w.enc, c.Math)
	}
}

func (w *writer) simulation(s dom.Simulation) {
	b := s.SedBase()
	a := baseAttrs(b)
	var name string
	switch s := s.(type) {
	case *dom.UniformTimeCourse:
		name = "uniformTimeCourse"
		a = a.float("initialTime", s.InitialTime).
			float("outputStartTime", s.OutputStartTime).
			float("outputEndTime", s.OutputEndTime).
			int(w.stepsAttr(), s.NumberOfPoints)
	case *dom.OneStep:
		name = "oneStep"
		a = a.float("step", s.Step)
	case *dom.SteadyState:
		name = "steadyState"
	case *dom.Analysis:
		name = "analysis"
	default:
		w.err = errors.Errorf("sedxml: cannot write simulation of type %T", s)
		return
	}
	se := w.open(name, b, a)
	if alg := s.SimulationAlgorithm(); alg != nil {
		ase := w.open("algorithm", &alg.Base, baseAttrs(&alg.Base).req("kisaoID", alg.KisaoID))
		w.list("listOfAlgorithmParameters", len(alg.Parameters), func(i int) {
			p := alg.Parameters[i]
			w.leaf("algorithmParameter", &p.Base, baseAttrs(&p.Base).req("kisaoID", p.KisaoID).req("value", p.Value))
		})
		w.close(ase)
	}
	w.close(se)
}

func (w *writer) task(t dom.AbstractTask) {
	switch t := t.(type) {
	case *dom.Task:
		w.leaf("task", &t.Base, baseAttrs(&t.Base).
			req("modelReference", t.ModelReference).
			req("simulationReference", t.SimulationReference))
	case *dom.RepeatedTask:
		se := w.open("repeatedTask", &t.Base, baseAttrs(&t.Base).str("range", t.RangeID).bool("resetModel", t.ResetModel))
		w.list("listOfRanges", len(t.Ranges), func(i int) { w.rangeElement(t.Ranges[i]) })
		w.list("listOfChanges", len(t.SetValues), func(i int) {
			sv := t.SetValues[i]
			se := w.open("setValue", &sv.Base, baseAttrs(&sv.Base).
				req("modelReference", sv.ModelReference).
				str("symbol", sv.Symbol).
				str("target", sv.Target).
				str("range", sv.RangeID))
			w.calculation(&sv.Calculation)
			w.close(se)
		})
		w.list("listOfSubTasks", len(t.SubTasks), func(i int) {
			st := t.SubTasks[i]
			a := baseAttrs(&st.Base).req("task", st.Task)
			if st.Order != nil {
				a = a.int("order", *st.Order)
			}
			w.leaf("subTask", &st.Base, a)
		})
		w.close(se)
	default:
		w.err = errors.Errorf("sedxml: cannot write task of type %T", t)
	}
}

func (w *writer) rangeElement(r dom.Range) {
	switch r := r.(type) {
	case *dom.UniformRange:
		w.leaf("uniformRange", &r.Base, baseAttrs(&r.Base).
			float("start", r.Start).
			float("end", r.End).
			int(w.stepsAttr(), r.NumberOfPoints).
			req("type", r.Type))
	case *dom.VectorRange:
		se := w.open("vectorRange", &r.Base, baseAttrs(&r.Base))
		for _, v := range r.Values {
			vse := xml.StartElement{Name: xmlutil.XMLName("value")}
			w.token(vse)
			w.token(xml.CharData(formatDouble(v)))
			w.token(vse.End())
		}
		w.close(se)
	case *dom.FunctionalRange:
		se := w.open("functionalRange", &r.Base, baseAttrs(&r.Base).req("range", r.RangeID))
		w.calculation(&r.Calculation)
		w.close(se)
	default:
		w.err = errors.Errorf("sedxml: cannot write range of type %T", r)
	}
}

func (w *writer) output(o dom.Output) {
	switch o := o.(type) {
	case *dom.Report:
		se := w.open("report", &o.Base, baseAttrs(&o.Base))
		w.list("listOfDataSets", len(o.DataSets), func(i int) {
			ds := o.DataSets[i]
			w.leaf("dataSet", &ds.Base, baseAttrs(&ds.Base).req("label", ds.Label).req("dataReference", ds.DataReference))
		})
		w.close(se)
	case *dom.Plot2D:
		se := w.open("plot2D", &o.Base, baseAttrs(&o.Base))
		w.list("listOfCurves", len(o.Curves), func(i int) {
			c := o.Curves[i]
			a := baseAttrs(&c.Base).
				bool("logX", c.LogX).
				bool("logY", c.LogY).
				req("xDataReference", c.XDataReference).
				req("yDataReference", c.YDataReference).
				str("type", c.Type).
				str("style", c.Style)
			if c.Order != nil {
				a = a.int("order", *c.Order)
			}
			w.leaf("curve", &c.Base, a)
		})
		w.close(se)
	case *dom.Plot3D:
		se := w.open("plot3D", &o.Base, baseAttrs(&o.Base))
		w.list("listOfSurfaces", len(o.Surfaces), func(i int) {
			s := o.Surfaces[i]
			w.leaf("surface", &s.Base, baseAttrs(&s.Base).
				bool("logX", s.LogX).
				bool("logY", s.LogY).
				bool("logZ", s.LogZ).
				req("xDataReference", s.XDataReference).
				req("yDataReference", s.YDataReference).
				req("zDataReference", s.ZDataReference))
		})
		w.close(se)
	default:
		w.err = errors.Errorf("sedxml: cannot write output of type %T", o)
	}
}
