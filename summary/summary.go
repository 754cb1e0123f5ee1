package summary

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/andaru/sedml/dom"
	"github.com/andaru/sedml/sederr"
	"github.com/pkg/errors"
)

// Write prints the summary of doc to w
func Write(w io.Writer, doc *dom.Document) error {
	if doc == nil {
		return errors.New("summary: nil document")
	}
	p := &printer{w: bufio.NewWriter(w)}
	if doc.Annotation != "" {
		p.printf("document has annotation: %s\n", doc.Annotation)
	}
	if len(doc.DataDescriptions) > 0 {
		p.dataDescriptions(doc)
		p.printf("\n")
	}
	p.simulations(doc)
	p.printf("\n")
	p.models(doc)
	p.printf("\n")
	p.tasks(doc)
	p.printf("\n")
	p.dataGenerators(doc)
	p.printf("\n")
	p.outputs(doc)
	return errors.Wrap(p.w.Flush(), "summary")
}

// Warnings prints the entries of errs below error severity, prefixed
// "Warnings:". Nothing is printed when there are none.
func Warnings(w io.Writer, errs *sederr.Log) error {
	var b strings.Builder
	for _, e := range errs.Entries() {
		if e.Severity < sederr.SeverityError {
			b.WriteString(e.Error())
			b.WriteByte('\n')
		}
	}
	if b.Len() == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "Warnings: %s\n", b.String())
	return errors.Wrap(err, "summary")
}

// printer writes to a buffered writer, whose error is sticky and
// reported by Flush
type printer struct {
	w *bufio.Writer
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *printer) dataDescriptions(doc *dom.Document) {
	p.printf("The document has %d data description(s).\n", len(doc.DataDescriptions))
	for _, dd := range doc.DataDescriptions {
		p.printf("\tDataDescription id=%s source=%s format=%s\n", dd.ID, dd.Source, dd.Format)
	}
}

func kisao(s dom.Simulation) string {
	if a := s.SimulationAlgorithm(); a != nil {
		return a.KisaoID
	}
	return "none"
}

func (p *printer) simulations(doc *dom.Document) {
	p.printf("The document has %d simulation(s).\n", len(doc.Simulations))
	for _, s := range doc.Simulations {
		switch s := s.(type) {
		case *dom.UniformTimeCourse:
			p.printf("\tTimecourse id=%s start=%v end=%v numPoints=%d kisao=%s\n",
				s.ID, s.OutputStartTime, s.OutputEndTime, s.NumberOfPoints, kisao(s))
		case *dom.OneStep:
			p.printf("\tOneStep id=%s step=%v\n", s.ID, s.Step)
		case *dom.SteadyState:
			p.printf("\tSteadyState id=%s\n", s.ID)
		case *dom.Analysis:
			p.printf("\tAnalysis id=%s\n", s.ID)
		default:
			p.printf("\tunknown simulation id=%s\n", s.SedBase().ID)
		}
	}
}

func (p *printer) models(doc *dom.Document) {
	p.printf("The document has %d model(s).\n", len(doc.Models))
	for _, m := range doc.Models {
		p.printf("\tModel id=%s language=%s source=%s numChanges=%d\n", m.ID, m.Language, m.Source, len(m.Changes))
		for i, c := range m.Changes {
			p.printf("\t\tchange %d target: %s", i+1, c.ChangeTarget())
			switch c := c.(type) {
			case *dom.ChangeAttribute:
				p.printf(" changes the attribute to: %s", c.NewValue)
			case *dom.RemoveXML:
				p.printf(" removes the target!")
			case *dom.ComputeChange:
				p.printf(" replaces the value with the computation: %s", c.Formula())
			case *dom.AddXML:
				p.printf(" adds the following child: %s", c.NewXML)
			case *dom.ChangeXML:
				p.printf(" replaces the target with: %s", c.NewXML)
			default:
				p.printf(" is of unknown type!")
			}
			p.printf("\n")
		}
	}
}

func (p *printer) tasks(doc *dom.Document) {
	p.printf("The document has %d task(s).\n", len(doc.Tasks))
	for _, t := range doc.Tasks {
		switch t := t.(type) {
		case *dom.Task:
			p.printf("\tTask id=%s model=%s sim=%s\n", t.ID, t.ModelReference, t.SimulationReference)
		case *dom.RepeatedTask:
			p.repeatedTask(t)
		default:
			p.printf("\tunknown task id=%s\n", t.SedBase().ID)
		}
	}
}

func (p *printer) repeatedTask(t *dom.RepeatedTask) {
	p.printf("\tRepeatedTask id=%s resetModel=%t range=%s\n", t.ID, t.ResetModel, t.RangeID)
	for _, r := range t.Ranges {
		switch r := r.(type) {
		case *dom.UniformRange:
			p.printf("\t\tUniformRange id=%s start=%v end=%v numPoints=%d type=%s\n",
				r.ID, r.Start, r.End, r.NumberOfPoints, r.Type)
		case *dom.VectorRange:
			values := make([]string, len(r.Values))
			for i, v := range r.Values {
				values[i] = fmt.Sprint(v)
			}
			p.printf("\t\tVectorRange id=%s values=%s\n", r.ID, strings.Join(values, ", "))
		case *dom.FunctionalRange:
			p.printf("\t\tFunctionalRange id=%s range=%s math=%s\n", r.ID, r.RangeID, r.Formula())
		}
	}
	for _, sv := range t.SetValues {
		p.printf("\t\tSetValue range=%s modelReference=%s target=%s math=%s\n",
			sv.RangeID, sv.ModelReference, sv.Target, sv.Formula())
	}
	for _, st := range t.SubTasks {
		order := "unset"
		if st.Order != nil {
			order = fmt.Sprint(*st.Order)
		}
		p.printf("\t\tSubTask order=%s task=%s\n", order, st.Task)
	}
}

func (p *printer) dataGenerators(doc *dom.Document) {
	p.printf("The document has %d datagenerator(s).\n", len(doc.DataGenerators))
	for _, dg := range doc.DataGenerators {
		p.printf("\tDG id=%s math=%s\n", dg.ID, dg.Formula())
	}
}

func (p *printer) outputs(doc *dom.Document) {
	p.printf("The document has %d output(s).\n", len(doc.Outputs))
	for _, o := range doc.Outputs {
		switch o := o.(type) {
		case *dom.Report:
			p.printf("\tReport id=%s numDataSets=%d\n", o.ID, len(o.DataSets))
		case *dom.Plot2D:
			p.printf("\tPlot2d id=%s numCurves=%d\n", o.ID, len(o.Curves))
		case *dom.Plot3D:
			p.printf("\tPlot3d id=%s numSurfaces=%d\n", o.ID, len(o.Surfaces))
		default:
			p.printf("\tunknown output id=%s\n", o.SedBase().ID)
		}
	}
}
