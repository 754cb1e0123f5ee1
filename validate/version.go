package validate

import (
	"fmt"

	"github.com/andaru/sedml/dom"
	"github.com/andaru/sedml/sederr"
)

// introduced gives the first Level 1 version defining each element type.
// Types not listed exist from Level 1 Version 1.
var introduced = map[dom.TypeCode]int{
	dom.TypeDataDescription:    2,
	dom.TypeDataSource:         2,
	dom.TypeSlice:              2,
	dom.TypeRepeatedTask:       2,
	dom.TypeUniformRange:       2,
	dom.TypeVectorRange:        2,
	dom.TypeFunctionalRange:    2,
	dom.TypeSetValue:           2,
	dom.TypeSubTask:            2,
	dom.TypeOneStep:            2,
	dom.TypeSteadyState:        2,
	dom.TypeAlgorithmParameter: 3,
	dom.TypeAnalysis:           4,
}

// LevelVersion reports, as warnings, the elements and attributes of doc
// which its level and version do not define. Writing such a document
// keeps them, but readers of that release may reject or drop them.
func LevelVersion(doc *dom.Document) *sederr.Log {
	c := &checker{doc: doc, errs: &sederr.Log{}}
	if doc.Level != 1 {
		return c.errs
	}
	release := fmt.Sprintf("SED-ML Level %d Version %d", doc.Level, doc.Version)
	_ = doc.Walk(func(e dom.Element) error {
		if v, ok := introduced[e.TypeCode()]; ok && doc.Version < v {
			c.add(e, sederr.New(sederr.SedNotInLevelVersion,
				sederr.WithMessage(fmt.Sprintf("<%s> is not part of %s", e.TypeCode(), release))))
			return dom.SkipChildren
		}
		if cv, ok := e.(*dom.Curve); ok && doc.Version < 4 {
			for _, attr := range curveStyleAttrs(cv) {
				c.add(e, sederr.New(sederr.SedNotInLevelVersion, sederr.WithAttribute(attr),
					sederr.WithMessage(fmt.Sprintf("the '%s' attribute of <curve> is not part of %s", attr, release))))
			}
		}
		return nil
	})
	return c.errs
}

func curveStyleAttrs(c *dom.Curve) (attrs []string) {
	if c.Type != "" {
		attrs = append(attrs, "type")
	}
	if c.Style != "" {
		attrs = append(attrs, "style")
	}
	if c.Order != nil {
		attrs = append(attrs, "order")
	}
	return attrs
}
