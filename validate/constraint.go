package validate

import (
	"fmt"

	"github.com/andaru/sedml/dom"
)

// ConstraintError describes a cardinality constraint that failed on an
// element of the document
type ConstraintError struct {
	Element dom.Element // Element is the element the constraint failed upon
	Name    string      // Name is the constraint which failed
	Args    interface{}
}

func (e ConstraintError) Error() string {
	var constraint string
	switch e.Name {
	case "min-occurs", "max-occurs":
		v, _ := e.Args.([]int)
		constraint = fmt.Sprintf("%s:%d (saw %d)", e.Name, v[1], v[0])
	default:
		constraint = e.Name
	}
	if e.Element != nil {
		return fmt.Sprintf("constraint %s failed on element %s", constraint, describe(e.Element))
	}
	return fmt.Sprintf("constraint %s failed", constraint)
}

// IsConstraintError returns err as a ConstraintError, if it is one
func IsConstraintError(err error) (ConstraintError, bool) {
	ce, ok := err.(ConstraintError)
	return ce, ok
}

func minOccurs(e dom.Element, saw, want int) ConstraintError {
	return ConstraintError{Element: e, Name: "min-occurs", Args: []int{saw, want}}
}

// describe renders an element as a short start tag, e.g. <report id="r1">
func describe(e dom.Element) string {
	if id := e.SedBase().ID; id != "" {
		return fmt.Sprintf("<%s id=%q>", e.TypeCode(), id)
	}
	return fmt.Sprintf("<%s>", e.TypeCode())
}
