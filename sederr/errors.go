package sederr

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// Severity represents the grade of a SED-ML diagnostic
type Severity int

const (
	// SeverityInfo is an informational message
	SeverityInfo Severity = iota
	// SeverityWarning indicates a problem which does not prevent the
	// document from being used
	SeverityWarning
	// SeverityError indicates an invalid document
	SeverityError
	// SeverityFatal indicates the document could not be read at all
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "Info"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	case SeverityFatal:
		return "Fatal"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

func (s Severity) MarshalText() ([]byte, error) { return []byte(strings.ToLower(s.String())), nil }

func (s *Severity) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch strings.ToLower(string(b)) {
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	case "fatal":
		*s = SeverityFatal
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Category groups diagnostics by the kind of check that produced them
type Category int

const (
	// CategorySEDML is a general SED-ML rule
	CategorySEDML Category = iota
	// CategoryXML is an XML syntax or structure problem
	CategoryXML
	// CategoryGeneral is a general consistency rule
	CategoryGeneral
	// CategoryIdentifier is an identifier syntax or reference rule
	CategoryIdentifier
	// CategoryMathML is a math content rule
	CategoryMathML
	// CategoryInternal is an internal library problem
	CategoryInternal
)

func (c Category) String() string {
	switch c {
	case CategorySEDML:
		return "sedml"
	case CategoryXML:
		return "xml"
	case CategoryGeneral:
		return "general-consistency"
	case CategoryIdentifier:
		return "identifier-consistency"
	case CategoryMathML:
		return "mathml-consistency"
	case CategoryInternal:
		return "internal"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Category) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "sedml":
		*c = CategorySEDML
	case "xml":
		*c = CategoryXML
	case "general-consistency":
		*c = CategoryGeneral
	case "identifier-consistency":
		*c = CategoryIdentifier
	case "mathml-consistency":
		*c = CategoryMathML
	case "internal":
		*c = CategoryInternal
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Error is a single SED-ML diagnostic.
//
// Line and Column locate the element the diagnostic refers to in the
// source document and are zero for documents built in memory.
type Error struct {
	XMLName   xml.Name `xml:"error" json:"-"`
	Code      Code     `xml:"code,attr" json:"code"`
	Severity  Severity `xml:"severity,attr" json:"severity"`
	Category  Category `xml:"category,attr" json:"category"`
	Line      int      `xml:"line,attr,omitempty" json:"line,omitempty"`
	Column    int      `xml:"column,attr,omitempty" json:"column,omitempty"`
	Element   string   `xml:"element,omitempty" json:"element,omitempty"`
	Attribute string   `xml:"attribute,omitempty" json:"attribute,omitempty"`
	Message   string   `xml:"message,omitempty" json:"message,omitempty"`
}

func (e Error) Error() string {
	s := fmt.Sprintf("(%05d [%s]) %s", int(e.Code), e.Severity, e.Code.ShortMessage())
	if e.Line > 0 {
		s = fmt.Sprintf("line %d: %s", e.Line, s)
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}

// New returns a new Error with code c, taking the severity and
// category defaults of the code before applying opts.
func New(c Code, opts ...Option) *Error {
	e := &Error{Code: c, Severity: c.DefaultSeverity(), Category: c.DefaultCategory()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsError returns the *Error wrapped in err, if any
func IsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func UnrecognizedElement(elementName, parentName string, opts ...Option) *Error {
	e := New(SedUnrecognizedElement, WithElement(elementName), WithMessage(fmt.Sprintf(
		"element <%s> is not permitted inside <%s>", elementName, parentName)))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NotSchemaConformant(opts ...Option) *Error {
	e := New(SedNotSchemaConformant)
	for _, opt := range opts {
		opt(e)
	}
	// a document that failed to parse is always fatal
	e.Severity = SeverityFatal
	return e
}

func MissingAttribute(c Code, attributeName, elementName string, opts ...Option) *Error {
	e := New(c, WithElement(elementName), WithAttribute(attributeName), WithMessage(fmt.Sprintf(
		"attribute '%s' is missing from the <%s> element", attributeName, elementName)))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func AttributeTypeMismatch(c Code, attributeName, elementName, kind, value string, opts ...Option) *Error {
	e := New(c, WithElement(elementName), WithAttribute(attributeName), WithMessage(fmt.Sprintf(
		"attribute '%s' of the <%s> element must be %s, got %q", attributeName, elementName, kind, value)))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func MissingElement(c Code, childName, elementName string, opts ...Option) *Error {
	e := New(c, WithElement(elementName), WithMessage(fmt.Sprintf(
		"the <%s> element requires a <%s> child", elementName, childName)))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func UnknownAttribute(attributeName, elementName string, opts ...Option) *Error {
	e := New(SedUnknownCoreAttribute, WithElement(elementName), WithAttribute(attributeName), WithMessage(fmt.Sprintf(
		"attribute '%s' is not defined for the <%s> element", attributeName, elementName)))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func InvalidMath(elementName string, cause error, opts ...Option) *Error {
	msg := fmt.Sprintf("invalid math in the <%s> element", elementName)
	if cause != nil {
		msg += ": " + cause.Error()
	}
	e := New(SedInvalidMathElement, WithElement(elementName), WithMessage(msg))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func DuplicateID(id, elementName string, opts ...Option) *Error {
	e := New(SedmlDuplicateComponentId, WithElement(elementName), WithAttribute("id"), WithMessage(fmt.Sprintf(
		"the id '%s' of the <%s> element is already in use", id, elementName)))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func InvalidID(id, elementName string, opts ...Option) *Error {
	e := New(SedmlIdSyntaxRule, WithElement(elementName), WithAttribute("id"), WithMessage(fmt.Sprintf(
		"the id '%s' of the <%s> element does not conform to the SId syntax", id, elementName)))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func BadReference(c Code, attributeName, elementName, value string, opts ...Option) *Error {
	e := New(c, WithElement(elementName), WithAttribute(attributeName), WithMessage(fmt.Sprintf(
		"the '%s' attribute of the <%s> element refers to '%s', which does not exist", attributeName, elementName, value)))
	for _, opt := range opts {
		opt(e)
	}
	return e
}
