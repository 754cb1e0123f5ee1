package sederr

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err *Error

		error string
		xml   string
		json  string
	}{
		{
			err:   UnrecognizedElement("foo", "listOfModels", WithPosition(3, 5)),
			error: "line 3: (10002 [Error]) Encountered unrecognized element: element <foo> is not permitted inside <listOfModels>",
			xml:   `<error code="10002" severity="error" category="xml" line="3" column="5"><element>foo</element><message>element &lt;foo&gt; is not permitted inside &lt;listOfModels&gt;</message></error>`,
			json:  `{"code":10002,"severity":"error","category":"xml","line":3,"column":5,"element":"foo","message":"element \u003cfoo\u003e is not permitted inside \u003clistOfModels\u003e"}`,
		},
		{
			err:   NotSchemaConformant(WithSeverity(SeverityWarning), WithMessage("XML syntax error")),
			error: "(10003 [Fatal]) Document does not conform to the SED-ML XML schema: XML syntax error",
			xml:   `<error code="10003" severity="fatal" category="xml"><message>XML syntax error</message></error>`,
			json:  `{"code":10003,"severity":"fatal","category":"xml","message":"XML syntax error"}`,
		},
		{
			err:   MissingAttribute(SedmlTaskAllowedAttributes, "modelReference", "task"),
			error: "(21303 [Error]) Attributes allowed on <task>: attribute 'modelReference' is missing from the <task> element",
			xml:   `<error code="21303" severity="error" category="general-consistency"><element>task</element><attribute>modelReference</attribute><message>attribute &#39;modelReference&#39; is missing from the &lt;task&gt; element</message></error>`,
			json:  `{"code":21303,"severity":"error","category":"general-consistency","element":"task","attribute":"modelReference","message":"attribute 'modelReference' is missing from the \u003ctask\u003e element"}`,
		},
		{
			err:   UnknownAttribute("colour", "curve"),
			error: "(99994 [Warning]) Encountered an unknown attribute in the SED-ML namespace: attribute 'colour' is not defined for the <curve> element",
			xml:   `<error code="99994" severity="warning" category="general-consistency"><element>curve</element><attribute>colour</attribute><message>attribute &#39;colour&#39; is not defined for the &lt;curve&gt; element</message></error>`,
			json:  `{"code":99994,"severity":"warning","category":"general-consistency","element":"curve","attribute":"colour","message":"attribute 'colour' is not defined for the \u003ccurve\u003e element"}`,
		},
		{
			err:   New(Code(12345)),
			error: "(12345 [Error]) SED-ML error 12345",
			xml:   `<error code="12345" severity="error" category="sedml"></error>`,
			json:  `{"code":12345,"severity":"error","category":"sedml"}`,
		},
	} {
		t.Run(fmt.Sprintf("%d", tc.err.Code), func(t *testing.T) {
			check := assert.New(t)
			bXML, err := xml.Marshal(tc.err)
			check.NoError(err)
			bJSON, err := json.Marshal(tc.err)
			check.NoError(err)
			check.Equal(tc.error, tc.err.Error())
			check.Equal(tc.xml, string(bXML))
			check.Equal(tc.json, string(bJSON))

			ev := Error{}
			if check.NoError(xml.Unmarshal(bXML, &ev)) {
				evXML, _ := xml.Marshal(ev)
				check.Equal(tc.xml, string(evXML))
			}
			ev = Error{}
			if check.NoError(json.Unmarshal(bJSON, &ev)) {
				evJSON, _ := json.Marshal(ev)
				check.Equal(tc.json, string(evJSON))
			}
		})
	}
}

func TestSeverityText(t *testing.T) {
	check := assert.New(t)
	for _, s := range []Severity{SeverityInfo, SeverityWarning, SeverityError, SeverityFatal} {
		b, err := s.MarshalText()
		check.NoError(err)
		var got Severity
		check.NoError(got.UnmarshalText(b))
		check.Equal(s, got)
	}
	var s Severity
	check.Error(s.UnmarshalText([]byte("catastrophic")))
	check.Equal("Severity(9)", Severity(9).String())
}

func TestIsError(t *testing.T) {
	check := assert.New(t)
	wrapped := errors.Wrap(DuplicateID("m1", "model"), "reading document")
	e, ok := IsError(wrapped)
	check.True(ok)
	check.Equal(SedmlDuplicateComponentId, e.Code)

	_, ok = IsError(errors.New("plain"))
	check.False(ok)
}
