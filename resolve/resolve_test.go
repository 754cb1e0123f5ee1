package resolve

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andaru/sedml/dom"
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sbmlNS = "http://www.sbml.org/sbml/level2"

const testModel = `<?xml version="1.0" encoding="UTF-8"?>
<sbml xmlns="http://www.sbml.org/sbml/level2" level="2" version="1">
  <model id="m">
    <listOfSpecies>
      <species id="S1" initialConcentration="1"/>
      <species id="S2" initialConcentration="4"/>
    </listOfSpecies>
    <listOfParameters>
      <parameter id="k" value="0.5"/>
    </listOfParameters>
  </model>
</sbml>`

const (
	species    = "/sbml:sbml/sbml:model/sbml:listOfSpecies/sbml:species"
	parameters = "/sbml:sbml/sbml:model/sbml:listOfParameters"
)

func testDocument() *dom.Document {
	doc := dom.NewDocument(1, 3)
	doc.AddNamespace("sbml", sbmlNS)
	m := doc.CreateModel()
	m.ID, m.Source, m.Language = "model1", "model.xml", dom.LanguageSBML
	return doc
}

func writeModel(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.xml"), []byte(testModel), 0o644))
	return dir
}

func attr(t *testing.T, top *xmlquery.Node, expr, name string) string {
	n := xmlquery.FindOne(top, expr)
	require.NotNil(t, n, expr)
	return n.SelectAttr(name)
}

func TestModelSource(t *testing.T) {
	r := &Resolver{BaseDir: writeModel(t)}
	top, err := r.Model(context.Background(), testDocument(), "model1")
	require.NoError(t, err)
	assert.Equal(t, "0.5", attr(t, top, "//*[local-name()='parameter']", "value"))
}

func TestChanges(t *testing.T) {
	check := assert.New(t)
	doc := testDocument()
	m2 := doc.CreateModel()
	m2.ID, m2.Source = "model2", "model1"
	m2.NewChangeAttribute(parameters+"/sbml:parameter[@id='k']/@value", "0.1")
	rm := m2.CreateRemoveXML()
	rm.Target = species + "[@id='S1']"
	add := m2.CreateAddXML()
	add.Target = parameters
	add.NewXML = `<sbml:parameter id="k2" value="7"/>`
	cc := m2.CreateComputeChange()
	cc.Target = species + "[@id='S2']/@initialConcentration"
	v := cc.CreateVariable()
	v.ID, v.ModelReference, v.Target = "S2", "model1", species+"[@id='S2']"
	p := cc.CreateParameter()
	p.ID, p.Value = "d", 2
	require.NoError(t, cc.SetFormula("S2 / d"))
	chg := m2.CreateChangeXML()
	chg.Target = parameters + "/sbml:parameter[@id='k2']"
	chg.NewXML = `<parameter id="k3" value="8"/><parameter id="k4" value="9"/>`

	r := &Resolver{BaseDir: writeModel(t)}
	top, err := r.Model(context.Background(), doc, "model2")
	require.NoError(t, err)

	check.Equal("0.1", attr(t, top, "//*[local-name()='parameter'][@id='k']", "value"))
	check.Nil(xmlquery.FindOne(top, "//*[local-name()='species'][@id='S1']"))
	check.Equal("2", attr(t, top, "//*[local-name()='species'][@id='S2']", "initialConcentration"))
	check.Nil(xmlquery.FindOne(top, "//*[local-name()='parameter'][@id='k2']"))

	var ids []string
	for _, n := range xmlquery.Find(top, "//*[local-name()='parameter']") {
		ids = append(ids, n.SelectAttr("id"))
		check.Equal(sbmlNS, n.NamespaceURI)
		check.Equal("", n.Prefix)
	}
	check.Equal([]string{"k", "k3", "k4"}, ids)

	out := top.OutputXML(true)
	check.Contains(out, `<parameter id="k3" value="8"`)
	check.NotContains(out, "sbml:parameter")

	// model1 itself is unchanged
	top, err = r.Model(context.Background(), doc, "model1")
	require.NoError(t, err)
	check.Equal("4", attr(t, top, "//*[local-name()='species'][@id='S2']", "initialConcentration"))
}

func TestValue(t *testing.T) {
	top, err := xmlquery.Parse(strings.NewReader(testModel))
	require.NoError(t, err)
	ns := map[string]string{"sbml": sbmlNS}
	for _, tc := range []struct {
		target string
		want   float64
	}{
		{target: species + "[@id='S2']", want: 4},
		{target: species + "[@id='S1']/@initialConcentration", want: 1},
		{target: parameters + "/sbml:parameter[@id='k']", want: 0.5},
	} {
		t.Run(tc.target, func(t *testing.T) {
			v, err := Value(top, tc.target, ns)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}

	_, err = Value(top, species+"[@id='nope']", ns)
	assert.True(t, errors.Is(err, ErrNoMatch), "%v", err)
	_, err = Value(top, "/sbml:sbml/sbml:model", ns)
	assert.Error(t, err)
}

func TestSplitTarget(t *testing.T) {
	for _, tc := range []struct {
		in, path, attr string
	}{
		{in: "/a/b/@c", path: "/a/b", attr: "c"},
		{in: "/a/b[@id='x']", path: "/a/b[@id='x']"},
		{in: "/a/b[@id='x']/@sbml:value", path: "/a/b[@id='x']", attr: "sbml:value"},
	} {
		path, attr := splitTarget(tc.in)
		assert.Equal(t, tc.path, path, tc.in)
		assert.Equal(t, tc.attr, attr, tc.in)
	}
}

func TestModelErrors(t *testing.T) {
	dir := writeModel(t)
	for _, tc := range []struct {
		name   string
		modify func(doc *dom.Document)
		id     string
		is     error
	}{
		{
			name: "unknown model",
			id:   "nope",
		},
		{
			name: "source cycle",
			modify: func(doc *dom.Document) {
				a := doc.CreateModel()
				a.ID, a.Source = "a", "b"
				b := doc.CreateModel()
				b.ID, b.Source = "b", "a"
			},
			id: "a",
			is: ErrSourceCycle,
		},
		{
			name: "target matches nothing",
			modify: func(doc *dom.Document) {
				doc.Models[0].CreateRemoveXML().Target = species + "[@id='S9']"
			},
			id: "model1",
			is: ErrNoMatch,
		},
		{
			name:   "urn source",
			modify: func(doc *dom.Document) { doc.Models[0].Source = "urn:miriam:biomodels.db:BIOMD0000000012" },
			id:     "model1",
			is:     ErrUnsupportedSource,
		},
		{
			name:   "missing file",
			modify: func(doc *dom.Document) { doc.Models[0].Source = "missing.xml" },
			id:     "model1",
			is:     os.ErrNotExist,
		},
		{
			name: "bad newXML",
			modify: func(doc *dom.Document) {
				add := doc.Models[0].CreateAddXML()
				add.Target, add.NewXML = parameters, "<parameter"
			},
			id: "model1",
		},
		{
			name: "attribute target required",
			modify: func(doc *dom.Document) {
				doc.Models[0].NewChangeAttribute(species+"[@id='S1']", "2")
			},
			id: "model1",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc := testDocument()
			if tc.modify != nil {
				tc.modify(doc)
			}
			r := &Resolver{BaseDir: dir}
			_, err := r.Model(context.Background(), doc, tc.id)
			require.Error(t, err)
			if tc.is != nil {
				assert.True(t, errors.Is(err, tc.is), "%v", err)
			}
		})
	}
}

func TestOpenAndCancel(t *testing.T) {
	var opened []string
	r := &Resolver{
		BaseDir: "models",
		Open: func(path string) (io.ReadCloser, error) {
			opened = append(opened, path)
			return io.NopCloser(strings.NewReader(testModel)), nil
		},
	}
	doc := testDocument()
	doc.Models[0].NewChangeAttribute(parameters+"/sbml:parameter[@id='k']/@value", "3")

	_, err := r.Model(context.Background(), doc, "model1")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("models", "model.xml")}, opened)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Model(ctx, doc, "model1")
	assert.True(t, errors.Is(err, context.Canceled), "%v", err)
}

func TestChangeNamespaces(t *testing.T) {
	doc := dom.NewDocument(1, 3)
	m := doc.CreateModel()
	m.ID, m.Source = "model1", "model.xml"
	m.DeclareNamespace("s", sbmlNS)
	m.NewChangeAttribute("/s:sbml/s:model/s:listOfParameters/s:parameter[@id='k']/@value", "9")
	add := m.CreateAddXML()
	add.Target, add.NewXML = "/s:sbml/s:model/s:listOfParameters", `<s:parameter id="k5" value="1"/>`

	r := &Resolver{BaseDir: writeModel(t)}
	top, err := r.Model(context.Background(), doc, "model1")
	require.NoError(t, err)
	check := assert.New(t)
	check.Equal("9", attr(t, top, "//*[local-name()='parameter'][@id='k']", "value"))
	k5 := xmlquery.FindOne(top, "//*[local-name()='parameter'][@id='k5']")
	require.NotNil(t, k5)
	check.Equal(sbmlNS, k5.NamespaceURI)
	check.Same(xmlquery.FindOne(top, "//*[local-name()='listOfParameters']"), k5.Parent)
}

func TestSetAttrAddsMissing(t *testing.T) {
	top, err := xmlquery.Parse(strings.NewReader(testModel))
	require.NoError(t, err)
	ns := map[string]string{"sbml": sbmlNS}
	require.NoError(t, setAttr(top, species+"[@id='S1']/@constant", "true", ns))
	require.NoError(t, setAttr(top, species+"[@id='S1']/@initialConcentration", "2", ns))
	s1 := xmlquery.FindOne(top, "//*[local-name()='species'][@id='S1']")
	require.NotNil(t, s1)
	assert.Equal(t, "true", s1.SelectAttr("constant"))
	assert.Equal(t, "2", s1.SelectAttr("initialConcentration"))
	assert.Len(t, s1.Attr, 3)
}
