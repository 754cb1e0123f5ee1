package sedxml

import (
	"strconv"
	"strings"

	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/xmlutil"
	"github.com/antchfx/xmlquery"
)

// attrReader reads the unqualified attributes of one element and
// remembers which were consumed, so that the rest can be reported
type attrReader struct {
	r    *reader
	n    *xmlquery.Node
	code sederr.Code
	used map[string]bool
}

func (r *reader) attrs(n *xmlquery.Node, code sederr.Code) *attrReader {
	return &attrReader{r: r, n: n, code: code, used: map[string]bool{}}
}

func (a *attrReader) has(name string) bool {
	_, ok := a.value(name)
	return ok
}

func (a *attrReader) value(name string) (string, bool) {
	for _, at := range a.n.Attr {
		if at.Name.Space == "" && at.Name.Local == name {
			return at.Value, true
		}
	}
	return "", false
}

func (a *attrReader) lookup(name string, required bool) (string, bool) {
	a.used[name] = true
	v, ok := a.value(name)
	if !ok && required {
		a.r.add(a.n, sederr.MissingAttribute(a.code, name, a.n.Data))
	}
	return v, ok
}

func (a *attrReader) mismatch(code sederr.Code, name, kind, value string) {
	if code == 0 {
		code = a.code
	}
	a.r.add(a.n, sederr.AttributeTypeMismatch(code, name, a.n.Data, kind, value))
}

func (a *attrReader) str(name string, required bool) string {
	v, _ := a.lookup(name, required)
	return v
}

func (a *attrReader) float(name string, required bool, code sederr.Code) (float64, bool) {
	v, ok := a.lookup(name, required)
	if !ok {
		return 0, false
	}
	f, err := parseDouble(v)
	if err != nil {
		a.mismatch(code, name, "a double", v)
		return 0, false
	}
	return f, true
}

func (a *attrReader) int(name string, required bool, code sederr.Code) (int, bool) {
	v, ok := a.lookup(name, required)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		a.mismatch(code, name, "an integer", v)
		return 0, false
	}
	return i, true
}

func (a *attrReader) bool(name string, required bool, code sederr.Code) (bool, bool) {
	v, ok := a.lookup(name, required)
	if !ok {
		return false, false
	}
	switch strings.TrimSpace(v) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	a.mismatch(code, name, "a boolean", v)
	return false, false
}

// steps reads numberOfSteps or numberOfPoints, whichever is present,
// preferring the attribute name of the document's version when neither is
func (a *attrReader) steps(code sederr.Code) int {
	name := "numberOfPoints"
	if a.has("numberOfSteps") || (!a.has("numberOfPoints") && a.r.doc.UsesNumberOfSteps()) {
		name = "numberOfSteps"
	}
	v, _ := a.int(name, true, code)
	a.used["numberOfPoints"] = true
	a.used["numberOfSteps"] = true
	return v
}

// done reports unqualified attributes which were never read
func (a *attrReader) done() {
	for _, at := range xmlutil.Attrs(a.n) {
		if at.Name.Space != "" || a.used[at.Name.Local] {
			continue
		}
		a.r.add(a.n, sederr.UnknownAttribute(at.Name.Local, a.n.Data))
	}
}

func parseDouble(s string) (float64, error) {
	switch s = strings.TrimSpace(s); s {
	case "INF":
		s = "+Inf"
	case "-INF":
		s = "-Inf"
	}
	return strconv.ParseFloat(s, 64)
}
