package xmlutil

import (
	"encoding/xml"

	"github.com/antchfx/xmlquery"
)

// XMLName is a shortcut for creating xml.Name, where typically you want at least
// a local name, and perhaps a namespace value as well.
func XMLName(local string, spaces ...string) xml.Name {
	n := xml.Name{Local: local}
	if len(spaces) > 0 {
		n.Space = spaces[0]
	}
	return n
}

// XMLAttr returns an unqualified attribute
func XMLAttr(local, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: local}, Value: value}
}

// Attrs returns the attributes of an xmlquery element, excluding
// namespace declarations
func Attrs(n *xmlquery.Node) []xmlquery.Attr {
	var out []xmlquery.Attr
	for _, a := range n.Attr {
		if IsNamespaceDecl(a.Name) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// IsNamespaceDecl reports whether an attribute name is an xmlns
// declaration
func IsNamespaceDecl(name xml.Name) bool {
	return name.Space == "xmlns" || (name.Space == "" && name.Local == "xmlns")
}
