package xmlutil

import (
	"encoding/xml"
	"sort"

	"github.com/antchfx/xmlquery"
)

// PrefixMap is a prefix to namespace URI map
type PrefixMap map[string]string

// NewPrefixMap returns a PrefixMap, containing the passed XML attributes
func NewPrefixMap(attrs ...xml.Attr) PrefixMap {
	pmap := PrefixMap{}
	for _, attr := range attrs {
		if attr.Name.Space == "xmlns" {
			pmap[attr.Name.Local] = attr.Value
		}
	}
	return pmap
}

// FromNode returns the prefixed namespace declarations in scope at n.
// Declarations closer to n take precedence over those of its ancestors.
func FromNode(n *xmlquery.Node) PrefixMap {
	pmap := PrefixMap{}
	var chain []*xmlquery.Node
	for ; n != nil; n = n.Parent {
		chain = append(chain, n)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		for _, a := range chain[i].Attr {
			if a.Name.Space == "xmlns" {
				pmap[a.Name.Local] = a.Value
			}
		}
	}
	return pmap
}

// Prefixes returns the map's prefixes in lexical order
func (m PrefixMap) Prefixes() []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Attr returns the prefix map contents as a series of xmlns:<prefix>=<nsuri> attributes,
// sorted lexically by prefix. The prefix is spelled out in the attribute's
// local name so the result can be passed straight to an xml.Encoder.
func (m PrefixMap) Attr() (a []xml.Attr) {
	for _, k := range m.Prefixes() {
		a = append(a, xml.Attr{Name: xml.Name{Local: "xmlns:" + k}, Value: m[k]})
	}
	return a
}

// Namespace returns the namespace URI for the given prefix
func (m PrefixMap) Namespace(prefix string) string { return m[prefix] }

// Prefix returns any prefixes found for the namespace URI, sorted
func (m PrefixMap) Prefix(nsURI string) (pfxes []string) {
	for _, k := range m.Prefixes() {
		if nsURI == m[k] {
			pfxes = append(pfxes, k)
		}
	}
	return pfxes
}

// Clone returns a copy of m. A nil map clones to an empty one.
func (m PrefixMap) Clone() PrefixMap {
	c := make(PrefixMap, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Merge adds the entries of o to m, replacing existing prefixes
func (m PrefixMap) Merge(o PrefixMap) PrefixMap {
	for k, v := range o {
		m[k] = v
	}
	return m
}
