package dom

import "github.com/andaru/sedml/xmlutil"

// Element is implemented by every SED-ML object
type Element interface {
	TypeCode() TypeCode
	SedBase() *Base
	Parent() Element
}

// Base holds the attributes common to all SED-ML elements
type Base struct {
	ID     string
	Name   string
	MetaID string

	// Notes and Annotation hold the raw inner XML of the <notes> and
	// <annotation> children.
	Notes      string
	Annotation string

	// Line and Column locate the element in the document it was read
	// from; both are zero for elements built in memory.
	Line   int
	Column int

	// DeclaredNamespaces holds the prefixed namespace declarations made
	// on the element itself. Root declarations live in
	// Document.Namespaces.
	DeclaredNamespaces xmlutil.PrefixMap

	parent Element
}

// SedBase returns b
func (b *Base) SedBase() *Base { return b }

// Parent returns the element owning b, or nil for a Document
func (b *Base) Parent() Element { return b.parent }

// SetPosition records the source position of the element
func (b *Base) SetPosition(line, col int) {
	b.Line, b.Column = line, col
}

// DeclareNamespace declares a namespace prefix on the element
func (b *Base) DeclareNamespace(prefix, uri string) {
	if b.DeclaredNamespaces == nil {
		b.DeclaredNamespaces = xmlutil.PrefixMap{}
	}
	b.DeclaredNamespaces[prefix] = uri
}

// NamespacesInScope returns the namespace prefixes in scope at e: those
// of the document root, overridden by declarations on e and its
// ancestors, the closest winning
func NamespacesInScope(e Element) xmlutil.PrefixMap {
	var chain []Element
	for ; e != nil; e = e.Parent() {
		chain = append(chain, e)
	}
	scope := xmlutil.PrefixMap{}
	for i := len(chain) - 1; i >= 0; i-- {
		if d, ok := chain[i].(*Document); ok {
			scope.Merge(d.Namespaces)
		}
		scope.Merge(chain[i].SedBase().DeclaredNamespaces)
	}
	return scope
}

// DocumentOf returns the Document which ultimately owns e, or nil when e
// is detached
func DocumentOf(e Element) *Document {
	for e != nil {
		if d, ok := e.(*Document); ok {
			return d
		}
		e = e.Parent()
	}
	return nil
}
