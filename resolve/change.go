package resolve

import (
	"context"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/andaru/sedml/dom"
	"github.com/andaru/sedml/mathml"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
)

// valueAttrs are read, in order, when a target addresses an element
// rather than one of its attributes
var valueAttrs = []string{"value", "initialConcentration", "initialAmount", "size"}

type applier struct {
	r         *Resolver
	ctx       context.Context
	doc       *dom.Document
	model     *dom.Model
	top       *xmlquery.Node
	resolving map[string]bool
}

func (a *applier) apply(change dom.Change) error {
	ns := dom.NamespacesInScope(change)
	switch c := change.(type) {
	case *dom.ChangeAttribute:
		return setAttr(a.top, c.Target, c.NewValue, ns)
	case *dom.RemoveXML:
		nodes, err := selectAll(a.top, c.Target, ns)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			xmlquery.RemoveFromTree(n)
		}
		return nil
	case *dom.AddXML:
		nodes, err := selectAll(a.top, c.Target, ns)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			children, err := fragment(c.NewXML, n, ns)
			if err != nil {
				return err
			}
			for _, child := range children {
				xmlquery.AddChild(n, child)
			}
		}
		return nil
	case *dom.ChangeXML:
		nodes, err := selectAll(a.top, c.Target, ns)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			scope := n
			if n.Parent != nil && n.Parent.Type == xmlquery.ElementNode {
				scope = n.Parent
			}
			children, err := fragment(c.NewXML, scope, ns)
			if err != nil {
				return err
			}
			for _, child := range children {
				insertBefore(n, child)
			}
			xmlquery.RemoveFromTree(n)
		}
		return nil
	case *dom.ComputeChange:
		v, err := a.compute(c)
		if err != nil {
			return err
		}
		return setAttr(a.top, c.Target, strconv.FormatFloat(v, 'g', -1, 64), ns)
	}
	return errors.Errorf("resolve: unsupported change %s", change.TypeCode())
}

// compute evaluates the math of c. Variables without a model reference,
// or referring to the model being resolved, read the model in its
// current state.
func (a *applier) compute(c *dom.ComputeChange) (float64, error) {
	if c.Math == nil {
		return 0, errors.New("resolve: computeChange has no math")
	}
	env := mathml.Env{}
	for _, p := range c.Parameters {
		env[p.ID] = p.Value
	}
	for _, v := range c.Variables {
		if v.Target == "" {
			return 0, errors.Errorf("resolve: variable %q has no target", v.ID)
		}
		top := a.top
		if ref := v.ModelReference; ref != "" && ref != a.model.ID {
			var err error
			if top, err = a.r.model(a.ctx, a.doc, ref, a.resolving); err != nil {
				return 0, errors.Wrapf(err, "variable %q", v.ID)
			}
		}
		value, err := Value(top, v.Target, dom.NamespacesInScope(v))
		if err != nil {
			return 0, errors.Wrapf(err, "variable %q", v.ID)
		}
		env[v.ID] = value
	}
	return mathml.Eval(c.Math, env)
}

// Value reads the number addressed by target in the tree top. A target
// addressing an element reads its value, initialConcentration,
// initialAmount or size attribute, whichever is present first.
func Value(top *xmlquery.Node, target string, ns map[string]string) (float64, error) {
	path, attr := splitTarget(target)
	nodes, err := selectAll(top, path, ns)
	if err != nil {
		return 0, err
	}
	n := nodes[0]
	names := valueAttrs
	if attr != "" {
		names = []string{attr}
	}
	for _, name := range names {
		if i := attrIndex(n, name); i >= 0 {
			v, err := strconv.ParseFloat(strings.TrimSpace(n.Attr[i].Value), 64)
			if err != nil {
				return 0, errors.Wrapf(err, "resolve: %s", target)
			}
			return v, nil
		}
	}
	return 0, errors.Errorf("resolve: %s: element <%s> has no value", target, n.Data)
}

// splitTarget splits a target of the form path/@attr. attr is empty when
// the target addresses an element.
func splitTarget(target string) (path, attr string) {
	i := strings.LastIndex(target, "/@")
	if i < 0 || strings.ContainsAny(target[i+2:], "/[]") {
		return target, ""
	}
	return target[:i], target[i+2:]
}

func selectAll(top *xmlquery.Node, path string, ns map[string]string) ([]*xmlquery.Node, error) {
	expr, err := xpath.CompileWithNS(path, ns)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve: target %q", path)
	}
	var out []*xmlquery.Node
	for _, n := range xmlquery.QuerySelectorAll(top, expr) {
		if n.Type == xmlquery.ElementNode {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, errors.Wrapf(ErrNoMatch, "target %q", path)
	}
	return out, nil
}

// attrIndex returns the index of the attribute name, which may carry a
// prefix, or -1 when n has no such attribute
func attrIndex(n *xmlquery.Node, name string) int {
	prefix, local := "", name
	if i := strings.IndexByte(name, ':'); i >= 0 {
		prefix, local = name[:i], name[i+1:]
	}
	for i, a := range n.Attr {
		if a.Name.Local == local && (prefix == "" || a.Name.Space == prefix) {
			return i
		}
	}
	return -1
}

func setAttr(top *xmlquery.Node, target, value string, ns map[string]string) error {
	path, attr := splitTarget(target)
	if attr == "" {
		return errors.Errorf("resolve: target %q does not address an attribute", target)
	}
	nodes, err := selectAll(top, path, ns)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		n.SetAttr(attr, value)
	}
	return nil
}

// fragment parses newXML in the namespace context of parent: unprefixed
// elements take the namespace of parent, and the prefixes ns in scope at
// the change are declared.
func fragment(newXML string, parent *xmlquery.Node, ns map[string]string) ([]*xmlquery.Node, error) {
	var b strings.Builder
	b.WriteString("<fragment")
	if parent.NamespaceURI != "" {
		b.WriteString(` xmlns="` + escapeAttr(parent.NamespaceURI) + `"`)
	}
	for prefix, uri := range ns {
		b.WriteString(" xmlns:" + prefix + `="` + escapeAttr(uri) + `"`)
	}
	b.WriteString(">" + newXML + "</fragment>")
	top, err := xmlquery.Parse(strings.NewReader(b.String()))
	if err != nil {
		return nil, errors.Wrap(err, "resolve: parsing newXML")
	}
	wrapper := xmlquery.FindOne(top, "/*")
	if wrapper == nil {
		return nil, errors.New("resolve: empty newXML")
	}
	var out []*xmlquery.Node
	for c := wrapper.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, c)
		}
	}
	for _, c := range out {
		xmlquery.RemoveFromTree(c)
		adoptPrefix(c, parent)
	}
	return out, nil
}

func escapeAttr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// adoptPrefix renames elements in the namespace of parent to the prefix
// parent uses, so the tree serializes without extra declarations
func adoptPrefix(n, parent *xmlquery.Node) {
	if n.Type == xmlquery.ElementNode && n.NamespaceURI == parent.NamespaceURI {
		n.Prefix = parent.Prefix
		kept := n.Attr[:0]
		for _, a := range n.Attr {
			if a.Name.Space == "" && a.Name.Local == "xmlns" {
				continue
			}
			kept = append(kept, a)
		}
		n.Attr = kept
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		adoptPrefix(c, parent)
	}
}

func insertBefore(ref, n *xmlquery.Node) {
	p := ref.Parent
	n.Parent, n.NextSibling, n.PrevSibling = p, ref, ref.PrevSibling
	if ref.PrevSibling != nil {
		ref.PrevSibling.NextSibling = n
	} else if p != nil {
		p.FirstChild = n
	}
	ref.PrevSibling = n
}
