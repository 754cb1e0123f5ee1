package mathml

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
)

// Namespace is the MathML namespace URI
const Namespace = "http://www.w3.org/1998/Math/MathML"

func xn(local string) xml.Name { return xml.Name{Local: local} }

var (
	seMath      = xml.StartElement{Name: xml.Name{Space: Namespace, Local: "math"}}
	seApply     = xml.StartElement{Name: xn("apply")}
	seCi        = xml.StartElement{Name: xn("ci")}
	seCn        = xml.StartElement{Name: xn("cn")}
	seLogbase   = xml.StartElement{Name: xn("logbase")}
	seDegree    = xml.StartElement{Name: xn("degree")}
	sePiecewise = xml.StartElement{Name: xn("piecewise")}
	sePiece     = xml.StartElement{Name: xn("piece")}
	seOtherwise = xml.StartElement{Name: xn("otherwise")}
	seSep       = xml.StartElement{Name: xn("sep")}
)

type tokenWriter struct {
	enc *xml.Encoder
	err error
}

func (w *tokenWriter) token(t xml.Token) {
	if w.err == nil {
		w.err = w.enc.EncodeToken(t)
	}
}

func (w *tokenWriter) empty(name string) {
	se := xml.StartElement{Name: xn(name)}
	w.token(se)
	w.token(se.End())
}

func (w *tokenWriter) text(se xml.StartElement, s string) {
	w.token(se)
	w.token(xml.CharData(" " + s + " "))
	w.token(se.End())
}

// Encode writes n to enc as a MathML <math> element
func Encode(enc *xml.Encoder, n *Node) error {
	if n == nil {
		return errors.New("mathml: cannot encode nil expression")
	}
	w := &tokenWriter{enc: enc}
	w.token(seMath)
	w.node(n)
	w.token(seMath.End())
	return w.err
}

// EncodeContent writes n to enc as MathML content markup, without the
// enclosing <math> element
func EncodeContent(enc *xml.Encoder, n *Node) error {
	if n == nil {
		return errors.New("mathml: cannot encode nil expression")
	}
	w := &tokenWriter{enc: enc}
	w.node(n)
	return w.err
}

// Marshal returns n as an indented MathML document fragment
func Marshal(n *Node) (string, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := Encode(enc, n); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", errors.WithStack(err)
	}
	return buf.String(), nil
}

func (w *tokenWriter) number(n *Node) {
	v := n.Value
	switch {
	case math.IsNaN(v):
		w.empty("notanumber")
		return
	case math.IsInf(v, 1):
		w.empty("infinity")
		return
	case math.IsInf(v, -1):
		w.token(seApply)
		w.empty("minus")
		w.empty("infinity")
		w.token(seApply.End())
		return
	}
	if n.Integer && v == math.Trunc(v) && math.Abs(v) < 1e15 {
		se := seCn
		se.Attr = []xml.Attr{{Name: xn("type"), Value: "integer"}}
		w.text(se, strconv.FormatFloat(v, 'f', -1, 64))
		return
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		exp := strings.TrimPrefix(s[i+1:], "+")
		se := seCn
		se.Attr = []xml.Attr{{Name: xn("type"), Value: "e-notation"}}
		w.token(se)
		w.token(xml.CharData(" " + s[:i] + " "))
		w.token(seSep)
		w.token(seSep.End())
		w.token(xml.CharData(" " + exp + " "))
		w.token(se.End())
		return
	}
	w.text(seCn, s)
}

func (w *tokenWriter) node(n *Node) {
	switch n.Kind {
	case KindNumber:
		w.number(n)
	case KindIdentifier:
		w.text(seCi, n.Name)
	case KindConstant:
		w.empty(n.Name)
	case KindCSymbol:
		w.csymbol(n)
	case KindCall:
		w.token(seApply)
		if n.URL != "" {
			w.csymbol(n)
		} else {
			w.text(seCi, n.Name)
		}
		for _, c := range n.Children {
			w.node(c)
		}
		w.token(seApply.End())
	case KindApply:
		if n.Name == "piecewise" {
			w.piecewise(n)
			return
		}
		w.token(seApply)
		w.empty(n.Name)
		args := n.Children
		if (n.Name == "log" || n.Name == "root") && len(args) == 2 {
			qualifier, def := seLogbase, 10.0
			if n.Name == "root" {
				qualifier, def = seDegree, 2
			}
			if q := args[0]; q.Kind != KindNumber || q.Value != def {
				w.token(qualifier)
				w.node(q)
				w.token(qualifier.End())
			}
			args = args[1:]
		}
		for _, c := range args {
			w.node(c)
		}
		w.token(seApply.End())
	default:
		w.err = errors.Errorf("mathml: unknown node kind %v", n.Kind)
	}
}

func (w *tokenWriter) csymbol(n *Node) {
	se := xml.StartElement{Name: xn("csymbol"), Attr: []xml.Attr{
		{Name: xn("encoding"), Value: "text"},
		{Name: xn("definitionURL"), Value: n.URL},
	}}
	w.text(se, n.Name)
}

func (w *tokenWriter) piecewise(n *Node) {
	w.token(sePiecewise)
	cs := n.Children
	for ; len(cs) >= 2; cs = cs[2:] {
		w.token(sePiece)
		w.node(cs[0])
		w.node(cs[1])
		w.token(sePiece.End())
	}
	if len(cs) == 1 {
		w.token(seOtherwise)
		w.node(cs[0])
		w.token(seOtherwise.End())
	}
	w.token(sePiecewise.End())
}

// Unmarshal parses a MathML document fragment, such as the output of
// Marshal
func Unmarshal(s string) (*Node, error) {
	doc, err := xmlquery.Parse(strings.NewReader(s))
	if err != nil {
		return nil, errors.Wrap(err, "mathml")
	}
	root := firstElement(doc)
	if root == nil {
		return nil, errors.New("mathml: no element found")
	}
	return Decode(root)
}

func elements(n *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func firstElement(n *xmlquery.Node) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}

// Decode converts a MathML element to an expression tree. n may be
// the <math> element itself or any content element inside it.
func Decode(n *xmlquery.Node) (*Node, error) {
	if n == nil {
		return nil, errors.New("mathml: nil element")
	}
	switch name := n.Data; {
	case name == "math" || name == "semantics":
		c := firstElement(n)
		if c == nil {
			return nil, errors.Errorf("mathml: empty <%s> element", name)
		}
		return Decode(c)
	case name == "cn":
		return decodeNumber(n)
	case name == "ci":
		id := strings.TrimSpace(n.InnerText())
		if id == "" {
			return nil, errors.New("mathml: empty <ci> element")
		}
		return Ident(id), nil
	case name == "csymbol":
		return &Node{
			Kind: KindCSymbol,
			Name: strings.TrimSpace(n.InnerText()),
			URL:  strings.TrimSpace(n.SelectAttr("definitionURL")),
		}, nil
	case constants[name]:
		return Constant(name), nil
	case name == "apply":
		return decodeApply(n)
	case name == "piecewise":
		return decodePiecewise(n)
	}
	return nil, errors.Errorf("mathml: unsupported element <%s>", n.Data)
}

// numberParts splits the text of a <cn> element at its <sep/> children
func numberParts(n *xmlquery.Node) []string {
	parts := []string{""}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			if c.Data == "sep" {
				parts = append(parts, "")
			}
		case xmlquery.TextNode, xmlquery.CharDataNode:
			parts[len(parts)-1] += c.Data
		}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func decodeNumber(n *xmlquery.Node) (*Node, error) {
	parts := numberParts(n)
	typ := strings.TrimSpace(n.SelectAttr("type"))
	bad := func(err error) error {
		return errors.Wrapf(err, "mathml: invalid <cn type=%q> value %q", typ, strings.Join(parts, " "))
	}
	switch typ {
	case "integer":
		v, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, bad(err)
		}
		return Integer(v), nil
	case "", "real", "double":
		v, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, bad(err)
		}
		return Number(v), nil
	case "e-notation", "rational":
		if len(parts) != 2 {
			return nil, bad(errors.New("expected two parts separated by <sep/>"))
		}
		a, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, bad(err)
		}
		b, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, bad(err)
		}
		if typ == "rational" {
			return Number(a / b), nil
		}
		v, err := strconv.ParseFloat(parts[0]+"e"+parts[1], 64)
		if err != nil {
			return nil, bad(err)
		}
		return Number(v), nil
	}
	return nil, errors.Errorf("mathml: unsupported <cn> type %q", typ)
}

func decodeApply(n *xmlquery.Node) (*Node, error) {
	children := elements(n)
	if len(children) == 0 {
		return nil, errors.New("mathml: empty <apply> element")
	}
	op := children[0]
	var (
		qualifier *Node
		args      []*Node
	)
	for _, c := range children[1:] {
		switch c.Data {
		case "logbase", "degree":
			inner := firstElement(c)
			if inner == nil {
				return nil, errors.Errorf("mathml: empty <%s> element", c.Data)
			}
			q, err := Decode(inner)
			if err != nil {
				return nil, err
			}
			qualifier = q
		case "bvar":
			return nil, errors.New("mathml: <bvar> is only supported in function definitions")
		default:
			arg, err := Decode(c)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}

	switch name := op.Data; {
	case name == "ci":
		return Call(strings.TrimSpace(op.InnerText()), args...), nil
	case name == "csymbol":
		call := Call(strings.TrimSpace(op.InnerText()), args...)
		call.URL = strings.TrimSpace(op.SelectAttr("definitionURL"))
		return call, nil
	case name == "log" || name == "root":
		if len(args) != 1 {
			return nil, errors.Errorf("mathml: <%s> takes one argument, got %d", name, len(args))
		}
		if qualifier == nil {
			if name == "log" {
				qualifier = Integer(10)
			} else {
				qualifier = Integer(2)
			}
		}
		return Apply(name, qualifier, args[0]), nil
	case unaryFuncs[name]:
		if len(args) != 1 {
			return nil, errors.Errorf("mathml: <%s> takes one argument, got %d", name, len(args))
		}
	case binaryFuncs[name]:
		if len(args) != 2 {
			return nil, errors.Errorf("mathml: <%s> takes two arguments, got %d", name, len(args))
		}
	case name == "minus":
		if len(args) < 1 || len(args) > 2 {
			return nil, errors.Errorf("mathml: <minus> takes one or two arguments, got %d", len(args))
		}
	case naryOps[name] || relationalOps[name]:
	default:
		return nil, errors.Errorf("mathml: unsupported operator <%s>", name)
	}
	return Apply(op.Data, args...), nil
}

func decodePiecewise(n *xmlquery.Node) (*Node, error) {
	pw := Apply("piecewise")
	var otherwise *Node
	for _, c := range elements(n) {
		parts := elements(c)
		switch {
		case c.Data == "piece" && len(parts) == 2:
		case c.Data == "otherwise" && len(parts) == 1:
		default:
			return nil, errors.Errorf("mathml: malformed <%s> in <piecewise>", c.Data)
		}
		for _, p := range parts {
			d, err := Decode(p)
			if err != nil {
				return nil, err
			}
			if c.Data == "otherwise" {
				otherwise = d
			} else {
				pw.Children = append(pw.Children, d)
			}
		}
	}
	if otherwise != nil {
		pw.Children = append(pw.Children, otherwise)
	}
	if len(pw.Children) == 0 {
		return nil, errors.New("mathml: empty <piecewise> element")
	}
	return pw, nil
}
