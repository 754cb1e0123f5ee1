package mathml

import "strings"

// Kind is the kind of a math Node
type Kind int

const (
	// KindNumber is a numeric literal held in Node.Value
	KindNumber Kind = iota
	// KindIdentifier is a reference to a variable or parameter by id
	KindIdentifier
	// KindConstant is a named constant (pi, exponentiale, true, ...)
	KindConstant
	// KindCSymbol is a MathML csymbol, identified by Node.URL
	KindCSymbol
	// KindApply is a built-in operator or function applied to Children
	KindApply
	// KindCall is a call of a function named Node.Name. A call with a
	// Node.URL applies a csymbol function, such as a SED-ML aggregate.
	KindCall
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindIdentifier:
		return "identifier"
	case KindConstant:
		return "constant"
	case KindCSymbol:
		return "csymbol"
	case KindApply:
		return "apply"
	case KindCall:
		return "call"
	}
	return "unknown"
}

// Node is a math expression tree node.
//
// For KindApply nodes Name is the MathML operator element name. The
// "log" and "root" operators always carry their base or degree as the
// first child.
type Node struct {
	Kind     Kind
	Name     string
	Value    float64
	Integer  bool
	URL      string
	Children []*Node
}

// Well-known csymbol definition URLs
const (
	URLTime     = "http://www.sbml.org/sbml/symbols/time"
	URLAvogadro = "http://www.sbml.org/sbml/symbols/avogadro"
	URLSedMax   = "http://sed-ml.org/#max"
)

// Number returns a real number node
func Number(v float64) *Node { return &Node{Kind: KindNumber, Value: v} }

// Integer returns an integer number node
func Integer(v int64) *Node { return &Node{Kind: KindNumber, Value: float64(v), Integer: true} }

// Ident returns an identifier node
func Ident(name string) *Node { return &Node{Kind: KindIdentifier, Name: name} }

// Constant returns a named constant node
func Constant(name string) *Node { return &Node{Kind: KindConstant, Name: name} }

// Apply returns a built-in operator node
func Apply(op string, args ...*Node) *Node {
	return &Node{Kind: KindApply, Name: op, Children: args}
}

// Call returns a user-defined function call node
func Call(name string, args ...*Node) *Node {
	return &Node{Kind: KindCall, Name: name, Children: args}
}

// Copy returns a deep copy of n
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Children = make([]*Node, len(n.Children))
	for i, child := range n.Children {
		c.Children[i] = child.Copy()
	}
	return &c
}

// Equal reports whether n and o describe the same expression
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind || n.Name != o.Name || n.URL != o.URL || len(n.Children) != len(o.Children) {
		return false
	}
	if n.Kind == KindNumber && n.Value != o.Value {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Identifiers returns the distinct identifiers referenced by n, in order
// of first appearance. Function names of KindCall nodes are not included.
func Identifiers(n *Node) []string {
	var out []string
	seen := map[string]bool{}
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.Kind == KindIdentifier && !seen[n.Name] {
			seen[n.Name] = true
			out = append(out, n.Name)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

func (n *Node) String() string { return FormulaToString(n) }

// operator arity classes, keyed by MathML element name
var (
	naryOps = setOf("plus", "times", "and", "or", "xor", "min", "max")

	relationalOps = setOf("eq", "neq", "gt", "lt", "geq", "leq")
	// n-ary operators whose empty application is their identity
	emptyIdentity = setOf("plus", "times", "and", "or", "xor")

	unaryFuncs = setOf(
		"sin", "cos", "tan", "sec", "csc", "cot",
		"sinh", "cosh", "tanh", "sech", "csch", "coth",
		"arcsin", "arccos", "arctan", "arcsec", "arccsc", "arccot",
		"arcsinh", "arccosh", "arctanh", "arcsech", "arccsch", "arccoth",
		"exp", "ln", "abs", "floor", "ceiling", "factorial", "not")

	binaryFuncs = setOf("power", "divide", "rem", "quotient", "implies")

	constants = setOf("pi", "exponentiale", "true", "false", "infinity", "notanumber")
)

func setOf(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, name := range names {
		m[name] = true
	}
	return m
}

// IsBuiltin reports whether name is a built-in MathML operator
func IsBuiltin(name string) bool {
	name = strings.TrimSpace(name)
	return naryOps[name] || relationalOps[name] || unaryFuncs[name] || binaryFuncs[name] ||
		name == "minus" || name == "log" || name == "root" || name == "piecewise"
}
