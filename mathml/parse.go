package mathml

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// SyntaxError is returned by ParseFormula for malformed input.
// Col is the 1-based character column of the offending token.
type SyntaxError struct {
	Col     int
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("formula syntax error at column %d: %s", e.Col, e.Message)
}

type tokenType int

const (
	tokEOF tokenType = iota
	tokNumber
	tokIdent
	tokOp
)

type token struct {
	typ tokenType
	val string
	pos int
}

func lex(s string) ([]token, error) {
	var toks []token
	rs := []rune(s)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || (r == '.' && i+1 < len(rs) && unicode.IsDigit(rs[i+1])):
			start := i
			for i < len(rs) && unicode.IsDigit(rs[i]) {
				i++
			}
			if i < len(rs) && rs[i] == '.' {
				i++
				for i < len(rs) && unicode.IsDigit(rs[i]) {
					i++
				}
			}
			if i < len(rs) && (rs[i] == 'e' || rs[i] == 'E') {
				j := i + 1
				if j < len(rs) && (rs[j] == '+' || rs[j] == '-') {
					j++
				}
				if j < len(rs) && unicode.IsDigit(rs[j]) {
					for j < len(rs) && unicode.IsDigit(rs[j]) {
						j++
					}
					i = j
				}
			}
			toks = append(toks, token{typ: tokNumber, val: string(rs[start:i]), pos: start + 1})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i]) || rs[i] == '_') {
				i++
			}
			toks = append(toks, token{typ: tokIdent, val: string(rs[start:i]), pos: start + 1})
		default:
			if i+1 < len(rs) {
				switch two := string(rs[i : i+2]); two {
				case "<=", ">=", "==", "!=", "&&", "||":
					toks = append(toks, token{typ: tokOp, val: two, pos: i + 1})
					i += 2
					continue
				}
			}
			if !strings.ContainsRune("+-*/^%(),<>!", r) {
				return nil, SyntaxError{Col: i + 1, Message: fmt.Sprintf("unexpected character %q", r)}
			}
			toks = append(toks, token{typ: tokOp, val: string(r), pos: i + 1})
			i++
		}
	}
	return append(toks, token{typ: tokEOF, pos: len(rs) + 1}), nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.typ != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) isOp(vals ...string) bool {
	t := p.peek()
	if t.typ != tokOp {
		return false
	}
	for _, v := range vals {
		if t.val == v {
			return true
		}
	}
	return false
}

func (p *parser) expect(op string) error {
	if t := p.next(); t.typ != tokOp || t.val != op {
		return p.errorf(t, "expected %q", op)
	}
	return nil
}

func (p *parser) errorf(t token, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if t.typ == tokEOF {
		msg += " at end of input"
	} else {
		msg += fmt.Sprintf(", found %q", t.val)
	}
	return SyntaxError{Col: t.pos, Message: msg}
}

// ParseFormula parses an infix math expression.
//
// Operator precedence, lowest first: "||", "&&", comparisons
// ("==", "!=", "<", "<=", ">", ">="), "+" and "-", "*", "/" and "%",
// unary "-", "+" and "!", and finally "^" (right associative).
// Function calls use the form name(arg, ...); names which are not
// built-in operators become user function calls (KindCall).
func ParseFormula(formula string) (*Node, error) {
	toks, err := lex(formula)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if p.peek().typ == tokEOF {
		return nil, SyntaxError{Col: 1, Message: "empty formula"}
	}
	n, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.typ != tokEOF {
		return nil, p.errorf(t, "unexpected token")
	}
	return n, nil
}

// MustParseFormula is like ParseFormula but panics on error
func MustParseFormula(formula string) *Node {
	n, err := ParseFormula(formula)
	if err != nil {
		panic(errors.Wrapf(err, "MustParseFormula(%q)", formula))
	}
	return n
}

func (p *parser) parseNary(op, name string, sub func() (*Node, error)) (*Node, error) {
	left, err := sub()
	if err != nil {
		return nil, err
	}
	if !p.isOp(op) {
		return left, nil
	}
	n := Apply(name, left)
	for p.isOp(op) {
		p.next()
		right, err := sub()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, right)
	}
	return n, nil
}

func (p *parser) parseOr() (*Node, error) { return p.parseNary("||", "or", p.parseAnd) }

func (p *parser) parseAnd() (*Node, error) { return p.parseNary("&&", "and", p.parseRelational) }

var relationalNames = map[string]string{
	"==": "eq", "!=": "neq", "<": "lt", "<=": "leq", ">": "gt", ">=": "geq",
}

func (p *parser) parseRelational() (*Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.isOp("==", "!=", "<", "<=", ">", ">=") {
		op := relationalNames[p.next().val]
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = Apply(op, left, right)
	}
	return left, nil
}

func (p *parser) parseAdditive() (*Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	var sum *Node
	for p.isOp("+", "-") {
		op := p.next().val
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		switch {
		case op == "+" && sum != nil:
			sum.Children = append(sum.Children, right)
		case op == "+":
			sum = Apply("plus", left, right)
			left = sum
		default:
			left = Apply("minus", left, right)
			sum = nil
		}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (*Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	var product *Node
	for p.isOp("*", "/", "%") {
		op := p.next().val
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		switch {
		case op == "*" && product != nil:
			product.Children = append(product.Children, right)
		case op == "*":
			product = Apply("times", left, right)
			left = product
		case op == "/":
			left = Apply("divide", left, right)
			product = nil
		default:
			left = Apply("rem", left, right)
			product = nil
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (*Node, error) {
	switch {
	case p.isOp("-"):
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Apply("minus", operand), nil
	case p.isOp("+"):
		p.next()
		return p.parseUnary()
	case p.isOp("!"):
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Apply("not", operand), nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (*Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.isOp("^") {
		return base, nil
	}
	p.next()
	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return Apply("power", base, exponent), nil
}

var constantNames = map[string]string{
	"pi":           "pi",
	"exponentiale": "exponentiale",
	"true":         "true",
	"false":        "false",
	"INF":          "infinity",
	"inf":          "infinity",
	"infinity":     "infinity",
	"NaN":          "notanumber",
	"nan":          "notanumber",
	"notanumber":   "notanumber",
}

var functionAliases = map[string]string{
	"asin": "arcsin", "acos": "arccos", "atan": "arctan",
	"asec": "arcsec", "acsc": "arccsc", "acot": "arccot",
	"asinh": "arcsinh", "acosh": "arccosh", "atanh": "arctanh",
	"ceil": "ceiling", "pow": "power",
}

func (p *parser) parsePrimary() (*Node, error) {
	t := p.next()
	switch t.typ {
	case tokNumber:
		v, err := strconv.ParseFloat(t.val, 64)
		if err != nil {
			return nil, SyntaxError{Col: t.pos, Message: fmt.Sprintf("invalid number %q", t.val)}
		}
		if strings.ContainsAny(t.val, ".eE") {
			return Number(v), nil
		}
		return &Node{Kind: KindNumber, Value: v, Integer: true}, nil

	case tokIdent:
		if !p.isOp("(") {
			if c, ok := constantNames[t.val]; ok {
				return Constant(c), nil
			}
			return Ident(t.val), nil
		}
		p.next()
		var args []*Node
		if !p.isOp(")") {
			for {
				arg, err := p.parseOr()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.isOp(",") {
					break
				}
				p.next()
			}
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return p.function(t, args)

	case tokOp:
		if t.val == "(" {
			n, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return n, nil
		}
	}
	return nil, p.errorf(t, "unexpected token")
}

func (p *parser) function(t token, args []*Node) (*Node, error) {
	name := t.val
	if alias, ok := functionAliases[name]; ok {
		name = alias
	}
	arity := func(want int) error {
		if len(args) != want {
			return SyntaxError{Col: t.pos, Message: fmt.Sprintf("%s expects %d argument(s), got %d", t.val, want, len(args))}
		}
		return nil
	}
	switch {
	case name == "sqrt":
		if err := arity(1); err != nil {
			return nil, err
		}
		return Apply("root", Integer(2), args[0]), nil
	case name == "root":
		if len(args) == 1 {
			return Apply("root", Integer(2), args[0]), nil
		}
		if err := arity(2); err != nil {
			return nil, err
		}
		return Apply("root", args...), nil
	case name == "log10":
		if err := arity(1); err != nil {
			return nil, err
		}
		return Apply("log", Integer(10), args[0]), nil
	case name == "log":
		if len(args) == 1 {
			return Apply("log", Integer(10), args[0]), nil
		}
		if err := arity(2); err != nil {
			return nil, err
		}
		return Apply("log", args...), nil
	case unaryFuncs[name]:
		if err := arity(1); err != nil {
			return nil, err
		}
		return Apply(name, args...), nil
	case binaryFuncs[name]:
		if err := arity(2); err != nil {
			return nil, err
		}
		return Apply(name, args...), nil
	case naryOps[name] || relationalOps[name]:
		// any arity, as in MathML
		return Apply(name, args...), nil
	case name == "minus":
		if len(args) < 1 || len(args) > 2 {
			return nil, SyntaxError{Col: t.pos, Message: "minus expects 1 or 2 arguments"}
		}
		return Apply(name, args...), nil
	case name == "piecewise":
		if len(args) == 0 {
			return nil, SyntaxError{Col: t.pos, Message: "piecewise expects at least one argument"}
		}
		return Apply(name, args...), nil
	}
	return Call(t.val, args...), nil
}
