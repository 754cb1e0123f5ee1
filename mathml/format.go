package mathml

import (
	"math"
	"strconv"
	"strings"
)

// operator precedence used by the infix printer
const (
	precOr = iota + 1
	precAnd
	precRelational
	precAdditive
	precMultiplicative
	precUnary
	precPower
	precAtom
)

var infixOps = map[string]string{
	"plus": " + ", "minus": " - ", "times": " * ", "divide": " / ", "rem": " % ",
	"and": " && ", "or": " || ",
	"eq": " == ", "neq": " != ", "lt": " < ", "leq": " <= ", "gt": " > ", "geq": " >= ",
}

var constantText = map[string]string{
	"infinity":   "INF",
	"notanumber": "NaN",
}

// FormulaToString renders n as an infix formula which ParseFormula reads
// back to an equivalent tree. A nil node renders as the empty string.
func FormulaToString(n *Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	writeFormula(&b, n)
	return b.String()
}

func precedence(n *Node) int {
	switch n.Kind {
	case KindNumber:
		if n.Value < 0 || math.Signbit(n.Value) {
			return precUnary
		}
		return precAtom
	case KindApply:
		switch n.Name {
		case "or":
			if len(n.Children) >= 2 {
				return precOr
			}
		case "and":
			if len(n.Children) >= 2 {
				return precAnd
			}
		case "eq", "neq", "lt", "leq", "gt", "geq":
			if len(n.Children) == 2 {
				return precRelational
			}
		case "plus":
			if len(n.Children) >= 2 {
				return precAdditive
			}
		case "minus":
			switch len(n.Children) {
			case 1:
				return precUnary
			case 2:
				return precAdditive
			}
		case "times":
			if len(n.Children) >= 2 {
				return precMultiplicative
			}
		case "divide", "rem":
			if len(n.Children) == 2 {
				return precMultiplicative
			}
		case "not":
			if len(n.Children) == 1 {
				return precUnary
			}
		case "power":
			if len(n.Children) == 2 {
				return precPower
			}
		}
	}
	return precAtom
}

func formatNumber(n *Node) string {
	v := n.Value
	switch {
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	case math.IsNaN(v):
		return "NaN"
	case n.Integer && v == math.Trunc(v) && math.Abs(v) < 1e15:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeOperand(b *strings.Builder, n *Node, parenIf bool) {
	if parenIf {
		b.WriteByte('(')
		writeFormula(b, n)
		b.WriteByte(')')
		return
	}
	writeFormula(b, n)
}

func writeFormula(b *strings.Builder, n *Node) {
	switch n.Kind {
	case KindNumber:
		b.WriteString(formatNumber(n))
		return
	case KindIdentifier:
		b.WriteString(n.Name)
		return
	case KindConstant:
		if s, ok := constantText[n.Name]; ok {
			b.WriteString(s)
			return
		}
		b.WriteString(n.Name)
		return
	case KindCSymbol:
		switch {
		case n.Name != "":
			b.WriteString(n.Name)
		case n.URL == URLTime:
			b.WriteString("time")
		case n.URL == URLAvogadro:
			b.WriteString("avogadro")
		default:
			b.WriteString("csymbol")
		}
		return
	case KindCall:
		writeCall(b, n.Name, n.Children)
		return
	}

	p := precedence(n)
	switch n.Name {
	case "minus":
		if len(n.Children) == 1 {
			b.WriteByte('-')
			writeOperand(b, n.Children[0], precedence(n.Children[0]) <= precUnary)
			return
		}
	case "not":
		if len(n.Children) == 1 {
			b.WriteByte('!')
			writeOperand(b, n.Children[0], precedence(n.Children[0]) <= precUnary)
			return
		}
	case "power":
		if p == precPower {
			writeOperand(b, n.Children[0], precedence(n.Children[0]) <= precPower)
			b.WriteByte('^')
			writeOperand(b, n.Children[1], precedence(n.Children[1]) < precUnary)
			return
		}
	case "log":
		if len(n.Children) == 2 {
			if base := n.Children[0]; base.Kind == KindNumber && base.Value == 10 {
				writeCall(b, "log10", n.Children[1:])
				return
			}
		}
	case "root":
		if len(n.Children) == 2 {
			if deg := n.Children[0]; deg.Kind == KindNumber && deg.Value == 2 {
				writeCall(b, "sqrt", n.Children[1:])
				return
			}
		}
	}

	if op, ok := infixOps[n.Name]; ok && p != precAtom {
		for i, c := range n.Children {
			if i > 0 {
				b.WriteString(op)
			}
			cp := precedence(c)
			if i == 0 {
				writeOperand(b, c, cp < p || (p == precRelational && cp == p))
			} else {
				writeOperand(b, c, cp <= p)
			}
		}
		return
	}
	writeCall(b, n.Name, n.Children)
}

func writeCall(b *strings.Builder, name string, args []*Node) {
	b.WriteString(name)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		writeFormula(b, a)
	}
	b.WriteByte(')')
}
