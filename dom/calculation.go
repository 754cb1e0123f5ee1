package dom

import "github.com/andaru/sedml/mathml"

// Variable names a quantity of a model or a task's results, addressed
// either by Target (an XPath expression) or by Symbol (an implicit
// quantity such as SymbolTime)
type Variable struct {
	Base
	Target         string
	Symbol         string
	TaskReference  string
	ModelReference string
}

// TypeCode implements Element
func (*Variable) TypeCode() TypeCode { return TypeVariable }

// Parameter is a named constant local to a calculation
type Parameter struct {
	Base
	Value float64
}

// TypeCode implements Element
func (*Parameter) TypeCode() TypeCode { return TypeParameter }

// Calculation is the math of a data generator, compute change,
// functional range or set value, with the variables and parameters it
// may refer to
type Calculation struct {
	Variables  []*Variable
	Parameters []*Parameter
	Math       *mathml.Node
}

// Variable returns the variable with the given id, or nil
func (c *Calculation) Variable(id string) *Variable {
	for _, v := range c.Variables {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// Parameter returns the parameter with the given id, or nil
func (c *Calculation) Parameter(id string) *Parameter {
	for _, p := range c.Parameters {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// SetFormula parses an infix formula and stores it as the math
func (c *Calculation) SetFormula(formula string) error {
	n, err := mathml.ParseFormula(formula)
	if err != nil {
		return err
	}
	c.Math = n
	return nil
}

// Formula returns the math as an infix formula, or "" when unset
func (c *Calculation) Formula() string { return mathml.FormulaToString(c.Math) }

func newVariable(parent Element, list *[]*Variable) *Variable {
	v := &Variable{}
	v.parent = parent
	*list = append(*list, v)
	return v
}

func newParameter(parent Element, list *[]*Parameter) *Parameter {
	p := &Parameter{}
	p.parent = parent
	*list = append(*list, p)
	return p
}

// DataGenerator computes a quantity from task results for use by outputs
type DataGenerator struct {
	Base
	Calculation
}

// TypeCode implements Element
func (*DataGenerator) TypeCode() TypeCode { return TypeDataGenerator }

// CreateVariable appends a new variable
func (dg *DataGenerator) CreateVariable() *Variable { return newVariable(dg, &dg.Variables) }

// CreateParameter appends a new parameter
func (dg *DataGenerator) CreateParameter() *Parameter { return newParameter(dg, &dg.Parameters) }
