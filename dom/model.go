package dom

// Model is a reference to a model file, or to another model of the
// same document, together with the changes applied to it
type Model struct {
	Base
	Source   string
	Language string
	Changes  []Change
}

// TypeCode implements Element
func (*Model) TypeCode() TypeCode { return TypeModel }

// Change is a modification applied to a model before simulation
type Change interface {
	Element
	// ChangeTarget returns the XPath expression addressing the modified
	// part of the model
	ChangeTarget() string
}

type changeBase struct {
	Base
	Target string
}

func (c *changeBase) ChangeTarget() string { return c.Target }

// ChangeAttribute sets the attribute addressed by Target to NewValue
type ChangeAttribute struct {
	changeBase
	NewValue string
}

// TypeCode implements Element
func (*ChangeAttribute) TypeCode() TypeCode { return TypeChangeAttribute }

// AddXML appends NewXML as children of the elements addressed by Target
type AddXML struct {
	changeBase
	NewXML string
}

// TypeCode implements Element
func (*AddXML) TypeCode() TypeCode { return TypeAddXML }

// ChangeXML replaces the elements addressed by Target with NewXML
type ChangeXML struct {
	changeBase
	NewXML string
}

// TypeCode implements Element
func (*ChangeXML) TypeCode() TypeCode { return TypeChangeXML }

// RemoveXML removes the elements addressed by Target
type RemoveXML struct {
	changeBase
}

// TypeCode implements Element
func (*RemoveXML) TypeCode() TypeCode { return TypeRemoveXML }

// ComputeChange sets the value addressed by Target to the result of
// its math, computed over its variables and parameters
type ComputeChange struct {
	changeBase
	Calculation
}

// TypeCode implements Element
func (*ComputeChange) TypeCode() TypeCode { return TypeComputeChange }

// CreateVariable appends a new variable
func (c *ComputeChange) CreateVariable() *Variable { return newVariable(c, &c.Variables) }

// CreateParameter appends a new parameter
func (c *ComputeChange) CreateParameter() *Parameter { return newParameter(c, &c.Parameters) }

// NewChangeAttribute is a convenience for CreateChangeAttribute with
// the target and value set
func (m *Model) NewChangeAttribute(target, value string) *ChangeAttribute {
	c := m.CreateChangeAttribute()
	c.Target, c.NewValue = target, value
	return c
}

// CreateChangeAttribute appends a new changeAttribute
func (m *Model) CreateChangeAttribute() *ChangeAttribute {
	c := &ChangeAttribute{}
	m.addChange(c)
	return c
}

// CreateAddXML appends a new addXML
func (m *Model) CreateAddXML() *AddXML {
	c := &AddXML{}
	m.addChange(c)
	return c
}

// CreateChangeXML appends a new changeXML
func (m *Model) CreateChangeXML() *ChangeXML {
	c := &ChangeXML{}
	m.addChange(c)
	return c
}

// CreateRemoveXML appends a new removeXML
func (m *Model) CreateRemoveXML() *RemoveXML {
	c := &RemoveXML{}
	m.addChange(c)
	return c
}

// CreateComputeChange appends a new computeChange
func (m *Model) CreateComputeChange() *ComputeChange {
	c := &ComputeChange{}
	m.addChange(c)
	return c
}

func (m *Model) addChange(c Change) {
	c.SedBase().parent = m
	m.Changes = append(m.Changes, c)
}
