package dom

// Output is implemented by Report, Plot2D and Plot3D
type Output interface {
	Element
}

// Report is a table of data sets
type Report struct {
	Base
	DataSets []*DataSet
}

// TypeCode implements Element
func (*Report) TypeCode() TypeCode { return TypeReport }

// CreateDataSet appends a new data set
func (r *Report) CreateDataSet() *DataSet {
	ds := &DataSet{}
	ds.parent = r
	r.DataSets = append(r.DataSets, ds)
	return ds
}

// DataSet is a report column showing a data generator
type DataSet struct {
	Base
	Label         string
	DataReference string
}

// TypeCode implements Element
func (*DataSet) TypeCode() TypeCode { return TypeDataSet }

// Plot2D is a plot of curves
type Plot2D struct {
	Base
	Curves []*Curve
}

// TypeCode implements Element
func (*Plot2D) TypeCode() TypeCode { return TypePlot2D }

// CreateCurve appends a new curve
func (p *Plot2D) CreateCurve() *Curve {
	c := &Curve{}
	c.parent = p
	p.Curves = append(p.Curves, c)
	return c
}

// Curve plots one data generator against another
type Curve struct {
	Base
	LogX           bool
	LogY           bool
	XDataReference string
	YDataReference string
	// Type is the curve type, such as points or bar; empty when unset
	Type  string
	Style string
	Order *int
}

// TypeCode implements Element
func (*Curve) TypeCode() TypeCode { return TypeCurve }

// SetOrder sets the drawing order of the curve
func (c *Curve) SetOrder(order int) { c.Order = &order }

// Plot3D is a plot of surfaces
type Plot3D struct {
	Base
	Surfaces []*Surface
}

// TypeCode implements Element
func (*Plot3D) TypeCode() TypeCode { return TypePlot3D }

// CreateSurface appends a new surface
func (p *Plot3D) CreateSurface() *Surface {
	s := &Surface{}
	s.parent = p
	p.Surfaces = append(p.Surfaces, s)
	return s
}

// Surface plots a data generator over two others
type Surface struct {
	Base
	LogX           bool
	LogY           bool
	LogZ           bool
	XDataReference string
	YDataReference string
	ZDataReference string
}

// TypeCode implements Element
func (*Surface) TypeCode() TypeCode { return TypeSurface }

// DataReferences returns the data generator ids referenced by an output
func DataReferences(o Output) []string {
	var refs []string
	switch o := o.(type) {
	case *Report:
		for _, ds := range o.DataSets {
			refs = append(refs, ds.DataReference)
		}
	case *Plot2D:
		for _, c := range o.Curves {
			refs = append(refs, c.XDataReference, c.YDataReference)
		}
	case *Plot3D:
		for _, s := range o.Surfaces {
			refs = append(refs, s.XDataReference, s.YDataReference, s.ZDataReference)
		}
	}
	return refs
}
