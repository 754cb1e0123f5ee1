package dom

import "github.com/andaru/sedml/xmlutil"

// Document is the root <sedML> element
type Document struct {
	Base

	Level   int
	Version int

	// Namespaces holds prefixed namespace declarations of the root
	// element, such as the sbml prefix used by change targets.
	Namespaces xmlutil.PrefixMap

	DataDescriptions []*DataDescription
	Models           []*Model
	Simulations      []Simulation
	Tasks            []AbstractTask
	DataGenerators   []*DataGenerator
	Outputs          []Output
}

// NewDocument returns an empty document. A zero level and version
// selects DefaultLevel and DefaultVersion.
func NewDocument(level, version int) *Document {
	if level == 0 && version == 0 {
		level, version = DefaultLevel, DefaultVersion
	}
	return &Document{Level: level, Version: version, Namespaces: xmlutil.PrefixMap{}}
}

// TypeCode implements Element
func (d *Document) TypeCode() TypeCode { return TypeDocument }

// Namespace returns the SED-ML namespace URI of the document's level and version
func (d *Document) Namespace() string { return Namespace(d.Level, d.Version) }

// SetLevelVersion retargets the document to another SED-ML release.
// Version dependent attributes are adapted when the document is written.
func (d *Document) SetLevelVersion(level, version int) error {
	if err := checkLevelVersion(level, version); err != nil {
		return err
	}
	d.Level, d.Version = level, version
	return nil
}

// UsesNumberOfSteps reports whether time courses and uniform ranges
// carry numberOfSteps (L1V4 onwards) rather than numberOfPoints
func (d *Document) UsesNumberOfSteps() bool {
	return d.Level > 1 || (d.Level == 1 && d.Version >= 4)
}

// AddNamespace declares a namespace prefix on the root element
func (d *Document) AddNamespace(prefix, uri string) {
	if d.Namespaces == nil {
		d.Namespaces = xmlutil.PrefixMap{}
	}
	d.Namespaces[prefix] = uri
}

// DataDescription is an external data file
type DataDescription struct {
	Base
	Source string
	Format string
	// DimensionDescription is the serialized NuML content of the
	// <dimensionDescription> child, kept as read
	DimensionDescription string
	DataSources          []*DataSource
}

// TypeCode implements Element
func (*DataDescription) TypeCode() TypeCode { return TypeDataDescription }

// CreateDataSource appends a new data source
func (dd *DataDescription) CreateDataSource() *DataSource {
	ds := &DataSource{}
	ds.parent = dd
	dd.DataSources = append(dd.DataSources, ds)
	return ds
}

// DataSource selects data from a data description, optionally sliced
type DataSource struct {
	Base
	IndexSet string
	Slices   []*Slice
}

// TypeCode implements Element
func (*DataSource) TypeCode() TypeCode { return TypeDataSource }

// CreateSlice appends a new slice
func (ds *DataSource) CreateSlice() *Slice {
	sl := &Slice{}
	sl.parent = ds
	ds.Slices = append(ds.Slices, sl)
	return sl
}

// Slice restricts one dimension of a data source
type Slice struct {
	Base
	Reference  string
	Value      string
	Index      string
	StartIndex *int
	EndIndex   *int
}

// TypeCode implements Element
func (*Slice) TypeCode() TypeCode { return TypeSlice }

// SetStartIndex sets the first index of the slice
func (sl *Slice) SetStartIndex(i int) { sl.StartIndex = &i }

// SetEndIndex sets the last index of the slice
func (sl *Slice) SetEndIndex(i int) { sl.EndIndex = &i }

// CreateDataDescription appends a new data description
func (d *Document) CreateDataDescription() *DataDescription {
	dd := &DataDescription{}
	dd.parent = d
	d.DataDescriptions = append(d.DataDescriptions, dd)
	return dd
}

// CreateModel appends a new model
func (d *Document) CreateModel() *Model {
	m := &Model{}
	m.parent = d
	d.Models = append(d.Models, m)
	return m
}

// CreateUniformTimeCourse appends a new uniform time course simulation
func (d *Document) CreateUniformTimeCourse() *UniformTimeCourse {
	s := &UniformTimeCourse{}
	d.addSimulation(s)
	return s
}

// CreateOneStep appends a new one step simulation
func (d *Document) CreateOneStep() *OneStep {
	s := &OneStep{}
	d.addSimulation(s)
	return s
}

// CreateSteadyState appends a new steady state simulation
func (d *Document) CreateSteadyState() *SteadyState {
	s := &SteadyState{}
	d.addSimulation(s)
	return s
}

// CreateAnalysis appends a new analysis simulation
func (d *Document) CreateAnalysis() *Analysis {
	s := &Analysis{}
	d.addSimulation(s)
	return s
}

func (d *Document) addSimulation(s Simulation) {
	s.SedBase().parent = d
	d.Simulations = append(d.Simulations, s)
}

// CreateTask appends a new task
func (d *Document) CreateTask() *Task {
	t := &Task{}
	t.parent = d
	d.Tasks = append(d.Tasks, t)
	return t
}

// CreateRepeatedTask appends a new repeated task
func (d *Document) CreateRepeatedTask() *RepeatedTask {
	t := &RepeatedTask{}
	t.parent = d
	d.Tasks = append(d.Tasks, t)
	return t
}

// CreateDataGenerator appends a new data generator
func (d *Document) CreateDataGenerator() *DataGenerator {
	dg := &DataGenerator{}
	dg.parent = d
	d.DataGenerators = append(d.DataGenerators, dg)
	return dg
}

// CreateReport appends a new report
func (d *Document) CreateReport() *Report {
	o := &Report{}
	o.parent = d
	d.Outputs = append(d.Outputs, o)
	return o
}

// CreatePlot2D appends a new 2D plot
func (d *Document) CreatePlot2D() *Plot2D {
	o := &Plot2D{}
	o.parent = d
	d.Outputs = append(d.Outputs, o)
	return o
}

// CreatePlot3D appends a new 3D plot
func (d *Document) CreatePlot3D() *Plot3D {
	o := &Plot3D{}
	o.parent = d
	d.Outputs = append(d.Outputs, o)
	return o
}

// DataDescription returns the data description with the given id, or nil
func (d *Document) DataDescription(id string) *DataDescription {
	for _, dd := range d.DataDescriptions {
		if dd.ID == id {
			return dd
		}
	}
	return nil
}

// Model returns the model with the given id, or nil
func (d *Document) Model(id string) *Model {
	for _, m := range d.Models {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Simulation returns the simulation with the given id, or nil
func (d *Document) Simulation(id string) Simulation {
	for _, s := range d.Simulations {
		if s.SedBase().ID == id {
			return s
		}
	}
	return nil
}

// Task returns the task or repeated task with the given id, or nil
func (d *Document) Task(id string) AbstractTask {
	for _, t := range d.Tasks {
		if t.SedBase().ID == id {
			return t
		}
	}
	return nil
}

// DataGenerator returns the data generator with the given id, or nil
func (d *Document) DataGenerator(id string) *DataGenerator {
	for _, dg := range d.DataGenerators {
		if dg.ID == id {
			return dg
		}
	}
	return nil
}

// Output returns the output with the given id, or nil
func (d *Document) Output(id string) Output {
	for _, o := range d.Outputs {
		if o.SedBase().ID == id {
			return o
		}
	}
	return nil
}
