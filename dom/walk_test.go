package dom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func walkDocument() *Document {
	d := NewDocument(0, 0)
	m := d.CreateModel()
	m.ID = "m"
	m.CreateChangeAttribute().ID = "c1"
	cc := m.CreateComputeChange()
	cc.ID = "c2"
	cc.CreateVariable().ID = "v"
	s := d.CreateSteadyState()
	s.ID = "s"
	s.CreateAlgorithm().ID = "a"
	t := d.CreateTask()
	t.ID = "t"
	r := d.CreateReport()
	r.ID = "r"
	r.CreateDataSet().ID = "ds"
	return d
}

func TestWalk(t *testing.T) {
	d := walkDocument()
	var ids []string
	err := d.Walk(func(e Element) error {
		ids = append(ids, e.TypeCode().String()+":"+e.SedBase().ID)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"sedML:", "model:m", "changeAttribute:c1", "computeChange:c2", "variable:v",
		"steadyState:s", "algorithm:a", "task:t", "report:r", "dataSet:ds",
	}, ids)
}

func TestWalkSkipAndStop(t *testing.T) {
	d := walkDocument()
	var ids []string
	err := d.Walk(func(e Element) error {
		ids = append(ids, e.SedBase().ID)
		if e.TypeCode() == TypeModel {
			return SkipChildren
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"", "m", "s", "a", "t", "r", "ds"}, ids)

	stop := errors.New("stop")
	ids = nil
	err = d.Walk(func(e Element) error {
		ids = append(ids, e.SedBase().ID)
		if e.SedBase().ID == "a" {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, []string{"", "m", "c1", "c2", "v", "s", "a"}, ids)
}

func TestWalkDataSources(t *testing.T) {
	d := NewDocument(1, 4)
	dd := d.CreateDataDescription()
	dd.ID = "data"
	ds := dd.CreateDataSource()
	ds.ID = "src"
	sl := ds.CreateSlice()
	sl.Reference = "time"
	sl.SetStartIndex(3)

	var names []string
	assert.NoError(t, d.Walk(func(e Element) error {
		names = append(names, e.TypeCode().String())
		return nil
	}))
	assert.Equal(t, []string{"sedML", "dataDescription", "dataSource", "slice"}, names)
	assert.Same(t, ds, sl.Parent())
	assert.Equal(t, 3, *sl.StartIndex)
	assert.Equal(t, TypeSlice, TypeForElement("slice"))
}
