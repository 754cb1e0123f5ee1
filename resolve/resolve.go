package resolve

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andaru/sedml/dom"
	"github.com/andaru/sedml/sedlog"
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
)

var (
	// ErrSourceCycle is returned when model sources lead back to a model
	// already being resolved
	ErrSourceCycle = errors.New("resolve: model sources form a cycle")
	// ErrNoMatch is returned when a change target selects nothing
	ErrNoMatch = errors.New("resolve: target matched nothing")
	// ErrUnsupportedSource is returned for sources which are not files
	ErrUnsupportedSource = errors.New("resolve: unsupported model source")
)

// Resolver resolves SED-ML models to their effective XML
type Resolver struct {
	// BaseDir is the directory relative file sources are read from
	BaseDir string
	// Open opens a model file. os.Open is used when nil.
	Open func(path string) (io.ReadCloser, error)
}

// Model returns the effective XML of the model id of doc: its source
// with the changes of the model, and of every model it derives from,
// applied in order.
func (r *Resolver) Model(ctx context.Context, doc *dom.Document, id string) (*xmlquery.Node, error) {
	return r.model(ctx, doc, id, map[string]bool{})
}

func (r *Resolver) model(ctx context.Context, doc *dom.Document, id string, resolving map[string]bool) (*xmlquery.Node, error) {
	m := doc.Model(id)
	if m == nil {
		return nil, errors.Errorf("resolve: no model with id %q", id)
	}
	if resolving[id] {
		return nil, errors.Wrapf(ErrSourceCycle, "model %q", id)
	}
	resolving[id] = true
	defer delete(resolving, id)

	var (
		top *xmlquery.Node
		err error
	)
	if doc.Model(m.Source) != nil {
		top, err = r.model(ctx, doc, m.Source, resolving)
	} else {
		top, err = r.load(m.Source)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "model %q", id)
	}

	a := &applier{r: r, ctx: ctx, doc: doc, model: m, top: top, resolving: resolving}
	for i, c := range m.Changes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := a.apply(c); err != nil {
			return nil, errors.Wrapf(err, "model %q change %d (%s)", id, i+1, c.TypeCode())
		}
		sedlog.Logger().Debug().Str("model", id).Str("change", c.TypeCode().String()).Str("target", c.ChangeTarget()).Msg("applied change")
	}
	return top, nil
}

// path returns the file path a model source refers to
func (r *Resolver) path(source string) (string, error) {
	switch {
	case source == "":
		return "", errors.Wrap(ErrUnsupportedSource, "empty source")
	case strings.HasPrefix(source, "file://"):
		source = strings.TrimPrefix(source, "file://")
	case strings.HasPrefix(source, "urn:"), strings.Contains(source, "://"):
		return "", errors.Wrapf(ErrUnsupportedSource, "%q", source)
	}
	if filepath.IsAbs(source) {
		return source, nil
	}
	return filepath.Join(r.BaseDir, filepath.FromSlash(source)), nil
}

func (r *Resolver) load(source string) (*xmlquery.Node, error) {
	path, err := r.path(source)
	if err != nil {
		return nil, err
	}
	open := r.Open
	if open == nil {
		open = func(path string) (io.ReadCloser, error) { return os.Open(path) }
	}
	f, err := open(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve: opening model source")
	}
	defer f.Close()
	sedlog.Logger().Debug().Str("path", path).Msg("reading model source")
	top, err := xmlquery.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve: parsing %s", path)
	}
	return top, nil
}
