package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/andaru/sedml/dom"
	"github.com/andaru/sedml/example"
	"github.com/andaru/sedml/mathml"
	"github.com/andaru/sedml/resolve"
	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/sedxml"
	"github.com/andaru/sedml/summary"
	"github.com/andaru/sedml/validate"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Output formats of Validate
const (
	FormatText = "text"
	FormatJSON = "json"
)

// documentErrors returns the ExitError for a document whose log holds
// errors
func documentErrors(path string, errs *sederr.Log) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf("%s: %d error(s)", path, errs.NumErrors())}
}

// retarget converts doc to level and version, when either is set, and
// prints a warning to out for each construct the release cannot express
func retarget(out io.Writer, doc *dom.Document, level, version int) error {
	if level == 0 && version == 0 {
		return nil
	}
	if level == 0 {
		level = doc.Level
	}
	if version == 0 {
		version = doc.Version
	}
	if err := doc.SetLevelVersion(level, version); err != nil {
		return Usagef("%v", err)
	}
	return summary.Warnings(out, validate.LevelVersion(doc))
}

// Create writes the example document to path, converted to level and
// version when they are non-zero. Conversion warnings go to out.
func Create(out io.Writer, path string, level, version int) error {
	doc := example.Document()
	if err := retarget(out, doc, level, version); err != nil {
		return err
	}
	if err := sedxml.WriteFile(path, doc); err != nil {
		return errors.Wrap(err, "create")
	}
	log.Debug().Str("path", path).Int("level", doc.Level).Int("version", doc.Version).Msg("wrote example document")
	return nil
}

// read reads the document at path. When reading reports errors the log is
// printed to out and an ExitError is returned.
func read(out io.Writer, path string) (*dom.Document, *sederr.Log, error) {
	doc, errs := sedxml.ReadFile(path)
	if errs.HasErrors() {
		fmt.Fprint(out, errs.String())
		return nil, errs, documentErrors(path, errs)
	}
	return doc, errs, nil
}

// Print prints the summary of the document at path to out. Warnings
// found while reading are printed first.
func Print(out io.Writer, path string) error {
	doc, errs, err := read(out, path)
	if err != nil {
		return err
	}
	if err := summary.Warnings(out, errs); err != nil {
		return err
	}
	return summary.Write(out, doc)
}

// Validate reads and checks the document at path, printing every problem
// found to out in the given format
func Validate(out io.Writer, path, format string) error {
	if format != FormatText && format != FormatJSON {
		return Usagef("unknown format %q, use %s or %s", format, FormatText, FormatJSON)
	}
	doc, errs := sedxml.ReadFile(path)
	if !errs.HasErrors() {
		errs.Append(validate.Document(doc))
	}
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(errs, "", "  ")
		if err != nil {
			return errors.Wrap(err, "validate")
		}
		fmt.Fprintf(out, "%s\n", b)
	default:
		if errs.Len() == 0 {
			fmt.Fprintf(out, "%s: no problems found\n", path)
		} else {
			fmt.Fprint(out, errs.String())
		}
	}
	if errs.HasErrors() {
		return documentErrors(path, errs)
	}
	return nil
}

// Echo reads the document at in and writes it to out, converted to level
// and version when they are non-zero
func Echo(stdout io.Writer, in, out string, level, version int) error {
	doc, errs, err := read(stdout, in)
	if err != nil {
		return err
	}
	if err := summary.Warnings(stdout, errs); err != nil {
		return err
	}
	if err := retarget(stdout, doc, level, version); err != nil {
		return err
	}
	return errors.Wrap(sedxml.WriteFile(out, doc), "echo")
}

// Resolve prints the effective XML of the model id of the document at
// path. Relative model sources are read from baseDir, or from the
// directory holding the document when baseDir is empty.
func Resolve(ctx context.Context, out io.Writer, path, id, baseDir string) error {
	doc, _, err := read(out, path)
	if err != nil {
		return err
	}
	if baseDir == "" {
		baseDir = filepath.Dir(path)
	}
	r := &resolve.Resolver{BaseDir: baseDir}
	top, err := r.Model(ctx, doc, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, top.OutputXML(true))
	return nil
}

// Formula parses an infix formula and prints it in canonical form and as
// MathML
func Formula(out io.Writer, formula string) error {
	n, err := mathml.ParseFormula(formula)
	if err != nil {
		return Usagef("%v", err)
	}
	s, err := mathml.Marshal(n)
	if err != nil {
		return errors.Wrap(err, "formula")
	}
	fmt.Fprintf(out, "formula: %s\n%s\n", mathml.FormulaToString(n), s)
	return nil
}
