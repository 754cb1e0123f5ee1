package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andaru/sedml/sederr"
	"github.com/andaru/sedml/sedxml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelFile = `<?xml version="1.0" encoding="UTF-8"?>
<sbml xmlns="http://www.sbml.org/sbml/level2" level="2" version="4">
  <model id="example">
    <listOfSpecies>
      <species id="S1" initialConcentration="10"/>
      <species id="S2" initialConcentration="3"/>
    </listOfSpecies>
    <listOfParameters>
      <parameter id="k" value="1"/>
    </listOfParameters>
  </model>
</sbml>`

const taskWithoutModel = `<?xml version="1.0" encoding="UTF-8"?>
<sedML xmlns="http://sed-ml.org/" level="1" version="1">
  <listOfTasks>
    <task id="task1" simulationReference="sim1"/>
  </listOfTasks>
</sedML>`

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func exitCode(err error) int {
	var b bytes.Buffer
	return Exit(&b, err)
}

func TestCreateAndPrint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.xml")
	require.NoError(t, Create(io.Discard, path, 0, 0))

	var out bytes.Buffer
	require.NoError(t, Print(&out, path))
	check := assert.New(t)
	for _, want := range []string{
		"The document has 1 simulation(s).",
		"The document has 2 model(s).",
		"The document has 1 task(s).",
		"The document has 2 datagenerator(s).",
		"The document has 3 output(s).",
		"\tReport id=r1 numDataSets=2",
		"\tPlot2d id=p1 numCurves=1",
		"\tPlot3d id=p2 numSurfaces=1",
	} {
		check.Contains(out.String(), want)
	}
	check.False(strings.HasPrefix(out.String(), "Warnings:"))
}

func TestCreateLevelVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "l1v4.xml")
	require.NoError(t, Create(io.Discard, path, 1, 4))
	doc, errs := sedxml.ReadFile(path)
	require.Zero(t, errs.Len(), errs.String())
	assert.Equal(t, 4, doc.Version)

	err := Create(io.Discard, filepath.Join(dir, "bad.xml"), 3, 9)
	assert.Equal(t, ExitUsage, exitCode(err))

	err = Create(io.Discard, filepath.Join(dir, "missing", "out.xml"), 0, 0)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, exitCode(err))
}

func TestPrintErrors(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct {
		name string
		path string
		want string
	}{
		{name: "schema error", path: writeFile(t, dir, "bad.xml", taskWithoutModel), want: "(21303 [Error])"},
		{name: "missing file", path: filepath.Join(dir, "missing.xml"), want: "[Fatal]"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Print(&out, tc.path)
			assert.Equal(t, ExitUsage, exitCode(err))
			assert.Contains(t, out.String(), tc.want)
			assert.NotContains(t, out.String(), "The document has")
		})
	}
}

func TestPrintWarnings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "warn.xml", `<?xml version="1.0" encoding="UTF-8"?>
<sedML xmlns="http://sed-ml.org/" level="1" version="1">
  <listOfModels>
    <model id="m" source="f.xml" colour="red"/>
  </listOfModels>
</sedML>`)
	var out bytes.Buffer
	require.NoError(t, Print(&out, path))
	assert.True(t, strings.HasPrefix(out.String(), "Warnings: "), out.String())
	assert.Contains(t, out.String(), "The document has 1 model(s).")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "example.xml")
	require.NoError(t, Create(io.Discard, good, 0, 0))
	bad := writeFile(t, dir, "bad.xml", taskWithoutModel)

	var out bytes.Buffer
	require.NoError(t, Validate(&out, good, FormatText))
	assert.Equal(t, good+": no problems found\n", out.String())

	out.Reset()
	err := Validate(&out, bad, FormatJSON)
	assert.Equal(t, ExitUsage, exitCode(err))
	var log sederr.Log
	require.NoError(t, json.Unmarshal(out.Bytes(), &log), out.String())
	require.NotZero(t, log.Len())
	assert.Equal(t, sederr.SedmlTaskAllowedAttributes, log.Entries()[0].Code)

	err = Validate(&out, good, "yaml")
	assert.Equal(t, ExitUsage, exitCode(err))
}

func TestEcho(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.xml")
	require.NoError(t, Create(io.Discard, in, 0, 0))
	out := filepath.Join(dir, "out.xml")

	var stdout bytes.Buffer
	require.NoError(t, Echo(&stdout, in, out, 1, 3))
	doc, errs := sedxml.ReadFile(out)
	require.Zero(t, errs.Len(), errs.String())
	check := assert.New(t)
	check.Equal(1, doc.Level)
	check.Equal(3, doc.Version)
	check.Len(doc.Outputs, 3)

	err := Echo(&stdout, writeFile(t, dir, "bad.xml", taskWithoutModel), filepath.Join(dir, "never.xml"), 0, 0)
	check.Equal(ExitUsage, exitCode(err))
	check.NoFileExists(filepath.Join(dir, "never.xml"))
}

const repeatedL1V3 = `<?xml version="1.0" encoding="UTF-8"?>
<sedML xmlns="http://sed-ml.org/sed-ml/level1/version3" level="1" version="3">
  <listOfDataDescriptions>
    <dataDescription id="data1" source="data.csv"/>
  </listOfDataDescriptions>
  <listOfTasks>
    <repeatedTask id="rt1" range="r1" resetModel="false">
      <listOfRanges>
        <uniformRange id="r1" start="0" end="10" numberOfPoints="5" type="linear"/>
      </listOfRanges>
      <listOfSubTasks>
        <subTask order="1" task="task1"/>
      </listOfSubTasks>
    </repeatedTask>
  </listOfTasks>
</sedML>`

func TestEchoDownConversionWarnings(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.xml", repeatedL1V3)
	out := filepath.Join(dir, "out.xml")
	check := assert.New(t)

	var stdout bytes.Buffer
	require.NoError(t, Echo(&stdout, in, out, 1, 1))
	check.True(strings.HasPrefix(stdout.String(), "Warnings:"), stdout.String())
	check.Contains(stdout.String(), "<dataDescription> is not part of SED-ML Level 1 Version 1")
	check.Contains(stdout.String(), "<repeatedTask> is not part of SED-ML Level 1 Version 1")
	check.NotContains(stdout.String(), "<uniformRange>")
	check.FileExists(out)

	stdout.Reset()
	require.NoError(t, Echo(&stdout, in, out, 1, 4))
	check.NotContains(stdout.String(), "is not part of")
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.xml", modelFile)
	path := filepath.Join(dir, "example.xml")
	require.NoError(t, Create(io.Discard, path, 0, 0))

	var out bytes.Buffer
	require.NoError(t, Resolve(context.Background(), &out, path, "model2", ""))
	check := assert.New(t)
	check.Contains(out.String(), `value="0.1"`)
	check.Contains(out.String(), `initialConcentration="1.5"`)
	check.NotContains(out.String(), `id="S1"`)

	out.Reset()
	check.Error(Resolve(context.Background(), &out, path, "model2", t.TempDir()))
	check.Error(Resolve(context.Background(), &out, path, "model9", ""))
}

func TestFormula(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Formula(&out, "S2/2"))
	check := assert.New(t)
	check.True(strings.HasPrefix(out.String(), "formula: S2 / 2\n"), out.String())
	check.Contains(out.String(), "<divide")
	check.Contains(out.String(), "<ci> S2 </ci>")

	err := Formula(&out, "1 +")
	check.Equal(ExitUsage, exitCode(err))
}
