/*
Package sedml is a set of SED-ML (Simulation Experiment Description Markup
Language) support libraries.

The dom package holds the typed document model. sedxml reads and writes
it as SED-ML Level 1 Version 1 to 5 XML, collecting the problems found
while reading in a sederr.Log. Math held by data generators, changes and
ranges lives in mathml, which parses infix formulas and encodes MathML.

On top of these, validate checks identifiers and cross references,
resolve applies a model's changes to the model XML it refers to, and
summary prints the human readable report of a document.

The cmd directory holds the create_sedml and print_sedml demo programs
and the sedml tool, which share their implementation through the cli
package.
*/
package sedml
