/*
Package resolve computes the effective XML of a SED-ML model.

A model's source names either a file, read relative to Resolver.BaseDir,
or another model of the same document. Resolver.Model follows the chain
of sources, parses the file at its end and applies the changes of every
model along the way, innermost first. Targets are XPath expressions
compiled with the namespace prefixes declared on the SED-ML document.
*/
package resolve
