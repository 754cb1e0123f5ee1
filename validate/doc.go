/*
Package validate checks a SED-ML document for consistency beyond what
the XML reader enforces.

Document runs every check and returns the problems found as a
sederr.Log. Checks never stop early: a document with a broken reference
is still checked for id syntax, math symbols and so on. The checks are:

  - id syntax and uniqueness
  - references between elements (tasks, models, simulations, data
    generators and ranges)
  - math symbols, which must name a variable, a parameter or a range
  - target syntax, compiled as XPath with the document's namespace
    prefixes
  - simulation time ordering and KiSAO identifier syntax
  - minimum cardinality of reports and plots
*/
package validate
