/*
Package sederr provides SED-ML document diagnostics.

Problems found while reading or validating a SED-ML document are not
returned as Go errors. Each one is recorded as an *Error in a Log, graded
by Severity and grouped by Category, so that a caller can inspect the
whole set afterwards (for example, refusing a document when
Log.NumFailsWithSeverity(SeverityError) is non-zero).

Error codes use the numbering common to SED-ML tools, grouped by the
element whose rule they check.
*/
package sederr
