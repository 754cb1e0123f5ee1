/*
Package mathml holds the math expressions used by SED-ML data
generators, compute changes, functional ranges and set values.

Expressions are trees of *Node. They are read and written in two forms:

  - infix text, with ParseFormula and FormulaToString, e.g. "S2 / 2";
  - MathML content markup, with Decode and Encode, which is how SED-ML
    documents store them inside a <math> element.

Node names follow the MathML element names ("plus", "divide", "ln",
"root", "lt", "piecewise", ...) so that the infix and MathML forms map
onto the same tree.

Eval computes the numeric value of an expression given values for its
identifiers, and Identifiers lists the identifiers an expression
refers to.
*/
package mathml
