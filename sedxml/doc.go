// Package sedxml reads and writes SED-ML documents.
//
// Read builds a dom.Document from XML, reporting every problem it finds
// in a sederr.Log instead of stopping at the first one. Write serializes
// a dom.Document, adapting version dependent attributes to the
// document's level and version.
package sedxml
