package dom

import "github.com/pkg/errors"

// Default level and version of new documents
const (
	DefaultLevel   = 1
	DefaultVersion = 4
)

var namespaces = map[[2]int]string{
	{1, 1}: "http://sed-ml.org/",
	{1, 2}: "http://sed-ml.org/sed-ml/level1/version2",
	{1, 3}: "http://sed-ml.org/sed-ml/level1/version3",
	{1, 4}: "http://sed-ml.org/sed-ml/level1/version4",
	{1, 5}: "http://sed-ml.org/sed-ml/level1/version5",
}

// Namespace returns the SED-ML namespace URI of a level and version,
// or the empty string if the combination is unknown
func Namespace(level, version int) string {
	return namespaces[[2]int{level, version}]
}

// LevelVersion returns the level and version of a SED-ML namespace URI
func LevelVersion(ns string) (level, version int, ok bool) {
	for lv, uri := range namespaces {
		if uri == ns {
			return lv[0], lv[1], true
		}
	}
	return 0, 0, false
}

// IsSupported reports whether level and version name a known SED-ML release
func IsSupported(level, version int) bool { return Namespace(level, version) != "" }

// Well-known model language URNs
const (
	LanguageSBML    = "urn:sedml:language:sbml"
	LanguageCellML  = "urn:sedml:language:cellml"
	LanguageNeuroML = "urn:sedml:language:neuroml"
)

// SymbolTime is the implicit SED-ML simulation time symbol
const SymbolTime = "urn:sedml:symbol:time"

func checkLevelVersion(level, version int) error {
	if !IsSupported(level, version) {
		return errors.Errorf("unsupported SED-ML level %d version %d", level, version)
	}
	return nil
}
