package dom

// TypeCode identifies the concrete type of an Element
type TypeCode int

// Element type codes
const (
	TypeUnknown TypeCode = iota
	TypeDocument
	TypeDataDescription
	TypeModel
	TypeChangeAttribute
	TypeAddXML
	TypeChangeXML
	TypeRemoveXML
	TypeComputeChange
	TypeVariable
	TypeParameter
	TypeUniformTimeCourse
	TypeOneStep
	TypeSteadyState
	TypeAnalysis
	TypeAlgorithm
	TypeAlgorithmParameter
	TypeTask
	TypeRepeatedTask
	TypeUniformRange
	TypeVectorRange
	TypeFunctionalRange
	TypeSetValue
	TypeSubTask
	TypeDataGenerator
	TypeReport
	TypePlot2D
	TypePlot3D
	TypeDataSet
	TypeCurve
	TypeSurface
	TypeDataSource
	TypeSlice
)

var typeNames = [...]string{
	TypeUnknown:            "unknown",
	TypeDocument:           "sedML",
	TypeDataDescription:    "dataDescription",
	TypeModel:              "model",
	TypeChangeAttribute:    "changeAttribute",
	TypeAddXML:             "addXML",
	TypeChangeXML:          "changeXML",
	TypeRemoveXML:          "removeXML",
	TypeComputeChange:      "computeChange",
	TypeVariable:           "variable",
	TypeParameter:          "parameter",
	TypeUniformTimeCourse:  "uniformTimeCourse",
	TypeOneStep:            "oneStep",
	TypeSteadyState:        "steadyState",
	TypeAnalysis:           "analysis",
	TypeAlgorithm:          "algorithm",
	TypeAlgorithmParameter: "algorithmParameter",
	TypeTask:               "task",
	TypeRepeatedTask:       "repeatedTask",
	TypeUniformRange:       "uniformRange",
	TypeVectorRange:        "vectorRange",
	TypeFunctionalRange:    "functionalRange",
	TypeSetValue:           "setValue",
	TypeSubTask:            "subTask",
	TypeDataGenerator:      "dataGenerator",
	TypeReport:             "report",
	TypePlot2D:             "plot2D",
	TypePlot3D:             "plot3D",
	TypeDataSet:            "dataSet",
	TypeCurve:              "curve",
	TypeSurface:            "surface",
	TypeDataSource:         "dataSource",
	TypeSlice:              "slice",
}

// String returns the SED-ML element name for the type
func (t TypeCode) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return typeNames[TypeUnknown]
	}
	return typeNames[t]
}

// TypeForElement returns the TypeCode of a SED-ML element name
func TypeForElement(name string) TypeCode {
	for t, n := range typeNames {
		if n == name && t != int(TypeUnknown) {
			return TypeCode(t)
		}
	}
	return TypeUnknown
}
