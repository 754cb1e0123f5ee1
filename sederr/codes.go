package sederr

import "fmt"

// Code is a SED-ML diagnostic identifier
type Code int

const (
	SedUnknown             Code = 10000
	SedNotUTF8             Code = 10001
	SedUnrecognizedElement Code = 10002
	SedNotSchemaConformant Code = 10003

	SedmlNSUndeclared   Code = 10101
	SedmlElementNotInNs Code = 10102

	SedInvalidMathElement Code = 10201

	SedmlDuplicateComponentId Code = 10301
	SedmlIdSyntaxRule         Code = 10302
	SedInvalidMetaidSyntax    Code = 10303

	SedMultipleAnnotations        Code = 10404
	SedOnlyOneNotesElementAllowed Code = 10805

	SedAllowedAttributes Code = 20102
	SedEmptyListElement  Code = 20103

	SedmlDocumentAllowedAttributes               Code = 20203
	SedmlDocumentAllowedElements                 Code = 20204
	SedmlDocumentLevelMustBeNonNegativeInteger   Code = 20205
	SedmlDocumentVersionMustBeNonNegativeInteger Code = 20206

	SedmlModelAllowedAttributes  Code = 20303
	SedmlModelAllowedElements    Code = 20304
	SedmlChangeAllowedAttributes Code = 20403
	SedmlAddXMLAllowedElements   Code = 20503

	SedmlChangeAttributeAllowedAttributes Code = 20603

	SedmlVariableAllowedAttributes               Code = 20703
	SedmlVariableTaskReferenceMustBeAbstractTask Code = 20707
	SedmlVariableModelReferenceMustBeModel       Code = 20708

	SedmlParameterAllowedAttributes Code = 20803
	SedmlParameterValueMustBeDouble Code = 20804

	SedmlSimulationAllowedElements Code = 20904

	SedmlUniformTimeCourseAllowedAttributes           Code = 21003
	SedmlUniformTimeCourseInitialTimeMustBeDouble     Code = 21004
	SedmlUniformTimeCourseOutputStartTimeMustBeDouble Code = 21005
	SedmlUniformTimeCourseOutputEndTimeMustBeDouble   Code = 21006
	SedmlUniformTimeCourseNumberOfPointsMustBeInteger Code = 21007

	SedmlAlgorithmAllowedAttributes   Code = 21103
	SedmlAlgorithmKisaoIDMustBeString Code = 21105

	SedmlTaskAllowedAttributes                   Code = 21303
	SedmlTaskModelReferenceMustBeModel           Code = 21304
	SedmlTaskSimulationReferenceMustBeSimulation Code = 21305

	SedmlDataGeneratorAllowedAttributes Code = 21403
	SedmlDataGeneratorAllowedElements   Code = 21404

	SedmlPlotAllowedElements Code = 21604

	SedmlAbstractCurveLogXMustBeBoolean                 Code = 21905
	SedmlAbstractCurveOrderMustBeInteger                Code = 21906
	SedmlAbstractCurveXDataReferenceMustBeDataReference Code = 21909

	SedmlCurveAllowedAttributes                 Code = 22003
	SedmlCurveYDataReferenceMustBeDataGenerator Code = 22004
	SedmlCurveLogYMustBeBoolean                 Code = 22005

	SedmlSurfaceAllowedAttributes                 Code = 22103
	SedmlSurfaceZDataReferenceMustBeDataGenerator Code = 22104
	SedmlSurfaceLogZMustBeBoolean                 Code = 22112

	SedmlDataSetAllowedAttributes                Code = 22203
	SedmlDataSetDataReferenceMustBeDataGenerator Code = 22205

	SedmlReportAllowedElements Code = 22303

	SedmlAlgorithmParameterAllowedAttributes Code = 22403

	SedmlRangeAllowedAttributes Code = 22503

	SedmlChangeXMLAllowedElements Code = 22603

	SedmlSetValueAllowedAttributes         Code = 22803
	SedmlSetValueModelReferenceMustBeModel Code = 22805
	SedmlSetValueRangeMustBeRange          Code = 22808

	SedmlUniformRangeAllowedAttributes           Code = 22903
	SedmlUniformRangeStartMustBeDouble           Code = 22904
	SedmlUniformRangeEndMustBeDouble             Code = 22905
	SedmlUniformRangeNumberOfPointsMustBeInteger Code = 22906

	SedmlVectorRangeAllowedAttributes Code = 23003

	SedmlFunctionalRangeAllowedAttributes Code = 23103
	SedmlFunctionalRangeRangeMustBeRange  Code = 23105

	SedmlSubTaskAllowedAttributes      Code = 23203
	SedmlSubTaskOrderMustBeInteger     Code = 23204
	SedmlSubTaskTaskMustBeAbstractTask Code = 23205

	SedmlOneStepAllowedAttributes Code = 23303
	SedmlOneStepStepMustBeDouble  Code = 23304

	SedmlRepeatedTaskAllowedAttributes       Code = 23503
	SedmlRepeatedTaskRangeMustBeRange        Code = 23505
	SedmlRepeatedTaskResetModelMustBeBoolean Code = 23506

	SedmlComputeChangeAllowedElements Code = 23603

	SedmlDataDescriptionAllowedAttributes Code = 23703

	SedmlDataSourceAllowedAttributes Code = 23803

	SedmlSliceAllowedAttributes       Code = 23903
	SedmlSliceStartIndexMustBeInteger Code = 23906
	SedmlSliceEndIndexMustBeInteger   Code = 23907

	SedModelSourceUnresolvable Code = 90001
	SedModelSourceCycle        Code = 90002
	SedTargetSyntax            Code = 90003
	SedMathUndefinedSymbol     Code = 90004
	SedSimulationTimeOrder     Code = 90005
	SedKisaoIDSyntax           Code = 90006
	SedVariableTargetOrSymbol  Code = 90007
	SedSubTaskSelfReference    Code = 90008
	SedFileUnreadable          Code = 90009
	SedMissingMath             Code = 90010
	SedNotInLevelVersion       Code = 90011

	SedUnknownCoreAttribute Code = 99994
)

type codeInfo struct {
	short    string
	category Category
	severity Severity
}

var codeTable = map[Code]codeInfo{
	SedUnknown:             {"Encountered unknown internal error", CategoryInternal, SeverityError},
	SedNotUTF8:             {"File does not use UTF-8 encoding", CategoryXML, SeverityError},
	SedUnrecognizedElement: {"Encountered unrecognized element", CategoryXML, SeverityError},
	SedNotSchemaConformant: {"Document does not conform to the SED-ML XML schema", CategoryXML, SeverityFatal},

	SedmlNSUndeclared:   {"The SED-ML namespace is not declared", CategoryGeneral, SeverityError},
	SedmlElementNotInNs: {"Element is not in the SED-ML namespace", CategoryGeneral, SeverityError},

	SedInvalidMathElement: {"Invalid MathML content", CategoryMathML, SeverityError},

	SedmlDuplicateComponentId: {"Duplicate 'id' attribute value", CategoryIdentifier, SeverityError},
	SedmlIdSyntaxRule:         {"Invalid syntax for an 'id' attribute value", CategoryIdentifier, SeverityError},
	SedInvalidMetaidSyntax:    {"Invalid syntax for a 'metaid' attribute value", CategoryIdentifier, SeverityError},

	SedMultipleAnnotations:        {"Only one annotation is permitted per element", CategoryGeneral, SeverityError},
	SedOnlyOneNotesElementAllowed: {"Only one notes element is permitted per element", CategoryGeneral, SeverityError},

	SedAllowedAttributes: {"Attribute not allowed on this element", CategoryGeneral, SeverityError},
	SedEmptyListElement:  {"A listOf element must not be empty", CategoryGeneral, SeverityWarning},

	SedmlDocumentAllowedAttributes:               {"Attributes allowed on <sedML>", CategoryGeneral, SeverityError},
	SedmlDocumentAllowedElements:                 {"Elements allowed on <sedML>", CategoryGeneral, SeverityError},
	SedmlDocumentLevelMustBeNonNegativeInteger:   {"The 'level' attribute must be a non-negative integer", CategoryGeneral, SeverityError},
	SedmlDocumentVersionMustBeNonNegativeInteger: {"The 'version' attribute must be a non-negative integer", CategoryGeneral, SeverityError},

	SedmlModelAllowedAttributes:  {"Attributes allowed on <model>", CategoryGeneral, SeverityError},
	SedmlModelAllowedElements:    {"Elements allowed on <model>", CategoryGeneral, SeverityError},
	SedmlChangeAllowedAttributes: {"Attributes allowed on a change", CategoryGeneral, SeverityError},
	SedmlAddXMLAllowedElements:   {"Elements allowed on <addXML>", CategoryGeneral, SeverityError},

	SedmlChangeAttributeAllowedAttributes: {"Attributes allowed on <changeAttribute>", CategoryGeneral, SeverityError},

	SedmlVariableAllowedAttributes:               {"Attributes allowed on <variable>", CategoryGeneral, SeverityError},
	SedmlVariableTaskReferenceMustBeAbstractTask: {"The 'taskReference' attribute must reference a task", CategoryIdentifier, SeverityError},
	SedmlVariableModelReferenceMustBeModel:       {"The 'modelReference' attribute must reference a model", CategoryIdentifier, SeverityError},

	SedmlParameterAllowedAttributes: {"Attributes allowed on <parameter>", CategoryGeneral, SeverityError},
	SedmlParameterValueMustBeDouble: {"The 'value' attribute must be a double", CategoryGeneral, SeverityError},

	SedmlSimulationAllowedElements: {"Elements allowed on a simulation", CategoryGeneral, SeverityError},

	SedmlUniformTimeCourseAllowedAttributes:           {"Attributes allowed on <uniformTimeCourse>", CategoryGeneral, SeverityError},
	SedmlUniformTimeCourseInitialTimeMustBeDouble:     {"The 'initialTime' attribute must be a double", CategoryGeneral, SeverityError},
	SedmlUniformTimeCourseOutputStartTimeMustBeDouble: {"The 'outputStartTime' attribute must be a double", CategoryGeneral, SeverityError},
	SedmlUniformTimeCourseOutputEndTimeMustBeDouble:   {"The 'outputEndTime' attribute must be a double", CategoryGeneral, SeverityError},
	SedmlUniformTimeCourseNumberOfPointsMustBeInteger: {"The 'numberOfPoints' attribute must be an integer", CategoryGeneral, SeverityError},

	SedmlAlgorithmAllowedAttributes:   {"Attributes allowed on <algorithm>", CategoryGeneral, SeverityError},
	SedmlAlgorithmKisaoIDMustBeString: {"The 'kisaoID' attribute must be a string", CategoryGeneral, SeverityError},

	SedmlTaskAllowedAttributes:                   {"Attributes allowed on <task>", CategoryGeneral, SeverityError},
	SedmlTaskModelReferenceMustBeModel:           {"The 'modelReference' attribute must reference a model", CategoryIdentifier, SeverityError},
	SedmlTaskSimulationReferenceMustBeSimulation: {"The 'simulationReference' attribute must reference a simulation", CategoryIdentifier, SeverityError},

	SedmlDataGeneratorAllowedAttributes: {"Attributes allowed on <dataGenerator>", CategoryGeneral, SeverityError},
	SedmlDataGeneratorAllowedElements:   {"Elements allowed on <dataGenerator>", CategoryGeneral, SeverityError},

	SedmlPlotAllowedElements: {"Elements allowed on a plot", CategoryGeneral, SeverityWarning},

	SedmlAbstractCurveLogXMustBeBoolean:                 {"The 'logX' attribute must be a boolean", CategoryGeneral, SeverityError},
	SedmlAbstractCurveOrderMustBeInteger:                {"The 'order' attribute must be an integer", CategoryGeneral, SeverityError},
	SedmlAbstractCurveXDataReferenceMustBeDataReference: {"The 'xDataReference' attribute must reference a data generator", CategoryIdentifier, SeverityError},

	SedmlCurveAllowedAttributes:                 {"Attributes allowed on <curve>", CategoryGeneral, SeverityError},
	SedmlCurveYDataReferenceMustBeDataGenerator: {"The 'yDataReference' attribute must reference a data generator", CategoryIdentifier, SeverityError},
	SedmlCurveLogYMustBeBoolean:                 {"The 'logY' attribute must be a boolean", CategoryGeneral, SeverityError},

	SedmlSurfaceAllowedAttributes:                 {"Attributes allowed on <surface>", CategoryGeneral, SeverityError},
	SedmlSurfaceZDataReferenceMustBeDataGenerator: {"The 'zDataReference' attribute must reference a data generator", CategoryIdentifier, SeverityError},
	SedmlSurfaceLogZMustBeBoolean:                 {"The 'logZ' attribute must be a boolean", CategoryGeneral, SeverityError},

	SedmlDataSetAllowedAttributes:                {"Attributes allowed on <dataSet>", CategoryGeneral, SeverityError},
	SedmlDataSetDataReferenceMustBeDataGenerator: {"The 'dataReference' attribute must reference a data generator", CategoryIdentifier, SeverityError},

	SedmlReportAllowedElements: {"Elements allowed on <report>", CategoryGeneral, SeverityWarning},

	SedmlAlgorithmParameterAllowedAttributes: {"Attributes allowed on <algorithmParameter>", CategoryGeneral, SeverityError},

	SedmlRangeAllowedAttributes: {"Attributes allowed on a range", CategoryGeneral, SeverityError},

	SedmlChangeXMLAllowedElements: {"Elements allowed on <changeXML>", CategoryGeneral, SeverityError},

	SedmlSetValueAllowedAttributes:         {"Attributes allowed on <setValue>", CategoryGeneral, SeverityError},
	SedmlSetValueModelReferenceMustBeModel: {"The 'modelReference' attribute must reference a model", CategoryIdentifier, SeverityError},
	SedmlSetValueRangeMustBeRange:          {"The 'range' attribute must reference a range", CategoryIdentifier, SeverityError},

	SedmlUniformRangeAllowedAttributes:           {"Attributes allowed on <uniformRange>", CategoryGeneral, SeverityError},
	SedmlUniformRangeStartMustBeDouble:           {"The 'start' attribute must be a double", CategoryGeneral, SeverityError},
	SedmlUniformRangeEndMustBeDouble:             {"The 'end' attribute must be a double", CategoryGeneral, SeverityError},
	SedmlUniformRangeNumberOfPointsMustBeInteger: {"The 'numberOfPoints' attribute must be an integer", CategoryGeneral, SeverityError},

	SedmlVectorRangeAllowedAttributes: {"Attributes allowed on <vectorRange>", CategoryGeneral, SeverityError},

	SedmlFunctionalRangeAllowedAttributes: {"Attributes allowed on <functionalRange>", CategoryGeneral, SeverityError},
	SedmlFunctionalRangeRangeMustBeRange:  {"The 'range' attribute must reference a range", CategoryIdentifier, SeverityError},

	SedmlSubTaskAllowedAttributes:      {"Attributes allowed on <subTask>", CategoryGeneral, SeverityError},
	SedmlSubTaskOrderMustBeInteger:     {"The 'order' attribute must be an integer", CategoryGeneral, SeverityError},
	SedmlSubTaskTaskMustBeAbstractTask: {"The 'task' attribute must reference a task", CategoryIdentifier, SeverityError},

	SedmlOneStepAllowedAttributes: {"Attributes allowed on <oneStep>", CategoryGeneral, SeverityError},
	SedmlOneStepStepMustBeDouble:  {"The 'step' attribute must be a double", CategoryGeneral, SeverityError},

	SedmlRepeatedTaskAllowedAttributes:       {"Attributes allowed on <repeatedTask>", CategoryGeneral, SeverityError},
	SedmlRepeatedTaskRangeMustBeRange:        {"The 'range' attribute must reference a child range", CategoryIdentifier, SeverityError},
	SedmlRepeatedTaskResetModelMustBeBoolean: {"The 'resetModel' attribute must be a boolean", CategoryGeneral, SeverityError},

	SedmlComputeChangeAllowedElements: {"Elements allowed on <computeChange>", CategoryGeneral, SeverityError},

	SedmlDataDescriptionAllowedAttributes: {"Attributes allowed on <dataDescription>", CategoryGeneral, SeverityError},

	SedmlDataSourceAllowedAttributes: {"Attributes allowed on <dataSource>", CategoryGeneral, SeverityError},

	SedmlSliceAllowedAttributes:       {"Attributes allowed on <slice>", CategoryGeneral, SeverityError},
	SedmlSliceStartIndexMustBeInteger: {"The 'startIndex' attribute must be an integer", CategoryGeneral, SeverityError},
	SedmlSliceEndIndexMustBeInteger:   {"The 'endIndex' attribute must be an integer", CategoryGeneral, SeverityError},

	SedModelSourceUnresolvable: {"Model source cannot be resolved", CategoryGeneral, SeverityError},
	SedModelSourceCycle:        {"Model sources form a cycle", CategoryGeneral, SeverityError},
	SedTargetSyntax:            {"Target is not a valid XPath expression", CategoryGeneral, SeverityError},
	SedMathUndefinedSymbol:     {"Math refers to an undefined symbol", CategoryMathML, SeverityError},
	SedSimulationTimeOrder:     {"Simulation times are out of order", CategoryGeneral, SeverityError},
	SedKisaoIDSyntax:           {"KiSAO identifier must match KISAO:nnnnnnn", CategoryGeneral, SeverityWarning},
	SedVariableTargetOrSymbol:  {"A variable must have exactly one of 'target' or 'symbol'", CategoryGeneral, SeverityError},
	SedSubTaskSelfReference:    {"A subTask must not reference its own repeatedTask", CategoryIdentifier, SeverityError},
	SedFileUnreadable:          {"File unreadable", CategoryXML, SeverityFatal},
	SedMissingMath:             {"Missing <math> element", CategoryMathML, SeverityError},
	SedNotInLevelVersion:       {"Construct not defined in the document's level and version", CategoryGeneral, SeverityWarning},

	SedUnknownCoreAttribute: {"Encountered an unknown attribute in the SED-ML namespace", CategoryGeneral, SeverityWarning},
}

// ShortMessage returns the short description of code c
func (c Code) ShortMessage() string {
	if info, ok := codeTable[c]; ok {
		return info.short
	}
	return fmt.Sprintf("SED-ML error %d", int(c))
}

// DefaultSeverity returns the severity an Error with code c receives
// unless overridden with WithSeverity.
func (c Code) DefaultSeverity() Severity {
	if info, ok := codeTable[c]; ok {
		return info.severity
	}
	return SeverityError
}

// DefaultCategory returns the category of code c
func (c Code) DefaultCategory() Category {
	if info, ok := codeTable[c]; ok {
		return info.category
	}
	return CategorySEDML
}
