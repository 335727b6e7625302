package core

// ParameterName is the built-in name of a revision parameter.
type ParameterName string

const (
	ParamRevisionEnumeration ParameterName = "PROJECT_REVISION_ENUMERATION"
	ParamRevisionDate        ParameterName = "PROJECT_REVISION_REVISION_DATE"
	ParamRevisionDescription ParameterName = "PROJECT_REVISION_REVISION_DESCRIPTION"
	ParamRevisionIssued      ParameterName = "PROJECT_REVISION_REVISION_ISSUED"
	ParamRevisionIssuedBy    ParameterName = "PROJECT_REVISION_REVISION_ISSUED_BY"
	ParamRevisionIssuedTo    ParameterName = "PROJECT_REVISION_REVISION_ISSUED_TO"
	ParamRevisionNumber      ParameterName = "PROJECT_REVISION_REVISION_NUM"
	ParamSequenceNumber      ParameterName = "PROJECT_REVISION_SEQUENCE_NUM"
)

// NullText marks a parameter the element does not carry.
const NullText = "null"

// ReportParameter pairs a parameter with the label printed in reports.
type ReportParameter struct {
	Name  ParameterName
	Label string
}

// ReportParameters lists the report fields in output order.
var ReportParameters = []ReportParameter{
	{ParamRevisionEnumeration, "Revision Enumeration"},
	{ParamRevisionDate, "Revision Date"},
	{ParamRevisionDescription, "Revision Description"},
	{ParamRevisionIssued, "Revision Issued"},
	{ParamRevisionIssuedBy, "Revision Issued By"},
	{ParamRevisionIssuedTo, "Revision Issued To"},
	{ParamRevisionNumber, "Revision Number"},
	{ParamSequenceNumber, "Revision Sequence Number"},
}

// ReportField is one formatted parameter of a ReportLine.
type ReportField struct {
	Parameter ParameterName `json:"parameter"`
	Label     string        `json:"label"`
	Value     string        `json:"value"`
}

// ReportLine is the text-report view of one element referenced from a sheet.
type ReportLine struct {
	Hidden bool          `json:"hidden"`
	Name   string        `json:"name"`
	Fields []ReportField `json:"fields"`
}

// Field returns the formatted value of the named parameter.
func (l ReportLine) Field(name ParameterName) (string, bool) {
	for _, f := range l.Fields {
		if f.Parameter == name {
			return f.Value, true
		}
	}
	return "", false
}
