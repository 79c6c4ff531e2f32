package constants

// FieldName keys the extraction result record. The record always carries the
// full set; a field that did not match, or does not apply to the document
// type, is explicitly absent rather than omitted.
type FieldName string

const (
	FieldHolderName  FieldName = "name"
	FieldDateOfBirth FieldName = "dob"
	FieldNIDNumber   FieldName = "nid"
	FieldBOAccount   FieldName = "bo_account"
	FieldTIN         FieldName = "tin"
)

// NotDetected is the user-facing render of an absent field value.
const NotDetected = "Not detected"

var allFields = []FieldName{
	FieldHolderName,
	FieldDateOfBirth,
	FieldNIDNumber,
	FieldBOAccount,
	FieldTIN,
}

// AllFields returns every known field name in record order.
func AllFields() []FieldName {
	out := make([]FieldName, len(allFields))
	copy(out, allFields)
	return out
}
