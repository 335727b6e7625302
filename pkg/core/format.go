package core

import "strconv"

const (
	// UnexposedText is returned for values whose storage is not exposed.
	UnexposedText = "Unexposed parameter"

	TrueText  = "True"
	FalseText = "False"
)

// Format converts a parameter value into its canonical display string.
//
// References with a negative id denote "no element" and are rendered as the
// id itself without consulting lookup. A non-negative id that lookup cannot
// resolve is rendered the same way.
func Format(v Value, lookup DocumentLookup) string {
	switch v := v.(type) {
	case NumberValue:
		return v.DisplayString()
	case ReferenceValue:
		if v.ID >= 0 && lookup != nil {
			if name, ok := lookup.ResolveName(v.ID); ok {
				return name
			}
		}
		return v.ID.String()
	case IntegerValue:
		if v.Semantic == SemanticYesNo {
			return FormatBool(v.Value != 0)
		}
		return strconv.FormatInt(v.Value, 10)
	case TextValue:
		return v.Value
	default:
		return UnexposedText
	}
}

// FormatBool renders b with the sentinel texts "True" and "False".
func FormatBool(b bool) string {
	if b {
		return TrueText
	}
	return FalseText
}
