package schemauml

type propertyShape int

const (
	shapePlain propertyShape = iota
	shapeEnumReference
	shapeReference
	shapeArrayOfChoice
	shapeArrayOfReference
	shapeArrayOfComposite
	shapeScalarOneOf
	shapeScalarAnyOf
)

func (s propertyShape) String() string {
	switch s {
	case shapePlain:
		return "plain"
	case shapeEnumReference:
		return "enum reference"
	case shapeReference:
		return "reference"
	case shapeArrayOfChoice:
		return "array of choice"
	case shapeArrayOfReference:
		return "array of reference"
	case shapeArrayOfComposite:
		return "array of composite"
	case shapeScalarOneOf:
		return "oneOf"
	case shapeScalarAnyOf:
		return "anyOf"
	default:
		return "unknown"
	}
}

// classifyProperty decides how a property is resolved. The cases are checked in
// order and the first match wins. isEnum reports whether a referenced schema
// name is an enumeration.
func classifyProperty(prop *Schema, isEnum func(name string) bool) propertyShape {
	switch {
	case prop.Ref != "" && isEnum(RefName(prop.Ref)):
		return shapeEnumReference
	case prop.Ref != "":
		return shapeReference
	}

	if prop.IsArray() && prop.Items != nil {
		items := prop.Items
		switch {
		case len(items.OneOf) > 0 || len(items.AnyOf) > 0:
			return shapeArrayOfChoice
		case items.Ref != "":
			return shapeArrayOfReference
		case len(items.AllOf) > 0:
			return shapeArrayOfComposite
		}
	}

	switch {
	case len(prop.OneOf) > 0:
		return shapeScalarOneOf
	case len(prop.AnyOf) > 0:
		return shapeScalarAnyOf
	default:
		return shapePlain
	}
}
