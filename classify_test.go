package schemauml

import "testing"

func TestClassifyProperty(t *testing.T) {
	t.Parallel()

	ref := func(name string) *Schema {
		return &Schema{Ref: "#/components/schemas/" + name}
	}
	isEnum := func(name string) bool {
		return name == "Status"
	}

	tests := []struct {
		name string
		prop *Schema
		want propertyShape
	}{
		{"Scalar", &Schema{Type: "string"}, shapePlain},
		{"Empty", &Schema{}, shapePlain},
		{"EnumReference", ref("Status"), shapeEnumReference},
		{"Reference", ref("Pet"), shapeReference},
		{"ReferenceWinsOverOneOf", &Schema{Ref: "#/components/schemas/Pet", OneOf: []*Schema{ref("Cat")}}, shapeReference},
		{"ArrayOfOneOf", &Schema{Type: "array", Items: &Schema{OneOf: []*Schema{ref("Cat")}}}, shapeArrayOfChoice},
		{"ArrayOfAnyOf", &Schema{Type: "array", Items: &Schema{AnyOf: []*Schema{ref("Cat")}}}, shapeArrayOfChoice},
		{"ArrayOfReference", &Schema{Type: "array", Items: ref("Pet")}, shapeArrayOfReference},
		{"ArrayOfEnumReference", &Schema{Type: "array", Items: ref("Status")}, shapeArrayOfReference},
		{"ItemsWithoutType", &Schema{Items: ref("Pet")}, shapeArrayOfReference},
		{"ArrayOfAllOf", &Schema{Type: "array", Items: &Schema{AllOf: []*Schema{ref("Pet")}}}, shapeArrayOfComposite},
		{"ArrayOfScalars", &Schema{Type: "array", Items: &Schema{Type: "string"}}, shapePlain},
		{"ArrayWithoutItems", &Schema{Type: "array"}, shapePlain},
		{"OneOf", &Schema{OneOf: []*Schema{ref("Cat"), ref("Dog")}}, shapeScalarOneOf},
		{"AnyOf", &Schema{AnyOf: []*Schema{ref("Cat"), ref("Dog")}}, shapeScalarAnyOf},
		{"OneOfWinsOverAnyOf", &Schema{OneOf: []*Schema{ref("Cat")}, AnyOf: []*Schema{ref("Dog")}}, shapeScalarOneOf},
	}

	for _, tt := range tests {

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := classifyProperty(tt.prop, isEnum); got != tt.want {
				t.Fatalf("classifyProperty() = %s, want %s", got, tt.want)
			}
		})
	}
}
