package schemauml

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a parsed OpenAPI-style document. Only components.schemas is read.
type Document struct {
	Components Components `yaml:"components"`
}

type Components struct {
	Schemas Schemas `yaml:"schemas"`
}

// HasSchemas reports whether the document declared a components.schemas mapping.
func (d *Document) HasSchemas() bool {
	return d != nil && d.Components.Schemas != nil
}

type NamedSchema struct {
	Name   string
	Schema *Schema
}

// Schemas is a components.schemas mapping kept in declaration order.
type Schemas []NamedSchema

// UnmarshalYAML implements yaml.Unmarshaler for Schemas.
func (s *Schemas) UnmarshalYAML(node *yaml.Node) error {
	out := make(Schemas, 0, len(node.Content)/2)
	err := decodeMapping(node, func(key string, value *yaml.Node) error {
		schema := &Schema{}
		if err := value.Decode(schema); err != nil {
			return fmt.Errorf("failed to decode schema %s: %w", key, err)
		}
		out = append(out, NamedSchema{Name: key, Schema: schema})
		return nil
	})
	if err != nil {
		return err
	}
	*s = out
	return nil
}

type Property struct {
	Name   string
	Schema *Schema
}

func (p Property) schema() *Schema {
	if p.Schema == nil {
		return &Schema{}
	}
	return p.Schema
}

// Properties is a properties mapping kept in declaration order.
type Properties []Property

// UnmarshalYAML implements yaml.Unmarshaler for Properties.
func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	out := make(Properties, 0, len(node.Content)/2)
	err := decodeMapping(node, func(key string, value *yaml.Node) error {
		schema := &Schema{}
		if err := value.Decode(schema); err != nil {
			return fmt.Errorf("failed to decode property %s: %w", key, err)
		}
		out = append(out, Property{Name: key, Schema: schema})
		return nil
	})
	if err != nil {
		return err
	}
	*p = out
	return nil
}

// Schema is the subset of a JSON schema object the compiler understands.
type Schema struct {
	Ref         string     `yaml:"$ref"`
	Type        string     `yaml:"-"`
	Format      string     `yaml:"format"`
	Description string     `yaml:"description"`
	Example     any        `yaml:"example"`
	Enum        []any      `yaml:"enum"`
	Required    NameList   `yaml:"required"`
	Properties  Properties `yaml:"properties"`
	Items       *Schema    `yaml:"items"`
	AllOf       []*Schema  `yaml:"allOf"`
	OneOf       []*Schema  `yaml:"oneOf"`
	AnyOf       []*Schema  `yaml:"anyOf"`

	// set when the enum key is present, even with an empty list
	hasEnum bool
}

// UnmarshalYAML implements yaml.Unmarshaler for Schema.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	type plain Schema
	if err := node.Decode((*plain)(s)); err != nil {
		return err
	}
	s.Type = schemaType(mappingValue(node, "type"))
	s.hasEnum = mappingValue(node, "enum") != nil
	return nil
}

// schemaType reads a type keyword. A list of types, as in
// `type: [string, "null"]`, yields its first non-null entry.
func schemaType(node *yaml.Node) string {
	if node == nil {
		return ""
	}
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Value
	case yaml.SequenceNode:
		for _, n := range node.Content {
			if n.Kind == yaml.ScalarNode && n.Value != "null" {
				return n.Value
			}
		}
		if len(node.Content) > 0 {
			return "null"
		}
	}
	return ""
}

// NameList is a list of property names. Anything but a sequence decodes to an
// empty list, so a Swagger 2 style `required: true` on a property is ignored.
type NameList []string

// UnmarshalYAML implements yaml.Unmarshaler for NameList.
func (l *NameList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		*l = nil
		return nil
	}
	out := make(NameList, 0, len(node.Content))
	for _, n := range node.Content {
		if n.Kind == yaml.ScalarNode {
			out = append(out, n.Value)
		}
	}
	*l = out
	return nil
}

func (s *Schema) IsEnum() bool {
	return s.hasEnum || len(s.Enum) > 0
}

func (s *Schema) IsArray() bool {
	return s.Type == "array" || s.Items != nil
}

func (s *Schema) Requires(property string) bool {
	return slices.Contains(s.Required, property)
}

// RefName returns the trailing name fragment of a $ref,
// e.g. "#/components/schemas/Pet" -> "Pet".
func RefName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

func decodeMapping(node *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := fn(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
