package schemauml

import (
	"fmt"
	"log/slog"
)

type registry struct {
	classes map[string]*Class
	schemas map[string]*Schema
	order   []string
	logger  *slog.Logger
}

func newRegistry(logger *slog.Logger) *registry {
	return &registry{
		classes: make(map[string]*Class),
		schemas: make(map[string]*Schema),
		logger:  logger,
	}
}

// register converts a schema definition into a class. A later definition with
// the same name replaces the earlier one but keeps its position.
func (r *registry) register(document, name string, schema *Schema) {
	if schema == nil {
		schema = &Schema{}
	}
	if _, ok := r.classes[name]; ok {
		r.logger.Warn("schema defined more than once, keeping the last definition",
			"schema", name, "document", document)
	} else {
		r.order = append(r.order, name)
	}
	r.classes[name] = schemaToClass(name, schema)
	r.schemas[name] = schema
}

// add registers a class that has no backing schema.
func (r *registry) add(class *Class) {
	r.classes[class.Name] = class
	r.order = append(r.order, class.Name)
}

func (r *registry) lookup(name string) (*Class, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// definitions returns the names of the schema-backed classes in registration order.
func (r *registry) definitions() []string {
	names := make([]string, 0, len(r.schemas))
	for _, name := range r.order {
		if _, ok := r.schemas[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

func (r *registry) list() []*Class {
	out := make([]*Class, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.classes[name])
	}
	return out
}

func schemaToClass(name string, schema *Schema) *Class {
	class := &Class{
		Name:        name,
		Kind:        KindPlain,
		Description: schema.Description,
	}
	if class.Description == "" {
		class.Description = missingDescription
	}
	if schema.IsEnum() {
		class.Kind = KindEnum
	}

	for _, prop := range schema.Properties {
		if isStructural(prop.schema()) {
			continue
		}
		class.AddAttribute(newAttribute(prop.Name, prop.schema(), schema.Requires(prop.Name)))
	}
	return class
}

func newAttribute(name string, prop *Schema, required bool) Attribute {
	attr := Attribute{
		Name:        name,
		Type:        prop.Type,
		Format:      prop.Format,
		Description: prop.Description,
		Required:    required,
		Ref:         prop.Ref,
	}
	if attr.Type == "" {
		attr.Type = unknownType
	}
	if prop.Example != nil {
		attr.Example = fmt.Sprint(prop.Example)
	}
	return attr
}

// isStructural reports whether a property is turned into relationships in the
// second pass instead of an attribute.
func isStructural(prop *Schema) bool {
	switch {
	case prop.Ref != "":
		return true
	case len(prop.OneOf) > 0 || len(prop.AnyOf) > 0:
		return true
	case prop.IsArray() && prop.Items != nil:
		items := prop.Items
		return items.Ref != "" || len(items.OneOf) > 0 || len(items.AnyOf) > 0 || len(items.AllOf) > 0
	default:
		return false
	}
}
