package schemauml

import (
	"log/slog"
	"strings"
)

const allOfProperty = "allOf"

type resolver struct {
	registry      *registry
	enumPattern   string
	logger        *slog.Logger
	relationships []Relationship
}

func newResolver(reg *registry, enumPattern string, logger *slog.Logger) *resolver {
	return &resolver{
		registry:    reg,
		enumPattern: enumPattern,
		logger:      logger,
	}
}

// isEnum reports whether a referenced schema is inlined as an enum attribute:
// either its name carries the enum pattern or it was registered as an enum.
func (r *resolver) isEnum(name string) bool {
	if r.enumPattern != "" && strings.Contains(name, r.enumPattern) {
		return true
	}
	c, ok := r.registry.lookup(name)
	return ok && c.Kind == KindEnum
}

func (r *resolver) resolveSchema(name string, schema *Schema) error {
	owner, ok := r.registry.lookup(name)
	if !ok {
		return &MissingReferenceError{Owner: name, Property: "schema", Ref: name}
	}

	for _, prop := range schema.Properties {
		if err := r.resolveProperty(owner, schema, prop.Name, prop.schema()); err != nil {
			return err
		}
	}

	for _, parent := range schema.AllOf {
		if parent == nil || parent.Ref == "" {
			r.logger.Debug("skipping inline allOf member", "schema", name)
			continue
		}
		target, err := r.lookup(owner, allOfProperty, parent.Ref)
		if err != nil {
			return err
		}
		r.generalize(owner, target)
	}
	return nil
}

func (r *resolver) resolveProperty(owner *Class, schema *Schema, name string, prop *Schema) error {
	switch classifyProperty(prop, r.isEnum) {
	case shapeEnumReference:
		attr := newAttribute(name, prop, schema.Requires(name))
		attr.Type = enumAttributeType
		owner.AddAttribute(attr)
	case shapeReference:
		multiplicity := MultiplicityOne
		if prop.Type == "array" {
			multiplicity = MultiplicityMany
		}
		return r.aggregateRef(owner, name, prop.Ref, multiplicity)
	case shapeArrayOfChoice:
		return r.resolveChoice(owner, name, choiceMembers(prop.Items), MultiplicityMany)
	case shapeArrayOfReference:
		return r.aggregateRef(owner, name, prop.Items.Ref, MultiplicityMany)
	case shapeArrayOfComposite:
		r.logger.Debug("array items with allOf are not resolved", "schema", owner.Name, "property", name)
	case shapeScalarOneOf:
		return r.resolveChoice(owner, name, prop.OneOf, MultiplicityOne)
	case shapeScalarAnyOf:
		return r.resolveChoice(owner, name, prop.AnyOf, MultiplicityMany)
	case shapePlain:
	}
	return nil
}

func (r *resolver) resolveChoice(owner *Class, property string, entries []*Schema, multiplicity string) error {
	members := make([]*Class, 0, len(entries))
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry == nil || entry.Ref == "" {
			r.logger.Debug("skipping inline choice member", "schema", owner.Name, "property", property)
			continue
		}
		member, err := r.lookup(owner, property, entry.Ref)
		if err != nil {
			return err
		}
		members = append(members, member)
		names = append(names, member.Name)
	}

	abstract := synthesizeAbstract(r.registry, property, names)
	r.aggregate(owner, abstract, property, multiplicity)
	for _, member := range members {
		r.generalize(member, abstract)
	}
	return nil
}

func (r *resolver) aggregateRef(owner *Class, property, ref, multiplicity string) error {
	target, err := r.lookup(owner, property, ref)
	if err != nil {
		return err
	}
	r.aggregate(owner, target, property, multiplicity)
	return nil
}

func (r *resolver) aggregate(source, target *Class, label, multiplicity string) {
	r.relationships = append(r.relationships, Relationship{
		Source:             source,
		Target:             target,
		Kind:               RelationAggregation,
		Label:              label,
		MultiplicitySource: MultiplicityOne,
		MultiplicityTarget: multiplicity,
	})
}

func (r *resolver) generalize(child, parent *Class) {
	r.relationships = append(r.relationships, Relationship{
		Source: child,
		Target: parent,
		Kind:   RelationGeneralization,
	})
}

func (r *resolver) lookup(owner *Class, property, ref string) (*Class, error) {
	target, ok := r.registry.lookup(RefName(ref))
	if !ok {
		return nil, &MissingReferenceError{Owner: owner.Name, Property: property, Ref: ref}
	}
	return target, nil
}

func choiceMembers(schema *Schema) []*Schema {
	if len(schema.OneOf) > 0 {
		return schema.OneOf
	}
	return schema.AnyOf
}
