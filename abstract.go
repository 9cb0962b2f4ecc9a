package schemauml

import (
	"fmt"
	"strings"

	"github.com/goatx/schemauml/internal/strcase"
)

const (
	minPrefixLength  = 2
	collisionSuffix  = "Choice"
	abstractTemplate = "Abstract class for %s: one of %s"
)

// synthesizeAbstract returns the abstract class standing for a oneOf/anyOf
// group, creating it on first use.
func synthesizeAbstract(reg *registry, property string, members []string) *Class {
	name := abstractName(property, members, func(name string) bool {
		c, ok := reg.lookup(name)
		return ok && c.Kind != KindAbstract
	})
	if c, ok := reg.lookup(name); ok {
		return c
	}

	class := &Class{
		Name:        name,
		Kind:        KindAbstract,
		Description: fmt.Sprintf(abstractTemplate, property, strings.Join(members, ", ")),
	}
	reg.add(class)
	return class
}

// abstractName derives the name of a choice group: the common prefix of the
// member names when it is at least two characters long, otherwise the
// title-cased property name. Candidates naming a concrete class are skipped.
func abstractName(property string, members []string, taken func(name string) bool) string {
	if prefix := strcase.CommonPrefix(members...); len([]rune(prefix)) >= minPrefixLength && !taken(prefix) {
		return prefix
	}
	name := strcase.ToTitle(property)
	if name == "" || taken(name) {
		name += collisionSuffix
	}
	return name
}
