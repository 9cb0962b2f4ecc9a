package plantuml

import (
	"fmt"
	"io"
	"strings"

	"github.com/goatx/schemauml"
)

// Render writes the graph as a PlantUML class diagram.
// Enum classes are not declared; abstract classes carry the <<abstract>> stereotype.
func Render(graph *schemauml.Graph, writer io.Writer) error {
	var sb strings.Builder
	sb.WriteString("@startuml\n")

	for _, c := range graph.Classes {
		if c.Kind == schemauml.KindEnum {
			continue
		}
		writeClass(&sb, c)
	}

	if len(graph.Relationships) > 0 {
		sb.WriteString("\n")
	}
	for _, r := range graph.Relationships {
		writeRelationship(&sb, r)
	}

	sb.WriteString("@enduml\n")

	_, err := writer.Write([]byte(sb.String()))
	return err
}

func writeClass(sb *strings.Builder, c *schemauml.Class) {
	if c.Kind == schemauml.KindAbstract {
		sb.WriteString(fmt.Sprintf("abstract class %s <<abstract>>\n", c.Name))
		return
	}
	if len(c.Attributes) == 0 {
		sb.WriteString(fmt.Sprintf("class %s\n", c.Name))
		return
	}

	sb.WriteString(fmt.Sprintf("class %s {\n", c.Name))
	for _, a := range c.Attributes {
		sb.WriteString(fmt.Sprintf("    %s%s : %s\n", visibility(a), a.Name, a.Type))
	}
	sb.WriteString("}\n")
}

// visibility marks required attributes as protected (#) and optional ones as
// private (-). Inlined enum attributes are public.
func visibility(a schemauml.Attribute) string {
	switch {
	case a.Ref != "":
		return "+"
	case a.Required:
		return "#"
	default:
		return "-"
	}
}

func writeRelationship(sb *strings.Builder, r schemauml.Relationship) {
	switch r.Kind {
	case schemauml.RelationGeneralization:
		sb.WriteString(fmt.Sprintf("%s <|-- %s\n", r.Target.Name, r.Source.Name))
	case schemauml.RelationAggregation:
		writeEdge(sb, r, "o--")
	case schemauml.RelationComposition:
		writeEdge(sb, r, "*--")
	default:
		writeEdge(sb, r, "-->")
	}
}

func writeEdge(sb *strings.Builder, r schemauml.Relationship, arrow string) {
	sb.WriteString(r.Source.Name)
	if r.MultiplicitySource != "" {
		sb.WriteString(fmt.Sprintf(" \"%s\"", r.MultiplicitySource))
	}
	sb.WriteString(" " + arrow)
	if r.MultiplicityTarget != "" {
		sb.WriteString(fmt.Sprintf(" \"%s\"", r.MultiplicityTarget))
	}
	sb.WriteString(" " + r.Target.Name)
	if r.Label != "" {
		sb.WriteString(" : " + r.Label)
	}
	sb.WriteString("\n")
}
