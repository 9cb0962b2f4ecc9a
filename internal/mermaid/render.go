package mermaid

import (
	"fmt"
	"io"
	"strings"

	"github.com/goatx/schemauml"
)

// RenderClassDiagram writes the graph as a Mermaid `classDiagram`.
//
// Enum classes are not declared; their values only show up as attributes of
// the classes referencing them. Plain classes without attributes are left to
// be declared implicitly by their relationships. Abstract classes are declared
// with an <<abstract>> annotation.
//
// Example:
//
//	graph, err := schemauml.Compile(docs, schemauml.CompileOptions{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := mermaid.RenderClassDiagram(graph, os.Stdout); err != nil {
//		log.Fatal(err)
//	}
func RenderClassDiagram(graph *schemauml.Graph, writer io.Writer) error {
	var sb strings.Builder
	sb.WriteString("classDiagram\n")

	for _, c := range graph.Classes {
		switch {
		case c.Kind == schemauml.KindEnum:
			continue
		case len(c.Attributes) > 0:
			writeClass(&sb, c)
		case c.Kind == schemauml.KindAbstract:
			writeIndent(&sb, 1)
			sb.WriteString(fmt.Sprintf("class %s\n", c.Name))
			writeAnnotation(&sb, c)
			sb.WriteString("\n")
		}
	}

	for _, r := range graph.Relationships {
		writeRelationship(&sb, r)
	}

	_, err := writer.Write([]byte(sb.String()))

	return err
}

func writeClass(sb *strings.Builder, c *schemauml.Class) {
	writeIndent(sb, 1)
	sb.WriteString(fmt.Sprintf("class %s {\n", c.Name))
	for _, a := range c.Attributes {
		attrType := a.Type
		if a.Format != "" {
			attrType += ":" + a.Format
		}
		writeIndent(sb, 2)
		sb.WriteString(fmt.Sprintf("%s%s : %s\n", visibility(a), a.Name, attrType))
	}
	writeIndent(sb, 1)
	sb.WriteString("}\n")
	writeAnnotation(sb, c)
	sb.WriteString("\n")
}

func writeAnnotation(sb *strings.Builder, c *schemauml.Class) {
	if c.Kind != schemauml.KindAbstract {
		return
	}
	writeIndent(sb, 1)
	sb.WriteString(fmt.Sprintf("%s : <<abstract>>\n", c.Name))
}

func writeRelationship(sb *strings.Builder, r schemauml.Relationship) {
	source, target := r.Source.Name, r.Target.Name

	writeIndent(sb, 1)
	switch r.Kind {
	case schemauml.RelationGeneralization:
		sb.WriteString(fmt.Sprintf("%s <|-- %s\n", target, source))
	case schemauml.RelationAggregation:
		writeEdge(sb, r, "o--")
	case schemauml.RelationComposition:
		writeEdge(sb, r, "*--")
	default:
		sb.WriteString(fmt.Sprintf("%s --> %s\n", source, target))
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

func visibility(a schemauml.Attribute) string {
	if a.Required {
		return "+"
	}
	return "-"
}

func writeIndent(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("    ")
	}
}
