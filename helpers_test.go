package schemauml

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func parseDocument(t *testing.T, src string) *Document {
	t.Helper()
	var doc Document
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	return &doc
}

func compileDocument(t *testing.T, src string) *Graph {
	t.Helper()
	g, err := Compile(map[string]*Document{"api.yaml": parseDocument(t, src)}, CompileOptions{})
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	return g
}

type edge struct {
	From  string
	To    string
	Kind  RelationKind
	Label string
	Src   string
	Dst   string
}

func edges(rels []Relationship) []edge {
	out := make([]edge, 0, len(rels))
	for _, r := range rels {
		out = append(out, edge{
			From:  r.Source.Name,
			To:    r.Target.Name,
			Kind:  r.Kind,
			Label: r.Label,
			Src:   r.MultiplicitySource,
			Dst:   r.MultiplicityTarget,
		})
	}
	return out
}

func agg(from, to, label, dst string) edge {
	return edge{From: from, To: to, Kind: RelationAggregation, Label: label, Src: MultiplicityOne, Dst: dst}
}

func gen(child, parent string) edge {
	return edge{From: child, To: parent, Kind: RelationGeneralization}
}

func classNames(g *Graph) []string {
	names := make([]string, 0, len(g.Classes))
	for _, c := range g.Classes {
		names = append(names, c.Name)
	}
	return names
}
