package schemauml

type edgeKey struct {
	source string
	target string
}

// dedupeGeneralizations drops generalization edges whose (source, target)
// pair was already seen. Other kinds are kept as they are.
func dedupeGeneralizations(relationships []Relationship) []Relationship {
	seen := make(map[edgeKey]bool)
	out := make([]Relationship, 0, len(relationships))
	for _, rel := range relationships {
		if rel.Kind == RelationGeneralization {
			key := edgeKey{source: rel.Source.Name, target: rel.Target.Name}
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		out = append(out, rel)
	}
	return out
}
