package schemauml

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDedupeGeneralizations(t *testing.T) {
	t.Parallel()
	owner := &Class{Name: "Owner"}
	spec := &Class{Name: "Spec", Kind: KindAbstract}
	car := &Class{Name: "SpecCar"}
	boat := &Class{Name: "SpecBoat"}

	input := []Relationship{
		{Source: owner, Target: spec, Kind: RelationAggregation, Label: "vehicle", MultiplicitySource: "1", MultiplicityTarget: "1"},
		{Source: car, Target: spec, Kind: RelationGeneralization},
		{Source: boat, Target: spec, Kind: RelationGeneralization},
		{Source: owner, Target: spec, Kind: RelationAggregation, Label: "vehicle", MultiplicitySource: "1", MultiplicityTarget: "1"},
		{Source: boat, Target: spec, Kind: RelationGeneralization},
		{Source: spec, Target: boat, Kind: RelationGeneralization},
	}
	want := []edge{
		agg("Owner", "Spec", "vehicle", "1"),
		gen("SpecCar", "Spec"),
		gen("SpecBoat", "Spec"),
		agg("Owner", "Spec", "vehicle", "1"),
		gen("Spec", "SpecBoat"),
	}

	once := dedupeGeneralizations(input)
	if diff := cmp.Diff(want, edges(once)); diff != "" {
		t.Fatalf("dedupe mismatch (-want +got):\n%s", diff)
	}

	twice := dedupeGeneralizations(once)
	if diff := cmp.Diff(edges(once), edges(twice)); diff != "" {
		t.Fatalf("dedupe is not idempotent (-once +twice):\n%s", diff)
	}
}
