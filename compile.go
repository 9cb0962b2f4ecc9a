package schemauml

import (
	"log/slog"
	"maps"
	"slices"
)

// DefaultEnumPattern marks a referenced schema name as an enumeration.
const DefaultEnumPattern = "Enum"

type CompileOptions struct {
	// EnumPattern is the substring that makes a referenced schema an inlined
	// enum attribute. Empty means DefaultEnumPattern.
	EnumPattern string
	// DisableEnumPattern turns off name matching, so only references to
	// schemas declaring enum are inlined.
	DisableEnumPattern bool
	// Logger receives notices about constructs that are skipped. Nil discards them.
	Logger *slog.Logger
}

// Compile turns the schema definitions of all documents into a class graph.
//
// The first pass creates one class per schema definition, so every $ref can be
// resolved in the second pass, which infers relationships and synthesizes
// abstract classes for oneOf/anyOf groups. Documents are visited in sorted key
// order and schemas in declaration order, so output is reproducible.
//
// A $ref to an undefined schema aborts the run with a *MissingReferenceError.
func Compile(docs map[string]*Document, opts CompileOptions) (*Graph, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	enumPattern := opts.EnumPattern
	switch {
	case opts.DisableEnumPattern:
		enumPattern = ""
	case enumPattern == "":
		enumPattern = DefaultEnumPattern
	}

	reg := newRegistry(logger)
	for _, id := range slices.Sorted(maps.Keys(docs)) {
		doc := docs[id]
		if !doc.HasSchemas() {
			logger.Debug("skipping document without components.schemas", "document", id)
			continue
		}
		for _, s := range doc.Components.Schemas {
			reg.register(id, s.Name, s.Schema)
		}
	}

	res := newResolver(reg, enumPattern, logger)
	for _, name := range reg.definitions() {
		if err := res.resolveSchema(name, reg.schemas[name]); err != nil {
			return nil, err
		}
	}

	return &Graph{
		Classes:       reg.list(),
		Relationships: dedupeGeneralizations(res.relationships),
		index:         reg.classes,
	}, nil
}
