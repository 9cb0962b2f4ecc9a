package test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/goatx/schemauml"
	"github.com/goatx/schemauml/internal/load"
)

func FixtureDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(filename), "..", "..", "testdata")
}

// SchemaDir is the directory of the fixture schema documents.
func SchemaDir(t *testing.T) string {
	t.Helper()
	return filepath.Join(FixtureDir(t), "schemas")
}

func ReadGolden(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(FixtureDir(t), name)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}
	return string(b)
}

// CompileFixture loads and compiles the fixture schema documents.
func CompileFixture(t *testing.T) *schemauml.Graph {
	t.Helper()
	docs, err := load.Load(SchemaDir(t), load.Options{})
	if err != nil {
		t.Fatalf("failed to load fixture schemas: %v", err)
	}
	graph, err := schemauml.Compile(docs, schemauml.CompileOptions{})
	if err != nil {
		t.Fatalf("failed to compile fixture schemas: %v", err)
	}
	return graph
}
