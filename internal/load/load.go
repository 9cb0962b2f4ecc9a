package load

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar"
	"gopkg.in/yaml.v3"

	"github.com/goatx/schemauml"
)

var ErrNoDocuments = errors.New("no schema documents found")

// DefaultInclude matches every YAML and JSON file below the root.
var DefaultInclude = []string{"**/*.yaml", "**/*.yml", "**/*.json"}

type Options struct {
	// Include and Exclude are doublestar patterns matched against slash
	// separated paths relative to the root. Empty Include means DefaultInclude.
	Include []string
	Exclude []string
	Logger  *slog.Logger
}

// Load walks root and parses every matching document that declares
// components.schemas. Documents are keyed by their slash separated path
// relative to root.
func Load(root string, opts Options) (map[string]*schemauml.Document, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema path %s: %w", root, err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	include := opts.Include
	if len(include) == 0 {
		include = DefaultInclude
	}

	docs := make(map[string]*schemauml.Document)
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		ok, err := Match(rel, include, opts.Exclude)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		doc, err := parseFile(path)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", rel, err)
		}
		if !doc.HasSchemas() {
			logger.Debug("skipping document without components.schemas", "path", rel)
			return nil
		}
		logger.Debug("loaded document", "path", rel, "schemas", len(doc.Components.Schemas))
		docs[rel] = doc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load schemas in %s: %w", abs, err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocuments, abs)
	}
	return docs, nil
}

// Match reports whether a slash separated relative path is selected by the
// include patterns and not rejected by the exclude patterns.
func Match(rel string, include, exclude []string) (bool, error) {
	matched, err := matchAny(include, rel)
	if err != nil || !matched {
		return false, err
	}
	excluded, err := matchAny(exclude, rel)
	if err != nil {
		return false, err
	}
	return !excluded, nil
}

func matchAny(patterns []string, rel string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func parseFile(path string) (*schemauml.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := &schemauml.Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
