/*
Copyright © 2025 Honoka Toda, Shinya Ishitobi

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goatx/schemauml"
	"github.com/goatx/schemauml/internal/config"
	"github.com/goatx/schemauml/internal/load"
	"github.com/goatx/schemauml/internal/mermaid"
	"github.com/goatx/schemauml/internal/plantuml"
	"github.com/goatx/schemauml/internal/watch"
	"github.com/spf13/cobra"
)

type renderFunc func(*schemauml.Graph, io.Writer) error

// renderCmd groups the diagram renderers
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a class diagram from OpenAPI schemas",
}

// plantumlCmd represents the plantuml command
var plantumlCmd = &cobra.Command{
	Use:   "plantuml <schema-dir>",
	Short: "Generate a PlantUML class diagram",
	Long: `Load every OpenAPI document below the schema directory and emit a PlantUML class diagram.
Write the result to stdout or to a file via -o/--output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, args[0], plantuml.Render)
	},
}

// mermaidCmd represents the mermaid command
var mermaidCmd = &cobra.Command{
	Use:   "mermaid <schema-dir>",
	Short: "Generate a Mermaid class diagram",
	Long: `Load every OpenAPI document below the schema directory and emit a Mermaid classDiagram definition.
Write the result to stdout or to a file via -o/--output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, args[0], mermaid.RenderClassDiagram)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.AddCommand(plantumlCmd)
	renderCmd.AddCommand(mermaidCmd)

	flags := renderCmd.PersistentFlags()
	flags.StringP("output", "o", "", "write the generated diagram to a file")
	flags.StringSlice("include", nil, "doublestar patterns of documents to load (default **/*.yaml, **/*.yml, **/*.json)")
	flags.StringSlice("exclude", nil, "doublestar patterns of documents to skip")
	flags.String("enum-pattern", schemauml.DefaultEnumPattern, "referenced schema names containing this are inlined as enum attributes; an empty value inlines only schemas declaring enum")
	flags.String("config", "", "config file (default <schema-dir>/"+config.DefaultFilename+")")
	flags.BoolP("watch", "w", false, "re-render whenever a schema document changes")
}

type renderSettings struct {
	include     []string
	exclude     []string
	enumPattern string
	noEnumName  bool
	output      string
	watch       bool
}

// resolveSettings merges the config file with the flags. Flags set on the
// command line take precedence.
func resolveSettings(cmd *cobra.Command, dir string) (*renderSettings, error) {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	required := configPath != ""
	if !required {
		configPath = filepath.Join(dir, config.DefaultFilename)
	}
	cfg, err := config.Load(configPath, required)
	if err != nil {
		return nil, err
	}

	s := &renderSettings{
		include:     cfg.Include,
		exclude:     cfg.Exclude,
		enumPattern: cfg.EnumPattern,
		output:      cfg.Output,
	}
	if flags.Changed("include") || len(s.include) == 0 {
		if s.include, err = flags.GetStringSlice("include"); err != nil {
			return nil, err
		}
	}
	if len(s.include) == 0 {
		s.include = load.DefaultInclude
	}
	if flags.Changed("exclude") {
		if s.exclude, err = flags.GetStringSlice("exclude"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("enum-pattern") || s.enumPattern == "" {
		if s.enumPattern, err = flags.GetString("enum-pattern"); err != nil {
			return nil, err
		}
		s.noEnumName = s.enumPattern == ""
	}
	if flags.Changed("output") || s.output == "" {
		if s.output, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}
	if s.watch, err = flags.GetBool("watch"); err != nil {
		return nil, err
	}
	return s, nil
}

func runRender(cmd *cobra.Command, dir string, render renderFunc) error {
	settings, err := resolveSettings(cmd, dir)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)

	renderOnce := func() error {
		return renderDiagram(cmd, dir, settings, logger, render)
	}
	if !settings.watch {
		return renderOnce()
	}

	return watch.Run(cmd.Context(), dir, watch.Options{
		Match: func(rel string) bool {
			ok, err := load.Match(rel, settings.include, settings.exclude)
			return err == nil && ok
		},
		Logger: logger,
	}, func() error {
		if err := renderOnce(); err != nil {
			return err
		}
		logger.Info("diagram rendered", "output", settings.output)
		return nil
	})
}

func renderDiagram(cmd *cobra.Command, dir string, settings *renderSettings, logger *slog.Logger, render renderFunc) error {
	docs, err := load.Load(dir, load.Options{
		Include: settings.include,
		Exclude: settings.exclude,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	graph, err := schemauml.Compile(docs, schemauml.CompileOptions{
		EnumPattern:        settings.enumPattern,
		DisableEnumPattern: settings.noEnumName,
		Logger:             logger,
	})
	if err != nil {
		return err
	}

	writer := cmd.OutOrStdout()

	if settings.output != "" {
		file, err := os.Create(settings.output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	return render(graph, writer)
}
