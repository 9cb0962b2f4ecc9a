package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    *Config
	}{
		{
			name: "lists",
			content: `include:
  - "api/**/*.yaml"
  - "api/**/*.json"
exclude:
  - "**/legacy/**"
enumPattern: Kind
output: docs/model.puml
`,
			want: &Config{
				Include:     StringList{"api/**/*.yaml", "api/**/*.json"},
				Exclude:     StringList{"**/legacy/**"},
				EnumPattern: "Kind",
				Output:      "docs/model.puml",
			},
		},
		{
			name:    "scalar include",
			content: "include: \"**/*.yaml\"\n",
			want:    &Config{Include: StringList{"**/*.yaml"}},
		},
		{
			name:    "empty",
			content: "",
			want:    &Config{},
		},
	}

	for _, tt := range tests {

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), DefaultFilename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			got, err := Load(path, true)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), DefaultFilename)

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	_, err = Load(path, true)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte("include:\n  key: value\n"), 0o600))

	_, err := Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string or list")
}
