package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/daogen/internal/input"
)

func TestNewResolver_Strategies(t *testing.T) {
	p := input.New(strings.NewReader(""), &bytes.Buffer{})

	tests := []struct {
		name        string
		force       bool
		skip        bool
		interactive bool
		prompter    *input.Prompter
		want        ConflictStrategy
	}{
		{"force", true, false, true, p, ForceStrategy{}},
		{"skip", false, true, true, p, SkipStrategy{}},
		{"interactive", false, false, true, p, InteractiveStrategy{Prompter: p}},
		{"no terminal falls back to skip", false, false, false, p, SkipStrategy{}},
		{"no prompter falls back to skip", false, false, true, nil, SkipStrategy{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewResolver(tt.force, tt.skip, tt.interactive, tt.prompter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Strategy())
		})
	}
}

func TestNewResolver_ForceAndSkip(t *testing.T) {
	r, err := NewResolver(true, true, true, nil)

	assert.Nil(t, r)
	assert.ErrorContains(t, err, "--force cannot be combined with --skip")
}

func TestResolver_Resolve(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "dao-repo-gen.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0644))
	missing := filepath.Join(dir, "other.yaml")

	tests := []struct {
		name   string
		force  bool
		skip   bool
		answer string
		path   string
		want   Resolution
	}{
		{"free path", false, true, "", missing, Write},
		{"force", true, false, "", existing, Overwrite},
		{"skip", false, true, "", existing, Skip},
		{"user says yes", false, false, "y\n", existing, Overwrite},
		{"user says no", false, false, "n\n", existing, Skip},
		{"user presses enter", false, false, "\n", existing, Skip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			p := input.New(strings.NewReader(tt.answer), out)
			r, err := NewResolver(tt.force, tt.skip, true, p)
			require.NoError(t, err)

			got, err := r.Resolve(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			if tt.answer != "" {
				assert.Contains(t, out.String(), "exists. Overwrite?")
			}
		})
	}
}

func TestResolution_String(t *testing.T) {
	assert.Equal(t, "write", Write.String())
	assert.Equal(t, "overwrite", Overwrite.String())
	assert.Equal(t, "skip", Skip.String())
	assert.Equal(t, "Resolution(9)", Resolution(9).String())
}
