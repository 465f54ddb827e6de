package toml_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "summary.toml", `
[engine]
functions = ["classify", "join"]

[[summary]]
name = "groups"

  [[summary.stage]]
  text = "Groups: "

  [[summary.stage]]
  type = "LIST2ENTITY_CLASSIFY"
  args = ["g"]

[[relation]]
resource = "stop"
file = "stops.yaml"
id_field = "code"
`)
	writeFile(t, dir, "other.hcl", `summary "ignored" {}`)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	expected := &config.Model{
		Functions: []string{"classify", "join"},
		Summaries: []*config.SummaryDefinition{{
			Name:   "groups",
			Source: file,
			Stages: []*config.StageDefinition{
				{Type: config.OutputStringType, Args: []string{"Groups: "}},
				{Type: "LIST2ENTITY_CLASSIFY", Args: []string{"g"}},
			},
		}},
		Relations: []*config.RelationDefinition{{
			Resource: "stop",
			File:     filepath.Join(dir, "stops.yaml"),
			IDField:  "code",
			Source:   file,
		}},
	}
	if diff := cmp.Diff(expected, model); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"invalid syntax", `[[summary`, "failed to parse TOML file"},
		{"unknown key", "[[summary]]\nname = \"x\"\ncolour = \"red\"\n", "unknown keys: summary.colour"},
		{"summary without name", "[[summary]]\n[[summary.stage]]\ntext = \"a\"\n", "summary 0 has no name"},
		{"stage with text and type", "[[summary]]\nname = \"x\"\n[[summary.stage]]\ntype = \"LIST2STRING_JOIN\"\ntext = \"a\"\n", "in summary 'x'"},
		{"relation without source", "[[relation]]\nresource = \"stop\"\n", "must set exactly one of file or url"},
		{"relation without resource", "[[relation]]\nfile = \"stops.json\"\n", "relation 0: relation has no resource name"},
		{"duplicate summary", "[[summary]]\nname = \"x\"\n[[summary]]\nname = \"x\"\n", "summary 'x' is defined in both"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "c.toml", tc.content)
			_, err := NewLoader().Load(context.Background(), dir)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
