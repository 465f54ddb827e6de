package integration_tests

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/app"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/testutil"
)

const tripsJSON = `[
  {"line": "1", "delay": 3},
  {"line": "2", "delay": 0},
  {"line": "1", "delay": 5}
]`

// TestSummaries_ClassifiedReport validates a report built from a constant
// unit and a classify / classifiedSummary / join pipeline.
func TestSummaries_ClassifiedReport(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	configHCL := `
		summary "title" {
			stage {
				text = "Delays: "
			}
		}

		summary "by_line" {
			stage {
				type = "LIST2ENTITY_CLASSIFY"
				args = ["line"]
			}
			stage {
				type = "ENTITY2LIST_CLASSIFIED_SUMMARY"
				args = [
					"line _%KEY%_ #{sumByField(list, aviatorArgs)}# min in #{classifiedSize(list, aviatorArgs)}# trips",
					"delay",
					"",
				]
			}
			stage {
				type = "LIST2STRING_JOIN"
				args = ["; "]
			}
		}
	`
	files := map[string]string{
		"config/main.hcl": configHCL,
		"trips.json":      tripsJSON,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{
		ConfigPaths: []string{"config"},
		Inputs:      []string{"trips.json"},
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	expected := "== " + filepath.Join(result.Dir, "trips.json") + " ==\n" +
		"Delays: line 1 8 min in 2 trips; line 2 0 min in 1 trips\n"
	assert.Equal(t, expected, result.Output)
	testutil.AssertLogged(t, result, "Summary run finished.", "run_id=")
}

// TestSummaries_YAMLInputAndSorting validates that YAML inputs are accepted
// and that a record pipeline sorts, renders and joins them.
func TestSummaries_YAMLInputAndSorting(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Field spans are escaped in HCL strings so that HCL does not interpolate them.
	configHCL := `
		summary "queue" {
			stage {
				type = "LISTADVANCED_FIELDSORT"
				args = ["rank"]
			}
			stage {
				type = "LISTADVANCED_EXTRACTOR"
				args = ["$${rank}.$${name}"]
			}
			stage {
				type = "LIST2STRING_JOIN"
				args = [" "]
			}
		}
	`
	tripsYAML := `
- name: carol
  rank: 3
- name: ann
  rank: 1
- name: bob
  rank: 2
`
	files := map[string]string{
		"main.hcl":   configHCL,
		"queue.yaml": tripsYAML,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{Inputs: []string{"queue.yaml"}})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "\n1.ann 2.bob 3.carol\n")
}

// TestSummaries_InputsKeepOrder validates that reports are written in input
// order even when inputs are processed concurrently.
func TestSummaries_InputsKeepOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	configHCL := `
		summary "total" {
			stage {
				type = "LIST2STRING_SUMMARYBYFIELD"
				args = ["delay"]
			}
		}
	`
	files := map[string]string{
		"main.hcl": configHCL,
		"a.json":   `[{"delay": 1}]`,
		"b.json":   `[{"delay": 2}, {"delay": 0.5}]`,
		"c.json":   `[]`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{
		Inputs:  []string{"a.json", "b.json", "c.json"},
		Workers: 3,
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	expected := "== " + filepath.Join(result.Dir, "a.json") + " ==\n1\n" +
		"== " + filepath.Join(result.Dir, "b.json") + " ==\n2.5\n" +
		"== " + filepath.Join(result.Dir, "c.json") + " ==\n0\n"
	assert.Equal(t, expected, result.Output)
}

// TestSummaries_RenderThroughApp validates rendering a single summary unit
// through the app API.
func TestSummaries_RenderThroughApp(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	configHCL := `
		summary "count" {
			stage {
				type = "LIST2STRING_CLASSIFIED_SIZE"
				args = ["line"]
			}
		}
		summary "total" {
			stage {
				type = "LIST2STRING_SUMMARYBYFIELD"
				args = ["delay"]
			}
		}
	`
	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": configHCL}, app.Config{Summary: "count"})
	require.NoError(t, result.Err)
	require.NotNil(t, result.App)

	// --- Act ---
	out, err := result.App.Render(t.Context(), testutil.Records(t, tripsJSON), "")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "2", out)
	assert.Equal(t, []string{"count"}, result.App.Chain().Names())
}

// TestSummaries_PrintLogsValues validates that print passes values through
// while logging them.
func TestSummaries_PrintLogsValues(t *testing.T) {
	t.Parallel()

	configHCL := `
		summary "sizes" {
			stage {
				type = "LIST2ENTITY_CLASSIFY"
				args = ["line"]
			}
			stage {
				type = "ENTITY2LIST_CLASSIFIED_SUMMARY"
				args = ["_%KEY%_=#{print(classifiedSize(list, aviatorArgs), \"size\")}#", ""]
			}
			stage {
				type = "LIST2STRING_JOIN"
				args = [","]
			}
		}
	`
	files := map[string]string{"main.hcl": configHCL, "trips.json": tripsJSON}

	result := testutil.RunIntegrationTest(t, files, app.Config{Inputs: []string{"trips.json"}})

	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "\n1=2,2=1\n")
	testutil.AssertLogged(t, result, "Printing value.", "label=size", "value=2")
}
