package config

import (
	"errors"
	"fmt"
	"strings"
)

// OutputStringType is the stage type a text-only stage stands for.
const OutputStringType = "OUTPUT_STRING"

// Model is the unified, format-agnostic representation of the entire
// application configuration.
type Model struct {
	// Functions lists the function names the engine exposes. Empty means
	// every registered function.
	Functions []string
	// Summaries are the summary pipelines, in file order.
	Summaries []*SummaryDefinition
	Relations []*RelationDefinition
}

// SummaryDefinition is the format-agnostic representation of a `summary`
// block: one named pipeline.
type SummaryDefinition struct {
	Name   string
	Source string
	Stages []*StageDefinition
}

// StageDefinition is one pipeline stage. Type is a function type name; Text is
// shorthand for an OUTPUT_STRING stage.
type StageDefinition struct {
	Type string
	Args []string
	Text *string
}

// RelationDefinition names a table of rows relationInfo can attach under
// `<Resource>.relationInfo`. The rows come from File or are fetched from URL.
type RelationDefinition struct {
	Resource string
	File     string
	URL      string
	Timeout  string
	KeyField string
	IDField  string
	Source   string
}

// Validate checks that the relation names its resource and exactly one source
// of rows.
func (r *RelationDefinition) Validate() error {
	if strings.TrimSpace(r.Resource) == "" {
		return errors.New("relation has no resource name")
	}
	if (r.File == "") == (r.URL == "") {
		return fmt.Errorf("relation '%s' must set exactly one of file or url", r.Resource)
	}
	return nil
}

// Normalize resolves the Text shorthand and checks that the stage names a
// type.
func (s *StageDefinition) Normalize() error {
	if s.Text != nil {
		if s.Type != "" && s.Type != OutputStringType {
			return fmt.Errorf("stage sets text together with type %q", s.Type)
		}
		s.Type = OutputStringType
		s.Args = append([]string{*s.Text}, s.Args...)
		s.Text = nil
	}
	if strings.TrimSpace(s.Type) == "" {
		return errors.New("stage has no type")
	}
	return nil
}

// Merge appends other into m. Function names are deduplicated; a summary or
// relation defined twice is an error.
func (m *Model) Merge(other *Model) error {
	if other == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(m.Functions))
	for _, f := range m.Functions {
		seen[f] = struct{}{}
	}
	for _, f := range other.Functions {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		m.Functions = append(m.Functions, f)
	}

	for _, s := range other.Summaries {
		if prev := m.Summary(s.Name); prev != nil {
			return fmt.Errorf("summary '%s' is defined in both %s and %s", s.Name, prev.Source, s.Source)
		}
		m.Summaries = append(m.Summaries, s)
	}
	for _, r := range other.Relations {
		for _, prev := range m.Relations {
			if prev.Resource == r.Resource {
				return fmt.Errorf("relation '%s' is defined in both %s and %s", r.Resource, prev.Source, r.Source)
			}
		}
		m.Relations = append(m.Relations, r)
	}
	return nil
}

// Summary returns the summary called name, or nil.
func (m *Model) Summary(name string) *SummaryDefinition {
	for _, s := range m.Summaries {
		if s.Name == name {
			return s
		}
	}
	return nil
}
