// This file translates the decoded HCL blocks into the format-agnostic
// configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/config"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctxlog"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/fsutil"
)

func (l *Loader) translateFile(ctx context.Context, file string, root *fileRoot) (*config.Model, error) {
	if len(root.Engines) > 1 {
		return nil, fmt.Errorf("file %s declares %d engine blocks, at most one is allowed", file, len(root.Engines))
	}

	model := &config.Model{}
	if len(root.Engines) == 1 {
		model.Functions = append(model.Functions, root.Engines[0].Functions...)
	}
	for _, s := range root.Summaries {
		def, err := l.translateSummary(ctx, file, s)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(&config.Model{Summaries: []*config.SummaryDefinition{def}}); err != nil {
			return nil, err
		}
	}
	for _, r := range root.Relations {
		def := translateRelation(file, r)
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
		if err := model.Merge(&config.Model{Relations: []*config.RelationDefinition{def}}); err != nil {
			return nil, err
		}
	}
	return model, nil
}

// translateSummary converts the HCL-specific summary schema into the agnostic model.
func (l *Loader) translateSummary(ctx context.Context, file string, s *Summary) (*config.SummaryDefinition, error) {
	logger := ctxlog.FromContext(ctx).With("summary", s.Name, "file", file)
	logger.Debug("Translating HCL summary to internal config model.", "stages", len(s.Stages))

	def := &config.SummaryDefinition{Name: s.Name, Source: file}
	for i, st := range s.Stages {
		stage := &config.StageDefinition{Type: st.Type, Args: st.Args, Text: st.Text}
		if err := stage.Normalize(); err != nil {
			return nil, fmt.Errorf("in summary '%s' (%s), stage %d: %w", s.Name, file, i, err)
		}
		def.Stages = append(def.Stages, stage)
	}
	return def, nil
}

// translateRelation resolves the relation file against the config file's directory.
func translateRelation(file string, r *Relation) *config.RelationDefinition {
	return &config.RelationDefinition{
		Resource: r.Resource,
		File:     fsutil.ResolveRelative(file, r.File),
		URL:      r.URL,
		Timeout:  r.Timeout,
		KeyField: r.KeyField,
		IDField:  r.IDField,
		Source:   file,
	}
}
