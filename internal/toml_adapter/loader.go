package toml_adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/config"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctxlog"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/fsutil"
)

// Loader is the TOML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new TOML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileRoot struct {
	Engine    *engineTable     `toml:"engine"`
	Summaries []*summaryTable  `toml:"summary"`
	Relations []*relationTable `toml:"relation"`
}

type engineTable struct {
	Functions []string `toml:"functions"`
}

type summaryTable struct {
	Name   string        `toml:"name"`
	Stages []*stageTable `toml:"stage"`
}

type stageTable struct {
	Type string   `toml:"type"`
	Args []string `toml:"args"`
	Text *string  `toml:"text"`
}

type relationTable struct {
	Resource string `toml:"resource"`
	File     string `toml:"file"`
	URL      string `toml:"url"`
	Timeout  string `toml:"timeout"`
	KeyField string `toml:"key_field"`
	IDField  string `toml:"id_field"`
}

// Load reads every `.toml` file under paths into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("TOML loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".toml")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered TOML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		var root fileRoot
		md, err := toml.DecodeFile(file, &root)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML file %s: %w", file, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("failed to decode TOML file %s: unknown keys: %s", file, strings.Join(keys, ", "))
		}

		fileModel, err := translate(file, &root)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(fileModel); err != nil {
			return nil, err
		}
	}

	logger.Debug("TOML loading complete.", "functions", len(model.Functions), "summaries", len(model.Summaries), "relations", len(model.Relations))
	return model, nil
}

func translate(file string, root *fileRoot) (*config.Model, error) {
	model := &config.Model{}
	if root.Engine != nil {
		model.Functions = append(model.Functions, root.Engine.Functions...)
	}
	for i, s := range root.Summaries {
		if s.Name == "" {
			return nil, fmt.Errorf("in %s, summary %d has no name", file, i)
		}
		def := &config.SummaryDefinition{Name: s.Name, Source: file}
		for j, st := range s.Stages {
			stage := &config.StageDefinition{Type: st.Type, Args: st.Args, Text: st.Text}
			if err := stage.Normalize(); err != nil {
				return nil, fmt.Errorf("in summary '%s' (%s), stage %d: %w", s.Name, file, j, err)
			}
			def.Stages = append(def.Stages, stage)
		}
		if err := model.Merge(&config.Model{Summaries: []*config.SummaryDefinition{def}}); err != nil {
			return nil, err
		}
	}
	for i, r := range root.Relations {
		def := &config.RelationDefinition{
			Resource: r.Resource,
			File:     fsutil.ResolveRelative(file, r.File),
			URL:      r.URL,
			Timeout:  r.Timeout,
			KeyField: r.KeyField,
			IDField:  r.IDField,
			Source:   file,
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("in %s, relation %d: %w", file, i, err)
		}
		if err := model.Merge(&config.Model{Relations: []*config.RelationDefinition{def}}); err != nil {
			return nil, err
		}
	}
	return model, nil
}
