package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/config"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctxlog"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/http_client"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/shaping"
)

// loadRelations reads every configured relation table, from its file or its
// URL, into a static relationInfo strategy.
func loadRelations(ctx context.Context, defs []*config.RelationDefinition) (*shaping.StaticRelations, error) {
	logger := ctxlog.FromContext(ctx)
	relations := shaping.NewStaticRelations()
	clients := make(map[time.Duration]*http.Client)
	defer func() {
		for _, c := range clients {
			c.CloseIdleConnections()
		}
	}()

	for _, def := range defs {
		var (
			rows   *jsonval.List
			err    error
			origin = def.File
		)
		if def.URL != "" {
			origin = def.URL
			rows, err = fetchList(ctx, clients, def)
		} else {
			rows, err = readList(def.File)
		}
		if err != nil {
			return nil, fmt.Errorf("relation '%s': %w", def.Resource, err)
		}
		if err := relations.Add(def.Resource, def.KeyField, def.IDField, rows); err != nil {
			return nil, fmt.Errorf("relation '%s': %w", def.Resource, err)
		}
		logger.Debug("Relation table loaded.", "resource", def.Resource, "rows", rows.Len(), "from", origin)
	}
	return relations, nil
}

// fetchList downloads a relation table. Clients are shared between relations
// with the same timeout.
func fetchList(ctx context.Context, clients map[time.Duration]*http.Client, def *config.RelationDefinition) (*jsonval.List, error) {
	var timeout time.Duration
	if def.Timeout != "" {
		var err error
		if timeout, err = time.ParseDuration(def.Timeout); err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", def.Timeout, err)
		}
	}
	client, ok := clients[timeout]
	if !ok {
		client = http_client.NewClient(timeout)
		clients[timeout] = client
	}

	body, err := http_client.Fetch(ctx, client, def.URL)
	if err != nil {
		return nil, err
	}
	list, err := jsonval.DecodeList(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", def.URL, err)
	}
	return list, nil
}

// readList decodes a JSON or YAML file holding a record list.
func readList(path string) (*jsonval.List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	list, err := jsonval.DecodeList(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return list, nil
}
