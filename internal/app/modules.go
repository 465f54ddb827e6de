package app

import (
	"log/slog"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/env_vars"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/print"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/shaping"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/stdfuncs"
)

// coreModules is the definitive list of all modules that are compiled into
// the binary. relations backs the relationInfo function; print logs to
// logger.
func coreModules(relations shaping.RelationStrategy, logger *slog.Logger) []registry.Module {
	return []registry.Module{
		&shaping.Module{Relations: relations},
		&stdfuncs.Module{},
		&env_vars.Module{},
		&print.Module{Logger: logger},
	}
}
