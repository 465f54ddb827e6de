package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/app"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected *app.Config
	}{
		{
			name: "long flags",
			args: []string{"-config", "conf/a.hcl, conf/b.toml", "-input", "a.json,b.yaml", "-summary", "totals", "-workers", "2"},
			expected: &app.Config{
				ConfigPaths: []string{"conf/a.hcl", "conf/b.toml"},
				Inputs:      []string{"a.json", "b.yaml"},
				Summary:     "totals",
				LogFormat:   "text",
				LogLevel:    "info",
				Workers:     2,
			},
		},
		{
			name: "shorthand flags and positional inputs",
			args: []string{"-c", "conf", "-i", "a.json", "-log-format", "JSON", "-log-level", "Debug", "b.json", "c.json"},
			expected: &app.Config{
				ConfigPaths: []string{"conf"},
				Inputs:      []string{"a.json", "b.json", "c.json"},
				LogFormat:   "json",
				LogLevel:    "debug",
				Workers:     4,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, exit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, exit)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestParse_Exits(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}, {"in.json"}} {
		var out bytes.Buffer
		cfg, exit, err := Parse(args, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		message string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
		{"no inputs", []string{"-config", "conf"}, "at least one input file is required"},
		{"bad log format", []string{"-config", "conf", "-log-format", "xml", "a.json"}, "invalid log-format"},
		{"bad log level", []string{"-config", "conf", "-log-level", "loud", "a.json"}, "invalid log-level"},
		{"no workers", []string{"-config", "conf", "-workers", "0", "a.json"}, "Workers must be at least 1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, exit, err := Parse(tc.args, &bytes.Buffer{})
			assert.False(t, exit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.message)
		})
	}
}
