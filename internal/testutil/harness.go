package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/app"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/config"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/hcl_adapter"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/toml_adapter"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteFiles writes files, keyed by slash-separated relative path, under dir.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		filePath := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Dir       string
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg, modules...)
}

// RunIntegrationTestWithContext writes files into a temporary directory,
// builds the app from it and runs it over cfg.Inputs. Relative config and
// input paths are resolved against that directory; with no config paths the
// whole directory is loaded. A startup panic is returned as Err.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	WriteFiles(t, tmpDir, files)

	if len(cfg.ConfigPaths) == 0 {
		cfg.ConfigPaths = []string{tmpDir}
	}
	cfg.ConfigPaths = inDir(tmpDir, cfg.ConfigPaths)
	cfg.Inputs = inDir(tmpDir, cfg.Inputs)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.Workers == 0 {
		cfg.Workers = 4
	}

	out, logBuffer := &SafeBuffer{}, &SafeBuffer{}
	loader := config.MultiLoader{hcl_adapter.NewLoader(), toml_adapter.NewLoader()}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(out, logBuffer, &cfg, loader, modules...)
	}()

	result := &HarnessResult{Dir: tmpDir, App: testApp}
	if panicErr != nil {
		result.Err = fmt.Errorf("application startup panicked | %v", panicErr)
	} else if len(cfg.Inputs) > 0 {
		result.Err = testApp.Run(ctx, cfg.Inputs)
	}

	if os.Getenv("REZERO_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}
	result.Output = out.String()
	result.LogOutput = logBuffer.String()
	return result
}

func inDir(dir string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
		} else {
			out[i] = filepath.Join(dir, filepath.FromSlash(p))
		}
	}
	return out
}
