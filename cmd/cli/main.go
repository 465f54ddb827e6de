package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/app"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/cli"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/config"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/hcl_adapter"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/toml_adapter"
)

// main is the entrypoint for the rezero-summary application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to provide
	// a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loader := config.MultiLoader{hcl_adapter.NewLoader(), toml_adapter.NewLoader()}
	summaryApp := app.NewApp(outW, errW, appConfig, loader)

	return summaryApp.Run(context.Background(), appConfig.Inputs)
}
