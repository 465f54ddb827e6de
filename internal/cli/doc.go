// Package cli turns command-line arguments into an app.Config. It owns the
// flag set, the usage text and the exit codes reported through ExitError;
// everything after parsing belongs to package app.
package cli
