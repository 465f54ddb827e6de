// Package app contains the core application logic. It wires the loaded
// configuration into a function registry, an evaluation engine and a summary
// chain, and renders reports for input documents, decoupled from any
// specific entrypoint like a CLI.
package app
