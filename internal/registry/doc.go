// Package registry is the function registration boundary.
//
// Modules register a Factory for every function name they provide. At
// startup the engine resolves the configured list of names against the
// registry, calls each factory once with itself as the Env, and keeps the
// resulting functions in a table that is never mutated again. Names without a
// factory are reported by ValidateNames and skipped.
//
// Registration happens once, before any evaluation, so the registry needs no
// locking. Registering the same name twice is a programmer error and panics.
package registry
