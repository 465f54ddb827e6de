// Package inmemorystore provides an ephemeral, thread-safe, in-memory
// key/value store used to memoize work that is safe to share between
// concurrent callers, such as parsed expressions.
//
// # Concurrency Model
//
// The store is backed by sync.Map. The workload it serves is read-heavy with a
// key space that settles quickly: every distinct expression is parsed once and
// then only read. sync.Map serves this pattern without a global lock.
//
// Two goroutines computing the same missing key at the same time may both run
// the compute function; the first stored value wins and is returned to both.
// Compute functions must therefore be pure.
package inmemorystore
