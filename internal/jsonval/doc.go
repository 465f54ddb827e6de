// Package jsonval is the JSON value model the engine reads and builds.
//
// A Structured Record is a *Record: an object that remembers key insertion
// order, which matters wherever output order follows input order (classify
// buckets, classified summaries, re-encoded JSON). A Record List is a *List.
// Scalars are plain Go values: string, bool, int64, float64 and nil.
//
// Decoding keeps key order and the integer/float distinction of the source.
// JSON documents are streamed token by token; anything else is read as YAML
// through gopkg.in/yaml.v3 nodes.
package jsonval
