// Package dimension holds the typed stages of a summary pipeline.
//
// A value moving through a pipeline has one of three shapes: a record, a list
// of records, or a string. Each Unit declares the shape it takes and the shape
// it produces, and CheckChain rejects a sequence of units whose shapes do not
// line up before any of them runs. Units are built from configuration by
// Builder, which maps a FunctionType to a canned expression over the shaping
// functions, and are immutable afterwards.
package dimension
