// Package shaping provides the functions templates and dimension chains use
// to reshape records and lists: classify, fieldEqual, fieldSort, extractor,
// sumByField, join, classifiedSize, percent, relationInfo, subList and
// classifiedSummary.
//
// Every function is also exported as a plain Go function over the jsonval
// data model, so callers that do not go through the evaluation engine can use
// them directly. Field arguments are resolved the same way template field
// spans are, which means `resource@a.b` relation paths work wherever a field
// name is accepted.
//
// Functions never modify their inputs. fieldSort and relationInfo return new
// lists and records, so one decoded input can be shared by any number of
// concurrent summary runs.
package shaping
