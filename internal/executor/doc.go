// Package executor runs summary pipelines.
//
// Stream folds one chain of dimension units over a single record or list and
// insists that the result is a string. Summary runs each unit of a summary
// chain through a Stream against the same source list and concatenates the
// outputs. Summary is the only place a failure is downgraded: the failing unit
// is logged and the report produced so far is returned.
//
// Neither type holds per-run state, so one instance serves concurrent runs.
package executor
