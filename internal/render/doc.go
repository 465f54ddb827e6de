// Package render resolves templates against structured records.
//
// Field spans are looked up directly in the record, or through a relation
// path (`resource@a.b.c`) that walks the nested record stored under
// `resource.relationInfo`. Function spans have their nested field spans
// substituted first and are then handed to an Evaluator.
//
// Substitution replaces every literal occurrence of a unit's text, never an
// offset range, so identical spans anywhere in a template resolve together.
package render
