// Package ctyval converts between the jsonval data model and go-cty values.
//
// Records and lists cross into cty as capsule values (RecordType, ListType)
// instead of cty objects and tuples: cty objects sort their attributes, and
// bucket order must follow input order. Native cty collections written
// directly in an expression are still accepted wherever a record or list is
// read.
package ctyval
