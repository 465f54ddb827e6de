// Package stdfuncs registers general-purpose helpers for function spans:
// arithmetic, string casing and formatting, min/max, and a length function
// that understands records and lists.
package stdfuncs
