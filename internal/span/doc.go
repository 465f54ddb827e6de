// Package span finds field spans (${name}) and function spans (#{expr}#) in a
// template and orders them for rendering.
//
// Both patterns are non-greedy and run independently over the whole template.
// A field span strictly inside a function span belongs to that function span
// and is dropped from the top-level list; the renderer resolves it while
// evaluating the function span.
package span
