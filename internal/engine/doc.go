// Package engine is the evaluation engine the renderer and the dimension
// chain units submit expressions to.
//
// Expressions use HCL native syntax: literals, arithmetic, conditionals and
// calls of the form name(arg, ...). Only the functions resolved from the
// registry when the engine is built can be called; bound variables are the
// only other names in scope. Records and lists pass through function calls as
// cty capsule values, so their key order and identity are preserved.
//
// Parsed expressions are memoized in an in-memory store keyed by their text.
// The function table is never mutated after New returns, which is what makes
// one Engine safe to share between concurrent renders.
package engine
