// Package errs defines the failure kinds shared by the template renderer, the
// shaping functions and the dimension pipeline.
//
// Every kind is a distinct struct type so callers can branch with errors.As
// (or the Is* helpers) after any number of fmt.Errorf("...: %w") hops:
//
//   - EmptyError: a required expression, argument or value is absent.
//   - TypeMismatchError: a produced value does not have the expected shape;
//     always names both sides.
//   - MatchError: a match unit of the wrong kind reached a kind-specific
//     handler.
//   - ArityError: wrong argument count; always names both counts.
//   - SyntaxError: the evaluation engine rejected an expression.
package errs
