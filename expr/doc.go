// Package expr parses single-variable mathematical expressions such as
// "sin(x)^2 + a*x" into evaluable functions of x.
//
// What:
//
//   - Parse compiles a source string into a *Function once; evaluation
//     afterwards is a cheap tree walk with no string handling.
//   - The grammar covers +, -, *, / (left-associative), ^ (right-
//     associative power), unary ±, parentheses, numeric literals
//     (including scientific notation), the variable x, named constants,
//     and calls to a fixed table of math functions.
//   - Function names resolve at parse time: sin, cos, tan, asin, acos,
//     atan, sinh, cosh, tanh, sqrt, abs, exp, ln, log, log2, floor,
//     ceil (one argument) and pow, atan2, min, max (two arguments).
//     ln is the natural logarithm; log is base 10.
//   - Constants: pi is fixed; a, b, c, d default to 1 and e to Euler's
//     number, each overridable via WithConst.
//
// Why:
//
//   - Plotting: turn user-typed formulas into core.Func curves.
//   - Calculus: feed parsed functions to numeric differentiation.
//   - Reuse: one compiled *Function evaluates at every sample point.
//
// Complexity:
//
//   - Parse:    O(len(src)) time, O(depth) stack.
//   - Eval:     O(nodes) time, zero allocations.
//
// Evaluation never panics and never returns an error: domain faults
// (division by zero, sqrt of a negative, ln(0)) follow IEEE-754 and
// surface as NaN or ±Inf, which downstream point generators skip.
//
// Errors:
//
//   - ErrEmptyExpression: source is empty or only whitespace.
//   - ErrSyntax: malformed input; every *SyntaxError unwraps to it and
//     carries the byte offset and a human-readable reason.
package expr
