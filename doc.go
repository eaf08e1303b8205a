// Package docpath implements a small algebra for path-based document
// transformation.
//
// A document is a dynamically-shaped Value: Nothing, a scalar, an Array,
// or an Object with ordered fields. A Path is a first-class combinator
// that rewrites one value into another; an Expression is either a constant
// value or a path applied to an inner expression. Evaluate executes an
// expression tree.
//
//	expr := ast.EvalPath(ast.Field("a", ast.Const(7)), ast.Nothing())
//	out := docpath.Evaluate(expr) // {a: 7}
//
// The algebra is total: evaluation cannot fail, and every semantic miss
// (absent field, wrong shape, out-of-range index) produces Nothing.
// Object field order is semantically visible; updating a field keeps its
// position, adding one appends at the end.
//
// Programmatic trees are built with the github.com/soratobu/docpath/ast
// package; the surface syntax is handled by
// github.com/soratobu/docpath/parser.
package docpath
