package docpath

import "slices"

// Position locates a node in the surface source. It is stamped by the
// parser and carried as opaque metadata: structural equality of AST nodes
// ignores it and the evaluator never reads it. Line and Column are
// 1-based; the zero Position means "unknown" and is what the builder uses.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Expression is the algebraic expression tree: either a constant value or
// a path applied to an inner expression. Trees are immutable after
// construction.
type Expression interface {
	// Equal reports structural equality, ignoring positions.
	Equal(other Expression) bool

	// String renders the expression in the printer format.
	String() string

	isExpression()
}

// ConstantValue is a literal value expression.
type ConstantValue struct {
	Value Value
	Pos   Position
}

// EvalPath applies a path to the value of an inner expression.
type EvalPath struct {
	Path Path
	Expr Expression
	Pos  Position
}

func (ConstantValue) isExpression() {}
func (EvalPath) isExpression()      {}

func (c ConstantValue) Equal(other Expression) bool {
	o, ok := other.(ConstantValue)
	return ok && c.Value.Equal(o.Value)
}

func (e EvalPath) Equal(other Expression) bool {
	o, ok := other.(EvalPath)
	return ok && e.Path.Equal(o.Path) && e.Expr.Equal(o.Expr)
}

// Path is the closed algebra of value transformers. Each variant names
// one tree-rewrite rule; Apply gives their semantics.
type Path interface {
	// Equal reports structural equality, ignoring positions inside nested
	// expressions.
	Equal(other Path) bool

	// String renders the path in the printer format.
	String() string

	isPath()
}

// IdPath is the identity transform.
type IdPath struct{}

// ConstPath replaces its input with the value of an expression.
type ConstPath struct {
	Expr Expression
}

// DefaultPath substitutes the value of an expression when the input is
// Nothing and is the identity otherwise.
type DefaultPath struct {
	Expr Expression
}

// LambdaPath is recognised syntactically but its runtime semantics are
// not specified yet; it evaluates to Nothing.
type LambdaPath struct {
	Expr Expression
}

// DropPath removes the listed fields from an object input.
type DropPath struct {
	FieldNames []string
}

// KeepPath keeps only the listed fields of an object input, in their
// existing order.
type KeepPath struct {
	FieldNames []string
}

// ObjPath narrows to object inputs: anything else becomes Nothing.
type ObjPath struct{}

// ArrPath narrows to array inputs: anything else becomes Nothing.
type ArrPath struct{}

// FieldPath rewrites (or creates) one field of an object.
type FieldPath struct {
	FieldName string
	Path      Path
}

// GetPath extracts one field and continues with a sub-path, without
// reconstructing the object.
type GetPath struct {
	FieldName string
	Path      Path
}

// AtPath extracts one array element and continues with a sub-path.
type AtPath struct {
	Index int32
	Path  Path
}

// TraversePath maps a sub-path over arrays, recursing through nested
// arrays and filtering Nothing results.
type TraversePath struct {
	Path Path
}

// CompositionPath applies Left, then Right.
type CompositionPath struct {
	Left  Path
	Right Path
}

func (IdPath) isPath()          {}
func (ConstPath) isPath()       {}
func (DefaultPath) isPath()     {}
func (LambdaPath) isPath()      {}
func (DropPath) isPath()        {}
func (KeepPath) isPath()        {}
func (ObjPath) isPath()         {}
func (ArrPath) isPath()         {}
func (FieldPath) isPath()       {}
func (GetPath) isPath()         {}
func (AtPath) isPath()          {}
func (TraversePath) isPath()    {}
func (CompositionPath) isPath() {}

func (IdPath) Equal(other Path) bool {
	_, ok := other.(IdPath)
	return ok
}

func (p ConstPath) Equal(other Path) bool {
	o, ok := other.(ConstPath)
	return ok && p.Expr.Equal(o.Expr)
}

func (p DefaultPath) Equal(other Path) bool {
	o, ok := other.(DefaultPath)
	return ok && p.Expr.Equal(o.Expr)
}

func (p LambdaPath) Equal(other Path) bool {
	o, ok := other.(LambdaPath)
	return ok && p.Expr.Equal(o.Expr)
}

func (p DropPath) Equal(other Path) bool {
	o, ok := other.(DropPath)
	return ok && slices.Equal(p.FieldNames, o.FieldNames)
}

func (p KeepPath) Equal(other Path) bool {
	o, ok := other.(KeepPath)
	return ok && slices.Equal(p.FieldNames, o.FieldNames)
}

func (ObjPath) Equal(other Path) bool {
	_, ok := other.(ObjPath)
	return ok
}

func (ArrPath) Equal(other Path) bool {
	_, ok := other.(ArrPath)
	return ok
}

func (p FieldPath) Equal(other Path) bool {
	o, ok := other.(FieldPath)
	return ok && p.FieldName == o.FieldName && p.Path.Equal(o.Path)
}

func (p GetPath) Equal(other Path) bool {
	o, ok := other.(GetPath)
	return ok && p.FieldName == o.FieldName && p.Path.Equal(o.Path)
}

func (p AtPath) Equal(other Path) bool {
	o, ok := other.(AtPath)
	return ok && p.Index == o.Index && p.Path.Equal(o.Path)
}

func (p TraversePath) Equal(other Path) bool {
	o, ok := other.(TraversePath)
	return ok && p.Path.Equal(o.Path)
}

func (p CompositionPath) Equal(other Path) bool {
	o, ok := other.(CompositionPath)
	return ok && p.Left.Equal(o.Left) && p.Right.Equal(o.Right)
}
