// Package ast provides convenience constructors for building docpath
// expression trees in code. Every constructor stamps the unknown position,
// so built trees compare equal to parsed ones.
package ast

import (
	"fmt"

	"github.com/soratobu/docpath"
)

// Value converts a Go value into a docpath.Value. It accepts raw scalars
// (bool, int, int32, float64, string), slices of those, []docpath.Value,
// a docpath.Object, and an existing docpath.Value (returned as is); nil
// converts to Nothing. Unsupported types panic: the builder is test and
// embedding sugar, and a bad conversion is a programmer error.
func Value(v any) docpath.Value {
	switch val := v.(type) {
	case nil:
		return docpath.Nothing{}
	case docpath.Value:
		return val
	case bool:
		return docpath.Bool(val)
	case int:
		return docpath.Int(int32(val))
	case int32:
		return docpath.Int(val)
	case float64:
		return docpath.Double(val)
	case string:
		return docpath.String(val)
	case []docpath.Value:
		return docpath.Array(val)
	case []bool:
		return scalarArray(val)
	case []int:
		return scalarArray(val)
	case []int32:
		return scalarArray(val)
	case []float64:
		return scalarArray(val)
	case []string:
		return scalarArray(val)
	case []any:
		arr := make(docpath.Array, len(val))
		for i, elem := range val {
			arr[i] = Value(elem)
		}

		return arr
	}

	panic(fmt.Sprintf("docpath/ast: cannot convert %T to a Value", v))
}

func scalarArray[T any](vals []T) docpath.Array {
	arr := make(docpath.Array, len(vals))
	for i, v := range vals {
		arr[i] = Value(v)
	}

	return arr
}

// Nothing returns the absent value.
func Nothing() docpath.Value {
	return docpath.Nothing{}
}

// Object builds an object value from fields in order.
func Object(fields ...docpath.Field) docpath.Value {
	return docpath.NewObject(fields...)
}

// Expr wraps a value-like argument as a constant expression. An existing
// docpath.Expression passes through unchanged.
func Expr(v any) docpath.Expression {
	if expr, ok := v.(docpath.Expression); ok {
		return expr
	}

	return docpath.ConstantValue{Value: Value(v)}
}

// EvalPath applies a path to an expression (or to a value-like argument,
// which is wrapped with Expr).
func EvalPath(path docpath.Path, v any) docpath.Expression {
	return docpath.EvalPath{Path: path, Expr: Expr(v)}
}

// Id returns the identity path.
func Id() docpath.Path {
	return docpath.IdPath{}
}

// Const returns a path that replaces its input with the value of v.
func Const(v any) docpath.Path {
	return docpath.ConstPath{Expr: Expr(v)}
}

// Default returns a path that substitutes the value of v for Nothing.
func Default(v any) docpath.Path {
	return docpath.DefaultPath{Expr: Expr(v)}
}

// Lambda returns the placeholder lambda path.
func Lambda(v any) docpath.Path {
	return docpath.LambdaPath{Expr: Expr(v)}
}

// Drop returns a path removing the named fields from object inputs.
func Drop(names ...string) docpath.Path {
	return docpath.DropPath{FieldNames: names}
}

// Keep returns a path keeping only the named fields of object inputs.
func Keep(names ...string) docpath.Path {
	return docpath.KeepPath{FieldNames: names}
}

// Obj returns the object-narrowing path.
func Obj() docpath.Path {
	return docpath.ObjPath{}
}

// Arr returns the array-narrowing path.
func Arr() docpath.Path {
	return docpath.ArrPath{}
}

// Field returns a path rewriting (or creating) one object field.
func Field(name string, path docpath.Path) docpath.Path {
	return docpath.FieldPath{FieldName: name, Path: path}
}

// Get returns a path extracting one object field.
func Get(name string, path docpath.Path) docpath.Path {
	return docpath.GetPath{FieldName: name, Path: path}
}

// At returns a path extracting one array element.
func At(index int32, path docpath.Path) docpath.Path {
	return docpath.AtPath{Index: index, Path: path}
}

// Traverse returns a path mapping its sub-path over arrays.
func Traverse(path docpath.Path) docpath.Path {
	return docpath.TraversePath{Path: path}
}

// Compose sequences paths left to right.
func Compose(left, right docpath.Path, rest ...docpath.Path) docpath.Path {
	composed := docpath.Path(docpath.CompositionPath{Left: left, Right: right})
	for _, p := range rest {
		composed = docpath.CompositionPath{Left: composed, Right: p}
	}

	return composed
}
