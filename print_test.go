package docpath_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/soratobu/docpath"
	"github.com/soratobu/docpath/ast"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value docpath.Value
		want  string
	}{
		{"nothing", docpath.Nothing{}, "Nothing"},
		{"true", docpath.Bool(true), "true"},
		{"false", docpath.Bool(false), "false"},
		{"int", docpath.Int(5), "5"},
		{"negative int", docpath.Int(-12), "-12"},
		{"double keeps its point", docpath.Double(7), "7.0"},
		{"double fraction", docpath.Double(1.5), "1.5"},
		{"double exponent", docpath.Double(1e21), "1e+21"},
		{"string is quoted", docpath.String("hello"), `"hello"`},
		{"string escapes quote", docpath.String(`a"b`), `"a\"b"`},
		{"empty array", docpath.Array{}, "[]"},
		{"array", ast.Value([]int{1, 2, 3}), "[1, 2, 3]"},
		{"nested array", ast.Value([]any{[]int{1}, 2}), "[[1], 2]"},
		{"empty object", docpath.NewObject(), "{}"},
		{
			"object",
			docpath.NewObject(
				docpath.Field{Name: "foo", Value: docpath.Int(2)},
				docpath.Field{Name: "bar", Value: docpath.String("x")},
			),
			`{foo: 2, bar: "x"}`,
		},
		{
			"numeric and odd keys",
			docpath.NewObject(
				docpath.Field{Name: "5", Value: docpath.Int(100)},
				docpath.Field{Name: "ab.cd", Value: docpath.String("da")},
			),
			`{5: 100, "ab.cd": "da"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		path docpath.Path
		want string
	}{
		{"id", ast.Id(), "Id"},
		{"obj", ast.Obj(), "Obj"},
		{"arr", ast.Arr(), "Arr"},
		{"const", ast.Const(7), "(Const 7)"},
		{"default", ast.Default("foo"), `(Default "foo")`},
		{"lambda", ast.Lambda(7), "(Lambda 7)"},
		{"drop", ast.Drop("a", "b"), `(Drop "a", "b")`},
		{"keep", ast.Keep("a"), `(Keep "a")`},
		{"field", ast.Field("a", ast.Id()), `(Field "a" Id)`},
		{"get", ast.Get("a", ast.Const(7)), `(Get "a" (Const 7))`},
		{"at", ast.At(2, ast.Default("foo")), `(At 2 (Default "foo"))`},
		{"traverse", ast.Traverse(ast.Id()), "(Traverse Id)"},
		{
			"composition",
			ast.Compose(ast.Field("a", ast.Const(7)), ast.Field("b", ast.Const(9))),
			`((Field "a" (Const 7)) * (Field "b" (Const 9)))`,
		},
		{
			"nested prefix chain",
			ast.Field("a", ast.Traverse(ast.Get("b", ast.Id()))),
			`(Field "a" (Traverse (Get "b" Id)))`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.String())
		})
	}
}

func TestExpressionString(t *testing.T) {
	tests := []struct {
		name string
		expr docpath.Expression
		want string
	}{
		{"constant", ast.Expr(5), "5"},
		{
			"eval path",
			ast.EvalPath(ast.Id(), ast.Object(docpath.Field{Name: "foo", Value: ast.Value(2)})),
			"EvalPath Id {foo: 2}",
		},
		{
			"nested eval path",
			ast.EvalPath(ast.Const(ast.EvalPath(ast.Id(), 5)), ast.Nothing()),
			"EvalPath (Const EvalPath Id 5) Nothing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expr.String())
		})
	}
}
