package docpath

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// The printer renders values, paths, and expressions in a deterministic
// textual form that the parser accepts back. String scalars and the names
// in Drop/Keep/Field/Get quote with strconv.Quote; object keys print bare
// only when formatFieldName finds that safe. Printed finite doubles always
// carry a decimal point or exponent so they re-parse as doubles rather
// than ints.

func (Nothing) String() string {
	return "Nothing"
}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (d Double) String() string {
	f := float64(d)

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(f, 0) && !math.IsNaN(f) {
		s += ".0"
	}

	return s
}

func (s String) String() string {
	return strconv.Quote(string(s))
}

func (a Array) String() string {
	var sb strings.Builder

	sb.WriteString("[")

	for i, elem := range a {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(elem.String())
	}

	sb.WriteString("]")

	return sb.String()
}

func (o Object) String() string {
	var sb strings.Builder

	sb.WriteString("{")

	for i, field := range o.fields {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(formatFieldName(field.Name))
		sb.WriteString(": ")
		sb.WriteString(field.Value.String())
	}

	sb.WriteString("}")

	return sb.String()
}

// formatFieldName prints a name bare when it would re-lex as a single
// identifier or number token, quoted otherwise.
func formatFieldName(name string) string {
	switch name {
	case "EvalPath", "Id", "Const", "Default", "Lambda", "Drop", "Keep", "Obj", "Arr",
		"Field", "Get", "At", "Traverse", "Nothing", "true", "false":
		// Keywords lex as their own token types, not as identifiers.
		return strconv.Quote(name)
	}

	if isIdentifier(name) || isDigits(name) {
		return name
	}

	return strconv.Quote(name)
}

func isIdentifier(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return s != ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return s != ""
}

func (c ConstantValue) String() string {
	return c.Value.String()
}

func (e EvalPath) String() string {
	return "EvalPath " + e.Path.String() + " " + e.Expr.String()
}

func (IdPath) String() string {
	return "Id"
}

func (p ConstPath) String() string {
	return "(Const " + p.Expr.String() + ")"
}

func (p DefaultPath) String() string {
	return "(Default " + p.Expr.String() + ")"
}

func (p LambdaPath) String() string {
	return "(Lambda " + p.Expr.String() + ")"
}

func (p DropPath) String() string {
	return "(Drop " + formatNames(p.FieldNames) + ")"
}

func (p KeepPath) String() string {
	return "(Keep " + formatNames(p.FieldNames) + ")"
}

func (ObjPath) String() string {
	return "Obj"
}

func (ArrPath) String() string {
	return "Arr"
}

func (p FieldPath) String() string {
	return "(Field " + strconv.Quote(p.FieldName) + " " + p.Path.String() + ")"
}

func (p GetPath) String() string {
	return "(Get " + strconv.Quote(p.FieldName) + " " + p.Path.String() + ")"
}

func (p AtPath) String() string {
	return "(At " + strconv.FormatInt(int64(p.Index), 10) + " " + p.Path.String() + ")"
}

func (p TraversePath) String() string {
	return "(Traverse " + p.Path.String() + ")"
}

func (p CompositionPath) String() string {
	return "(" + p.Left.String() + " * " + p.Right.String() + ")"
}

func formatNames(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = strconv.Quote(name)
	}

	return strings.Join(quoted, ", ")
}
