package docpath

// Evaluate reduces an expression to a value. It is pure and total: every
// well-formed expression evaluates, and all semantic misses (absent
// fields, wrong shapes, out-of-range indices) come back as Nothing rather
// than as errors.
func Evaluate(expr Expression) Value {
	switch e := expr.(type) {
	case ConstantValue:
		return e.Value
	case EvalPath:
		return Apply(e.Path, Evaluate(e.Expr))
	}

	// The Path/Expression sums are closed; an unknown node is a programmer
	// error in this package.
	panic("docpath: unknown expression variant")
}

// Apply transforms a value with a path. The per-variant contracts are the
// heart of the algebra; in particular Field materialises an object from a
// non-object input when its sub-path produces something, and Traverse
// filters Nothing out of the arrays it rebuilds.
func Apply(path Path, v Value) Value {
	switch p := path.(type) {
	case IdPath:
		return v

	case ConstPath:
		return Evaluate(p.Expr)

	case DefaultPath:
		if IsNothing(v) {
			return Evaluate(p.Expr)
		}

		return v

	case LambdaPath:
		// TODO: lambda should bind an expression over the input value; the
		// semantics are not specified yet.
		return Nothing{}

	case DropPath:
		if obj, ok := v.(Object); ok {
			obj = obj.clone()
			obj.DropFields(p.FieldNames...)

			return obj
		}

		return v

	case KeepPath:
		if obj, ok := v.(Object); ok {
			obj = obj.clone()
			obj.KeepFields(p.FieldNames...)

			return obj
		}

		return v

	case ObjPath:
		if IsObject(v) {
			return v
		}

		return Nothing{}

	case ArrPath:
		if IsArray(v) {
			return v
		}

		return Nothing{}

	case FieldPath:
		var obj Object

		inner := Value(Nothing{})

		src, isObject := v.(Object)
		if isObject {
			obj = src.clone()
			inner = obj.GetValue(p.FieldName)
		}

		inner = Apply(p.Path, inner)
		if isObject || !IsNothing(inner) {
			obj.SetValue(p.FieldName, inner)
			return obj
		}

		return v

	case GetPath:
		inner := Value(Nothing{})
		if obj, ok := v.(Object); ok {
			inner = obj.GetValue(p.FieldName)
		}

		return Apply(p.Path, inner)

	case AtPath:
		inner := Value(Nothing{})
		if arr, ok := v.(Array); ok {
			if idx := int(p.Index); idx >= 0 && idx < len(arr) {
				inner = arr[idx]
			}
		}

		return Apply(p.Path, inner)

	case TraversePath:
		arr, ok := v.(Array)
		if !ok {
			return Apply(p.Path, v)
		}

		values := make(Array, 0, len(arr))

		for _, elem := range arr {
			var out Value
			if IsArray(elem) {
				out = Apply(p, elem)
			} else {
				out = Apply(p.Path, elem)
			}

			if !IsNothing(out) {
				values = append(values, out)
			}
		}

		return values

	case CompositionPath:
		return Apply(p.Right, Apply(p.Left, v))
	}

	panic("docpath: unknown path variant")
}
