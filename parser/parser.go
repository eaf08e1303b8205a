package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	pc "github.com/shibukawa/parsercombinator"
	"github.com/soratobu/docpath"
	tok "github.com/soratobu/docpath/tokenizer"
)

// entity is the token payload flowing through the combinators: the raw
// token, plus the AST node a reduction produced in its place.
type entity struct {
	token tok.Token
	node  any
}

// primitive matches a single token of one of the given types.
func primitive(typeName string, types ...tok.TokenType) pc.Parser[entity] {
	return func(pctx *pc.ParseContext[entity], tokens []pc.Token[entity]) (int, []pc.Token[entity], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.token.Type) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

var (
	identifier = primitive("identifier", tok.IDENTIFIER)
	stringLit  = primitive("string", tok.STRING)
	number     = primitive("number", tok.NUMBER)
	comma      = primitive("comma", tok.COMMA)
	colon      = primitive("colon", tok.COLON)
	parenClose = primitive("parenClose", tok.CLOSED_PARENS)
	asterisk   = primitive("asterisk", tok.ASTERISK)

	// fieldName parses the name operand of Field/Get/Drop/Keep.
	fieldName = pc.Or(stringLit, identifier)
	// objectKey parses an object literal key; all keys normalise to strings.
	objectKey = pc.Or(stringLit, identifier, number)

	eos = pc.EOS[entity]()
)

func toParserTokens(tokens []tok.Token) []pc.Token[entity] {
	results := make([]pc.Token[entity], len(tokens))

	for i, token := range tokens {
		results[i] = pc.Token[entity]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: entity{token: token},
			Raw: token.Value,
		}
	}

	return results
}

func nodeToken(pos *pc.Pos, node any) []pc.Token[entity] {
	return []pc.Token[entity]{{Type: "node", Pos: pos, Val: entity{node: node}}}
}

// run carries the per-parse state: the diagnostic sink and the logger.
// Detection and reporting happen in the same function; callers propagate
// pc.ErrCritical without appending again. pc.ErrNotMatch means "not mine,
// nothing reported yet".
type run struct {
	errors *ErrorList
	logger *slog.Logger

	// end is the position just past the last token, used to locate
	// unexpected-end diagnostics.
	end docpath.Position
}

func (r *run) parse(tokens []tok.Token) docpath.Expression {
	pctx := pc.NewParseContext[entity]()
	ptokens := toParserTokens(tokens)

	r.end = docpath.Position{Line: 1, Column: 1}
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		r.end = docpath.Position{
			Line:   last.Position.Line,
			Column: last.Position.Column + len(last.Value),
			Offset: last.Position.Offset + len(last.Value),
		}
	}

	expression := pc.Trace("expression", r.parseExpression)

	consumed, result, err := expression(pctx, ptokens)
	if err != nil {
		if !r.errors.HasErrors() {
			r.report(ptokens, 0, "expected an expression")
		}

		return nil
	}

	if _, _, err := eos(pctx, ptokens[consumed:]); err != nil {
		r.report(ptokens, consumed, "unexpected input after the expression")
		return nil
	}

	return result[0].Val.node.(docpath.Expression)
}

// report appends a parser diagnostic located at tokens[i], or just past
// the last token of the input when the slice ended early. The parsers only
// ever slice suffixes, so an exhausted slice means the input is exhausted.
func (r *run) report(tokens []pc.Token[entity], i int, message string) {
	pos := r.end

	if i < len(tokens) {
		p := tokens[i].Val.token.Position
		pos = docpath.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
	}

	r.logger.Debug("parse error", "message", message, "line", pos.Line, "column", pos.Column)
	r.errors.Append("parser", message, pos)
}

func (r *run) critical(tokens []pc.Token[entity], i int, message string) error {
	r.report(tokens, i, message)
	return fmt.Errorf("%w: %s", pc.ErrCritical, message)
}

// parseExpression parses "EvalPath <path> <expr>" or a value literal.
func (r *run) parseExpression(pctx *pc.ParseContext[entity], tokens []pc.Token[entity]) (int, []pc.Token[entity], error) {
	if len(tokens) == 0 {
		return 0, nil, r.critical(tokens, 0, "expected an expression")
	}

	if tokens[0].Val.token.Type == tok.EVAL_PATH {
		offset := 1

		pathConsumed, pathResult, err := r.parsePath(pctx, tokens[offset:])
		if err != nil {
			return 0, nil, err
		}

		offset += pathConsumed

		exprConsumed, exprResult, err := r.parseExpression(pctx, tokens[offset:])
		if err != nil {
			return 0, nil, err
		}

		offset += exprConsumed

		node := docpath.EvalPath{
			Path: pathResult[0].Val.node.(docpath.Path),
			Expr: exprResult[0].Val.node.(docpath.Expression),
			Pos:  r.position(tokens[0]),
		}

		return offset, nodeToken(tokens[0].Pos, node), nil
	}

	consumed, result, err := r.parseValue(pctx, tokens)
	if err != nil {
		if errors.Is(err, pc.ErrNotMatch) {
			return 0, nil, r.critical(tokens, 0, fmt.Sprintf("expected an expression, got %s", tokens[0].Val.token))
		}

		return 0, nil, err
	}

	node := docpath.ConstantValue{
		Value: result[0].Val.node.(docpath.Value),
		Pos:   r.position(tokens[0]),
	}

	return consumed, nodeToken(tokens[0].Pos, node), nil
}

func (r *run) position(t pc.Token[entity]) docpath.Position {
	p := t.Val.token.Position
	return docpath.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

// parsePath parses a composition: term ("*" term)*, left-associative.
func (r *run) parsePath(pctx *pc.ParseContext[entity], tokens []pc.Token[entity]) (int, []pc.Token[entity], error) {
	consumed, result, err := r.parseTerm(pctx, tokens)
	if err != nil {
		if errors.Is(err, pc.ErrNotMatch) {
			return 0, nil, r.critical(tokens, 0, "expected a path")
		}

		return 0, nil, err
	}

	path := result[0].Val.node.(docpath.Path)
	offset := consumed

	for {
		starConsumed, _, err := asterisk(pctx, tokens[offset:])
		if err != nil {
			break
		}

		offset += starConsumed

		termConsumed, termResult, err := r.parseTerm(pctx, tokens[offset:])
		if err != nil {
			if errors.Is(err, pc.ErrNotMatch) {
				return 0, nil, r.critical(tokens, offset, "expected a path after '*'")
			}

			return 0, nil, err
		}

		offset += termConsumed
		path = docpath.CompositionPath{Left: path, Right: termResult[0].Val.node.(docpath.Path)}
	}

	return offset, nodeToken(tokens[0].Pos, path), nil
}

// parseTerm parses a single path form. Prefix forms nest without
// parentheses: "Field \"a\" Traverse Get \"b\" Id" is one term.
// Composition only joins complete terms, at one nesting level.
func (r *run) parseTerm(pctx *pc.ParseContext[entity], tokens []pc.Token[entity]) (int, []pc.Token[entity], error) {
	if len(tokens) == 0 {
		return 0, nil, pc.ErrNotMatch
	}

	head := tokens[0]

	switch head.Val.token.Type {
	case tok.ID:
		return 1, nodeToken(head.Pos, docpath.IdPath{}), nil

	case tok.OBJ:
		return 1, nodeToken(head.Pos, docpath.ObjPath{}), nil

	case tok.ARR:
		return 1, nodeToken(head.Pos, docpath.ArrPath{}), nil

	case tok.OPENED_PARENS:
		offset := 1

		pathConsumed, pathResult, err := r.parsePath(pctx, tokens[offset:])
		if err != nil {
			return 0, nil, err
		}

		offset += pathConsumed

		closeConsumed, _, err := parenClose(pctx, tokens[offset:])
		if err != nil {
			return 0, nil, r.critical(tokens, offset, "expected ')' to close the path")
		}

		return offset + closeConsumed, pathResult, nil

	case tok.CONST, tok.DEFAULT, tok.LAMBDA:
		offset := 1

		exprConsumed, exprResult, err := r.parseExpression(pctx, tokens[offset:])
		if err != nil {
			return 0, nil, err
		}

		offset += exprConsumed
		expr := exprResult[0].Val.node.(docpath.Expression)

		var node docpath.Path

		switch head.Val.token.Type {
		case tok.CONST:
			node = docpath.ConstPath{Expr: expr}
		case tok.DEFAULT:
			node = docpath.DefaultPath{Expr: expr}
		default:
			node = docpath.LambdaPath{Expr: expr}
		}

		return offset, nodeToken(head.Pos, node), nil

	case tok.DROP, tok.KEEP:
		offset := 1

		namesConsumed, names, err := r.parseNames(pctx, tokens[offset:])
		if err != nil {
			return 0, nil, err
		}

		offset += namesConsumed

		var node docpath.Path
		if head.Val.token.Type == tok.DROP {
			node = docpath.DropPath{FieldNames: names}
		} else {
			node = docpath.KeepPath{FieldNames: names}
		}

		return offset, nodeToken(head.Pos, node), nil

	case tok.FIELD, tok.GET:
		offset := 1

		nameConsumed, name, err := r.parseName(pctx, tokens[offset:])
		if err != nil {
			return 0, nil, err
		}

		offset += nameConsumed

		termConsumed, termResult, err := r.parseTerm(pctx, tokens[offset:])
		if err != nil {
			if errors.Is(err, pc.ErrNotMatch) {
				return 0, nil, r.critical(tokens, offset, "expected a sub-path")
			}

			return 0, nil, err
		}

		offset += termConsumed
		sub := termResult[0].Val.node.(docpath.Path)

		var node docpath.Path
		if head.Val.token.Type == tok.FIELD {
			node = docpath.FieldPath{FieldName: name, Path: sub}
		} else {
			node = docpath.GetPath{FieldName: name, Path: sub}
		}

		return offset, nodeToken(head.Pos, node), nil

	case tok.AT:
		offset := 1

		numConsumed, numResult, err := number(pctx, tokens[offset:])
		if err != nil {
			return 0, nil, r.critical(tokens, offset, "expected an array index after At")
		}

		numToken := numResult[0].Val.token
		if numToken.IsFloat {
			return 0, nil, r.critical(tokens, offset, "array index must be an integer")
		}

		index, convErr := strconv.ParseInt(numToken.Value, 10, 32)
		if convErr != nil {
			return 0, nil, r.critical(tokens, offset, fmt.Sprintf("array index %s is out of range", numToken.Value))
		}

		if index < 0 {
			return 0, nil, r.critical(tokens, offset, "array index must not be negative")
		}

		offset += numConsumed

		termConsumed, termResult, err := r.parseTerm(pctx, tokens[offset:])
		if err != nil {
			if errors.Is(err, pc.ErrNotMatch) {
				return 0, nil, r.critical(tokens, offset, "expected a sub-path")
			}

			return 0, nil, err
		}

		offset += termConsumed

		node := docpath.AtPath{Index: int32(index), Path: termResult[0].Val.node.(docpath.Path)}

		return offset, nodeToken(head.Pos, node), nil

	case tok.TRAVERSE:
		offset := 1

		termConsumed, termResult, err := r.parseTerm(pctx, tokens[offset:])
		if err != nil {
			if errors.Is(err, pc.ErrNotMatch) {
				return 0, nil, r.critical(tokens, offset, "expected a sub-path")
			}

			return 0, nil, err
		}

		offset += termConsumed

		node := docpath.TraversePath{Path: termResult[0].Val.node.(docpath.Path)}

		return offset, nodeToken(head.Pos, node), nil
	}

	return 0, nil, pc.ErrNotMatch
}

// parseName parses one field name: a quoted string or a bare identifier.
func (r *run) parseName(pctx *pc.ParseContext[entity], tokens []pc.Token[entity]) (int, string, error) {
	consumed, result, err := fieldName(pctx, tokens)
	if err != nil {
		return 0, "", r.critical(tokens, 0, "expected a field name")
	}

	name, err := r.nameText(tokens, result[0])
	if err != nil {
		return 0, "", err
	}

	return consumed, name, nil
}

// parseNames parses a comma-separated name list for Drop/Keep.
func (r *run) parseNames(pctx *pc.ParseContext[entity], tokens []pc.Token[entity]) (int, []string, error) {
	offset, name, err := r.parseName(pctx, tokens)
	if err != nil {
		return 0, nil, err
	}

	names := []string{name}

	for {
		commaConsumed, _, err := comma(pctx, tokens[offset:])
		if err != nil {
			break
		}

		offset += commaConsumed

		nameConsumed, name, err := r.parseName(pctx, tokens[offset:])
		if err != nil {
			return 0, nil, err
		}

		offset += nameConsumed
		names = append(names, name)
	}

	return offset, names, nil
}

func (r *run) nameText(tokens []pc.Token[entity], t pc.Token[entity]) (string, error) {
	raw := t.Val.token

	if raw.Type == tok.STRING {
		name, err := strconv.Unquote(raw.Value)
		if err != nil {
			return "", r.critical(tokens, 0, fmt.Sprintf("invalid string literal %s", raw.Value))
		}

		return name, nil
	}

	return raw.Value, nil
}

// parseValue parses a value literal.
func (r *run) parseValue(pctx *pc.ParseContext[entity], tokens []pc.Token[entity]) (int, []pc.Token[entity], error) {
	if len(tokens) == 0 {
		return 0, nil, pc.ErrNotMatch
	}

	head := tokens[0]

	switch head.Val.token.Type {
	case tok.NUMBER:
		value, err := r.numberValue(tokens, head.Val.token)
		if err != nil {
			return 0, nil, err
		}

		return 1, nodeToken(head.Pos, value), nil

	case tok.STRING:
		text, err := strconv.Unquote(head.Val.token.Value)
		if err != nil {
			return 0, nil, r.critical(tokens, 0, fmt.Sprintf("invalid string literal %s", head.Val.token.Value))
		}

		return 1, nodeToken(head.Pos, docpath.String(text)), nil

	case tok.TRUE:
		return 1, nodeToken(head.Pos, docpath.Bool(true)), nil

	case tok.FALSE:
		return 1, nodeToken(head.Pos, docpath.Bool(false)), nil

	case tok.NOTHING:
		return 1, nodeToken(head.Pos, docpath.Nothing{}), nil

	case tok.OPENED_BRACKET:
		return r.parseArray(pctx, tokens)

	case tok.OPENED_BRACE:
		return r.parseObject(pctx, tokens)
	}

	return 0, nil, pc.ErrNotMatch
}

func (r *run) numberValue(tokens []pc.Token[entity], t tok.Token) (docpath.Value, error) {
	if t.IsFloat {
		value, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return nil, r.critical(tokens, 0, fmt.Sprintf("invalid number %s", t.Value))
		}

		return docpath.Double(value), nil
	}

	value, err := strconv.ParseInt(t.Value, 10, 32)
	if err != nil {
		return nil, r.critical(tokens, 0, fmt.Sprintf("integer %s is out of range", t.Value))
	}

	return docpath.Int(int32(value)), nil
}

func (r *run) parseArray(pctx *pc.ParseContext[entity], tokens []pc.Token[entity]) (int, []pc.Token[entity], error) {
	offset := 1
	values := docpath.Array{}

	if offset < len(tokens) && tokens[offset].Val.token.Type == tok.CLOSED_BRACKET {
		return offset + 1, nodeToken(tokens[0].Pos, values), nil
	}

	for {
		valueConsumed, valueResult, err := r.parseValue(pctx, tokens[offset:])
		if err != nil {
			if errors.Is(err, pc.ErrNotMatch) {
				return 0, nil, r.critical(tokens, offset, "expected a value in the array")
			}

			return 0, nil, err
		}

		offset += valueConsumed
		values = append(values, valueResult[0].Val.node.(docpath.Value))

		if offset < len(tokens) && tokens[offset].Val.token.Type == tok.CLOSED_BRACKET {
			return offset + 1, nodeToken(tokens[0].Pos, values), nil
		}

		commaConsumed, _, err := comma(pctx, tokens[offset:])
		if err != nil {
			return 0, nil, r.critical(tokens, offset, "expected ',' or ']' in the array")
		}

		offset += commaConsumed
	}
}

func (r *run) parseObject(pctx *pc.ParseContext[entity], tokens []pc.Token[entity]) (int, []pc.Token[entity], error) {
	offset := 1
	fields := []docpath.Field{}

	if offset < len(tokens) && tokens[offset].Val.token.Type == tok.CLOSED_BRACE {
		return offset + 1, nodeToken(tokens[0].Pos, docpath.NewObject()), nil
	}

	for {
		keyConsumed, keyResult, err := objectKey(pctx, tokens[offset:])
		if err != nil {
			return 0, nil, r.critical(tokens, offset, "expected a field name in the object")
		}

		key, err := r.nameText(tokens[offset:], keyResult[0])
		if err != nil {
			return 0, nil, err
		}

		offset += keyConsumed

		colonConsumed, _, err := colon(pctx, tokens[offset:])
		if err != nil {
			return 0, nil, r.critical(tokens, offset, "expected ':' after the field name")
		}

		offset += colonConsumed

		valueConsumed, valueResult, err := r.parseValue(pctx, tokens[offset:])
		if err != nil {
			if errors.Is(err, pc.ErrNotMatch) {
				return 0, nil, r.critical(tokens, offset, "expected a value in the object")
			}

			return 0, nil, err
		}

		offset += valueConsumed
		fields = append(fields, docpath.Field{Name: key, Value: valueResult[0].Val.node.(docpath.Value)})

		if offset < len(tokens) && tokens[offset].Val.token.Type == tok.CLOSED_BRACE {
			return offset + 1, nodeToken(tokens[0].Pos, docpath.NewObject(fields...)), nil
		}

		commaConsumed, _, err := comma(pctx, tokens[offset:])
		if err != nil {
			return 0, nil, r.critical(tokens, offset, "expected ',' or '}' in the object")
		}

		offset += commaConsumed
	}
}
