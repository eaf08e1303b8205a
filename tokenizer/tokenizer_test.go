package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "keywords and object literal",
			input: "EvalPath Id {foo: 2}",
			want: []Token{
				{Type: EVAL_PATH, Value: "EvalPath", Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: ID, Value: "Id", Position: Position{Line: 1, Column: 10, Offset: 9}},
				{Type: OPENED_BRACE, Value: "{", Position: Position{Line: 1, Column: 13, Offset: 12}},
				{Type: IDENTIFIER, Value: "foo", Position: Position{Line: 1, Column: 14, Offset: 13}},
				{Type: COLON, Value: ":", Position: Position{Line: 1, Column: 17, Offset: 16}},
				{Type: NUMBER, Value: "2", Position: Position{Line: 1, Column: 19, Offset: 18}},
				{Type: CLOSED_BRACE, Value: "}", Position: Position{Line: 1, Column: 20, Offset: 19}},
			},
		},
		{
			name:  "path keywords",
			input: "Const Default Lambda Drop Keep Obj Arr Field Get At Traverse Nothing",
			want: []Token{
				{Type: CONST, Value: "Const", Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: DEFAULT, Value: "Default", Position: Position{Line: 1, Column: 7, Offset: 6}},
				{Type: LAMBDA, Value: "Lambda", Position: Position{Line: 1, Column: 15, Offset: 14}},
				{Type: DROP, Value: "Drop", Position: Position{Line: 1, Column: 22, Offset: 21}},
				{Type: KEEP, Value: "Keep", Position: Position{Line: 1, Column: 27, Offset: 26}},
				{Type: OBJ, Value: "Obj", Position: Position{Line: 1, Column: 32, Offset: 31}},
				{Type: ARR, Value: "Arr", Position: Position{Line: 1, Column: 36, Offset: 35}},
				{Type: FIELD, Value: "Field", Position: Position{Line: 1, Column: 40, Offset: 39}},
				{Type: GET, Value: "Get", Position: Position{Line: 1, Column: 46, Offset: 45}},
				{Type: AT, Value: "At", Position: Position{Line: 1, Column: 50, Offset: 49}},
				{Type: TRAVERSE, Value: "Traverse", Position: Position{Line: 1, Column: 53, Offset: 52}},
				{Type: NOTHING, Value: "Nothing", Position: Position{Line: 1, Column: 62, Offset: 61}},
			},
		},
		{
			name:  "keywords are case-sensitive",
			input: "id nothing EVALPATH",
			want: []Token{
				{Type: IDENTIFIER, Value: "id", Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: IDENTIFIER, Value: "nothing", Position: Position{Line: 1, Column: 4, Offset: 3}},
				{Type: IDENTIFIER, Value: "EVALPATH", Position: Position{Line: 1, Column: 12, Offset: 11}},
			},
		},
		{
			name:  "numbers",
			input: "5 -12 1.5 -0.5 1e6 2.5E-3",
			want: []Token{
				{Type: NUMBER, Value: "5", Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: NUMBER, Value: "-12", Position: Position{Line: 1, Column: 3, Offset: 2}},
				{Type: NUMBER, Value: "1.5", Position: Position{Line: 1, Column: 7, Offset: 6}, IsFloat: true},
				{Type: NUMBER, Value: "-0.5", Position: Position{Line: 1, Column: 11, Offset: 10}, IsFloat: true},
				{Type: NUMBER, Value: "1e6", Position: Position{Line: 1, Column: 16, Offset: 15}, IsFloat: true},
				{Type: NUMBER, Value: "2.5E-3", Position: Position{Line: 1, Column: 20, Offset: 19}, IsFloat: true},
			},
		},
		{
			name:  "strings keep quotes and escapes",
			input: `"hello" "ab.cd" "a\"b"`,
			want: []Token{
				{Type: STRING, Value: `"hello"`, Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: STRING, Value: `"ab.cd"`, Position: Position{Line: 1, Column: 9, Offset: 8}},
				{Type: STRING, Value: `"a\"b"`, Position: Position{Line: 1, Column: 17, Offset: 16}},
			},
		},
		{
			name:  "punctuation",
			input: "( ) [ ] { } , : *",
			want: []Token{
				{Type: OPENED_PARENS, Value: "(", Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: CLOSED_PARENS, Value: ")", Position: Position{Line: 1, Column: 3, Offset: 2}},
				{Type: OPENED_BRACKET, Value: "[", Position: Position{Line: 1, Column: 5, Offset: 4}},
				{Type: CLOSED_BRACKET, Value: "]", Position: Position{Line: 1, Column: 7, Offset: 6}},
				{Type: OPENED_BRACE, Value: "{", Position: Position{Line: 1, Column: 9, Offset: 8}},
				{Type: CLOSED_BRACE, Value: "}", Position: Position{Line: 1, Column: 11, Offset: 10}},
				{Type: COMMA, Value: ",", Position: Position{Line: 1, Column: 13, Offset: 12}},
				{Type: COLON, Value: ":", Position: Position{Line: 1, Column: 15, Offset: 14}},
				{Type: ASTERISK, Value: "*", Position: Position{Line: 1, Column: 17, Offset: 16}},
			},
		},
		{
			name:  "newlines advance lines",
			input: "Id\nObj",
			want: []Token{
				{Type: ID, Value: "Id", Position: Position{Line: 1, Column: 1, Offset: 0}},
				{Type: OBJ, Value: "Obj", Position: Position{Line: 2, Column: 1, Offset: 3}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewTokenizer(tt.input, TokenizerOptions{SkipWhitespace: true}).AllTokens()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, tokens)
		})
	}
}

func TestTokenizeKeepsWhitespaceByDefault(t *testing.T) {
	tokens, err := NewTokenizer("Id Obj").AllTokens()
	assert.NoError(t, err)

	types := make([]TokenType, 0, len(tokens))
	for _, token := range tokens {
		types = append(types, token.Type)
	}

	assert.Equal(t, []TokenType{ID, WHITESPACE, OBJ}, types)
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"unexpected character", "Id @ Obj", ErrUnexpectedCharacter},
		{"unterminated string", `"abc`, ErrUnterminatedString},
		{"string broken by newline", "\"abc\ndef\"", ErrUnterminatedString},
		{"bare minus", "- 5", ErrInvalidNumber},
		{"missing fraction digits", "1.x", ErrInvalidNumber},
		{"missing exponent digits", "1ex", ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenizer(tt.input, TokenizerOptions{SkipWhitespace: true}).AllTokens()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenString(t *testing.T) {
	token := Token{Type: IDENTIFIER, Value: "foo"}
	assert.Equal(t, "IDENTIFIER: foo", token.String())
}
