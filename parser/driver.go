// Package parser turns docpath surface syntax into expression trees.
//
// Parsing never panics and never fails hard: diagnostics accumulate in an
// ErrorList and the driver always returns, leaving the decision whether to
// proceed to the caller. The evaluator side of the module is untouched by
// anything in this package.
package parser

import (
	"log/slog"

	"github.com/soratobu/docpath"
	tok "github.com/soratobu/docpath/tokenizer"
)

// Driver holds the outcome of one parse: the AST (nil when parsing
// failed before producing one) and the diagnostic log.
type Driver struct {
	ast    docpath.Expression
	errors ErrorList
	logger *slog.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger routes debug tracing to the given structured logger. Parsing
// is silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// NewDriver creates an empty Driver.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// SetAST stores the parsed expression.
func (d *Driver) SetAST(expr docpath.Expression) {
	d.ast = expr
}

// AST returns the parsed expression, or nil if parsing failed.
func (d *Driver) AST() docpath.Expression {
	return d.ast
}

// Errors returns the diagnostic log.
func (d *Driver) Errors() *ErrorList {
	return &d.errors
}

// Parse parses source text into an expression. On failure the returned
// expression is nil and the ErrorList explains why; the list is non-empty
// exactly when parsing failed.
func Parse(src string, opts ...Option) (docpath.Expression, *ErrorList) {
	d := NewDriver(opts...)
	d.Run(src)

	return d.AST(), d.Errors()
}

// Run tokenizes and parses src into the driver.
func (d *Driver) Run(src string) {
	tokens, err := tok.NewTokenizer(src, tok.TokenizerOptions{SkipWhitespace: true}).AllTokens()
	if err != nil {
		// The scan stops at the first bad character; its position is in the
		// error text already, so the entry points at the start of the input.
		d.errors.Append("tokenizer", err.Error(), docpath.Position{Line: 1, Column: 1})
		d.logger.Debug("tokenize failed", "error", err)

		return
	}

	d.logger.Debug("tokenized", "tokens", len(tokens))

	expr := (&run{errors: &d.errors, logger: d.logger}).parse(tokens)
	if d.errors.HasErrors() {
		d.logger.Debug("parse failed", "errors", d.errors.Len())
		return
	}

	d.SetAST(expr)
}
