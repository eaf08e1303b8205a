package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/soratobu/docpath"
)

var (
	sourceFmt   = color.New(color.FgBlue, color.Bold).SprintfFunc()
	locationFmt = color.New(color.FgCyan).SprintfFunc()
	messageFmt  = color.New(color.FgRed).SprintFunc()
)

// Error is a single diagnostic: which stage produced it, what went wrong,
// and where in the source.
type Error struct {
	Source  string
	Message string
	Pos     docpath.Position
}

// String renders the diagnostic as "[source] line:column: message".
func (e Error) String() string {
	return fmt.Sprintf("[%s] %d:%d: %s", e.Source, e.Pos.Line, e.Pos.Column, e.Message)
}

// ErrorList is an append-only ordered log of parse diagnostics. The zero
// value is ready to use.
type ErrorList struct {
	errors []Error
}

// Append adds a diagnostic to the end of the list.
func (l *ErrorList) Append(source, message string, pos docpath.Position) {
	l.errors = append(l.errors, Error{Source: source, Message: message, Pos: pos})
}

// HasErrors reports whether any diagnostic was appended.
func (l *ErrorList) HasErrors() bool {
	return len(l.errors) > 0
}

// Len returns the number of diagnostics.
func (l *ErrorList) Len() int {
	return len(l.errors)
}

// Errors returns the diagnostics in append order. The slice must not be
// modified.
func (l *ErrorList) Errors() []Error {
	return l.errors
}

// String renders the plain error listing: a count line followed by one
// line per diagnostic.
func (l *ErrorList) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%d errors.\n", len(l.errors))

	for _, err := range l.errors {
		sb.WriteString(err.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

// Fprint writes the error listing with color highlighting. Whether color
// codes are emitted follows the fatih/color globals (color.NoColor), which
// look at standard output, not at w.
func (l *ErrorList) Fprint(w io.Writer) {
	fmt.Fprintf(w, "%d errors.\n", len(l.errors))

	for _, err := range l.errors {
		fmt.Fprintf(w, "%s %s %s\n",
			sourceFmt("[%s]", err.Source),
			locationFmt("%d:%d:", err.Pos.Line, err.Pos.Column),
			messageFmt(err.Message))
	}
}
