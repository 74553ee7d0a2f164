// Package diag formats syntax-error diagnostics: the offending token's
// source line together with a caret/tilde underline.
package diag

import (
	"fmt"
	"strings"

	"github.com/langfront/compilerfront/internal/token"
)

// LineSource is satisfied by anything that can hand back a line's bytes
// by 1-based line number (internal/source.Buffer implements it).
type LineSource interface {
	Line(n int) []byte
}

// Format renders a syntax error at t, fetching its source line from src
// and composing:
//
//	<path>:<line>:<col>: Syntax error: <message>
//	  <line>  |  <line text, leading whitespace stripped>
//	          |  <caret underline>
func Format(src LineSource, t token.Token, message string) string {
	line := strings.TrimLeft(string(src.Line(t.Line)), " \t")
	underline := caretUnderline(t)

	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: Syntax error: %s\n", t.Path, t.Line, t.Col, message)
	fmt.Fprintf(&b, "  %d  |  %s\n", t.Line, line)
	fmt.Fprintf(&b, "      |  %s\n", underline)
	return b.String()
}

// caretUnderline builds (t.Col - 1) spaces, a '^', then
// max(0, len(t.Lexeme)-1) tildes.
func caretUnderline(t token.Token) string {
	var b strings.Builder
	for i := 0; i < t.Col-1; i++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	n := len(t.Lexeme) - 1
	for i := 0; i < n; i++ {
		b.WriteByte('~')
	}
	return b.String()
}
