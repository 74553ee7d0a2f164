// Package parserdriver implements the table-driven LL(1) pushdown
// automaton: its only memory is a symbol stack and a cursor into the
// filtered token stream.
package parserdriver

import (
	"fmt"

	"github.com/langfront/compilerfront/internal/analysis"
	"github.com/langfront/compilerfront/internal/diag"
	"github.com/langfront/compilerfront/internal/grammar"
	"github.com/langfront/compilerfront/internal/token"
)

// SyntaxError is returned by Parse on the first parse failure. It
// carries the offending token and a formatted diagnostic (source line
// plus caret) ready to print.
type SyntaxError struct {
	Token     token.Token
	Message   string
	Formatted string
}

func (e *SyntaxError) Error() string { return e.Formatted }

// Driver runs the LL(1) parse of a pre-filtered, EOF-terminated token
// slice against a parse table.
type Driver struct {
	table analysis.Table
	src   diag.LineSource
}

// New builds a Driver for the given parse table. src supplies source
// lines for diagnostics.
func New(table analysis.Table, src diag.LineSource) *Driver {
	return &Driver{table: table, src: src}
}

// FilterTrivia drops BLOCK_COMMENT and INLINE_COMMENT tokens and
// appends a terminal END_OF_FILE sentinel if the input did not already
// end with one.
func FilterTrivia(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens)+1)
	for _, t := range tokens {
		if t.Kind.IsTrivia() {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 || out[len(out)-1].Kind != token.END_OF_FILE {
		last := token.Token{Kind: token.END_OF_FILE}
		if len(out) > 0 {
			last.Line, last.Col, last.Path = out[len(out)-1].Line, out[len(out)-1].Col, out[len(out)-1].Path
		}
		out = append(out, last)
	}
	return out
}

// Parse drives the stack machine over tokens (already filtered and
// EOF-terminated; see FilterTrivia) and returns nil on acceptance, or a
// *SyntaxError on the first mismatch — either an unexpected terminal, an
// undefined table cell, or unconsumed trailing tokens.
func (d *Driver) Parse(tokens []token.Token) error {
	stack := []grammar.Symbol{grammar.T(token.END_OF_FILE), grammar.N(grammar.START)}
	i := 0

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		a := tokens[i]

		if top.IsTerminal {
			if top.Terminal == a.Kind {
				stack = stack[:len(stack)-1]
				i++
				continue
			}
			return d.syntaxError(a, fmt.Sprintf("expected token of kind %s, but got %s", top.Terminal, a.Kind))
		}

		prod, ok := d.table.Lookup(top.NonTerm, a.Kind)
		if !ok {
			return d.syntaxError(a, fmt.Sprintf("no production for non-terminal <%s> with lookahead token of kind %s", top.NonTerm, a.Kind))
		}
		stack = stack[:len(stack)-1]
		for k := len(prod) - 1; k >= 0; k-- {
			stack = append(stack, prod[k])
		}
	}

	if i != len(tokens) {
		return d.syntaxError(tokens[i], fmt.Sprintf("expected end of file, but got %d extra tokens", len(tokens)-i))
	}

	return nil
}

func (d *Driver) syntaxError(t token.Token, message string) *SyntaxError {
	return &SyntaxError{
		Token:     t,
		Message:   message,
		Formatted: diag.Format(d.src, t, message),
	}
}
