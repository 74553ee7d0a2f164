// Package scanner implements the maximal-munch lexical scanner: a
// single-threaded, stateful tokenizer driven by the pattern matchers in
// internal/pattern.
package scanner

import (
	"github.com/langfront/compilerfront/internal/pattern"
	"github.com/langfront/compilerfront/internal/token"
)

// tabSize is the column width a tab character advances to the next
// multiple of.
const tabSize = 4

// Scanner holds the internal state of the lexer: a byte cursor, the
// current line/column, and a view onto the unconsumed suffix of input.
// A Scanner is not re-entrant; Next must not be called concurrently.
type Scanner struct {
	path string
	data []byte
	pos  int // next unconsumed byte
	line int // current line, 1-based
	col  int // current column, 1-based
}

// New creates a Scanner over data, which originated from path (used only
// to stamp emitted tokens; may be empty).
func New(data []byte, path string) *Scanner {
	return &Scanner{
		path: path,
		data: data,
		pos:  0,
		line: 1,
		col:  1,
	}
}

// Progress returns consumed bytes divided by total bytes, a monotone
// float in [0,1].
func (s *Scanner) Progress() float32 {
	if len(s.data) == 0 {
		return 1
	}
	return float32(s.pos) / float32(len(s.data))
}

// advanceByte moves the line/column counters past a single consumed
// byte, applying tab expansion. Used both for whitespace skipping and
// for walking the bytes of a matched lexeme, so a block comment
// correctly advances the line counter.
func (s *Scanner) advanceByte(c byte) {
	switch c {
	case '\n':
		s.line++
		s.col = 1
	case '\t':
		s.col += tabSize - ((s.col - 1) % tabSize)
	case '\r':
		// no column change
	default:
		s.col++
	}
}

func (s *Scanner) skipWhitespace() {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			break
		}
		s.advanceByte(c)
		s.pos++
	}
}

func (s *Scanner) makeToken(kind token.Kind, lexeme string, line, col int) token.Token {
	return token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Line:   line,
		Col:    col,
		Path:   s.path,
	}
}

// consume advances the cursor and position counters across the given
// lexeme bytes, applying the same tab/newline accounting as
// skipWhitespace.
func (s *Scanner) consume(lexeme []byte) {
	for _, c := range lexeme {
		s.advanceByte(c)
	}
	s.pos += len(lexeme)
}

// Next returns the next token from the input. Once the cursor reaches
// end of buffer, every subsequent call returns an END_OF_FILE token
// whose lexeme is empty and whose line/column reflect the current
// position.
func (s *Scanner) Next() token.Token {
	s.skipWhitespace()

	line, col := s.line, s.col

	if s.pos >= len(s.data) {
		return s.makeToken(token.END_OF_FILE, "", line, col)
	}

	suffix := s.data[s.pos:]

	// Longest-match rule: evaluate every pattern, keep the longest
	// match, break ties by declared rule order (block, inline, float,
	// int, id).
	bestLen := 0
	bestKind := token.UNKNOWN
	for _, r := range pattern.Rules {
		if n := r.Matcher(suffix); n > bestLen {
			bestLen = n
			bestKind = r.Kind
		}
	}

	if bestLen > 0 {
		lexeme := suffix[:bestLen]
		kind := bestKind
		text := string(lexeme)
		if kind == token.ID {
			if kw, ok := token.Keywords[text]; ok {
				kind = kw
			}
		}
		s.consume(lexeme)
		return s.makeToken(kind, text, line, col)
	}

	// No pattern matched: try the operator/punctuator table, walked in
	// declared (descending-length, priority) order.
	for _, op := range token.Operators {
		if hasPrefix(suffix, op.Lexeme) {
			s.consume([]byte(op.Lexeme))
			return s.makeToken(op.Kind, op.Lexeme, line, col)
		}
	}

	// Unknown byte: emit it alone and advance past it.
	c := suffix[0]
	s.consume(suffix[:1])
	return s.makeToken(token.UNKNOWN, string(c), line, col)
}

func hasPrefix(s []byte, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}
