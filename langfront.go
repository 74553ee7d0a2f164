// Package langfront wires the scanner, grammar analysis, and parser
// driver behind the external interfaces of SPEC_FULL.md §6: a scanner
// surface (Open/Close/Next/Progress/Line) and a parser surface
// (constructor/Open/Parse/GetFirstSet/GetFollowSet).
package langfront

import (
	"github.com/langfront/compilerfront/internal/analysis"
	"github.com/langfront/compilerfront/internal/parserdriver"
	"github.com/langfront/compilerfront/internal/scanner"
	"github.com/langfront/compilerfront/internal/source"
	"github.com/langfront/compilerfront/internal/token"
)

// Scanner exposes the lexical front end over a single opened source
// file. It is not safe for concurrent use.
type Scanner struct {
	buf source.Buffer
	scn *scanner.Scanner
}

// Open loads path and prepares to scan it, closing any previously open
// file first. It returns the number of bytes read.
func (s *Scanner) Open(path string) (int, error) {
	s.Close()
	n, err := s.buf.Open(path)
	if err != nil {
		return 0, err
	}
	s.scn = scanner.New(s.buf.Bytes(), s.buf.Path())
	return n, nil
}

// Close releases the underlying source buffer.
func (s *Scanner) Close() error {
	s.scn = nil
	return s.buf.Close()
}

// Next returns the next token from the input, or a sequence of
// END_OF_FILE tokens once the input is exhausted.
func (s *Scanner) Next() token.Token {
	return s.scn.Next()
}

// Progress returns consumed bytes divided by total bytes.
func (s *Scanner) Progress() float32 {
	return s.scn.Progress()
}

// Line returns the 1-based source line n, its trailing newline
// stripped. n out of range panics.
func (s *Scanner) Line(n int) []byte {
	return s.buf.Line(n)
}

// Analyzer builds the FIRST set, FOLLOW set, and LL(1) parse table
// once at construction time and drives the parser over files opened
// with Open. A single Analyzer's grammar artifacts are read-only after
// construction and may be shared by parsers running concurrently, each
// with its own Scanner and token slice — see SPEC_FULL.md §5.
type Analyzer struct {
	first  *analysis.FirstSet
	follow analysis.FollowSet
	table  analysis.Table

	buf       source.Buffer
	rawTokens []token.Token // every scanned token, trivia included, EOF-terminated
	tokens    []token.Token // same, with trivia filtered, ready for Parse
}

// NewAnalyzer computes FIRST, FOLLOW, and the parse table. It panics
// only if the compile-time grammar constant is not LL(1) — a build-time
// defect, never expected for the grammar shipped in internal/grammar.
func NewAnalyzer() *Analyzer {
	first := analysis.ComputeFirst()
	follow := analysis.ComputeFollow(first)
	table := analysis.BuildTable(first, follow)
	return &Analyzer{first: first, follow: follow, table: table}
}

// Open scans path, filters trivia tokens, and appends an END_OF_FILE
// sentinel, ready for Parse.
func (a *Analyzer) Open(path string) error {
	a.buf.Close()
	if _, err := a.buf.Open(path); err != nil {
		return err
	}

	scn := scanner.New(a.buf.Bytes(), a.buf.Path())
	var tokens []token.Token
	for {
		t := scn.Next()
		tokens = append(tokens, t)
		if t.Kind == token.END_OF_FILE {
			break
		}
	}
	a.rawTokens = tokens
	a.tokens = parserdriver.FilterTrivia(tokens)
	return nil
}

// Close releases the analyzer's open source buffer.
func (a *Analyzer) Close() error {
	a.rawTokens = nil
	a.tokens = nil
	return a.buf.Close()
}

// RawTokens returns every token the scanner produced on the most recent
// Open call, including trivia, EOF-terminated.
func (a *Analyzer) RawTokens() []token.Token {
	return a.rawTokens
}

// Tokens returns the filtered, EOF-terminated token slice produced by
// the most recent Open call.
func (a *Analyzer) Tokens() []token.Token {
	return a.tokens
}

// Parse drives the LL(1) parser over the tokens from the most recent
// Open call. It returns nil on acceptance, or a *parserdriver.SyntaxError
// on the first syntax error.
func (a *Analyzer) Parse() error {
	d := parserdriver.New(a.table, &a.buf)
	return d.Parse(a.tokens)
}

// GetFirstSet returns a textual dump of every non-terminal's FIRST set,
// one line per non-terminal, suitable for tooling.
func (a *Analyzer) GetFirstSet() string {
	return analysis.DumpFirst(a.first)
}

// GetFollowSet returns a textual dump of every non-terminal's FOLLOW
// set, one line per non-terminal, suitable for tooling.
func (a *Analyzer) GetFollowSet() string {
	return analysis.DumpFollow(a.follow)
}
