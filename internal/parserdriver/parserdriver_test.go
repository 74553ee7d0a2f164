package parserdriver

import (
	"testing"

	"github.com/openconfig/gnmi/errdiff"

	"github.com/langfront/compilerfront/internal/analysis"
	"github.com/langfront/compilerfront/internal/token"
)

type fakeSource struct{}

func (fakeSource) Line(n int) []byte { return []byte("main do end") }

func buildTable(t *testing.T) analysis.Table {
	t.Helper()
	first := analysis.ComputeFirst()
	follow := analysis.ComputeFollow(first)
	return analysis.BuildTable(first, follow)
}

func tk(kind token.Kind, lexeme string, line, col int) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Line: line, Col: col, Path: "test.src"}
}

func TestFilterTriviaDropsCommentsAndAddsEOF(t *testing.T) {
	in := []token.Token{
		tk(token.BLOCK_COMMENT, "/* c */", 1, 1),
		tk(token.MAIN, "main", 1, 9),
		tk(token.INLINE_COMMENT, "// x", 1, 14),
	}
	out := FilterTrivia(in)
	if len(out) != 2 {
		t.Fatalf("FilterTrivia returned %d tokens, want 2 (MAIN + EOF): %+v", len(out), out)
	}
	if out[0].Kind != token.MAIN {
		t.Errorf("out[0].Kind = %s, want MAIN", out[0].Kind)
	}
	if out[1].Kind != token.END_OF_FILE {
		t.Errorf("out[1].Kind = %s, want END_OF_FILE", out[1].Kind)
	}
}

func TestFilterTriviaLeavesExistingEOFAlone(t *testing.T) {
	in := []token.Token{
		tk(token.MAIN, "main", 1, 1),
		tk(token.END_OF_FILE, "", 1, 5),
	}
	out := FilterTrivia(in)
	if len(out) != 2 {
		t.Fatalf("FilterTrivia added a second EOF: %+v", out)
	}
}

// S1/minimal acceptance: "main do end" with no local declarations and
// an empty statement list is a complete, valid program.
func TestParseAcceptsMinimalProgram(t *testing.T) {
	table := buildTable(t)
	d := New(table, fakeSource{})

	tokens := []token.Token{
		tk(token.MAIN, "main", 1, 1),
		tk(token.DO, "do", 1, 6),
		tk(token.END, "end", 1, 9),
		tk(token.END_OF_FILE, "", 1, 12),
	}
	if err := d.Parse(tokens); err != nil {
		t.Errorf("Parse rejected a valid minimal program: %v", err)
	}
}

// S6 — syntax error scenario: a class declaration missing its required
// trailing semicolon must surface a formatted *SyntaxError naming the
// expected terminal.
func TestParseReportsSyntaxErrorOnMissingClassSemicolon(t *testing.T) {
	table := buildTable(t)
	d := New(table, fakeSource{})

	tokens := []token.Token{
		tk(token.CLASS, "class", 1, 1),
		tk(token.ID, "A", 1, 7),
		tk(token.OPEN_BRACE, "{", 1, 9),
		tk(token.CLOSE_BRACE, "}", 1, 10),
		tk(token.MAIN, "main", 1, 12),
		tk(token.DO, "do", 1, 17),
		tk(token.END, "end", 1, 20),
		tk(token.END_OF_FILE, "", 1, 23),
	}
	err := d.Parse(tokens)
	if err == nil {
		t.Fatal("Parse accepted a class declaration missing its trailing semicolon")
	}
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("Parse returned %T, want *SyntaxError", err)
	}
	if diff := errdiff.Substring(se, "expected token of kind SEMICOLON"); diff != "" {
		t.Error(diff)
	}
	if se.Token.Kind != token.MAIN {
		t.Errorf("SyntaxError.Token.Kind = %s, want MAIN (the unexpected token)", se.Token.Kind)
	}
	if se.Formatted == "" {
		t.Error("SyntaxError.Formatted is empty")
	}
}

func TestParseRejectsTokenBeforeExpectedEOF(t *testing.T) {
	table := buildTable(t)
	d := New(table, fakeSource{})

	tokens := []token.Token{
		tk(token.MAIN, "main", 1, 1),
		tk(token.DO, "do", 1, 6),
		tk(token.END, "end", 1, 9),
		tk(token.SEMICOLON, ";", 1, 12),
		tk(token.END_OF_FILE, "", 1, 13),
	}
	err := d.Parse(tokens)
	if err == nil {
		t.Fatal("Parse accepted a token stream with an extra token after a complete program")
	}
	if diff := errdiff.Substring(err, "expected token of kind END_OF_FILE"); diff != "" {
		t.Error(diff)
	}
}

func TestParseRejectsUndefinedNonTerminalLookaheadCell(t *testing.T) {
	table := buildTable(t)
	d := New(table, fakeSource{})

	// A bare semicolon can never begin a program.
	tokens := []token.Token{
		tk(token.SEMICOLON, ";", 1, 1),
		tk(token.END_OF_FILE, "", 1, 2),
	}
	err := d.Parse(tokens)
	if err == nil {
		t.Fatal("Parse accepted a program starting with a bare semicolon")
	}
	if diff := errdiff.Substring(err, "no production"); diff != "" {
		t.Error(diff)
	}
}
