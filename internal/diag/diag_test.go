package diag

import (
	"strings"
	"testing"

	"github.com/langfront/compilerfront/internal/token"
)

type fakeSource struct {
	lines map[int]string
}

func (f fakeSource) Line(n int) []byte {
	return []byte(f.lines[n])
}

func TestFormatIncludesLocationAndMessage(t *testing.T) {
	src := fakeSource{lines: map[int]string{2: "  x := 1 +;"}}
	tk := token.Token{Kind: token.SEMICOLON, Lexeme: ";", Line: 2, Col: 11, Path: "prog.src"}

	got := Format(src, tk, "unexpected token")

	if !strings.Contains(got, "prog.src:2:11: Syntax error: unexpected token") {
		t.Errorf("Format output missing location/message line:\n%s", got)
	}
	if !strings.Contains(got, "x := 1 +;") {
		t.Errorf("Format output missing stripped source line:\n%s", got)
	}
}

func TestCaretUnderlineSpansMultiByteLexeme(t *testing.T) {
	tk := token.Token{Kind: token.LESS_EQUAL, Lexeme: "<=", Line: 1, Col: 5}
	got := caretUnderline(tk)
	want := "    ^~" // 4 spaces, caret, one tilde for the second byte
	if got != want {
		t.Errorf("caretUnderline = %q, want %q", got, want)
	}
}

func TestCaretUnderlineSingleByteLexemeHasNoTilde(t *testing.T) {
	tk := token.Token{Kind: token.SEMICOLON, Lexeme: ";", Line: 1, Col: 1}
	got := caretUnderline(tk)
	if got != "^" {
		t.Errorf("caretUnderline = %q, want %q", got, "^")
	}
}
