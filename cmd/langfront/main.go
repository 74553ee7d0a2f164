// Program langfront is the command-line front end: it scans and parses
// each source file given on the command line, writing the artifacts
// named in SPEC_FULL.md §4.I next to each input.
//
// Usage: langfront [--sets] FILE.src [FILE.src ...]
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pborman/getopt"

	"github.com/langfront/compilerfront"
	"github.com/langfront/compilerfront/internal/token"
)

func main() {
	writeSets := getopt.BoolLong("sets", 0, "also write .out.first and .out.follow dumps")
	help := getopt.BoolLong("help", '?', "display help")
	getopt.SetParameters("FILE.src [FILE.src ...]")
	getopt.Parse()

	if *help {
		getopt.PrintUsage(os.Stderr)
		os.Exit(0)
	}

	files := getopt.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "langfront: no input file specified")
		os.Exit(1)
	}

	exit := 0
	analyzer := langfront.NewAnalyzer()
	for _, path := range files {
		if err := processFile(analyzer, path, *writeSets); err != nil {
			fmt.Fprintln(os.Stderr, err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func processFile(analyzer *langfront.Analyzer, path string, writeSets bool) error {
	if err := analyzer.Open(path); err != nil {
		return err
	}
	defer analyzer.Close()

	rawTokens := analyzer.RawTokens()

	if err := writeArtifact(path, ".outlextokens", formatTokens(rawTokens)); err != nil {
		return err
	}
	if err := writeArtifact(path, ".outlextokensflaci", formatTokensFlaci(rawTokens)); err != nil {
		return err
	}
	if err := writeArtifact(path, ".outlexerrors", formatErrors(rawTokens)); err != nil {
		return err
	}

	if writeSets {
		if err := writeArtifact(path, ".out.first", analyzer.GetFirstSet()); err != nil {
			return err
		}
		if err := writeArtifact(path, ".out.follow", analyzer.GetFollowSet()); err != nil {
			return err
		}
	}

	if err := analyzer.Parse(); err != nil {
		return err
	}
	return nil
}

func outputPath(path, ext string) string {
	if strings.HasSuffix(path, ".src") {
		return strings.TrimSuffix(path, ".src") + ext
	}
	return path + ext
}

func writeArtifact(path, ext, contents string) error {
	out := outputPath(path, ext)
	if err := os.WriteFile(out, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("langfront: couldn't write output file %s: %w", out, err)
	}
	return nil
}

// escapeLexeme turns embedded newlines in a lexeme into the two
// characters "\n", matching the artifact format of SPEC_FULL.md §4.I.
func escapeLexeme(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}

// formatTokens renders the bracketed "[KIND, lexeme, line:col]" dump,
// one output line per source line (blank source lines produce blank
// output lines).
func formatTokens(tokens []token.Token) string {
	var b strings.Builder
	currentLine := 1
	firstOnLine := true

	for _, t := range tokens {
		if t.Kind == token.END_OF_FILE {
			continue
		}
		for t.Line > currentLine {
			b.WriteByte('\n')
			currentLine++
			firstOnLine = true
		}
		if !firstOnLine {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "[%s, %s, %d:%d]", t.Kind, escapeLexeme(t.Lexeme), t.Line, t.Col)
		firstOnLine = false
	}
	return b.String()
}

// formatTokensFlaci renders one lexeme per line, omitting trivia and
// UNKNOWN tokens.
func formatTokensFlaci(tokens []token.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Kind.IsTrivia() || t.Kind == token.UNKNOWN || t.Kind == token.END_OF_FILE {
			continue
		}
		b.WriteString(escapeLexeme(t.Lexeme))
		b.WriteByte('\n')
	}
	return b.String()
}

// formatErrors renders one line per UNKNOWN token.
func formatErrors(tokens []token.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Kind != token.UNKNOWN {
			continue
		}
		fmt.Fprintf(&b, "Error: Unknown token '%s' at line %d, position %d\n", t.Lexeme, t.Line, t.Col)
	}
	return b.String()
}
