// Package pattern implements the five prefix-anchored regular
// expressions the scanner uses to recognize comments, numbers, and
// identifiers via maximal munch.
package pattern

import (
	"regexp"

	"github.com/langfront/compilerfront/internal/token"
)

// Matcher returns the length, in bytes, of the longest match anchored at
// the start of s, or 0 if the pattern does not match at all.
type Matcher func(s []byte) int

// The five lexical patterns, transcribed from the regular definitions
// of the teaching language's lexical grammar:
//
//	BLOCK_COMMENT   /* ... */ non-greedy, may span newlines
//	INLINE_COMMENT  // then anything until end-of-line (newline not consumed)
//	FLOAT_NUM       (nonZero digit* | 0) . (digit* nonZero | 0) (e (+|-)? (nonZero digit* | 0))?
//	INT_NUM         nonZero digit* | the single digit 0
//	ID              letter (letter | digit | _)*
var (
	reBlockComment  = regexp.MustCompile(`^/\*[\s\S]*?\*/`)
	reInlineComment = regexp.MustCompile(`^//[^\n]*`)
	reFloatNum      = regexp.MustCompile(`^([1-9][0-9]*|0)\.([0-9]*[1-9]|0)(e[+-]?([1-9][0-9]*|0))?`)
	reIntNum        = regexp.MustCompile(`^([1-9][0-9]*|0)`)
	reID            = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*`)
)

func matchLen(re *regexp.Regexp, s []byte) int {
	loc := re.FindIndex(s)
	if loc == nil {
		return 0
	}
	return loc[1]
}

// BlockComment matches "/* ... */", allowing embedded newlines.
func BlockComment(s []byte) int { return matchLen(reBlockComment, s) }

// InlineComment matches "//" through, but not including, the line
// terminator. The terminator is deliberately left unconsumed so it still
// counts toward the following token's line.
func InlineComment(s []byte) int { return matchLen(reInlineComment, s) }

// FloatNum matches a float literal: no leading zeros (except the literal
// 0), no trailing zeros in the fraction (except the literal 0), and an
// optional signed-integer exponent.
func FloatNum(s []byte) int { return matchLen(reFloatNum, s) }

// IntNum matches an integer literal: no leading zeros, except that "0"
// alone is valid. Note this also means "00" scans as two separate
// IntNum tokens (each single "0") — preserved intentionally, see
// DESIGN.md.
func IntNum(s []byte) int { return matchLen(reIntNum, s) }

// ID matches an identifier: a letter followed by any run of letters,
// digits, or underscores.
func ID(s []byte) int { return matchLen(reID, s) }

// Rule pairs a matcher with the token kind it produces when selected.
// Ordered block/inline/float/int/id — the declared tie-break order used
// by the scanner's longest-match rule. The float/int overlap needs no
// tie-break: a float literal always consumes strictly more bytes than
// its integer prefix alone, so the longest match picks FLOAT_NUM in any
// order.
var Rules = []struct {
	Kind    token.Kind
	Matcher Matcher
}{
	{token.BLOCK_COMMENT, BlockComment},
	{token.INLINE_COMMENT, InlineComment},
	{token.FLOAT_NUM, FloatNum},
	{token.INT_NUM, IntNum},
	{token.ID, ID},
}
