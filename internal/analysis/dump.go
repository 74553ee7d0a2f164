package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/langfront/compilerfront/internal/grammar"
	"github.com/langfront/compilerfront/internal/token"
)

// orderedNonTerminals returns every non-terminal defined in the grammar,
// sorted by name so dumps are deterministic across runs.
func orderedNonTerminals() []grammar.NonTerminal {
	nts := make([]grammar.NonTerminal, 0, len(grammar.All))
	for nt := range grammar.All {
		nts = append(nts, nt)
	}
	sort.Slice(nts, func(i, j int) bool { return nts[i].String() < nts[j].String() })
	return nts
}

// orderedKinds returns ks sorted by their String() form, for
// deterministic dump output.
func orderedKinds(ks map[token.Kind]bool) []token.Kind {
	out := make([]token.Kind, 0, len(ks))
	for k := range ks {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func formatTerminal(k token.Kind) string {
	if k == token.END_OF_FILE {
		return k.String()
	}
	return fmt.Sprintf("'%s'", k.String())
}

// DumpFirst renders first as "FIRST(<nt>)= [t1, t2, EPSILON]\n" lines,
// one per non-terminal, in a stable order.
func DumpFirst(first *FirstSet) string {
	var b strings.Builder
	for _, nt := range orderedNonTerminals() {
		parts := make([]string, 0)
		for _, k := range orderedKinds(first.Terminals(nt)) {
			parts = append(parts, formatTerminal(k))
		}
		if first.HasEpsilon(nt) {
			parts = append(parts, "EPSILON")
		}
		fmt.Fprintf(&b, "FIRST(<%s>)= [%s]\n", nt, strings.Join(parts, ", "))
	}
	return b.String()
}

// DumpFollow renders follow as "FOLLOW(<nt>)= [t1, t2]\n" lines, one per
// non-terminal, in a stable order.
func DumpFollow(follow FollowSet) string {
	var b strings.Builder
	for _, nt := range orderedNonTerminals() {
		parts := make([]string, 0)
		for _, k := range orderedKinds(follow[nt]) {
			parts = append(parts, formatTerminal(k))
		}
		fmt.Fprintf(&b, "FOLLOW(<%s>)= [%s]\n", nt, strings.Join(parts, ", "))
	}
	return b.String()
}
