// Package analysis computes the FIRST set, FOLLOW set, and LL(1) parse
// table for internal/grammar, once and eagerly, using fixed-point
// iteration.
package analysis

import (
	"fmt"

	"github.com/langfront/compilerfront/internal/grammar"
	"github.com/langfront/compilerfront/internal/token"
)

// FirstSet maps each non-terminal to the set of terminals (plus a
// distinguished epsilon flag) that may begin a string it derives.
type FirstSet struct {
	terminals map[grammar.NonTerminal]map[token.Kind]bool
	epsilon   map[grammar.NonTerminal]bool
}

// Terminals returns the terminal members of FIRST(nt), excluding
// epsilon.
func (f *FirstSet) Terminals(nt grammar.NonTerminal) map[token.Kind]bool {
	return f.terminals[nt]
}

// HasEpsilon reports whether epsilon is a member of FIRST(nt).
func (f *FirstSet) HasEpsilon(nt grammar.NonTerminal) bool {
	return f.epsilon[nt]
}

func (f *FirstSet) addTerminal(nt grammar.NonTerminal, k token.Kind) bool {
	if f.terminals[nt] == nil {
		f.terminals[nt] = map[token.Kind]bool{}
	}
	if f.terminals[nt][k] {
		return false
	}
	f.terminals[nt][k] = true
	return true
}

func (f *FirstSet) addEpsilon(nt grammar.NonTerminal) bool {
	if f.epsilon[nt] {
		return false
	}
	f.epsilon[nt] = true
	return true
}

// FollowSet maps each non-terminal to the set of terminals that may
// immediately follow it in some sentential form. Epsilon is never a
// member of a FOLLOW set.
type FollowSet map[grammar.NonTerminal]map[token.Kind]bool

func (fs FollowSet) add(nt grammar.NonTerminal, k token.Kind) bool {
	if fs[nt] == nil {
		fs[nt] = map[token.Kind]bool{}
	}
	if fs[nt][k] {
		return false
	}
	fs[nt][k] = true
	return true
}

// Table is the partial function (NonTerminal, token.Kind) -> Production
// materialized from FIRST/FOLLOW. A well-formed LL(1) grammar yields at
// most one production per cell.
type Table map[grammar.NonTerminal]map[token.Kind]grammar.Production

// ConflictError is panicked by BuildTable when the grammar is not
// LL(1): two distinct productions of the same non-terminal both claim
// the same lookahead cell. This indicates a defect in the grammar
// constant, not a runtime condition callers can recover from.
type ConflictError struct {
	NonTerm    grammar.NonTerminal
	Lookahead  token.Kind
	Existing   grammar.Production
	Conflicted grammar.Production
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("grammar is not LL(1): table[%s][%s] already set to %v, cannot also set %v",
		e.NonTerm, e.Lookahead, e.Existing, e.Conflicted)
}

// ComputeFirst runs the FIRST-set fixed-point computation of
// SPEC_FULL.md §4.F over grammar.All.
func ComputeFirst() *FirstSet {
	first := &FirstSet{
		terminals: map[grammar.NonTerminal]map[token.Kind]bool{},
		epsilon:   map[grammar.NonTerminal]bool{},
	}

	changed := true
	for changed {
		changed = false
		for nt, prods := range grammar.All {
			for _, p := range prods {
				if len(p) == 0 {
					if first.addEpsilon(nt) {
						changed = true
					}
					continue
				}

				allNullable := true
				for _, sym := range p {
					if sym.IsTerminal {
						if first.addTerminal(nt, sym.Terminal) {
							changed = true
						}
						allNullable = false
						break
					}
					for k := range first.terminals[sym.NonTerm] {
						if first.addTerminal(nt, k) {
							changed = true
						}
					}
					if !first.epsilon[sym.NonTerm] {
						allNullable = false
						break
					}
				}
				if allNullable {
					if first.addEpsilon(nt) {
						changed = true
					}
				}
			}
		}
	}

	return first
}

// firstOfSequence computes FIRST(X1 X2 ... Xn) (the ε-propagating set
// used both by FOLLOW construction and table construction): the
// terminal union of each symbol's FIRST until a non-nullable symbol is
// reached, plus epsilon if every symbol in the sequence is nullable
// (including the empty sequence, which is trivially all-nullable).
func firstOfSequence(first *FirstSet, seq grammar.Production) (terms map[token.Kind]bool, hasEps bool) {
	terms = map[token.Kind]bool{}
	hasEps = true
	for _, sym := range seq {
		if sym.IsTerminal {
			terms[sym.Terminal] = true
			hasEps = false
			break
		}
		for k := range first.terminals[sym.NonTerm] {
			terms[k] = true
		}
		if !first.epsilon[sym.NonTerm] {
			hasEps = false
			break
		}
	}
	return terms, hasEps
}

// ComputeFollow runs the FOLLOW-set fixed-point computation of
// SPEC_FULL.md §4.F, seeding FOLLOW(START) = {END_OF_FILE}.
func ComputeFollow(first *FirstSet) FollowSet {
	follow := FollowSet{}
	for nt := range grammar.All {
		follow[nt] = map[token.Kind]bool{}
	}
	follow.add(grammar.START, token.END_OF_FILE)

	changed := true
	for changed {
		changed = false
		for nt, prods := range grammar.All {
			for _, p := range prods {
				for i, sym := range p {
					if sym.IsTerminal {
						continue
					}
					b := sym.NonTerm
					beta := p[i+1:]
					terms, nullable := firstOfSequence(first, beta)
					for k := range terms {
						if follow.add(b, k) {
							changed = true
						}
					}
					if nullable {
						for k := range follow[nt] {
							if follow.add(b, k) {
								changed = true
							}
						}
					}
				}
			}
		}
	}

	return follow
}

// BuildTable materializes the LL(1) parse table from first and follow.
// It panics with a *ConflictError if the grammar requires two
// productions in the same cell — a build-time defect in the grammar
// constant, never expected for the grammar shipped in internal/grammar.
func BuildTable(first *FirstSet, follow FollowSet) Table {
	table := Table{}

	set := func(nt grammar.NonTerminal, k token.Kind, p grammar.Production) {
		if table[nt] == nil {
			table[nt] = map[token.Kind]grammar.Production{}
		}
		if existing, ok := table[nt][k]; ok {
			if !productionsEqual(existing, p) {
				panic(&ConflictError{NonTerm: nt, Lookahead: k, Existing: existing, Conflicted: p})
			}
			return
		}
		table[nt][k] = p
	}

	for nt, prods := range grammar.All {
		for _, p := range prods {
			terms, hasEps := firstOfSequence(first, p)
			for k := range terms {
				set(nt, k, p)
			}
			if hasEps {
				for k := range follow[nt] {
					set(nt, k, p)
				}
			}
		}
	}

	return table
}

func productionsEqual(a, b grammar.Production) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Lookup returns the production for (nt, lookahead), or nil, false if
// the cell is undefined.
func (t Table) Lookup(nt grammar.NonTerminal, lookahead token.Kind) (grammar.Production, bool) {
	row, ok := t[nt]
	if !ok {
		return nil, false
	}
	p, ok := row[lookahead]
	return p, ok
}
