package grammar

import "testing"

func TestStartProducesExactlyProg(t *testing.T) {
	prods, ok := All[START]
	if !ok || len(prods) != 1 {
		t.Fatalf("All[START] = %v, want exactly one production", prods)
	}
	if len(prods[0]) != 1 || prods[0][0].IsTerminal || prods[0][0].NonTerm != prog {
		t.Errorf("All[START][0] = %v, want a single non-terminal production deriving prog", prods[0])
	}
}

func TestNonTerminalStringKnowsAllEnumeratedNames(t *testing.T) {
	for nt := START; nt < numNonTerminals; nt++ {
		if got := nt.String(); got == "?" {
			t.Errorf("NonTerminal(%d).String() = \"?\", missing from names", nt)
		}
	}
}

func TestEveryNonTerminalUpToSentinelHasProductions(t *testing.T) {
	for nt := START; nt < numNonTerminals; nt++ {
		if _, ok := All[nt]; !ok {
			t.Errorf("All is missing an entry for %s", nt)
		}
	}
}

func TestNumNonTerminalsMatchesSentinel(t *testing.T) {
	if NumNonTerminals != int(numNonTerminals) {
		t.Errorf("NumNonTerminals = %d, want %d", NumNonTerminals, int(numNonTerminals))
	}
}

func TestSymbolStringDelegatesByTag(t *testing.T) {
	if got := N(prog).String(); got != "prog" {
		t.Errorf("N(prog).String() = %q, want %q", got, "prog")
	}
}
