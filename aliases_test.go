package main

import (
	"testing"
)

func TestAliasLongestPrefixWins(t *testing.T) {
	table := NewAliasTable(map[string]string{
		"@":           "src",
		"@components": "src/components",
	})

	rewritten, matched := table.Apply("@components/Btn")

	if !matched {
		t.Errorf("Apply(@components/Btn) did not match")
		return
	}
	if rewritten != "src/components/Btn" {
		t.Errorf("Apply(@components/Btn) = %q, should be 'src/components/Btn'", rewritten)
	}
}

func TestAliasShorterPrefixStillMatches(t *testing.T) {
	table := NewAliasTable(map[string]string{
		"@":           "src",
		"@components": "src/components",
	})

	rewritten, matched := table.Apply("@/utils/date")

	if !matched {
		t.Errorf("Apply(@/utils/date) did not match")
		return
	}
	if rewritten != "src/utils/date" {
		t.Errorf("Apply(@/utils/date) = %q, should be 'src/utils/date'", rewritten)
	}
}

func TestAliasNoMatchReturnsUnchanged(t *testing.T) {
	table := NewAliasTable(map[string]string{"@": "src"})

	rewritten, matched := table.Apply("react")

	if matched {
		t.Errorf("Apply(react) matched, should not")
	}
	if rewritten != "react" {
		t.Errorf("Apply(react) = %q, should be unchanged", rewritten)
	}
}

func TestAliasRemainderPreserved(t *testing.T) {
	table := NewAliasTable(map[string]string{"~styles/": "src/styles/"})

	rewritten, matched := table.Apply("~styles/themes/dark.scss")

	if !matched || rewritten != "src/styles/themes/dark.scss" {
		t.Errorf("Apply(~styles/themes/dark.scss) = %q, %v", rewritten, matched)
	}
}

func TestAliasEqualLengthPrefixesDeterministic(t *testing.T) {
	// Same-length prefixes fall back to lexicographic order, so repeated
	// construction from the same map behaves identically.
	for run := 0; run < 5; run++ {
		table := NewAliasTable(map[string]string{
			"#a": "src/a",
			"#b": "src/b",
		})

		if rewritten, _ := table.Apply("#a/x"); rewritten != "src/a/x" {
			t.Errorf("Apply(#a/x) = %q, should be 'src/a/x'", rewritten)
		}
		if rewritten, _ := table.Apply("#b/x"); rewritten != "src/b/x" {
			t.Errorf("Apply(#b/x) = %q, should be 'src/b/x'", rewritten)
		}
	}
}

func TestNilAliasTable(t *testing.T) {
	var table *AliasTable

	rewritten, matched := table.Apply("./local")

	if matched || rewritten != "./local" {
		t.Errorf("nil table Apply = %q, %v", rewritten, matched)
	}
	if table.Len() != 0 {
		t.Errorf("nil table Len = %d, should be 0", table.Len())
	}
}
