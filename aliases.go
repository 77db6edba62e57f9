package main

import (
	"slices"
	"strings"
)

type aliasEntry struct {
	prefix string
	target string
}

// AliasTable maps symbolic path prefixes (e.g. "@/", "@components/") to
// project-relative directories. Entries are ordered longest prefix first so
// "@components/Btn" resolves via "@components" before a bare "@" could match.
// The table is built once at startup and read-only afterwards.
type AliasTable struct {
	entries []aliasEntry
}

func NewAliasTable(mapping map[string]string) *AliasTable {
	entries := make([]aliasEntry, 0, len(mapping))
	for prefix, target := range mapping {
		entries = append(entries, aliasEntry{
			prefix: prefix,
			target: strings.TrimSuffix(NormalizeGlobPattern(target), "/"),
		})
	}

	slices.SortFunc(entries, func(a aliasEntry, b aliasEntry) int {
		if len(b.prefix) != len(a.prefix) {
			return len(b.prefix) - len(a.prefix)
		}
		return strings.Compare(a.prefix, b.prefix)
	})

	return &AliasTable{entries: entries}
}

// Apply rewrites specifier through the first (longest) matching alias prefix,
// preserving the remainder of the path unchanged. When no alias matches the
// specifier is returned as-is with matched == false. Pure, no I/O.
func (t *AliasTable) Apply(specifier string) (rewritten string, matched bool) {
	if t == nil {
		return specifier, false
	}
	for _, entry := range t.entries {
		if strings.HasPrefix(specifier, entry.prefix) {
			remainder := specifier[len(entry.prefix):]
			if remainder == "" {
				return entry.target, true
			}
			if strings.HasPrefix(remainder, "/") {
				return entry.target + remainder, true
			}
			return entry.target + "/" + remainder, true
		}
	}
	return specifier, false
}

// Len reports the number of registered aliases.
func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
