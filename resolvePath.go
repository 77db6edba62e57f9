package main

import (
	"os"
	"path/filepath"
	"strings"
)

// Probe order for extension inference. Script extensions take priority over
// style extensions; within scripts the order mirrors the build tooling the
// analyzed projects use (.tsx before .ts before the JS variants).
var probeExtensions = []string{".tsx", ".ts", ".jsx", ".js", ".vue", ".d.ts", ".css", ".scss", ".less", ".sass"}

// Locator turns raw import specifiers into concrete files under the project
// root. It performs bounded, synchronous existence checks only; it never
// follows the resolved file's own imports.
type Locator struct {
	root    string
	aliases *AliasTable
}

func NewLocator(projectRoot string, aliases *AliasTable) *Locator {
	return &Locator{
		root:    strings.TrimSuffix(NormalizePathForInternal(projectRoot), "/"),
		aliases: aliases,
	}
}

func isRelativeSpecifier(specifier string) bool {
	return specifier == "." || specifier == ".." ||
		strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}

// IsExternal reports whether specifier names a package rather than a project
// file. A specifier is local when it is relative, project-absolute, or
// rewritten by a registered alias; everything else is external and must never
// trigger a file-system probe.
func (l *Locator) IsExternal(specifier string) bool {
	if _, matched := l.aliases.Apply(specifier); matched {
		return false
	}
	return !isRelativeSpecifier(specifier) && !strings.HasPrefix(specifier, "/")
}

func statFile(path string) bool {
	info, err := os.Stat(DenormalizePathForOS(path))
	return err == nil && !info.IsDir()
}

func statDir(path string) bool {
	info, err := os.Stat(DenormalizePathForOS(path))
	return err == nil && info.IsDir()
}

// Locate resolves a local specifier against the importing file's directory
// (relative forms) or the project root (alias-derived and project-absolute
// forms). Resolution order: exact literal path, literal path with each
// supported extension appended, then index.<ext> inside a matching directory.
// The first existing file wins. External specifiers are the caller's concern.
func (l *Locator) Locate(specifier string, importerDir string) (string, bool) {
	base := ""

	if rewritten, matched := l.aliases.Apply(specifier); matched {
		base = filepath.Join(l.root, rewritten)
	} else if isRelativeSpecifier(specifier) {
		base = filepath.Join(importerDir, specifier)
	} else if strings.HasPrefix(specifier, "/") {
		base = filepath.Join(l.root, strings.TrimPrefix(specifier, "/"))
	} else {
		return "", false
	}

	base = NormalizePathForInternal(filepath.Clean(base))

	if statFile(base) {
		return base, true
	}

	for _, ext := range probeExtensions {
		if statFile(base + ext) {
			return NormalizePathForInternal(base + ext), true
		}
	}

	if statDir(base) {
		for _, ext := range probeExtensions {
			indexPath := base + "/index" + ext
			if statFile(indexPath) {
				return NormalizePathForInternal(indexPath), true
			}
		}
	}

	return "", false
}

// ExternalPackageName extracts the npm package name from an external
// specifier, keeping the scope segment for scoped packages
// ("@scope/pkg/sub" -> "@scope/pkg", "lodash/fp" -> "lodash").
func ExternalPackageName(specifier string) string {
	splitCount := 2
	if strings.HasPrefix(specifier, "@") {
		splitCount = 3
	}
	parts := strings.SplitN(specifier, "/", splitCount)
	return strings.Join(parts[:min(len(parts), splitCount-1)], "/")
}
