package main

import (
	"strings"
)

type Category uint8

const (
	CategoryComponent Category = iota
	CategoryHook
	CategoryUtil
	CategoryType
	CategoryStyle
	CategoryExternal
	CategoryUnresolved
)

// CategoryDisplayOrder is the fixed bucket order used by the report.
var CategoryDisplayOrder = []Category{
	CategoryComponent,
	CategoryHook,
	CategoryUtil,
	CategoryType,
	CategoryStyle,
	CategoryExternal,
	CategoryUnresolved,
}

func CategoryToString(category Category) string {
	switch category {
	case CategoryComponent:
		return "component"
	case CategoryHook:
		return "hook"
	case CategoryUtil:
		return "util"
	case CategoryType:
		return "type"
	case CategoryStyle:
		return "style"
	case CategoryExternal:
		return "external"
	case CategoryUnresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

func hasStyleExtension(path string) bool {
	for _, ext := range []string{".css", ".scss", ".less", ".sass"} {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func hasSegment(segments []string, name string) bool {
	for _, segment := range segments {
		if segment == name {
			return true
		}
	}
	return false
}

// looksLikeHookName reports whether a file basename follows the React hook
// naming convention: a "use" prefix followed by an upper-case letter
// (useUser, useFetch). A plain "user.ts" must not match.
func looksLikeHookName(base string) bool {
	if !strings.HasPrefix(base, "use") || len(base) < 4 {
		return false
	}
	next := base[3]
	return next >= 'A' && next <= 'Z'
}

// Classify assigns the semantic category for one resolved dependency. Segment
// rules read importPath, the alias-rewritten specifier as the author wrote it;
// extension rules read resolvedPath, which carries the extension even when the
// specifier omits it. A "./utils/date" import stays util no matter which
// directory the target file sits in. Pure function, file content is never
// inspected. Rules are ordered and the first match wins.
func Classify(importPath string, resolvedPath string, isExternal bool, mode AnalyzeMode, fileKind FileKind) Category {
	if isExternal {
		return CategoryExternal
	}

	extPath := resolvedPath
	if extPath == "" {
		extPath = importPath
	}

	if mode == SimpleMode {
		// Simple mode skips convention-based refinement.
		if hasStyleExtension(extPath) {
			return CategoryStyle
		}
		return CategoryUtil
	}

	segments := pathSegments(importPath)
	base := ""
	if len(segments) > 0 {
		base = segments[len(segments)-1]
		base = strings.TrimSuffix(base, segmentExtension(base))
		segments = segments[:len(segments)-1]
	}

	switch {
	case hasSegment(segments, "components"):
		return CategoryComponent
	case hasSegment(segments, "hooks") || looksLikeHookName(base):
		return CategoryHook
	case hasSegment(segments, "utils") || hasSegment(segments, "lib"):
		return CategoryUtil
	case hasStyleExtension(extPath):
		return CategoryStyle
	case strings.HasSuffix(extPath, ".d.ts") || hasSegment(segments, "types"):
		return CategoryType
	}

	if fileKind == StyleFile {
		return CategoryStyle
	}
	return CategoryUtil
}

// segmentExtension returns the full extension chain of a basename, so
// "user.d.ts" yields ".d.ts" rather than ".ts".
func segmentExtension(base string) string {
	idx := strings.Index(base, ".")
	if idx < 0 {
		return ""
	}
	return base[idx:]
}
