package main

import (
	"bytes"
)

type ImportKind uint8

const (
	StaticImport ImportKind = iota
	DynamicImport
	RequireImport
	TypeOnlyImport
)

type FileKind uint8

const (
	ComponentFile FileKind = iota
	ScriptFile
	StyleFile
	TypeDeclFile
	UnknownFile
)

// RawImport is one import occurrence found in source text. The same specifier
// may appear multiple times per file; deduplication happens during analysis.
type RawImport struct {
	Specifier string     `json:"specifier"`
	Kind      ImportKind `json:"kind"`
	Line      int        `json:"line"`
}

func isWhiteSpace(char byte) bool {
	return (char == ' ' || char == '\t' || char == '\n' || char == '\r')
}

// skipSpaces skips spaces, tabs, and newlines, returns new index
func skipSpaces(code []byte, i int) int {
	for i < len(code) && isWhiteSpace(code[i]) {
		i++
	}
	return i
}

func isByteIdentifierChar(char byte) bool {
	// 0-9 || A-Z || a-z || _ || $
	return (char >= 48 && char <= 57) || (char >= 65 && char <= 90) || (char >= 97 && char <= 122) || char == 95 || char == 36
}

func hasPrefixAt(code []byte, i int, s string) bool {
	if i < 0 || i+len(s) > len(code) {
		return false
	}
	for j := 0; j < len(s); j++ {
		if code[i+j] != s[j] {
			return false
		}
	}
	return true
}

func hasWordAt(code []byte, i int, s string) bool {
	if !hasPrefixAt(code, i, s) {
		return false
	}
	end := i + len(s)
	return end >= len(code) || !isByteIdentifierChar(code[end])
}

// parseStringLiteral extracts the string literal starting at code[i] (' or ").
// Literals containing backslash escapes are ambiguous for specifier purposes
// and are skipped (empty result) rather than mis-extracted.
func parseStringLiteral(code []byte, i int) (literal string, next int, start int) {
	quote := code[i]
	i++
	start = i
	for i < len(code) && code[i] != quote {
		if code[i] == '\\' {
			// skip to the unescaped closing quote, then report nothing
			for i < len(code) && code[i] != quote {
				if code[i] == '\\' && i+1 < len(code) {
					i += 2
				} else {
					i++
				}
			}
			if i < len(code) {
				i++
			}
			return "", i, 0
		}
		if code[i] == '\n' {
			// unterminated literal
			return "", i, 0
		}
		i++
	}
	if i >= len(code) {
		return "", i, 0
	}
	return string(code[start:i]), i + 1, start
}

// parseCallSpecifier extracts a quoted literal argument from a call form like
// import("./mod") or require('./mod'). Non-literal arguments (computed
// specifiers) yield an empty result and are skipped.
func parseCallSpecifier(code []byte, i int) (literal string, next int, start int) {
	i = skipSpaces(code, i)
	if i >= len(code) || code[i] != '(' {
		return "", i, 0
	}
	i = skipSpaces(code, i+1)
	if i >= len(code) || (code[i] != '\'' && code[i] != '"') {
		// computed specifier, skip to closing parenthesis on this nesting level
		depth := 1
		for i < len(code) && depth > 0 {
			switch code[i] {
			case '(':
				depth++
			case ')':
				depth--
			case '\'', '"', '`':
				i = skipToStringEnd(code, i, code[i])
			}
			i++
		}
		return "", i, 0
	}
	literal, i, start = parseStringLiteral(code, i)
	i = skipSpaces(code, i)
	if i < len(code) && code[i] == ')' {
		i++
	}
	return literal, i, start
}

// skipToStringEnd skips to the end of a string literal
func skipToStringEnd(code []byte, start int, quote byte) int {
	i := start + 1
	for i < len(code) {
		if code[i] == quote {
			return i
		}
		if code[i] == '\\' && i+1 < len(code) {
			i += 2
		} else {
			i++
		}
	}
	return i
}

// skipLineComment skips to the end of a line comment
func skipLineComment(code []byte, start int) int {
	i := start + 2
	for i < len(code) && code[i] != '\n' {
		i++
	}
	return i
}

// skipBlockComment skips to the end of a block comment
func skipBlockComment(code []byte, start int) int {
	i := start + 2
	for i+1 < len(code) && !(code[i] == '*' && code[i+1] == '/') {
		i++
	}
	if i+1 < len(code) {
		i += 2
	}
	return i
}

// areAllImportsInBracesTypes checks if a named import block { ... } contains
// only inline "type" entries. It assumes code[i] is pointing at '{'.
func areAllImportsInBracesTypes(code []byte, i int) bool {
	i++ // skip '{'
	for i < len(code) {
		i = skipSpaces(code, i)
		if i >= len(code) {
			return false
		}
		if code[i] == '}' {
			return true
		}

		if hasWordAt(code, i, "type") && i+4 < len(code) && isWhiteSpace(code[i+4]) {
			i = skipSpaces(code, i+4)
			for i < len(code) && code[i] != ',' && code[i] != '}' {
				i++
			}
		} else {
			return false
		}

		if i < len(code) && code[i] == ',' {
			i++
		}
	}
	return false
}

func lineAt(code []byte, offset int) int {
	if offset > len(code) {
		offset = len(code)
	}
	return bytes.Count(code[:offset], []byte{'\n'}) + 1
}

type extractState struct {
	code []byte
	n    int
	kind FileKind
	out  []RawImport
}

func (s *extractState) emit(specifier string, kind ImportKind, offset int) {
	if specifier == "" {
		return
	}
	s.out = append(s.out, RawImport{
		Specifier: specifier,
		Kind:      kind,
		Line:      lineAt(s.code, offset),
	})
}

// parseImportStatement handles all `import` forms: side-effect imports
// (import "./x"), dynamic imports (import("./x")), and default/named/
// namespace imports with a `from` clause, optionally marked type-only.
func (s *extractState) parseImportStatement(i int) (int, bool) {
	if !hasWordAt(s.code, i, "import") {
		return i, false
	}

	i += len("import")
	if i >= s.n {
		return i, true
	}
	if !(isWhiteSpace(s.code[i]) || s.code[i] == '{' || s.code[i] == '"' || s.code[i] == '\'' || s.code[i] == '*' || s.code[i] == '(') {
		return i, true
	}

	// Dynamic import: import("./x"). Not part of the reduced .d.ts grammar.
	if s.code[i] == '(' || (isWhiteSpace(s.code[i]) && skipSpaces(s.code, i) < s.n && s.code[skipSpaces(s.code, i)] == '(') {
		if s.kind == TypeDeclFile {
			return i, true
		}
		specifier, next, start := parseCallSpecifier(s.code, i)
		s.emit(specifier, DynamicImport, start)
		return next, true
	}

	i = skipSpaces(s.code, i)
	if i >= s.n {
		return i, true
	}

	kind := StaticImport
	if hasWordAt(s.code, i, "type") {
		kind = TypeOnlyImport
		i = skipSpaces(s.code, i+len("type"))
		if i >= s.n {
			return i, true
		}
	}

	// Side-effect import: import "./x"
	if s.code[i] == '"' || s.code[i] == '\'' {
		specifier, next, start := parseStringLiteral(s.code, i)
		s.emit(specifier, kind, start)
		return next, true
	}

	// Named import block with only inline type entries counts as type-only.
	if kind == StaticImport && s.code[i] == '{' {
		if areAllImportsInBracesTypes(s.code, i) {
			kind = TypeOnlyImport
		}
	}

	// Scan forward to the `from` clause, skipping comments. Give up at the
	// next statement keyword so a malformed import cannot swallow the file.
	for i < s.n {
		if hasWordAt(s.code, i, "from") {
			i = skipSpaces(s.code, i+len("from"))
			if i < s.n && (s.code[i] == '"' || s.code[i] == '\'') {
				specifier, next, start := parseStringLiteral(s.code, i)
				s.emit(specifier, kind, start)
				return next, true
			}
			return i, true
		}
		if hasWordAt(s.code, i, "import") || hasWordAt(s.code, i, "export") || hasWordAt(s.code, i, "require") {
			return i, true
		}
		if i+1 < s.n && s.code[i] == '/' && s.code[i+1] == '/' {
			i = skipLineComment(s.code, i)
			continue
		}
		if i+1 < s.n && s.code[i] == '/' && s.code[i+1] == '*' {
			i = skipBlockComment(s.code, i)
			continue
		}
		i++
	}
	return i, true
}

func (s *extractState) parseRequireStatement(i int) (int, bool) {
	if !hasWordAt(s.code, i, "require") {
		return i, false
	}
	specifier, next, start := parseCallSpecifier(s.code, i+len("require"))
	s.emit(specifier, RequireImport, start)
	return next, true
}

// parseStyleImport handles @import "./x", @import url(./x) and @use "./x"
// inside style sheets.
func (s *extractState) parseStyleImport(i int) (int, bool) {
	if !hasPrefixAt(s.code, i, "@import") && !hasPrefixAt(s.code, i, "@use") {
		return i, false
	}
	if hasPrefixAt(s.code, i, "@import") {
		i += len("@import")
	} else {
		i += len("@use")
	}
	i = skipSpaces(s.code, i)
	if i >= s.n {
		return i, true
	}
	if hasPrefixAt(s.code, i, "url") {
		i = skipSpaces(s.code, i+len("url"))
		if i < s.n && s.code[i] == '(' {
			i = skipSpaces(s.code, i+1)
			if i < s.n && (s.code[i] == '\'' || s.code[i] == '"') {
				specifier, next, start := parseStringLiteral(s.code, i)
				s.emit(specifier, StaticImport, start)
				return next, true
			}
			// unquoted url(...) argument
			start := i
			for i < s.n && s.code[i] != ')' && s.code[i] != '\n' {
				i++
			}
			if i < s.n && s.code[i] == ')' {
				s.emit(string(bytes.TrimSpace(s.code[start:i])), StaticImport, start)
				i++
			}
			return i, true
		}
		return i, true
	}
	if s.code[i] == '\'' || s.code[i] == '"' {
		specifier, next, start := parseStringLiteral(s.code, i)
		s.emit(specifier, StaticImport, start)
		return next, true
	}
	return i, true
}

func (s *extractState) scanStyle() []RawImport {
	i := 0
	for i < s.n {
		switch s.code[i] {
		case '/':
			if i+1 < s.n && s.code[i+1] == '*' {
				i = skipBlockComment(s.code, i)
				continue
			}
			if i+1 < s.n && s.code[i+1] == '/' {
				i = skipLineComment(s.code, i)
				continue
			}
			i++
		case '\'', '"':
			i = skipToStringEnd(s.code, i, s.code[i])
			if i < s.n {
				i++
			}
		case '@':
			if next, ok := s.parseStyleImport(i); ok {
				i = next
				continue
			}
			i++
		default:
			i++
		}
	}
	return s.out
}

// ExtractImports scans raw source text and yields every import occurrence in
// line order of first appearance. The scan is a pure function of its inputs:
// no file system access, and re-scanning identical text yields an identical
// sequence. Malformed constructs are skipped, never fatal.
func ExtractImports(code []byte, kind FileKind) []RawImport {
	state := &extractState{
		code: code,
		n:    len(code),
		kind: kind,
		out:  make([]RawImport, 0, 16),
	}

	if kind == StyleFile {
		return state.scanStyle()
	}

	i := 0
	n := state.n

	for i < n {
		i = skipSpaces(code, i)
		if i >= n {
			break
		}

		switch code[i] {
		case '\'', '"', '`':
			i = skipToStringEnd(code, i, code[i])
			if i < n {
				i++
			}
			continue
		case '/':
			if i+1 < n && code[i+1] == '/' {
				i = skipLineComment(code, i)
				continue
			}
			if i+1 < n && code[i+1] == '*' {
				i = skipBlockComment(code, i)
				continue
			}
		case 'i':
			// Keyword must not be the tail of a longer identifier.
			if i > 0 && isByteIdentifierChar(code[i-1]) {
				break
			}
			if next, ok := state.parseImportStatement(i); ok {
				i = next
				continue
			}
		case 'r':
			if i > 0 && isByteIdentifierChar(code[i-1]) {
				break
			}
			// require() is CommonJS; type declaration files use only
			// static and type-only import forms.
			if state.kind == TypeDeclFile {
				break
			}
			if next, ok := state.parseRequireStatement(i); ok {
				i = next
				continue
			}
		}
		i++
	}

	return state.out
}

var fileKindByExtension = []struct {
	suffix string
	kind   FileKind
}{
	{".d.ts", TypeDeclFile},
	{".tsx", ComponentFile},
	{".jsx", ComponentFile},
	{".vue", ComponentFile},
	{".ts", ScriptFile},
	{".js", ScriptFile},
	{".css", StyleFile},
	{".scss", StyleFile},
	{".less", StyleFile},
	{".sass", StyleFile},
}

// DetectFileKind determines the file kind from the path suffix. `.d.ts` is
// checked before `.ts` so declaration files are never treated as scripts.
func DetectFileKind(path string) FileKind {
	for _, entry := range fileKindByExtension {
		if len(path) > len(entry.suffix) && path[len(path)-len(entry.suffix):] == entry.suffix {
			return entry.kind
		}
	}
	return UnknownFile
}

func ImportKindToString(kind ImportKind) string {
	switch kind {
	case StaticImport:
		return "static"
	case DynamicImport:
		return "dynamic"
	case RequireImport:
		return "require"
	case TypeOnlyImport:
		return "type-only"
	default:
		return "unknown"
	}
}

func FileKindToString(kind FileKind) string {
	switch kind {
	case ComponentFile:
		return "component"
	case ScriptFile:
		return "script"
	case StyleFile:
		return "style"
	case TypeDeclFile:
		return "type"
	default:
		return "unknown"
	}
}
