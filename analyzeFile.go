package main

import (
	"os"
	"path/filepath"
)

// ResolvedDependency is one entry in a file's dependency set, unique by
// resolved path (or by specifier when nothing resolved). Kind and Line come
// from the first occurrence; later duplicate occurrences are discarded.
type ResolvedDependency struct {
	Specifier    string
	ResolvedPath string // empty for external and unresolved dependencies
	Category     Category
	IsExternal   bool
	Kind         ImportKind
	Line         int
}

// FileRecord is the per-file analysis result. It is built once by AnalyzeFile
// and owned by the report tree afterwards.
type FileRecord struct {
	Path         string
	Kind         FileKind
	Dependencies []ResolvedDependency
	ByCategory   map[Category][]ResolvedDependency
	ReadError    string
}

func (r *FileRecord) dedupeKey(dep ResolvedDependency) string {
	if dep.ResolvedPath != "" {
		return dep.ResolvedPath
	}
	return dep.Specifier
}

// AnalyzeFile runs the full per-file pipeline: extract raw imports, rewrite
// aliases, locate targets, classify, deduplicate. Pure apart from the bounded
// existence probes inside the Locator.
func AnalyzeFile(path string, code []byte, locator *Locator, mode AnalyzeMode) *FileRecord {
	record := &FileRecord{
		Path:       NormalizePathForInternal(path),
		Kind:       DetectFileKind(path),
		ByCategory: map[Category][]ResolvedDependency{},
	}

	importerDir := filepath.Dir(DenormalizePathForOS(path))
	seen := map[string]bool{}

	for _, raw := range ExtractImports(code, record.Kind) {
		dep := ResolvedDependency{
			Specifier: raw.Specifier,
			Kind:      raw.Kind,
			Line:      raw.Line,
		}

		if locator.IsExternal(raw.Specifier) {
			dep.IsExternal = true
			dep.Category = CategoryExternal
		} else if resolved, found := locator.Locate(raw.Specifier, importerDir); found {
			dep.ResolvedPath = resolved
			importPath, _ := locator.aliases.Apply(raw.Specifier)
			dep.Category = Classify(importPath, resolved, false, mode, DetectFileKind(resolved))
		} else {
			// Broken local import: kept so the report surfaces it.
			dep.Category = CategoryUnresolved
		}

		key := record.dedupeKey(dep)
		if seen[key] {
			continue
		}
		seen[key] = true

		record.Dependencies = append(record.Dependencies, dep)
		record.ByCategory[dep.Category] = append(record.ByCategory[dep.Category], dep)
	}

	return record
}

// AnalyzeFileFromDisk reads and analyzes one file. Read failures degrade to a
// FileRecord with an error marker and an empty dependency set; they never
// abort the surrounding run.
func AnalyzeFileFromDisk(path string, locator *Locator, mode AnalyzeMode) *FileRecord {
	code, err := os.ReadFile(DenormalizePathForOS(path))
	if err != nil {
		logWarning("could not read '%s': %v", path, err)
		return &FileRecord{
			Path:       NormalizePathForInternal(path),
			Kind:       DetectFileKind(path),
			ByCategory: map[Category][]ResolvedDependency{},
			ReadError:  err.Error(),
		}
	}
	return AnalyzeFile(path, code, locator, mode)
}

// AnalyzeProject analyzes every file yielded by the walker and inserts the
// records into a fresh dependency tree. In deep mode, resolved local
// dependencies that the walker did not yield are queued for analysis
// themselves, bounded by cfg.MaxDepth recursion steps; simple mode analyzes
// the walker files only. The tree is path-keyed, so the result does not
// depend on processing order.
func AnalyzeProject(cfg *Config, files []string) *DependencyTree {
	locator := NewLocator(cfg.ProjectPath, cfg.AliasTable())
	tree := NewDependencyTree(cfg.ProjectPath)

	type pending struct {
		path  string
		depth int
	}

	queue := make([]pending, 0, len(files))
	visited := map[string]bool{}

	for _, path := range files {
		normalized := NormalizePathForInternal(path)
		if !visited[normalized] {
			visited[normalized] = true
			queue = append(queue, pending{path: normalized})
		}
	}

	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		record := AnalyzeFileFromDisk(entry.path, locator, cfg.AnalyzeMode)
		tree.Insert(record)

		if cfg.AnalyzeMode != DeepMode || entry.depth >= cfg.MaxDepth {
			continue
		}

		for _, dep := range record.Dependencies {
			if dep.ResolvedPath == "" || visited[dep.ResolvedPath] {
				continue
			}
			if DetectFileKind(dep.ResolvedPath) == UnknownFile {
				continue
			}
			visited[dep.ResolvedPath] = true
			queue = append(queue, pending{path: dep.ResolvedPath, depth: entry.depth + 1})
		}
	}

	return tree
}
