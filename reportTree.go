package main

import (
	"path/filepath"
	"slices"
	"strings"
)

// DependencyTree mirrors the scanned directory hierarchy. Directory nodes own
// their children exclusively; file nodes own exactly one FileRecord. Inserts
// are keyed strictly by path, so any insertion order produces the same tree.
type DependencyTree struct {
	rootPath string
	root     *treeNode
}

type treeNode struct {
	name     string
	children map[string]*treeNode // non-nil for directory nodes
	record   *FileRecord          // non-nil for file nodes
}

func (n *treeNode) isDir() bool {
	return n.record == nil
}

func NewDependencyTree(rootPath string) *DependencyTree {
	return &DependencyTree{
		rootPath: strings.TrimSuffix(NormalizePathForInternal(rootPath), "/"),
		root:     &treeNode{children: map[string]*treeNode{}},
	}
}

// RootPath returns the project root the tree is keyed against.
func (t *DependencyTree) RootPath() string {
	return t.rootPath
}

// Insert places record at the tree position mirroring its path relative to
// the project root, creating intermediate directory nodes as needed.
// Inserting the same path twice replaces the prior record.
func (t *DependencyTree) Insert(record *FileRecord) {
	relative := record.Path
	if rel, err := filepath.Rel(DenormalizePathForOS(t.rootPath), DenormalizePathForOS(record.Path)); err == nil {
		relative = NormalizePathForInternal(filepath.ToSlash(rel))
	}

	segments := pathSegments(relative)
	if len(segments) == 0 {
		return
	}

	node := t.root
	for _, segment := range segments[:len(segments)-1] {
		child, ok := node.children[segment]
		if !ok || !child.isDir() {
			child = &treeNode{name: segment, children: map[string]*treeNode{}}
			node.children[segment] = child
		}
		node = child
	}

	name := segments[len(segments)-1]
	node.children[name] = &treeNode{name: name, record: record}
}

// CategoryBucket groups a file's dependencies under one category for display.
type CategoryBucket struct {
	Category Category
	Deps     []ResolvedDependency
}

// RenderNode is the display-ready shape handed to the renderer: directory
// nodes with ordered children, file nodes with ordered category buckets. The
// renderer decides glyphs and colors; the core decides structure and order.
type RenderNode struct {
	Name      string
	IsDir     bool
	Children  []RenderNode
	Buckets   []CategoryBucket
	FileKind  FileKind
	ReadError string
}

// Render walks the tree depth-first with a stable ordering: directories
// before files, alphabetical within each group. Dependencies inside a bucket
// keep their extraction order.
func (t *DependencyTree) Render() RenderNode {
	return RenderNode{
		Name:     t.rootPath,
		IsDir:    true,
		Children: renderChildren(t.root),
	}
}

func renderChildren(node *treeNode) []RenderNode {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a string, b string) int {
		childA, childB := node.children[a], node.children[b]
		if childA.isDir() != childB.isDir() {
			if childA.isDir() {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})

	rendered := make([]RenderNode, 0, len(names))
	for _, name := range names {
		child := node.children[name]
		if child.isDir() {
			rendered = append(rendered, RenderNode{
				Name:     name,
				IsDir:    true,
				Children: renderChildren(child),
			})
			continue
		}

		buckets := make([]CategoryBucket, 0, len(CategoryDisplayOrder))
		for _, category := range CategoryDisplayOrder {
			if deps := child.record.ByCategory[category]; len(deps) > 0 {
				buckets = append(buckets, CategoryBucket{Category: category, Deps: deps})
			}
		}

		rendered = append(rendered, RenderNode{
			Name:      name,
			Buckets:   buckets,
			FileKind:  child.record.Kind,
			ReadError: child.record.ReadError,
		})
	}
	return rendered
}

// Files returns every FileRecord in the tree, sorted by path.
func (t *DependencyTree) Files() []*FileRecord {
	var records []*FileRecord
	var collect func(node *treeNode)
	collect = func(node *treeNode) {
		for _, child := range node.children {
			if child.isDir() {
				collect(child)
			} else {
				records = append(records, child.record)
			}
		}
	}
	collect(t.root)

	slices.SortFunc(records, func(a *FileRecord, b *FileRecord) int {
		return strings.Compare(a.Path, b.Path)
	})
	return records
}

// ProjectStats is derived from the tree on demand, never stored alongside it.
type ProjectStats struct {
	TotalFiles       int
	FilesByKind      map[FileKind]int
	DepsByCategory   map[Category]int
	ExternalPackages []string // distinct, sorted
	UnreadableFiles  int
}

// Stats aggregates project-wide counts in one pass over the tree.
func (t *DependencyTree) Stats() ProjectStats {
	stats := ProjectStats{
		FilesByKind:    map[FileKind]int{},
		DepsByCategory: map[Category]int{},
	}
	externals := map[string]bool{}

	for _, record := range t.Files() {
		stats.TotalFiles++
		stats.FilesByKind[record.Kind]++
		if record.ReadError != "" {
			stats.UnreadableFiles++
		}
		for _, dep := range record.Dependencies {
			stats.DepsByCategory[dep.Category]++
			if dep.IsExternal {
				externals[ExternalPackageName(dep.Specifier)] = true
			}
		}
	}

	stats.ExternalPackages = make([]string, 0, len(externals))
	for name := range externals {
		stats.ExternalPackages = append(stats.ExternalPackages, name)
	}
	slices.Sort(stats.ExternalPackages)
	return stats
}

// RenderString is a deterministic plain-text dump of the rendered tree, used
// by tests and by machine-readable output.
func (t *DependencyTree) RenderString() string {
	var b strings.Builder
	writeRenderNode(&b, t.Render(), 0)
	return b.String()
}

func writeRenderNode(b *strings.Builder, node RenderNode, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(node.Name)
	if node.IsDir {
		b.WriteString("/")
	}
	b.WriteString("\n")

	if node.ReadError != "" {
		b.WriteString(indent)
		b.WriteString("  (unreadable: ")
		b.WriteString(node.ReadError)
		b.WriteString(")\n")
	}

	for _, bucket := range node.Buckets {
		b.WriteString(indent)
		b.WriteString("  [")
		b.WriteString(CategoryToString(bucket.Category))
		b.WriteString("]\n")
		for _, dep := range bucket.Deps {
			b.WriteString(indent)
			b.WriteString("    ")
			b.WriteString(dep.Specifier)
			if dep.ResolvedPath != "" {
				b.WriteString(" -> ")
				b.WriteString(dep.ResolvedPath)
			}
			b.WriteString("\n")
		}
	}

	for _, child := range node.Children {
		writeRenderNode(b, child, depth+1)
	}
}
