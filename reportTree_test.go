package main

import (
	"testing"
)

func recordForPath(path string, deps ...ResolvedDependency) *FileRecord {
	record := &FileRecord{
		Path:       path,
		Kind:       DetectFileKind(path),
		ByCategory: map[Category][]ResolvedDependency{},
	}
	for _, dep := range deps {
		record.Dependencies = append(record.Dependencies, dep)
		record.ByCategory[dep.Category] = append(record.ByCategory[dep.Category], dep)
	}
	return record
}

func TestTreeRenderIndependentOfInsertionOrder(t *testing.T) {
	records := []*FileRecord{
		recordForPath("/project/src/components/Avatar.tsx"),
		recordForPath("/project/src/utils/date.ts"),
		recordForPath("/project/src/App.tsx", ResolvedDependency{
			Specifier: "react", Category: CategoryExternal, IsExternal: true,
		}),
		recordForPath("/project/src/styles/main.scss"),
	}

	forward := NewDependencyTree("/project")
	for _, record := range records {
		forward.Insert(record)
	}

	backward := NewDependencyTree("/project")
	for i := len(records) - 1; i >= 0; i-- {
		backward.Insert(records[i])
	}

	if forward.RenderString() != backward.RenderString() {
		t.Errorf("render differs by insertion order:\n%s\nvs\n%s", forward.RenderString(), backward.RenderString())
	}
}

func TestTreeRootPathTrimmed(t *testing.T) {
	tree := NewDependencyTree("/project/")

	if tree.RootPath() != "/project" {
		t.Errorf("RootPath = %q, should be %q", tree.RootPath(), "/project")
	}
}

func TestTreeInsertIsIdempotent(t *testing.T) {
	tree := NewDependencyTree("/project")
	record := recordForPath("/project/src/App.tsx")

	tree.Insert(record)
	before := tree.RenderString()
	tree.Insert(record)

	if tree.RenderString() != before {
		t.Errorf("re-inserting the same record changed the tree:\n%s", tree.RenderString())
	}
	if len(tree.Files()) != 1 {
		t.Errorf("re-insert should not duplicate records, got %d", len(tree.Files()))
	}
}

func TestTreeRenderOrdersDirectoriesBeforeFiles(t *testing.T) {
	tree := NewDependencyTree("/project")
	tree.Insert(recordForPath("/project/src/aaa.ts"))
	tree.Insert(recordForPath("/project/src/zzz/inner.ts"))

	root := tree.Render()
	if len(root.Children) != 1 || root.Children[0].Name != "src" {
		t.Fatalf("unexpected root children: %v", root.Children)
	}

	src := root.Children[0]
	if len(src.Children) != 2 {
		t.Fatalf("src should have 2 children, got %d", len(src.Children))
	}
	if !src.Children[0].IsDir || src.Children[0].Name != "zzz" {
		t.Errorf("directory zzz should sort before file aaa.ts, got %q first", src.Children[0].Name)
	}
	if src.Children[1].IsDir || src.Children[1].Name != "aaa.ts" {
		t.Errorf("file aaa.ts should sort after directories, got %q second", src.Children[1].Name)
	}
}

func TestTreeBucketsFollowDisplayOrder(t *testing.T) {
	record := recordForPath("/project/src/App.tsx",
		ResolvedDependency{Specifier: "react", Category: CategoryExternal, IsExternal: true},
		ResolvedDependency{Specifier: "./Avatar", ResolvedPath: "/project/src/Avatar.tsx", Category: CategoryComponent},
		ResolvedDependency{Specifier: "./useUser", ResolvedPath: "/project/src/useUser.ts", Category: CategoryHook},
	)

	tree := NewDependencyTree("/project")
	tree.Insert(record)

	fileNode := tree.Render().Children[0].Children[0]
	if len(fileNode.Buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(fileNode.Buckets))
	}

	expected := []Category{CategoryComponent, CategoryHook, CategoryExternal}
	for i, bucket := range fileNode.Buckets {
		if bucket.Category != expected[i] {
			t.Errorf("bucket %d = %s, should be %s", i, CategoryToString(bucket.Category), CategoryToString(expected[i]))
		}
	}
}

func TestTreeStats(t *testing.T) {
	tree := NewDependencyTree("/project")
	tree.Insert(recordForPath("/project/src/App.tsx",
		ResolvedDependency{Specifier: "react", Category: CategoryExternal, IsExternal: true},
		ResolvedDependency{Specifier: "@mui/material/Grid", Category: CategoryExternal, IsExternal: true},
		ResolvedDependency{Specifier: "./Avatar", ResolvedPath: "/project/src/Avatar.tsx", Category: CategoryComponent},
	))
	tree.Insert(recordForPath("/project/src/Avatar.tsx",
		ResolvedDependency{Specifier: "react", Category: CategoryExternal, IsExternal: true},
	))

	broken := recordForPath("/project/src/broken.ts")
	broken.ReadError = "permission denied"
	tree.Insert(broken)

	stats := tree.Stats()

	if stats.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, should be 3", stats.TotalFiles)
	}
	if stats.UnreadableFiles != 1 {
		t.Errorf("UnreadableFiles = %d, should be 1", stats.UnreadableFiles)
	}
	if stats.DepsByCategory[CategoryExternal] != 3 {
		t.Errorf("external dep count = %d, should be 3", stats.DepsByCategory[CategoryExternal])
	}
	if len(stats.ExternalPackages) != 2 {
		t.Errorf("ExternalPackages = %v, should be [@mui/material react]", stats.ExternalPackages)
	}
	if stats.ExternalPackages[0] != "@mui/material" || stats.ExternalPackages[1] != "react" {
		t.Errorf("ExternalPackages = %v, should be sorted distinct names", stats.ExternalPackages)
	}
	if stats.FilesByKind[ComponentFile] != 2 {
		t.Errorf("component file count = %d, should be 2", stats.FilesByKind[ComponentFile])
	}
}
