package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetFilesCollectsAnalyzableExtensions(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, "src/App.tsx")
	writeFixtureFile(t, root, "src/styles/main.scss")
	writeFixtureFile(t, root, "src/notes.md")
	writeFixtureFile(t, root, "src/logo.svg")

	files := GetFiles(root, []string{}, nil)

	if len(files) != 2 {
		t.Errorf("GetFiles = %v, should contain only analyzable files", files)
	}
}

func TestGetFilesHonorsIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, "src/App.tsx")
	writeFixtureFile(t, root, "node_modules/react/index.js")
	writeFixtureFile(t, root, "dist/bundle.js")

	matchers := CreateGlobMatchers(defaultIgnorePatterns, root)
	files := GetFiles(root, []string{}, matchers)

	if len(files) != 1 || !strings.HasSuffix(files[0], "src/App.tsx") {
		t.Errorf("GetFiles = %v, node_modules and dist should be pruned", files)
	}
}

func TestGetFilesHonorsNestedGitignore(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, "src/App.tsx")
	writeFixtureFile(t, root, "src/generated/api.ts")

	gitignorePath := filepath.Join(root, "src", ".gitignore")
	if err := os.WriteFile(gitignorePath, []byte("generated\n"), 0644); err != nil {
		t.Fatal(err)
	}

	files := GetFiles(root, []string{}, nil)

	for _, file := range files {
		if strings.Contains(file, "generated") {
			t.Errorf("GetFiles = %v, src/generated should be pruned by nested .gitignore", files)
		}
	}
}

func TestCollectProjectFilesUsesConfigPatterns(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, "src/App.tsx")
	writeFixtureFile(t, root, "legacy/old.js")

	cfg := DefaultConfig(root)
	cfg.IgnorePatterns = append(cfg.IgnorePatterns, "legacy")

	files := CollectProjectFiles(cfg)

	if len(files) != 1 || !strings.HasSuffix(files[0], "src/App.tsx") {
		t.Errorf("CollectProjectFiles = %v, 'legacy' should be pruned", files)
	}
}

func TestCreateGlobMatchersPlainNameMatchesAnywhere(t *testing.T) {
	matchers := CreateGlobMatchers([]string{"node_modules"}, "/p")

	if !MatchesAnyGlobMatcher("/p/a/node_modules/x.js", matchers) {
		t.Errorf("plain name pattern should match nested directory")
	}
	if MatchesAnyGlobMatcher("/p/src/App.tsx", matchers) {
		t.Errorf("plain name pattern should not match unrelated paths")
	}
}

func TestCreateGlobMatchersRootLevelWildcard(t *testing.T) {
	matchers := CreateGlobMatchers([]string{"**/*.log"}, "/p")

	if !MatchesAnyGlobMatcher("/p/file.log", matchers) {
		t.Errorf("**/*.log should match a root-level file")
	}
	if !MatchesAnyGlobMatcher("/p/nested/dir/file.log", matchers) {
		t.Errorf("**/*.log should match a nested file")
	}
}
