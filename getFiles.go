package main

import (
	"os"
	"path/filepath"
	"strings"
)

// Extensions the walker yields for analysis. Kept in sync with
// DetectFileKind; anything else is skipped before the analyzer sees it.
var analyzedExts = map[string]struct{}{
	".ts":   {},
	".tsx":  {},
	".js":   {},
	".jsx":  {},
	".vue":  {},
	".css":  {},
	".scss": {},
	".less": {},
	".sass": {},
}

func hasAnalyzedExtension(name string) bool {
	ext := filepath.Ext(name)
	_, ok := analyzedExts[ext]
	return ok
}

func parseGitIgnore(fileContent string, dirPath string) []GlobMatcher {
	lines := strings.Split(fileContent, "\n")

	sanitizedLines := []string{}

	for _, line := range lines {
		trimmedLine := strings.TrimSpace(line)
		if len(trimmedLine) > 0 && !strings.HasPrefix(trimmedLine, "#") {
			sanitizedLines = append(sanitizedLines, line)
		}
	}

	return CreateGlobMatchers(sanitizedLines, dirPath)
}

func FindAndProcessGitIgnoreFilesUpToRepoRoot(dirPath string) []GlobMatcher {
	return findAndProcessGitIgnoreFilesUpToRepoRoot(dirPath, []GlobMatcher{})
}

func findAndProcessGitIgnoreFilesUpToRepoRoot(dirPath string, globMatchers []GlobMatcher) []GlobMatcher {
	gitIgnoreFilePath := filepath.Join(dirPath, ".gitignore")
	gitignoreFile, gitignoreError := os.ReadFile(gitIgnoreFilePath)

	if gitignoreError == nil {
		globMatchers = append(globMatchers, parseGitIgnore(string(gitignoreFile), dirPath)...)
	}

	gitDir, gitDirReadErr := os.Stat(filepath.Join(dirPath, ".git"))

	if gitDirReadErr == nil && gitDir.IsDir() {
		// found git root
		return globMatchers
	}

	parent := filepath.Dir(dirPath)
	if parent == dirPath {
		// filesystem root, no repo found
		return globMatchers
	}

	return findAndProcessGitIgnoreFilesUpToRepoRoot(parent, globMatchers)
}

// GetFiles recursively collects analyzable files under directory, pruning
// anything matched by the ignore matchers. Nested .gitignore files extend the
// matcher set for their subtree only. The analyzer core never sees ignored
// paths.
func GetFiles(directory string, existingFiles []string, parentGlobMatchers []GlobMatcher) []string {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return existingFiles
	}

	for _, entry := range entries {
		entryName := entry.Name()
		entryFilePath := filepath.Join(directory, entryName)

		if entry.IsDir() {
			if !MatchesAnyGlobMatcher(entryFilePath, parentGlobMatchers) {
				gitignoreFile, gitignoreError := os.ReadFile(filepath.Join(entryFilePath, ".gitignore"))

				ignoreGlobs := []GlobMatcher{}
				if gitignoreError == nil {
					ignoreGlobs = parseGitIgnore(string(gitignoreFile), entryFilePath)
				}
				if len(ignoreGlobs) > 0 {
					ignoreGlobs = append(parentGlobMatchers, ignoreGlobs...)
				} else {
					ignoreGlobs = parentGlobMatchers
				}

				existingFiles = GetFiles(entryFilePath, existingFiles, ignoreGlobs)
			}
			continue
		}

		if hasAnalyzedExtension(entryName) && !MatchesAnyGlobMatcher(entryFilePath, parentGlobMatchers) {
			// store internal normalized path (forward slashes) for analysis and tests
			existingFiles = append(existingFiles, NormalizePathForInternal(entryFilePath))
		}
	}

	return existingFiles
}

// CollectProjectFiles runs the walker with the configured ignore patterns
// plus any .gitignore chain above the project root.
func CollectProjectFiles(cfg *Config) []string {
	matchers := CreateGlobMatchers(cfg.IgnorePatterns, cfg.ProjectPath)
	matchers = append(matchers, FindAndProcessGitIgnoreFilesUpToRepoRoot(cfg.ProjectPath)...)
	return GetFiles(cfg.ProjectPath, []string{}, matchers)
}
