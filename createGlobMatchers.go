package main

import (
	"strings"

	"github.com/gobwas/glob"
)

type GlobMatcher struct {
	globPattern                        glob.Glob
	inputString                        string
	shouldMatchAnyFileOrDirWithPattern bool
	patternRoot                        string
	isAdditional                       bool
}

func CreateGlobMatchers(patterns []string, patternsRoot string) []GlobMatcher {
	globMatchers := []GlobMatcher{}
	// normalize pattern root to internal form and ensure trailing '/'
	patternRootNorm := NormalizePathForInternal(patternsRoot)
	if patternRootNorm != "" && !strings.HasSuffix(patternRootNorm, "/") {
		patternRootNorm = patternRootNorm + "/"
	}

	for _, ignorePattern := range patterns {
		// Entries without `/` or `*` are plain names and match any file or
		// directory with that exact name, aligning with .gitignore behavior.
		shouldMatchAnyFileOrDirWithPattern := !strings.Contains(ignorePattern, "/") && !strings.Contains(ignorePattern, "*")

		if strings.HasSuffix(ignorePattern, "/") && !strings.Contains(ignorePattern, "*") {
			// in gitignore an entry with `/` suffix matches the whole directory recursively
			ignorePattern = "**" + ignorePattern + "**"
		}

		patternNorm := NormalizeGlobPattern(ignorePattern)

		item := GlobMatcher{
			globPattern:                        glob.MustCompile(patternNorm),
			inputString:                        patternNorm,
			patternRoot:                        patternRootNorm,
			shouldMatchAnyFileOrDirWithPattern: shouldMatchAnyFileOrDirWithPattern,
			isAdditional:                       false,
		}
		globMatchers = append(globMatchers, item)
		// The glob library does not match root-level files through a `**/`
		// directory wildcard: `**/*.log` misses `file.log` but matches
		// `dir/file.log`. Not aligned with .gitignore behavior, so an
		// additional pattern patches the discrepancy.
		if strings.HasPrefix(patternNorm, "**/") {
			additionalPattern := strings.Replace(patternNorm, "**/", "", 1)
			additionalItem := GlobMatcher{
				globPattern:                        glob.MustCompile(additionalPattern),
				inputString:                        additionalPattern,
				patternRoot:                        patternRootNorm,
				shouldMatchAnyFileOrDirWithPattern: false,
				isAdditional:                       true,
			}
			globMatchers = append(globMatchers, additionalItem)
		}
	}
	return globMatchers
}

func MatchesAnyGlobMatcher(filePath string, matchers []GlobMatcher) bool {
	for _, matcher := range matchers {
		fileInternal := NormalizePathForInternal(filePath)
		fileWithoutPrefix := strings.TrimPrefix(fileInternal, matcher.patternRoot)
		if matcher.globPattern.Match(fileWithoutPrefix) {
			return true
		}
		if matcher.shouldMatchAnyFileOrDirWithPattern && strings.HasSuffix(fileWithoutPrefix, "/"+matcher.inputString) {
			// matches file with name exactly as the pattern
			return true
		}
		if matcher.shouldMatchAnyFileOrDirWithPattern && (strings.Contains(fileWithoutPrefix, "/"+matcher.inputString+"/") || strings.HasPrefix(fileWithoutPrefix, matcher.inputString+"/")) {
			// matches directory with name exactly as the pattern
			return true
		}
	}
	return false
}
