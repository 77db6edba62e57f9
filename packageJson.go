package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/jsonc"
)

// LoadDeclaredDependencies reads the project's package.json and returns the
// union of dependencies and devDependencies as name -> declared range. A
// missing or malformed package.json yields an empty map; declarations are
// advisory data for the externals report, never required for analysis.
func LoadDeclaredDependencies(projectRoot string) map[string]string {
	content, err := os.ReadFile(filepath.Join(DenormalizePathForOS(projectRoot), "package.json"))
	if err != nil {
		return map[string]string{}
	}

	var rawPackageJson map[string]map[string]string
	if err := json.Unmarshal(jsonc.ToJSON(content), &rawPackageJson); err != nil {
		return map[string]string{}
	}

	declared := map[string]string{}
	for dep, rangeStr := range rawPackageJson["dependencies"] {
		declared[dep] = rangeStr
	}
	for dep, rangeStr := range rawPackageJson["devDependencies"] {
		declared[dep] = rangeStr
	}
	return declared
}

// IsValidSemverRange reports whether a declared range parses as a semver
// constraint. npm-specific targets (workspace:, file:, git urls, dist tags
// like "latest") do not parse and are reported as non-semver.
func IsValidSemverRange(rangeStr string) bool {
	if strings.TrimSpace(rangeStr) == "" {
		return false
	}
	_, err := semver.NewConstraint(rangeStr)
	return err == nil
}

// ExternalUsage is one row of the externals report.
type ExternalUsage struct {
	Package       string
	Declared      bool
	DeclaredRange string
	RangeValid    bool
	ImportCount   int
}

// BuildExternalsReport cross-references external imports found in the tree
// with the declarations in package.json. Packages imported but not declared
// are flagged; declared ranges are validated as semver constraints.
func BuildExternalsReport(tree *DependencyTree, declared map[string]string) []ExternalUsage {
	counts := map[string]int{}
	for _, record := range tree.Files() {
		for _, dep := range record.Dependencies {
			if dep.IsExternal {
				counts[ExternalPackageName(dep.Specifier)]++
			}
		}
	}

	report := make([]ExternalUsage, 0, len(counts))
	for name, count := range counts {
		rangeStr, isDeclared := declared[name]
		report = append(report, ExternalUsage{
			Package:       name,
			Declared:      isDeclared,
			DeclaredRange: rangeStr,
			RangeValid:    isDeclared && IsValidSemverRange(rangeStr),
			ImportCount:   count,
		})
	}

	slices.SortFunc(report, func(a ExternalUsage, b ExternalUsage) int {
		return strings.Compare(a.Package, b.Package)
	})
	return report
}
