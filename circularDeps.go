package main

import (
	"fmt"
	"strings"
)

// BuildLocalEdges derives the forward dependency edges between project files
// from the analyzed tree. External and unresolved dependencies carry no edge.
func BuildLocalEdges(tree *DependencyTree) map[string][]string {
	edges := map[string][]string{}
	for _, record := range tree.Files() {
		deps := make([]string, 0, len(record.Dependencies))
		for _, dep := range record.Dependencies {
			if dep.ResolvedPath != "" {
				deps = append(deps, dep.ResolvedPath)
			}
		}
		edges[record.Path] = deps
	}
	return edges
}

// FindCircularDependencies detects dependency cycles between project files
// with a DFS over the local edges. Roots are visited in sorted path order so
// the result is deterministic.
func FindCircularDependencies(edges map[string][]string, sortedFilesList []string) [][]string {
	var cycles [][]string
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	// Use shared path slice to avoid copying
	path := make([]string, 0, 64)

	var dfs func(node string)
	dfs = func(node string) {
		visited[node] = true
		recStack[node] = true
		path = append(path, node)

		for _, depPath := range edges[node] {
			if recStack[depPath] {
				// Found a cycle - extract it from the current path
				cycleStart := -1
				for i := len(path) - 1; i >= 0; i-- {
					if path[i] == depPath {
						cycleStart = i
						break
					}
				}
				if cycleStart >= 0 {
					cycle := make([]string, len(path)-cycleStart+1)
					copy(cycle, path[cycleStart:])
					cycle[len(cycle)-1] = depPath // Close the cycle
					cycles = append(cycles, cycle)
				}
				continue
			}

			if !visited[depPath] {
				dfs(depPath)
			}
		}

		path = path[:len(path)-1]
		recStack[node] = false
	}

	for _, node := range sortedFilesList {
		if !visited[node] {
			dfs(node)
		}
	}

	return deduplicateCycles(cycles)
}

// FormatCircularDependencies formats detected cycles for display.
func FormatCircularDependencies(cycles [][]string, pathPrefix string) string {
	if len(cycles) == 0 {
		return fmt.Sprintln("No circular dependencies found.")
	}

	result := fmt.Sprintf("Found %d circular dependencies:\n\n", len(cycles))

	for i, cycle := range cycles {
		result += fmt.Sprintf("Circular Dependency %d:\n", i+1)
		for j, file := range cycle {
			cleanPath := strings.TrimPrefix(file, pathPrefix)
			cleanPath = strings.TrimPrefix(cleanPath, "/")

			indent := strings.Repeat(" ", j)
			if j == 0 {
				result += fmt.Sprintf("%s -> %s (cycle start)\n", indent, cleanPath)
			} else {
				result += fmt.Sprintf("%s -> %s\n", indent, cleanPath)
			}
		}
		result += fmt.Sprintln()
	}
	return result
}

func deduplicateCycles(arr [][]string) [][]string {
	entries := make(map[string]struct{}, len(arr))
	result := make([][]string, 0, len(arr))

	for _, cycle := range arr {
		key := strings.Join(cycle, ",")
		if _, exists := entries[key]; !exists {
			result = append(result, cycle)
			entries[key] = struct{}{}
		}
	}
	return result
}
