package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

var categoryColors = map[Category]*color.Color{
	CategoryComponent:  color.New(color.FgCyan),
	CategoryHook:       color.New(color.FgMagenta),
	CategoryUtil:       color.New(color.FgGreen),
	CategoryType:       color.New(color.FgYellow),
	CategoryStyle:      color.New(color.FgBlue),
	CategoryExternal:   color.New(color.FgWhite),
	CategoryUnresolved: color.New(color.FgRed),
}

var (
	dirColor     = color.New(color.FgBlue, color.Bold)
	fileColor    = color.New(color.Bold)
	errColor     = color.New(color.FgRed)
	countColor   = color.New(color.Faint)
	specColor    = color.New(color.FgHiBlack)
	headingColor = color.New(color.Bold, color.Underline)
)

// RenderTree writes the dependency tree to w with box-drawing guides, one
// category bucket per file in display order. Colors degrade to plain text
// automatically when w is not a terminal.
func RenderTree(w io.Writer, root RenderNode) {
	dirColor.Fprintln(w, root.Name+"/")
	renderNodes(w, root.Children, "")
}

func renderNodes(w io.Writer, nodes []RenderNode, prefix string) {
	for i, node := range nodes {
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(nodes)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		if node.IsDir {
			fmt.Fprint(w, prefix+connector)
			dirColor.Fprintln(w, node.Name+"/")
			renderNodes(w, node.Children, childPrefix)
			continue
		}

		fmt.Fprint(w, prefix+connector)
		fileColor.Fprint(w, node.Name)
		countColor.Fprintf(w, "  (%s)", FileKindToString(node.FileKind))
		fmt.Fprintln(w)

		if node.ReadError != "" {
			fmt.Fprint(w, childPrefix)
			errColor.Fprintf(w, "unreadable: %s\n", node.ReadError)
		}

		for _, bucket := range node.Buckets {
			fmt.Fprint(w, childPrefix)
			categoryColors[bucket.Category].Fprintf(w, "%s (%d)\n", CategoryToString(bucket.Category), len(bucket.Deps))
			for _, dep := range bucket.Deps {
				fmt.Fprint(w, childPrefix+"  ")
				if dep.ResolvedPath != "" {
					fmt.Fprint(w, dep.Specifier)
					specColor.Fprintf(w, " -> %s", dep.ResolvedPath)
				} else {
					fmt.Fprint(w, dep.Specifier)
				}
				fmt.Fprintln(w)
			}
		}
	}
}

// RenderFileRecord prints the analysis of a single file without the
// surrounding tree, used by the file command.
func RenderFileRecord(w io.Writer, record *FileRecord, projectRoot string) {
	cleanPath := strings.TrimPrefix(record.Path, strings.TrimSuffix(NormalizePathForInternal(projectRoot), "/"))
	cleanPath = strings.TrimPrefix(cleanPath, "/")
	if cleanPath == "" {
		cleanPath = record.Path
	}

	fileColor.Fprint(w, cleanPath)
	countColor.Fprintf(w, "  (%s)\n", FileKindToString(record.Kind))

	if record.ReadError != "" {
		errColor.Fprintf(w, "  unreadable: %s\n", record.ReadError)
		return
	}
	if len(record.Dependencies) == 0 {
		fmt.Fprintln(w, "  no dependencies")
		return
	}

	for _, category := range CategoryDisplayOrder {
		deps := record.ByCategory[category]
		if len(deps) == 0 {
			continue
		}
		fmt.Fprint(w, "  ")
		categoryColors[category].Fprintf(w, "%s (%d)\n", CategoryToString(category), len(deps))
		for _, dep := range deps {
			fmt.Fprintf(w, "    %s", dep.Specifier)
			if dep.ResolvedPath != "" {
				specColor.Fprintf(w, " -> %s", dep.ResolvedPath)
			}
			countColor.Fprintf(w, "  [%s, line %d]", ImportKindToString(dep.Kind), dep.Line)
			fmt.Fprintln(w)
		}
	}
}

// RenderStats prints the project-wide summary table.
func RenderStats(w io.Writer, stats ProjectStats) {
	headingColor.Fprintln(w, "Project summary")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Files analyzed\t%d\n", stats.TotalFiles)
	for _, kind := range []FileKind{ComponentFile, ScriptFile, StyleFile, TypeDeclFile} {
		if count := stats.FilesByKind[kind]; count > 0 {
			fmt.Fprintf(tw, "  %s files\t%d\n", FileKindToString(kind), count)
		}
	}
	if stats.UnreadableFiles > 0 {
		fmt.Fprintf(tw, "Unreadable files\t%d\n", stats.UnreadableFiles)
	}
	fmt.Fprintln(tw, "\t")
	for _, category := range CategoryDisplayOrder {
		if count := stats.DepsByCategory[category]; count > 0 {
			fmt.Fprintf(tw, "%s dependencies\t%d\n", CategoryToString(category), count)
		}
	}
	fmt.Fprintf(tw, "External packages\t%d\n", len(stats.ExternalPackages))
	tw.Flush()
}

// RenderExternalsReport prints the externals table produced by
// BuildExternalsReport, flagging undeclared packages and non-semver ranges.
func RenderExternalsReport(w io.Writer, report []ExternalUsage) {
	if len(report) == 0 {
		fmt.Fprintln(w, "No external packages imported.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PACKAGE\tIMPORTS\tDECLARED\tRANGE")
	for _, usage := range report {
		declared := "yes"
		rangeInfo := usage.DeclaredRange
		if !usage.Declared {
			declared = errColor.Sprint("MISSING")
			rangeInfo = "-"
		} else if !usage.RangeValid {
			rangeInfo = usage.DeclaredRange + " " + errColor.Sprint("(not semver)")
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", usage.Package, usage.ImportCount, declared, rangeInfo)
	}
	tw.Flush()
}
