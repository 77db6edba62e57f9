package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var (
	currentDir, _ = os.Getwd()
	rootCmd       = &cobra.Command{
		Use:   "fedep",
		Short: "Analyze and visualize dependencies of a front-end source tree",
		Long: `Scans a JavaScript/TypeScript/Vue source tree, extracts every import
without compiling anything, resolves aliases and relative paths, and reports
each file's dependencies grouped by category.`,
		Version: Version,
	}
)

var docsCmd = &cobra.Command{
	Use:   "doc-gen",
	Short: "Generate CLI documentation",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := doc.GenMarkdownTree(rootCmd, "./docs")
		if err != nil {
			log.Fatal(err)
		}
		return nil
	},
}

// ---------------- shared flags ----------------

var (
	sharedCwd        string
	sharedConfigPath string
)

func addSharedFlags(command *cobra.Command) {
	command.Flags().StringVarP(&sharedCwd, "cwd", "c", currentDir,
		"Working directory for the command")
	command.Flags().StringVar(&sharedConfigPath, "config", "",
		"Path to a config file or a directory containing one (default: search --cwd)")
}

func loadConfigForRun() (*Config, error) {
	cwd := ResolveAbsoluteCwd(sharedCwd)
	cfg, err := LoadConfig(sharedConfigPath, cwd)
	if err != nil {
		return nil, err
	}
	cfg.ProjectPath = NormalizePathForInternal(ResolveAbsoluteCwd(cfg.ProjectPath))
	return cfg, nil
}

// ---------------- analyze ----------------
var (
	analyzeMode     string
	analyzeMaxDepth int
	analyzeNoStats  bool
	analyzeNoTree   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the whole project and print the dependency tree",
	Long: `Walks the configured project directory, analyzes every source file and
prints a directory tree with each file's dependencies grouped by category,
followed by a project summary.`,
	Example: "fedep analyze --mode simple",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigForRun()
		if err != nil {
			return err
		}
		if analyzeMode != "" {
			cfg.AnalyzeMode = AnalyzeMode(analyzeMode)
		}
		if analyzeMaxDepth > 0 {
			cfg.MaxDepth = analyzeMaxDepth
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		files := CollectProjectFiles(cfg)
		tree := AnalyzeProject(cfg, files)

		if !analyzeNoTree {
			RenderTree(os.Stdout, tree.Render())
		}
		if !analyzeNoStats {
			if !analyzeNoTree {
				fmt.Println()
			}
			RenderStats(os.Stdout, tree.Stats())
		}
		return nil
	},
}

// ---------------- file ----------------
var fileMode string

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Analyze a single file and print its dependencies",
	Long: `Analyzes one source file against the configured aliases and project root.
The path is taken relative to --cwd unless absolute.`,
	Example: "fedep file src/components/UserCard.tsx",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigForRun()
		if err != nil {
			return err
		}
		if fileMode != "" {
			cfg.AnalyzeMode = AnalyzeMode(fileMode)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		filePath := args[0]
		if !filepath.IsAbs(filePath) {
			filePath = filepath.Join(ResolveAbsoluteCwd(sharedCwd), filePath)
		}
		if _, err := os.Stat(filePath); err != nil {
			return fmt.Errorf("cannot analyze '%s': %w", args[0], err)
		}

		locator := NewLocator(cfg.ProjectPath, cfg.AliasTable())
		record := AnalyzeFileFromDisk(NormalizePathForInternal(filePath), locator, cfg.AnalyzeMode)
		RenderFileRecord(os.Stdout, record, cfg.ProjectPath)
		return nil
	},
}

// ---------------- externals ----------------
var externalsCmd = &cobra.Command{
	Use:   "externals",
	Short: "List imported external packages and check them against package.json",
	Long: `Collects every external package imported anywhere in the project and
cross-references it with the declarations in package.json. Packages that are
imported but not declared are flagged, and declared version ranges are
validated as semver constraints.`,
	Example: "fedep externals",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigForRun()
		if err != nil {
			return err
		}

		files := CollectProjectFiles(cfg)
		tree := AnalyzeProject(cfg, files)
		declared := LoadDeclaredDependencies(tree.RootPath())
		RenderExternalsReport(os.Stdout, BuildExternalsReport(tree, declared))
		return nil
	},
}

// ---------------- circular ----------------
var circularCmd = &cobra.Command{
	Use:   "circular",
	Short: "Detect circular dependencies between project files",
	Long: `Builds the dependency graph between local files and reports every cycle.
External and unresolved dependencies never contribute edges.`,
	Example: "fedep circular",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigForRun()
		if err != nil {
			return err
		}

		files := CollectProjectFiles(cfg)
		tree := AnalyzeProject(cfg, files)

		edges := BuildLocalEdges(tree)
		sortedFiles := make([]string, 0, len(edges))
		for _, record := range tree.Files() {
			sortedFiles = append(sortedFiles, record.Path)
		}

		cycles := FindCircularDependencies(edges, sortedFiles)
		fmt.Fprint(os.Stderr, FormatCircularDependencies(cycles, tree.RootPath()))
		if len(cycles) > 0 {
			os.Exit(len(cycles))
		}
		return nil
	},
}

// ---------------- list-files ----------------
var listFilesCount bool

var listFilesCmd = &cobra.Command{
	Use:   "list-files",
	Short: "List the files the analyzer would process",
	Long: `Prints every analyzable file under the project root after applying the
configured ignore patterns and any .gitignore chain, without analyzing them.`,
	Example: "fedep list-files --count",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigForRun()
		if err != nil {
			return err
		}

		files := CollectProjectFiles(cfg)
		if listFilesCount {
			fmt.Println(len(files))
			return nil
		}
		for _, file := range files {
			fmt.Println(file)
		}
		return nil
	},
}

func init() {
	// analyze flags
	addSharedFlags(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeMode, "mode", "m", "",
		"Analysis mode: 'deep' or 'simple' (overrides config)")
	analyzeCmd.Flags().IntVarP(&analyzeMaxDepth, "max-depth", "d", 0,
		"Recursion depth limit for deep mode (overrides config)")
	analyzeCmd.Flags().BoolVar(&analyzeNoStats, "no-stats", false,
		"Skip the project summary")
	analyzeCmd.Flags().BoolVar(&analyzeNoTree, "no-tree", false,
		"Skip the dependency tree, print the summary only")

	// file flags
	addSharedFlags(fileCmd)
	fileCmd.Flags().StringVarP(&fileMode, "mode", "m", "",
		"Analysis mode: 'deep' or 'simple' (overrides config)")

	// externals flags
	addSharedFlags(externalsCmd)

	// circular flags
	addSharedFlags(circularCmd)

	// list-files flags
	addSharedFlags(listFilesCmd)
	listFilesCmd.Flags().BoolVarP(&listFilesCount, "count", "n", false,
		"Only display the count of files")

	// add commands
	rootCmd.AddCommand(analyzeCmd, fileCmd, externalsCmd, circularCmd, listFilesCmd, docsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
