package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c5n8/js-imports-lint/pkg/checker"
	"github.com/c5n8/js-imports-lint/pkg/config"
)

const (
	UseDescription   = "jil [flags] PATH"
	ShortDescription = "JS imports linter - one binding per import, sorted by local name"
	LongDescription  = `jil is a command-line linter for JavaScript and TypeScript imports.

It enforces two rules:
1. Every import declaration binds exactly one name; declarations with
   several specifiers are split into one declaration per specifier.
2. Import declarations are sorted by the name they bind locally.

Imports of paths listed under ignorePaths in the configuration file (or
passed via --ignore) are exempt from sorting. Comments sitting directly
above an import move together with it.

PATH can be either a single source file or a directory. When a directory is
specified, all JavaScript and TypeScript files in the directory and its
subdirectories will be processed recursively.`
)

var (
	configFile  string
	ignorePaths []string
	applyFixes  bool
	showDiff    bool
	showVersion bool
	versionStr  string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultFile, "Path to the configuration file")
	rootCmd.PersistentFlags().StringSliceVar(&ignorePaths, "ignore", []string{}, "Comma-separated list of import paths exempt from sorting (e.g., react,lodash)")
	rootCmd.PersistentFlags().BoolVar(&applyFixes, "fix", false, "Apply fixes to the files instead of only reporting")
	rootCmd.PersistentFlags().BoolVar(&showDiff, "diff", false, "Print the rewrite as a diff instead of applying it")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Printf("JS Imports Lint (JIL) version %s\n", versionStr)
		return nil
	}

	path := args[0]

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	rules := cfg.IgnorePaths
	for _, p := range ignorePaths {
		rules = append(rules, config.IgnoreRule{Name: p})
	}

	c := checker.New(checker.CheckerConfig{
		FilePath:    path, // This will be updated for each file when processing directories
		IgnorePaths: rules,
		Fix:         applyFixes,
		ShowDiff:    showDiff,
	})
	return c.ProcessPath(path)
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
