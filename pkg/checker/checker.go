// Package checker drives the linter over files and directories, printing
// violations and optionally applying fixes.
package checker

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/c5n8/js-imports-lint/pkg/config"
	"github.com/c5n8/js-imports-lint/pkg/errors"
	"github.com/c5n8/js-imports-lint/pkg/linter"
	"github.com/c5n8/js-imports-lint/pkg/parser"
	"github.com/c5n8/js-imports-lint/pkg/utils"
)

// maxFixRounds bounds the fix loop. Splitting must fully resolve before
// ordering is evaluated, so a fix run takes at least two rounds; anything
// near the bound indicates a fix that keeps re-triggering.
const maxFixRounds = 10

type CheckerConfig struct {
	FilePath    string              // path to the source file
	IgnorePaths []config.IgnoreRule // import paths exempt from sorting
	Fix         bool                // rewrite files instead of only reporting
	ShowDiff    bool                // print the rewrite as a diff instead of applying it
}

// checker handles the lint/fix logic
type checker struct {
	config   CheckerConfig
	problems int
}

// New creates a new Checker with the specified ignore rules and output mode
func New(config CheckerConfig) *checker {
	return &checker{config: config}
}

func (c *checker) getFilePath() string {
	return c.config.FilePath
}

// CheckFileWithOutput lints the configured file with optional output
// control. With Fix or ShowDiff enabled, fixes are computed by re-linting
// until clean.
func (c *checker) CheckFileWithOutput(verbose bool) error {
	path := c.getFilePath()
	if verbose {
		fmt.Print(errors.InfoMsgCurrentProjectOutput, utils.GetPackageName(path), "\n")
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}

	if c.config.Fix || c.config.ShowDiff {
		fixed, err := c.applyAll(path, src)
		if err != nil {
			return err
		}
		if string(fixed) == string(src) {
			return nil
		}
		if c.config.ShowDiff {
			printDiff(path, src, fixed)
			return nil
		}
		if err := os.WriteFile(path, fixed, 0644); err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
		}
		fmt.Printf(errors.InfoMsgFixedFile+"\n", path)
		return nil
	}

	reports, err := c.lintOnce(path, src)
	if err != nil {
		return err
	}
	for _, report := range reports {
		c.printReport(path, report)
	}
	c.problems += len(reports)
	return nil
}

// CheckFile lints the configured source file
func (c *checker) CheckFile() error {
	return c.CheckFileWithOutput(true)
}

func (c *checker) lintOnce(path string, src []byte) ([]linter.Report, error) {
	mod, err := parser.Parse(path, src)
	if err != nil {
		return nil, err
	}
	return linter.Lint(mod, c.config.IgnorePaths), nil
}

// applyAll repeatedly applies the available fixes until the file is
// clean. A violation without a fix persists across rounds, so it is
// printed and counted only on the terminal round, once.
func (c *checker) applyAll(path string, src []byte) ([]byte, error) {
	for round := 0; round < maxFixRounds; round++ {
		reports, err := c.lintOnce(path, src)
		if err != nil {
			return nil, err
		}

		fixes := c.pendingFixes(path, reports)
		if len(fixes) == 0 {
			return src, nil
		}
		src = applyFixes(src, fixes)
	}
	return nil, fmt.Errorf("%s: %s", path, errors.ErrMsgFixDidNotConverge)
}

// pendingFixes collects the applicable fixes from one round of reports.
// When none remain the residual violations are final; only then are they
// printed and counted, so a fixless violation is reported exactly once.
func (c *checker) pendingFixes(path string, reports []linter.Report) []*linter.Fix {
	var fixes []*linter.Fix
	for _, report := range reports {
		if report.Fix != nil {
			fixes = append(fixes, report.Fix)
		}
	}
	if len(fixes) == 0 {
		for _, report := range reports {
			c.printReport(path, report)
			c.problems++
		}
	}
	return fixes
}

// applyFixes applies non-overlapping fixes back to front so earlier
// offsets stay valid.
func applyFixes(src []byte, fixes []*linter.Fix) []byte {
	sort.Slice(fixes, func(i, j int) bool {
		return fixes[i].Range.Start > fixes[j].Range.Start
	})

	out := src
	for _, fix := range fixes {
		var b []byte
		b = append(b, out[:fix.Range.Start]...)
		b = append(b, fix.Text...)
		b = append(b, out[fix.Range.End:]...)
		out = b
	}
	return out
}

func (c *checker) printReport(path string, report linter.Report) {
	fmt.Printf("%s:%d:%d: %s %s\n",
		path, report.Decl.StartLine, report.Decl.StartCol,
		color.YellowString(string(report.Rule)), report.Message())
}

func printDiff(path string, before, after []byte) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(before), string(after), false)
	fmt.Printf("--- %s\n", path)
	fmt.Println(dmp.DiffPrettyText(diffs))
}

// ProcessFiles lints multiple source files
func (c *checker) ProcessFiles(filePaths []string) error {
	processedCount := 0
	errorCount := 0

	for _, filePath := range filePaths {
		c.config.FilePath = filePath
		if err := c.CheckFileWithOutput(false); err != nil {
			fmt.Printf(errors.InfoMsgErrorProcessing+"\n", filePath, err)
			errorCount++
		} else {
			processedCount++
		}
	}

	fmt.Printf(errors.InfoMsgCheckedCount, processedCount)
	if c.problems > 0 {
		fmt.Printf(errors.InfoMsgProblemCount, c.problems)
	}
	fmt.Println()

	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	if c.problems > 0 {
		return fmt.Errorf(errors.ErrMsgProblemsFound, c.problems)
	}
	return nil
}

// ProcessPath lints a file or directory path
func (c *checker) ProcessPath(path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		if err := c.CheckFile(); err != nil {
			return err
		}
		if c.problems > 0 {
			return fmt.Errorf(errors.ErrMsgProblemsFound, c.problems)
		}
		return nil
	}

	files, err := utils.FindSourceFiles(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindSourceFiles, err)
	}
	if len(files) == 0 {
		fmt.Printf(errors.InfoMsgNoSourceFilesFound+"\n", path)
		return nil
	}
	return c.ProcessFiles(files)
}
