package linter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/c5n8/js-imports-lint/pkg/ast"
	"github.com/c5n8/js-imports-lint/pkg/config"
)

// DefaultImportName is the reserved pseudo-name in importNames matching a
// declaration's default binding rather than a named binding called
// "default".
const DefaultImportName = "default"

// collator gives the locale-aware ordering of local names.
var collator = collate.New(language.Und)

// sortPass checks each contiguous run of eligible declarations against
// its canonical order and reports every diverging run with one combined
// fix. Every declaration is single-specifier here; multi-specifier ones
// made the split pass report and return first.
func sortPass(mod *ast.Module, decls []*ast.ImportDeclaration, rules []config.IgnoreRule) []Report {
	var eligible []*ast.ImportDeclaration
	for _, decl := range decls {
		if !exemptFromSorting(decl, rules) {
			eligible = append(eligible, decl)
		}
	}

	var reports []Report
	for _, run := range sortableRuns(mod, eligible) {
		if report := checkRun(mod, run); report != nil {
			reports = append(reports, *report)
		}
	}
	return reports
}

// sortableRuns splits the eligible declarations into contiguous runs.
// Anything between two declarations other than whitespace and comments —
// an exempt import, a side-effect import, unrelated statements — breaks
// the run, so a fix never covers text it does not re-render and nothing
// is ever reordered across such a declaration.
func sortableRuns(mod *ast.Module, eligible []*ast.ImportDeclaration) [][]*ast.ImportDeclaration {
	var runs [][]*ast.ImportDeclaration
	var run []*ast.ImportDeclaration
	for _, decl := range eligible {
		if len(run) > 0 && !contiguous(mod, run[len(run)-1], decl) {
			runs = append(runs, run)
			run = nil
		}
		run = append(run, decl)
	}
	if len(run) > 0 {
		runs = append(runs, run)
	}
	return runs
}

// contiguous reports whether only whitespace and comments separate the
// two declarations in the original source.
func contiguous(mod *ast.Module, prev, next *ast.ImportDeclaration) bool {
	pos := prev.Range.End
	for _, c := range mod.Comments {
		if c.Range.Start < pos || c.Range.End > next.Range.Start {
			continue
		}
		if len(strings.TrimSpace(string(mod.Source[pos:c.Range.Start]))) > 0 {
			return false
		}
		pos = c.Range.End
	}
	return len(strings.TrimSpace(string(mod.Source[pos:next.Range.Start]))) == 0
}

// checkRun compares one run against its canonical order and reports the
// first divergence with one combined fix for the run.
func checkRun(mod *ast.Module, run []*ast.ImportDeclaration) *Report {
	sorted := make([]*ast.ImportDeclaration, len(run))
	copy(sorted, run)
	sort.SliceStable(sorted, func(i, j int) bool {
		return collator.CompareString(localName(sorted[i]), localName(sorted[j])) < 0
	})

	diverged := -1
	for i := range run {
		if run[i] != sorted[i] {
			diverged = i
			break
		}
	}
	if diverged < 0 {
		return nil
	}

	return &Report{
		Rule: RuleUnsorted,
		Decl: run[diverged],
		Fix:  sortFix(mod, run, sorted),
	}
}

// localName is the name a declaration's sole specifier binds locally.
func localName(decl *ast.ImportDeclaration) string {
	return decl.Specifiers[0].LocalName
}

// exemptFromSorting reports whether any ignore rule protects decl from
// reordering.
func exemptFromSorting(decl *ast.ImportDeclaration, rules []config.IgnoreRule) bool {
	for _, rule := range rules {
		if ruleMatches(rule, decl) {
			return true
		}
	}
	return false
}

// ruleMatches implements the exception policy: a rule with no importNames
// protects its whole path; one with importNames protects the path except
// the bindings it lists.
func ruleMatches(rule config.IgnoreRule, decl *ast.ImportDeclaration) bool {
	if rule.Name != decl.SourcePath {
		return false
	}
	if len(rule.ImportNames) == 0 {
		return true
	}
	for _, name := range rule.ImportNames {
		if importNameMatches(name, decl.Specifiers[0]) {
			return false
		}
	}
	return true
}

// importNameMatches resolves the "default" pseudo-name against the
// specifier shape.
func importNameMatches(name string, spec ast.Specifier) bool {
	if name == DefaultImportName {
		return spec.Kind == ast.DefaultSpecifier
	}
	return spec.Kind == ast.NamedSpecifier && spec.ImportedName == name
}

// sortFix builds one replacement covering the run. Each declaration is
// re-rendered with the comments attached to it in the original source;
// when the run's first declaration carries attached comments the span
// starts at the first of them, so a comment traveling with a moved
// declaration is never also left behind.
func sortFix(mod *ast.Module, original, sorted []*ast.ImportDeclaration) *Fix {
	start := original[0].Range.Start
	if run := attachedComments(mod, original[0]); len(run) > 0 {
		start = run[0].Range.Start
	}
	end := original[len(original)-1].Range.End

	chunks := make([]string, 0, len(sorted))
	for _, decl := range sorted {
		var b strings.Builder
		for _, c := range attachedComments(mod, decl) {
			b.WriteString(c.Text)
			b.WriteString("\n")
		}
		b.WriteString(decl.Text)
		chunks = append(chunks, b.String())
	}

	return &Fix{
		Range: ast.Range{Start: start, End: end},
		Text:  strings.Join(chunks, "\n"),
	}
}

// attachedComments returns the comment run preceding decl when it sits
// close enough to travel with it: at most one line between the end of the
// last comment and the start of the declaration.
func attachedComments(mod *ast.Module, decl *ast.ImportDeclaration) []ast.Comment {
	run := mod.CommentsBefore(decl)
	if len(run) == 0 {
		return nil
	}
	if decl.StartLine-run[len(run)-1].EndLine > 1 {
		return nil
	}
	return run
}
