package linter

import "github.com/c5n8/js-imports-lint/pkg/ast"

// RuleID identifies which check a report came from.
type RuleID string

const (
	RuleMultipleSpecifiers RuleID = "avoidMultipleSpecifiersImports"
	RuleUnsorted           RuleID = "avoidUnsortedImports"
)

var messages = map[RuleID]string{
	RuleMultipleSpecifiers: "import declarations should bind exactly one name",
	RuleUnsorted:           "import declarations should be sorted by local name",
}

// Fix is a single textual substitution over the original source. Fixes
// produced by one pass never overlap.
type Fix struct {
	Range ast.Range
	Text  string
}

// Report is one rule violation, optionally carrying an auto-fix.
type Report struct {
	Rule RuleID
	Decl *ast.ImportDeclaration
	Fix  *Fix
}

// Message returns the human-readable description for the report's rule.
func (r Report) Message() string {
	return messages[r.Rule]
}
