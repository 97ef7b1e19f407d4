package linter

import (
	"fmt"
	"strings"

	"github.com/c5n8/js-imports-lint/pkg/ast"
)

// splitPass reports every declaration binding more than one name, with a
// fix that decomposes it into one declaration per specifier. A specifier
// of unknown shape aborts the fix for that declaration only; the report
// is still emitted.
func splitPass(decls []*ast.ImportDeclaration) []Report {
	var reports []Report
	for _, decl := range decls {
		if len(decl.Specifiers) < 2 {
			continue
		}

		report := Report{Rule: RuleMultipleSpecifiers, Decl: decl}
		if text, err := splitText(decl); err == nil {
			report.Fix = &Fix{Range: decl.Range, Text: text}
		}
		reports = append(reports, report)
	}
	return reports
}

// splitText renders decl as one single-specifier declaration per binding,
// preserving specifier order and the verbatim source path.
func splitText(decl *ast.ImportDeclaration) (string, error) {
	keyword := "import"
	if decl.TypeOnly {
		keyword = "import type"
	}

	lines := make([]string, 0, len(decl.Specifiers))
	for _, spec := range decl.Specifiers {
		clause, err := specClause(spec)
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("%s %s from '%s'", keyword, clause, decl.SourcePath))
	}
	return strings.Join(lines, "\n"), nil
}

// specClause renders the binding clause for a single specifier. The
// type-only marker of a named specifier stays on the binding; the
// declaration-level marker is handled by the caller.
func specClause(spec ast.Specifier) (string, error) {
	switch spec.Kind {
	case ast.DefaultSpecifier:
		return spec.LocalName, nil
	case ast.NamespaceSpecifier:
		return "* as " + spec.LocalName, nil
	case ast.NamedSpecifier:
		name := spec.ImportedName
		if spec.LocalName != spec.ImportedName {
			name += " as " + spec.LocalName
		}
		if spec.TypeOnly {
			name = "type " + name
		}
		return "{ " + name + " }", nil
	default:
		return "", fmt.Errorf("unknown specifier kind %d", spec.Kind)
	}
}
