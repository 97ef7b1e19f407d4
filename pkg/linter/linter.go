// Package linter implements the import canonicalization checks: every
// import declaration binds exactly one name, and declarations are ordered
// by the name they bind locally.
package linter

import (
	"github.com/c5n8/js-imports-lint/pkg/ast"
	"github.com/c5n8/js-imports-lint/pkg/config"
)

// Lint runs the two mutually exclusive passes over mod. While any scanned
// declaration still binds more than one name only the split pass reports;
// ordering is checked only once every declaration is single-specifier, so
// post-split declarations are sorted on a later invocation.
func Lint(mod *ast.Module, rules []config.IgnoreRule) []Report {
	decls := scan(mod)
	if len(decls) == 0 {
		return nil
	}
	if reports := splitPass(decls); len(reports) > 0 {
		return reports
	}
	return sortPass(mod, decls, rules)
}

// scan returns the import declarations that bind at least one name.
// Side-effect imports have no specifiers and are never touched.
func scan(mod *ast.Module) []*ast.ImportDeclaration {
	var decls []*ast.ImportDeclaration
	for _, d := range mod.Decls {
		if len(d.Specifiers) > 0 {
			decls = append(decls, d)
		}
	}
	return decls
}
