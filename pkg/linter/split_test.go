package linter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c5n8/js-imports-lint/pkg/ast"
	"github.com/c5n8/js-imports-lint/pkg/parser"
)

func parseModule(t *testing.T, filename, src string) *ast.Module {
	t.Helper()
	mod, err := parser.Parse(filename, []byte(src))
	require.NoError(t, err)
	return mod
}

func TestSplitText(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			"two named bindings",
			`import { a, b } from 'x';`,
			"import { a } from 'x'\nimport { b } from 'x'",
		},
		{
			"source order preserved",
			`import { b, a } from 'x';`,
			"import { b } from 'x'\nimport { a } from 'x'",
		},
		{
			"default plus named",
			`import a, { b } from 'x';`,
			"import a from 'x'\nimport { b } from 'x'",
		},
		{
			"default plus namespace",
			`import a, * as ns from 'x';`,
			"import a from 'x'\nimport * as ns from 'x'",
		},
		{
			"aliased named binding",
			`import { a as b, c } from 'x';`,
			"import { a as b } from 'x'\nimport { c } from 'x'",
		},
		{
			"type-only declaration",
			`import type { a, b } from 'x';`,
			"import type { a } from 'x'\nimport type { b } from 'x'",
		},
		{
			"type-only named binding",
			`import { type a, b } from 'x';`,
			"import { type a } from 'x'\nimport { b } from 'x'",
		},
		{
			"double-quoted path kept verbatim",
			`import { a, b } from "pkg/sub";`,
			"import { a } from 'pkg/sub'\nimport { b } from 'pkg/sub'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod := parseModule(t, "test.ts", tt.source)
			req.Len(mod.Decls, 1)

			got, err := splitText(mod.Decls[0])
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func TestSplitPass(t *testing.T) {
	req := require.New(t)

	t.Run("reports every offending declaration", func(t *testing.T) {
		mod := parseModule(t, "test.js",
			"import { a, b } from 'x';\nimport { c } from 'y';\nimport { d, e } from 'z';\n")

		reports := splitPass(scan(mod))
		req.Len(reports, 2)
		req.Equal(RuleMultipleSpecifiers, reports[0].Rule)
		req.Equal("x", reports[0].Decl.SourcePath)
		req.Equal("z", reports[1].Decl.SourcePath)
		req.NotNil(reports[0].Fix)
		req.Equal(reports[0].Decl.Range, reports[0].Fix.Range)
	})

	t.Run("idempotent on single-specifier output", func(t *testing.T) {
		mod := parseModule(t, "test.js",
			"import { a } from 'x'\nimport { b } from 'x'\n")

		req.Empty(splitPass(scan(mod)))
	})
}

func TestSpecClause_UnknownKind(t *testing.T) {
	req := require.New(t)

	_, err := specClause(ast.Specifier{Kind: ast.SpecifierKind(42), LocalName: "a"})
	req.Error(err)
}

func TestSplitPass_MalformedSpecifierReportsWithoutFix(t *testing.T) {
	req := require.New(t)

	decl := &ast.ImportDeclaration{
		SourcePath: "x",
		Specifiers: []ast.Specifier{
			{Kind: ast.NamedSpecifier, ImportedName: "a", LocalName: "a"},
			{Kind: ast.SpecifierKind(42), LocalName: "b"},
		},
	}

	reports := splitPass([]*ast.ImportDeclaration{decl})
	req.Len(reports, 1)
	req.Equal(RuleMultipleSpecifiers, reports[0].Rule)
	req.Nil(reports[0].Fix)
}
