// Package parser turns JavaScript and TypeScript source text into the
// import-declaration view consumed by the linter, using Tree-sitter.
package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	"github.com/alexaandru/go-sitter-forest/typescript"
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/c5n8/js-imports-lint/pkg/ast"
	"github.com/c5n8/js-imports-lint/pkg/errors"
)

var (
	jsLang  = sitter.NewLanguage(javascript.GetLanguage())
	tsLang  = sitter.NewLanguage(typescript.GetLanguage())
	tsxLang = sitter.NewLanguage(tsx.GetLanguage())
)

// LanguageFor returns the grammar used for the given file name.
func LanguageFor(filename string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ts", ".mts", ".cts":
		return tsLang
	case ".tsx":
		return tsxLang
	default:
		return jsLang
	}
}

// Parse parses src and extracts the top-level import declarations and the
// top-level comment index. Import statements without an import clause
// (side-effect imports) are kept with an empty specifier list.
func Parse(filename string, src []byte) (*ast.Module, error) {
	p := sitter.NewParser()
	p.SetLanguage(LanguageFor(filename))

	tree, err := p.ParseString(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseFile, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, fmt.Errorf("%s: no root node", errors.ErrMsgFailedToParseFile)
	}

	mod := &ast.Module{Source: src}
	for i := range root.NamedChildCount() {
		child := root.NamedChild(i)
		switch child.Type() {
		case "comment":
			mod.Comments = append(mod.Comments, ast.Comment{
				Text:      nodeText(src, child),
				Range:     nodeRange(child),
				StartLine: int(child.StartPoint().Row) + 1,
				EndLine:   int(child.EndPoint().Row) + 1,
			})
		case "import_statement":
			mod.Decls = append(mod.Decls, importDecl(src, child))
		}
	}
	return mod, nil
}

func nodeText(src []byte, n sitter.Node) string {
	return string(src[n.StartByte():n.EndByte()])
}

func nodeRange(n sitter.Node) ast.Range {
	return ast.Range{Start: int(n.StartByte()), End: int(n.EndByte())}
}

func importDecl(src []byte, n sitter.Node) *ast.ImportDeclaration {
	decl := &ast.ImportDeclaration{
		Range:     nodeRange(n),
		StartLine: int(n.StartPoint().Row) + 1,
		EndLine:   int(n.EndPoint().Row) + 1,
		StartCol:  int(n.StartPoint().Column) + 1,
		Text:      nodeText(src, n),
	}

	if source := n.ChildByFieldName("source"); !source.IsNull() {
		decl.SourcePath = trimQuotes(nodeText(src, source))
	}

	for i := range n.ChildCount() {
		child := n.Child(i)
		switch child.Type() {
		case "type": // the `import type` keyword, not an identifier
			decl.TypeOnly = true
		case "import_clause":
			decl.Specifiers = clauseSpecifiers(src, child)
		}
	}
	return decl
}

// clauseSpecifiers extracts the bindings of an import clause in source
// order: an optional default binding, then a namespace or named imports.
func clauseSpecifiers(src []byte, clause sitter.Node) []ast.Specifier {
	var specs []ast.Specifier
	for i := range clause.NamedChildCount() {
		child := clause.NamedChild(i)
		switch child.Type() {
		case "identifier":
			specs = append(specs, ast.Specifier{
				Kind:      ast.DefaultSpecifier,
				LocalName: nodeText(src, child),
			})
		case "namespace_import":
			specs = append(specs, ast.Specifier{
				Kind:      ast.NamespaceSpecifier,
				LocalName: namespaceLocal(src, child),
			})
		case "named_imports":
			specs = append(specs, namedSpecifiers(src, child)...)
		}
	}
	return specs
}

func namespaceLocal(src []byte, n sitter.Node) string {
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if child.Type() == "identifier" {
			return nodeText(src, child)
		}
	}
	return ""
}

func namedSpecifiers(src []byte, n sitter.Node) []ast.Specifier {
	var specs []ast.Specifier
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if child.Type() != "import_specifier" {
			continue
		}

		spec := ast.Specifier{Kind: ast.NamedSpecifier}
		if name := child.ChildByFieldName("name"); !name.IsNull() {
			spec.ImportedName = trimQuotes(nodeText(src, name))
			spec.LocalName = spec.ImportedName
		}
		if alias := child.ChildByFieldName("alias"); !alias.IsNull() {
			spec.LocalName = nodeText(src, alias)
		}
		for j := range child.ChildCount() {
			if child.Child(j).Type() == "type" {
				spec.TypeOnly = true
			}
		}
		specs = append(specs, spec)
	}
	return specs
}

func trimQuotes(s string) string {
	return strings.Trim(s, `'"`)
}
