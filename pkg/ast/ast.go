// Package ast defines the read-only view of a parsed JavaScript or
// TypeScript module that the linter operates on: import declarations, the
// bindings they introduce, and the top-level comment index.
package ast

// SpecifierKind discriminates the three binding shapes an import
// declaration can carry.
type SpecifierKind int

const (
	DefaultSpecifier SpecifierKind = iota
	NamespaceSpecifier
	NamedSpecifier
)

// Specifier is one clause of an import declaration describing one binding.
type Specifier struct {
	Kind         SpecifierKind
	ImportedName string // named imports only; equals LocalName unless aliased
	LocalName    string // the name bound in module scope
	TypeOnly     bool   // `import { type T }`, named imports only
}

// Range is a half-open [Start, End) byte span in the original source.
type Range struct {
	Start int
	End   int
}

// ImportDeclaration is a single top-level import statement.
type ImportDeclaration struct {
	SourcePath string
	TypeOnly   bool // `import type ... from '...'`
	Specifiers []Specifier
	Range      Range
	StartLine  int    // 1-based
	EndLine    int
	StartCol   int    // 1-based
	Text       string // verbatim source text, including any semicolon
}

// Comment is a top-level comment, associated with declarations only by
// textual adjacency.
type Comment struct {
	Text      string
	Range     Range
	StartLine int
	EndLine   int
}

// Module is one parsed source file. Decls and Comments are in source order.
type Module struct {
	Source   []byte
	Decls    []*ImportDeclaration
	Comments []Comment
}

// CommentsBefore returns the run of comments between the preceding import
// declaration (or the start of the file) and decl, in source order.
func (m *Module) CommentsBefore(decl *ImportDeclaration) []Comment {
	lower := 0
	for _, d := range m.Decls {
		if d == decl {
			break
		}
		if d.Range.End > lower {
			lower = d.Range.End
		}
	}

	var run []Comment
	for _, c := range m.Comments {
		if c.Range.Start >= lower && c.Range.End <= decl.Range.Start {
			run = append(run, c)
		}
	}
	return run
}
