package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsSourceFile(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		filename string
		want     bool
	}{
		{"app.js", true},
		{"app.jsx", true},
		{"app.mjs", true},
		{"app.cjs", true},
		{"app.ts", true},
		{"app.tsx", true},
		{"app.mts", true},
		{"app.cts", true},
		{"APP.JS", true},
		{"app.go", false},
		{"app.json", false},
		{"app.d.ts", true},
		{"README.md", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			req.Equal(tt.want, IsSourceFile(tt.filename), "IsSourceFile(%q)", tt.filename)
		})
	}
}

func TestFindSourceFiles(t *testing.T) {
	req := require.New(t)

	dir := t.TempDir()
	mustWrite := func(rel string) {
		path := filepath.Join(dir, rel)
		req.NoError(os.MkdirAll(filepath.Dir(path), 0755))
		req.NoError(os.WriteFile(path, []byte("export {}\n"), 0644))
	}

	mustWrite("index.js")
	mustWrite("src/app.ts")
	mustWrite("src/view.tsx")
	mustWrite("src/readme.md")
	mustWrite("node_modules/dep/index.js")
	mustWrite(".cache/gen.js")

	files, err := FindSourceFiles(dir)
	req.NoError(err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(dir, f)
		req.NoError(err)
		rel = append(rel, filepath.ToSlash(r))
	}
	req.ElementsMatch([]string{"index.js", "src/app.ts", "src/view.tsx"}, rel)
}

func TestIsDirectory(t *testing.T) {
	req := require.New(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "file.js")
	req.NoError(os.WriteFile(file, []byte(""), 0644))

	isDir, err := IsDirectory(dir)
	req.NoError(err)
	req.True(isDir)

	isDir, err = IsDirectory(file)
	req.NoError(err)
	req.False(isDir)

	_, err = IsDirectory(filepath.Join(dir, "missing"))
	req.Error(err)
}
