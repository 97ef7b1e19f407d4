package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPackageName(t *testing.T) {
	req := require.New(t)

	t.Run("finds the nearest package.json", func(t *testing.T) {
		dir := t.TempDir()
		req.NoError(os.WriteFile(filepath.Join(dir, "package.json"),
			[]byte(`{"name": "my-app", "version": "1.0.0"}`), 0644))

		src := filepath.Join(dir, "src", "deep")
		req.NoError(os.MkdirAll(src, 0755))
		file := filepath.Join(src, "index.js")
		req.NoError(os.WriteFile(file, []byte(""), 0644))

		req.Equal("my-app", GetPackageName(file))
	})

	t.Run("inner package.json wins", func(t *testing.T) {
		dir := t.TempDir()
		req.NoError(os.WriteFile(filepath.Join(dir, "package.json"),
			[]byte(`{"name": "outer"}`), 0644))

		inner := filepath.Join(dir, "packages", "ui")
		req.NoError(os.MkdirAll(inner, 0755))
		req.NoError(os.WriteFile(filepath.Join(inner, "package.json"),
			[]byte(`{"name": "inner"}`), 0644))
		file := filepath.Join(inner, "index.js")
		req.NoError(os.WriteFile(file, []byte(""), 0644))

		req.Equal("inner", GetPackageName(file))
	})

	t.Run("malformed package.json is skipped", func(t *testing.T) {
		dir := t.TempDir()
		req.NoError(os.WriteFile(filepath.Join(dir, "package.json"),
			[]byte(`{"name": "outer"}`), 0644))

		inner := filepath.Join(dir, "broken")
		req.NoError(os.MkdirAll(inner, 0755))
		req.NoError(os.WriteFile(filepath.Join(inner, "package.json"),
			[]byte(`not json`), 0644))
		file := filepath.Join(inner, "index.js")
		req.NoError(os.WriteFile(file, []byte(""), 0644))

		req.Equal("outer", GetPackageName(file))
	})
}
