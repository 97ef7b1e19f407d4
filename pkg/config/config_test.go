package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	req := require.New(t)

	t.Run("full config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".jil.yaml")
		content := `ignorePaths:
  - name: react
  - name: lodash
    importNames:
      - default
      - merge
`
		req.NoError(os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		req.NoError(err)
		req.Equal(Config{
			IgnorePaths: []IgnoreRule{
				{Name: "react"},
				{Name: "lodash", ImportNames: []string{"default", "merge"}},
			},
		}, cfg)
	})

	t.Run("missing file yields zero config", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		req.NoError(err)
		req.Empty(cfg.IgnorePaths)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".jil.yaml")
		req.NoError(os.WriteFile(path, []byte("ignorePaths: [unclosed"), 0644))

		_, err := Load(path)
		req.Error(err)
	})
}
