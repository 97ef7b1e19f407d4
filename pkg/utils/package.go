package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const maxAscents = 20 // how far up to look for a package.json

// GetPackageName walks up from filePath looking for a package.json and
// returns its "name" field, or "" when none is found.
func GetPackageName(filePath string) string {
	dir, err := filepath.Abs(filepath.Dir(filePath))
	if err != nil {
		return ""
	}

	for range maxAscents {
		data, err := os.ReadFile(filepath.Join(dir, "package.json"))
		if err == nil {
			var pkg struct {
				Name string `json:"name"`
			}
			if json.Unmarshal(data, &pkg) == nil && pkg.Name != "" {
				return pkg.Name
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
