// Package config loads the linter configuration: the ignore rules feeding
// the sort exception policy.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c5n8/js-imports-lint/pkg/errors"
)

// DefaultFile is the config file looked up when --config is not given.
const DefaultFile = ".jil.yaml"

// IgnoreRule exempts import declarations from sort ordering. A rule with
// no ImportNames exempts every import of Name; listing ImportNames keeps
// the listed bindings sortable while exempting the rest. The name
// "default" refers to a declaration's default binding.
type IgnoreRule struct {
	Name        string   `yaml:"name"`
	ImportNames []string `yaml:"importNames,omitempty"`
}

// Config is the on-disk configuration.
type Config struct {
	IgnorePaths []IgnoreRule `yaml:"ignorePaths"`
}

// Load reads and decodes the config file at path. A missing file yields
// the zero Config.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadConfig, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseConfig, err)
	}
	return cfg, nil
}
