// Package core contains the configuration file types and loading for brewgen.
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

const (
	defaultFormulaDir = "Formula"
	defaultGoVersion  = "1.23"
)

// ConfigFile is the parsed brewgen.yml document. All relative paths are
// resolved against the directory containing the config file.
type ConfigFile struct {
	FormulaDir string         `yaml:"formula_dir"`
	Template   string         `yaml:"template"`
	GoVersion  string         `yaml:"go_version"`
	Strict     bool           `yaml:"strict"`
	Formulas   []FormulaEntry `yaml:"formulas"`

	ConfigDir string `yaml:"-"`
}

// FormulaEntry is one formula definition in the config file. Template and
// GoVersion fall back to the file-level defaults when empty.
type FormulaEntry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Homepage    string   `yaml:"homepage"`
	URL         string   `yaml:"url"`
	GoVersion   string   `yaml:"go_version"`
	Template    string   `yaml:"template"`
	Tags        []string `yaml:"tags"`
}

// SetupEnv loads the config file and resolves all paths relative to its
// directory.
func SetupEnv(cfgpath string) (ConfigFile, error) {
	cfg := ConfigFile{
		FormulaDir: defaultFormulaDir,
		GoVersion:  defaultGoVersion,
	}

	absolutePath, err := filepath.Abs(cfgpath)
	if err != nil {
		return cfg, err
	}

	cfg.ConfigDir = filepath.Dir(absolutePath)

	log.Debug().Str("config", absolutePath).Msg("loading configuration")

	data, err := os.ReadFile(absolutePath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", cfgpath, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", cfgpath, err)
	}

	if cfg.FormulaDir == "" {
		cfg.FormulaDir = defaultFormulaDir
	}
	if cfg.GoVersion == "" {
		cfg.GoVersion = defaultGoVersion
	}

	cfg.FormulaDir = cfg.resolve(cfg.FormulaDir)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c ConfigFile) validate() error {
	for i, f := range c.Formulas {
		if f.Name == "" {
			return fmt.Errorf("formula at index %d has no name", i)
		}
		if f.URL == "" {
			return fmt.Errorf("formula %s has no url", f.Name)
		}
		if f.Template == "" && c.Template == "" {
			return fmt.Errorf("formula %s has no template and no default template is set", f.Name)
		}
	}

	return nil
}

// TemplatePath returns the resolved template path for a formula entry,
// falling back to the file-level default.
func (c ConfigFile) TemplatePath(f FormulaEntry) string {
	tmpl := f.Template
	if tmpl == "" {
		tmpl = c.Template
	}

	return c.resolve(tmpl)
}

// GoVersionFor returns the language version for a formula entry, falling back
// to the file-level default.
func (c ConfigFile) GoVersionFor(f FormulaEntry) string {
	if f.GoVersion != "" {
		return f.GoVersion
	}

	return c.GoVersion
}

func (c ConfigFile) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(c.ConfigDir, path)
}
