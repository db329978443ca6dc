package core

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "brewgen.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return path
}

func TestSetupEnv(t *testing.T) {
	path := writeConfig(t, `
template: templates/go-formula.rb.tmpl
go_version: "1.23"
strict: true
formulas:
  - name: vmatch-golangci-lint
    description: Wrapper for golangci-lint
    homepage: https://anttiharju.dev/vmatch/
    url: https://github.com/anttiharju/vmatch/archive/refs/tags/build5.tar.gz
    tags: [go, lint]
  - name: other-tool
    url: https://github.com/owner/other/archive/refs/tags/v1.tar.gz
    go_version: "1.22"
    template: templates/custom.rb.tmpl
`)

	cfg, err := SetupEnv(path)
	if err != nil {
		t.Fatalf("SetupEnv() unexpected error = %v", err)
	}

	configDir := filepath.Dir(path)

	if want := filepath.Join(configDir, "Formula"); cfg.FormulaDir != want {
		t.Errorf("FormulaDir = %q, want %q", cfg.FormulaDir, want)
	}

	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}

	if len(cfg.Formulas) != 2 {
		t.Fatalf("len(Formulas) = %d, want 2", len(cfg.Formulas))
	}

	first, second := cfg.Formulas[0], cfg.Formulas[1]

	if want := filepath.Join(configDir, "templates/go-formula.rb.tmpl"); cfg.TemplatePath(first) != want {
		t.Errorf("TemplatePath(first) = %q, want default %q", cfg.TemplatePath(first), want)
	}
	if want := filepath.Join(configDir, "templates/custom.rb.tmpl"); cfg.TemplatePath(second) != want {
		t.Errorf("TemplatePath(second) = %q, want override %q", cfg.TemplatePath(second), want)
	}

	if got := cfg.GoVersionFor(first); got != "1.23" {
		t.Errorf("GoVersionFor(first) = %q, want default 1.23", got)
	}
	if got := cfg.GoVersionFor(second); got != "1.22" {
		t.Errorf("GoVersionFor(second) = %q, want override 1.22", got)
	}
}

func TestSetupEnv_Defaults(t *testing.T) {
	path := writeConfig(t, `
template: go-formula.rb.tmpl
formulas: []
`)

	cfg, err := SetupEnv(path)
	if err != nil {
		t.Fatalf("SetupEnv() unexpected error = %v", err)
	}

	if cfg.GoVersion != "1.23" {
		t.Errorf("GoVersion = %q, want default 1.23", cfg.GoVersion)
	}
	if filepath.Base(cfg.FormulaDir) != "Formula" {
		t.Errorf("FormulaDir = %q, want default Formula dir", cfg.FormulaDir)
	}
	if cfg.Strict {
		t.Error("Strict = true, want default false")
	}
}

func TestSetupEnv_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "formula without name",
			content: `
template: go-formula.rb.tmpl
formulas:
  - url: https://github.com/owner/repo/archive/refs/tags/v1.tar.gz
`,
		},
		{
			name: "formula without url",
			content: `
template: go-formula.rb.tmpl
formulas:
  - name: tool
`,
		},
		{
			name: "no template anywhere",
			content: `
formulas:
  - name: tool
    url: https://github.com/owner/repo/archive/refs/tags/v1.tar.gz
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := SetupEnv(path); err == nil {
				t.Error("SetupEnv() expected validation error, got nil")
			}
		})
	}
}

func TestSetupEnv_MissingFile(t *testing.T) {
	if _, err := SetupEnv(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("SetupEnv() expected error for missing file, got nil")
	}
}

func TestSetupEnv_AbsolutePathsKept(t *testing.T) {
	path := writeConfig(t, `
formula_dir: /abs/Formula
template: /abs/templates/go.rb.tmpl
formulas: []
`)

	cfg, err := SetupEnv(path)
	if err != nil {
		t.Fatalf("SetupEnv() unexpected error = %v", err)
	}

	if cfg.FormulaDir != "/abs/Formula" {
		t.Errorf("FormulaDir = %q, want /abs/Formula", cfg.FormulaDir)
	}
	if got := cfg.TemplatePath(FormulaEntry{}); got != "/abs/templates/go.rb.tmpl" {
		t.Errorf("TemplatePath() = %q, want /abs/templates/go.rb.tmpl", got)
	}
}
