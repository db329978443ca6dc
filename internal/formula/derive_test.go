package formula

import (
	"errors"
	"testing"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "multi word",
			input: "vmatch-golangci-lint",
			want:  "VmatchGolangciLint",
		},
		{
			name:  "single word",
			input: "vmatch",
			want:  "Vmatch",
		},
		{
			name:  "consecutive hyphens",
			input: "foo--bar",
			want:  "FooBar",
		},
		{
			name:  "leading and trailing hyphens",
			input: "-foo-bar-",
			want:  "FooBar",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPascalCase(tt.input)
			if got != tt.want {
				t.Errorf("ToPascalCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToPascalCase_IdempotentOnOutput(t *testing.T) {
	out := ToPascalCase("vmatch-golangci-lint")
	if again := ToPascalCase(out); again != out {
		t.Errorf("ToPascalCase not stable on its own output: %q -> %q", out, again)
	}
}

func TestExtractRepo(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "tags archive url",
			url:  "https://github.com/anttiharju/vmatch/archive/refs/tags/build5.tar.gz",
			want: "github.com/anttiharju/vmatch",
		},
		{
			name: "repo embedded in local url path",
			url:  "http://127.0.0.1:8080/github.com/anttiharju/vmatch/archive/refs/tags/build5.tar.gz",
			want: "github.com/anttiharju/vmatch",
		},
		{
			name:    "no github segment",
			url:     "https://example.com/archive/refs/tags/build5.tar.gz",
			wantErr: true,
		},
		{
			name:    "repo without trailing path",
			url:     "https://github.com/anttiharju/vmatch",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractRepo(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractRepo(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrPatternMismatch) {
					t.Errorf("ExtractRepo(%q) error = %v, want ErrPatternMismatch", tt.url, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ExtractRepo(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "tags archive url",
			url:  "https://github.com/anttiharju/vmatch/archive/refs/tags/build5.tar.gz",
			want: "build5",
		},
		{
			name: "semver tag",
			url:  "https://github.com/owner/repo/archive/refs/tags/v1.2.3.tar.gz",
			want: "v1.2.3",
		},
		{
			name:    "missing tags segment",
			url:     "https://github.com/owner/repo/archive/build5.tar.gz",
			wantErr: true,
		},
		{
			name:    "wrong extension",
			url:     "https://github.com/owner/repo/archive/refs/tags/build5.zip",
			wantErr: true,
		},
		{
			name:    "tar.gz not at end",
			url:     "https://github.com/owner/repo/archive/refs/tags/build5.tar.gz/extra",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVersion(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractVersion(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrPatternMismatch) {
					t.Errorf("ExtractVersion(%q) error = %v, want ErrPatternMismatch", tt.url, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ExtractVersion(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
