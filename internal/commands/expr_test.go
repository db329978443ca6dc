package commands

import "testing"

func Test_compileExpr(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "empty defaults to match all",
			input: "",
		},
		{
			name:  "name comparison",
			input: `name == "vmatch"`,
		},
		{
			name:  "tag membership",
			input: `"go" in tags`,
		},
		{
			name:    "invalid syntax",
			input:   "invalid syntax @@",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := compileExpr(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("compileExpr() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && program == nil {
				t.Error("compileExpr() returned nil program without error")
			}
		})
	}
}

func Test_evalCompiledExpr(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		env        map[string]any
		want       bool
	}{
		{
			name:       "empty expression matches",
			expression: "",
			env:        map[string]any{"name": "x", "tags": []string{}},
			want:       true,
		},
		{
			name:       "tag present",
			expression: `"go" in tags`,
			env:        map[string]any{"name": "x", "tags": []string{"go", "lint"}},
			want:       true,
		},
		{
			name:       "tag absent",
			expression: `"cask" in tags`,
			env:        map[string]any{"name": "x", "tags": []string{"go"}},
			want:       false,
		},
		{
			name:       "name match",
			expression: `name == "vmatch"`,
			env:        map[string]any{"name": "vmatch", "tags": []string{}},
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := compileExpr(tt.expression)
			if err != nil {
				t.Fatalf("compileExpr() unexpected error = %v", err)
			}

			got, err := evalCompiledExpr(program, tt.env)
			if err != nil {
				t.Fatalf("evalCompiledExpr() unexpected error = %v", err)
			}

			if got != tt.want {
				t.Errorf("evaluation result = %v, want %v", got, tt.want)
			}
		})
	}
}
