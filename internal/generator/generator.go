// Package generator runs the formula generation pipeline: read the template,
// build the token replacements, render, and write the formula file.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/hay-kot/brewgen/internal/formula"
	"github.com/hay-kot/brewgen/internal/render"
)

// Job describes one formula to generate.
type Job struct {
	Formula      formula.Config
	TemplatePath string
	OutputDir    string
}

// Result holds the rendered formula for a job before or after writing.
type Result struct {
	Job          Job
	Rendered     string
	Replacements map[string]string
	OutputPath   string
}

type Generator struct {
	hasher formula.Hasher
	strict bool
}

// New creates a Generator. When strict is set, rendering fails if the
// template contains a token outside the replacement mapping.
func New(hasher formula.Hasher, strict bool) *Generator {
	return &Generator{
		hasher: hasher,
		strict: strict,
	}
}

// Render reads the job's template and produces the rendered formula text
// without touching the output path.
func (g *Generator) Render(ctx context.Context, job Job) (*Result, error) {
	tmpl, err := os.ReadFile(job.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", job.TemplatePath, err)
	}

	vars, err := job.Formula.Replacements(ctx, g.hasher)
	if err != nil {
		return nil, err
	}

	if g.strict {
		if unresolved := render.FirstUnresolved(string(tmpl), vars); unresolved != nil {
			return nil, NewUnresolvedTokenError(job.TemplatePath, string(tmpl), unresolved)
		}
	}

	return &Result{
		Job:          job,
		Rendered:     render.Render(string(tmpl), vars),
		Replacements: vars,
		OutputPath:   filepath.Join(job.OutputDir, job.Formula.AppName+".rb"),
	}, nil
}

// Write persists a rendered result, creating the output directory if needed
// and overwriting any existing file.
func (g *Generator) Write(res *Result) error {
	if err := os.MkdirAll(res.Job.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(res.OutputPath, []byte(res.Rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write formula file: %w", err)
	}

	log.Info().
		Str("formula", res.Job.Formula.AppName).
		Str("output", res.OutputPath).
		Msg("formula written")

	return nil
}

// Run renders and writes a single job.
func (g *Generator) Run(ctx context.Context, job Job) (*Result, error) {
	res, err := g.Render(ctx, job)
	if err != nil {
		return nil, err
	}

	if err := g.Write(res); err != nil {
		return nil, err
	}

	return res, nil
}
