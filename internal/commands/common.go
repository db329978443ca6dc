// Package commands contains the CLI commands for the application.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/hay-kot/brewgen/internal/core"
	"github.com/hay-kot/brewgen/internal/formula"
	"github.com/hay-kot/brewgen/internal/generator"
)

// selectFormulas filters the configured formulas with a boolean expression
// over name and tags. An empty expression matches everything.
func selectFormulas(cfg core.ConfigFile, exprStr string) ([]core.FormulaEntry, error) {
	program, err := compileExpr(exprStr)
	if err != nil {
		return nil, fmt.Errorf("invalid expression: %w", err)
	}

	var matched []core.FormulaEntry

	for _, entry := range cfg.Formulas {
		enabled, err := evalCompiledExpr(program, map[string]any{
			"name": entry.Name,
			"tags": entry.Tags,
		})
		if err != nil {
			return nil, fmt.Errorf("expression evaluation failed for formula %s: %w", entry.Name, err)
		}

		if enabled {
			matched = append(matched, entry)
			log.Debug().Str("formula", entry.Name).Strs("tags", entry.Tags).Msg("included")
			continue
		}
		log.Debug().Str("formula", entry.Name).Strs("tags", entry.Tags).Msg("filtered")
	}

	return matched, nil
}

// jobFor builds a generation job from a config entry, applying the file-level
// defaults.
func jobFor(cfg core.ConfigFile, entry core.FormulaEntry) generator.Job {
	return generator.Job{
		Formula: formula.Config{
			AppName:     entry.Name,
			Description: entry.Description,
			Homepage:    entry.Homepage,
			URL:         entry.URL,
			GoVersion:   cfg.GoVersionFor(entry),
		},
		TemplatePath: cfg.TemplatePath(entry),
		OutputDir:    cfg.FormulaDir,
	}
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}

	return width
}

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true)
	bracketStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

// createStyledHeader renders a full-width "-- [LABEL] name ----" divider.
func createStyledHeader(label, name string, width int) string {
	leftPart := fmt.Sprintf("%s %s%s%s %s ",
		dividerStyle.Render("--"),
		bracketStyle.Render("["),
		labelStyle.Render(label),
		bracketStyle.Render("]"),
		nameStyle.Render(name),
	)

	// Visible length excluding ANSI codes: "-- [LABEL] name "
	visibleLength := 4 + len(label) + len(name) + 4

	remainingSpace := max(width-visibleLength, 0)

	return leftPart + dividerStyle.Render(strings.Repeat("-", remainingSpace))
}
