package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/brewgen/internal/core"
	"github.com/hay-kot/brewgen/internal/fetch"
	"github.com/hay-kot/brewgen/internal/generator"
	"github.com/hay-kot/brewgen/internal/render"
	"github.com/hay-kot/brewgen/pkgs/styles"
)

type GenerateCmd struct {
	coreFlags *core.Flags
	flags     struct {
		DryRun      bool
		Interactive bool
	}
	expr string
}

func NewGenerateCmd(coreFlags *core.Flags) *GenerateCmd {
	return &GenerateCmd{coreFlags: coreFlags}
}

func (gc *GenerateCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Generate formula files from the configured templates",
		ArgsUsage: "[expression]",
		Description: `Downloads each configured source archive, computes its SHA-256, derives the
 class name, repository, and version, and renders the formula template into
 <formula_dir>/<name>.rb.

 Examples:
	 brewgen generate                       # all configured formulas
	 brewgen generate '"lint" in tags'      # formulas tagged with 'lint'
	 brewgen generate 'name == "vmatch"'    # a single formula by name
	 brewgen generate -i                    # pick formulas interactively
	 brewgen generate --dry-run             # print instead of writing

 Expression variables:
	 - name: formula name
	 - tags: array of tags`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "print the rendered formulas without writing them",
				Destination: &gc.flags.DryRun,
			},
			&cli.BoolFlag{
				Name:        "interactive",
				Aliases:     []string{"i"},
				Usage:       "select formulas interactively",
				Destination: &gc.flags.Interactive,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := core.SetupEnv(gc.coreFlags.ConfigFilePath)
			if err != nil {
				return err
			}

			gc.expr = strings.Join(c.Args().Slice(), " ")

			log.Debug().
				Bool("dry-run", gc.flags.DryRun).
				Bool("interactive", gc.flags.Interactive).
				Str("expr", gc.expr).
				Msg("generate cmd")

			return gc.generate(ctx, cfg)
		},
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

func (gc *GenerateCmd) generate(ctx context.Context, cfg core.ConfigFile) error {
	var (
		entries []core.FormulaEntry
		err     error
	)

	switch {
	case gc.flags.Interactive:
		entries, err = gc.selectInteractive(cfg)
	default:
		entries, err = selectFormulas(cfg, gc.expr)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		log.Info().Str("expr", gc.expr).Msg("no formulas matching selector found")
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := generator.New(fetch.New(), cfg.Strict)
	width := terminalWidth()

	for _, entry := range entries {
		fmt.Println(createStyledHeader("FORMULA", entry.Name, width))

		res, err := gc.renderWithSpinner(ctx, gen, jobFor(cfg, entry))
		if err != nil {
			return fmt.Errorf("failed to generate formula %s: %w", entry.Name, err)
		}

		if gc.flags.DryRun {
			printRendered(res)
			continue
		}

		if err := gen.Write(res); err != nil {
			return fmt.Errorf("failed to write formula %s: %w", entry.Name, err)
		}

		if !cfg.Strict {
			warnResidualTokens(res)
		}

		fmt.Printf("Status       %s\n", styles.Success("Generated"))
		fmt.Printf("SHA-256      %s\n", styles.Subtle(res.Replacements["SHA256"]))
		fmt.Printf("Output Path  %s\n", styles.Path(res.OutputPath))
		fmt.Println()
	}

	return nil
}

var spinnerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("10")) // Green

// renderWithSpinner runs the download-and-render step behind a spinner, since
// fetching the source archive is the only slow part of a run.
func (gc *GenerateCmd) renderWithSpinner(ctx context.Context, gen *generator.Generator, job generator.Job) (*generator.Result, error) {
	var (
		res       *generator.Result
		renderErr error
	)

	spin := spinner.New().
		Type(spinner.Line).
		Style(spinnerStyle).
		Title(" Downloading " + job.Formula.URL).
		Action(func() {
			res, renderErr = gen.Render(ctx, job)
		})

	if err := spin.Run(); err != nil {
		return nil, err
	}

	return res, renderErr
}

func (gc *GenerateCmd) selectInteractive(cfg core.ConfigFile) ([]core.FormulaEntry, error) {
	if len(cfg.Formulas) == 0 {
		return nil, nil
	}

	entryMap := map[string]core.FormulaEntry{}
	options := []huh.Option[string]{}

	for _, entry := range cfg.Formulas {
		displayStr := entry.Name
		if len(entry.Tags) > 0 {
			displayStr = fmt.Sprintf("%s (%s)", entry.Name, strings.Join(entry.Tags, ", "))
		}

		options = append(options, huh.NewOption(displayStr, entry.Name))
		entryMap[entry.Name] = entry
	}

	var selected []string

	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Select Formulas to Generate").
			Options(options...).
			Value(&selected),
	))

	if err := form.Run(); err != nil {
		return nil, err
	}

	entries := make([]core.FormulaEntry, 0, len(selected))
	for _, name := range selected {
		entries = append(entries, entryMap[name])
	}

	return entries, nil
}

func printRendered(res *generator.Result) {
	fmt.Printf("Status       %s\n", styles.Warning("Dry Run"))
	fmt.Printf("Output Path  %s\n", styles.Path(res.OutputPath))
	fmt.Println()

	fmt.Println("Formula Body:")
	for line := range strings.SplitSeq(res.Rendered, "\n") {
		fmt.Println(styles.Subtle("  " + line))
	}

	fmt.Println()
}

// warnResidualTokens flags $TOKENs that survived a non-strict render.
func warnResidualTokens(res *generator.Result) {
	residual := render.Tokens(res.Rendered)
	if len(residual) == 0 {
		return
	}

	log.Warn().
		Str("formula", res.Job.Formula.AppName).
		Strs("tokens", residual).
		Msg("rendered output still contains tokens")
}
