package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/brewgen/internal/core"
	"github.com/hay-kot/brewgen/internal/fetch"
	"github.com/hay-kot/brewgen/internal/generator"
	"github.com/hay-kot/brewgen/pkgs/printer"
	"github.com/hay-kot/brewgen/pkgs/styles"
)

type CheckCmd struct {
	coreFlags *core.Flags
	expr      string
}

func NewCheckCmd(coreFlags *core.Flags) *CheckCmd {
	return &CheckCmd{coreFlags: coreFlags}
}

func (cc *CheckCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:      "check",
		Usage:     "Verify that the formula files on disk are up to date",
		ArgsUsage: "[expression]",
		Description: `Re-renders each matching formula and compares the result against the file on
 disk. Exits non-zero if any formula is stale or missing, which makes the
 command usable as a release-pipeline gate.

 Examples:
	 brewgen check
	 brewgen check '"go" in tags'`,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := core.SetupEnv(cc.coreFlags.ConfigFilePath)
			if err != nil {
				return err
			}

			cc.expr = strings.Join(c.Args().Slice(), " ")

			log.Debug().Str("expr", cc.expr).Msg("check cmd")

			return cc.check(ctx, cfg)
		},
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

func (cc *CheckCmd) check(ctx context.Context, cfg core.ConfigFile) error {
	entries, err := selectFormulas(cfg, cc.expr)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		log.Info().Str("expr", cc.expr).Msg("no formulas matching selector found")
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := generator.New(fetch.New(), cfg.Strict)
	console := printer.ConsolePrinter

	console.Title("Checking formulas")

	outdated := 0

	for _, entry := range entries {
		res, err := gen.Render(ctx, jobFor(cfg, entry))
		if err != nil {
			return fmt.Errorf("failed to render formula %s: %w", entry.Name, err)
		}

		current, err := os.ReadFile(res.OutputPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			console.Fail(entry.Name + " " + styles.Subtle("missing"))
			outdated++
		case err != nil:
			return fmt.Errorf("failed to read formula file %s: %w", res.OutputPath, err)
		case string(current) != res.Rendered:
			console.Warn(entry.Name + " " + styles.Subtle("stale"))
			outdated++
		default:
			console.Success(entry.Name + " " + styles.Subtle("current"))
		}
	}

	if outdated > 0 {
		return fmt.Errorf("%d of %d formulas out of date, run 'brewgen generate'", outdated, len(entries))
	}

	return nil
}
