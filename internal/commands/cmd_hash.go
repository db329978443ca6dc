package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/brewgen/internal/core"
	"github.com/hay-kot/brewgen/internal/fetch"
)

type HashCmd struct {
	coreFlags *core.Flags
}

func NewHashCmd(coreFlags *core.Flags) *HashCmd {
	return &HashCmd{coreFlags: coreFlags}
}

func (hc *HashCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:      "hash",
		Usage:     "Print the SHA-256 of a remote file",
		ArgsUsage: "<url>",
		Description: `Downloads the file at the given URL and prints its SHA-256, the same digest
 the generate command embeds into formulas.

 Example: brewgen hash https://github.com/anttiharju/vmatch/archive/refs/tags/build5.tar.gz`,
		Action: func(ctx context.Context, c *cli.Command) error {
			url := c.Args().First()
			if url == "" {
				return fmt.Errorf("missing required argument: url")
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			sum, err := fetch.New().ChecksumURL(ctx, url)
			if err != nil {
				return err
			}

			fmt.Println(sum)
			return nil
		},
	}

	app.Commands = append(app.Commands, cmd)
	return app
}
