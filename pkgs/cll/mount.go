// Package cll holds small helpers for assembling urfave/cli/v3 applications.
package cll

import "github.com/urfave/cli/v3"

// Registerable is implemented by command constructors that mount themselves
// onto a root command.
type Registerable interface {
	Register(*cli.Command) *cli.Command
}

// Register mounts each Registerable onto the root command in order.
//
//	root := &cli.Command{Name: "brewgen"}
//	root = cll.Register(root, generateCmd, checkCmd, hashCmd)
func Register(root *cli.Command, subs ...Registerable) *cli.Command {
	for _, s := range subs {
		root = s.Register(root)
	}

	return root
}

// EnvWithPrefix returns a helper that builds env var value sources sharing a
// common prefix, so every variable the app reads is namespaced.
//
//	envvars := cll.EnvWithPrefix("BREWGEN_")
//	&cli.StringFlag{Name: "config", Sources: envvars("CONFIG_PATH")}
func EnvWithPrefix(prefix string) func(strs ...string) cli.ValueSourceChain {
	return func(strs ...string) cli.ValueSourceChain {
		withPrefix := make([]string, len(strs))

		for i, str := range strs {
			withPrefix[i] = prefix + str
		}

		return cli.EnvVars(withPrefix...)
	}
}
