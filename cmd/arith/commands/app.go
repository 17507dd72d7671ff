package commands

import (
	"github.com/urfave/cli/v2"
)

// NewApp creates the arith CLI app.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "arith"
	app.Usage = "Evaluate floordiv, floormod and pow over columns of numbers"
	app.EnableBashCompletion = true

	app.Commands = []*cli.Command{
		NewEvalCommand(),
		NewFunctionsCommand(),
		NewVersionCommand(),
	}

	return app
}
