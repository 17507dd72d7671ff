package commands

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/chaisql/arith/internal/expr/functions"
)

// NewFunctionsCommand returns a cli.Command for "arith functions".
func NewFunctionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "functions",
		Usage: "List the available functions",
		Action: func(c *cli.Context) error {
			return listFunctions(c.App.Writer, functions.DefaultPackages())
		},
	}
}

func listFunctions(w io.Writer, pkgs functions.Packages) error {
	names := maps.Keys(pkgs)
	slices.Sort(names)

	for _, pkg := range names {
		fnames := maps.Keys(pkgs[pkg])
		slices.Sort(fnames)

		for _, fname := range fnames {
			prefix := ""
			if pkg != "" {
				prefix = pkg + "."
			}
			if _, err := fmt.Fprintf(w, "%s%s\n", prefix, pkgs[pkg][fname]); err != nil {
				return err
			}
		}
	}

	return nil
}
