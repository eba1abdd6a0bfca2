package main

import (
	"errors"
	"os"

	"github.com/robinvdvleuten/paymentsfiles/cli"
)

func main() {
	var c cli.CLI
	parser, err := cli.New(&c)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(); err != nil {
		var cmdErr *cli.CommandError
		if errors.As(err, &cmdErr) {
			os.Exit(cmdErr.ExitCode())
		}
		parser.FatalIfErrorf(err)
	}
}
