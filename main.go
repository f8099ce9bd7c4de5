package main

import (
	"os"

	"github.com/FreeMasen/orbi-helpers/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
