package main

import (
	"os"

	"github.com/simonhull/firebird-suite/daogen/internal/commands"
	"github.com/simonhull/firebird-suite/daogen/internal/output"
)

func main() {
	if err := commands.Execute(); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
