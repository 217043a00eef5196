package main

import (
	"fmt"
	"os"

	"github.com/0xcro3dile/mapextract/internal/infrastructure/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", cli.Message(err))
		os.Exit(cli.ExitCode(err))
	}
}
