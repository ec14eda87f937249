package main

import (
	"fmt"
	"os"

	"github.com/dwsmith1983/arrival/internal/commands"
)

var version = "dev"

func main() {
	deps := commands.HostDeps()
	root := commands.NewRootCmd(version, deps)

	if err := commands.Execute(root, deps); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
