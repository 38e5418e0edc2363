// Command qsched schedules straight-line quantum circuits with a
// critical-path list scheduler and optionally renders the result as a
// Graphviz graph or an interactive terminal viewer.
package main

import (
	"fmt"
	"os"

	"github.com/uJhin/qsched/cmd/qsched/commands"
)

var version = "dev"

func main() {
	commands.RootCmd.Version = version

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
