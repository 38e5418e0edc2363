// Package commands implements the qsched CLI.
package commands

import (
	"github.com/spf13/cobra"
)

// RootCmd is the base command invoked when qsched runs with no subcommand.
var RootCmd = &cobra.Command{
	Use:   "qsched",
	Short: "qsched - critical-path instruction scheduler for quantum circuits",
	Long: `qsched builds a dependence graph over a straight-line quantum circuit
and schedules it with a critical-path list scheduler.

Commands:
  schedule       Schedule a circuit and print the resulting cycle assignment
  dot            Dump the dependence graph in Graphviz DOT form
  view           Open an interactive read-only viewer over a scheduled circuit
  dump           Schedule a circuit and write its graph snapshot as msgpack
  load-snapshot  Rehydrate a graph snapshot and print its scheduled cycles

Use "qsched [command] --help" for more information about a command.`,
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "path to a qsched config YAML file")
	RootCmd.PersistentFlags().Bool("alap", false, "schedule ALAP (as-late-as-possible) instead of ASAP")
	RootCmd.PersistentFlags().Bool("uniform", false, "balance cycle bundles after scheduling")
	RootCmd.PersistentFlags().StringP("program", "p", "", "path to the circuit file (QASM or YAML, by extension)")

	RootCmd.AddCommand(scheduleCmd)
	RootCmd.AddCommand(dotCmd)
	RootCmd.AddCommand(viewCmd)
	RootCmd.AddCommand(dumpCmd)
	RootCmd.AddCommand(loadSnapshotCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
