package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/uJhin/qsched/internal/sched"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "schedule a circuit and write its graph snapshot as msgpack",
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := setup(cmd)
		if err != nil {
			return err
		}
		graph, err := rc.buildGraph()
		if err != nil {
			return err
		}

		s := sched.NewScheduler(graph, rc.cfg.SchedConfig())
		s.SetLogger(rc.log)
		if rc.cfg.Uniform {
			if _, err := s.ScheduleUniform(); err != nil {
				return fmt.Errorf("commands: scheduling before dump: %w", err)
			}
		} else if _, err := s.ScheduleWithResources(rc.dir, sched.NewSlotResourceManager(nil, 0)); err != nil {
			return fmt.Errorf("commands: scheduling before dump: %w", err)
		}

		data, err := sched.MarshalGraph(graph.Snapshot())
		if err != nil {
			return fmt.Errorf("commands: marshaling snapshot: %w", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		return os.WriteFile(out, data, 0o644)
	},
}

var loadSnapshotCmd = &cobra.Command{
	Use:   "load-snapshot",
	Short: "rehydrate a graph snapshot and print its scheduled cycles",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		if in == "" {
			return fmt.Errorf("commands: --in is required")
		}

		data, err := os.ReadFile(in)
		if err != nil {
			return fmt.Errorf("commands: reading %s: %w", in, err)
		}

		snap, err := sched.UnmarshalGraph(data)
		if err != nil {
			return fmt.Errorf("commands: unmarshaling snapshot: %w", err)
		}

		graph := snap.Rehydrate()
		gates := make([]sched.Gate, 0, len(graph.Nodes)-2)
		for _, n := range graph.Nodes {
			if n.ID == graph.Source || n.ID == graph.Sink {
				continue
			}
			gates = append(gates, n.Gate)
		}
		sort.SliceStable(gates, func(i, j int) bool { return gates[i].Cycle() < gates[j].Cycle() })

		for _, g := range gates {
			fmt.Fprintf(cmd.OutOrStdout(), "cycle %-4d %-16s qubits=%v classical=%v\n",
				g.Cycle(), g.Kind(), g.QubitOperands(), g.ClassicalOperands())
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().String("out", "", "file to write the msgpack snapshot to (default: stdout)")
	loadSnapshotCmd.Flags().String("in", "", "msgpack snapshot file to rehydrate")
}
