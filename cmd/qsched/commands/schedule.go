package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uJhin/qsched/internal/sched"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "schedule a circuit and print the resulting cycle assignment",
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := setup(cmd)
		if err != nil {
			return err
		}
		graph, err := rc.buildGraph()
		if err != nil {
			return err
		}

		uniform := rc.cfg.Uniform
		unconstrained, _ := cmd.Flags().GetBool("unconstrained")

		s := sched.NewScheduler(graph, rc.cfg.SchedConfig())
		s.SetLogger(rc.log)

		var scheduled []sched.Gate
		switch {
		case uniform:
			scheduled, err = s.ScheduleUniform()
		case unconstrained:
			scheduled, err = s.ScheduleUnconstrained(rc.dir)
		default:
			scheduled, err = s.ScheduleWithResources(rc.dir, sched.NewSlotResourceManager(nil, 0))
		}
		if err != nil {
			return fmt.Errorf("commands: scheduling: %w", err)
		}

		for _, g := range scheduled {
			fmt.Fprintf(cmd.OutOrStdout(), "cycle %-4d %-16s qubits=%v classical=%v\n",
				g.Cycle(), g.Kind(), g.QubitOperands(), g.ClassicalOperands())
		}
		if rc.cfg.PrintDotGraphs {
			fmt.Fprint(cmd.OutOrStdout(), sched.WriteDOT(graph))
		}
		return nil
	},
}

func init() {
	scheduleCmd.Flags().Bool("unconstrained", false, "use the closed-form pass instead of the resource-constrained list scheduler")
}
