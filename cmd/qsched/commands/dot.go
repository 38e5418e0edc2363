package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uJhin/qsched/internal/sched"
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "dump the dependence graph in Graphviz DOT form",
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
		if _, err := s.ScheduleWithResources(rc.dir, sched.NewSlotResourceManager(nil, 0)); err != nil {
			return fmt.Errorf("commands: scheduling before dot dump: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), sched.WriteDOT(graph))
		return nil
	},
}
