package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/uJhin/qsched/internal/sched"
	"github.com/uJhin/qsched/internal/view"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "open an interactive read-only viewer over a scheduled circuit",
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

		var scheduled []sched.Gate
		if rc.cfg.Uniform {
			scheduled, err = s.ScheduleUniform()
		} else {
			scheduled, err = s.ScheduleWithResources(rc.dir, sched.NewSlotResourceManager(nil, 0))
		}
		if err != nil {
			return fmt.Errorf("commands: scheduling: %w", err)
		}

		m := view.New(graph, scheduled, rc.dir.String())
		_, err = tea.NewProgram(m).Run()
		return err
	},
}
