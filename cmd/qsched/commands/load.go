package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uJhin/qsched/internal/circuit"
	"github.com/uJhin/qsched/internal/config"
	"github.com/uJhin/qsched/internal/logging"
	"github.com/uJhin/qsched/internal/sched"
)

// runContext bundles the pieces every subcommand needs after parsing
// its flags: the loaded program, the resolved config, a logger, and
// which direction to schedule in.
type runContext struct {
	program *circuit.Program
	cfg     *config.Config
	log     *logging.Logger
	dir     sched.Direction
}

func setup(cmd *cobra.Command) (*runContext, error) {
	programPath, _ := cmd.Flags().GetString("program")
	if programPath == "" {
		return nil, fmt.Errorf("commands: --program is required")
	}
	configPath, _ := cmd.Flags().GetString("config")
	alap, _ := cmd.Flags().GetBool("alap")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if uniform, _ := cmd.Flags().GetBool("uniform"); uniform {
		cfg.Uniform = true
	}

	level := logging.InfoLevel
	if cfg.Verbose {
		level = logging.DebugLevel
	}
	log := logging.New(logging.Config{Level: level, Writer: os.Stderr})

	program, err := loadProgram(programPath)
	if err != nil {
		return nil, err
	}

	dir := sched.Forward
	if alap {
		dir = sched.Backward
	}

	return &runContext{program: program, cfg: cfg, log: log, dir: dir}, nil
}

func loadProgram(path string) (*circuit.Program, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return circuit.LoadYAMLFile(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("commands: reading %s: %w", path, err)
		}
		return circuit.ParseQASM(string(data))
	}
}

func (rc *runContext) buildGraph() (*sched.Graph, error) {
	return sched.NewGraph(rc.program.SchedGates(), rc.program.Qubits, rc.program.Classical, rc.cfg.CycleTime, rc.cfg.SchedConfig())
}
