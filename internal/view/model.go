// Package view renders an already-scheduled circuit as a read-only,
// cycle-bundle grid using bubbletea — a viewer, not the editor the
// scheduler's inputs are normally authored with.
package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uJhin/qsched/internal/sched"
)

// Model is the bubbletea model for the schedule viewer.
type Model struct {
	graph     *sched.Graph
	gates     []sched.Gate
	direction string

	cycles      []int // sorted, distinct cycle values present in gates
	byCycle     map[int][]sched.Gate
	operandRows int

	cursorCol int // index into cycles
	width     int
	height    int
	statusMsg string
}

// New builds a Model over a scheduled gate sequence. gates is expected
// to already carry the cycles a Scheduler assigned.
func New(graph *sched.Graph, gates []sched.Gate, direction string) Model {
	m := Model{
		graph:     graph,
		gates:     gates,
		direction: direction,
		byCycle:   make(map[int][]sched.Gate),
	}
	for _, g := range gates {
		m.byCycle[g.Cycle()] = append(m.byCycle[g.Cycle()], g)
	}
	m.cycles = sortedKeys(m.byCycle)
	m.operandRows = graph.QubitCount + graph.CregCount
	return m
}

func sortedKeys(m map[int][]sched.Gate) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.cursorCol > 0 {
				m.cursorCol--
			}
		case "right", "l":
			if m.cursorCol < len(m.cycles)-1 {
				m.cursorCol++
			}
		case "home":
			m.cursorCol = 0
		case "end":
			m.cursorCol = max0(len(m.cycles) - 1)
		}
	}
	return m, nil
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func (m Model) View() string {
	return render(m)
}
