package view

import (
	"fmt"
	"strings"

	"github.com/uJhin/qsched/internal/sched"
)

func symbolFor(g sched.Gate) string {
	s := g.Kind().String()
	if len(s) > gateBoxW-2 {
		s = s[:gateBoxW-2]
	}
	return s
}

// operandLabel names row r (a qubit for r < qubitCount, a classical
// register otherwise).
func operandLabel(r, qubitCount int) string {
	if r < qubitCount {
		return fmt.Sprintf("q[%d]", r)
	}
	return fmt.Sprintf("c[%d]", r-qubitCount)
}

func gateTouchesOperand(g sched.Gate, operand, qubitCount int) bool {
	if operand < qubitCount {
		for _, q := range g.QubitOperands() {
			if q == operand {
				return true
			}
		}
		return false
	}
	creg := operand - qubitCount
	for _, c := range g.ClassicalOperands() {
		if c == creg {
			return true
		}
	}
	return false
}

func render(m Model) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("schedule (%s)", m.direction)))

	qubitCount := 0
	if m.graph != nil {
		qubitCount = m.graph.QubitCount
	}

	header := cycleHeaderStyle.Render(strings.Repeat(" ", labelW))
	for i, c := range m.cycles {
		cell := fmt.Sprintf("%-*d", cellW, c)
		if i == m.cursorCol {
			cell = cursorGateStyle.Render(cell)
		} else {
			cell = cycleHeaderStyle.Render(cell)
		}
		header += cell
	}
	b.WriteString(header)
	b.WriteString("\n")

	for r := 0; r < m.operandRows; r++ {
		row := operandLabelStyle.Render(fmt.Sprintf("%-*s", labelW, operandLabel(r, qubitCount)))
		for _, c := range m.cycles {
			cell := wireStyle.Render(strings.Repeat("-", cellW-1)) + " "
			for _, g := range m.byCycle[c] {
				if gateTouchesOperand(g, r, qubitCount) {
					cell = fmt.Sprintf("%-*s", cellW, gateStyle.Render(symbolFor(g)))
					break
				}
			}
			row += cell
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(statusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString(wireStyle.Render(fmt.Sprintf("%d gates, %d cycles — left/right to scroll, q to quit", len(m.gates), len(m.cycles))))

	return frameStyle.Render(b.String())
}
