package tapevm

import (
	"fmt"
	"strings"
)

const DefaultWindowWidth = 8

// Window returns the cells around the pointer, at most width on each side
// (the pointer cell counts toward the right side), and the pointer's offset
// inside the returned slice.
func (m *Machine) Window(width int) (cells []byte, pointer int) {
	width = max(width, 1)
	start := max(0, m.Index-width)
	end := min(len(m.Data), m.Index+width)
	return m.Data[start:end], m.Index - start
}

// FormatCells renders cells as hex bytes, the pointer cell wrapped in <>.
func FormatCells(cells []byte, pointer int) string {
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i == pointer {
			fmt.Fprintf(&b, "<%02X>", c)
		} else {
			fmt.Fprintf(&b, "%02X", c)
		}
	}
	return b.String()
}

func (m *Machine) String() string {
	cells, pointer := m.Window(DefaultWindowWidth)
	return fmt.Sprintf("Machine{data: %s, input: %v, output: %v}",
		FormatCells(cells, pointer),
		m.Input,
		m.Output,
	)
}
