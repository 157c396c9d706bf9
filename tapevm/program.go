package tapevm

import "strings"

type Instruction struct {
	Op   OpCode
	Body Program // only for OpRepeat
}

type Program []Instruction

// String flattens the tree back to program text.
func (p Program) String() string {
	var b strings.Builder
	p.writeTo(&b)
	return b.String()
}

func (p Program) writeTo(b *strings.Builder) {
	for _, inst := range p {
		if inst.Op == OpRepeat {
			b.WriteByte('[')
			inst.Body.writeTo(b)
			b.WriteByte(']')
			continue
		}
		b.WriteByte(inst.Op.Byte())
	}
}

// Count returns the number of instructions, nested bodies included.
func (p Program) Count() int {
	n := 0
	for _, inst := range p {
		n++
		if inst.Op == OpRepeat {
			n += inst.Body.Count()
		}
	}
	return n
}

// Depth returns the maximum repeat nesting.
func (p Program) Depth() int {
	max := 0
	for _, inst := range p {
		if inst.Op != OpRepeat {
			continue
		}
		if d := inst.Body.Depth() + 1; d > max {
			max = d
		}
	}
	return max
}
