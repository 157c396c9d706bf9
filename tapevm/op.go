package tapevm

type OpCode uint8

const (
	OpIncrement OpCode = iota + 1
	OpDecrement
	OpShiftLeft
	OpShiftRight
	OpRead
	OpWrite
	OpRepeat
)

var opBytes = [...]byte{
	OpIncrement:  '+',
	OpDecrement:  '-',
	OpShiftLeft:  '<',
	OpShiftRight: '>',
	OpRead:       ',',
	OpWrite:      '.',
}

// Byte returns the program text character of a leaf op. OpRepeat has none.
func (o OpCode) Byte() byte {
	if int(o) >= len(opBytes) {
		return 0
	}
	return opBytes[o]
}

func (o OpCode) String() string {
	switch o {
	case OpIncrement:
		return "increment"
	case OpDecrement:
		return "decrement"
	case OpShiftLeft:
		return "shift-left"
	case OpShiftRight:
		return "shift-right"
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	case OpRepeat:
		return "repeat"
	}
	return "unknown"
}

func leafOp(c byte) (OpCode, bool) {
	switch c {
	case '+':
		return OpIncrement, true
	case '-':
		return OpDecrement, true
	case '<':
		return OpShiftLeft, true
	case '>':
		return OpShiftRight, true
	case ',':
		return OpRead, true
	case '.':
		return OpWrite, true
	}
	return 0, false
}
