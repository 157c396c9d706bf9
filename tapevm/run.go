package tapevm

import "context"

// Run executes program to completion. There is no step limit.
func (m *Machine) Run(program Program) {
	_ = m.run(program, nil)
}

// RunContext is Run, stopping with ctx.Err() once ctx is done. The context is
// polled at every loop back-edge, so straight-line code always completes.
func (m *Machine) RunContext(ctx context.Context, program Program) error {
	done := ctx.Done()
	if done == nil {
		return m.run(program, nil)
	}
	return m.run(program, func() error {
		select {
		case <-done:
			return ctx.Err()
		default:
			return nil
		}
	})
}

func (m *Machine) run(program Program, check func() error) error {
	for _, inst := range program {
		m.Steps++
		switch inst.Op {

		case OpIncrement:
			m.Increment()

		case OpDecrement:
			m.Decrement()

		case OpShiftLeft:
			m.ShiftLeft()

		case OpShiftRight:
			m.ShiftRight()

		case OpRead:
			m.Read()

		case OpWrite:
			m.Write()

		case OpRepeat:
			if err := m.repeat(func() error {
				return m.run(inst.Body, check)
			}, check); err != nil {
				return err
			}

		}
	}
	return nil
}

// RunSource parses source and runs it on a fresh tape.
func RunSource(size int, source string, input []byte) (*Machine, error) {
	program, err := Parse(source)
	if err != nil {
		return nil, err
	}
	m := NewMachine(size, input)
	m.Run(program)
	return m, nil
}
