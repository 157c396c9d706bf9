package tapevm

import (
	"errors"
	"slices"
)

var (
	ErrZeroSize     = errors.New("cannot make a tape of size 0")
	ErrPointerMoved = errors.New("the pointer index unexpectedly changed in a repeat loop")
	ErrBadSnapshot  = errors.New("bad machine snapshot")
)

// Machine is the tape a program runs against. After a run it is also the
// result: Data is the final tape, Input the unconsumed input and Output every
// byte written.
type Machine struct {
	Data   []byte
	Index  int
	Input  []byte
	Output []byte
	Steps  int
}

func NewMachine(size int, input []byte) *Machine {
	if size <= 0 {
		panic(ErrZeroSize)
	}
	return &Machine{
		Data:  make([]byte, size),
		Input: slices.Clone(input),
	}
}

func (m *Machine) Size() int {
	return len(m.Data)
}

func (m *Machine) Current() byte {
	return m.Data[m.Index]
}

func (m *Machine) Increment() {
	m.Data[m.Index]++
}

func (m *Machine) Decrement() {
	m.Data[m.Index]--
}

func (m *Machine) ShiftLeft() {
	if m.Index == 0 {
		m.Index = len(m.Data) - 1
	} else {
		m.Index--
	}
}

func (m *Machine) ShiftRight() {
	if m.Index == len(m.Data)-1 {
		m.Index = 0
	} else {
		m.Index++
	}
}

// Read stores the next input byte in the current cell, or 0 once input is
// exhausted.
func (m *Machine) Read() {
	if len(m.Input) == 0 {
		m.Data[m.Index] = 0
		return
	}
	m.Data[m.Index] = m.Input[0]
	m.Input = m.Input[1:]
}

func (m *Machine) Write() {
	m.Output = append(m.Output, m.Data[m.Index])
}

// Repeat runs body while the current cell is nonzero. body must leave the
// pointer where it found it.
func (m *Machine) Repeat(body func(*Machine)) {
	_ = m.repeat(func() error {
		body(m)
		return nil
	}, nil)
}

// repeat panics with ErrPointerMoved when an iteration of body ends away from
// the cell the loop started on. check, if not nil, runs after each iteration;
// an error from body or check stops the loop.
func (m *Machine) repeat(body func() error, check func() error) error {
	start := m.Index
	for m.Data[m.Index] != 0 {
		if err := body(); err != nil {
			return err
		}
		if m.Index != start {
			panic(ErrPointerMoved)
		}
		if check != nil {
			if err := check(); err != nil {
				return err
			}
		}
	}
	return nil
}
