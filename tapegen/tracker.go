package tapegen

import (
	"context"
	"fmt"

	"github.com/reusee/tapegen/tapevm"
)

// Tracker is an Emitter that knows which slot the pointer is on.
type Tracker struct {
	emitter Emitter
	size    int
	index   int
}

func NewTracker(size int) *Tracker {
	if size <= 0 {
		panic(ErrZeroSize)
	}
	return &Tracker{
		size: size,
	}
}

func (t *Tracker) Index() int {
	return t.index
}

func (t *Tracker) Size() int {
	return t.size
}

func (t *Tracker) Source() string {
	return t.emitter.Source()
}

func (t *Tracker) Compile() (tapevm.Program, error) {
	return t.emitter.Compile()
}

func (t *Tracker) Run(input []byte) (*tapevm.Machine, error) {
	program, err := t.Compile()
	if err != nil {
		return nil, err
	}
	m := tapevm.NewMachine(t.size, input)
	m.Run(program)
	return m, nil
}

func (t *Tracker) RunContext(ctx context.Context, input []byte) (*tapevm.Machine, error) {
	program, err := t.Compile()
	if err != nil {
		return nil, err
	}
	m := tapevm.NewMachine(t.size, input)
	if err := m.RunContext(ctx, program); err != nil {
		return m, err
	}
	return m, nil
}

// MoveTo shifts the pointer to slot. The distance is linear: the circular
// tape is never used to take a shorter way around.
func (t *Tracker) MoveTo(slot int) {
	if slot < 0 || slot >= t.size {
		panic(fmt.Errorf("%w: %d, N is %d", ErrPointerOutOfRange, slot, t.size))
	}
	if slot < t.index {
		t.emitter.emitRun('<', t.index-slot)
	} else if slot > t.index {
		t.emitter.emitRun('>', slot-t.index)
	}
	t.index = slot
}

// RepeatWhileNonzero wraps body in a loop on the current slot. body must end
// on the slot it started from.
func (t *Tracker) RepeatWhileNonzero(body func()) {
	start := t.index
	t.emitter.Repeat(body)
	if t.index != start {
		panic(fmt.Errorf("%w: entered at %d, left at %d", ErrPointerMoved, start, t.index))
	}
}

// RepeatAt loops while slot is nonzero. body may move anywhere; the pointer
// is brought back to slot before each test.
func (t *Tracker) RepeatAt(slot int, body func()) {
	t.MoveTo(slot)
	t.RepeatWhileNonzero(func() {
		body()
		t.MoveTo(slot)
	})
}

func (t *Tracker) Increment() {
	t.emitter.Increment()
}

func (t *Tracker) Decrement() {
	t.emitter.Decrement()
}

func (t *Tracker) Add(value uint8) {
	t.emitter.Add(value)
}

func (t *Tracker) Sub(value uint8) {
	t.emitter.Sub(value)
}

func (t *Tracker) Read() {
	t.emitter.Read()
}

func (t *Tracker) Write() {
	t.emitter.Write()
}

func (t *Tracker) Zero() {
	t.RepeatWhileNonzero(t.emitter.Decrement)
}

func (t *Tracker) Set(value uint8) {
	t.Zero()
	t.Add(value)
}
