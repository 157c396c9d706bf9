package tapegen

import (
	"context"

	"github.com/reusee/tapegen/tapevm"
)

// Builder is a generation session: one tape of fixed size, the program text
// written so far and the slots handed out to cells.
//
// A Builder and its cells must be used from one goroutine at a time.
type Builder struct {
	tracker   *Tracker
	allocator *Allocator
}

func NewBuilder(size int) *Builder {
	return &Builder{
		tracker:   NewTracker(size),
		allocator: NewAllocator(size),
	}
}

func (b *Builder) Size() int {
	return b.tracker.Size()
}

// Live returns the number of cells not yet released.
func (b *Builder) Live() int {
	return b.allocator.Live()
}

func (b *Builder) Tracker() *Tracker {
	return b.tracker
}

func (b *Builder) Source() string {
	return b.tracker.Source()
}

func (b *Builder) Compile() (tapevm.Program, error) {
	return b.tracker.Compile()
}

func (b *Builder) Run(input []byte) (*tapevm.Machine, error) {
	return b.tracker.Run(input)
}

func (b *Builder) RunContext(ctx context.Context, input []byte) (*tapevm.Machine, error) {
	return b.tracker.RunContext(ctx, input)
}

// u8Uninit allocates a cell holding whatever the slot last held.
func (b *Builder) u8Uninit() *U8 {
	return &U8{
		builder: b,
		slot:    b.allocator.Allocate(),
	}
}

func (b *Builder) U8(value uint8) *U8 {
	c := b.u8Uninit()
	c.Set(value)
	return c
}

// Input allocates a cell and reads one input byte into it.
func (b *Builder) Input() *U8 {
	c := b.u8Uninit()
	c.Read()
	return c
}

func (b *Builder) boolUninit() *Bool {
	return &Bool{
		cell: b.u8Uninit(),
	}
}

func (b *Builder) Bool(value bool) *Bool {
	c := b.boolUninit()
	c.Set(value)
	return c
}
