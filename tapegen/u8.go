package tapegen

import "fmt"

// U8 is a byte cell. It owns its slot until Release.
type U8 struct {
	builder  *Builder
	slot     int
	released bool
}

func (c *U8) Slot() int {
	return c.slot
}

func (c *U8) Builder() *Builder {
	return c.builder
}

func (c *U8) Released() bool {
	return c.released
}

// Release returns the slot to the pool. Releasing twice is a no-op.
func (c *U8) Release() {
	if c.released {
		return
	}
	c.builder.allocator.Deallocate(c.slot)
	c.released = true
}

func (c *U8) check() {
	if c.released {
		panic(fmt.Errorf("%w: slot %d", ErrReleased, c.slot))
	}
}

func (c *U8) checkOperand(other *U8) {
	c.check()
	other.check()
	if other.builder != c.builder {
		panic(ErrForeignCell)
	}
}

// at moves the pointer onto this cell.
func (c *U8) at() *Tracker {
	c.check()
	t := c.builder.tracker
	t.MoveTo(c.slot)
	return t
}

func (c *U8) Read() {
	c.at().Read()
}

func (c *U8) Write() {
	c.at().Write()
}

func (c *U8) Zero() {
	c.at().Zero()
}

func (c *U8) Set(value uint8) {
	c.at().Set(value)
}

func (c *U8) Inc() {
	c.at().Increment()
}

func (c *U8) Dec() {
	c.at().Decrement()
}

func (c *U8) Add(value uint8) {
	c.at().Add(value)
}

func (c *U8) Sub(value uint8) {
	c.at().Sub(value)
}

// WhileNonzero loops body while this cell is nonzero.
func (c *U8) WhileNonzero(body func()) {
	c.check()
	c.builder.tracker.RepeatAt(c.slot, body)
}

// MoveInto sets every destination to this cell's value in a single pass,
// leaving 0 behind.
func (c *U8) MoveInto(dsts ...*U8) {
	for _, dst := range dsts {
		c.checkOperand(dst)
		if dst == c {
			panic(ErrAliased)
		}
	}
	for _, dst := range dsts {
		dst.Zero()
	}
	c.WhileNonzero(func() {
		c.Dec()
		for _, dst := range dsts {
			dst.Inc()
		}
	})
}

func (c *U8) MoveFrom(src *U8) {
	src.MoveInto(c)
}

// CopyInto sets dst to this cell's value, keeping this cell intact.
func (c *U8) CopyInto(dst *U8) {
	c.checkOperand(dst)
	if dst == c {
		return
	}
	temp := c.builder.u8Uninit()
	defer temp.Release()
	c.MoveInto(temp)
	temp.MoveInto(c, dst)
}

func (c *U8) CopyFrom(src *U8) {
	src.CopyInto(c)
}

func (c *U8) Clone() *U8 {
	c.check()
	ret := c.builder.u8Uninit()
	c.CopyInto(ret)
	return ret
}

// AddAndZero adds other into this cell, zeroing other.
func (c *U8) AddAndZero(other *U8) {
	c.checkOperand(other)
	if other == c {
		panic(ErrAliased)
	}
	other.WhileNonzero(func() {
		other.Dec()
		c.Inc()
	})
}

// SubAndZero subtracts other from this cell, zeroing other.
func (c *U8) SubAndZero(other *U8) {
	c.checkOperand(other)
	if other == c {
		panic(ErrAliased)
	}
	other.WhileNonzero(func() {
		other.Dec()
		c.Dec()
	})
}

func (c *U8) AddCell(other *U8) {
	temp := other.Clone()
	defer temp.Release()
	c.AddAndZero(temp)
}

func (c *U8) SubCell(other *U8) {
	temp := other.Clone()
	defer temp.Release()
	c.SubAndZero(temp)
}

// Negate sets this cell to 0 - value.
func (c *U8) Negate() {
	c.check()
	temp := c.builder.u8Uninit()
	defer temp.Release()
	c.MoveInto(temp)
	c.SubAndZero(temp)
}

// MulAssign multiplies this cell by other by repeated addition. other is
// left unchanged and may be this cell.
func (c *U8) MulAssign(other *U8) {
	c.checkOperand(other)
	if other == c {
		other = c.Clone()
		defer other.Release()
	}
	counter := c.builder.u8Uninit()
	defer counter.Release()
	c.MoveInto(counter)
	counter.WhileNonzero(func() {
		counter.Dec()
		c.AddCell(other)
	})
}

func (c *U8) Plus(other *U8) *U8 {
	ret := c.Clone()
	ret.AddCell(other)
	return ret
}

func (c *U8) Minus(other *U8) *U8 {
	ret := c.Clone()
	ret.SubCell(other)
	return ret
}

func (c *U8) Times(other *U8) *U8 {
	ret := c.Clone()
	ret.MulAssign(other)
	return ret
}

// IsZero consumes this cell: it is zeroed and released.
func (c *U8) IsZero() *Bool {
	c.check()
	ret := c.builder.Bool(true)
	c.WhileNonzero(func() {
		c.Zero()
		ret.cell.Dec()
	})
	c.Release()
	return ret
}

// IsNonzero consumes this cell: it is zeroed and released.
func (c *U8) IsNonzero() *Bool {
	c.check()
	ret := c.builder.Bool(false)
	c.WhileNonzero(func() {
		c.Zero()
		ret.cell.Inc()
	})
	c.Release()
	return ret
}

func (c *U8) Equals(value uint8) *Bool {
	temp := c.Clone()
	temp.Sub(value)
	return temp.IsZero()
}

func (c *U8) NotEquals(value uint8) *Bool {
	temp := c.Clone()
	temp.Sub(value)
	return temp.IsNonzero()
}

func (c *U8) EqualsCell(other *U8) *Bool {
	temp := c.Clone()
	temp.SubCell(other)
	return temp.IsZero()
}

func (c *U8) NotEqualsCell(other *U8) *Bool {
	temp := c.Clone()
	temp.SubCell(other)
	return temp.IsNonzero()
}
