package tapegen

// Bool is a cell holding 0 or 1 whenever none of its operations is running.
type Bool struct {
	cell *U8
}

func (b *Bool) Slot() int {
	return b.cell.slot
}

// Cell returns the underlying byte cell. Writing other than 0 or 1 into it
// breaks every Bool operation.
func (b *Bool) Cell() *U8 {
	return b.cell
}

func (b *Bool) Release() {
	b.cell.Release()
}

func (b *Bool) Released() bool {
	return b.cell.released
}

func (b *Bool) Set(value bool) {
	if value {
		b.cell.Set(1)
	} else {
		b.cell.Set(0)
	}
}

func (b *Bool) Write() {
	b.cell.Write()
}

func (b *Bool) Clone() *Bool {
	return &Bool{
		cell: b.cell.Clone(),
	}
}

func (b *Bool) CopyInto(other *Bool) {
	b.cell.CopyInto(other.cell)
}

func (b *Bool) CopyFrom(other *Bool) {
	other.cell.CopyInto(b.cell)
}

// MoveInto leaves false behind.
func (b *Bool) MoveInto(other *Bool) {
	b.cell.MoveInto(other.cell)
}

func (b *Bool) MoveFrom(other *Bool) {
	other.cell.MoveInto(b.cell)
}

func (b *Bool) Negate() {
	b.cell.check()
	temp := b.cell.builder.u8Uninit()
	defer temp.Release()
	b.cell.MoveInto(temp)
	b.cell.Inc()
	b.cell.SubAndZero(temp)
}

func (b *Bool) Not() *Bool {
	b.cell.check()
	ret := b.cell.builder.Bool(true)
	ret.cell.SubCell(b.cell)
	return ret
}

// And clears this cell when other is false.
func (b *Bool) And(other *Bool) {
	b.cell.checkOperand(other.cell)
	temp := other.cell.Clone()
	defer temp.Release()
	// 1 becomes 0 and skips the loop, 0 becomes 255 and runs it once
	temp.Dec()
	temp.WhileNonzero(func() {
		b.cell.Zero()
		temp.Zero()
	})
}

func (b *Bool) Or(other *Bool) {
	b.cell.checkOperand(other.cell)
	b.cell.AddCell(other.cell)
	// clamp 2 to 1
	temp := b.cell.builder.u8Uninit()
	defer temp.Release()
	b.cell.MoveInto(temp)
	temp.WhileNonzero(func() {
		temp.Zero()
		b.cell.Inc()
	})
}

func (b *Bool) Xor(other *Bool) {
	b.cell.checkOperand(other.cell)
	other.Clone().IfTrue(func() {
		b.Negate()
	})
}

func (b *Bool) WhileTrue(body func()) {
	b.cell.WhileNonzero(body)
}

// IfTrue runs body at most once and consumes this cell.
func (b *Bool) IfTrue(body func()) {
	b.cell.WhileNonzero(func() {
		body()
		b.cell.Zero()
	})
	b.cell.Release()
}
