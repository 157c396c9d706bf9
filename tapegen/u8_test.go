package tapegen

import (
	"bytes"
	"testing"

	"github.com/reusee/tapegen/tapevm"
)

func run(t *testing.T, b *Builder, input []byte) *tapevm.Machine {
	t.Helper()
	m, err := b.Run(input)
	if err != nil {
		t.Fatal(err)
	}
	if m.Index != b.Tracker().Index() {
		t.Fatalf("tracked pointer %d, machine pointer %d", b.Tracker().Index(), m.Index)
	}
	return m
}

func TestU8Set(t *testing.T) {
	for v := range 256 {
		b := NewBuilder(2)
		dirty := b.U8(77)
		dirty.Release()
		c := b.U8(uint8(v))
		if c.Slot() != 0 {
			t.Fatalf("got slot %d", c.Slot())
		}
		m := run(t, b, nil)
		if int(m.Data[c.Slot()]) != v {
			t.Fatalf("set %d: got %d", v, m.Data[c.Slot()])
		}
	}
}

func TestU8CopyInto(t *testing.T) {
	for _, v := range []uint8{0, 1, 123, 255} {
		b := NewBuilder(8)
		src := b.U8(v)
		dst := b.U8(9)
		src.CopyInto(dst)
		if b.Live() != 2 {
			t.Fatalf("got %d live cells", b.Live())
		}
		m := run(t, b, nil)
		if m.Data[src.Slot()] != v || m.Data[dst.Slot()] != v {
			t.Fatalf("copy %d: got src %d dst %d", v, m.Data[src.Slot()], m.Data[dst.Slot()])
		}
	}
}

func TestU8Clone(t *testing.T) {
	b := NewBuilder(8)
	src := b.U8(200)
	clone := src.Clone()
	clone.Inc()
	m := run(t, b, nil)
	if m.Data[src.Slot()] != 200 || m.Data[clone.Slot()] != 201 {
		t.Fatalf("got %v", m.Data)
	}
}

func TestU8MoveInto(t *testing.T) {
	b := NewBuilder(8)
	src := b.U8(5)
	d1 := b.U8(1)
	d2 := b.U8(2)
	src.MoveInto(d1, d2)
	m := run(t, b, nil)
	if m.Data[src.Slot()] != 0 {
		t.Fatalf("source left %d", m.Data[src.Slot()])
	}
	if m.Data[d1.Slot()] != 5 || m.Data[d2.Slot()] != 5 {
		t.Fatalf("got %v", m.Data)
	}

	b = NewBuilder(4)
	src = b.U8(7)
	dst := b.U8(0)
	dst.MoveFrom(src)
	m = run(t, b, nil)
	if m.Data[src.Slot()] != 0 || m.Data[dst.Slot()] != 7 {
		t.Fatalf("got %v", m.Data)
	}
}

func TestU8AddAndZero(t *testing.T) {
	values := []int{0, 1, 2, 10, 127, 128, 129, 200, 250, 255}
	for _, a := range values {
		for _, c := range values {
			b := NewBuilder(4)
			x := b.U8(uint8(a))
			y := b.U8(uint8(c))
			x.AddAndZero(y)
			m := run(t, b, nil)
			if int(m.Data[x.Slot()]) != (a+c)%256 || m.Data[y.Slot()] != 0 {
				t.Fatalf("%d+%d: got a=%d b=%d", a, c, m.Data[x.Slot()], m.Data[y.Slot()])
			}
		}
	}

	b := NewBuilder(4)
	x := b.U8(250)
	y := b.U8(10)
	x.AddAndZero(y)
	m := run(t, b, nil)
	if m.Data[x.Slot()] != 4 || m.Data[y.Slot()] != 0 {
		t.Fatalf("got %v", m.Data)
	}
}

func TestU8SubAndZero(t *testing.T) {
	b := NewBuilder(4)
	x := b.U8(3)
	y := b.U8(5)
	x.SubAndZero(y)
	m := run(t, b, nil)
	if m.Data[x.Slot()] != 254 || m.Data[y.Slot()] != 0 {
		t.Fatalf("got %v", m.Data)
	}
}

func TestU8AddSubCell(t *testing.T) {
	b := NewBuilder(8)
	x := b.U8(100)
	y := b.U8(30)
	x.AddCell(y)
	z := b.U8(1)
	z.SubCell(y)
	self := b.U8(21)
	self.AddCell(self)
	m := run(t, b, nil)
	if m.Data[x.Slot()] != 130 || m.Data[y.Slot()] != 30 {
		t.Fatalf("got %v", m.Data)
	}
	if m.Data[z.Slot()] != 227 {
		t.Fatalf("got %d", m.Data[z.Slot()])
	}
	if m.Data[self.Slot()] != 42 {
		t.Fatalf("got %d", m.Data[self.Slot()])
	}
}

func TestU8MulAssign(t *testing.T) {
	testCases := []struct {
		a, b uint8
	}{
		{4, 7},
		{200, 200},
		{0, 9},
		{9, 0},
		{255, 2},
		{16, 16},
		{1, 255},
	}
	for _, tc := range testCases {
		b := NewBuilder(8)
		x := b.U8(tc.a)
		y := b.U8(tc.b)
		x.MulAssign(y)
		if b.Live() != 2 {
			t.Fatalf("got %d live cells", b.Live())
		}
		m := run(t, b, nil)
		want := uint8(int(tc.a) * int(tc.b) % 256)
		if m.Data[x.Slot()] != want {
			t.Fatalf("%d*%d: got %d, want %d", tc.a, tc.b, m.Data[x.Slot()], want)
		}
		if m.Data[y.Slot()] != tc.b {
			t.Fatalf("%d*%d: other changed to %d", tc.a, tc.b, m.Data[y.Slot()])
		}
	}
}

func TestU8MulAssignSelf(t *testing.T) {
	b := NewBuilder(8)
	x := b.U8(12)
	x.MulAssign(x)
	m := run(t, b, nil)
	if m.Data[x.Slot()] != 144 {
		t.Fatalf("got %d", m.Data[x.Slot()])
	}
}

func TestU8PlusMinusTimes(t *testing.T) {
	b := NewBuilder(12)
	x := b.U8(6)
	y := b.U8(9)
	sum := x.Plus(y)
	diff := x.Minus(y)
	product := x.Times(y)
	m := run(t, b, nil)
	if m.Data[sum.Slot()] != 15 || m.Data[diff.Slot()] != 253 || m.Data[product.Slot()] != 54 {
		t.Fatalf("got %v", m.Data)
	}
	if m.Data[x.Slot()] != 6 || m.Data[y.Slot()] != 9 {
		t.Fatalf("operands changed: %v", m.Data)
	}
}

func TestU8Negate(t *testing.T) {
	b := NewBuilder(4)
	x := b.U8(5)
	x.Negate()
	z := b.U8(0)
	z.Negate()
	m := run(t, b, nil)
	if m.Data[x.Slot()] != 251 || m.Data[z.Slot()] != 0 {
		t.Fatalf("got %v", m.Data)
	}
}

func TestU8IsZero(t *testing.T) {
	for _, v := range []uint8{0, 1, 2, 128, 255} {
		b := NewBuilder(4)
		x := b.U8(v)
		slot := x.Slot()
		isZero := x.IsZero()
		if !x.Released() {
			t.Fatal("is-zero should consume its cell")
		}
		y := b.U8(v)
		isNonzero := y.IsNonzero()
		m := run(t, b, nil)

		wantZero := uint8(0)
		if v == 0 {
			wantZero = 1
		}
		if m.Data[isZero.Slot()] != wantZero {
			t.Fatalf("is-zero(%d): got %d", v, m.Data[isZero.Slot()])
		}
		if m.Data[isNonzero.Slot()] != 1-wantZero {
			t.Fatalf("is-nonzero(%d): got %d", v, m.Data[isNonzero.Slot()])
		}
		if m.Data[slot] != 0 {
			t.Fatalf("consumed cell holds %d", m.Data[slot])
		}
	}
}

func TestU8Equals(t *testing.T) {
	b := NewBuilder(12)
	x := b.U8(42)
	y := b.U8(42)
	z := b.U8(43)
	eq := x.Equals(42)
	ne := x.Equals(41)
	notEq := x.NotEquals(41)
	eqCell := x.EqualsCell(y)
	neCell := x.NotEqualsCell(z)
	notNeCell := x.NotEqualsCell(y)
	m := run(t, b, nil)
	for name, c := range map[string]struct {
		b    *Bool
		want uint8
	}{
		"eq":        {eq, 1},
		"ne":        {ne, 0},
		"notEq":     {notEq, 1},
		"eqCell":    {eqCell, 1},
		"neCell":    {neCell, 1},
		"notNeCell": {notNeCell, 0},
	} {
		if got := m.Data[c.b.Slot()]; got != c.want {
			t.Fatalf("%s: got %d", name, got)
		}
	}
	if m.Data[x.Slot()] != 42 {
		t.Fatalf("compared cell changed to %d", m.Data[x.Slot()])
	}
}

func TestU8ReadWrite(t *testing.T) {
	b := NewBuilder(4)
	x := b.Input()
	y := b.U8(0)
	y.Read()
	x.Inc()
	x.Write()
	y.Write()
	z := b.Input()
	z.Write()
	m := run(t, b, []byte("AB"))
	if !bytes.Equal(m.Output, []byte{'B', 'B', 0}) {
		t.Fatalf("got %q", m.Output)
	}
	if len(m.Input) != 0 {
		t.Fatalf("got %q", m.Input)
	}
}

func TestU8WhileNonzero(t *testing.T) {
	b := NewBuilder(4)
	n := b.U8(5)
	acc := b.U8(0)
	n.WhileNonzero(func() {
		n.Dec()
		acc.Add(3)
	})
	m := run(t, b, nil)
	if m.Data[n.Slot()] != 0 || m.Data[acc.Slot()] != 15 {
		t.Fatalf("got %v", m.Data)
	}
}

func TestU8Release(t *testing.T) {
	b := NewBuilder(2)
	x := b.U8(1)
	x.Release()
	x.Release()
	if b.Live() != 0 {
		t.Fatalf("got %d", b.Live())
	}
	expectPanic(t, ErrReleased, func() {
		x.Inc()
	})
	y := b.U8(1)
	expectPanic(t, ErrReleased, func() {
		y.AddAndZero(x)
	})
}

func TestU8Misuse(t *testing.T) {
	b1 := NewBuilder(4)
	b2 := NewBuilder(4)
	x := b1.U8(1)
	y := b2.U8(1)
	expectPanic(t, ErrForeignCell, func() {
		x.AddAndZero(y)
	})
	expectPanic(t, ErrAliased, func() {
		x.AddAndZero(x)
	})
	expectPanic(t, ErrAliased, func() {
		x.MoveInto(x)
	})
}

func TestBuilderOutOfMemory(t *testing.T) {
	b := NewBuilder(2)
	x := b.U8(1)
	_ = b.U8(2)
	expectPanic(t, ErrOutOfMemory, func() {
		x.Clone()
	})
}

func TestBuilderZeroSize(t *testing.T) {
	expectPanic(t, ErrZeroSize, func() {
		NewBuilder(0)
	})
}

func TestTemporariesReused(t *testing.T) {
	// a long chain of operations fits in a small tape because every
	// temporary is released as soon as it is done
	b := NewBuilder(6)
	x := b.U8(1)
	y := b.U8(3)
	for range 20 {
		x.AddCell(y)
		x.MulAssign(y)
		eq := x.Equals(0)
		eq.Release()
	}
	if b.Live() != 2 {
		t.Fatalf("got %d live cells", b.Live())
	}
	m := run(t, b, nil)
	want := 1
	for range 20 {
		want = (want + 3) * 3 % 256
	}
	if int(m.Data[x.Slot()]) != want {
		t.Fatalf("got %d, want %d", m.Data[x.Slot()], want)
	}
}
