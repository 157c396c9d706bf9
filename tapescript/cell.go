package tapescript

import (
	"errors"
	"fmt"
	"slices"

	"github.com/reusee/tapegen/tapegen"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var errForeignCell = errors.New("cell belongs to another script")

func sameBuilder(builder *tapegen.Builder, cell *tapegen.U8) error {
	if cell.Builder() != builder {
		return errForeignCell
	}
	return nil
}

func toByte(v starlark.Value) (uint8, error) {
	n, err := starlark.AsInt32(v)
	if err != nil {
		return 0, fmt.Errorf("want int, got %s", v.Type())
	}
	return uint8(n), nil
}

func toU8(v starlark.Value) (*tapegen.U8, error) {
	switch v := v.(type) {
	case *U8:
		return v.cell, nil
	case *Bool:
		return v.cell.Cell(), nil
	}
	return nil, fmt.Errorf("want u8 or bool cell, got %s", v.Type())
}

// operand turns an int or a u8 cell into a cell. done releases it if it was
// made here.
func operand(builder *tapegen.Builder, v starlark.Value) (cell *tapegen.U8, done func(), err error) {
	if c, ok := v.(*U8); ok {
		if err := sameBuilder(builder, c.cell); err != nil {
			return nil, nil, err
		}
		return c.cell, func() {}, nil
	}
	b, err := toByte(v)
	if err != nil {
		return nil, nil, err
	}
	cell = builder.U8(b)
	return cell, cell.Release, nil
}

type method func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

type U8 struct {
	cell *tapegen.U8
}

var (
	_ starlark.Value     = new(U8)
	_ starlark.HasAttrs  = new(U8)
	_ starlark.HasBinary = new(U8)
)

func (u *U8) Cell() *tapegen.U8 {
	return u.cell
}

func (u *U8) String() string {
	return fmt.Sprintf("u8(slot=%d)", u.cell.Slot())
}

func (u *U8) Type() string {
	return "u8"
}

func (u *U8) Freeze() {}

func (u *U8) Truth() starlark.Bool {
	return starlark.True
}

func (u *U8) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: u8")
}

func (u *U8) methods() map[string]method {
	builder := u.cell.Builder()

	noArgs := func(fn func()) method {
		return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			fn()
			return starlark.None, nil
		}
	}

	withOperand := func(fn func(*tapegen.U8) starlark.Value) method {
		return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var v starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "v", &v); err != nil {
				return nil, err
			}
			cell, done, err := operand(builder, v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			defer done()
			ret := fn(cell)
			if ret == nil {
				ret = starlark.None
			}
			return ret, nil
		}
	}

	return map[string]method{

		"set": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var v starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "v", &v); err != nil {
				return nil, err
			}
			if other, ok := v.(*U8); ok {
				if err := sameBuilder(builder, other.cell); err != nil {
					return nil, err
				}
				u.cell.CopyFrom(other.cell)
				return starlark.None, nil
			}
			value, err := toByte(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			u.cell.Set(value)
			return starlark.None, nil
		},

		"zero":    noArgs(u.cell.Zero),
		"inc":     noArgs(u.cell.Inc),
		"dec":     noArgs(u.cell.Dec),
		"negate":  noArgs(u.cell.Negate),
		"write":   noArgs(u.cell.Write),
		"read":    noArgs(u.cell.Read),
		"release": noArgs(u.cell.Release),

		"add": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var v starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "v", &v); err != nil {
				return nil, err
			}
			if other, ok := v.(*U8); ok {
				if err := sameBuilder(builder, other.cell); err != nil {
					return nil, err
				}
				u.cell.AddCell(other.cell)
				return starlark.None, nil
			}
			value, err := toByte(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			u.cell.Add(value)
			return starlark.None, nil
		},

		"sub": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var v starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "v", &v); err != nil {
				return nil, err
			}
			if other, ok := v.(*U8); ok {
				if err := sameBuilder(builder, other.cell); err != nil {
					return nil, err
				}
				u.cell.SubCell(other.cell)
				return starlark.None, nil
			}
			value, err := toByte(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			u.cell.Sub(value)
			return starlark.None, nil
		},

		"mul": withOperand(func(other *tapegen.U8) starlark.Value {
			u.cell.MulAssign(other)
			return nil
		}),
		"eq": withOperand(func(other *tapegen.U8) starlark.Value {
			return &Bool{cell: u.cell.EqualsCell(other)}
		}),
		"ne": withOperand(func(other *tapegen.U8) starlark.Value {
			return &Bool{cell: u.cell.NotEqualsCell(other)}
		}),

		"copy": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return &U8{cell: u.cell.Clone()}, nil
		},

		"move_into": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if len(kwargs) > 0 {
				return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
			}
			var dsts []*tapegen.U8
			for _, arg := range args {
				dst, ok := arg.(*U8)
				if !ok {
					return nil, fmt.Errorf("%s: want u8 cell, got %s", b.Name(), arg.Type())
				}
				if err := sameBuilder(builder, dst.cell); err != nil {
					return nil, err
				}
				dsts = append(dsts, dst.cell)
			}
			u.cell.MoveInto(dsts...)
			return starlark.None, nil
		},

		"is_zero": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return &Bool{cell: u.cell.Clone().IsZero()}, nil
		},

		"is_nonzero": func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return &Bool{cell: u.cell.Clone().IsNonzero()}, nil
		},
	}
}

func (u *U8) Attr(name string) (starlark.Value, error) {
	if name == "slot" {
		return starlark.MakeInt(u.cell.Slot()), nil
	}
	fn, ok := u.methods()[name]
	if !ok {
		return nil, nil
	}
	return starlark.NewBuiltin(name, fn).BindReceiver(u), nil
}

func (u *U8) AttrNames() []string {
	names := []string{"slot"}
	for name := range u.methods() {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Binary implements + - * with u8 cells and ints. The result is a fresh
// cell; operands are left unchanged.
func (u *U8) Binary(op syntax.Token, y starlark.Value, side starlark.Side) (starlark.Value, error) {
	builder := u.cell.Builder()
	other, done, err := operand(builder, y)
	if err != nil {
		return nil, nil
	}
	defer done()

	left, right := u.cell, other
	if side == starlark.Right {
		left, right = other, u.cell
	}

	switch op {
	case syntax.PLUS:
		return &U8{cell: left.Plus(right)}, nil
	case syntax.MINUS:
		return &U8{cell: left.Minus(right)}, nil
	case syntax.STAR:
		return &U8{cell: left.Times(right)}, nil
	}
	return nil, nil
}

type Bool struct {
	cell *tapegen.Bool
}

var (
	_ starlark.Value     = new(Bool)
	_ starlark.HasAttrs  = new(Bool)
	_ starlark.HasBinary = new(Bool)
)

func (b *Bool) Cell() *tapegen.Bool {
	return b.cell
}

func (b *Bool) String() string {
	return fmt.Sprintf("bool(slot=%d)", b.cell.Slot())
}

func (b *Bool) Type() string {
	return "bool_cell"
}

func (b *Bool) Freeze() {}

func (b *Bool) Truth() starlark.Bool {
	return starlark.True
}

func (b *Bool) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: bool_cell")
}

func (b *Bool) methods() map[string]method {
	builder := b.cell.Cell().Builder()

	noArgs := func(fn func()) method {
		return func(thread *starlark.Thread, fnv *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(fnv.Name(), args, kwargs); err != nil {
				return nil, err
			}
			fn()
			return starlark.None, nil
		}
	}

	withBool := func(fn func(*tapegen.Bool)) method {
		return func(thread *starlark.Thread, fnv *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var other *Bool
			if err := starlark.UnpackArgs(fnv.Name(), args, kwargs, "other", &other); err != nil {
				return nil, err
			}
			if err := sameBuilder(builder, other.cell.Cell()); err != nil {
				return nil, err
			}
			fn(other.cell)
			return starlark.None, nil
		}
	}

	return map[string]method{

		"set": func(thread *starlark.Thread, fnv *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var value bool
			if err := starlark.UnpackArgs(fnv.Name(), args, kwargs, "v", &value); err != nil {
				return nil, err
			}
			b.cell.Set(value)
			return starlark.None, nil
		},

		"negate":  noArgs(b.cell.Negate),
		"write":   noArgs(b.cell.Write),
		"release": noArgs(b.cell.Release),
		"and_":    withBool(b.cell.And),
		"or_":     withBool(b.cell.Or),
		"xor":     withBool(b.cell.Xor),

		"not_": func(thread *starlark.Thread, fnv *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(fnv.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return &Bool{cell: b.cell.Not()}, nil
		},

		"copy": func(thread *starlark.Thread, fnv *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(fnv.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return &Bool{cell: b.cell.Clone()}, nil
		},
	}
}

func (b *Bool) Attr(name string) (starlark.Value, error) {
	if name == "slot" {
		return starlark.MakeInt(b.cell.Slot()), nil
	}
	fn, ok := b.methods()[name]
	if !ok {
		return nil, nil
	}
	return starlark.NewBuiltin(name, fn).BindReceiver(b), nil
}

func (b *Bool) AttrNames() []string {
	names := []string{"slot"}
	for name := range b.methods() {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Binary implements & | ^ between boolean cells as fresh cells.
func (b *Bool) Binary(op syntax.Token, y starlark.Value, side starlark.Side) (starlark.Value, error) {
	other, ok := y.(*Bool)
	if !ok {
		return nil, nil
	}
	if err := sameBuilder(b.cell.Cell().Builder(), other.cell.Cell()); err != nil {
		return nil, err
	}
	left, right := b.cell, other.cell
	if side == starlark.Right {
		left, right = other.cell, b.cell
	}
	ret := left.Clone()
	switch op {
	case syntax.AMP:
		ret.And(right)
	case syntax.PIPE:
		ret.Or(right)
	case syntax.CIRCUMFLEX:
		ret.Xor(right)
	default:
		ret.Release()
		return nil, nil
	}
	return &Bool{cell: ret}, nil
}
