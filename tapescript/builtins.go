package tapescript

import (
	"fmt"

	"github.com/reusee/tapegen/tapegen"
	"go.starlark.net/starlark"
)

func predeclared(builder *tapegen.Builder) starlark.StringDict {
	return starlark.StringDict{
		"tape_size": starlark.MakeInt(builder.Size()),

		"u8": starlark.NewBuiltin("u8", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var value starlark.Value = starlark.MakeInt(0)
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "v?", &value); err != nil {
				return nil, err
			}
			switch value := value.(type) {
			case *U8:
				if err := sameBuilder(builder, value.cell); err != nil {
					return nil, err
				}
				return &U8{cell: value.cell.Clone()}, nil
			}
			b, err := toByte(value)
			if err != nil {
				return nil, err
			}
			return &U8{cell: builder.U8(b)}, nil
		}),

		"bool": starlark.NewBuiltin("bool", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var value bool
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "v?", &value); err != nil {
				return nil, err
			}
			return &Bool{cell: builder.Bool(value)}, nil
		}),

		"read": starlark.NewBuiltin("read", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return &U8{cell: builder.Input()}, nil
		}),

		"write": starlark.NewBuiltin("write", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if len(kwargs) > 0 {
				return nil, fmt.Errorf("%s: unexpected keyword arguments", fn.Name())
			}
			for _, arg := range args {
				cell, err := toU8(arg)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", fn.Name(), err)
				}
				if err := sameBuilder(builder, cell); err != nil {
					return nil, err
				}
				cell.Write()
			}
			return starlark.None, nil
		}),

		"while_nonzero": starlark.NewBuiltin("while_nonzero", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var cell *U8
			var body starlark.Callable
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "cell", &cell, "body", &body); err != nil {
				return nil, err
			}
			if err := sameBuilder(builder, cell.cell); err != nil {
				return nil, err
			}
			var callErr error
			cell.cell.WhileNonzero(func() {
				_, callErr = starlark.Call(thread, body, nil, nil)
			})
			return starlark.None, callErr
		}),

		"while_true": starlark.NewBuiltin("while_true", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var cond *Bool
			var body starlark.Callable
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "cond", &cond, "body", &body); err != nil {
				return nil, err
			}
			if err := sameBuilder(builder, cond.cell.Cell()); err != nil {
				return nil, err
			}
			var callErr error
			cond.cell.WhileTrue(func() {
				_, callErr = starlark.Call(thread, body, nil, nil)
			})
			return starlark.None, callErr
		}),

		"if_true": starlark.NewBuiltin("if_true", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var cond *Bool
			var body starlark.Callable
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "cond", &cond, "body", &body); err != nil {
				return nil, err
			}
			if err := sameBuilder(builder, cond.cell.Cell()); err != nil {
				return nil, err
			}
			var callErr error
			// scripts keep the condition cell
			cond.cell.Clone().IfTrue(func() {
				_, callErr = starlark.Call(thread, body, nil, nil)
			})
			return starlark.None, callErr
		}),
	}
}
