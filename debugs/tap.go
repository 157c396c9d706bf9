package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/tapegen/logs"
	"github.com/reusee/tapegen/tapeconfigs"
	"github.com/reusee/tapegen/tapevm"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a REPL on stdin for inspecting a finished machine.
type Tap func(ctx context.Context, what string, machine *tapevm.Machine)

func (Module) Tap(
	logger logs.Logger,
	width tapeconfigs.DisplayWidth,
) Tap {
	return func(ctx context.Context, what string, machine *tapevm.Machine) {
		globals := Globals(machine, int(width))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, globals)
	}
}

// Globals exposes machine state to starlark. The values are taken when
// called; window and cell read the machine live.
func Globals(machine *tapevm.Machine, width int) starlark.StringDict {
	// ints, so tape[i] reads as a number like cell(i)
	tape := make([]int, len(machine.Data))
	for i, c := range machine.Data {
		tape[i] = int(c)
	}
	values := map[string]any{
		"tape":   tape,
		"index":  machine.Index,
		"size":   machine.Size(),
		"steps":  machine.Steps,
		"input":  machine.Input,
		"output": machine.Output,

		"window": func(w int) string {
			if w <= 0 {
				w = width
			}
			cells, pointer := machine.Window(w)
			return tapevm.FormatCells(cells, pointer)
		},

		"cell": func(i int) int {
			return int(machine.Data[((i%machine.Size())+machine.Size())%machine.Size()])
		},
	}
	ret := make(starlark.StringDict, len(values))
	for name, value := range values {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}
