package tapeconfigs

import (
	"github.com/reusee/tapegen/cmds"
	"github.com/reusee/tapegen/configs"
	"github.com/reusee/tapegen/tapevm"
	"github.com/reusee/tapegen/vars"
)

// DisplayWidth is how many cells each side of the pointer a tape window shows.
type DisplayWidth int

var _ configs.Configurable = DisplayWidth(0)

func (DisplayWidth) ConfigExpr() string {
	return "display_width"
}

var displayWidthFlag = cmds.Var[int]("-width")

func init() {
	cmds.Describe("-width", "cells shown each side of the pointer")
}

func (Module) DisplayWidth(
	loader configs.Loader,
) DisplayWidth {
	return vars.FirstNonZero(
		// negative values are rejected by ValidateFlags
		DisplayWidth(max(*displayWidthFlag, 0)),
		configs.Get[DisplayWidth](loader),
		tapevm.DefaultWindowWidth,
	)
}
