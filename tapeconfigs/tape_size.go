package tapeconfigs

import (
	"github.com/reusee/tapegen/cmds"
	"github.com/reusee/tapegen/configs"
	"github.com/reusee/tapegen/vars"
)

// TapeSize is the number of cells on generated and executed tapes.
type TapeSize int

const DefaultTapeSize TapeSize = 30000

var _ configs.Configurable = TapeSize(0)

func (TapeSize) ConfigExpr() string {
	return "tape_size"
}

var tapeSizeFlag = cmds.Var[int]("-size")

func init() {
	cmds.Describe("-size", "number of tape cells")
}

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return vars.FirstNonZero(
		// negative values are rejected by ValidateFlags
		TapeSize(max(*tapeSizeFlag, 0)),
		configs.Get[TapeSize](loader),
		DefaultTapeSize,
	)
}
