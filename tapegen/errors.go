package tapegen

import (
	"errors"

	"github.com/reusee/tapegen/tapevm"
)

// Generator invariant violations. They are raised with panic, never returned:
// hitting one means the generating code is wrong, not its input.
var (
	ErrOutOfMemory       = errors.New("out of memory")
	ErrPointerOutOfRange = errors.New("pointer index cannot be larger than N")
	ErrPointerMoved      = tapevm.ErrPointerMoved
	ErrZeroSize          = tapevm.ErrZeroSize
	ErrDoubleFree        = errors.New("slot is not allocated")
	ErrReleased          = errors.New("cell already released")
	ErrForeignCell       = errors.New("cell belongs to another builder")
	ErrAliased           = errors.New("operation cannot take the same cell on both sides")
)
