package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapegen/tapeconfigs"
)

type Module struct {
	dscope.Module
	Configs tapeconfigs.Module
}
