package modes

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tapegen/cmds"
)

var devFlag = cmds.Switch("-dev")

func init() {
	cmds.Describe("-dev", "development mode")
}

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

// Mode is production unless the -dev switch is given.
func (ModuleForProduction) Mode() Mode {
	if *devFlag {
		return ModeDevelopment
	}
	return ModeProduction
}
