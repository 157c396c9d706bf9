package tapeconfigs

import (
	"github.com/reusee/tapegen/cmds"
	"github.com/reusee/tapegen/configs"
	"github.com/reusee/tapegen/vars"
)

// Jobs bounds how many sessions the command line tool runs at once.
type Jobs int

var _ configs.Configurable = Jobs(0)

func (Jobs) ConfigExpr() string {
	return "jobs"
}

var jobsFlag = cmds.Var[int]("-jobs")

func init() {
	cmds.Describe("-jobs", "maximum concurrent jobs")
}

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	return vars.FirstNonZero(
		// negative values are rejected by ValidateFlags
		Jobs(max(*jobsFlag, 0)),
		configs.Get[Jobs](loader),
		1,
	)
}
