package tapescript

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapegen/logs"
	"github.com/reusee/tapegen/tapeconfigs"
	"github.com/reusee/tapegen/tapegen"
)

type Module struct {
	dscope.Module
	Configs tapeconfigs.Module
}

// CompileFunc compiles a script against a tape of the configured size.
type CompileFunc func(name string, src any) (*tapegen.Builder, error)

func (Module) CompileFunc(
	size tapeconfigs.TapeSize,
	logger logs.Logger,
) CompileFunc {
	return func(name string, src any) (*tapegen.Builder, error) {
		builder, err := Compile(name, src, int(size))
		if err != nil {
			logger.Warn("compile script",
				"name", name,
				"error", err,
			)
			return nil, err
		}
		logger.Debug("compile script",
			"name", name,
			"size", int(size),
			"program", len(builder.Source()),
			"live", builder.Live(),
		)
		return builder, nil
	}
}
