package tapeconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tapegen/configs"
	"github.com/reusee/tapegen/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"tape.cue",
	".tape.cue",
}

// searchDirs lists directories in precedence order.
func searchDirs() (ret []string) {
	if dir, err := os.Getwd(); err == nil {
		ret = append(ret, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, dir)
	}
	ret = append(ret, "/etc")
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var paths []string
	for _, dir := range searchDirs() {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}
