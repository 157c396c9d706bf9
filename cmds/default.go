package cmds

import (
	"fmt"
	"os"
)

// GlobalExecutor holds commands defined by package level flag helpers.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against GlobalExecutor and exits on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		GlobalExecutor.WriteUsage(os.Stderr)
		os.Exit(2)
	}
}

func Fallback(command *Command) {
	GlobalExecutor.Fallback(command)
}
