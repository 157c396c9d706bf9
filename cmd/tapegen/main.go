package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/tapegen/cmds"
	"github.com/reusee/tapegen/modes"
	"github.com/reusee/tapegen/tapeconfigs"
)

var (
	scriptFiles  = cmds.Collect[string]("-script")
	programFiles = cmds.Collect[string]("-program")
	inputFlag    = cmds.Var[string]("-input")
	printSource  = cmds.Switch("-print-source")
	inspect      = cmds.Switch("-inspect")
)

func init() {
	cmds.Describe("-script", "starlark script to compile and run")
	cmds.Describe("-program", "program text file to run")
	cmds.Describe("-input", "bytes fed to every job")
	cmds.Describe("-print-source", "print generated program text")
	cmds.Describe("-inspect", "open a REPL on each finished tape")
	cmds.Fallback(cmds.Func(func(path string) {
		if isScript(path) {
			*scriptFiles = append(*scriptFiles, path)
		} else {
			*programFiles = append(*programFiles, path)
		}
	}).Args("file").Desc("script if it ends in .star, program otherwise"))
	cmds.Define("-version", cmds.Func(func() {
		fmt.Println("tapegen", version)
		os.Exit(0)
	}).Desc("print version"))
}

const version = "0.1.0"

func isScript(path string) bool {
	return filepath.Ext(path) == ".star"
}

func main() {
	cmds.Execute(os.Args[1:])
	if err := tapeconfigs.ValidateFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	var jobs []Job
	for _, path := range *scriptFiles {
		jobs = append(jobs, Job{
			Kind: JobScript,
			Path: path,
		})
	}
	for _, path := range *programFiles {
		jobs = append(jobs, Job{
			Kind: JobProgram,
			Path: path,
		})
	}
	if len(jobs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -script <file> or -program <file> is required")
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		runJobs RunJobs,
	) {
		if err := runJobs(ctx, jobs, Options{
			Input:       []byte(*inputFlag),
			PrintSource: *printSource,
			Inspect:     *inspect,
		}, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	})
}
