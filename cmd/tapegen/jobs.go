package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/reusee/tapegen/debugs"
	"github.com/reusee/tapegen/logs"
	"github.com/reusee/tapegen/modes"
	"github.com/reusee/tapegen/syncs"
	"github.com/reusee/tapegen/tapeconfigs"
	"github.com/reusee/tapegen/tapescript"
	"github.com/reusee/tapegen/tapevm"
)

type JobKind uint8

const (
	// JobScript compiles a starlark script into a program.
	JobScript JobKind = iota + 1
	// JobProgram runs a program text file as is.
	JobProgram
)

type Job struct {
	Kind JobKind
	Path string
}

type Options struct {
	Input       []byte
	PrintSource bool
	Inspect     bool
}

type jobResult struct {
	source  string
	machine *tapevm.Machine
	err     error
}

// RunJobs runs jobs concurrently and reports them to out in the order given.
type RunJobs func(ctx context.Context, jobs []Job, options Options, out io.Writer) error

func (Module) RunJobs(
	logger logs.Logger,
	newSpan logs.NewSpan,
	numJobs tapeconfigs.Jobs,
	size tapeconfigs.TapeSize,
	width tapeconfigs.DisplayWidth,
	compile tapescript.CompileFunc,
	mode modes.Mode,
	tap debugs.Tap,
) RunJobs {

	runOne := func(ctx context.Context, job Job, input []byte) (ret jobResult) {
		content, err := os.ReadFile(job.Path)
		if err != nil {
			ret.err = err
			return
		}

		switch job.Kind {

		case JobScript:
			builder, err := compile(job.Path, content)
			if err != nil {
				ret.err = err
				return
			}
			if mode.ReportsLeaks() {
				if n := builder.Live(); n > 0 {
					logger.WarnContext(ctx, "leaked cells",
						"path", job.Path,
						"live", n,
					)
				}
			}
			ret.source = builder.Source()
			ret.machine, ret.err = builder.RunContext(ctx, input)

		case JobProgram:
			program, err := tapevm.Parse(string(content))
			if err != nil {
				ret.err = fmt.Errorf("parse %s: %w", job.Path, err)
				return
			}
			ret.source = string(content)
			ret.machine = tapevm.NewMachine(int(size), input)
			ret.err = ret.machine.RunContext(ctx, program)

		default:
			ret.err = fmt.Errorf("unknown job kind: %d", job.Kind)
		}

		return
	}

	return func(ctx context.Context, jobs []Job, options Options, out io.Writer) error {
		sem := syncs.NewSemaphore(int(numJobs))
		results := make([]jobResult, len(jobs))
		wg := new(sync.WaitGroup)
		for i, job := range jobs {
			if err := sem.AcquireContext(ctx); err != nil {
				results[i].err = err
				continue
			}
			wg.Go(func() {
				defer sem.Release()
				ctx, span := newSpan(ctx, "")
				logger.InfoContext(ctx, "job start",
					"path", job.Path,
				)
				result := runOne(ctx, job, options.Input)
				if result.err != nil {
					result.err = logs.WrapSpan(ctx, result.err)
					logger.ErrorContext(ctx, "job failed",
						"path", job.Path,
						"error", result.err,
					)
				} else {
					logger.InfoContext(ctx, "job done",
						"path", job.Path,
						"steps", result.machine.Steps,
						"span", span,
					)
				}
				results[i] = result
			})
		}
		wg.Wait()

		var errs []error
		for i, result := range results {
			job := jobs[i]
			fmt.Fprintf(out, "== %s\n", job.Path)
			if result.err != nil {
				fmt.Fprintf(out, "error: %v\n", result.err)
				errs = append(errs, fmt.Errorf("%s: %w", job.Path, result.err))
				continue
			}
			if options.PrintSource {
				fmt.Fprintf(out, "source: %s\n", result.source)
			}
			fmt.Fprintf(out, "output: %q\n", result.machine.Output)
			cells, pointer := result.machine.Window(int(width))
			fmt.Fprintf(out, "tape: %s\n", tapevm.FormatCells(cells, pointer))
			if options.Inspect {
				tap(ctx, job.Path, result.machine)
			}
		}

		return errors.Join(errs...)
	}
}
