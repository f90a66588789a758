package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc/pkg/answers"
	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/input"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

type runOptions struct {
	test      bool
	inputFile string
	save      bool
	copy      bool
	watch     bool
	refresh   bool
	timeout   time.Duration
}

// official reports whether the run uses the downloaded puzzle input, the
// only input saved answers apply to.
func (o runOptions) official() bool {
	return !o.test && o.inputFile == ""
}

func (c *CLI) runCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <year> <day> <part>",
		Short: "Solve one part of a puzzle",
		Long: `Solve one part of a puzzle and print the answer on stdout.

The input is read from inputs/<year>/day<N>.txt and downloaded when missing.
The answer is compared with outputs/<year>/day<N>-part<P>.txt if present.`,
		Example: `  aoc run 2021 16 2
  aoc run 2022 1 1 --test
  aoc run 2015 4 1 --input - < key.txt
  aoc run 2021 5 2 --watch --test`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := puzzle.NewKey(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if _, err := c.Registry.Lookup(k); err != nil {
				return err
			}
			if opts.watch && opts.inputFile == "-" {
				return errors.New(errors.ErrCodeInvalidArgument, "--watch needs an input file, not stdin")
			}

			ctx := cmd.Context()
			e, err := c.newEnv(ctx, false)
			if err != nil {
				return err
			}
			defer e.Close()
			if opts.timeout > 0 {
				e.runner.Timeout = opts.timeout
			}

			if !opts.watch {
				return c.runOnce(ctx, e, k, opts)
			}
			return c.watchRun(ctx, e, k, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.test, "test", "t", false, "use inputs/test.txt")
	cmd.Flags().StringVarP(&opts.inputFile, "input", "i", "", "read input from `file` (- for stdin)")
	cmd.Flags().BoolVarP(&opts.save, "save", "s", false, "save the answer to outputs/")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the answer to the clipboard")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-run whenever the input file changes")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached answers")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "abort the solver after this long (default from config)")
	cmd.MarkFlagsMutuallyExclusive("test", "input")

	return cmd
}

func (c *CLI) loadInput(ctx context.Context, e *env, k puzzle.Key, opts runOptions) (string, error) {
	switch {
	case opts.inputFile != "":
		return input.LoadFile(opts.inputFile)
	case opts.test:
		return e.source.LoadTest()
	default:
		return e.source.Load(ctx, k.Year, k.Day)
	}
}

func (c *CLI) runOnce(ctx context.Context, e *env, k puzzle.Key, opts runOptions) error {
	in, err := c.loadInput(ctx, e, k, opts)
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Solving %s", k))
	spinner.Start()
	res, err := e.runner.Run(ctx, k, in, opts.refresh)
	spinner.Stop()
	if err != nil {
		return err
	}
	c.Logger.Debug("answer", "year", k.Year, "day", k.Day, "part", k.Part, "duration", res.Duration, "cached", res.Cached)

	fmt.Println(res.Answer)
	printTiming(res.Duration, res.Cached)

	if opts.official() {
		saved, err := e.answers.Load(k)
		if err != nil && !errors.Is(err, errors.ErrCodeNotFound) {
			return err
		}
		reportComparison(answers.Compare(res.Answer, saved), saved)
	}

	if opts.save {
		if !opts.official() {
			fmt.Fprintln(os.Stderr, styleWarn.Render("not saving an answer computed from a custom input"))
		} else if err := e.answers.Save(k, res.Answer); err != nil {
			return err
		} else {
			fmt.Fprintln(os.Stderr, styleDim.Render("saved to "+e.answers.Path(k)))
		}
	}

	if opts.copy {
		if err := clipboard.WriteAll(res.Answer); err != nil {
			c.Logger.Warn("copy to clipboard", "err", err)
		} else {
			fmt.Fprintln(os.Stderr, styleDim.Render("copied to clipboard"))
		}
	}
	return nil
}

func reportComparison(s answers.Status, saved string) {
	var msg string
	switch s {
	case answers.Pass:
		msg = "matches the saved answer"
	case answers.Fail:
		msg = "saved answer is " + styleValue.Render(saved)
	default:
		msg = "no saved answer (use --save)"
	}
	fmt.Fprintln(os.Stderr, statusIcon(s)+" "+styleDim.Render(msg))
}

// watchRun solves once, then again after every change to the input file,
// until ctx is cancelled. Solver failures are reported but do not stop
// the watch.
func (c *CLI) watchRun(ctx context.Context, e *env, k puzzle.Key, opts runOptions) error {
	path := opts.inputFile
	switch {
	case opts.test:
		path = e.source.TestPath()
	case path == "":
		path = e.source.Path(k.Year, k.Day)
	}

	rerun := func() {
		if err := c.runOnce(ctx, e, k, opts); err != nil {
			printError("%s", errors.UserMessage(err))
		}
	}
	rerun()
	printInfo("Watching %s (ctrl+c to stop)", path)
	return watchFile(ctx, path, func() {
		printNewline()
		rerun()
	})
}
