package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc/pkg/answers"
	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

func (c *CLI) testCommand() *cobra.Command {
	var (
		refresh bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "test [year]",
		Short: "Re-check every saved answer",
		Long: `Run every part that has a saved answer and compare the results.

Exits non-zero when any answer differs or a solver fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := c.newEnv(ctx, false)
			if err != nil {
				return err
			}
			defer e.Close()

			years, err := e.answers.Years()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				y, err := errors.ParseYear(args[0])
				if err != nil {
					return err
				}
				years = []int{y}
			}

			jobs, expected, err := answerJobs(e, years)
			if err != nil {
				return err
			}
			if len(jobs) == 0 {
				printInfo("No saved answers under %s", e.cfg.OutputsDir)
				return nil
			}
			if workers <= 0 {
				workers = e.cfg.Workers
			}

			logger := c.Logger.With("run", uuid.NewString())
			e.runner.Logger = logger
			logger.Debug("checking answers", "parts", len(jobs), "workers", workers)
			prog := newProgress(logger)

			spinner := newSpinner(ctx, fmt.Sprintf("Checking %d answers", len(jobs)))
			spinner.Start()
			results, err := e.runner.RunAll(ctx, jobs, workers, refresh)
			spinner.Stop()
			if err != nil {
				return err
			}

			rows, failed := resultRows(results, expected)
			fmt.Println(resultTable(rows))
			prog.done(fmt.Sprintf("Checked %d answers", len(results)))
			if failed > 0 {
				return fmt.Errorf("%d of %d answers failed", failed, len(results))
			}
			printSuccess("All %d answers match", len(results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached answers")
	cmd.Flags().IntVarP(&workers, "jobs", "j", 0, "solvers to run in parallel (default from config)")
	return cmd
}

// answerJobs builds one job per saved answer of years.
func answerJobs(e *env, years []int) ([]puzzle.Job, map[puzzle.Key]string, error) {
	var jobs []puzzle.Job
	expected := make(map[puzzle.Key]string)
	for _, y := range years {
		keys, err := e.answers.List(y)
		if err != nil {
			return nil, nil, err
		}
		for _, k := range keys {
			saved, err := e.answers.Load(k)
			if err != nil {
				return nil, nil, err
			}
			expected[k] = saved
			jobs = append(jobs, puzzle.Job{
				Key: k,
				Input: func(ctx context.Context) (string, error) {
					return e.source.Load(ctx, k.Year, k.Day)
				},
			})
		}
	}
	return jobs, expected, nil
}

type resultRow struct {
	key      puzzle.Key
	answer   string
	expected string
	took     string
	status   answers.Status
}

// resultRows classifies results. Saved answers without a solver are
// reported as missing rather than failed.
func resultRows(results []puzzle.Result, expected map[puzzle.Key]string) ([]resultRow, int) {
	rows := make([]resultRow, len(results))
	failed := 0
	for i, r := range results {
		row := resultRow{key: r.Key, expected: expected[r.Key]}
		switch {
		case errors.Is(r.Err, errors.ErrCodeUnsolved) || errors.Is(r.Err, errors.ErrCodeNotFound):
			row.answer = "no solver"
			row.status = answers.Missing
		case r.Err != nil:
			row.answer = string(errors.GetCode(r.Err))
			if row.answer == "" {
				row.answer = "error"
			}
			row.status = answers.Fail
			failed++
		default:
			row.answer = r.Answer
			row.took = formatDuration(r.Duration)
			if r.Cached {
				row.took += " (cached)"
			}
			row.status = answers.Compare(r.Answer, row.expected)
			if row.status == answers.Fail {
				failed++
			}
		}
		rows[i] = row
	}
	return rows, failed
}

func resultTable(rows []resultRow) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{r.key.String(), r.answer, r.expected, r.took, statusIcon(r.status)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Puzzle", "Answer", "Expected", "Time", "").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			switch {
			case col == 1 && rows[row].status == answers.Fail:
				return base.Foreground(colorRed)
			case col == 2 || col == 3:
				return base.Foreground(colorGray)
			}
			return base
		}).
		Render()
}
