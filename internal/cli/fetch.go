package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc/pkg/errors"
)

func (c *CLI) fetchCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "fetch <year> [day]",
		Short: "Download puzzle inputs",
		Long: `Download the input for one day, or every unlocked day of a year, into
inputs/<year>/. Requires a session cookie (see "aoc session set").`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := errors.ParseYear(args[0])
			if err != nil {
				return err
			}
			first, last := 1, errors.LastDay
			if len(args) == 2 {
				day, err := errors.ParseDay(args[1])
				if err != nil {
					return err
				}
				first, last = day, day
			}

			ctx := cmd.Context()
			e, err := c.newEnv(ctx, false)
			if err != nil {
				return err
			}
			defer e.Close()

			spinner := newSpinner(ctx, "Downloading")
			spinner.Start()
			fetched := 0
			for day := first; day <= last; day++ {
				spinner.Update("Downloading %d day %d", year, day)
				_, err := e.source.Fetch(ctx, year, day, refresh)
				if errors.Is(err, errors.ErrCodeLocked) && len(args) == 1 {
					c.Logger.Debug("stopping at locked day", "year", year, "day", day)
					break
				}
				if err != nil {
					spinner.Stop()
					return err
				}
				fetched++
			}
			spinner.Stop()

			printSuccess("Fetched %d inputs", fetched)
			printDetail("Directory: %s", e.cfg.InputsDir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "download again even if cached")
	return cmd
}
