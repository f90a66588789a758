package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/graph"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

func (c *CLI) graphCommand() *cobra.Command {
	var (
		output string
		format string
		test   bool
	)

	cmd := &cobra.Command{
		Use:   "graph <year> <day>",
		Short: "Render a graph-shaped puzzle input",
		Long: `Render the input of a day whose input is a graph (circuits, routes,
seating plans, caves, valves) as Graphviz DOT or SVG.`,
		Example: `  aoc graph 2022 16 -o valves.svg
  aoc graph 2021 12 --format dot | dot -Tpng > caves.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := errors.ParseYear(args[0])
			if err != nil {
				return err
			}
			day, err := errors.ParseDay(args[1])
			if err != nil {
				return err
			}
			d, ok := c.Registry.Day(year, day)
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "no solutions registered for %d day %d", year, day)
			}
			if d.Graph == nil {
				return errors.New(errors.ErrCodeNotFound, "%d day %d has no graph view", year, day)
			}
			if format != formatDOT && format != formatSVG {
				return errors.New(errors.ErrCodeInvalidArgument, "format must be dot or svg, got %q", format)
			}

			ctx := cmd.Context()
			e, err := c.newEnv(ctx, false)
			if err != nil {
				return err
			}
			defer e.Close()

			var in string
			if test {
				in, err = e.source.LoadTest()
			} else {
				in, err = e.source.Load(ctx, year, day)
			}
			if err != nil {
				return err
			}

			g, err := d.Graph(in)
			if err != nil {
				return err
			}
			out := []byte(g.DOT())
			if format == formatSVG {
				prog := newProgress(c.Logger)
				if out, err = graph.RenderSVG(ctx, string(out)); err != nil {
					return err
				}
				prog.done(fmt.Sprintf("Rendered %d nodes", len(g.Nodes)))
			}

			if output == "" {
				_, err := os.Stdout.Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return err
			}
			printSuccess("Rendered %s", d.Title)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to `file` instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: dot or svg")
	cmd.Flags().BoolVarP(&test, "test", "t", false, "use inputs/test.txt")
	return cmd
}
