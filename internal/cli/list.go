package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc/pkg/answers"
	"github.com/matzehuels/aoc/pkg/errors"
	"github.com/matzehuels/aoc/pkg/puzzle"
)

func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [year]",
		Short: "Show solved puzzles and saved answers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years := c.Registry.Years()
			if len(args) == 1 {
				y, err := errors.ParseYear(args[0])
				if err != nil {
					return err
				}
				years = []int{y}
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store := answers.NewStore(cfg.OutputsDir)

			for i, y := range years {
				if i > 0 {
					printNewline()
				}
				fmt.Println(styleTitle.Render(strconv.Itoa(y)))
				fmt.Println(yearTable(c.Registry, store, y))
			}
			return nil
		},
	}
}

// partCell renders one part: ✓ with a saved answer, ○ when only the
// solver exists, blank otherwise.
func partCell(d puzzle.Day, k puzzle.Key, store *answers.Store) (string, bool, bool) {
	if d.Part(k.Part) == nil {
		return "", false, false
	}
	if _, err := store.Load(k); err == nil {
		return iconSuccess, true, true
	}
	return iconMissing, true, false
}

// yearTable lays out days 1-25 of year with one column per part.
func yearTable(reg *puzzle.Registry, store *answers.Store, year int) string {
	days := make(map[int]puzzle.Day)
	for _, d := range reg.Days(year) {
		days[d.Day] = d
	}

	var rows [][]string
	registered, saved := 0, 0
	for day := 1; day <= errors.LastDay; day++ {
		d, ok := days[day]
		if !ok {
			rows = append(rows, []string{strconv.Itoa(day), "", "", ""})
			continue
		}
		row := []string{strconv.Itoa(day), d.Title}
		for part := 1; part <= 2; part++ {
			cell, reg, ok := partCell(d, puzzle.Key{Year: year, Day: day, Part: part}, store)
			if reg {
				registered++
			}
			if ok {
				saved++
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Day", "Title", "Part 1", "Part 2").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col >= 2 && rows[row][col] == iconSuccess:
				return base.Foreground(colorGreen).Align(lipgloss.Center)
			case col >= 2:
				return base.Foreground(colorGray).Align(lipgloss.Center)
			case rows[row][1] == "":
				return base.Foreground(colorDim)
			}
			return base
		})

	summary := styleDim.Render(fmt.Sprintf("%d/%d parts with saved answers · %d solvers", saved, 2*errors.LastDay, registered))
	return t.Render() + "\n" + summary
}
