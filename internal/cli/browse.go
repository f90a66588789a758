package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc/pkg/puzzle"
)

func (c *CLI) browseCommand() *cobra.Command {
	var test bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Pick a puzzle interactively and run it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := NewPuzzleListModel(c.Registry)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			sel := final.(PuzzleListModel).Selected
			if sel == nil {
				return nil
			}

			ctx := cmd.Context()
			e, err := c.newEnv(ctx, false)
			if err != nil {
				return err
			}
			defer e.Close()
			return c.runOnce(ctx, e, *sel, runOptions{test: test})
		},
	}

	cmd.Flags().BoolVarP(&test, "test", "t", false, "use inputs/test.txt")
	return cmd
}

type browseKeys struct {
	Up, Down, PageUp, PageDown, Year, Run, Quit key.Binding
}

var browseKeyMap = browseKeys{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Year:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "year")),
	Run:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "run")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Year, k.Run, k.Quit}
}

func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.PageUp, k.PageDown}}
}

// puzzleEntry is one selectable row.
type puzzleEntry struct {
	key   puzzle.Key
	title string
}

// PuzzleListModel is a scrolling bubbletea list of registered puzzle
// parts. Tab cycles a year filter; Years[0] == 0 means every year.
type PuzzleListModel struct {
	all      []puzzleEntry
	Entries  []puzzleEntry
	Years    []int
	YearIdx  int
	Cursor   int
	Offset   int
	Height   int
	Selected *puzzle.Key

	help help.Model
}

// NewPuzzleListModel lists every solved part of reg.
func NewPuzzleListModel(reg *puzzle.Registry) PuzzleListModel {
	m := PuzzleListModel{Years: append([]int{0}, reg.Years()...), Height: 15, help: help.New()}
	for _, k := range reg.Keys() {
		d, _ := reg.Day(k.Year, k.Day)
		m.all = append(m.all, puzzleEntry{key: k, title: d.Title})
	}
	m.Entries = m.all
	return m
}

func (m PuzzleListModel) Init() tea.Cmd { return nil }

func (m *PuzzleListModel) filter() {
	year := m.Years[m.YearIdx]
	m.Entries = m.Entries[:0:0]
	for _, e := range m.all {
		if year == 0 || e.key.Year == year {
			m.Entries = append(m.Entries, e)
		}
	}
	m.Cursor, m.Offset = 0, 0
}

func (m PuzzleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		keys := browseKeyMap
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.Cursor = max(m.Cursor-1, 0)
		case key.Matches(msg, keys.Down):
			m.Cursor = max(min(m.Cursor+1, len(m.Entries)-1), 0)
		case key.Matches(msg, keys.PageUp):
			m.Cursor = max(m.Cursor-m.Height, 0)
		case key.Matches(msg, keys.PageDown):
			m.Cursor = max(min(m.Cursor+m.Height, len(m.Entries)-1), 0)
		case key.Matches(msg, keys.Year):
			m.YearIdx = (m.YearIdx + 1) % len(m.Years)
			m.filter()
		case key.Matches(msg, keys.Run):
			if len(m.Entries) == 0 {
				return m, tea.Quit
			}
			k := m.Entries[m.Cursor].key
			m.Selected = &k
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		m.help.Width = msg.Width
	}

	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m, nil
}

func (m PuzzleListModel) yearLabel() string {
	if y := m.Years[m.YearIdx]; y != 0 {
		return strconv.Itoa(y)
	}
	return "all years"
}

func (m PuzzleListModel) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Advent of Code") + " " + styleDim.Render(m.yearLabel()) + "\n")
	b.WriteString(m.help.View(browseKeyMap) + "\n\n")

	end := min(m.Offset+m.Height, len(m.Entries))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		marker := " "
		if i == m.Cursor {
			marker = "▸"
		}
		rows = append(rows, []string{marker, e.key.String(), e.title})
	}

	header := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	current := lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	other := lipgloss.NewStyle().Foreground(colorWhite)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("", "Puzzle", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return header
			case m.Offset+row == m.Cursor:
				return current
			default:
				return other
			}
		})

	b.WriteString(t.Render() + "\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("  %d/%d", min(m.Cursor+1, len(m.Entries)), len(m.Entries))))
	return b.String()
}
