package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/aoc/pkg/answers"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Shared text styles. Table cell styles live next to the tables.
var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
	styleWarn  = lipgloss.NewStyle().Foreground(colorYellow)
	styleLabel = lipgloss.NewStyle().Foreground(colorGray).Width(10)

	stylePass    = lipgloss.NewStyle().Foreground(colorGreen)
	styleFail    = lipgloss.NewStyle().Foreground(colorRed)
	styleNeutral = lipgloss.NewStyle().Foreground(colorGray)
	styleSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconError   = "❌"
	iconMissing = "○"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// Status lines go to stdout; anything that decorates an answer goes to
// stderr so `aoc run ... | pbcopy` stays clean.

func printSuccess(format string, args ...any) {
	fmt.Println(stylePass.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styleFail.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleWarn.Render(iconWarning + " " + fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleNeutral.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed follow-up line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + styleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile reports a file that was written.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + styleValue.Render(value))
}

// printNextStep suggests the command to run next.
func printNextStep(description, cmd string) {
	fmt.Println(styleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() { fmt.Println() }

// printTiming writes the solve time, marking answers served from the
// result cache.
func printTiming(d time.Duration, cached bool) {
	source := styleNeutral.Render("fresh")
	if cached {
		source = stylePass.Render("cached")
	}
	fmt.Fprintln(os.Stderr, "  "+styleDim.Render(formatDuration(d)+" · ")+source)
}

// statusIcon renders the outcome of comparing an answer with the saved one.
func statusIcon(s answers.Status) string {
	switch s {
	case answers.Pass:
		return stylePass.Render(iconSuccess)
	case answers.Fail:
		return styleFail.Render(iconError)
	default:
		return styleNeutral.Render(iconMissing)
	}
}

// formatDuration keeps three significant-ish digits: µs below a
// millisecond, 10µs steps below a second, ms above.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}
