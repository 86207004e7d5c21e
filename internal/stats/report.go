package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	barWidth    = 20
	barFull     = "█"
	colorReset  = "\x1b[0m"
	colorToday  = "\x1b[1;37m"
	colorMuted  = "\x1b[90m"
	reportTitle = "esta semana"
)

// RenderWeek prints the weekly breakdown as an aligned table with one bar per day.
func RenderWeek(w io.Writer, view WeekView, goal string, forceColor bool) error {
	useColor := shouldUseColor(w, forceColor)

	if goal != "" {
		if _, err := fmt.Fprintf(w, "rumo à %s\n", goal); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s (%s)\n", reportTitle, view.Week); err != nil {
		return err
	}

	maxSecs := 0
	for _, d := range view.Days {
		if d.Seconds > maxSecs {
			maxSecs = d.Seconds
		}
	}

	rows := make([][]string, 0, len(view.Days))
	for _, d := range view.Days {
		label := d.Day.Label()
		bar := renderBar(d.Seconds, maxSecs, barWidth)
		if useColor {
			if d.Today {
				label = colorToday + label + colorReset
			} else {
				bar = colorMuted + bar + colorReset
			}
		}
		rows = append(rows, []string{label, FormatCompact(d.Seconds), bar})
	}
	for _, line := range formatTable([]string{"dia", "tempo", ""}, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "total %s\n", FormatClock(view.Total))
	return err
}

func renderBar(value, maxValue, width int) string {
	if value <= 0 || maxValue <= 0 || width <= 0 {
		return ""
	}
	n := value * width / maxValue
	if n < 1 {
		n = 1
	}
	return strings.Repeat(barFull, n)
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
