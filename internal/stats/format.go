package stats

import "fmt"

// Clock is a zero-padded hours/minutes/seconds breakdown.
type Clock struct {
	Hours   string
	Minutes string
	Seconds string
}

// String renders the clock as HH:MM:SS.
func (c Clock) String() string {
	return c.Hours + ":" + c.Minutes + ":" + c.Seconds
}

// FormatClock splits seconds into two-digit fields. Hours are not capped.
func FormatClock(seconds int) Clock {
	if seconds < 0 {
		seconds = 0
	}
	return Clock{
		Hours:   fmt.Sprintf("%02d", seconds/3600),
		Minutes: fmt.Sprintf("%02d", (seconds%3600)/60),
		Seconds: fmt.Sprintf("%02d", seconds%60),
	}
}

// FormatCompact renders "<H>h <M>m", or "<M>m" under one hour.
func FormatCompact(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
