package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/verte-zerg/rumo/internal/model"
)

func TestWeekKeyAt(t *testing.T) {
	loc := time.UTC
	// 2026-01-01 is a Thursday.
	cases := []struct {
		at   time.Time
		want model.WeekKey
	}{
		{time.Date(2026, 1, 1, 12, 0, 0, 0, loc), "2026-W1"},
		{time.Date(2026, 1, 2, 23, 59, 0, 0, loc), "2026-W1"},
		{time.Date(2026, 1, 3, 0, 0, 0, 0, loc), "2026-W1"},
		{time.Date(2026, 1, 3, 0, 0, 1, 0, loc), "2026-W2"},
		{time.Date(2026, 1, 4, 12, 0, 0, 0, loc), "2026-W2"},
		{time.Date(2026, 1, 9, 12, 0, 0, 0, loc), "2026-W2"},
		{time.Date(2026, 1, 10, 12, 0, 0, 0, loc), "2026-W3"},
		{time.Date(2026, 10, 16, 12, 0, 0, 0, loc), "2026-W42"},
		{time.Date(2026, 10, 17, 12, 0, 0, 0, loc), "2026-W43"},
	}
	for _, tc := range cases {
		if got := WeekKeyAt(tc.at); got != tc.want {
			t.Fatalf("WeekKeyAt(%s) = %s, want %s", tc.at, got, tc.want)
		}
	}
}

func TestWeekKeyStableWithinDay(t *testing.T) {
	day := time.Date(2026, 3, 11, 0, 0, 1, 0, time.UTC)
	want := WeekKeyAt(day)
	for h := 0; h < 24; h++ {
		at := day.Add(time.Duration(h) * time.Hour)
		if got := WeekKeyAt(at); got != want {
			t.Fatalf("week changed within day at %s: %s != %s", at, got, want)
		}
	}
}

func TestWeekKeyMonotonic(t *testing.T) {
	prev := 0
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for at.Year() == 2026 {
		var year, week int
		if _, err := fmt.Sscanf(string(WeekKeyAt(at)), "%d-W%d", &year, &week); err != nil {
			t.Fatalf("parse week key: %v", err)
		}
		if week < prev {
			t.Fatalf("week number went backwards at %s", at)
		}
		prev = week
		at = at.AddDate(0, 0, 1)
	}
}

func TestDayKeyAt(t *testing.T) {
	base := time.Date(2026, 10, 11, 9, 0, 0, 0, time.UTC) // Sunday
	want := []model.DayKey{"domingo", "segunda", "terça", "quarta", "quinta", "sexta", "sábado"}
	for i, w := range want {
		if got := DayKeyAt(base.AddDate(0, 0, i)); got != w {
			t.Fatalf("day %d: got %s, want %s", i, got, w)
		}
	}
}
