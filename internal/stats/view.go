package stats

import (
	"context"
	"time"

	"github.com/verte-zerg/rumo/internal/model"
)

// WeekView is a render-ready snapshot of the current week.
type WeekView struct {
	Week  model.WeekKey
	Today model.DayKey
	Days  []model.DayTotal
	Total int
}

// BuildWeekView lays out record in display order. live seconds not yet
// committed are added to today's cell only; Total counts committed time.
func BuildWeekView(now time.Time, record model.WeekRecord, live int) WeekView {
	today := DayKeyAt(now)
	days := make([]model.DayTotal, 0, len(model.DisplayDays))
	for _, day := range model.DisplayDays {
		secs := record[day]
		if day == today {
			secs += live
		}
		days = append(days, model.DayTotal{Day: day, Seconds: secs, Today: day == today})
	}
	return WeekView{
		Week:  WeekKeyAt(now),
		Today: today,
		Days:  days,
		Total: SumSeconds(record),
	}
}

// LoadWeekView reads the current week from the ledger and builds its view.
func LoadWeekView(ctx context.Context, l *Ledger, live int) WeekView {
	now := l.Now()
	return BuildWeekView(now, l.WeekRecord(ctx, WeekKeyAt(now)), live)
}
