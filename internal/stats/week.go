// Package stats contains study time aggregation, formatting, and reporting.
package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/verte-zerg/rumo/internal/model"
)

// WeekKeyAt returns the week bucket for now.
//
// The week number is ceil((daysSinceJan1 + weekday(Jan1) + 1) / 7), where
// daysSinceJan1 keeps its fractional part. This is not ISO 8601 numbering;
// buckets run Saturday through Friday and must not be swapped for
// time.Time.ISOWeek without migrating stored data.
func WeekKeyAt(now time.Time) model.WeekKey {
	jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	pastDays := float64(now.Sub(jan1)) / float64(24*time.Hour)
	week := int(math.Ceil((pastDays + float64(jan1.Weekday()) + 1) / 7))
	return model.WeekKey(fmt.Sprintf("%d-W%d", now.Year(), week))
}

// DayKeyAt returns the weekday name for now.
func DayKeyAt(now time.Time) model.DayKey {
	return model.WeekdayKeys[now.Weekday()]
}
