package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/rumo/internal/model"
	"github.com/verte-zerg/rumo/internal/store"
)

// ErrNegativeAmount is returned when committing a negative number of seconds.
var ErrNegativeAmount = errors.New("commit amount must not be negative")

// loadRecord reads the persisted blob. Missing, unreadable, or malformed
// data all decode to an empty record.
func loadRecord(ctx context.Context, kv store.KV) model.DailyStudyRecord {
	raw, ok, err := kv.Get(ctx, model.DailyTimeKey)
	if err != nil || !ok || raw == "" {
		return model.DailyStudyRecord{}
	}
	var record model.DailyStudyRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil || record == nil {
		return model.DailyStudyRecord{}
	}
	return record
}

func saveRecord(ctx context.Context, kv store.KV, record model.DailyStudyRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode study record: %w", err)
	}
	if err := kv.Set(ctx, model.DailyTimeKey, string(data)); err != nil {
		return fmt.Errorf("failed to write study record: %w", err)
	}
	return nil
}

// ReadWeekRecord returns the per-day seconds for week, or an empty record.
func ReadWeekRecord(ctx context.Context, kv store.KV, week model.WeekKey) model.WeekRecord {
	out := model.WeekRecord{}
	for day, secs := range loadRecord(ctx, kv)[week] {
		out[day] = secs
	}
	return out
}

// SumSeconds totals all days in record.
func SumSeconds(record model.WeekRecord) int {
	total := 0
	for _, secs := range record {
		total += secs
	}
	return total
}

// CommitSeconds adds amount to the day active at now and writes the blob back.
func CommitSeconds(ctx context.Context, kv store.KV, now time.Time, amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount == 0 {
		return nil
	}
	record := loadRecord(ctx, kv)
	addSeconds(record, WeekKeyAt(now), DayKeyAt(now), amount)
	return saveRecord(ctx, kv, record)
}

func addSeconds(record model.DailyStudyRecord, week model.WeekKey, day model.DayKey, amount int) {
	days, ok := record[week]
	if !ok || days == nil {
		days = model.WeekRecord{}
		record[week] = days
	}
	days[day] += amount
}
