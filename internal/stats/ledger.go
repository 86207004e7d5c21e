package stats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/rumo/internal/model"
	"github.com/verte-zerg/rumo/internal/store"
)

// ErrEmptyGoal is returned when setting a blank study goal.
var ErrEmptyGoal = errors.New("study goal must not be empty")

// Ledger is the write path for committed study time and the goal.
//
// A Ledger may be created before its store is available. Until Attach is
// called, reads are empty and writes are queued in memory.
type Ledger struct {
	kv  store.KV
	now func() time.Time

	pending     model.DailyStudyRecord
	pendingGoal string
}

// NewLedger returns a ledger over kv, which may be nil. A nil now uses time.Now.
func NewLedger(kv store.KV, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{kv: kv, now: now, pending: model.DailyStudyRecord{}}
}

// Ready reports whether a store is attached.
func (l *Ledger) Ready() bool {
	return l.kv != nil
}

// Now returns the ledger's current time.
func (l *Ledger) Now() time.Time {
	return l.now()
}

// Attach binds the store and flushes queued writes into it. Queued time is
// dropped if the flush fails.
func (l *Ledger) Attach(ctx context.Context, kv store.KV) error {
	l.kv = kv
	var errs []error
	if l.pendingGoal != "" {
		if err := kv.Set(ctx, model.GoalKey, l.pendingGoal); err != nil {
			errs = append(errs, fmt.Errorf("failed to write study goal: %w", err))
		}
		l.pendingGoal = ""
	}
	if len(l.pending) > 0 {
		record := loadRecord(ctx, kv)
		for week, days := range l.pending {
			for day, secs := range days {
				addSeconds(record, week, day, secs)
			}
		}
		l.pending = model.DailyStudyRecord{}
		if err := saveRecord(ctx, kv, record); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Commit adds amount seconds to the day active right now.
func (l *Ledger) Commit(ctx context.Context, amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount == 0 {
		return nil
	}
	now := l.now()
	if l.kv == nil {
		addSeconds(l.pending, WeekKeyAt(now), DayKeyAt(now), amount)
		return nil
	}
	return CommitSeconds(ctx, l.kv, now, amount)
}

// Week returns the current week key and its committed per-day seconds.
func (l *Ledger) Week(ctx context.Context) (model.WeekKey, model.WeekRecord) {
	week := WeekKeyAt(l.now())
	return week, l.WeekRecord(ctx, week)
}

// WeekRecord returns the committed per-day seconds for week.
func (l *Ledger) WeekRecord(ctx context.Context, week model.WeekKey) model.WeekRecord {
	if l.kv == nil {
		out := model.WeekRecord{}
		for day, secs := range l.pending[week] {
			out[day] = secs
		}
		return out
	}
	return ReadWeekRecord(ctx, l.kv, week)
}

// Goal returns the stored study goal, if any.
func (l *Ledger) Goal(ctx context.Context) (string, bool) {
	if l.kv == nil {
		return l.pendingGoal, l.pendingGoal != ""
	}
	goal, ok, err := l.kv.Get(ctx, model.GoalKey)
	if err != nil || !ok {
		return "", false
	}
	goal = strings.TrimSpace(goal)
	return goal, goal != ""
}

// SetGoal stores the trimmed goal text and returns it. The trimmed goal is
// returned even when the write fails.
func (l *Ledger) SetGoal(ctx context.Context, text string) (string, error) {
	goal := strings.TrimSpace(text)
	if goal == "" {
		return "", ErrEmptyGoal
	}
	if l.kv == nil {
		l.pendingGoal = goal
		return goal, nil
	}
	if err := l.kv.Set(ctx, model.GoalKey, goal); err != nil {
		return goal, fmt.Errorf("failed to write study goal: %w", err)
	}
	return goal, nil
}
