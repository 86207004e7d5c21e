package stats

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/verte-zerg/rumo/internal/model"
	"github.com/verte-zerg/rumo/internal/store"
)

var errUnavailable = errors.New("store unavailable")

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errUnavailable
}

func (failingKV) Set(context.Context, string, string) error {
	return errUnavailable
}

func (failingKV) Close() error {
	return nil
}

// friday is 2026-10-16 in week 2026-W42.
var friday = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

func TestReadWeekRecordEmpty(t *testing.T) {
	kv := store.NewMemory()
	got := ReadWeekRecord(context.Background(), kv, "2026-W42")
	if len(got) != 0 {
		t.Fatalf("expected empty record, got %v", got)
	}
	if SumSeconds(got) != 0 {
		t.Fatalf("expected zero sum")
	}
}

func TestReadWeekRecordMalformed(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"{not json", "[]", "null", `{"2026-W42":{"sexta":"x"}}`} {
		kv := store.NewMemory()
		if err := kv.Set(ctx, model.DailyTimeKey, raw); err != nil {
			t.Fatalf("set: %v", err)
		}
		if got := ReadWeekRecord(ctx, kv, "2026-W42"); len(got) != 0 {
			t.Fatalf("expected empty record for %q, got %v", raw, got)
		}
	}
}

func TestReadWeekRecordUnavailable(t *testing.T) {
	if got := ReadWeekRecord(context.Background(), failingKV{}, "2026-W42"); len(got) != 0 {
		t.Fatalf("expected empty record, got %v", got)
	}
}

func TestReadWeekRecordIdempotent(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	if err := CommitSeconds(ctx, kv, friday, 90); err != nil {
		t.Fatalf("commit: %v", err)
	}
	first := ReadWeekRecord(ctx, kv, "2026-W42")
	second := ReadWeekRecord(ctx, kv, "2026-W42")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reads differ: %v vs %v", first, second)
	}
}

func TestCommitSecondsAccumulates(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	if err := CommitSeconds(ctx, kv, friday, 60); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := CommitSeconds(ctx, kv, friday.Add(time.Minute), 40); err != nil {
		t.Fatalf("commit: %v", err)
	}
	got := ReadWeekRecord(ctx, kv, "2026-W42")
	if got[model.Sexta] != 100 {
		t.Fatalf("expected 100 seconds on sexta, got %v", got)
	}
	if len(got) != 1 {
		t.Fatalf("expected sparse record, got %v", got)
	}
}

func TestCommitSecondsWireFormat(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	if err := kv.Set(ctx, model.DailyTimeKey, `{"2026-W41":{"segunda":120}}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := CommitSeconds(ctx, kv, friday, 60); err != nil {
		t.Fatalf("commit: %v", err)
	}
	raw, _, _ := kv.Get(ctx, model.DailyTimeKey)
	want := `{"2026-W41":{"segunda":120},"2026-W42":{"sexta":60}}`
	if raw != want {
		t.Fatalf("unexpected blob %s", raw)
	}
}

func TestCommitSecondsOverwritesMalformed(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	if err := kv.Set(ctx, model.DailyTimeKey, "garbage"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := CommitSeconds(ctx, kv, friday, 5); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if got := ReadWeekRecord(ctx, kv, "2026-W42"); got[model.Sexta] != 5 {
		t.Fatalf("expected 5 seconds, got %v", got)
	}
}

func TestCommitSecondsRejectsNegative(t *testing.T) {
	err := CommitSeconds(context.Background(), store.NewMemory(), friday, -1)
	if !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestCommitSecondsZeroIsNoop(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	if err := CommitSeconds(ctx, kv, friday, 0); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, model.DailyTimeKey); ok {
		t.Fatalf("expected no blob written for zero commit")
	}
}

func TestCommitSecondsUnavailable(t *testing.T) {
	if err := CommitSeconds(context.Background(), failingKV{}, friday, 60); !errors.Is(err, errUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestSumSeconds(t *testing.T) {
	rec := model.WeekRecord{model.Segunda: 60, model.Sexta: 125}
	if got := SumSeconds(rec); got != 185 {
		t.Fatalf("expected 185, got %d", got)
	}
}
