package stats

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/verte-zerg/rumo/internal/model"
	"github.com/verte-zerg/rumo/internal/store"
)

func TestBuildWeekView(t *testing.T) {
	rec := model.WeekRecord{model.Segunda: 3661, model.Sexta: 120}
	view := BuildWeekView(friday, rec, 30)

	if view.Week != "2026-W42" || view.Today != model.Sexta {
		t.Fatalf("unexpected keys %s %s", view.Week, view.Today)
	}
	if len(view.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(view.Days))
	}
	if view.Days[0].Day != model.Segunda || view.Days[6].Day != model.Domingo {
		t.Fatalf("unexpected display order %+v", view.Days)
	}
	if view.Days[4].Seconds != 150 || !view.Days[4].Today {
		t.Fatalf("expected live seconds on today, got %+v", view.Days[4])
	}
	if view.Days[0].Seconds != 3661 || view.Days[0].Today {
		t.Fatalf("unexpected segunda cell %+v", view.Days[0])
	}
	if view.Total != 3781 {
		t.Fatalf("expected committed total 3781, got %d", view.Total)
	}
}

func TestLoadWeekView(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(store.NewMemory(), fixedClock(friday))
	if err := l.Commit(ctx, 120); err != nil {
		t.Fatalf("commit: %v", err)
	}
	view := LoadWeekView(ctx, l, 5)
	if view.Total != 120 || view.Days[4].Seconds != 125 {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestRenderWeek(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	view := BuildWeekView(friday, model.WeekRecord{model.Segunda: 3661, model.Sexta: 120}, 0)

	var buf bytes.Buffer
	if err := RenderWeek(&buf, view, "ENEM", true); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"rumo à ENEM", "esta semana (2026-W42)", "seg", "1h 1m", "sáb", "dom", "total 01:03:01"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no color with NO_COLOR set")
	}
}

func TestRenderBar(t *testing.T) {
	if got := renderBar(0, 100, 10); got != "" {
		t.Fatalf("expected empty bar, got %q", got)
	}
	if got := renderBar(1, 1000, 10); got != barFull {
		t.Fatalf("expected minimum bar, got %q", got)
	}
	if got := renderBar(50, 100, 10); got != strings.Repeat(barFull, 5) {
		t.Fatalf("unexpected half bar %q", got)
	}
}
